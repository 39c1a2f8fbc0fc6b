package service

import (
	"context"
	"errors"

	"AutoSync/dao"
	"AutoSync/models"
	"AutoSync/types"

	"gorm.io/gorm"
)

var _ IStandService = (*StandService)(nil)

type IStandService interface {
	List(ctx context.Context, f *types.StandFilter) ([]*models.Stand, int64, error)
	Get(ctx context.Context, id int64) (*models.Stand, error)
	GetBySlug(ctx context.Context, slug string) (*models.Stand, error)
	ByCity(ctx context.Context, city string) ([]*models.Stand, error)
	Create(ctx context.Context, actor int64, req *types.CreateStandRequest, ip string) (*models.Stand, error)
	Update(ctx context.Context, actor, id int64, req *types.UpdateStandRequest, ip string) (*models.Stand, error)
	Delete(ctx context.Context, actor, id int64, ip string) error
	UpdateBusinessHours(ctx context.Context, actor, id int64, req *types.UpdateBusinessHoursRequest, ip string) (*models.Stand, error)
	Statistics(ctx context.Context, id int64) (*types.StandStatistics, error)
}

type StandService struct {
	Stands    *dao.Stands
	Vehicles  *dao.Vehicles
	Sales     *dao.Sales
	Inquiries *dao.Inquiries
	Audit     IAuditService
}

func (s *StandService) List(ctx context.Context, f *types.StandFilter) ([]*models.Stand, int64, error) {
	f.Normalize()
	stands, total, err := s.Stands.List(ctx, f)
	if err != nil {
		return nil, 0, errPersistence(err)
	}
	return stands, total, nil
}

func (s *StandService) Get(ctx context.Context, id int64) (*models.Stand, error) {
	stand, err := s.Stands.FindByID(ctx, id)
	if err != nil {
		return nil, errNotFound("stand %d not found", id)
	}
	return stand, nil
}

func (s *StandService) GetBySlug(ctx context.Context, slug string) (*models.Stand, error) {
	stand, err := s.Stands.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("stand %s not found", slug)
		}
		return nil, errPersistence(err)
	}
	return stand, nil
}

func (s *StandService) ByCity(ctx context.Context, city string) ([]*models.Stand, error) {
	stands, err := s.Stands.ByCity(ctx, city)
	if err != nil {
		return nil, errPersistence(err)
	}
	return stands, nil
}

func (s *StandService) Create(ctx context.Context, actor int64, req *types.CreateStandRequest, ip string) (*models.Stand, error) {
	if taken, _ := s.Stands.IsExist(ctx, "slug = ?", req.Slug); taken {
		return nil, errValidation("slug %s is already in use", req.Slug)
	}

	stand := &models.Stand{
		Name:          req.Name,
		Slug:          req.Slug,
		Description:   req.Description,
		Address:       req.Address,
		City:          req.City,
		PostalCode:    req.PostalCode,
		Phone:         req.Phone,
		Email:         req.Email,
		Website:       req.Website,
		LogoURL:       req.LogoURL,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		BusinessHours: req.BusinessHours,
		IsActive:      true,
	}
	if err := s.Stands.Create(ctx, stand); err != nil {
		return nil, errPersistence(err)
	}

	s.Audit.Record(ctx, &actor, models.AuditActionCreate, stand.TableName(), stand.ID, req, ip)
	return stand, nil
}

func (s *StandService) Update(ctx context.Context, actor, id int64, req *types.UpdateStandRequest, ip string) (*models.Stand, error) {
	if _, err := s.Stands.FindByID(ctx, id); err != nil {
		return nil, errNotFound("stand %d not found", id)
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.PostalCode != nil {
		updates["postal_code"] = *req.PostalCode
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Website != nil {
		updates["website"] = *req.Website
	}
	if req.LogoURL != nil {
		updates["logo_url"] = *req.LogoURL
	}
	if req.Latitude != nil {
		updates["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		updates["longitude"] = *req.Longitude
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if err := s.Stands.UpdateByID(ctx, id, updates); err != nil {
		return nil, errPersistence(err)
	}

	s.Audit.Record(ctx, &actor, models.AuditActionUpdate, models.Stand{}.TableName(), id, updates, ip)
	return s.refetch(ctx, id)
}

func (s *StandService) Delete(ctx context.Context, actor, id int64, ip string) error {
	if _, err := s.Stands.FindByID(ctx, id); err != nil {
		return errNotFound("stand %d not found", id)
	}
	hasVehicles, err := s.Vehicles.IsExist(ctx, "stand_id = ? AND status = ?", id, models.VehicleStatusAvailable)
	if err != nil {
		return errPersistence(err)
	}
	if hasVehicles {
		return errValidation("stand %d still has available vehicles", id)
	}
	if err := s.Stands.DeleteByID(ctx, id); err != nil {
		return errPersistence(err)
	}
	s.Audit.Record(ctx, &actor, models.AuditActionDelete, models.Stand{}.TableName(), id, nil, ip)
	return nil
}

func (s *StandService) UpdateBusinessHours(ctx context.Context, actor, id int64, req *types.UpdateBusinessHoursRequest, ip string) (*models.Stand, error) {
	if _, err := s.Stands.FindByID(ctx, id); err != nil {
		return nil, errNotFound("stand %d not found", id)
	}
	if err := s.Stands.UpdateByID(ctx, id, map[string]any{"business_hours": req.BusinessHours}); err != nil {
		return nil, errPersistence(err)
	}
	s.Audit.Record(ctx, &actor, models.AuditActionUpdate, models.Stand{}.TableName(), id, req, ip)
	return s.refetch(ctx, id)
}

func (s *StandService) refetch(ctx context.Context, id int64) (*models.Stand, error) {
	stand, err := s.Stands.FindByID(ctx, id)
	if err != nil {
		return nil, errPersistence(err)
	}
	return stand, nil
}

func (s *StandService) Statistics(ctx context.Context, id int64) (*types.StandStatistics, error) {
	if _, err := s.Stands.FindByID(ctx, id); err != nil {
		return nil, errNotFound("stand %d not found", id)
	}

	var stats types.StandStatistics
	var err error
	if stats.TotalVehicles, err = s.Vehicles.CountByStand(ctx, id, ""); err != nil {
		return nil, errPersistence(err)
	}
	if stats.AvailableVehicles, err = s.Vehicles.CountByStand(ctx, id, models.VehicleStatusAvailable); err != nil {
		return nil, errPersistence(err)
	}
	if stats.TotalSales, stats.TotalRevenue, err = s.Sales.StandStatistics(ctx, id); err != nil {
		return nil, errPersistence(err)
	}
	if stats.TotalInquiries, err = s.Inquiries.CountByStand(ctx, id); err != nil {
		return nil, errPersistence(err)
	}
	return &stats, nil
}
