package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"AutoSync/dao"
	"AutoSync/models"
	"AutoSync/pkg/log"
	"AutoSync/types"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const vehicleStatsCacheKey = "stats:vehicles"
const statsCacheTTL = 60 * time.Second

var _ IVehicleService = (*VehicleService)(nil)

type IVehicleService interface {
	List(ctx context.Context, f *types.VehicleFilter) ([]*models.Vehicle, int64, error)
	Get(ctx context.Context, id int64) (*models.Vehicle, error)
	Create(ctx context.Context, actor int64, req *types.CreateVehicleRequest, ip string) (*models.Vehicle, error)
	Update(ctx context.Context, actor, id int64, req *types.UpdateVehicleRequest, ip string) (*models.Vehicle, error)
	Delete(ctx context.Context, actor, id int64, ip string) error
	UpdateStatus(ctx context.Context, actor, id int64, status, ip string) (*models.Vehicle, error)
	ToggleFeatured(ctx context.Context, actor, id int64, ip string) (*models.Vehicle, error)
	Featured(ctx context.Context, limit int) ([]*models.Vehicle, error)
	MostViewed(ctx context.Context, limit int) ([]*models.Vehicle, error)
	Statistics(ctx context.Context) (*types.VehicleStatistics, error)
}

type VehicleService struct {
	Vehicles *dao.Vehicles
	Images   *dao.VehicleImages
	Stands   *dao.Stands
	Cleanup  *dao.ImageCleanupTasks
	Audit    IAuditService
	Redis    *redis.Client
}

func (s *VehicleService) List(ctx context.Context, f *types.VehicleFilter) ([]*models.Vehicle, int64, error) {
	f.Normalize()
	vehicles, total, err := s.Vehicles.List(ctx, f)
	if err != nil {
		return nil, 0, errPersistence(err)
	}
	return vehicles, total, nil
}

func (s *VehicleService) Get(ctx context.Context, id int64) (*models.Vehicle, error) {
	v, err := s.Vehicles.FindWithImages(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errNotFound("vehicle %d not found", id)
		}
		return nil, errPersistence(err)
	}
	return v, nil
}

func (s *VehicleService) Create(ctx context.Context, actor int64, req *types.CreateVehicleRequest, ip string) (*models.Vehicle, error) {
	standExists, err := s.Stands.IsExist(ctx, "id = ?", req.StandID)
	if err != nil {
		return nil, errPersistence(err)
	}
	if !standExists {
		return nil, errValidation("stand %d does not exist", req.StandID)
	}
	if taken, _ := s.Vehicles.IsExist(ctx, "reference = ?", req.Reference); taken {
		return nil, errValidation("reference %s is already in use", req.Reference)
	}

	doors, seats := req.Doors, req.Seats
	if doors == 0 {
		doors = 5
	}
	if seats == 0 {
		seats = 5
	}

	v := &models.Vehicle{
		StandID:            req.StandID,
		Reference:          req.Reference,
		Brand:              req.Brand,
		Model:              req.Model,
		Year:               req.Year,
		Mileage:            req.Mileage,
		FuelType:           req.FuelType,
		Transmission:       req.Transmission,
		EngineSize:         req.EngineSize,
		PowerHP:            req.PowerHP,
		Doors:              doors,
		Seats:              seats,
		Color:              req.Color,
		Price:              req.Price,
		OriginalPrice:      req.OriginalPrice,
		DiscountPercentage: req.DiscountPercentage,
		Description:        req.Description,
		Features:           req.Features,
		Status:             models.VehicleStatusAvailable,
		IsFeatured:         req.IsFeatured,
		IsNew:              req.IsNew,
	}
	if err := s.Vehicles.Create(ctx, v); err != nil {
		return nil, errPersistence(err)
	}

	s.Audit.Record(ctx, &actor, models.AuditActionCreate, v.TableName(), v.ID, req, ip)
	s.invalidateStats(ctx)
	return v, nil
}

func (s *VehicleService) Update(ctx context.Context, actor, id int64, req *types.UpdateVehicleRequest, ip string) (*models.Vehicle, error) {
	if _, err := s.Vehicles.FindByID(ctx, id); err != nil {
		return nil, errNotFound("vehicle %d not found", id)
	}

	updates := map[string]any{}
	if req.StandID != nil {
		updates["stand_id"] = *req.StandID
	}
	if req.Brand != nil {
		updates["brand"] = *req.Brand
	}
	if req.Model != nil {
		updates["model"] = *req.Model
	}
	if req.Year != nil {
		updates["year"] = *req.Year
	}
	if req.Mileage != nil {
		updates["mileage"] = *req.Mileage
	}
	if req.FuelType != nil {
		updates["fuel_type"] = *req.FuelType
	}
	if req.Transmission != nil {
		updates["transmission"] = *req.Transmission
	}
	if req.EngineSize != nil {
		updates["engine_size"] = *req.EngineSize
	}
	if req.PowerHP != nil {
		updates["power_hp"] = *req.PowerHP
	}
	if req.Doors != nil {
		updates["doors"] = *req.Doors
	}
	if req.Seats != nil {
		updates["seats"] = *req.Seats
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.OriginalPrice != nil {
		updates["original_price"] = *req.OriginalPrice
	}
	if req.DiscountPercentage != nil {
		updates["discount_percentage"] = *req.DiscountPercentage
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Features != nil {
		updates["features"] = *req.Features
	}
	if req.IsNew != nil {
		updates["is_new"] = *req.IsNew
	}
	if err := s.Vehicles.UpdateByID(ctx, id, updates); err != nil {
		return nil, errPersistence(err)
	}

	s.Audit.Record(ctx, &actor, models.AuditActionUpdate, models.Vehicle{}.TableName(), id, updates, ip)
	return s.Get(ctx, id)
}

// Delete soft-deletes the vehicle. Image rows go with it and their remote
// objects are queued for the cleanup worker instead of being deleted inline.
func (s *VehicleService) Delete(ctx context.Context, actor, id int64, ip string) error {
	if _, err := s.Vehicles.FindByID(ctx, id); err != nil {
		return errNotFound("vehicle %d not found", id)
	}

	images, err := s.Images.ListByVehicle(ctx, id)
	if err != nil {
		return errPersistence(err)
	}

	err = s.Vehicles.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, img := range images {
			if img.ExternalID == "" {
				continue
			}
			task := &models.ImageCleanupTask{ExternalID: img.ExternalID}
			if err := tx.Create(task).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("vehicle_id = ?", id).Delete(&models.VehicleImage{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Vehicle{}).Error
	})
	if err != nil {
		return errPersistence(err)
	}

	s.Audit.Record(ctx, &actor, models.AuditActionDelete, models.Vehicle{}.TableName(), id, nil, ip)
	s.invalidateStats(ctx)
	return nil
}

func (s *VehicleService) UpdateStatus(ctx context.Context, actor, id int64, status, ip string) (*models.Vehicle, error) {
	if _, err := s.Vehicles.FindByID(ctx, id); err != nil {
		return nil, errNotFound("vehicle %d not found", id)
	}
	if err := s.Vehicles.UpdateByID(ctx, id, map[string]any{"status": status}); err != nil {
		return nil, errPersistence(err)
	}
	s.Audit.Record(ctx, &actor, models.AuditActionUpdate, models.Vehicle{}.TableName(), id,
		map[string]any{"status": status}, ip)
	s.invalidateStats(ctx)
	return s.Get(ctx, id)
}

func (s *VehicleService) ToggleFeatured(ctx context.Context, actor, id int64, ip string) (*models.Vehicle, error) {
	v, err := s.Vehicles.FindByID(ctx, id)
	if err != nil {
		return nil, errNotFound("vehicle %d not found", id)
	}
	if err := s.Vehicles.UpdateByID(ctx, id, map[string]any{"is_featured": !v.IsFeatured}); err != nil {
		return nil, errPersistence(err)
	}
	s.Audit.Record(ctx, &actor, models.AuditActionUpdate, v.TableName(), id,
		map[string]any{"is_featured": !v.IsFeatured}, ip)
	return s.Get(ctx, id)
}

func (s *VehicleService) Featured(ctx context.Context, limit int) ([]*models.Vehicle, error) {
	if limit <= 0 {
		limit = 10
	}
	vehicles, err := s.Vehicles.Featured(ctx, limit)
	if err != nil {
		return nil, errPersistence(err)
	}
	return vehicles, nil
}

func (s *VehicleService) MostViewed(ctx context.Context, limit int) ([]*models.Vehicle, error) {
	if limit <= 0 {
		limit = 10
	}
	vehicles, err := s.Vehicles.MostViewed(ctx, limit)
	if err != nil {
		return nil, errPersistence(err)
	}
	return vehicles, nil
}

func (s *VehicleService) Statistics(ctx context.Context) (*types.VehicleStatistics, error) {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, vehicleStatsCacheKey).Bytes(); err == nil {
			var stats types.VehicleStatistics
			if json.Unmarshal(cached, &stats) == nil {
				return &stats, nil
			}
		}
	}

	stats, err := s.Vehicles.Statistics(ctx)
	if err != nil {
		return nil, errPersistence(err)
	}

	if s.Redis != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := s.Redis.Set(ctx, vehicleStatsCacheKey, payload, statsCacheTTL).Err(); err != nil {
				log.L.Warn("cache vehicle statistics", zap.Error(err))
			}
		}
	}
	return stats, nil
}

func (s *VehicleService) invalidateStats(ctx context.Context) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, vehicleStatsCacheKey).Err(); err != nil {
		log.L.Warn("invalidate vehicle statistics cache", zap.Error(err))
	}
}
