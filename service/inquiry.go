package service

import (
	"context"
	"fmt"
	"time"

	"AutoSync/dao"
	"AutoSync/models"
	"AutoSync/types"
)

var _ IInquiryService = (*InquiryService)(nil)

type IInquiryService interface {
	List(ctx context.Context, f *types.InquiryFilter) ([]*models.Inquiry, int64, error)
	Get(ctx context.Context, id int64) (*models.Inquiry, error)

	// Create is the public entry point, no authentication required.
	Create(ctx context.Context, req *types.CreateInquiryRequest, ip string) (*models.Inquiry, error)

	// Update changes status and notes. The first move away from "new"
	// stamps contacted_at.
	Update(ctx context.Context, actor, id int64, req *types.UpdateInquiryRequest, ip string) (*models.Inquiry, error)

	Assign(ctx context.Context, actor, id int64, req *types.AssignInquiryRequest, ip string) (*models.Inquiry, error)
	AddNote(ctx context.Context, actor, id int64, req *types.AddInquiryNoteRequest, ip string) (*models.Inquiry, error)
	Delete(ctx context.Context, actor, id int64, ip string) error
	Statistics(ctx context.Context) (*types.InquiryStatistics, error)
}

type InquiryService struct {
	Inquiries *dao.Inquiries
	Vehicles  *dao.Vehicles
	Users     *dao.Users
	Audit     IAuditService
}

func (s *InquiryService) List(ctx context.Context, f *types.InquiryFilter) ([]*models.Inquiry, int64, error) {
	f.Normalize()
	inquiries, total, err := s.Inquiries.List(ctx, f)
	if err != nil {
		return nil, 0, errPersistence(err)
	}
	return inquiries, total, nil
}

func (s *InquiryService) Get(ctx context.Context, id int64) (*models.Inquiry, error) {
	inquiry, err := s.Inquiries.FindByID(ctx, id)
	if err != nil {
		return nil, errNotFound("inquiry %d not found", id)
	}
	return inquiry, nil
}

func (s *InquiryService) Create(ctx context.Context, req *types.CreateInquiryRequest, ip string) (*models.Inquiry, error) {
	if req.VehicleID != nil {
		exists, err := s.Vehicles.IsExist(ctx, "id = ?", *req.VehicleID)
		if err != nil {
			return nil, errPersistence(err)
		}
		if !exists {
			return nil, errValidation("vehicle %d does not exist", *req.VehicleID)
		}
	}

	typ := req.Type
	if typ == "" {
		typ = models.InquiryTypeGeneral
	}
	inquiry := &models.Inquiry{
		VehicleID: req.VehicleID,
		StandID:   req.StandID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Type:      typ,
		Status:    models.InquiryStatusNew,
		Message:   req.Message,
	}
	if err := s.Inquiries.Create(ctx, inquiry); err != nil {
		return nil, errPersistence(err)
	}

	s.Audit.Record(ctx, nil, models.AuditActionCreate, inquiry.TableName(), inquiry.ID, nil, ip)
	return inquiry, nil
}

func (s *InquiryService) Update(ctx context.Context, actor, id int64, req *types.UpdateInquiryRequest, ip string) (*models.Inquiry, error) {
	inquiry, err := s.Inquiries.FindByID(ctx, id)
	if err != nil {
		return nil, errNotFound("inquiry %d not found", id)
	}

	updates := map[string]any{}
	if req.Status != nil {
		updates["status"] = *req.Status
		if inquiry.ContactedAt == nil && *req.Status != models.InquiryStatusNew {
			updates["contacted_at"] = time.Now()
		}
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if err := s.Inquiries.UpdateByID(ctx, id, updates); err != nil {
		return nil, errPersistence(err)
	}

	s.Audit.Record(ctx, &actor, models.AuditActionUpdate, inquiry.TableName(), id, updates, ip)
	return s.refetch(ctx, id)
}

func (s *InquiryService) Assign(ctx context.Context, actor, id int64, req *types.AssignInquiryRequest, ip string) (*models.Inquiry, error) {
	inquiry, err := s.Inquiries.FindByID(ctx, id)
	if err != nil {
		return nil, errNotFound("inquiry %d not found", id)
	}
	assignee, err := s.Users.FindByID(ctx, req.AssignedTo)
	if err != nil {
		return nil, errNotFound("user %d not found", req.AssignedTo)
	}
	if !assignee.IsActive {
		return nil, errValidation("user %d is not active", req.AssignedTo)
	}

	if err := s.Inquiries.UpdateByID(ctx, id, map[string]any{"assigned_to": req.AssignedTo}); err != nil {
		return nil, errPersistence(err)
	}

	s.Audit.Record(ctx, &actor, models.AuditActionUpdate, inquiry.TableName(), id,
		map[string]any{"assigned_to": req.AssignedTo}, ip)
	return s.refetch(ctx, id)
}

func (s *InquiryService) AddNote(ctx context.Context, actor, id int64, req *types.AddInquiryNoteRequest, ip string) (*models.Inquiry, error) {
	inquiry, err := s.Inquiries.FindByID(ctx, id)
	if err != nil {
		return nil, errNotFound("inquiry %d not found", id)
	}

	stamped := fmt.Sprintf("[%s] %s", time.Now().Format("2006-01-02 15:04"), req.Note)
	notes := stamped
	if inquiry.Notes != "" {
		notes = inquiry.Notes + "\n" + stamped
	}
	if err := s.Inquiries.UpdateByID(ctx, id, map[string]any{"notes": notes}); err != nil {
		return nil, errPersistence(err)
	}

	s.Audit.Record(ctx, &actor, models.AuditActionUpdate, inquiry.TableName(), id,
		map[string]any{"note": req.Note}, ip)
	return s.refetch(ctx, id)
}

func (s *InquiryService) refetch(ctx context.Context, id int64) (*models.Inquiry, error) {
	inquiry, err := s.Inquiries.FindByID(ctx, id)
	if err != nil {
		return nil, errPersistence(err)
	}
	return inquiry, nil
}

func (s *InquiryService) Delete(ctx context.Context, actor, id int64, ip string) error {
	if _, err := s.Inquiries.FindByID(ctx, id); err != nil {
		return errNotFound("inquiry %d not found", id)
	}
	if err := s.Inquiries.DeleteByID(ctx, id); err != nil {
		return errPersistence(err)
	}
	s.Audit.Record(ctx, &actor, models.AuditActionDelete, models.Inquiry{}.TableName(), id, nil, ip)
	return nil
}

func (s *InquiryService) Statistics(ctx context.Context) (*types.InquiryStatistics, error) {
	stats, err := s.Inquiries.Statistics(ctx)
	if err != nil {
		return nil, errPersistence(err)
	}
	return stats, nil
}
