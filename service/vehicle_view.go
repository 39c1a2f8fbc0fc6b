package service

import (
	"context"
	"fmt"
	"time"

	"AutoSync/dao"
	"AutoSync/models"
	"AutoSync/pkg/log"
	"AutoSync/types"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// A session's repeat views of the same vehicle inside this window are ignored.
const viewDedupWindow = 30 * time.Minute

var _ IVehicleViewService = (*VehicleViewService)(nil)

type IVehicleViewService interface {
	// Record stores one view and bumps the vehicle's counter. Views are
	// deduplicated per session (or per IP when no session is given).
	// Returns false when the view was a duplicate and dropped.
	Record(ctx context.Context, req *types.RecordViewRequest) (bool, error)

	ListByVehicle(ctx context.Context, vehicleID int64, page *types.PageQuery) ([]*models.VehicleView, int64, error)
	Statistics(ctx context.Context) (*types.ViewStatistics, error)
}

type VehicleViewService struct {
	Views    *dao.VehicleViews
	Vehicles *dao.Vehicles
	Redis    *redis.Client
}

func (s *VehicleViewService) dedupKey(req *types.RecordViewRequest) string {
	visitor := req.SessionID
	if visitor == "" {
		visitor = req.IPAddress
	}
	return fmt.Sprintf("view:%d:%s", req.VehicleID, visitor)
}

func (s *VehicleViewService) Record(ctx context.Context, req *types.RecordViewRequest) (bool, error) {
	exists, err := s.Vehicles.IsExist(ctx, "id = ?", req.VehicleID)
	if err != nil {
		return false, errPersistence(err)
	}
	if !exists {
		return false, errNotFound("vehicle %d not found", req.VehicleID)
	}

	if s.Redis != nil {
		fresh, err := s.Redis.SetNX(ctx, s.dedupKey(req), 1, viewDedupWindow).Result()
		if err != nil {
			// redis down must not lose views, fall through and record
			log.L.Warn("view dedup check failed", zap.Error(err))
		} else if !fresh {
			return false, nil
		}
	}

	view := &models.VehicleView{
		VehicleID: req.VehicleID,
		UserID:    req.UserID,
		IPAddress: req.IPAddress,
		UserAgent: req.UserAgent,
		Referer:   req.Referer,
		SessionID: req.SessionID,
	}
	if err := s.Views.Create(ctx, view); err != nil {
		return false, errPersistence(err)
	}
	if err := s.Vehicles.IncrementViews(ctx, req.VehicleID); err != nil {
		log.L.Warn("increment vehicle views", zap.Int64("vehicle_id", req.VehicleID), zap.Error(err))
	}
	return true, nil
}

func (s *VehicleViewService) ListByVehicle(ctx context.Context, vehicleID int64, page *types.PageQuery) ([]*models.VehicleView, int64, error) {
	exists, err := s.Vehicles.IsExist(ctx, "id = ?", vehicleID)
	if err != nil {
		return nil, 0, errPersistence(err)
	}
	if !exists {
		return nil, 0, errNotFound("vehicle %d not found", vehicleID)
	}

	page.Normalize()
	views, total, err := s.Views.ListByVehicle(ctx, vehicleID, page.PerPage, page.Offset())
	if err != nil {
		return nil, 0, errPersistence(err)
	}
	return views, total, nil
}

func (s *VehicleViewService) Statistics(ctx context.Context) (*types.ViewStatistics, error) {
	stats, err := s.Views.Statistics(ctx)
	if err != nil {
		return nil, errPersistence(err)
	}
	return stats, nil
}
