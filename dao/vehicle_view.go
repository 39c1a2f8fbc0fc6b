package dao

import (
	"context"
	"time"

	"AutoSync/models"
	"AutoSync/types"

	"gorm.io/gorm"
)

type VehicleViews struct {
	Repo[models.VehicleView]
}

func NewVehicleViews(db *gorm.DB) *VehicleViews {
	return &VehicleViews{
		Repo: NewRepo[models.VehicleView](db),
	}
}

func (d *VehicleViews) ListByVehicle(ctx context.Context, vehicleID int64, limit, offset int) ([]*models.VehicleView, int64, error) {
	q := d.Db.WithContext(ctx).Model(&models.VehicleView{}).
		Where("vehicle_id = ?", vehicleID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var views []*models.VehicleView
	err := q.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&views).Error
	return views, total, err
}

func (d *VehicleViews) Statistics(ctx context.Context) (*types.ViewStatistics, error) {
	var stats types.ViewStatistics
	db := d.Db.WithContext(ctx).Model(&models.VehicleView{})

	if err := db.Session(&gorm.Session{}).Count(&stats.TotalViews).Error; err != nil {
		return nil, err
	}
	if err := db.Session(&gorm.Session{}).
		Where("user_id IS NOT NULL").
		Distinct("user_id").
		Count(&stats.UniqueUsers).Error; err != nil {
		return nil, err
	}
	now := time.Now()
	if err := db.Session(&gorm.Session{}).
		Where("created_at >= ?", now.Add(-24*time.Hour)).
		Count(&stats.Last24h).Error; err != nil {
		return nil, err
	}
	err := db.Session(&gorm.Session{}).
		Where("created_at >= ?", now.Add(-7*24*time.Hour)).
		Count(&stats.Last7d).Error
	return &stats, err
}
