package dao

import (
	"context"

	"AutoSync/models"
	"AutoSync/types"

	"gorm.io/gorm"
)

type Vehicles struct {
	Repo[models.Vehicle]
}

func NewVehicles(db *gorm.DB) *Vehicles {
	return &Vehicles{
		Repo: NewRepo[models.Vehicle](db),
	}
}

var vehicleSortColumns = map[string]bool{
	"created_at":  true,
	"price":       true,
	"year":        true,
	"mileage":     true,
	"views_count": true,
	"brand":       true,
}

func (d *Vehicles) applyFilter(q *gorm.DB, f *types.VehicleFilter) *gorm.DB {
	if f.StandID != nil {
		q = q.Where("stand_id = ?", *f.StandID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Brand != "" {
		q = q.Where("brand = ?", f.Brand)
	}
	if f.FuelType != "" {
		q = q.Where("fuel_type = ?", f.FuelType)
	}
	if f.Transmission != "" {
		q = q.Where("transmission = ?", f.Transmission)
	}
	if f.Featured != nil {
		q = q.Where("is_featured = ?", *f.Featured)
	}
	if f.New != nil {
		q = q.Where("is_new = ?", *f.New)
	}
	if f.MinPrice != nil && f.MaxPrice != nil {
		q = q.Where("price BETWEEN ? AND ?", *f.MinPrice, *f.MaxPrice)
	}
	if f.MinYear != nil && f.MaxYear != nil {
		q = q.Where("year BETWEEN ? AND ?", *f.MinYear, *f.MaxYear)
	}
	if f.MinMileage != nil && f.MaxMileage != nil {
		q = q.Where("mileage BETWEEN ? AND ?", *f.MinMileage, *f.MaxMileage)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("brand LIKE ? OR model LIKE ? OR description LIKE ? OR reference LIKE ?",
			like, like, like, like)
	}
	return q
}

func (d *Vehicles) List(ctx context.Context, f *types.VehicleFilter) ([]*models.Vehicle, int64, error) {
	q := d.applyFilter(d.Db.WithContext(ctx).Model(&models.Vehicle{}), f)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := f.SortBy
	if !vehicleSortColumns[sortBy] {
		sortBy = "created_at"
	}
	order := "DESC"
	if f.SortOrder == "asc" {
		order = "ASC"
	}

	var vehicles []*models.Vehicle
	err := q.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("is_primary DESC, order_index ASC")
	}).
		Order(sortBy + " " + order).
		Limit(f.PerPage).
		Offset(f.Offset()).
		Find(&vehicles).Error
	return vehicles, total, err
}

func (d *Vehicles) FindWithImages(ctx context.Context, id int64) (*models.Vehicle, error) {
	var v models.Vehicle
	err := d.Db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_primary DESC, order_index ASC")
		}).
		Where("id = ?", id).
		First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (d *Vehicles) UpdateByID(ctx context.Context, id int64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return d.Db.WithContext(ctx).
		Model(&models.Vehicle{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (d *Vehicles) IncrementViews(ctx context.Context, id int64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Vehicle{}).
		Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error
}

func (d *Vehicles) Featured(ctx context.Context, limit int) ([]*models.Vehicle, error) {
	var vehicles []*models.Vehicle
	err := d.Db.WithContext(ctx).
		Preload("Images", "is_primary = ?", true).
		Where("is_featured = ? AND status = ?", true, models.VehicleStatusAvailable).
		Order("created_at DESC").
		Limit(limit).
		Find(&vehicles).Error
	return vehicles, err
}

func (d *Vehicles) MostViewed(ctx context.Context, limit int) ([]*models.Vehicle, error) {
	var vehicles []*models.Vehicle
	err := d.Db.WithContext(ctx).
		Preload("Images", "is_primary = ?", true).
		Order("views_count DESC").
		Limit(limit).
		Find(&vehicles).Error
	return vehicles, err
}

// CountByStand counts the stand's vehicles, optionally restricted to one status.
func (d *Vehicles) CountByStand(ctx context.Context, standID int64, status string) (int64, error) {
	q := d.Db.WithContext(ctx).Model(&models.Vehicle{}).Where("stand_id = ?", standID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var count int64
	err := q.Count(&count).Error
	return count, err
}

func (d *Vehicles) Statistics(ctx context.Context) (*types.VehicleStatistics, error) {
	var stats types.VehicleStatistics
	db := d.Db.WithContext(ctx).Model(&models.Vehicle{})

	if err := db.Session(&gorm.Session{}).Count(&stats.TotalVehicles).Error; err != nil {
		return nil, err
	}
	if err := db.Session(&gorm.Session{}).Where("status = ?", models.VehicleStatusAvailable).
		Count(&stats.AvailableVehicles).Error; err != nil {
		return nil, err
	}
	if err := db.Session(&gorm.Session{}).Where("status = ?", models.VehicleStatusSold).
		Count(&stats.SoldVehicles).Error; err != nil {
		return nil, err
	}
	if err := db.Session(&gorm.Session{}).Where("is_featured = ?", true).
		Count(&stats.FeaturedVehicles).Error; err != nil {
		return nil, err
	}
	err := d.Db.WithContext(ctx).Model(&models.Vehicle{}).
		Select("COALESCE(SUM(views_count), 0)").
		Scan(&stats.TotalViews).Error
	return &stats, err
}
