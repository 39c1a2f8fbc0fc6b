package dao

import (
	"context"

	"AutoSync/models"

	"gorm.io/gorm"
)

type Favorites struct {
	Repo[models.Favorite]
}

func NewFavorites(db *gorm.DB) *Favorites {
	return &Favorites{
		Repo: NewRepo[models.Favorite](db),
	}
}

func (d *Favorites) ListByUser(ctx context.Context, userID int64) ([]*models.Favorite, error) {
	var favorites []*models.Favorite
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	return favorites, err
}

func (d *Favorites) FirstOrCreate(ctx context.Context, userID, vehicleID int64) (*models.Favorite, error) {
	fav := &models.Favorite{UserID: userID, VehicleID: vehicleID}
	err := d.Db.WithContext(ctx).
		Where("user_id = ? AND vehicle_id = ?", userID, vehicleID).
		FirstOrCreate(fav).Error
	return fav, err
}

func (d *Favorites) Find(ctx context.Context, userID, vehicleID int64) (*models.Favorite, error) {
	return d.FindByWhere(ctx, "user_id = ? AND vehicle_id = ?", userID, vehicleID)
}

func (d *Favorites) Delete(ctx context.Context, userID, vehicleID int64) error {
	return d.Db.WithContext(ctx).
		Where("user_id = ? AND vehicle_id = ?", userID, vehicleID).
		Delete(&models.Favorite{}).Error
}
