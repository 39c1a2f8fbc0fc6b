package dao

import (
	"context"

	"AutoSync/models"

	"gorm.io/gorm"
)

type VehicleImages struct {
	Repo[models.VehicleImage]
}

func NewVehicleImages(db *gorm.DB) *VehicleImages {
	return &VehicleImages{
		Repo: NewRepo[models.VehicleImage](db),
	}
}

// ListByVehicle returns a vehicle's images in display order:
// primary first, then ascending order_index.
func (d *VehicleImages) ListByVehicle(ctx context.Context, vehicleID int64) ([]*models.VehicleImage, error) {
	var images []*models.VehicleImage
	err := d.Db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("is_primary DESC, order_index ASC").
		Find(&images).Error
	return images, err
}

func (d *VehicleImages) CountByVehicle(ctx context.Context, vehicleID int64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.VehicleImage{}).
		Where("vehicle_id = ?", vehicleID).
		Count(&count).Error
	return count, err
}

// FindByVehicleAndID returns the image only if it belongs to the vehicle.
func (d *VehicleImages) FindByVehicleAndID(ctx context.Context, vehicleID, imageID int64) (*models.VehicleImage, error) {
	return d.FindByWhere(ctx, "vehicle_id = ? AND id = ?", vehicleID, imageID)
}

// CountByVehicleAndIDs reports how many of the given ids belong to the vehicle.
func (d *VehicleImages) CountByVehicleAndIDs(ctx context.Context, vehicleID int64, ids []int64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.VehicleImage{}).
		Where("vehicle_id = ? AND id IN ?", vehicleID, ids).
		Count(&count).Error
	return count, err
}

// NextOrdered returns the lowest-ordered image of the vehicle, skipping
// excludeID. Used to promote a replacement primary after a delete.
func (d *VehicleImages) NextOrdered(ctx context.Context, vehicleID, excludeID int64) (*models.VehicleImage, error) {
	var img models.VehicleImage
	err := d.Db.WithContext(ctx).
		Where("vehicle_id = ? AND id != ?", vehicleID, excludeID).
		Order("is_primary DESC, order_index ASC").
		First(&img).Error
	if err != nil {
		return nil, err
	}
	return &img, nil
}
