package models

import "time"

// VehicleImage is one photo attached to one vehicle. At most one image per
// vehicle carries is_primary, and a non-empty set always has exactly one.
// All writes go through service.VehicleImageService so the invariant holds.
type VehicleImage struct {
	ID         int64     `gorm:"column:id;primaryKey" json:"id"`
	VehicleID  int64     `gorm:"column:vehicle_id;not null;index" json:"vehicle_id"`
	ExternalID string    `gorm:"column:external_id;type:varchar(255);index" json:"external_id"`
	URL        string    `gorm:"column:url;type:varchar(500);not null" json:"url"`
	AltText    string    `gorm:"column:alt_text;type:varchar(255)" json:"alt_text"`
	IsPrimary  bool      `gorm:"column:is_primary;not null;default:false;index" json:"is_primary"`
	OrderIndex int       `gorm:"column:order_index;not null;default:0;index" json:"order_index"`
	FileSize   int       `gorm:"column:file_size" json:"file_size"`
	Width      int       `gorm:"column:width" json:"width"`
	Height     int       `gorm:"column:height" json:"height"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (VehicleImage) TableName() string {
	return "vehicle_images"
}
