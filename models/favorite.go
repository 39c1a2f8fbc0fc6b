package models

import "time"

type Favorite struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:idx_user_vehicle,priority:1" json:"user_id"`
	VehicleID int64     `gorm:"column:vehicle_id;not null;uniqueIndex:idx_user_vehicle,priority:2" json:"vehicle_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Favorite) TableName() string {
	return "favorites"
}
