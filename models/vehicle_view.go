package models

import "time"

type VehicleView struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	VehicleID int64     `gorm:"column:vehicle_id;not null;index" json:"vehicle_id"`
	UserID    *int64    `gorm:"column:user_id;index" json:"user_id"`
	IPAddress string    `gorm:"column:ip_address;type:varchar(45)" json:"ip_address"`
	UserAgent string    `gorm:"column:user_agent;type:varchar(500)" json:"user_agent"`
	Referer   string    `gorm:"column:referer;type:varchar(500)" json:"referer"`
	SessionID string    `gorm:"column:session_id;type:varchar(255)" json:"session_id"`
	CreatedAt time.Time `gorm:"column:created_at;index" json:"created_at"`
}

func (VehicleView) TableName() string {
	return "vehicle_views"
}
