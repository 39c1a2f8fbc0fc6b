package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Stand struct {
	ID            int64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name          string         `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Slug          string         `gorm:"column:slug;type:varchar(255);not null;uniqueIndex" json:"slug"`
	Description   string         `gorm:"column:description;type:text" json:"description"`
	Address       string         `gorm:"column:address;type:text;not null" json:"address"`
	City          string         `gorm:"column:city;type:varchar(100);not null;index" json:"city"`
	PostalCode    string         `gorm:"column:postal_code;type:varchar(10)" json:"postal_code"`
	Phone         string         `gorm:"column:phone;type:varchar(20)" json:"phone"`
	Email         string         `gorm:"column:email;type:varchar(255)" json:"email"`
	Website       string         `gorm:"column:website;type:varchar(255)" json:"website"`
	LogoURL       string         `gorm:"column:logo_url;type:varchar(500)" json:"logo_url"`
	Latitude      *float64       `gorm:"column:latitude;type:decimal(10,8)" json:"latitude"`
	Longitude     *float64       `gorm:"column:longitude;type:decimal(11,8)" json:"longitude"`
	BusinessHours datatypes.JSON `gorm:"column:business_hours;type:json" json:"business_hours"`
	IsActive      bool           `gorm:"column:is_active;not null;default:true;index" json:"is_active"`
	CreatedAt     time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Stand) TableName() string {
	return "stands"
}
