package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	VehicleStatusAvailable   = "available"
	VehicleStatusSold        = "sold"
	VehicleStatusReserved    = "reserved"
	VehicleStatusMaintenance = "maintenance"
)

const (
	FuelGasoline = "gasoline"
	FuelDiesel   = "diesel"
	FuelHybrid   = "hybrid"
	FuelElectric = "electric"
	FuelLPG      = "lpg"
)

const (
	TransmissionManual        = "manual"
	TransmissionAutomatic     = "automatic"
	TransmissionSemiAutomatic = "semi_automatic"
)

type Vehicle struct {
	ID                 int64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	StandID            int64          `gorm:"column:stand_id;not null;index" json:"stand_id"`
	Reference          string         `gorm:"column:reference;type:varchar(50);not null;uniqueIndex" json:"reference"`
	Brand              string         `gorm:"column:brand;type:varchar(100);not null;index" json:"brand"`
	Model              string         `gorm:"column:model;type:varchar(100);not null;index" json:"model"`
	Year               int            `gorm:"column:year;not null;index" json:"year"`
	Mileage            int            `gorm:"column:mileage;not null" json:"mileage"`
	FuelType           string         `gorm:"column:fuel_type;type:varchar(20);not null" json:"fuel_type"`
	Transmission       string         `gorm:"column:transmission;type:varchar(20);not null" json:"transmission"`
	EngineSize         *float64       `gorm:"column:engine_size;type:decimal(3,1)" json:"engine_size"`
	PowerHP            *int           `gorm:"column:power_hp" json:"power_hp"`
	Doors              int            `gorm:"column:doors;not null;default:5" json:"doors"`
	Seats              int            `gorm:"column:seats;not null;default:5" json:"seats"`
	Color              string         `gorm:"column:color;type:varchar(50)" json:"color"`
	Price              float64        `gorm:"column:price;type:decimal(10,2);not null;index" json:"price"`
	OriginalPrice      *float64       `gorm:"column:original_price;type:decimal(10,2)" json:"original_price"`
	DiscountPercentage float64        `gorm:"column:discount_percentage;type:decimal(5,2);not null;default:0" json:"discount_percentage"`
	Description        string         `gorm:"column:description;type:text" json:"description"`
	Features           datatypes.JSON `gorm:"column:features;type:json" json:"features"`
	Status             string         `gorm:"column:status;type:varchar(20);not null;default:'available';index" json:"status"`
	IsFeatured         bool           `gorm:"column:is_featured;not null;default:false;index" json:"is_featured"`
	IsNew              bool           `gorm:"column:is_new;not null;default:false" json:"is_new"`
	ViewsCount         int64          `gorm:"column:views_count;not null;default:0;index" json:"views_count"`
	CreatedAt          time.Time      `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`

	Images []VehicleImage `gorm:"foreignKey:VehicleID" json:"images,omitempty"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}
