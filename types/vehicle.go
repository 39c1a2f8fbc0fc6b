package types

import "gorm.io/datatypes"

type VehicleFilter struct {
	PageQuery
	StandID      *int64   `form:"stand_id"`
	Status       string   `form:"status"`
	Brand        string   `form:"brand"`
	FuelType     string   `form:"fuel_type"`
	Transmission string   `form:"transmission"`
	Featured     *bool    `form:"featured"`
	New          *bool    `form:"new"`
	MinPrice     *float64 `form:"min_price"`
	MaxPrice     *float64 `form:"max_price"`
	MinYear      *int     `form:"min_year"`
	MaxYear      *int     `form:"max_year"`
	MinMileage   *int     `form:"min_mileage"`
	MaxMileage   *int     `form:"max_mileage"`
	Search       string   `form:"search"`
	SortBy       string   `form:"sort_by"`
	SortOrder    string   `form:"sort_order"`
}

type CreateVehicleRequest struct {
	StandID            int64          `json:"stand_id" binding:"required"`
	Reference          string         `json:"reference" binding:"required,max=50"`
	Brand              string         `json:"brand" binding:"required,max=100"`
	Model              string         `json:"model" binding:"required,max=100"`
	Year               int            `json:"year" binding:"required,min=1900"`
	Mileage            int            `json:"mileage" binding:"min=0"`
	FuelType           string         `json:"fuel_type" binding:"required,oneof=gasoline diesel hybrid electric lpg"`
	Transmission       string         `json:"transmission" binding:"required,oneof=manual automatic semi_automatic"`
	EngineSize         *float64       `json:"engine_size"`
	PowerHP            *int           `json:"power_hp"`
	Doors              int            `json:"doors"`
	Seats              int            `json:"seats"`
	Color              string         `json:"color" binding:"max=50"`
	Price              float64        `json:"price" binding:"required,gt=0"`
	OriginalPrice      *float64       `json:"original_price"`
	DiscountPercentage float64        `json:"discount_percentage"`
	Description        string         `json:"description"`
	Features           datatypes.JSON `json:"features"`
	IsFeatured         bool           `json:"is_featured"`
	IsNew              bool           `json:"is_new"`
}

type UpdateVehicleRequest struct {
	StandID            *int64          `json:"stand_id"`
	Brand              *string         `json:"brand"`
	Model              *string         `json:"model"`
	Year               *int            `json:"year"`
	Mileage            *int            `json:"mileage"`
	FuelType           *string         `json:"fuel_type" binding:"omitempty,oneof=gasoline diesel hybrid electric lpg"`
	Transmission       *string         `json:"transmission" binding:"omitempty,oneof=manual automatic semi_automatic"`
	EngineSize         *float64        `json:"engine_size"`
	PowerHP            *int            `json:"power_hp"`
	Doors              *int            `json:"doors"`
	Seats              *int            `json:"seats"`
	Color              *string         `json:"color"`
	Price              *float64        `json:"price" binding:"omitempty,gt=0"`
	OriginalPrice      *float64        `json:"original_price"`
	DiscountPercentage *float64        `json:"discount_percentage"`
	Description        *string         `json:"description"`
	Features           *datatypes.JSON `json:"features"`
	IsNew              *bool           `json:"is_new"`
}

type UpdateVehicleStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=available sold reserved maintenance"`
}

type VehicleStatistics struct {
	TotalVehicles     int64 `json:"total_vehicles"`
	AvailableVehicles int64 `json:"available_vehicles"`
	SoldVehicles      int64 `json:"sold_vehicles"`
	FeaturedVehicles  int64 `json:"featured_vehicles"`
	TotalViews        int64 `json:"total_views"`
}
