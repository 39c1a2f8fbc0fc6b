package types

import "gorm.io/datatypes"

type StandFilter struct {
	PageQuery
	City   string `form:"city"`
	Active *bool  `form:"active"`
	Search string `form:"search"`
}

type CreateStandRequest struct {
	Name          string         `json:"name" binding:"required,max=255"`
	Slug          string         `json:"slug" binding:"required,max=255"`
	Description   string         `json:"description"`
	Address       string         `json:"address" binding:"required"`
	City          string         `json:"city" binding:"required,max=100"`
	PostalCode    string         `json:"postal_code" binding:"max=10"`
	Phone         string         `json:"phone" binding:"max=20"`
	Email         string         `json:"email" binding:"omitempty,email"`
	Website       string         `json:"website"`
	LogoURL       string         `json:"logo_url"`
	Latitude      *float64       `json:"latitude"`
	Longitude     *float64       `json:"longitude"`
	BusinessHours datatypes.JSON `json:"business_hours"`
}

type UpdateStandRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Address     *string  `json:"address"`
	City        *string  `json:"city"`
	PostalCode  *string  `json:"postal_code"`
	Phone       *string  `json:"phone"`
	Email       *string  `json:"email" binding:"omitempty,email"`
	Website     *string  `json:"website"`
	LogoURL     *string  `json:"logo_url"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	IsActive    *bool    `json:"is_active"`
}

type UpdateBusinessHoursRequest struct {
	BusinessHours datatypes.JSON `json:"business_hours" binding:"required"`
}

type StandStatistics struct {
	TotalVehicles     int64   `json:"total_vehicles"`
	AvailableVehicles int64   `json:"available_vehicles"`
	TotalSales        int64   `json:"total_sales"`
	TotalRevenue      float64 `json:"total_revenue"`
	TotalInquiries    int64   `json:"total_inquiries"`
}
