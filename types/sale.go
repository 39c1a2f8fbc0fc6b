package types

import "time"

type SaleFilter struct {
	PageQuery
	SellerID      *int64     `form:"seller_id"`
	StandID       *int64     `form:"stand_id"`
	PaymentMethod string     `form:"payment_method"`
	From          *time.Time `form:"from" time_format:"2006-01-02"`
	To            *time.Time `form:"to" time_format:"2006-01-02"`
}

type CreateSaleRequest struct {
	VehicleID        int64    `json:"vehicle_id" binding:"required"`
	SellerID         int64    `json:"seller_id" binding:"required"`
	StandID          int64    `json:"stand_id" binding:"required"`
	SalePrice        float64  `json:"sale_price" binding:"required,gt=0"`
	CommissionAmount *float64 `json:"commission_amount" binding:"omitempty,min=0"`
	PaymentMethod    string   `json:"payment_method" binding:"required,oneof=cash financing lease trade_in"`
	CustomerName     string   `json:"customer_name" binding:"required,max=255"`
	CustomerEmail    string   `json:"customer_email" binding:"omitempty,email"`
	CustomerPhone    string   `json:"customer_phone" binding:"max=20"`
	Notes            string   `json:"notes"`
	SoldAt           string   `json:"sold_at" binding:"required"`
}

type UpdateSaleRequest struct {
	SalePrice        *float64 `json:"sale_price" binding:"omitempty,gt=0"`
	CommissionAmount *float64 `json:"commission_amount" binding:"omitempty,min=0"`
	PaymentMethod    *string  `json:"payment_method" binding:"omitempty,oneof=cash financing lease trade_in"`
	CustomerName     *string  `json:"customer_name"`
	CustomerEmail    *string  `json:"customer_email" binding:"omitempty,email"`
	CustomerPhone    *string  `json:"customer_phone"`
	Notes            *string  `json:"notes"`
}

type SaleStatistics struct {
	TotalSales       int64   `json:"total_sales"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalCommissions float64 `json:"total_commissions"`
	AveragePrice     float64 `json:"average_price"`
}

type TopSeller struct {
	SellerID   int64   `json:"seller_id"`
	SellerName string  `json:"seller_name"`
	SalesCount int64   `json:"sales_count"`
	Revenue    float64 `json:"revenue"`
}
