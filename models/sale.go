package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PaymentCash      = "cash"
	PaymentFinancing = "financing"
	PaymentLease     = "lease"
	PaymentTradeIn   = "trade_in"
)

type Sale struct {
	ID               int64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	VehicleID        int64          `gorm:"column:vehicle_id;not null;index" json:"vehicle_id"`
	SellerID         int64          `gorm:"column:seller_id;not null;index" json:"seller_id"`
	StandID          int64          `gorm:"column:stand_id;not null;index" json:"stand_id"`
	SalePrice        float64        `gorm:"column:sale_price;type:decimal(10,2);not null;index" json:"sale_price"`
	CommissionAmount float64        `gorm:"column:commission_amount;type:decimal(10,2);not null;default:0" json:"commission_amount"`
	PaymentMethod    string         `gorm:"column:payment_method;type:varchar(20);not null;default:'cash'" json:"payment_method"`
	CustomerName     string         `gorm:"column:customer_name;type:varchar(255);not null" json:"customer_name"`
	CustomerEmail    string         `gorm:"column:customer_email;type:varchar(255)" json:"customer_email"`
	CustomerPhone    string         `gorm:"column:customer_phone;type:varchar(20)" json:"customer_phone"`
	Notes            string         `gorm:"column:notes;type:text" json:"notes"`
	SoldAt           time.Time      `gorm:"column:sold_at;not null;index" json:"sold_at"`
	CreatedAt        time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Sale) TableName() string {
	return "sales"
}
