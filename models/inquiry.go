package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	InquiryTypeGeneral   = "general"
	InquiryTypeVehicle   = "vehicle"
	InquiryTypeTestDrive = "test_drive"
	InquiryTypeFinancing = "financing"
	InquiryTypeTradeIn   = "trade_in"
)

const (
	InquiryStatusNew       = "new"
	InquiryStatusContacted = "contacted"
	InquiryStatusQualified = "qualified"
	InquiryStatusConverted = "converted"
	InquiryStatusLost      = "lost"
)

type Inquiry struct {
	ID          int64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	VehicleID   *int64         `gorm:"column:vehicle_id;index" json:"vehicle_id"`
	StandID     *int64         `gorm:"column:stand_id;index" json:"stand_id"`
	AssignedTo  *int64         `gorm:"column:assigned_to;index" json:"assigned_to"`
	Name        string         `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Email       string         `gorm:"column:email;type:varchar(255);not null;index" json:"email"`
	Phone       string         `gorm:"column:phone;type:varchar(20)" json:"phone"`
	Type        string         `gorm:"column:type;type:varchar(20);not null;default:'general';index" json:"type"`
	Status      string         `gorm:"column:status;type:varchar(20);not null;default:'new';index" json:"status"`
	Message     string         `gorm:"column:message;type:text;not null" json:"message"`
	Notes       string         `gorm:"column:notes;type:text" json:"notes"`
	ContactedAt *time.Time     `gorm:"column:contacted_at" json:"contacted_at"`
	CreatedAt   time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (Inquiry) TableName() string {
	return "inquiries"
}
