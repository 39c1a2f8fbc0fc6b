package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleSeller  = "seller"
	RoleViewer  = "viewer"
)

type User struct {
	ID             int64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name           string         `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Email          string         `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	Password       string         `gorm:"column:password;type:varchar(255);not null" json:"-"`
	Role           string         `gorm:"column:role;type:varchar(20);not null;default:'viewer';index" json:"role"`
	Phone          string         `gorm:"column:phone;type:varchar(20)" json:"phone"`
	AvatarURL      string         `gorm:"column:avatar_url;type:varchar(500)" json:"avatar_url"`
	StandID        *int64         `gorm:"column:stand_id;index" json:"stand_id"`
	CommissionRate float64        `gorm:"column:commission_rate;type:decimal(5,2);not null;default:0" json:"commission_rate"`
	IsActive       bool           `gorm:"column:is_active;not null;default:true;index" json:"is_active"`
	LastLoginAt    *time.Time     `gorm:"column:last_login_at" json:"last_login_at"`
	CreatedAt      time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (User) TableName() string {
	return "users"
}
