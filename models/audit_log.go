package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
	AuditActionUpload = "upload"
	AuditActionLogin  = "login"
	AuditActionLogout = "logout"
)

type AuditLog struct {
	ID        int64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    *int64         `gorm:"column:user_id;index" json:"user_id"`
	Action    string         `gorm:"column:action;type:varchar(20);not null;index" json:"action"`
	Entity    string         `gorm:"column:table_name;type:varchar(64);index" json:"table_name"`
	RecordID  int64          `gorm:"column:record_id;index" json:"record_id"`
	Changes   datatypes.JSON `gorm:"column:changes;type:json" json:"changes"`
	IPAddress string         `gorm:"column:ip_address;type:varchar(45)" json:"ip_address"`
	CreatedAt time.Time      `gorm:"column:created_at;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
