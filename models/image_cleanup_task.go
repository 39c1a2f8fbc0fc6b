package models

import "time"

// ImageCleanupTask queues a remote object whose best-effort delete failed.
// A cron worker retries until the delete succeeds or attempts run out.
type ImageCleanupTask struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ExternalID string    `gorm:"column:external_id;type:varchar(255);not null" json:"external_id"`
	Attempts   int       `gorm:"column:attempts;not null;default:0" json:"attempts"`
	LastError  string    `gorm:"column:last_error;type:varchar(500)" json:"last_error"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (ImageCleanupTask) TableName() string {
	return "image_cleanup_tasks"
}
