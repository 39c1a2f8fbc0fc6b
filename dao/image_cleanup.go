package dao

import (
	"context"

	"AutoSync/models"

	"gorm.io/gorm"
)

type ImageCleanupTasks struct {
	Repo[models.ImageCleanupTask]
}

func NewImageCleanupTasks(db *gorm.DB) *ImageCleanupTasks {
	return &ImageCleanupTasks{
		Repo: NewRepo[models.ImageCleanupTask](db),
	}
}

// Pending returns tasks that still have retry budget, oldest first.
func (d *ImageCleanupTasks) Pending(ctx context.Context, maxAttempts, limit int) ([]*models.ImageCleanupTask, error) {
	var tasks []*models.ImageCleanupTask
	err := d.Db.WithContext(ctx).
		Where("attempts < ?", maxAttempts).
		Order("created_at ASC").
		Limit(limit).
		Find(&tasks).Error
	return tasks, err
}

func (d *ImageCleanupTasks) MarkFailed(ctx context.Context, id int64, lastError string) error {
	return d.Db.WithContext(ctx).
		Model(&models.ImageCleanupTask{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"attempts":   gorm.Expr("attempts + 1"),
			"last_error": lastError,
		}).Error
}
