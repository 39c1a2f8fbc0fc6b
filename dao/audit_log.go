package dao

import (
	"context"

	"AutoSync/models"
	"AutoSync/types"

	"gorm.io/gorm"
)

type AuditLogs struct {
	Repo[models.AuditLog]
}

func NewAuditLogs(db *gorm.DB) *AuditLogs {
	return &AuditLogs{
		Repo: NewRepo[models.AuditLog](db),
	}
}

func (d *AuditLogs) List(ctx context.Context, f *types.AuditLogFilter) ([]*models.AuditLog, int64, error) {
	q := d.Db.WithContext(ctx).Model(&models.AuditLog{})
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.TableName != "" {
		q = q.Where("table_name = ?", f.TableName)
	}
	if f.RecordID != nil {
		q = q.Where("record_id = ?", *f.RecordID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []*models.AuditLog
	err := q.Order("created_at DESC").
		Limit(f.PerPage).
		Offset(f.Offset()).
		Find(&logs).Error
	return logs, total, err
}

func (d *AuditLogs) CountByAction(ctx context.Context) (map[string]int64, error) {
	type row struct {
		Action string
		Count  int64
	}
	var rows []row
	err := d.Db.WithContext(ctx).Model(&models.AuditLog{}).
		Select("action, COUNT(*) AS count").
		Group("action").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Action] = r.Count
	}
	return out, nil
}
