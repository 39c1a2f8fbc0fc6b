package service

import (
	"context"
	"encoding/json"
	"time"

	"AutoSync/dao"
	"AutoSync/models"
	"AutoSync/pkg/log"
	"AutoSync/types"

	"go.uber.org/zap"
)

var _ IAuditService = (*AuditService)(nil)

type IAuditService interface {
	// Record writes one audit row. Failures are logged, never propagated:
	// auditing must not fail the audited operation.
	Record(ctx context.Context, userID *int64, action, table string, recordID int64, changes any, ip string)

	List(ctx context.Context, f *types.AuditLogFilter) ([]*models.AuditLog, int64, error)
	Get(ctx context.Context, id int64) (*models.AuditLog, error)
	ActivityStatistics(ctx context.Context) (map[string]int64, error)
}

type AuditService struct {
	Logs *dao.AuditLogs
}

func (s *AuditService) Record(ctx context.Context, userID *int64, action, table string, recordID int64, changes any, ip string) {
	var payload []byte
	if changes != nil {
		var err error
		payload, err = json.Marshal(changes)
		if err != nil {
			log.L.Warn("marshal audit changes", zap.Error(err))
		}
	}

	entry := &models.AuditLog{
		UserID:    userID,
		Action:    action,
		Entity:    table,
		RecordID:  recordID,
		Changes:   payload,
		IPAddress: ip,
		CreatedAt: time.Now(),
	}
	if err := s.Logs.Create(ctx, entry); err != nil {
		log.L.Error("write audit log", zap.Error(err),
			zap.String("action", action),
			zap.String("table", table),
		)
	}
}

func (s *AuditService) List(ctx context.Context, f *types.AuditLogFilter) ([]*models.AuditLog, int64, error) {
	f.Normalize()
	logs, total, err := s.Logs.List(ctx, f)
	if err != nil {
		return nil, 0, errPersistence(err)
	}
	return logs, total, nil
}

func (s *AuditService) Get(ctx context.Context, id int64) (*models.AuditLog, error) {
	entry, err := s.Logs.FindByID(ctx, id)
	if err != nil {
		return nil, errNotFound("audit log %d not found", id)
	}
	return entry, nil
}

func (s *AuditService) ActivityStatistics(ctx context.Context) (map[string]int64, error) {
	counts, err := s.Logs.CountByAction(ctx)
	if err != nil {
		return nil, errPersistence(err)
	}
	return counts, nil
}
