package service

import (
	"context"
	"testing"

	"AutoSync/models"
	"AutoSync/types"
)

func TestAuditRecordPersistsEntry(t *testing.T) {
	db := setupDB(t)
	svc := newAuditService(db)
	actor := int64(7)

	svc.Record(context.Background(), &actor, models.AuditActionUpdate,
		models.Vehicle{}.TableName(), 42, map[string]any{"status": "sold"}, "127.0.0.1")

	var entry models.AuditLog
	if err := db.First(&entry).Error; err != nil {
		t.Fatalf("load audit log: %v", err)
	}
	if entry.Action != models.AuditActionUpdate {
		t.Errorf("action = %s, want update", entry.Action)
	}
	if entry.Entity != "vehicles" {
		t.Errorf("entity = %s, want vehicles", entry.Entity)
	}
	if entry.RecordID != 42 {
		t.Errorf("record_id = %d, want 42", entry.RecordID)
	}
	if entry.UserID == nil || *entry.UserID != actor {
		t.Errorf("user_id = %v, want %d", entry.UserID, actor)
	}
}

func TestAuditListFiltersByEntity(t *testing.T) {
	db := setupDB(t)
	svc := newAuditService(db)
	actor := int64(7)

	svc.Record(context.Background(), &actor, models.AuditActionCreate,
		models.Vehicle{}.TableName(), 1, nil, "127.0.0.1")
	svc.Record(context.Background(), &actor, models.AuditActionCreate,
		models.Stand{}.TableName(), 2, nil, "127.0.0.1")

	logs, total, err := svc.List(context.Background(), &types.AuditLogFilter{TableName: "stands"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || len(logs) != 1 {
		t.Fatalf("total = %d, len = %d, want 1/1", total, len(logs))
	}
	if logs[0].Entity != "stands" {
		t.Errorf("entity = %s, want stands", logs[0].Entity)
	}
}
