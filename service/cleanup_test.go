package service

import (
	"context"
	"errors"
	"testing"

	"AutoSync/config"
	"AutoSync/dao"
	"AutoSync/models"
)

func TestCleanupRunOnceDeletesAndRetries(t *testing.T) {
	db := setupDB(t)
	store := &fakeStore{}
	svc := &ImageCleanupService{
		Store: store,
		Tasks: dao.NewImageCleanupTasks(db),
		Conf:  &config.CleanupConfig{Spec: "@every 10m", MaxAttempts: 2},
	}
	ctx := context.Background()

	for _, id := range []string{"vehicles/1/a.jpg", "vehicles/1/b.jpg"} {
		if err := db.Create(&models.ImageCleanupTask{ExternalID: id}).Error; err != nil {
			t.Fatalf("seed task: %v", err)
		}
	}

	store.deleteErr = errors.New("store unavailable")
	if err := svc.RunOnce(ctx); err != nil {
		t.Fatalf("run (failing store): %v", err)
	}
	var tasks []models.ImageCleanupTask
	if err := db.Find(&tasks).Error; err != nil {
		t.Fatalf("load tasks: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("tasks = %d, want 2", len(tasks))
	}
	for _, task := range tasks {
		if task.Attempts != 1 || task.LastError == "" {
			t.Errorf("task %d attempts = %d last_error = %q", task.ID, task.Attempts, task.LastError)
		}
	}

	store.deleteErr = nil
	if err := svc.RunOnce(ctx); err != nil {
		t.Fatalf("run (healthy store): %v", err)
	}
	var remaining int64
	if err := db.Model(&models.ImageCleanupTask{}).Count(&remaining).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if remaining != 0 {
		t.Fatalf("remaining tasks = %d, want 0", remaining)
	}
	if len(store.deleted) != 2 {
		t.Fatalf("deleted objects = %d, want 2", len(store.deleted))
	}
}

func TestCleanupSkipsExhaustedTasks(t *testing.T) {
	db := setupDB(t)
	store := &fakeStore{}
	svc := &ImageCleanupService{
		Store: store,
		Tasks: dao.NewImageCleanupTasks(db),
		Conf:  &config.CleanupConfig{Spec: "@every 10m", MaxAttempts: 3},
	}

	exhausted := &models.ImageCleanupTask{ExternalID: "vehicles/9/x.jpg", Attempts: 3}
	if err := db.Create(exhausted).Error; err != nil {
		t.Fatalf("seed task: %v", err)
	}

	if err := svc.RunOnce(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(store.deleted) != 0 {
		t.Fatalf("exhausted task was retried: %v", store.deleted)
	}
}
