package service

import (
	"context"

	"AutoSync/config"
	"AutoSync/dao"
	"AutoSync/pkg/log"
	"AutoSync/pkg/objectstore"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const cleanupBatchSize = 50

// ImageCleanupService retries remote deletions that failed inline. Tasks are
// dropped after a successful delete and abandoned once the attempt budget
// is spent.
type ImageCleanupService struct {
	Store objectstore.Client
	Tasks *dao.ImageCleanupTasks
	Conf  *config.CleanupConfig
}

func (s *ImageCleanupService) RunOnce(ctx context.Context) error {
	tasks, err := s.Tasks.Pending(ctx, s.Conf.MaxAttempts, cleanupBatchSize)
	if err != nil {
		return errPersistence(err)
	}
	if len(tasks) == 0 {
		return nil
	}

	var done, failed int
	for _, task := range tasks {
		if err := s.Store.Delete(ctx, task.ExternalID); err != nil {
			failed++
			if err := s.Tasks.MarkFailed(ctx, task.ID, err.Error()); err != nil {
				log.L.Error("mark cleanup task failed", zap.Int64("task_id", task.ID), zap.Error(err))
			}
			continue
		}
		if err := s.Tasks.DeleteByID(ctx, task.ID); err != nil {
			log.L.Error("remove finished cleanup task", zap.Int64("task_id", task.ID), zap.Error(err))
			continue
		}
		done++
	}

	log.L.Info("image cleanup pass finished",
		zap.Int("deleted", done),
		zap.Int("failed", failed),
	)
	return nil
}

// NewImageCleanupCron registers the cleanup pass on a cron scheduler.
// The caller owns Start and Stop.
func NewImageCleanupCron(svc *ImageCleanupService) *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc(svc.Conf.Spec, func() {
		if err := svc.RunOnce(context.Background()); err != nil {
			log.L.Error("image cleanup pass", zap.Error(err))
		}
	}); err != nil {
		log.L.Fatal("register image cleanup job", zap.String("spec", svc.Conf.Spec), zap.Error(err))
	}
	return c
}
