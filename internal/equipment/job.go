package equipment

import (
	"context"

	"github.com/osse101/Armory_Go/internal/logger"
)

// SyncJob re-imports the catalog file when it has changed on disk
type SyncJob struct {
	service Service
}

// NewSyncJob creates a periodic catalog sync job
func NewSyncJob(service Service) *SyncJob {
	return &SyncJob{service: service}
}

// Name identifies the job in worker logs
func (j *SyncJob) Name() string {
	return SyncJobName
}

// Process runs one non-forced sync
func (j *SyncJob) Process(ctx context.Context) error {
	if _, err := j.service.Sync(ctx, false); err != nil {
		logger.FromContext(ctx).Error(LogMsgSyncJobFailed, "error", err)
		return err
	}
	return nil
}
