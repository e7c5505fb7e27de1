package bootstrap

import (
	"log/slog"

	"github.com/osse101/Armory_Go/internal/config"
	"github.com/osse101/Armory_Go/internal/equipment"
	"github.com/osse101/Armory_Go/internal/eventlog"
	"github.com/osse101/Armory_Go/internal/scheduler"
	"github.com/osse101/Armory_Go/internal/worker"
)

// BackgroundJobs owns the worker pool and the scheduler feeding it
type BackgroundJobs struct {
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
}

// StartBackgroundJobs schedules event log cleanup and, when
// EquipmentSyncPeriod is set, periodic catalog re-imports.
func StartBackgroundJobs(cfg *config.Config, catalog equipment.Service, events eventlog.Service) *BackgroundJobs {
	pool := worker.NewPool(WorkerPoolSize, WorkerQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.ScheduleImmediate(cfg.EventCleanupInterval, eventlog.NewCleanupJob(events, cfg.EventRetentionDays))
	if cfg.EquipmentSyncPeriod > 0 {
		sched.Schedule(cfg.EquipmentSyncPeriod, equipment.NewSyncJob(catalog))
	}

	slog.Info(LogMsgBackgroundJobsStarted,
		"event_cleanup_interval", cfg.EventCleanupInterval,
		"equipment_sync_interval", cfg.EquipmentSyncPeriod)

	return &BackgroundJobs{Pool: pool, Scheduler: sched}
}

// Stop halts scheduling first so no job is enqueued on a stopped pool
func (b *BackgroundJobs) Stop() {
	b.Scheduler.Stop()
	b.Pool.Stop()
}
