package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/Armory_Go/internal/logger"
	"github.com/osse101/Armory_Go/internal/worker"
)

const logMsgJobSkipped = "Worker queue full, skipping scheduled run"

// Scheduler enqueues jobs on a worker pool at fixed intervals
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run at a fixed interval, starting one interval from now
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.schedule(interval, job, false)
}

// ScheduleImmediate is like Schedule but also enqueues the job right away
func (s *Scheduler) ScheduleImmediate(interval time.Duration, job worker.Job) {
	s.schedule(interval, job, true)
}

func (s *Scheduler) schedule(interval time.Duration, job worker.Job, immediate bool) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		if immediate {
			s.enqueue(job)
		}

		for {
			select {
			case <-ticker.C:
				s.enqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

// enqueue never blocks the ticker; a run is dropped when the pool is saturated
func (s *Scheduler) enqueue(job worker.Job) {
	if err := s.workerPool.TryEnqueue(job); err != nil {
		logger.FromContext(context.Background()).Warn(logMsgJobSkipped, "error", err)
	}
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.quit) })
	s.wg.Wait()
}
