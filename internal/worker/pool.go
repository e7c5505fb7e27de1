package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/osse101/Armory_Go/internal/logger"
)

// ErrQueueFull is returned by TryEnqueue when the job queue has no free slot
var ErrQueueFull = errors.New("worker queue full")

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// Named is implemented by jobs that want a readable name in logs
type Named interface {
	Name() string
}

// Pool represents a worker pool
type Pool struct {
	workers    int
	jobQueue   chan Job
	jobTimeout time.Duration
	wg         sync.WaitGroup
	quit       chan struct{}
	stopOnce   sync.Once
}

// NewPool creates a new worker pool. Jobs run with DefaultJobTimeout.
func NewPool(workers int, queueSize int) *Pool {
	return NewPoolWithTimeout(workers, queueSize, DefaultJobTimeout)
}

// NewPoolWithTimeout creates a pool whose jobs are cancelled after timeout.
// A zero timeout disables the deadline.
func NewPoolWithTimeout(workers, queueSize int, timeout time.Duration) *Pool {
	return &Pool{
		workers:    workers,
		jobQueue:   make(chan Job, queueSize),
		jobTimeout: timeout,
		quit:       make(chan struct{}),
	}
}

// Start starts the workers
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case job := <-p.jobQueue:
			p.run(job)
		case <-p.quit:
			return
		}
	}
}

func (p *Pool) run(job Job) {
	ctx := context.Background()
	if p.jobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.jobTimeout)
		defer cancel()
	}

	start := time.Now()
	if err := job.Process(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgWorkerJobFailed,
			"job", jobName(job),
			"error", err,
			"duration", time.Since(start))
		return
	}
	logger.FromContext(ctx).Debug(LogMsgWorkerJobCompleted, "job", jobName(job), "duration", time.Since(start))
}

// Enqueue adds a job to the queue, blocking while the queue is full
func (p *Pool) Enqueue(job Job) {
	p.jobQueue <- job
}

// TryEnqueue adds a job without blocking
func (p *Pool) TryEnqueue(job Job) error {
	select {
	case p.jobQueue <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop stops the workers and waits for them to finish
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.quit) })
	p.wg.Wait()
}

func jobName(job Job) string {
	if n, ok := job.(Named); ok {
		return n.Name()
	}
	return UnnamedJob
}
