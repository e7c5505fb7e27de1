package worker

import "time"

// DefaultJobTimeout bounds how long a single job may run
const DefaultJobTimeout = 5 * time.Minute

// UnnamedJob is logged for jobs that do not implement Named
const UnnamedJob = "unnamed"

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

const (
	// LogMsgWorkerJobFailed is logged when a worker fails to process a job
	LogMsgWorkerJobFailed    = "Worker job failed"
	LogMsgWorkerJobCompleted = "Worker job completed"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
