package eventlog

// JSON payload field keys
const (
	PayloadKeySlug = "slug"
)

// Query limits
const (
	DefaultEventLimit = 100
	MaxEventLimit     = 1000
)

// Log messages - service events
const (
	LogMsgEventPayloadUndecodable = "Event payload could not be decoded, skipping log"
	LogMsgFailedToLogEvent        = "Failed to log event to database"
	LogMsgEventLogged             = "Event logged to database"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting event log cleanup job"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)

// Log field keys - structured logging fields
const (
	LogFieldType          = "type"
	LogFieldSubject       = "subject"
	LogFieldError         = "error"
	LogFieldRetentionDays = "retentionDays"
	LogFieldDuration      = "duration"
	LogFieldDeletedCount  = "deletedCount"
)

// CleanupJobName identifies the cleanup job in worker logs
const CleanupJobName = "eventlog_cleanup"
