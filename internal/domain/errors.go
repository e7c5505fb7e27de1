package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgItemNotFound    = "item not found"
	ErrMsgHeroNotFound    = "hero not found"
	ErrMsgMissionNotFound = "mission not found"

	ErrMsgSyncMetadataNotFound = "sync metadata not found"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrHeroNotFound    = errors.New(ErrMsgHeroNotFound)
	ErrMissionNotFound = errors.New(ErrMsgMissionNotFound)

	ErrSyncMetadataNotFound = errors.New(ErrMsgSyncMetadataNotFound)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
