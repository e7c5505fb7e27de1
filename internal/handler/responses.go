package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/equipment"
	"github.com/osse101/Armory_Go/internal/logger"
	"github.com/osse101/Armory_Go/internal/validation"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Headers are already sent, so an encode failure can only be logged
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeResponseFailed, "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteResponseFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a service failure and writes the mapped response.
// Client errors are logged at warn, everything else at error.
func respondServiceError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(operation, "error", err)
	} else {
		log.Warn(operation, "error", err, "status", status)
	}
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgTimeoutError        = "The request took too long. Please try again."

	ErrMsgItemNotFoundError    = "Equipment not found"
	ErrMsgHeroNotFoundError    = "Hero not found"
	ErrMsgMissionNotFoundError = "Mission not found"

	ErrMsgCatalogInvalidError = "Equipment catalog file is invalid"
	ErrMsgCatalogCycleError   = "Equipment catalog contains a requirement cycle"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages that are safe to show to callers. Unknown errors never leak their
// text.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrHeroNotFound):
		return http.StatusNotFound, ErrMsgHeroNotFoundError
	case errors.Is(err, domain.ErrMissionNotFound):
		return http.StatusNotFound, ErrMsgMissionNotFoundError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, invalidInputMessage(err)
	case errors.Is(err, equipment.ErrRequirementCycle):
		return http.StatusUnprocessableEntity, ErrMsgCatalogCycleError
	case errors.Is(err, equipment.ErrInvalidConfig), errors.Is(err, equipment.ErrDuplicateSlug),
		errors.Is(err, validation.ErrSchemaViolation):
		return http.StatusUnprocessableEntity, ErrMsgCatalogInvalidError
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, ErrMsgTimeoutError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// invalidInputMessage returns the error text for input errors. Input errors
// are built from caller-supplied values, so their text is safe to echo.
func invalidInputMessage(err error) string {
	msg := err.Error()
	if msg == "" || len(msg) > maxEchoedErrorLength {
		return ErrMsgInvalidRequestError
	}
	return msg
}
