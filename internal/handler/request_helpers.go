package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/logger"
)

// maxRequestBodyBytes caps JSON request bodies
const maxRequestBodyBytes = 4 << 20

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req BulkHeroesRequest
//	if err := DecodeAndValidateRequest(r, w, &req, OpUpsertHeroes); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(req); err != nil {
		log.Warn(LogMsgDecodeRequestFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(LogMsgRequestDecoded, "action", actionName)

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetPathParam retrieves a required chi URL parameter.
// If ok is false, the HTTP response has already been written and the handler should return.
func GetPathParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := chi.URLParam(r, paramName)
	if value == "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingPathParam, paramName))
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam retrieves an optional query parameter from the request.
//
// Example usage:
//
//	slot := GetOptionalQueryParam(r, "slot", "")
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// getOptionalIntParam parses an optional integer query parameter. A missing
// parameter yields 0. On failure the response has already been written.
func getOptionalIntParam(r *http.Request, w http.ResponseWriter, paramName string) (int, bool) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return 0, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidIntParam, paramName))
		return 0, false
	}
	return value, true
}

// getPagination reads limit and offset. A missing limit is left at 0 so the
// repository applies its default.
func getPagination(r *http.Request, w http.ResponseWriter) (limit, offset int, ok bool) {
	query := r.URL.Query()

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > domain.MaxListLimit {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
			return 0, 0, false
		}
		offset, ok = getOffset(r, w)
		return limit, offset, ok
	}

	offset, ok = getOffset(r, w)
	return 0, offset, ok
}

func getOffset(r *http.Request, w http.ResponseWriter) (int, bool) {
	raw := r.URL.Query().Get("offset")
	if raw == "" {
		return 0, true
	}
	offset, err := strconv.Atoi(raw)
	if err != nil || offset < 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidOffset)
		return 0, false
	}
	return offset, true
}
