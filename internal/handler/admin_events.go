package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/osse101/Armory_Go/internal/domain"
	"github.com/osse101/Armory_Go/internal/eventlog"
)

// AdminEventsHandler handles admin event log queries
type AdminEventsHandler struct {
	eventlogService eventlog.Service
}

// NewAdminEventsHandler creates a new admin events handler
func NewAdminEventsHandler(eventlogService eventlog.Service) *AdminEventsHandler {
	return &AdminEventsHandler{eventlogService: eventlogService}
}

// EventsResponse contains event log query results
type EventsResponse struct {
	Events []EventLogEntry `json:"events"`
}

// EventLogEntry represents a single event log entry
type EventLogEntry struct {
	ID        int64       `json:"id"`
	EventType string      `json:"event_type"`
	Subject   *string     `json:"subject,omitempty"`
	Payload   interface{} `json:"payload"`
	Metadata  interface{} `json:"metadata,omitempty"`
	CreatedAt string      `json:"created_at"`
}

// HandleGetEvents retrieves logged catalog events, newest first
// @Summary Query the event log
// @Tags admin
// @Produce json
// @Param subject query string false "Slug the event concerns"
// @Param event_type query string false "Event type, e.g. equipment.synced"
// @Param since query string false "RFC3339 lower bound"
// @Param until query string false "RFC3339 upper bound"
// @Param limit query int false "1-1000, default 50"
// @Success 200 {object} EventsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/events [get]
func (h *AdminEventsHandler) HandleGetEvents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := eventlog.EventFilter{
		Limit: defaultEventsLimit,
	}

	if subject := query.Get("subject"); subject != "" {
		filter.Subject = &subject
	}

	if eventType := query.Get("event_type"); eventType != "" {
		filter.EventType = &eventType
	}

	if sinceStr := query.Get("since"); sinceStr != "" {
		since, err := time.Parse(time.RFC3339, sinceStr)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidSince)
			return
		}
		filter.Since = &since
	}

	if untilStr := query.Get("until"); untilStr != "" {
		until, err := time.Parse(time.RFC3339, untilStr)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidUntil)
			return
		}
		filter.Until = &until
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > domain.MaxListLimit {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
			return
		}
		filter.Limit = limit
	}

	events, err := h.eventlogService.GetEvents(r.Context(), filter)
	if err != nil {
		respondServiceError(w, r, OpGetEvents, err)
		return
	}

	entries := make([]EventLogEntry, len(events))
	for i, evt := range events {
		entries[i] = EventLogEntry{
			ID:        evt.ID,
			EventType: evt.EventType,
			Subject:   evt.Subject,
			Payload:   evt.Payload,
			Metadata:  evt.Metadata,
			CreatedAt: evt.CreatedAt.Format(time.RFC3339),
		}
	}

	respondJSON(w, http.StatusOK, EventsResponse{Events: entries})
}
