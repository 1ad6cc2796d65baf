package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pulselytics/pulselytics-go/internal/middleware"
	"github.com/pulselytics/pulselytics-go/internal/model"
	"github.com/pulselytics/pulselytics-go/internal/service"
)

// AnalyticsHandler handles HTTP requests for event tracking and the
// analytics summary. Nil services mean the document store is not
// connected; requests then fail fast with a 500.
type AnalyticsHandler struct {
	service *service.AnalyticsService
	auth    *service.AuthService
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(svc *service.AnalyticsService, auth *service.AuthService) *AnalyticsHandler {
	return &AnalyticsHandler{service: svc, auth: auth}
}

// HandleTrackEvent handles POST /events requests. A valid bearer token
// attributes the event to the token's subject; a missing or invalid
// token never fails the request — the event is recorded as anonymous.
func (h *AnalyticsHandler) HandleTrackEvent(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse(msgStoreNotConfigured))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.TrackEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	userID := model.AnonymousUserID
	if token, ok := middleware.BearerToken(r); ok && h.auth != nil {
		if subject, ok := h.auth.Subject(token); ok {
			userID = subject
		}
	}

	if err := h.service.Track(r.Context(), userID, req); err != nil {
		if errors.Is(err, service.ErrTypeRequired) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, model.TrackEventResponse{Status: "ok"})
}

// HandleSummary handles GET /analytics/summary requests. The bearer
// token, if any, is ignored.
func (h *AnalyticsHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse(msgStoreNotConfigured))
		return
	}

	resp, err := h.service.Summary(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
