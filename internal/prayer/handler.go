package prayer

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/scripturalzealous/zealous-api/internal/auth"
	"github.com/scripturalzealous/zealous-api/pkg/response"
)

type PrayerHandler struct {
	service PrayerService
}

func NewPrayerHandler(service PrayerService) PrayerHandler {
	return PrayerHandler{service: service}
}

// SubmitHandler accepts a prayer request from anyone; login is not required.
// Internal failures surface as a generic message only.
func (h *PrayerHandler) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		response.Error(w, http.StatusBadRequest, "Invalid prayer request", errs)
		return
	}

	clientIP := clientIP(r)

	pr, err := h.service.Submit(r.Context(), req, clientIP)
	if err != nil {
		if errors.Is(err, ErrRateLimited) {
			retry := int(h.service.RetryAfter(clientIP).Seconds())
			if retry < 1 {
				retry = 1
			}
			w.Header().Set("Retry-After", fmt.Sprintf("%d", retry))
			response.Error(w, http.StatusTooManyRequests, "Too many prayer requests. Please try again later.", "")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Unable to process prayer request. Please try again later.", "")
		return
	}

	response.Created(w, map[string]interface{}{
		"success": true,
		"id":      pr.ID,
	}, "Prayer request received")
}

func (h *PrayerHandler) ListMineHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	requests, err := h.service.ListMine(r.Context(), userID)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to load prayer requests", "")
		return
	}

	if requests == nil {
		requests = []PrayerRequest{}
	}
	response.Success(w, requests, "Ok")
}

func (h *PrayerHandler) ListAllHandler(w http.ResponseWriter, r *http.Request) {
	requests, err := h.service.ListAll(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to load prayer requests", "")
		return
	}

	if requests == nil {
		requests = []PrayerRequest{}
	}
	response.Success(w, requests, "Ok")
}

func (h *PrayerHandler) UpdateStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	status, valid := ParseStatus(req.Status)
	if !valid {
		response.Error(w, http.StatusBadRequest, "Invalid status", map[string]string{
			"status": "status must be one of: pending, prayed, followed_up",
		})
		return
	}

	if err := h.service.UpdateStatus(r.Context(), id, status); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Prayer request not found", "")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to update status", "")
		return
	}

	response.Success(w, "Ok", "Status updated")
}

func (h *PrayerHandler) UpdateNotesHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req UpdateNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	if err := h.service.UpdateNotes(r.Context(), id, req.Notes); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Prayer request not found", "")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to save notes", "")
		return
	}

	response.Success(w, "Ok", "Notes saved")
}

func (h *PrayerHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(w, http.StatusNotFound, "Prayer request not found", "")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to delete prayer request", "")
		return
	}

	response.Success(w, "Ok", "Prayer request removed")
}

func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid prayer request id", "")
		return uuid.UUID{}, false
	}
	return id, true
}

// clientIP trusts middleware.RealIP to have rewritten RemoteAddr when the
// request came through a proxy.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
