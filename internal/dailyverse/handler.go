package dailyverse

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/scripturalzealous/zealous-api/internal/auth"
	"github.com/scripturalzealous/zealous-api/pkg/response"
)

type DailyVerseHandler struct {
	service DailyVerseService
}

func NewDailyVerseHandler(service DailyVerseService) DailyVerseHandler {
	return DailyVerseHandler{service: service}
}

// GetDailyVerseHandler serves the verse of the day. Works for anonymous
// callers; with a valid token the verse is personalized from the user's
// feelings history.
func (h *DailyVerseHandler) GetDailyVerseHandler(w http.ResponseWriter, r *http.Request) {
	var req DailyVerseRequest
	if r.Body != nil {
		// An empty or invalid body is fine; the date then defaults to today.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	var userID *int
	if id, ok := auth.GetUserIDFromContext(r); ok {
		userID = &id
	}

	verse, err := h.service.GetDailyVerse(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, ErrRateLimited) {
			response.Error(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", "")
			return
		}
		if errors.Is(err, ErrPaymentRequired) {
			response.Error(w, http.StatusPaymentRequired, "Service temporarily unavailable.", "")
			return
		}
		// Should not happen: the service degrades to the fallback verse.
		response.Success(w, FallbackVerse, "Ok")
		return
	}

	response.Success(w, verse, "Ok")
}

func (h *DailyVerseHandler) AddFeelingHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	var req AddFeelingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	if strings.TrimSpace(req.Feeling) == "" {
		response.Error(w, http.StatusBadRequest, "Missing required fields", map[string]string{
			"feeling": "feeling is required",
		})
		return
	}

	if err := h.service.AddFeeling(r.Context(), userID, req.Feeling); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to save feeling", "")
		return
	}

	response.Success(w, "Ok", "Feeling saved")
}

func (h *DailyVerseHandler) ListFeelingsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r)
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Unauthorized", "user not logged in")
		return
	}

	feelings, err := h.service.ListFeelings(r.Context(), userID)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to load feelings", "")
		return
	}

	if feelings == nil {
		feelings = []string{}
	}
	response.Success(w, feelings, "Ok")
}
