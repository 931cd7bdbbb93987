// Package verse exposes the mood catalog over HTTP: free-text matching,
// category browsing, and per-mood verse lists.
package verse

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/scripturalzealous/zealous-api/internal/catalog"
	"github.com/scripturalzealous/zealous-api/pkg/response"
)

// maxFreeTextLen mirrors the input cap of the feelings textarea.
const maxFreeTextLen = 500

type MatchRequest struct {
	Text string `json:"text"`
}

type MatchResponse struct {
	Moods  []catalog.MoodID `json:"moods"`
	Verses []catalog.Verse  `json:"verses"`
}

type VerseHandler struct{}

func NewVerseHandler() VerseHandler {
	return VerseHandler{}
}

// MatchHandler classifies free text into moods and returns a bounded random
// verse selection. No keyword match is not an error; the default
// encouragement verses come back instead.
func (h *VerseHandler) MatchHandler(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		response.Error(w, http.StatusBadRequest, "Missing required fields", map[string]string{
			"text": "text is required",
		})
		return
	}
	if len(text) > maxFreeTextLen {
		response.Error(w, http.StatusBadRequest, "Invalid input", map[string]string{
			"text": "text must be 500 characters or fewer",
		})
		return
	}

	moods := catalog.Classify(text)
	verses := catalog.SelectVerses(moods)

	if moods == nil {
		moods = []catalog.MoodID{}
	}
	response.Success(w, MatchResponse{Moods: moods, Verses: verses}, "Ok")
}

// VersesForMoodHandler returns every verse for one mood in catalog order,
// which the client pages through with its "next verse" button.
func (h *VerseHandler) VersesForMoodHandler(w http.ResponseWriter, r *http.Request) {
	moodID := catalog.MoodID(chi.URLParam(r, "moodID"))

	mood, err := catalog.MoodByID(moodID)
	if err != nil {
		if errors.Is(err, catalog.ErrUnknownMood) {
			response.Error(w, http.StatusNotFound, "Unknown mood", "")
			return
		}
		response.Error(w, http.StatusInternalServerError, "Failed to load verses", "")
		return
	}

	response.Success(w, map[string]interface{}{
		"mood":   mood,
		"verses": catalog.VersesForMood(moodID),
	}, "Ok")
}

// MoodsHandler lists moods, filtered by ?category= when present, otherwise
// grouped by category.
func (h *VerseHandler) MoodsHandler(w http.ResponseWriter, r *http.Request) {
	categoryParam := r.URL.Query().Get("category")

	if categoryParam != "" {
		category, err := catalog.ParseCategory(categoryParam)
		if err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid category", map[string]string{
				"category": "category must be one of: emotional, physical, mental",
			})
			return
		}
		response.Success(w, catalog.MoodsByCategory(category), "Ok")
		return
	}

	grouped := map[catalog.Category][]catalog.Mood{
		catalog.CategoryEmotional: catalog.MoodsByCategory(catalog.CategoryEmotional),
		catalog.CategoryPhysical:  catalog.MoodsByCategory(catalog.CategoryPhysical),
		catalog.CategoryMental:    catalog.MoodsByCategory(catalog.CategoryMental),
	}
	response.Success(w, grouped, "Ok")
}
