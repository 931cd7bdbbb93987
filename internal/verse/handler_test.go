package verse

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scripturalzealous/zealous-api/internal/catalog"
	"github.com/scripturalzealous/zealous-api/pkg/response"
)

func testRouter() http.Handler {
	h := NewVerseHandler()
	r := chi.NewRouter()
	r.Post("/verses/match", h.MatchHandler)
	r.Get("/verses/mood/{moodID}", h.VersesForMoodHandler)
	r.Get("/moods", h.MoodsHandler)
	return r
}

func doMatch(t *testing.T, router http.Handler, text string) (*httptest.ResponseRecorder, MatchResponse) {
	t.Helper()

	body, err := json.Marshal(MatchRequest{Text: text})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/verses/match", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope struct {
		Data MatchResponse `json:"data"`
	}
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	}
	return rec, envelope.Data
}

func TestMatchHandlerAnxiousScenario(t *testing.T) {
	router := testRouter()

	rec, got := doMatch(t, router, "I'm feeling anxious about tomorrow")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Contains(t, got.Moods, catalog.MoodID("anxious"))
	require.NotEmpty(t, got.Verses)
	assert.LessOrEqual(t, len(got.Verses), 3)

	eligible := map[string]bool{}
	for _, id := range got.Moods {
		for _, v := range catalog.VersesForMood(id) {
			eligible[v.Reference] = true
		}
	}
	for _, v := range got.Verses {
		assert.True(t, eligible[v.Reference], "verse %s not tagged with any matched mood", v.Reference)
	}
}

func TestMatchHandlerNoKeywordsUsesDefaults(t *testing.T) {
	router := testRouter()

	rec, got := doMatch(t, router, "asdkfjasldkfj")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Empty(t, got.Moods)
	assert.GreaterOrEqual(t, len(got.Verses), 1)
	assert.LessOrEqual(t, len(got.Verses), 2)

	defaults := map[string]bool{}
	for _, v := range catalog.DefaultVerses() {
		defaults[v.Reference] = true
	}
	for _, v := range got.Verses {
		assert.True(t, defaults[v.Reference])
	}
}

func TestMatchHandlerRejectsEmptyText(t *testing.T) {
	router := testRouter()

	rec, _ := doMatch(t, router, "   ")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMatchHandlerRejectsOversizedText(t *testing.T) {
	router := testRouter()

	rec, _ := doMatch(t, router, strings.Repeat("a", 501))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVersesForMoodHandler(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/verses/mood/anxious", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			Mood   catalog.Mood    `json:"mood"`
			Verses []catalog.Verse `json:"verses"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	assert.Equal(t, "Anxious", envelope.Data.Mood.Label)
	require.NotEmpty(t, envelope.Data.Verses)
	// Catalog order, so the first anxious verse is stable.
	assert.Equal(t, "Philippians 4:6-7 (NLT)", envelope.Data.Verses[0].Reference)
}

func TestVersesForMoodHandlerUnknown(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/verses/mood/joyful", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMoodsHandlerByCategory(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/moods?category=physical", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []catalog.Mood `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data, 5)
	for _, m := range envelope.Data {
		assert.Equal(t, catalog.CategoryPhysical, m.Category)
	}
}

func TestMoodsHandlerGrouped(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/moods", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data map[string][]catalog.Mood `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data, 3)
	assert.Len(t, envelope.Data["emotional"], 7)
}

func TestMoodsHandlerBadCategory(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/moods?category=spiritual", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp response.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}
