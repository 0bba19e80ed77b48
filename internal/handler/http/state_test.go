package http

import (
	"mime"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/go-aura/internal/app"
	"github.com/MKhiriev/go-aura/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

// ── moods ────────────────────────────────────────────────────────────────────

func TestMoods_RecordTodayAndList(t *testing.T) {
	router, _ := newTestRouter(t, testConfig(t))
	token := setupCompanion(t, router, "")

	rec := do(t, router, http.MethodGet, "/api/moods/today", token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/moods", token, models.MoodInput{Mood: models.MoodCalm, Energy: intPtr(70)})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	entry := decode[models.MoodEntry](t, rec)
	assert.Equal(t, models.MoodCalm, entry.Mood)
	require.NotNil(t, entry.Energy)
	assert.Equal(t, 70, *entry.Energy)

	// second record on the same day replaces the first
	rec = do(t, router, http.MethodPost, "/api/moods", token, models.MoodInput{Mood: models.MoodTense, Energy: intPtr(40)})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/moods/today", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.MoodTense, decode[models.MoodEntry](t, rec).Mood)

	rec = do(t, router, http.MethodGet, "/api/moods", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.MoodEntry](t, rec), 1)

	rec = do(t, router, http.MethodGet, "/api/stats", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decode[models.MoodStats](t, rec)
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 40, stats.AverageEnergy)
}

func TestMoods_InvalidMood(t *testing.T) {
	router, _ := newTestRouter(t, testConfig(t))
	token := setupCompanion(t, router, "")

	rec := do(t, router, http.MethodPost, "/api/moods", token, models.MoodInput{Mood: "ecstatic"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "mood: invalid mood")
}

// ── journal ──────────────────────────────────────────────────────────────────

func TestJournal_AddListExport(t *testing.T) {
	router, _ := newTestRouter(t, testConfig(t))
	token := setupCompanion(t, router, "1234")

	rec := do(t, router, http.MethodGet, "/api/journal/export", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgNothingToExport)

	rec = do(t, router, http.MethodPost, "/api/journal", token, models.JournalInput{Text: "  slept well  "})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "slept well", decode[models.JournalEntry](t, rec).Text)

	rec = do(t, router, http.MethodGet, "/api/journal", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.JournalEntry](t, rec), 1)

	rec = do(t, router, http.MethodGet, "/api/journal/export", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/plain"))
	assert.Contains(t, rec.Body.String(), "slept well")
}

func TestJournal_EmptyText(t *testing.T) {
	router, _ := newTestRouter(t, testConfig(t))
	token := setupCompanion(t, router, "")

	rec := do(t, router, http.MethodPost, "/api/journal", token, models.JournalInput{Text: "   "})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ── preferences ──────────────────────────────────────────────────────────────

func TestUpdatePreferences(t *testing.T) {
	router, _ := newTestRouter(t, testConfig(t))
	token := setupCompanion(t, router, "")

	name := "Grace"
	sound := false
	rec := do(t, router, http.MethodPatch, "/api/preferences", token, models.PreferencesUpdate{Name: &name, SoundEnabled: &sound})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	doc := decode[models.ApplicationState](t, rec)
	assert.Equal(t, "Grace", doc.Name)
	assert.False(t, doc.SoundEnabled)

	rec = do(t, router, http.MethodPatch, "/api/preferences", token, models.PreferencesUpdate{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ── export ───────────────────────────────────────────────────────────────────

func TestExport_DefaultsToJSONAttachment(t *testing.T) {
	router, _ := newTestRouter(t, testConfig(t))
	token := setupCompanion(t, router, "1234")

	rec := do(t, router, http.MethodGet, "/api/export", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	disposition, params, err := mime.ParseMediaType(rec.Header().Get("Content-Disposition"))
	require.NoError(t, err)
	assert.Equal(t, "attachment", disposition)
	assert.True(t, strings.HasPrefix(params["filename"], "AURA_export_"))
	assert.True(t, strings.HasSuffix(params["filename"], ".json"))

	// exports are plaintext even for a sealed installation
	assert.Equal(t, "Ada", decode[models.ApplicationState](t, rec).Name)
}

func TestExport_Kinds(t *testing.T) {
	router, _ := newTestRouter(t, testConfig(t))
	token := setupCompanion(t, router, "")

	rec := do(t, router, http.MethodGet, "/api/export?kind=journal", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/export?kind=pdf", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgUnknownExportKind)
}
