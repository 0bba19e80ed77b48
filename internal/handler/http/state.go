package http

import (
	"net/http"

	"github.com/MKhiriev/go-aura/internal/utils"
	"github.com/MKhiriev/go-aura/models"
)

func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	doc, err := h.services.StateService.Snapshot(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, doc, http.StatusOK)
}

func (h *Handler) recordMood(w http.ResponseWriter, r *http.Request) {
	var input models.MoodInput
	if !decodeJSON(w, r, &input) {
		return
	}

	entry, err := h.services.MoodService.Record(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, entry, http.StatusCreated)
}

func (h *Handler) listMoods(w http.ResponseWriter, r *http.Request) {
	moods, err := h.services.MoodService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, moods, http.StatusOK)
}

// todayMood answers 204 when no mood was recorded today.
func (h *Handler) todayMood(w http.ResponseWriter, r *http.Request) {
	entry, err := h.services.MoodService.Today(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if entry == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.MoodService.Stats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) addJournal(w http.ResponseWriter, r *http.Request) {
	var input models.JournalInput
	if !decodeJSON(w, r, &input) {
		return
	}

	entry, err := h.services.JournalService.Add(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, entry, http.StatusCreated)
}

func (h *Handler) listJournal(w http.ResponseWriter, r *http.Request) {
	entries, err := h.services.JournalService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) exportJournalText(w http.ResponseWriter, r *http.Request) {
	text, err := h.services.JournalService.ExportText(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteText(w, text, http.StatusOK)
}

func (h *Handler) updatePreferences(w http.ResponseWriter, r *http.Request) {
	var update models.PreferencesUpdate
	if !decodeJSON(w, r, &update) {
		return
	}

	doc, err := h.services.PreferencesService.Update(r.Context(), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, doc, http.StatusOK)
}

// export downloads a plaintext export as an attachment. The kind query
// parameter defaults to json.
func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	kind := models.ExportKind(r.URL.Query().Get("kind"))
	if kind == "" {
		kind = models.ExportKindJSON
	}

	export, err := h.services.ExportService.Export(r.Context(), kind)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteAttachment(w, export.ContentType, export.FileName, export.Data)
}
