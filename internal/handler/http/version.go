package http

import (
	"net/http"

	"github.com/MKhiriev/go-aura/internal/utils"
)

// getServerVersion is public: it carries no personal data.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetAppInfo(r.Context()), http.StatusOK)
}
