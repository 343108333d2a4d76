package http

import (
	"net/http"

	"github.com/MKhiriev/go-chain-keeper/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.appInfo.GetAppVersion(r.Context())

	utils.WriteJSON(w, buildInfo, http.StatusOK)
}
