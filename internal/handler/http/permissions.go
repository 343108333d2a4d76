package http

import (
	"net/http"

	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/utils"
)

func (h *Handler) permissions(w http.ResponseWriter, r *http.Request) {
	perms, err := h.signing.Permissions(r.Context())
	if err != nil {
		writeError(w, logger.FromRequest(r), err, "error listing permissions")
		return
	}

	utils.WriteJSON(w, perms, http.StatusOK)
}

// revokePermission lets the UI disconnect an origin from every chain.
func (h *Handler) revokePermission(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	origin := r.URL.Query().Get("origin")
	if origin == "" {
		writeError(w, log, ErrEmptyQueryParam, "origin query parameter is required")
		return
	}
	origin, err := normalizeOrigin(origin)
	if err != nil {
		writeError(w, log, err, "invalid origin")
		return
	}

	if err = h.signing.Disable(r.Context(), origin); err != nil {
		writeError(w, log, err, "error revoking permission")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
