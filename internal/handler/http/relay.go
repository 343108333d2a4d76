package http

import (
	"net/http"

	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/utils"
	"github.com/MKhiriev/go-chain-keeper/models"
	"github.com/go-chi/chi/v5"
)

// submitRelay enqueues an approval-gated request. The origin always comes
// from the X-Origin header, never from the body. A request that settled
// without approval (an enable of an already granted origin) is answered
// with 200, a queued one with 202 and its id.
func (h *Handler) submitRelay(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	origin, _ := utils.GetOriginFromContext(r.Context())

	var req models.RelayRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, log, err, "invalid relay request")
		return
	}
	req.Origin = origin

	res, err := h.signing.Submit(r.Context(), req)
	if err != nil {
		writeError(w, log, err, "error submitting relay request")
		return
	}

	status := http.StatusOK
	if res.Status == models.RelayPending {
		status = http.StatusAccepted
	}

	log.Info().Str("origin", origin).Str("type", string(req.Type)).Str("approval_id", res.ID).Msg("relay request submitted")
	utils.WriteJSON(w, res, status)
}

func (h *Handler) relayResult(w http.ResponseWriter, r *http.Request) {
	res, err := h.signing.Result(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, logger.FromRequest(r), err, "error getting relay result")
		return
	}

	utils.WriteJSON(w, res, http.StatusOK)
}

func (h *Handler) getKey(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	origin, _ := utils.GetOriginFromContext(r.Context())

	chainID := r.URL.Query().Get("chainId")
	if chainID == "" {
		writeError(w, log, ErrEmptyQueryParam, "chainId query parameter is required")
		return
	}

	key, err := h.signing.GetKey(r.Context(), origin, chainID)
	if err != nil {
		writeError(w, log, err, "error getting key")
		return
	}

	utils.WriteJSON(w, key, http.StatusOK)
}

func (h *Handler) verifyArbitrary(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	origin, _ := utils.GetOriginFromContext(r.Context())

	var req models.VerifyArbitraryRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, log, err, "invalid verify request")
		return
	}

	valid, err := h.signing.VerifyArbitrary(r.Context(), origin, req.ChainID, req.Signer, req.Data, req.Signature)
	if err != nil {
		writeError(w, log, err, "error verifying signature")
		return
	}

	utils.WriteJSON(w, models.VerifyResponse{Valid: valid}, http.StatusOK)
}

// disable lets an origin disconnect itself.
func (h *Handler) disable(w http.ResponseWriter, r *http.Request) {
	origin, _ := utils.GetOriginFromContext(r.Context())

	if err := h.signing.Disable(r.Context(), origin); err != nil {
		writeError(w, logger.FromRequest(r), err, "error disabling origin")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
