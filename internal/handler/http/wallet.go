package http

import (
	"net/http"

	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/utils"
	"github.com/MKhiriev/go-chain-keeper/models"
)

func (h *Handler) walletStatus(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	status, err := h.wallet.Status(r.Context())
	if err != nil {
		writeError(w, log, err, "error getting wallet status")
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

func (h *Handler) createWallet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CreateWalletRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, log, err, "invalid create wallet request")
		return
	}

	mnemonic, err := h.wallet.Create(r.Context(), req.Password, req.Words)
	if err != nil {
		writeError(w, log, err, "error creating wallet")
		return
	}

	utils.WriteJSON(w, models.CreateWalletResponse{Mnemonic: mnemonic}, http.StatusCreated)
}

func (h *Handler) importWallet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ImportWalletRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, log, err, "invalid import wallet request")
		return
	}

	if err := h.wallet.Import(r.Context(), req.Mnemonic, req.Password); err != nil {
		writeError(w, log, err, "error importing wallet")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) unlock(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.PasswordRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, log, err, "invalid unlock request")
		return
	}

	if err := h.wallet.Unlock(r.Context(), req.Password); err != nil {
		writeError(w, log, err, "error unlocking wallet")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) lock(w http.ResponseWriter, r *http.Request) {
	if err := h.wallet.Lock(r.Context()); err != nil {
		writeError(w, logger.FromRequest(r), err, "error locking wallet")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) verifyPassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.PasswordRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, log, err, "invalid verify password request")
		return
	}

	valid, err := h.wallet.VerifyPassword(r.Context(), req.Password)
	if err != nil {
		writeError(w, log, err, "error verifying password")
		return
	}

	utils.WriteJSON(w, models.VerifyResponse{Valid: valid}, http.StatusOK)
}

// touch records user activity for the auto-lock timer.
func (h *Handler) touch(w http.ResponseWriter, r *http.Request) {
	if err := h.wallet.Touch(r.Context()); err != nil {
		writeError(w, logger.FromRequest(r), err, "error recording activity")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) checkAutoLock(w http.ResponseWriter, r *http.Request) {
	locked, err := h.wallet.CheckAutoLock(r.Context())
	if err != nil {
		writeError(w, logger.FromRequest(r), err, "error checking auto-lock")
		return
	}

	utils.WriteJSON(w, models.AutoLockResponse{Locked: locked}, http.StatusOK)
}

func (h *Handler) preferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.wallet.Preferences(r.Context())
	if err != nil {
		writeError(w, logger.FromRequest(r), err, "error loading preferences")
		return
	}

	utils.WriteJSON(w, prefs, http.StatusOK)
}

func (h *Handler) setAutoLock(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.AutoLockRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, log, err, "invalid auto-lock request")
		return
	}

	if err := h.wallet.SetAutoLockMinutes(r.Context(), req.Minutes); err != nil {
		writeError(w, log, err, "error setting auto-lock minutes")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) selectChain(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SelectChainRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, log, err, "invalid select chain request")
		return
	}

	if err := h.wallet.SelectChain(r.Context(), req.ChainID); err != nil {
		writeError(w, log, err, "error selecting chain")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
