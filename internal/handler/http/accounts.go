package http

import (
	"net/http"

	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/utils"
	"github.com/MKhiriev/go-chain-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) accounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.wallet.Accounts(r.Context())
	if err != nil {
		writeError(w, logger.FromRequest(r), err, "error listing accounts")
		return
	}

	utils.WriteJSON(w, accounts, http.StatusOK)
}

func (h *Handler) addAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.AddAccountRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, log, err, "invalid add account request")
		return
	}

	account, err := h.wallet.AddAccount(r.Context(), req.Name)
	if err != nil {
		writeError(w, log, err, "error adding account")
		return
	}

	log.Info().Str("account_id", account.ID).Int("index", account.Index).Msg("account added")
	utils.WriteJSON(w, account, http.StatusCreated)
}

func (h *Handler) importAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ImportAccountRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, log, err, "invalid import account request")
		return
	}

	account, err := h.wallet.ImportAccount(r.Context(), req.Name, req.Mnemonic, req.Password)
	if err != nil {
		writeError(w, log, err, "error importing account")
		return
	}

	log.Info().Str("account_id", account.ID).Msg("account imported")
	utils.WriteJSON(w, account, http.StatusCreated)
}

func (h *Handler) deriveAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	parentID := chi.URLParam(r, "id")

	var req models.DeriveAccountRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, log, err, "invalid derive account request")
		return
	}

	account, err := h.wallet.DeriveImportedAccount(r.Context(), parentID, req.Name, req.Password)
	if err != nil {
		writeError(w, log, err, "error deriving account")
		return
	}

	log.Info().Str("account_id", account.ID).Str("derived_from", parentID).Msg("account derived")
	utils.WriteJSON(w, account, http.StatusCreated)
}

func (h *Handler) selectAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.wallet.SelectAccount(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, logger.FromRequest(r), err, "error selecting account")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
