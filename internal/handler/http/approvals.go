// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/utils"
	"github.com/MKhiriev/go-chain-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listApprovals(w http.ResponseWriter, r *http.Request) {
	pending, err := h.approvals.List(r.Context())
	if err != nil {
		writeError(w, logger.FromRequest(r), err, "error listing approvals")
		return
	}

	utils.WriteJSON(w, pending, http.StatusOK)
}

func (h *Handler) approvalCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.approvals.Count(r.Context())
	if err != nil {
		writeError(w, logger.FromRequest(r), err, "error counting approvals")
		return
	}

	utils.WriteJSON(w, models.CountResponse{Count: count}, http.StatusOK)
}

// nextApproval returns the oldest pending approval, the one the approval
// screen shows first.
func (h *Handler) nextApproval(w http.ResponseWriter, r *http.Request) {
	h.writeApproval(w, r, "")
}

func (h *Handler) approval(w http.ResponseWriter, r *http.Request) {
	h.writeApproval(w, r, chi.URLParam(r, "id"))
}

func (h *Handler) writeApproval(w http.ResponseWriter, r *http.Request, id string) {
	pending, err := h.approvals.Get(r.Context(), id)
	if err != nil {
		writeError(w, logger.FromRequest(r), err, "error getting approval")
		return
	}

	utils.WriteJSON(w, pending, http.StatusOK)
}

func (h *Handler) resolveApproval(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	var req models.ResolveApprovalRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, log, err, "invalid resolve request")
		return
	}

	if err := h.approvals.Resolve(r.Context(), id, req.Approved); err != nil {
		writeError(w, log, err, "error resolving approval")
		return
	}

	log.Info().Str("approval_id", id).Bool("approved", req.Approved).Msg("approval resolved")
	w.WriteHeader(http.StatusNoContent)
}
