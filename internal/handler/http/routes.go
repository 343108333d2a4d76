package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)

	router.Get("/api/version", h.getServerVersion)

	// ui routes
	router.Route("/api/wallet", func(r chi.Router) {
		r.Get("/status", h.walletStatus)
		r.Post("/create", h.createWallet)
		r.Post("/import", h.importWallet)
		r.Post("/unlock", h.unlock)
		r.Post("/lock", h.lock)
		r.Post("/verify-password", h.verifyPassword)
		r.Post("/touch", h.touch)
		r.Post("/check-auto-lock", h.checkAutoLock)

		r.Get("/preferences", h.preferences)
		r.Put("/preferences/auto-lock", h.setAutoLock)
		r.Put("/preferences/chain", h.selectChain)
	})

	router.Route("/api/accounts", func(r chi.Router) {
		r.Get("/", h.accounts)
		r.Post("/", h.addAccount)
		r.Post("/import", h.importAccount)
		r.Post("/{id}/derive", h.deriveAccount)
		r.Post("/{id}/select", h.selectAccount)
	})

	router.Route("/api/approvals", func(r chi.Router) {
		r.Get("/", h.listApprovals)
		r.Get("/count", h.approvalCount)
		r.Get("/next", h.nextApproval)
		r.Get("/{id}", h.approval)
		r.Post("/{id}/resolve", h.resolveApproval)
	})

	router.Get("/api/permissions", h.permissions)
	router.Delete("/api/permissions", h.revokePermission)

	// relay routes act for an external origin
	router.Route("/api/relay", func(r chi.Router) {
		r.Use(h.origin)

		r.Post("/requests", h.submitRelay)
		r.Get("/requests/{id}", h.relayResult)
		r.Get("/key", h.getKey)
		r.Post("/verify", h.verifyArbitrary)
		r.Post("/disable", h.disable)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
