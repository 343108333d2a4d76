// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/service"
)

// Handler serves the coordinator's UI and relay routes. Each route group
// only reaches the service it needs.
type Handler struct {
	wallet    service.WalletService
	approvals service.ApprovalService
	signing   service.SigningService
	appInfo   service.AppInfoService

	logger *logger.Logger
}

// NewHandler unpacks services into a Handler. A nil services yields a
// handler whose routes exist but whose service calls would panic; tests
// use it to exercise middleware alone.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	if services == nil {
		services = &service.Services{}
	}
	logger.Info().Msg("http handler created")

	return &Handler{
		wallet:    services.WalletService,
		approvals: services.ApprovalService,
		signing:   services.SigningService,
		appInfo:   services.AppInfoService,
		logger:    logger,
	}
}
