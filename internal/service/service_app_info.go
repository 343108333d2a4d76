package service

import (
	"context"

	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/models"
)

// appInfoService answers `GET /api/version` so walletctl can tell which
// coordinator build it is talking to.
type appInfoService struct {
	buildInfo models.AppBuildInfo
}

// NewAppInfoService fails on a zero [models.AppBuildInfo]; binaries build
// theirs with [models.NewAppBuildInfo], which never leaves Version empty.
func NewAppInfoService(buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if buildInfo.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}
	logger.Debug().Str("version", buildInfo.Version).Str("commit", buildInfo.Commit).Msg("creating app info service")

	return &appInfoService{buildInfo: buildInfo}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) models.AppBuildInfo {
	return s.buildInfo
}
