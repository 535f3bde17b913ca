package service

import (
	"context"

	"github.com/asemenov/learnhub/internal/config"
)

// appInfoService exposes static application metadata from the configuration.
type appInfoService struct {
	version string
}

func NewAppInfoService(cfg config.App) AppInfoService {
	return &appInfoService{version: cfg.Version}
}

func (s *appInfoService) Version(_ context.Context) string {
	return s.version
}
