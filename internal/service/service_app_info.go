package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-aura/internal/logger"
	"github.com/MKhiriev/go-aura/models"
)

type appInfoService struct {
	appVersion string
	startedAt  time.Time
	now        func() time.Time

	logger *logger.Logger
}

func NewAppInfoService(version string, logger *logger.Logger) (AppInfoService, error) {
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: version,
		startedAt:  time.Now(),
		now:        time.Now,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.VersionResponse {
	return models.VersionResponse{
		Version:       s.appVersion,
		StartedAt:     s.startedAt.UTC(),
		UptimeSeconds: int64(s.now().Sub(s.startedAt) / time.Second),
	}
}
