package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-dream-cipher/internal/config"
	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService_Success(t *testing.T) {
	cfg := config.App{Version: "1.0.0"}

	svc, err := NewAppInfoService(cfg, models.AppBuildInfo{}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	cfg := config.App{Version: ""}

	svc, err := NewAppInfoService(cfg, models.AppBuildInfo{}, logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	cfg := config.App{Version: "3.1.4"}
	svc, err := NewAppInfoService(cfg, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	got := svc.GetAppVersion(context.Background())

	assert.Equal(t, "3.1.4", got)
}

func TestGetAppVersion_VersionIsStable(t *testing.T) {
	cfg := config.App{Version: "0.0.1"}
	svc, err := NewAppInfoService(cfg, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	ctx := context.Background()
	first := svc.GetAppVersion(ctx)
	second := svc.GetAppVersion(ctx)

	assert.Equal(t, first, second, "version must not change between calls")
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancel immediately

	// GetAppVersion does not use ctx, so it must still return the version
	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}

func TestGetAppVersion_WithBuildCommit(t *testing.T) {
	build := models.NewAppBuildInfo("1.2.0", "2026-10-01", "a1b2c3d")
	svc, err := NewAppInfoService(config.App{Version: "1.2.0"}, build, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "1.2.0 (a1b2c3d)", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_AppendsKnownCommit(t *testing.T) {
	cfg := config.App{Version: "1.2.0"}

	withCommit, err := NewAppInfoService(cfg, models.NewAppBuildInfo("1.2.0", "2026-10-01", "abc123"), logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "1.2.0 (abc123)", withCommit.GetAppVersion(context.Background()))

	unset, err := NewAppInfoService(cfg, models.NewAppBuildInfo("N/A", "N/A", "N/A"), logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "1.2.0", unset.GetAppVersion(context.Background()))
}
