package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-dream-cipher/internal/config"
	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/internal/service"
)

func serverConfig(httpAddr, grpcAddr string) config.StructuredConfig {
	return config.StructuredConfig{Server: config.Server{HTTPAddress: httpAddr, GRPCAddress: grpcAddr}}
}

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.StructuredConfig
		wantHTTP bool
		wantGRPC bool
	}{
		{"both", serverConfig(":8080", ":9090"), true, true},
		{"http only", serverConfig(":8080", ""), true, false},
		{"grpc only", serverConfig("", ":9090"), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(&service.Services{}, tt.cfg, logger.Nop())
			require.NoError(t, err)

			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil)
		})
	}
}

func TestNewHandlers_NoAddresses(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, config.StructuredConfig{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}
