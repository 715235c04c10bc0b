package server

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-dream-cipher/internal/config"
	"github.com/MKhiriev/go-dream-cipher/internal/handler"
	myGRPC "github.com/MKhiriev/go-dream-cipher/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/go-dream-cipher/internal/handler/http"
	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/internal/mock"
	"github.com/MKhiriev/go-dream-cipher/internal/service"
	"github.com/MKhiriev/go-dream-cipher/models"
)

var localCfg = config.Server{
	HTTPAddress:    "127.0.0.1:0",
	GRPCAddress:    "127.0.0.1:0",
	RequestTimeout: 5 * time.Second,
}

func newTestHandlers(t *testing.T) (*handler.Handlers, *mock.MockLedgerService) {
	t.Helper()

	ledger := mock.NewMockLedgerService(gomock.NewController(t))
	services := &service.Services{LedgerService: ledger}

	return &handler.Handlers{
		HTTP: myHTTP.NewHandler(services, "", logger.Nop()),
		GRPC: myGRPC.NewHandler(services, logger.Nop()),
	}, ledger
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, localCfg, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_BadAddress(t *testing.T) {
	handlers, _ := newTestHandlers(t)

	cfg := localCfg
	cfg.GRPCAddress = "not an address"

	_, err := NewServer(handlers, cfg, logger.Nop())
	assert.Error(t, err)
}

func TestServer_ServesUntilCancelled(t *testing.T) {
	handlers, ledger := newTestHandlers(t)
	ledger.EXPECT().GetCount(gomock.Any()).Return(uint64(3), nil)

	srv, err := NewServer(handlers, localCfg, logger.Nop())
	require.NoError(t, err)
	s := srv.(*server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.RunServer(ctx)
		close(done)
	}()

	resp, err := http.Get("http://" + s.httpServer.Addr() + "/api/notes/count")
	require.NoError(t, err)
	var count models.CountResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&count))
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, uint64(3), count.Count)

	conn, err := grpc.NewClient(s.gRPCServer.Addr(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	health, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: myGRPC.LedgerServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, health.GetStatus())

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	_, err = http.Get("http://" + s.httpServer.Addr() + "/api/notes/count")
	assert.Error(t, err)
}
