package grpc

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/internal/mock"
	"github.com/MKhiriev/go-dream-cipher/internal/service"
)

// dialHandler serves h over an in-memory listener and returns a health
// client.
func dialHandler(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	h.Register(srv)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func status(t *testing.T, client healthpb.HealthClient, name string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: name})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHealth_Lifecycle(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())
	client := dialHandler(t, h)

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, client, LedgerServiceName))

	h.SetServing(true)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status(t, client, LedgerServiceName))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, status(t, client, ""))

	h.Shutdown()
	h.SetServing(true)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, status(t, client, LedgerServiceName))
}

func TestProbe(t *testing.T) {
	ledger := mock.NewMockLedgerService(gomock.NewController(t))
	h := NewHandler(&service.Services{LedgerService: ledger}, logger.Nop())

	ledger.EXPECT().GetCount(gomock.Any()).Return(uint64(4), nil)
	assert.NoError(t, h.Probe(context.Background()))

	boom := errors.New("database is locked")
	ledger.EXPECT().GetCount(gomock.Any()).Return(uint64(0), boom)
	assert.ErrorIs(t, h.Probe(context.Background()), boom)
}
