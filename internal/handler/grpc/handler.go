// Package grpc is the ledger node's gRPC transport. It serves the standard
// grpc.health.v1 service, reporting the ledger as serving while its storage
// answers.
package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/internal/service"
)

// LedgerServiceName is the service name health checks report on. The empty
// name reports on the node as a whole and follows it.
const LedgerServiceName = "dream.ledger.v1.Ledger"

// Handler owns the health state of the node.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler creates a handler that reports NOT_SERVING until the first
// successful probe.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.SetServing(false)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register installs the health service on s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Probe checks that the ledger can answer a read.
func (h *Handler) Probe(ctx context.Context) error {
	_, err := h.services.LedgerService.GetCount(ctx)
	return err
}

// SetServing updates the reported status of the node and of
// LedgerServiceName.
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(LedgerServiceName, status)
}

// Shutdown reports NOT_SERVING permanently. Later SetServing calls are
// ignored.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
