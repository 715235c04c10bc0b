package http

import (
	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/internal/service"
	"github.com/MKhiriev/go-dream-cipher/internal/utils"
)

type Handler struct {
	services *service.Services

	// hashKey enables the request integrity check when set.
	hashKey  string
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, hashKey string, logger *logger.Logger) *Handler {
	if hashKey != "" {
		utils.InitHasherPool(hashKey)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		hashKey:  hashKey,
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
