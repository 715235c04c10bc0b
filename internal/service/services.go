package service

import (
	"github.com/MKhiriev/go-dream-cipher/internal/config"
	"github.com/MKhiriev/go-dream-cipher/internal/logger"
	"github.com/MKhiriev/go-dream-cipher/internal/store"
	"github.com/MKhiriev/go-dream-cipher/models"
)

// Services groups the services of the ledger node.
type Services struct {
	LedgerService  LedgerService
	RelayerService RelayerService
	AuthService    AuthService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, runtime ConfidentialRuntime, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	ledger := NewLedgerService(storages.NoteRepository, storages.EventRepository, runtime, NewGasMeter(cfg.Ledger), logger)

	return &Services{
		LedgerService:  NewLedgerValidationService().Wrap(ledger),
		RelayerService: NewRelayerService(runtime, logger),
		AuthService:    NewAuthService(cfg.App, logger),
		AppInfoService: appInfo,
	}, nil
}
