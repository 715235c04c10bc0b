package config

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// HashKey is the HMAC key used by the client to sign request bodies.
	HashKey string
	// LogLevel is the zerolog level of the client log file.
	LogLevel string
	// LogDir is the directory of the client log file.
	LogDir string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the ledger node address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientWallet holds the account and chain the client acts for.
type ClientWallet struct {
	// PrivateKey is the hex account key; empty means an ephemeral account.
	PrivateKey string
	// ChainID is the chain the wallet is connected to.
	ChainID uint64
	// Contract is the ledger contract on ChainID.
	Contract common.Address
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the gallery is refreshed.
	RefreshInterval time.Duration
	// FetchConcurrency bounds concurrent note fetches.
	FetchConcurrency int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the ledger address and timeout.
	Adapter ClientAdapter
	// Wallet contains the account and chain settings.
	Wallet ClientWallet
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewClientConfig(cfg)
}

// NewClientConfig maps the fields of cfg relevant to the client runtime and
// validates the result. The contract is resolved from the wallet chain.
func NewClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	contract, err := ResolveContract(cfg.Wallet.ChainID, cfg.Ledger.ContractAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWalletConfigs, err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			HashKey:  cfg.App.HashKey,
			LogLevel: cfg.App.LogLevel,
			LogDir:   cfg.App.LogDir,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Wallet: ClientWallet{
			PrivateKey: cfg.Wallet.PrivateKey,
			ChainID:    cfg.Wallet.ChainID,
			Contract:   contract,
		},
		Workers: ClientWorkers{
			RefreshInterval:  cfg.Workers.RefreshInterval,
			FetchConcurrency: cfg.Workers.FetchConcurrency,
		},
	}

	return clientCfg, clientCfg.validate()
}
