package config

import "time"

// Defaults applied to fields that no source populated.
const (
	DefaultTokenIssuer      = "dream-ledger"
	DefaultTokenDuration    = time.Hour
	DefaultRequestTimeout   = 15 * time.Second
	DefaultGasBudget        = 100
	DefaultGasRefill        = 10
	DefaultGasRefillPeriod  = time.Minute
	DefaultRefreshInterval  = 30 * time.Second
	DefaultFetchConcurrency = 8
	DefaultLogLevel         = "info"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Ledger.ChainID == 0 {
		cfg.Ledger.ChainID = ChainIDLocal
	}
	if cfg.Wallet.ChainID == 0 {
		cfg.Wallet.ChainID = cfg.Ledger.ChainID
	}
	if cfg.Ledger.GasBudget == 0 {
		cfg.Ledger.GasBudget = DefaultGasBudget
	}
	if cfg.Ledger.GasRefill == 0 {
		cfg.Ledger.GasRefill = DefaultGasRefill
	}
	if cfg.Ledger.GasRefillPeriod == 0 {
		cfg.Ledger.GasRefillPeriod = DefaultGasRefillPeriod
	}
	if cfg.Workers.RefreshInterval == 0 {
		cfg.Workers.RefreshInterval = DefaultRefreshInterval
	}
	if cfg.Workers.FetchConcurrency == 0 {
		cfg.Workers.FetchConcurrency = DefaultFetchConcurrency
	}
}
