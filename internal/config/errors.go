package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing ledger address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid ledger storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidLedgerConfigs indicates an invalid gas budget.
	ErrInvalidLedgerConfigs = errors.New("invalid ledger configuration")
	// ErrInvalidWalletConfigs indicates a malformed wallet key.
	ErrInvalidWalletConfigs = errors.New("invalid wallet configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero refresh interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")

	// ErrUnsupportedChain is returned when no contract is known for a chain.
	ErrUnsupportedChain = errors.New("unsupported chain")
	// ErrInvalidContractAddress is returned for a malformed contract override.
	ErrInvalidContractAddress = errors.New("invalid contract address")
)
