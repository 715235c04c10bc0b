// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// ledger node and the client. It is populated by merging values from
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, the transport hash key, the version and
	// the log level.
	App App `envPrefix:"APP_"`

	// Storage holds the ledger database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and timeouts of the ledger node.
	Server Server `envPrefix:"SERVER_"`

	// Ledger holds the chain context and the gas budget of the ledger node.
	Ledger Ledger `envPrefix:"LEDGER_"`

	// Adapter holds the client's view of the ledger node address.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Wallet holds the client's account key.
	Wallet Wallet `envPrefix:"WALLET_"`

	// Workers holds the aggregate view refresh settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration of the ledger persistence backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret used to sign and verify session tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every issued session token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of a session token (e.g. "1h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey is the HMAC key used for request integrity checking
	// (the HashSHA256 header). Empty disables the check.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogDir is the directory the client writes its log file into.
	// Env: APP_LOG_DIR
	LogDir string `env:"LOG_DIR"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the "host:port" the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the "host:port" the gRPC health server listens on.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend:
	//   - "memory" keeps the ledger in process memory;
	//   - "postgres://..." or "postgresql://..." uses PostgreSQL through pgx;
	//   - anything else is a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Ledger holds the chain context served by the ledger node and the
// per-account gas budget.
type Ledger struct {
	// ChainID is the chain identifier of the ledger.
	// Env: LEDGER_CHAIN_ID
	ChainID uint64 `env:"CHAIN_ID"`

	// ContractAddress overrides the address from the built-in table.
	// Env: LEDGER_CONTRACT_ADDRESS
	ContractAddress string `env:"CONTRACT_ADDRESS"`

	// GasBudget is the number of writes an account may burst.
	// Env: LEDGER_GAS_BUDGET
	GasBudget int `env:"GAS_BUDGET"`

	// GasRefill is the number of writes restored every GasRefillPeriod.
	// Env: LEDGER_GAS_REFILL
	GasRefill int `env:"GAS_REFILL"`

	// GasRefillPeriod is the refill period of the gas budget.
	// Env: LEDGER_GAS_REFILL_PERIOD
	GasRefillPeriod time.Duration `env:"GAS_REFILL_PERIOD"`
}

// Adapter holds the client's outbound transport settings.
type Adapter struct {
	// HTTPAddress is the ledger node address, with or without scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Wallet holds the client's account identity.
type Wallet struct {
	// PrivateKey is the hex secp256k1 key. Empty generates an ephemeral
	// account on start.
	// Env: WALLET_PRIVATE_KEY
	PrivateKey string `env:"PRIVATE_KEY"`

	// ChainID is the chain the wallet is connected to.
	// Env: WALLET_CHAIN_ID
	ChainID uint64 `env:"CHAIN_ID"`
}

// Workers holds configuration for the periodic background jobs: the
// client's gallery refresh and the node's health probe.
type Workers struct {
	// RefreshInterval is the period of the gallery refresh and of the
	// node health probe.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`

	// FetchConcurrency bounds concurrent note fetches during a refresh.
	// Env: WORKERS_FETCH_CONCURRENCY
	FetchConcurrency int `env:"FETCH_CONCURRENCY"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (later sources
// override non-zero fields of earlier ones):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to fields left empty by every source.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
