// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// validate checks the shape of the merged [StructuredConfig]: values that
// are invalid for every binary. Binary-specific requirements are checked by
// [StructuredConfig.validateLedger] and [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.Ledger.GasBudget < 0 || cfg.Ledger.GasRefill < 0 || cfg.Ledger.GasRefillPeriod < 0 {
		return fmt.Errorf("%w: gas values must not be negative", ErrInvalidLedgerConfigs)
	}

	if cfg.Workers.FetchConcurrency < 0 || cfg.Workers.RefreshInterval < 0 {
		return fmt.Errorf("%w: negative refresh settings", ErrInvalidWorkerConfigs)
	}

	return nil
}

// validateLedger checks the settings the ledger node cannot start without.
func (cfg *StructuredConfig) validateLedger() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	if _, err := ResolveContract(cfg.Ledger.ChainID, cfg.Ledger.ContractAddress); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLedgerConfigs, err)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Wallet.PrivateKey != "" && !isPrivateKeyHex(cfg.Wallet.PrivateKey) {
		return ErrInvalidWalletConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 || cfg.Workers.FetchConcurrency <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func isPrivateKeyHex(s string) bool {
	s = strings.TrimPrefix(s, "0x")
	if len(s) != 64 {
		return false
	}

	_, err := hex.DecodeString(s)
	return err == nil
}
