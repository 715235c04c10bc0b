package config

import "fmt"

// GetLedgerConfig builds the structured configuration and checks the
// settings required by the ledger node.
func GetLedgerConfig() (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg, cfg.validateLedger()
}
