package config

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLedgerConfig() *StructuredConfig {
	cfg := &StructuredConfig{
		App:     App{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: "memory"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
	}
	cfg.applyDefaults()
	return cfg
}

func TestValidateLedger(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "no dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no address", mutate: func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "no sign key", mutate: func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "unknown chain", mutate: func(cfg *StructuredConfig) { cfg.Ledger.ChainID = 1 }, wantErr: ErrUnsupportedChain},
		{
			name:   "unknown chain with override",
			mutate: func(cfg *StructuredConfig) {
				cfg.Ledger.ChainID = 1
				cfg.Ledger.ContractAddress = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
			},
		},
		{name: "bad override", mutate: func(cfg *StructuredConfig) { cfg.Ledger.ContractAddress = "0x12" }, wantErr: ErrInvalidContractAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validLedgerConfig()
			tt.mutate(cfg)

			err := cfg.validateLedger()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewClientConfig(t *testing.T) {
	cfg := &StructuredConfig{
		App:     App{HashKey: "k", LogDir: "/tmp"},
		Adapter: Adapter{HTTPAddress: "localhost:8080"},
		Wallet:  Wallet{PrivateKey: "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"},
	}
	cfg.applyDefaults()

	clientCfg, err := NewClientConfig(cfg)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", clientCfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, clientCfg.Adapter.RequestTimeout)
	assert.Equal(t, ChainIDLocal, clientCfg.Wallet.ChainID)
	assert.Equal(t, common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"), clientCfg.Wallet.Contract)
	assert.Equal(t, "k", clientCfg.App.HashKey)
	assert.Equal(t, 30*time.Second, clientCfg.Workers.RefreshInterval)
}

func TestNewClientConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "no ledger address", mutate: func(cfg *StructuredConfig) { cfg.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "short wallet key", mutate: func(cfg *StructuredConfig) { cfg.Wallet.PrivateKey = "0xabc" }, wantErr: ErrInvalidWalletConfigs},
		{name: "non hex wallet key", mutate: func(cfg *StructuredConfig) {
			cfg.Wallet.PrivateKey = "zz0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
		}, wantErr: ErrInvalidWalletConfigs},
		{name: "unsupported chain", mutate: func(cfg *StructuredConfig) { cfg.Wallet.ChainID = 5 }, wantErr: ErrUnsupportedChain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &StructuredConfig{Adapter: Adapter{HTTPAddress: "localhost:8080"}}
			cfg.applyDefaults()
			tt.mutate(cfg)

			_, err := NewClientConfig(cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestContractAddress(t *testing.T) {
	local, err := ContractAddress(ChainIDLocal)
	require.NoError(t, err)
	assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", local.Hex())

	sepolia, err := ContractAddress(ChainIDSepolia)
	require.NoError(t, err)
	assert.Equal(t, "0x96F07ec5a7027050232441Bcca412EF98533ee6F", sepolia.Hex())

	_, err = ContractAddress(1)
	assert.ErrorIs(t, err, ErrUnsupportedChain)
}
