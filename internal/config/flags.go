package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a ledger HTTP address in format [host]:[port]
//	-grpc-address ledger gRPC health address in format [host]:[port]
//	-d database DSN ("memory", a SQLite path or a postgres:// URL)
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout request timeout for both server and adapter (e.g., "15s")
//	-hash-key request integrity hash key
//	-log-level zerolog level
//	-log-dir client log directory
//	-chain-id chain identifier
//	-contract contract address override
//	-gas-budget writes an account may burst
//	-gas-refill writes restored per refill period
//	-gas-refill-period gas refill period
//	-ledger ledger node address used by the client
//	-wallet-key client account private key (hex)
//	-refresh-interval gallery refresh period
//	-fetch-concurrency gallery fetch concurrency
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		serverAddress, grpcServerAddress NetAddress

		databaseDSN    string
		jsonConfigPath string
		tokenSignKey   string
		tokenIssuer    string
		tokenDuration  time.Duration
		requestTimeout time.Duration
		hashKey        string
		logLevel       string
		logDir         string

		chainID         uint64
		contract        string
		gasBudget       int
		gasRefill       int
		gasRefillPeriod time.Duration

		ledgerAddress    string
		walletKey        string
		refreshInterval  time.Duration
		fetchConcurrency int
	)

	fs := flag.NewFlagSet("dream", flag.ContinueOnError)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&hashKey, "hash-key", "", "Security hash key")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&logDir, "log-dir", "", "Client log directory")
	fs.Uint64Var(&chainID, "chain-id", 0, "Chain id")
	fs.StringVar(&contract, "contract", "", "Contract address override")
	fs.IntVar(&gasBudget, "gas-budget", 0, "Writes an account may burst")
	fs.IntVar(&gasRefill, "gas-refill", 0, "Writes restored per refill period")
	fs.DurationVar(&gasRefillPeriod, "gas-refill-period", 0, "Gas refill period")
	fs.StringVar(&ledgerAddress, "ledger", "", "Ledger node address")
	fs.StringVar(&walletKey, "wallet-key", "", "Wallet private key (hex)")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Gallery refresh interval")
	fs.IntVar(&fetchConcurrency, "fetch-concurrency", 0, "Gallery fetch concurrency")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			HashKey:       hashKey,
			LogLevel:      logLevel,
			LogDir:        logDir,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Ledger: Ledger{
			ChainID:         chainID,
			ContractAddress: contract,
			GasBudget:       gasBudget,
			GasRefill:       gasRefill,
			GasRefillPeriod: gasRefillPeriod,
		},
		Adapter: Adapter{
			HTTPAddress:    ledgerAddress,
			RequestTimeout: requestTimeout,
		},
		Wallet: Wallet{
			PrivateKey: walletKey,
			ChainID:    chainID,
		},
		Workers: Workers{
			RefreshInterval:  refreshInterval,
			FetchConcurrency: fetchConcurrency,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
