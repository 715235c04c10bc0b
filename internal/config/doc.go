// Package config provides configuration loading, merging, and validation
// for the ledger node and the client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetLedgerConfig] for the ledger node and
// [GetClientConfig] for the client. Both are views over [StructuredConfig].
// The contract deployed on every supported chain is resolved through
// [ContractAddress].
package config
