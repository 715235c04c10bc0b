// Package server runs the transport servers of the ledger node.
//
// It starts the HTTP API and the gRPC health endpoint on the configured
// addresses, stops them on SIGTERM, SIGINT or SIGQUIT, and shuts both down
// gracefully.
package server
