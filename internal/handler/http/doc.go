// Package http is the ledger node's REST transport.
//
// Public routes serve the ledger reads, the event log, login and the
// confidential runtime metadata. Writes and relayer calls require a session
// token and, when a hash key is configured, a HashSHA256 body header.
// Failed calls answer with a JSON {"error": reason} body whose reason is the
// revert message clients match on.
package http
