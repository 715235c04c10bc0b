package server

import "context"

// Server is the lifecycle of the transport servers.
type Server interface {
	// RunServer serves until ctx is done or a stop signal arrives, then
	// shuts every transport down.
	RunServer(ctx context.Context)

	// Shutdown gracefully stops every transport.
	Shutdown()
}
