// Package workers runs the background jobs of the ledger node.
//
// A [Worker] blocks in Run until its context is cancelled. [Workers] starts
// every registered worker in its own goroutine and waits for all of them to
// return.
package workers

import "context"

// Worker is a background job bound to a context.
type Worker interface {
	// Run blocks until ctx is done.
	Run(ctx context.Context)
}

// Prober is a component whose readiness is checked periodically.
type Prober interface {
	// Probe returns nil when the component can serve requests.
	Probe(ctx context.Context) error
	// SetServing publishes the result of the last probe.
	SetServing(serving bool)
}
