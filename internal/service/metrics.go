package service

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricsNamespace       = "dream"
	metricsLedgerSubsystem = "ledger"
)

var (
	notesSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsLedgerSubsystem,
			Name:      "notes_submitted_total",
			Help:      "Number of accepted note submissions",
		},
	)
	interpretationsRecorded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsLedgerSubsystem,
			Name:      "interpretations_recorded_total",
			Help:      "Number of accepted interpretation count increments",
		},
	)
	revertedCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsLedgerSubsystem,
			Name:      "reverted_calls_total",
			Help:      "Number of rejected ledger writes",
		},
		[]string{"op", "reason"},
	)
)

func init() {
	prometheus.MustRegister(notesSubmitted)
	prometheus.MustRegister(interpretationsRecorded)
	prometheus.MustRegister(revertedCalls)
}

// revertReason is the label value recorded for err.
func revertReason(err error) string {
	switch {
	case errors.Is(err, ErrEmptyDreamData):
		return "empty_data"
	case errors.Is(err, ErrDreamDoesNotExist):
		return "not_found"
	case errors.Is(err, ErrInvalidInputProof):
		return "invalid_proof"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrInvalidDataProvided):
		return "invalid_data"
	default:
		return "internal"
	}
}
