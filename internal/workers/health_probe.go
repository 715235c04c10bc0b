// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-dream-cipher/internal/logger"
)

// DefaultProbeTimeout bounds a single probe.
const DefaultProbeTimeout = 5 * time.Second

type healthProbe struct {
	prober   Prober
	interval time.Duration
	timeout  time.Duration

	logger *logger.Logger
}

// NewHealthProbe returns a worker that probes p immediately and then every
// interval, publishing each result through p.SetServing. Status changes are
// logged once.
func NewHealthProbe(p Prober, interval time.Duration, logger *logger.Logger) Worker {
	return &healthProbe{
		prober:   p,
		interval: interval,
		timeout:  DefaultProbeTimeout,
		logger:   logger,
	}
}

func (h *healthProbe) Run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	serving := h.probe(ctx, false, true)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			serving = h.probe(ctx, serving, false)
		}
	}
}

func (h *healthProbe) probe(ctx context.Context, was, first bool) bool {
	probeCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	err := h.prober.Probe(probeCtx)
	if ctx.Err() != nil {
		return was
	}

	serving := err == nil
	h.prober.SetServing(serving)

	if first || serving != was {
		if serving {
			h.logger.Info().Msg("ledger is serving")
		} else {
			h.logger.Warn().Err(err).Msg("ledger is not serving")
		}
	}
	return serving
}
