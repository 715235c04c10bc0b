// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

type countingWorker struct {
	runs atomic.Int32
}

func (c *countingWorker) Run(ctx context.Context) {
	c.runs.Add(1)
	<-ctx.Done()
}

func TestWorkers_RunStartsEveryWorkerAndWaits(t *testing.T) {
	defer goleak.VerifyNone(t)

	w1, w2 := &countingWorker{}, &countingWorker{}
	ws := NewWorkers(w1, nil, w2)
	assert.Equal(t, 2, ws.Len())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return w1.runs.Load() == 1 && w2.runs.Load() == 1
	}, time.Second, 5*time.Millisecond)

	select {
	case <-done:
		t.Fatal("Run returned before cancellation")
	default:
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestWorkers_RunEmpty(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	NewWorkers().Run(ctx)
	(&Workers{}).Run(ctx)
}
