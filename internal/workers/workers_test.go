// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type countingWorker struct {
	runs atomic.Int32
}

func (w *countingWorker) Run(ctx context.Context) {
	w.runs.Add(1)
	<-ctx.Done()
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &countingWorker{}, &countingWorker{}, &countingWorker{}
	ws := NewWorkers(w1, w2, w3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	deadline := time.Now().Add(time.Second)
	for w1.runs.Load()+w2.runs.Load()+w3.runs.Load() < 3 {
		if time.Now().After(deadline) {
			t.Fatal("workers did not start")
		}
		time.Sleep(time.Millisecond)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	for i, w := range []*countingWorker{w1, w2, w3} {
		if got := w.runs.Load(); got != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, got)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// returns immediately without workers
	ws.Run(context.Background())
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	ws.Run(context.Background())
}

type blockingWorker struct {
	mu      sync.Mutex
	stopped bool
}

func (w *blockingWorker) Run(ctx context.Context) {
	<-ctx.Done()
	w.mu.Lock()
	w.stopped = true
	w.mu.Unlock()
}

func TestWorkers_Run_WaitsForWorkers(t *testing.T) {
	w := &blockingWorker{}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	NewWorkers(w).Run(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.stopped {
		t.Error("expected Run to wait for the worker to stop")
	}
}
