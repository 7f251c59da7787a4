// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Avdeyev

package workers

import "context"

// Workers aggregates background workers so the application can start them
// all with one call.
type Workers struct {
	workers []Worker
}

// NewWorkers bundles the given workers.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker. Workers spawn their own goroutines, so Run
// returns immediately; canceling ctx stops them all.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
