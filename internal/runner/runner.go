// Package runner executes fire-and-forget background tasks. Uploads return
// to the client immediately; the pipeline they spawn runs here, bounded so
// a burst of uploads cannot exhaust the host with encoder processes.
package runner

import (
	"context"
	"sync"

	"github.com/chirpnet/media-api/internal/logger"
	"github.com/chirpnet/media-api/internal/port"
)

type Runner struct {
	sem chan struct{}
	wg  sync.WaitGroup
}

// compile-time check: *Runner must satisfy port.TaskRunner
var _ port.TaskRunner = (*Runner)(nil)

func New(maxConcurrent int) *Runner {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &Runner{sem: make(chan struct{}, maxConcurrent)}
}

// Go schedules fn on its own goroutine and returns immediately. Tasks get a
// fresh background context: they outlive the request that spawned them.
func (r *Runner) Go(name string, fn func(ctx context.Context)) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		r.sem <- struct{}{}
		defer func() { <-r.sem }()

		defer func() {
			if rec := recover(); rec != nil {
				logger.Errorf(context.Background(), "background task %q panicked: %v", name, rec)
			}
		}()

		fn(context.Background())
	}()
}

// Wait blocks until every scheduled task has finished. Used on shutdown to
// drain in-flight pipelines.
func (r *Runner) Wait() { r.wg.Wait() }
