// Package worker runs deferred jobs, currently cache invalidation,
// off the HTTP request path.
package worker

import (
	"context"
	"sync"
)

// queueSize bounds pending jobs so Submit never blocks a request.
const queueSize = 64

// Task is a deferred job. Its context is cancelled when the pool stops,
// so in-flight cache calls bail out during shutdown.
type Task func(ctx context.Context)

// Pool runs submitted tasks on a fixed set of workers.
type Pool interface {
	// Submit enqueues t without blocking and reports whether it was
	// accepted. A dropped invalidation only leaves a cache entry to
	// age out via its TTL.
	Submit(t Task) bool
	Stop()
}

// NewPool starts a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	ctx, cancel := context.WithCancel(context.Background())
	p := &pool{jobs: make(chan Task, queueSize), ctx: ctx, cancel: cancel}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job(p.ctx)
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs   chan Task
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func (p *pool) Submit(t Task) bool {
	select {
	case p.jobs <- t:
		return true
	default:
		return false
	}
}

// Stop cancels the workers' context, then waits for the queue to drain.
func (p *pool) Stop() {
	p.cancel()
	close(p.jobs)
	p.wg.Wait()
}
