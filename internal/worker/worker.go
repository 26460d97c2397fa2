// Package worker provides a bounded pool of goroutines draining a job queue.
package worker

import (
	"context"
	"sync"
)

type ProcessFunc[T any] func(ctx context.Context, job T)

type Pool[T any] struct {
	workers int
	jobs    chan T
	process ProcessFunc[T]
	wg      sync.WaitGroup
}

func NewPool[T any](workers, bufferSize int, process ProcessFunc[T]) *Pool[T] {
	return &Pool[T]{
		workers: workers,
		jobs:    make(chan T, bufferSize),
		process: process,
	}
}

func (p *Pool[T]) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool[T]) worker(ctx context.Context) {
	defer p.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			p.process(ctx, job)
		}
	}
}

// TryEnqueue submits a job without blocking. It reports false when the queue
// is full; callers decide what a dropped job means.
func (p *Pool[T]) TryEnqueue(job T) bool {
	select {
	case p.jobs <- job:
		return true
	default:
		return false
	}
}

// Stop closes the queue and waits for workers to drain in-flight jobs.
func (p *Pool[T]) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
