// Package tasks provides an explicit fire-and-forget background runner.
//
// Callers submit a named unit of work and move on; failures are logged and
// never surfaced back. Tests inject the synchronous implementation instead.
package tasks

import (
	"context"
	"log"
	"sync"
)

// Submitter accepts background units of work. The caller does not await
// completion and never observes the outcome.
type Submitter interface {
	Submit(name string, fn func(ctx context.Context) error)
}

type task struct {
	name string
	fn   func(ctx context.Context) error
}

// Runner executes submitted tasks on a small worker pool.
type Runner struct {
	queue chan task
	wg    sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewRunner starts a runner with the given worker count and queue depth.
// Non-positive values fall back to sane defaults.
func NewRunner(workers, queueSize int) *Runner {
	if workers <= 0 {
		workers = 4
	}
	if queueSize <= 0 {
		queueSize = 64
	}

	r := &Runner{queue: make(chan task, queueSize)}

	for i := 0; i < workers; i++ {
		r.wg.Add(1)
		go r.worker()
	}

	return r
}

// Submit enqueues a unit of work. When the queue is full or the runner is
// already closed the task is dropped with a log line; submitters are never
// blocked or failed.
func (r *Runner) Submit(name string, fn func(ctx context.Context) error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		log.Printf("[Tasks] Runner closed, dropping task %q.", name)
		return
	}

	select {
	case r.queue <- task{name: name, fn: fn}:
	default:
		log.Printf("[Tasks] Queue full, dropping task %q.", name)
	}
}

// Close stops accepting tasks and waits for queued work to drain.
func (r *Runner) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	close(r.queue)
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *Runner) worker() {
	defer r.wg.Done()

	for t := range r.queue {
		r.run(t)
	}
}

func (r *Runner) run(t task) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[Tasks] Task %q panicked: %v", t.name, rec)
		}
	}()

	if err := t.fn(context.Background()); err != nil {
		log.Printf("[Tasks] Task %q failed: %v", t.name, err)
	}
}

// Sync runs every submitted task inline. It exists so tests can stand in
// for the asynchronous runner and observe effects deterministically.
type Sync struct{}

// Submit executes fn immediately on the calling goroutine.
func (Sync) Submit(name string, fn func(ctx context.Context) error) {
	if err := fn(context.Background()); err != nil {
		log.Printf("[Tasks] Task %q failed: %v", name, err)
	}
}

var (
	_ Submitter = (*Runner)(nil)
	_ Submitter = Sync{}
)
