package view

import (
	"context"
	"sync"
	"time"
)

// FetchFunc performs the actual data fetch.
type FetchFunc func(ctx context.Context) (interface{}, error)

// ApplyFunc receives the fetch outcome. It is never called for a fetch that
// was superseded before completing.
type ApplyFunc func(result interface{}, err error)

// Fetcher coalesces rapid refetch triggers and guarantees that only the
// latest request's result reaches visible state. In-flight requests are not
// aborted at the transport level; their results are simply discarded.
type Fetcher struct {
	mu         sync.Mutex
	applyMu    sync.Mutex
	window     time.Duration
	generation uint64
	timer      *time.Timer
	pending    *Handle
}

// Handle tracks one scheduled fetch. Wait blocks until the fetch settles:
// either its result was applied or it was superseded and dropped.
type Handle struct {
	settled chan struct{}
	once    sync.Once
	applied bool
}

func (h *Handle) settle() {
	h.once.Do(func() { close(h.settled) })
}

// Wait blocks until the fetch settles and reports whether its result was
// applied.
func (h *Handle) Wait(ctx context.Context) (bool, error) {
	select {
	case <-h.settled:
		return h.applied, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// NewFetcher builds a Fetcher with the given debounce window.
func NewFetcher(window time.Duration) *Fetcher {
	return &Fetcher{window: window}
}

// Request schedules a fetch. With debounce enabled the fetch starts after the
// debounce window; either way a newer Request supersedes this one and its
// result is dropped.
func (f *Fetcher) Request(ctx context.Context, debounce bool, fetch FetchFunc, apply ApplyFunc) *Handle {
	f.mu.Lock()
	f.generation++
	generation := f.generation
	f.cancelPendingLocked()

	handle := &Handle{settled: make(chan struct{})}
	f.pending = handle

	run := func() {
		result, err := fetch(ctx)

		// The staleness check and the apply must happen under the same
		// lock: checked separately, a newer request could apply between
		// them and this stale result would then overwrite it.
		f.applyMu.Lock()
		f.mu.Lock()
		superseded := generation != f.generation
		f.mu.Unlock()
		if !superseded {
			apply(result, err)
			handle.applied = true
		}
		f.applyMu.Unlock()
		handle.settle()
	}

	if debounce && f.window > 0 {
		f.timer = time.AfterFunc(f.window, run)
		f.mu.Unlock()
		return handle
	}
	f.mu.Unlock()
	go run()
	return handle
}

// Stop cancels any pending debounced fetch and marks in-flight results stale.
func (f *Fetcher) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.generation++
	f.cancelPendingLocked()
}

// cancelPendingLocked stops a not-yet-fired debounce timer and settles the
// request it would have run. A fetch already running settles itself.
func (f *Fetcher) cancelPendingLocked() {
	if f.timer != nil {
		if f.timer.Stop() && f.pending != nil {
			f.pending.settle()
		}
		f.timer = nil
	}
	f.pending = nil
}
