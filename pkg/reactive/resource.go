package reactive

import (
	"context"
	"sync"
)

// ResourceState represents the current state of a resource.
type ResourceState uint8

const (
	Pending ResourceState = iota // Initial state, before first fetch
	Loading                      // Fetch in progress
	Ready                        // Data successfully loaded
	Failed                       // Fetch failed
)

// String returns the string representation of the ResourceState.
func (s ResourceState) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Loading:
		return "Loading"
	case Ready:
		return "Ready"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Resource bridges an asynchronous data source into the signal graph.
//
// The fetcher runs on its own goroutine; the tree renders a placeholder
// state until it completes, at which point the resource's signals update
// and any bound regions patch. The fetch context is cancelled when the
// owning scope is disposed, so a completion that arrives after unmount
// updates nothing that is still subscribed - the subscriptions were
// released with the owner.
type Resource[T any] struct {
	state *Signal[ResourceState]
	value *Signal[T]
	err   error
	errMu sync.RWMutex

	fetcher func(ctx context.Context) (T, error)
	cancel  context.CancelFunc
}

// NewResource creates a resource and starts its first fetch.
// If a current Owner exists, disposal of that owner cancels the fetch.
func NewResource[T any](fetcher func(ctx context.Context) (T, error)) *Resource[T] {
	var zero T
	r := &Resource[T]{
		state:   NewSignal(Pending),
		value:   NewSignal(zero),
		fetcher: fetcher,
	}

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	if owner := getCurrentOwner(); owner != nil {
		owner.OnCleanup(cancel)
	}

	r.fetch(ctx)
	return r
}

// fetch runs the fetcher on a fresh goroutine.
func (r *Resource[T]) fetch(ctx context.Context) {
	r.state.Set(Loading)

	go func() {
		value, err := r.fetcher(ctx)

		// A cancelled fetch must not publish its result.
		if ctx.Err() != nil {
			return
		}

		if err != nil {
			r.errMu.Lock()
			r.err = err
			r.errMu.Unlock()
			r.state.Set(Failed)
			return
		}

		Batch(func() {
			r.value.Set(value)
			r.state.Set(Ready)
		})
	}()
}

// Refetch starts a new fetch, cancelling any in-flight one.
func (r *Resource[T]) Refetch() {
	r.cancel()
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.fetch(ctx)
}

// State returns the current resource state, subscribing the current
// listener.
func (r *Resource[T]) State() ResourceState {
	return r.state.Get()
}

// Value returns the last loaded value, subscribing the current listener.
// The zero value is returned until the first successful fetch.
func (r *Resource[T]) Value() T {
	return r.value.Get()
}

// Err returns the error from the last failed fetch, or nil.
func (r *Resource[T]) Err() error {
	r.errMu.RLock()
	defer r.errMu.RUnlock()
	return r.err
}

// Cancel cancels any in-flight fetch. Late completion becomes a no-op.
func (r *Resource[T]) Cancel() {
	r.cancel()
}
