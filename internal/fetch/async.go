package fetch

import (
	"context"
	"errors"
	"sync"
)

var ErrClosed = errors.New("async state is closed")

// State is the observable snapshot of an asynchronous fetch.
type State[T any] struct {
	Data    T
	Loading bool
	Err     error
}

// Async wraps a fetch function with loading/error/data state. Each Execute
// bumps a monotonic sequence number and only the latest-issued request may
// apply its result, so a slow stale response can never overwrite a newer
// one. Close is the teardown guard: after it, no state update is applied.
type Async[T any] struct {
	mu       sync.Mutex
	fn       func(context.Context) (T, error)
	state    State[T]
	seq      uint64
	closed   bool
	onChange func(State[T])
}

func NewAsync[T any](fn func(context.Context) (T, error)) *Async[T] {
	return &Async[T]{fn: fn}
}

// OnChange registers a callback invoked after every applied state change.
func (async *Async[T]) OnChange(fn func(State[T])) {
	async.mu.Lock()
	defer async.mu.Unlock()

	async.onChange = fn
}

// Execute runs the fetch and applies its result unless a newer Execute was
// issued in the meantime or the state was closed. The fetched value and
// error are returned to the caller either way.
func (async *Async[T]) Execute(ctx context.Context) (T, error) {
	async.mu.Lock()

	if async.closed {
		async.mu.Unlock()

		var zero T

		return zero, ErrClosed
	}

	async.seq++
	seq := async.seq
	async.state.Loading = true
	async.state.Err = nil
	async.notifyLocked()
	fn := async.fn

	async.mu.Unlock()

	data, err := fn(ctx)

	async.mu.Lock()
	defer async.mu.Unlock()

	if async.closed || seq != async.seq {
		return data, err
	}

	if err != nil {
		var zero T

		async.state = State[T]{Data: zero, Loading: false, Err: err}
	} else {
		async.state = State[T]{Data: data}
	}

	async.notifyLocked()

	return data, err
}

// SetData replaces the current value wholesale. Used for optimistic updates
// between fetches.
func (async *Async[T]) SetData(update func(T) T) {
	async.mu.Lock()
	defer async.mu.Unlock()

	if async.closed {
		return
	}

	async.state.Data = update(async.state.Data)
	async.notifyLocked()
}

func (async *Async[T]) Snapshot() State[T] {
	async.mu.Lock()
	defer async.mu.Unlock()

	return async.state
}

// Close suppresses every state update from operations still in flight.
func (async *Async[T]) Close() {
	async.mu.Lock()
	defer async.mu.Unlock()

	async.closed = true
}

func (async *Async[T]) notifyLocked() {
	if async.onChange != nil {
		async.onChange(async.state)
	}
}
