package async

import (
	"context"
	"sync"
)

// Loader serializes loads for a single Result field. Starting a new load
// cancels the context of any load still in flight and bumps a generation
// counter, so a slow earlier response can never overwrite a later load's
// resolution.
type Loader[T any] struct {
	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	result Result[T]
}

func NewLoader[T any]() *Loader[T] {
	return &Loader[T]{result: Idle[T]()}
}

// Load moves the result to loading, runs fetch, and resolves to success
// or error. If another Load supersedes this one before fetch returns, the
// stale resolution is dropped and the current result is returned instead.
func (l *Loader[T]) Load(ctx context.Context, fetch func(context.Context) (T, error)) Result[T] {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.gen++
	gen := l.gen
	l.result = Loading[T]()
	l.mu.Unlock()

	value, err := fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if gen != l.gen {
		return l.result
	}

	cancel()
	l.cancel = nil

	if err != nil {
		l.result = Failure[T](err.Error())
	} else {
		l.result = Success(value)
	}

	return l.result
}

// Result returns the current state without starting a load.
func (l *Loader[T]) Result() Result[T] {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.result
}

// Reset cancels any in-flight load and returns the loader to idle.
func (l *Loader[T]) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}

	l.gen++
	l.result = Idle[T]()
}
