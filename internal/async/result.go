// Package async provides the four-state container every screen controller
// uses to represent the lifecycle of one asynchronous fetch.
package async

type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Result wraps one fetch: idle (not attempted), loading (in flight),
// success (carrying the value) or error (carrying a user-facing message).
// Every fetch must pass through loading before resolving; it never jumps
// from idle to success.
type Result[T any] struct {
	state   State
	value   T
	message string
}

func Idle[T any]() Result[T] {
	return Result[T]{state: StateIdle}
}

func Loading[T any]() Result[T] {
	return Result[T]{state: StateLoading}
}

func Success[T any](value T) Result[T] {
	return Result[T]{state: StateSuccess, value: value}
}

func Failure[T any](message string) Result[T] {
	return Result[T]{state: StateError, message: message}
}

func (r Result[T]) State() State    { return r.state }
func (r Result[T]) IsIdle() bool    { return r.state == StateIdle }
func (r Result[T]) IsLoading() bool { return r.state == StateLoading }
func (r Result[T]) IsSuccess() bool { return r.state == StateSuccess }
func (r Result[T]) IsError() bool   { return r.state == StateError }

// Value returns the fetched value and whether the fetch succeeded.
func (r Result[T]) Value() (T, bool) {
	return r.value, r.state == StateSuccess
}

// MustValue is for callers that already checked IsSuccess.
func (r Result[T]) MustValue() T {
	if r.state != StateSuccess {
		panic("async: MustValue on non-success result")
	}
	return r.value
}

// Message returns the error message. Empty unless in the error state.
func (r Result[T]) Message() string {
	return r.message
}
