// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nbio

// Result is the explicit three-state form of a non-blocking outcome.
//
// Most of nbio speaks in plain (value, error) pairs; Result exists for code
// that has to store or pass an outcome around, such as a scheduler queue.
// The zero Result is WouldBlock.
type Result[T any] struct {
	value T
	err   error
	ready bool
}

// Ready returns a completed Result holding v.
func Ready[T any](v T) Result[T] { return Result[T]{value: v, ready: true} }

// Blocked returns a would-block Result.
func Blocked[T any]() Result[T] { return Result[T]{} }

// Failed returns a terminal Result. err must be a real failure: passing nil
// or a would-block error panics.
func Failed[T any](err error) Result[T] {
	if err == nil {
		panic("nbio: Failed with nil error")
	}
	if IsWouldBlock(err) {
		panic("nbio: Failed with would-block error")
	}
	return Result[T]{err: err}
}

// ResultOf lifts a (value, error) pair.
func ResultOf[T any](v T, err error) Result[T] {
	switch Classify(err) {
	case OutcomeOK:
		return Ready(v)
	case OutcomeWouldBlock:
		return Blocked[T]()
	default:
		return Result[T]{err: err}
	}
}

// Outcome reports which of the three states r is in.
func (r Result[T]) Outcome() Outcome {
	if r.ready {
		return OutcomeOK
	}
	if r.err == nil {
		return OutcomeWouldBlock
	}
	return OutcomeFailure
}

func (r Result[T]) IsReady() bool      { return r.ready }
func (r Result[T]) IsWouldBlock() bool { return !r.ready && r.err == nil }
func (r Result[T]) IsFailed() bool     { return !r.ready && r.err != nil }

// Value returns the value of a Ready result and the zero value otherwise.
func (r Result[T]) Value() T { return r.value }

// Err returns nil for Ready, ErrWouldBlock for WouldBlock, and the failure
// otherwise.
func (r Result[T]) Err() error {
	if r.ready {
		return nil
	}
	if r.err == nil {
		return ErrWouldBlock
	}
	return r.err
}

// Get converts r back into the ordinary Go pair.
func (r Result[T]) Get() (T, error) { return r.value, r.Err() }
