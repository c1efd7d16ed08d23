// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package async

import "code.hybscloud.com/nbio"

// Poll is the answer to one scheduler tick: either pending (suspend and poll
// again later) or ready, in which case the task resumes with a value or an
// error. The zero Poll is pending.
type Poll[T any] struct {
	value T
	err   error
	ready bool
}

// Pending returns a Poll that asks the scheduler to suspend the task.
func Pending[T any]() Poll[T] { return Poll[T]{} }

// ReadyOf returns a Poll that resumes the task with v.
func ReadyOf[T any](v T) Poll[T] { return Poll[T]{value: v, ready: true} }

// FailedOf returns a Poll that resumes the task with err. err must be a
// real failure: nil or a would-block error panics.
func FailedOf[T any](err error) Poll[T] {
	if err == nil {
		panic("async: FailedOf with nil error")
	}
	if nbio.IsWouldBlock(err) {
		panic("async: FailedOf with would-block error")
	}
	return Poll[T]{err: err, ready: true}
}

// IsPending reports whether the task must be suspended.
func (p Poll[T]) IsPending() bool { return !p.ready }

// IsReady reports whether the task can resume, with a value or an error.
func (p Poll[T]) IsReady() bool { return p.ready }

// Value returns the resumption value. For a pending Poll it returns
// nbio.ErrWouldBlock.
func (p Poll[T]) Value() (T, error) {
	if !p.ready {
		return p.value, nbio.ErrWouldBlock
	}
	return p.value, p.err
}

// Err returns the resumption error, nil while pending or on success.
func (p Poll[T]) Err() error { return p.err }

// lift maps a non-blocking (value, error) pair onto a Poll. Would-block
// suspends; any other error resumes wrapped in an *IOError.
func lift[T any](v T, err error) Poll[T] {
	switch nbio.Classify(err) {
	case nbio.OutcomeOK:
		return ReadyOf(v)
	case nbio.OutcomeWouldBlock:
		return Pending[T]()
	default:
		return FailedOf[T](Wrap(err))
	}
}
