// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package async

import (
	"errors"
	"io"

	"code.hybscloud.com/nbio"
)

// Reader is the poll-based read side consumed by a cooperative scheduler.
type Reader interface {
	PollRead(p []byte) Poll[int]
}

// Writer is the poll-based write side consumed by a cooperative scheduler.
type Writer interface {
	PollWrite(p []byte) Poll[int]
	PollFlush() Poll[struct{}]
	PollClose() Poll[struct{}]
}

// Stream lifts one non-blocking capability into the poll-based interface.
//
// Each Poll method performs exactly one call on the wrapped value. There is
// no buffering and no retry: pacing is the scheduler's job. Stream is not
// safe for concurrent use.
type Stream[T any] struct {
	inner    T
	released bool
}

// AsAsync wraps inner. T is usually an nbio.Reader, an nbio.Writer, or both;
// calling a Poll method the value does not support fails with
// errors.ErrUnsupported.
func AsAsync[T any](inner T) *Stream[T] {
	return &Stream[T]{inner: inner}
}

// Inner returns the wrapped value.
func (s *Stream[T]) Inner() T { return s.inner }

// IntoInner hands the wrapped value back and releases it from s. Any Poll
// method called afterwards panics with nbio.ErrConsumed.
func (s *Stream[T]) IntoInner() T {
	s.checkOwned()
	v := s.inner
	var zero T
	s.inner, s.released = zero, true
	return v
}

func (s *Stream[T]) checkOwned() {
	if s.released {
		panic(nbio.ErrConsumed)
	}
}

// PollRead attempts one read into p.
//
// Would-block suspends. (n, nil) resumes with n; a zero n for a non-empty p
// is end of stream, as is io.EOF. Bytes delivered together with io.EOF or
// would-block resume with their count. Other errors resume as *IOError.
func (s *Stream[T]) PollRead(p []byte) Poll[int] {
	s.checkOwned()
	r, ok := any(s.inner).(nbio.Reader)
	if !ok {
		return FailedOf[int](Wrap(errors.ErrUnsupported))
	}
	n, err := r.Read(p)
	if err == io.EOF && n == 0 {
		return ReadyOf(0)
	}
	if n > 0 && (err == io.EOF || nbio.IsWouldBlock(err)) {
		return ReadyOf(n)
	}
	return lift(n, err)
}

// PollWrite attempts one write from p.
//
// Would-block suspends. (n, nil) with n > 0 resumes with n. Zero progress on
// a non-empty p resumes with a WriteZero *IOError. Other errors resume as
// *IOError.
func (s *Stream[T]) PollWrite(p []byte) Poll[int] {
	s.checkOwned()
	w, ok := any(s.inner).(nbio.Writer)
	if !ok {
		return FailedOf[int](Wrap(errors.ErrUnsupported))
	}
	n, err := w.Write(p)
	if n > 0 && nbio.IsWouldBlock(err) {
		return ReadyOf(n)
	}
	if err == nil && n == 0 && len(p) > 0 {
		return FailedOf[int](WriteZeroError("failed to write any bytes"))
	}
	return lift(n, err)
}

// PollFlush attempts one flush. Values without a Flush method resume
// immediately. Nothing is promised about durability.
func (s *Stream[T]) PollFlush() Poll[struct{}] {
	s.checkOwned()
	f, ok := any(s.inner).(nbio.Flusher)
	if !ok {
		return ReadyOf(struct{}{})
	}
	return lift(struct{}{}, f.Flush())
}

// PollClose attempts one close. Values without a Close method resume
// immediately.
func (s *Stream[T]) PollClose() Poll[struct{}] {
	s.checkOwned()
	c, ok := any(s.inner).(nbio.Closer)
	if !ok {
		return ReadyOf(struct{}{})
	}
	return lift(struct{}{}, c.Close())
}
