// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package async

import (
	"context"

	"code.hybscloud.com/nbio"
)

// Future is a unit of work a cooperative scheduler polls once per tick.
type Future[T any] interface {
	Poll() Poll[T]
}

// FutureFunc adapts a function to Future.
type FutureFunc[T any] func() Poll[T]

func (f FutureFunc[T]) Poll() Poll[T] { return f() }

// Completion is what a finished ReadExact or WriteAll hands back.
type Completion[C any] struct {
	Inner C
	Buf   []byte
}

// ReadExactFuture fills a buffer from a reader, one Poll per tick.
type ReadExactFuture[R nbio.Reader] struct {
	m *nbio.ReadExact[R]
}

// ReadExact returns a Future that resolves once buf is full.
// End of data before that resolves with an UnexpectedEOF *IOError.
func ReadExact[R nbio.Reader](r R, buf []byte) *ReadExactFuture[R] {
	return &ReadExactFuture[R]{m: nbio.NewReadExact(r, buf)}
}

// Poll implements Future. Like the underlying machine, it panics once polled
// after having resolved.
func (f *ReadExactFuture[R]) Poll() Poll[Completion[R]] {
	r, buf, err := f.m.Poll()
	return lift(Completion[R]{Inner: r, Buf: buf}, err)
}

// Progress returns the number of bytes filled so far.
func (f *ReadExactFuture[R]) Progress() int { return f.m.Progress() }

// WriteAllFuture drains a buffer into a writer, one Poll per tick.
type WriteAllFuture[W nbio.Writer] struct {
	m *nbio.WriteAll[W]
}

// WriteAll returns a Future that resolves once every byte of buf is accepted.
// Zero progress before that resolves with a WriteZero *IOError.
func WriteAll[W nbio.Writer](w W, buf []byte) *WriteAllFuture[W] {
	return &WriteAllFuture[W]{m: nbio.NewWriteAll(w, buf)}
}

// Poll implements Future.
func (f *WriteAllFuture[W]) Poll() Poll[Completion[W]] {
	w, buf, err := f.m.Poll()
	return lift(Completion[W]{Inner: w, Buf: buf}, err)
}

// Progress returns the number of bytes accepted so far.
func (f *WriteAllFuture[W]) Progress() int { return f.m.Progress() }

// Drive polls fut until it resolves, consulting policy between pending
// polls. It stands in for a scheduler when the caller may block.
// A nil policy busy-polls.
func Drive[T any](ctx context.Context, policy nbio.SemanticPolicy, fut Future[T]) (T, error) {
	return nbio.Block(ctx, nbio.OpPoll, policy, func() (T, error) {
		return fut.Poll().Value()
	})
}
