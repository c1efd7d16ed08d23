// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package nbiotest provides scripted non-blocking readers and writers for
// testing code built on package nbio.
package nbiotest

import (
	"io"

	"code.hybscloud.com/nbio"
)

// All as Step.N transfers as much as the call allows.
const All = -1

// Step scripts the outcome of one Read or Write call.
//
// N bytes are transferred (clamped to what the call and the backing data
// allow; All means no script limit), then Err is returned. Any other
// negative N panics.
type Step struct {
	N   int
	Err error
}

// Bytes transfers up to n bytes.
func Bytes(n int) Step { return Step{N: n} }

// WouldBlock transfers nothing and reports nbio.ErrWouldBlock.
func WouldBlock() Step { return Step{Err: nbio.ErrWouldBlock} }

// Zero transfers nothing and reports no error: end of data on read,
// rejection on write.
func Zero() Step { return Step{} }

// Fail transfers nothing and reports err.
func Fail(err error) Step { return Step{Err: err} }

func limit(n, max int) int {
	if n < 0 && n != All {
		panic("nbiotest: negative Step.N")
	}
	if n == All || n > max {
		return max
	}
	return n
}

// Reader replays Steps against Src. Once Steps are exhausted every call
// uses Default.
type Reader struct {
	Src     []byte
	Steps   []Step
	Default Step

	// Calls counts Read invocations.
	Calls int
	off   int
}

// Read implements nbio.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	st := r.Default
	if r.Calls < len(r.Steps) {
		st = r.Steps[r.Calls]
	}
	r.Calls++
	n := limit(st.N, min(len(p), len(r.Src)-r.off))
	copy(p, r.Src[r.off:r.off+n])
	r.off += n
	return n, st.Err
}

// Remaining returns the unread part of Src.
func (r *Reader) Remaining() []byte { return r.Src[r.off:] }

// Writer replays Steps, storing accepted bytes into Store. Once Steps are
// exhausted every call uses Default.
//
// Flush and Close return FlushSteps and CloseSteps in order, then nil.
type Writer struct {
	Store   []byte
	Steps   []Step
	Default Step

	FlushSteps []error
	CloseSteps []error

	Calls   int
	Flushes int
	Closes  int
	off     int
}

// Write implements nbio.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	st := w.Default
	if w.Calls < len(w.Steps) {
		st = w.Steps[w.Calls]
	}
	w.Calls++
	n := limit(st.N, min(len(p), len(w.Store)-w.off))
	copy(w.Store[w.off:], p[:n])
	w.off += n
	return n, st.Err
}

// Flush implements nbio.Flusher.
func (w *Writer) Flush() error {
	w.Flushes++
	if w.Flushes <= len(w.FlushSteps) {
		return w.FlushSteps[w.Flushes-1]
	}
	return nil
}

// Close implements nbio.Closer.
func (w *Writer) Close() error {
	w.Closes++
	if w.Closes <= len(w.CloseSteps) {
		return w.CloseSteps[w.Closes-1]
	}
	return nil
}

// Written returns the accepted prefix of Store.
func (w *Writer) Written() []byte { return w.Store[:w.off] }

// SliceReader reads from a fixed slice and never blocks.
type SliceReader struct{ b []byte }

func NewSliceReader(b []byte) *SliceReader { return &SliceReader{b: b} }

// Read implements nbio.Reader. It returns io.EOF once the slice is drained.
func (r *SliceReader) Read(p []byte) (int, error) {
	if len(r.b) == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	n := copy(p, r.b)
	r.b = r.b[n:]
	return n, nil
}

// Len returns the number of unread bytes.
func (r *SliceReader) Len() int { return len(r.b) }

// SliceWriter writes into a fixed slice and never blocks. Once the slice is
// full it accepts zero bytes.
type SliceWriter struct {
	b   []byte
	off int
}

func NewSliceWriter(b []byte) *SliceWriter { return &SliceWriter{b: b} }

// Write implements nbio.Writer.
func (w *SliceWriter) Write(p []byte) (int, error) {
	n := copy(w.b[w.off:], p)
	w.off += n
	return n, nil
}

// Flush implements nbio.Flusher; there is nothing to flush.
func (*SliceWriter) Flush() error { return nil }

// Close implements nbio.Closer.
func (*SliceWriter) Close() error { return nil }

// Len returns the number of bytes written so far.
func (w *SliceWriter) Len() int { return w.off }
