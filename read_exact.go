// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nbio

import (
	"errors"
	"io"
)

var (
	errBadReadCount  = errors.New("nbio: reader returned invalid count from Read")
	errBadWriteCount = errors.New("nbio: writer returned invalid count from Write")
)

type machineState uint8

const (
	stateActive machineState = iota
	stateDone
	stateFailed
)

// ReadExact reads from a Reader until a fixed buffer is full.
//
// It owns the reader and the buffer while active. Poll hands both back
// together once the buffer is full; on a terminal error both are dropped and
// only the error is returned. A ReadExact is single-use and must not be
// polled concurrently.
type ReadExact[R Reader] struct {
	reader R
	buf    []byte
	pos    int
	n      int
	state  machineState
}

// NewReadExact returns a ReadExact that fills buf from r.
//
// Nothing is read until the first Poll.
func NewReadExact[R Reader](r R, buf []byte) *ReadExact[R] {
	return &ReadExact[R]{reader: r, buf: buf, n: len(buf)}
}

// Poll drives the reader until the buffer is full or it cannot make progress.
//
// Results:
//   - (r, buf, nil): buf is full; ownership of r and buf returns to the caller.
//   - (zero, nil, ErrWouldBlock): the reader would block; progress so far is
//     kept and the next Poll resumes from the same position.
//   - (zero, nil, *Error): terminal. KindUnexpectedEOF if the reader reported
//     end of data early, KindOther for any other reader error.
//
// Poll panics with ErrConsumed when called after a non-would-block result.
func (m *ReadExact[R]) Poll() (R, []byte, error) {
	if m.state != stateActive {
		panic(ErrConsumed)
	}
	for m.pos < len(m.buf) {
		p := m.buf[m.pos:]
		n, err := m.reader.Read(p)
		if n < 0 || n > len(p) {
			panic(errBadReadCount)
		}
		m.pos += n
		if err != nil {
			if m.pos == len(m.buf) && (err == io.EOF || IsWouldBlock(err)) {
				break
			}
			if IsWouldBlock(err) {
				var zero R
				return zero, nil, err
			}
			if err == io.EOF {
				return m.fail(errUnexpectedEOF)
			}
			return m.fail(Other(err))
		}
		if n == 0 {
			return m.fail(errUnexpectedEOF)
		}
	}

	r, buf := m.reader, m.buf
	m.release(stateDone)
	return r, buf, nil
}

func (m *ReadExact[R]) fail(err *Error) (R, []byte, error) {
	m.release(stateFailed)
	var zero R
	return zero, nil, err
}

func (m *ReadExact[R]) release(s machineState) {
	var zero R
	m.reader, m.buf, m.state = zero, nil, s
}

// Progress returns the number of bytes filled so far.
func (m *ReadExact[R]) Progress() int { return m.pos }

// Len returns the target length, len(buf) at construction.
func (m *ReadExact[R]) Len() int { return m.n }

// Done reports whether Poll has returned a final result.
func (m *ReadExact[R]) Done() bool { return m.state != stateActive }
