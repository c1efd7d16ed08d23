// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nbio

// WriteAll writes a fixed buffer into a Writer until every byte is accepted.
//
// It is the write-side mirror of ReadExact with the same ownership and
// termination rules.
type WriteAll[W Writer] struct {
	writer W
	buf    []byte
	pos    int
	n      int
	state  machineState
}

// NewWriteAll returns a WriteAll that drains buf into w.
//
// Nothing is written until the first Poll.
func NewWriteAll[W Writer](w W, buf []byte) *WriteAll[W] {
	return &WriteAll[W]{writer: w, buf: buf, n: len(buf)}
}

// Poll drives the writer until the buffer is drained or it cannot make
// progress.
//
// Results:
//   - (w, buf, nil): every byte was accepted; w and buf return to the caller.
//   - (zero, nil, ErrWouldBlock): retry later from the same position.
//   - (zero, nil, *Error): terminal. KindWriteZero if the writer accepted
//     nothing without reporting would-block, KindOther for writer errors.
//
// Poll panics with ErrConsumed when called after a non-would-block result.
func (m *WriteAll[W]) Poll() (W, []byte, error) {
	if m.state != stateActive {
		panic(ErrConsumed)
	}
	for m.pos < len(m.buf) {
		p := m.buf[m.pos:]
		n, err := m.writer.Write(p)
		if n < 0 || n > len(p) {
			panic(errBadWriteCount)
		}
		m.pos += n
		if err != nil {
			if IsWouldBlock(err) {
				if m.pos == len(m.buf) {
					break
				}
				var zero W
				return zero, nil, err
			}
			return m.fail(Other(err))
		}
		if n == 0 {
			return m.fail(errWriteZero)
		}
	}

	w, buf := m.writer, m.buf
	m.release(stateDone)
	return w, buf, nil
}

func (m *WriteAll[W]) fail(err *Error) (W, []byte, error) {
	m.release(stateFailed)
	var zero W
	return zero, nil, err
}

func (m *WriteAll[W]) release(s machineState) {
	var zero W
	m.writer, m.buf, m.state = zero, nil, s
}

// Progress returns the number of bytes accepted so far.
func (m *WriteAll[W]) Progress() int { return m.pos }

// Len returns the target length, len(buf) at construction.
func (m *WriteAll[W]) Len() int { return m.n }

// Done reports whether Poll has returned a final result.
func (m *WriteAll[W]) Done() bool { return m.state != stateActive }
