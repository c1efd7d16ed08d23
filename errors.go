// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nbio

import (
	"errors"
	"io"
)

// nbio has exactly one non-failure signal.
//
// Mental model:
//   - nil: the operation completed; the returned value is final.
//   - ErrWouldBlock: nothing happened; retry later (busy loop, timer,
//     interrupt wake-up or a scheduler tick, the caller decides).
//   - anything else: terminal. The operation must not be retried.

// ErrWouldBlock means “no progress is possible right now”.
// Linux analogy: EAGAIN/EWOULDBLOCK.
// Next step: retry the same call later. State is never discarded.
var ErrWouldBlock = errors.New("nbio: would block")

// ErrWriteZero means a Writer accepted zero bytes of a non-empty buffer
// without reporting would-block. The write can never complete.
var ErrWriteZero = errors.New("nbio: write zero")

// ErrUnexpectedEOF means a Reader reported end of data before the target
// length was reached. It is io.ErrUnexpectedEOF so stdlib checks keep working.
var ErrUnexpectedEOF = io.ErrUnexpectedEOF

// ErrConsumed is the panic value raised when a ReadExact or WriteAll is
// polled after it has already completed or failed.
var ErrConsumed = errors.New("nbio: poll after completion")

// ErrorKind tells which terminal condition stopped a state machine.
type ErrorKind uint8

const (
	// KindOther wraps an error reported verbatim by the capability.
	KindOther ErrorKind = iota
	// KindUnexpectedEOF is zero read progress before the buffer was full.
	KindUnexpectedEOF
	// KindWriteZero is zero write progress before the buffer was drained.
	KindWriteZero
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnexpectedEOF:
		return "UnexpectedEOF"
	case KindWriteZero:
		return "WriteZero"
	default:
		return "Other"
	}
}

// Error is the terminal error of ReadExact and WriteAll.
//
// Use errors.Is against ErrUnexpectedEOF / ErrWriteZero, or against the
// domain error of the underlying Reader/Writer for KindOther.
type Error struct {
	Kind ErrorKind
	Err  error // only set for KindOther
}

// Other wraps a domain error reported by a capability implementation.
//
// The conversion is explicit on purpose: an *Error is returned as is instead
// of being nested, and a nil err yields a nil *Error.
func Other(err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{Kind: KindOther, Err: err}
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindUnexpectedEOF:
		return "nbio: unexpected EOF"
	case KindWriteZero:
		return "nbio: write zero"
	default:
		if e.Err == nil {
			return "nbio: <nil>"
		}
		return "nbio: " + e.Err.Error()
	}
}

func (e *Error) Unwrap() error {
	switch e.Kind {
	case KindUnexpectedEOF:
		return ErrUnexpectedEOF
	case KindWriteZero:
		return ErrWriteZero
	default:
		return e.Err
	}
}

var (
	errUnexpectedEOF = &Error{Kind: KindUnexpectedEOF}
	errWriteZero     = &Error{Kind: KindWriteZero}
)
