// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nbio

import (
	"io"
)

// Reader is the non-blocking read capability.
//
// A single Read(p) call must return immediately with one of:
//   - (n, nil), 0 < n <= len(p): n bytes were stored in p[:n].
//   - (0, ErrWouldBlock): nothing was transferred; retry later.
//   - (0, nil) or (0, io.EOF) with len(p) > 0: definitively no more data.
//   - (n, err): a terminal error, possibly after n bytes of progress.
//
// Implementations must never answer (0, nil) to mean "try again": that is
// what ErrWouldBlock is for, and the helpers in this package treat zero
// progress as fatal.
//
// Reader is an alias of io.Reader.
type Reader = io.Reader

// Writer is the non-blocking write capability.
//
// Write(p) follows the same contract as Reader.Read, with n counting the
// bytes consumed from p. (0, nil) for a non-empty p means the writer
// definitively rejects more data.
//
// Writer is an alias of io.Writer.
type Writer = io.Writer

// Flusher is implemented by writers that stage data.
//
// Flush returns nil once staged data has been handed on, ErrWouldBlock if it
// cannot make progress right now (retrying is safe), or a terminal error.
// Nothing is promised about durability.
type Flusher interface {
	Flush() error
}

// Closer is implemented by capabilities that can be shut down.
//
// Close follows the Flusher outcomes; retrying after ErrWouldBlock is safe.
//
// Closer is an alias of io.Closer.
type Closer = io.Closer

// WriteFlushCloser groups the full write-side capability.
type WriteFlushCloser interface {
	Writer
	Flusher
	Closer
}

// ReadWriter groups the basic Read and Write methods.
//
// ReadWriter is an alias of io.ReadWriter.
type ReadWriter = io.ReadWriter

// EOF is returned by Read when no more input is available.
var EOF = io.EOF
