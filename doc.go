// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package nbio is a minimal non-blocking I/O model for targets without an
// operating-system async I/O facility: microcontrollers, bare-metal drivers,
// polled peripherals.
//
// Result semantics
//
//   - nil: the call completed.
//   - ErrWouldBlock: no progress is possible right now. Return immediately;
//     retry later. Nothing is lost.
//   - any other error: terminal; do not retry.
//
// Reader and Writer are io.Reader and io.Writer with that contract. A call
// that transfers zero bytes without reporting ErrWouldBlock means no further
// progress is possible, never "try again".
//
// ReadExact and WriteAll accumulate partial progress across calls until a
// fixed buffer is full or drained. Each Poll either completes, reports
// ErrWouldBlock with the position kept, or fails with an *Error. The caller
// picks the retry strategy: a busy loop, a timer, an interrupt wake-up, a
// cooperative scheduler (see package async), or Block with a SemanticPolicy.
//
// Nothing in this package starts goroutines or takes locks; every value is
// meant for one owner at a time.
package nbio
