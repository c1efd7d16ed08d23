// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nbio

import (
	"errors"
)

// Outcome classifies the (value, error) pair of a non-blocking call.
//
// OutcomeOK:         Ready, the value is final.
// OutcomeWouldBlock: no progress is possible right now; retry later.
// OutcomeFailure:    any other error; terminal.
type Outcome uint8

const (
	OutcomeFailure Outcome = iota
	OutcomeOK
	OutcomeWouldBlock
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "OK"
	case OutcomeWouldBlock:
		return "WouldBlock"
	default:
		return "Failure"
	}
}

// IsWouldBlock reports whether err carries the would-block semantic.
// It returns true for ErrWouldBlock and wrappers (via errors.Is).
func IsWouldBlock(err error) bool { return errors.Is(err, ErrWouldBlock) }

// IsNonFailure reports whether err leaves an operation retryable:
// nil or ErrWouldBlock.
func IsNonFailure(err error) bool { return err == nil || IsWouldBlock(err) }

// IsTerminal reports whether err ends an operation for good.
func IsTerminal(err error) bool { return !IsNonFailure(err) }

// Classify maps err to an Outcome.
//
// Note: io.EOF is classified as a failure here; the state machines give it
// end-of-data meaning themselves.
func Classify(err error) Outcome {
	if err == nil {
		return OutcomeOK
	}
	if IsWouldBlock(err) {
		return OutcomeWouldBlock
	}
	return OutcomeFailure
}
