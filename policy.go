// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nbio

import (
	"log/slog"
	"runtime"
)

// Op identifies which call reported ErrWouldBlock to a policy.
type Op uint8

const (
	OpRead Op = iota
	OpWrite
	OpFlush
	OpClose

	OpReadExact
	OpWriteAll

	// OpPoll is used for arbitrary pollable work, e.g. an async future.
	OpPoll
)

func (op Op) String() string {
	switch op {
	case OpRead:
		return "Read"
	case OpWrite:
		return "Write"
	case OpFlush:
		return "Flush"
	case OpClose:
		return "Close"
	case OpReadExact:
		return "ReadExact"
	case OpWriteAll:
		return "WriteAll"
	case OpPoll:
		return "Poll"
	default:
		return "Op(unknown)"
	}
}

// PolicyAction tells a driver whether it should return to the caller
// or attempt the operation again.
type PolicyAction uint8

const (
	// PolicyReturn means: hand ErrWouldBlock back to the caller.
	PolicyReturn PolicyAction = iota

	// PolicyRetry means: call Yield, then poll again.
	PolicyRetry
)

func (a PolicyAction) String() string {
	if a == PolicyRetry {
		return "Retry"
	}
	return "Return"
}

// SemanticPolicy decides how a blocking driver reacts to ErrWouldBlock.
//
// Contract expectations:
//   - OnWouldBlock is only called for would-block results.
//   - If PolicyRetry is returned, the driver calls Yield(op) and then retries.
//   - If Yield(op) does not actually wait, the driver spins.
type SemanticPolicy interface {
	Yield(op Op)
	OnWouldBlock(op Op) PolicyAction
}

// PolicyFunc is a convenience implementation for callers that want to inject
// behavior without defining a struct type.
//
// Default behaviors when fields are nil:
//   - YieldFunc: calls runtime.Gosched()
//   - WouldBlockFunc: returns PolicyReturn
type PolicyFunc struct {
	YieldFunc      func(op Op)
	WouldBlockFunc func(op Op) PolicyAction
}

func (p PolicyFunc) Yield(op Op) {
	if p.YieldFunc != nil {
		p.YieldFunc(op)
		return
	}
	runtime.Gosched()
}

func (p PolicyFunc) OnWouldBlock(op Op) PolicyAction {
	if p.WouldBlockFunc != nil {
		return p.WouldBlockFunc(op)
	}
	return PolicyReturn
}

// ReturnPolicy never waits and never retries: drivers degrade to a single
// poll.
type ReturnPolicy struct{}

func (ReturnPolicy) Yield(Op) {}

func (ReturnPolicy) OnWouldBlock(Op) PolicyAction { return PolicyReturn }

// YieldPolicy retries every would-block after yielding the processor.
// It is the busy-poll strategy.
type YieldPolicy struct {
	// YieldFunc replaces runtime.Gosched when set. It may spin, park, run an
	// event-loop tick, wait for an interrupt, etc.
	YieldFunc func(op Op)
}

func (p YieldPolicy) Yield(op Op) {
	if p.YieldFunc != nil {
		p.YieldFunc(op)
		return
	}
	runtime.Gosched()
}

func (YieldPolicy) OnWouldBlock(Op) PolicyAction { return PolicyRetry }

// BackoffPolicy retries would-block results, sleeping through a Backoff
// between attempts.
//
// The zero value retries forever with the default back-off. BackoffPolicy
// carries state and must be used through a pointer by one driver at a time.
type BackoffPolicy struct {
	Backoff Backoff

	// MaxBlocks stops retrying once the back-off has progressed past this
	// many blocks. Zero means no limit.
	MaxBlocks int

	// Logger, if set, receives a debug record every time the back-off enters
	// a new block.
	Logger *slog.Logger

	lastBlock int
}

func (p *BackoffPolicy) Yield(op Op) {
	if blk := p.Backoff.Block(); p.Logger != nil && blk != p.lastBlock {
		p.lastBlock = blk
		p.Logger.Debug("nbio: backing off",
			slog.String("op", op.String()),
			slog.Int("block", blk),
			slog.Duration("sleep", p.Backoff.Duration()))
	}
	p.Backoff.Wait()
}

func (p *BackoffPolicy) OnWouldBlock(Op) PolicyAction {
	if p.MaxBlocks > 0 && p.Backoff.Block() > p.MaxBlocks {
		return PolicyReturn
	}
	return PolicyRetry
}

// Reset rewinds the back-off so the policy can be reused for a new operation.
func (p *BackoffPolicy) Reset() {
	p.Backoff.Reset()
	p.lastBlock = 0
}
