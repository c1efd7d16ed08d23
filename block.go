// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nbio

import (
	"context"
)

// Block turns a non-blocking poll into a blocking call.
//
// poll is invoked until it returns anything other than ErrWouldBlock. On each
// would-block result policy decides: PolicyRetry yields via policy.Yield(op)
// and polls again, PolicyReturn hands ErrWouldBlock to the caller. A nil
// policy means YieldPolicy{} (busy-poll).
//
// ctx is checked before every attempt; once it is done Block returns
// ctx.Err() and poll is not called again. Whatever poll owns is left as is,
// so a ReadExact abandoned this way may simply be dropped.
func Block[T any](ctx context.Context, op Op, policy SemanticPolicy, poll func() (T, error)) (T, error) {
	if policy == nil {
		policy = YieldPolicy{}
	}
	for {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		v, err := poll()
		if !IsWouldBlock(err) || policy.OnWouldBlock(op) != PolicyRetry {
			return v, err
		}
		policy.Yield(op)
	}
}

// ReadFull fills buf from r, waiting through would-block results per policy.
//
// It returns the number of bytes stored. On success that is len(buf); on
// error it is the partial progress, and err is ErrWouldBlock (policy gave
// up), ctx.Err(), or an *Error.
func ReadFull(ctx context.Context, r Reader, buf []byte, policy SemanticPolicy) (int, error) {
	m := NewReadExact(r, buf)
	_, err := Block(ctx, OpReadExact, policy, func() (struct{}, error) {
		_, _, err := m.Poll()
		return struct{}{}, err
	})
	return m.Progress(), err
}

// WriteFull writes all of buf to w, waiting through would-block results per
// policy. Results mirror ReadFull.
func WriteFull(ctx context.Context, w Writer, buf []byte, policy SemanticPolicy) (int, error) {
	m := NewWriteAll(w, buf)
	_, err := Block(ctx, OpWriteAll, policy, func() (struct{}, error) {
		_, _, err := m.Poll()
		return struct{}{}, err
	})
	return m.Progress(), err
}

// Flush retries f.Flush per policy.
func Flush(ctx context.Context, f Flusher, policy SemanticPolicy) error {
	_, err := Block(ctx, OpFlush, policy, func() (struct{}, error) {
		return struct{}{}, f.Flush()
	})
	return err
}

// Close retries c.Close per policy.
func Close(ctx context.Context, c Closer, policy SemanticPolicy) error {
	_, err := Block(ctx, OpClose, policy, func() (struct{}, error) {
		return struct{}{}, c.Close()
	})
	return err
}
