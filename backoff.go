// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nbio

import (
	"time"
)

const (
	// DefaultBackoffBase is the first sleep duration (250µs), roughly one
	// UART frame burst at common baud rates.
	DefaultBackoffBase = 250 * time.Microsecond

	// DefaultBackoffMax caps a single sleep (50ms).
	DefaultBackoffMax = 50 * time.Millisecond
)

// Backoff is a linear, block-based back-off with jitter for waiting on a
// capability that keeps reporting ErrWouldBlock.
//
// Waits are grouped into blocks: block k performs k sleeps of base×k, capped
// at max, each with ±12.5% jitter. The zero value is ready to use with
// DefaultBackoffBase and DefaultBackoffMax.
type Backoff struct {
	block int // 1-indexed, 0 until first Wait
	step  int // sleeps done in the current block
	base  time.Duration
	max   time.Duration
	rng   uint64
	sleep func(time.Duration)
}

// Wait sleeps for the current duration and advances the back-off.
func (b *Backoff) Wait() {
	if b.block == 0 {
		b.block = 1
		if b.rng == 0 {
			b.rng = uint64(time.Now().UnixNano()) | 1
		}
	}
	d := b.jitter(b.Duration())
	if b.sleep != nil {
		b.sleep(d)
	} else {
		time.Sleep(d)
	}
	if b.step++; b.step >= b.block {
		b.step = 0
		b.block++
	}
}

// jitter spreads d by ±12.5% using an xorshift generator.
func (b *Backoff) jitter(d time.Duration) time.Duration {
	b.rng ^= b.rng << 13
	b.rng ^= b.rng >> 7
	b.rng ^= b.rng << 17
	r := int64(b.rng>>32)%256 - 128
	return d + time.Duration(int64(d)*r/1024)
}

// SetBase configures the first duration and the linear step.
func (b *Backoff) SetBase(d time.Duration) { b.base = d }

// SetMax configures the maximum duration of one sleep.
func (b *Backoff) SetMax(d time.Duration) { b.max = d }

// SetSleep replaces time.Sleep, e.g. with a timer tick or a fake clock.
func (b *Backoff) SetSleep(f func(time.Duration)) { b.sleep = f }

// Reset restores the back-off to block 1. Configuration is kept.
func (b *Backoff) Reset() { b.block, b.step = 0, 0 }

// Block returns the current block number, starting at 1.
func (b *Backoff) Block() int {
	if b.block == 0 {
		return 1
	}
	return b.block
}

// Duration returns the current sleep duration without jitter.
func (b *Backoff) Duration() time.Duration {
	base, max := b.base, b.max
	if base <= 0 {
		base = DefaultBackoffBase
	}
	if max <= 0 {
		max = DefaultBackoffMax
	}
	if d := time.Duration(b.Block()) * base; d < max {
		return d
	}
	return max
}
