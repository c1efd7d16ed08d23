// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package async bridges nbio capabilities to a single-threaded cooperative
// task scheduler.
//
// The scheduler calls one Poll method per tick. A pending Poll means
// "suspend this task and poll again later"; a ready Poll resumes the task
// with a value or an *IOError. The package never waits or retries on its own.
//
//	fut := async.ReadExact(uart, frame[:])
//	for {
//		p := fut.Poll()
//		if p.IsPending() {
//			yield() // scheduler-specific
//			continue
//		}
//		done, err := p.Value()
//		...
//	}
package async
