// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build unix && !linux

package fdio

import (
	"errors"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// pipe without pipe2: close-on-exec is set after creation, under
// syscall.ForkLock so a concurrent fork cannot inherit the descriptors.
func pipe(p *[2]int) error {
	syscall.ForkLock.RLock()
	err := unix.Pipe(p[:])
	if err == nil {
		unix.CloseOnExec(p[0])
		unix.CloseOnExec(p[1])
	}
	syscall.ForkLock.RUnlock()
	if err != nil {
		return os.NewSyscallError("pipe", err)
	}
	for _, fd := range p {
		if err := unix.SetNonblock(fd, true); err != nil {
			return errors.Join(os.NewSyscallError("setnonblock", err),
				closeErr(unix.Close(p[0])), closeErr(unix.Close(p[1])))
		}
	}
	return nil
}

func closeErr(err error) error {
	if err != nil {
		return os.NewSyscallError("close", err)
	}
	return nil
}
