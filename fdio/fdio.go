// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build unix

// Package fdio exposes a non-blocking file descriptor through the nbio
// Reader/Writer contracts.
//
// It does not open devices or sockets; the caller owns how the descriptor
// came to exist (a UART node, a pipe, an eventfd, ...).
package fdio

import (
	"errors"
	"io"
	"os"

	"golang.org/x/sys/unix"

	"code.hybscloud.com/nbio"
)

// File is a non-blocking descriptor. It is not safe for concurrent use.
type File struct {
	fd int
}

// New wraps fd, which must already be in non-blocking mode.
func New(fd int) *File { return &File{fd: fd} }

// Open switches fd to non-blocking mode and wraps it.
func Open(fd int) (*File, error) {
	if err := unix.SetNonblock(fd, true); err != nil {
		return nil, os.NewSyscallError("setnonblock", err)
	}
	return New(fd), nil
}

// Pipe returns the two ends of a non-blocking, close-on-exec pipe.
func Pipe() (r, w *File, err error) {
	var p [2]int
	if err := pipe(&p); err != nil {
		return nil, nil, err
	}
	return New(p[0]), New(p[1]), nil
}

// Fd returns the descriptor, or -1 once closed.
func (f *File) Fd() int { return f.fd }

// Read implements nbio.Reader.
//
// EAGAIN, EWOULDBLOCK and EINTR become nbio.ErrWouldBlock; a zero-byte read
// is io.EOF.
func (f *File) Read(p []byte) (int, error) {
	if f.fd < 0 {
		return 0, os.ErrClosed
	}
	if len(p) == 0 {
		return 0, nil
	}
	n, err := unix.Read(f.fd, p)
	if err != nil {
		return 0, Errno("read", err)
	}
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

// Write implements nbio.Writer with the same errno mapping as Read.
func (f *File) Write(p []byte) (int, error) {
	if f.fd < 0 {
		return 0, os.ErrClosed
	}
	if len(p) == 0 {
		return 0, nil
	}
	n, err := unix.Write(f.fd, p)
	if err != nil {
		return 0, Errno("write", err)
	}
	return max(n, 0), nil
}

// Flush implements nbio.Flusher. Descriptors have no user-space staging, so
// it always succeeds; it does not fsync.
func (f *File) Flush() error {
	if f.fd < 0 {
		return os.ErrClosed
	}
	return nil
}

// Close implements nbio.Closer. A second Close returns os.ErrClosed.
func (f *File) Close() error {
	if f.fd < 0 {
		return os.ErrClosed
	}
	fd := f.fd
	f.fd = -1
	if err := unix.Close(fd); err != nil {
		return os.NewSyscallError("close", err)
	}
	return nil
}

// Errno maps a raw errno from op onto the nbio convention: transient
// conditions become nbio.ErrWouldBlock, anything else an *os.SyscallError.
func Errno(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK) || errors.Is(err, unix.EINTR) {
		return nbio.ErrWouldBlock
	}
	return os.NewSyscallError(op, err)
}
