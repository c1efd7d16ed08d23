// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package nbio_test

import (
	"bytes"
	"errors"
	"testing"

	"code.hybscloud.com/nbio"
	"code.hybscloud.com/nbio/nbiotest"
)

func TestWriteAll_SingleCallLeavesTailUntouched(t *testing.T) {
	w := &nbiotest.Writer{Store: make([]byte, 3), Default: nbiotest.Bytes(nbiotest.All)}
	m := nbio.NewWriteAll(w, []byte{5, 6})
	if m.Len() != 2 {
		t.Fatalf("Len before poll = %d", m.Len())
	}

	got, buf, err := m.Poll()
	if err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if got != w || !bytes.Equal(buf, []byte{5, 6}) {
		t.Fatalf("writer/buffer not handed back: %v %v", got, buf)
	}
	if !bytes.Equal(w.Store, []byte{5, 6, 0}) {
		t.Fatalf("want [5 6 0] got %v", w.Store)
	}
	if w.Calls != 1 {
		t.Fatalf("want 1 underlying call got %d", w.Calls)
	}
	if m.Len() != 2 || m.Progress() != 2 || !m.Done() {
		t.Fatalf("after completion: len=%d progress=%d done=%v", m.Len(), m.Progress(), m.Done())
	}
}

func TestWriteAll_SliceWriter(t *testing.T) {
	store := make([]byte, 3)
	w := nbiotest.NewSliceWriter(store)
	if _, _, err := nbio.NewWriteAll(w, []byte{5, 6}).Poll(); err != nil {
		t.Fatalf("unexpected err %v", err)
	}
	if !bytes.Equal(store, []byte{5, 6, 0}) || w.Len() != 2 {
		t.Fatalf("store=%v len=%d", store, w.Len())
	}
}

func TestWriteAll_Schedules(t *testing.T) {
	src := []byte("jumps over the lazy dog")
	wb := nbiotest.WouldBlock()
	schedules := map[string][]nbiotest.Step{
		"all at once":     {nbiotest.Bytes(nbiotest.All)},
		"bytewise":        {nbiotest.Bytes(1)},
		"wb first":        {wb, wb, nbiotest.Bytes(nbiotest.All)},
		"alternating":     {wb, nbiotest.Bytes(1), wb, nbiotest.Bytes(3)},
		"wb with bytes":   {{N: 4, Err: nbio.ErrWouldBlock}, wb, {N: 6, Err: nbio.ErrWouldBlock}},
		"uneven partials": {nbiotest.Bytes(2), nbiotest.Bytes(5), wb, nbiotest.Bytes(11), nbiotest.Bytes(100)},
	}
	for name, steps := range schedules {
		t.Run(name, func(t *testing.T) {
			w := &nbiotest.Writer{Store: make([]byte, len(src)), Steps: steps, Default: nbiotest.Bytes(3)}
			m := nbio.NewWriteAll(w, src)
			last := 0
			for polls := 0; ; polls++ {
				if polls > 100 {
					t.Fatalf("did not terminate")
				}
				_, _, err := m.Poll()
				if m.Progress() < last {
					t.Fatalf("progress went backwards: %d -> %d", last, m.Progress())
				}
				last = m.Progress()
				if !bytes.Equal(w.Written(), src[:last]) {
					t.Fatalf("out of order: %q", w.Written())
				}
				if nbio.IsWouldBlock(err) {
					continue
				}
				if err != nil {
					t.Fatalf("unexpected err %v", err)
				}
				if last != len(src) {
					t.Fatalf("completed at %d of %d", last, len(src))
				}
				return
			}
		})
	}
}

func TestWriteAll_BadCountPanics(t *testing.T) {
	m := nbio.NewWriteAll(badWriter{}, make([]byte, 2))
	defer func() {
		if recover() == nil {
			t.Fatalf("invalid count must panic")
		}
	}()
	m.Poll()
}

type badWriter struct{}

func (badWriter) Write(p []byte) (int, error) { return -1, nil }

// TestWriteAll_AlternatingWouldBlock feeds WouldBlock, 1, WouldBlock, 1 for a
// two-byte buffer: four underlying attempts, the first and third of which
// would block and leave the cursor where it was.
func TestWriteAll_AlternatingWouldBlock(t *testing.T) {
	w := &nbiotest.Writer{
		Store: make([]byte, 2),
		Steps: []nbiotest.Step{nbiotest.WouldBlock(), nbiotest.Bytes(1), nbiotest.WouldBlock(), nbiotest.Bytes(1)},
	}
	m := nbio.NewWriteAll(w, []byte{5, 6})

	type obs struct {
		calls, progress int
		wouldBlock      bool
	}
	want := []obs{
		{calls: 1, progress: 0, wouldBlock: true},
		{calls: 3, progress: 1, wouldBlock: true},
		{calls: 4, progress: 2, wouldBlock: false},
	}
	for i, o := range want {
		_, _, err := m.Poll()
		if nbio.IsWouldBlock(err) != o.wouldBlock {
			t.Fatalf("poll %d: err=%v", i+1, err)
		}
		if !o.wouldBlock && err != nil {
			t.Fatalf("poll %d: unexpected err %v", i+1, err)
		}
		if w.Calls != o.calls || m.Progress() != o.progress {
			t.Fatalf("poll %d: calls=%d progress=%d want %+v", i+1, w.Calls, m.Progress(), o)
		}
	}
	if !m.Done() || !bytes.Equal(w.Written(), []byte{5, 6}) {
		t.Fatalf("done=%v written=%v", m.Done(), w.Written())
	}
}

func TestWriteAll_WriteZero(t *testing.T) {
	w := &nbiotest.Writer{Store: make([]byte, 4), Steps: []nbiotest.Step{nbiotest.Bytes(1), nbiotest.Zero()}}
	m := nbio.NewWriteAll(w, []byte("abc"))

	got, buf, err := m.Poll()
	if !errors.Is(err, nbio.ErrWriteZero) {
		t.Fatalf("want ErrWriteZero got %v", err)
	}
	var e *nbio.Error
	if !errors.As(err, &e) || e.Kind != nbio.KindWriteZero {
		t.Fatalf("want KindWriteZero got %#v", err)
	}
	if got != nil || buf != nil {
		t.Fatalf("writer and buffer must be dropped on failure")
	}
	if w.Calls != 2 || m.Progress() != 1 {
		t.Fatalf("calls=%d progress=%d", w.Calls, m.Progress())
	}
	mustPanicConsumed(t, func() { m.Poll() })
}

func TestWriteAll_FullStore(t *testing.T) {
	// A slice writer that runs out of room rejects with zero progress.
	m := nbio.NewWriteAll(nbiotest.NewSliceWriter(make([]byte, 1)), []byte("ab"))
	if _, _, err := m.Poll(); !errors.Is(err, nbio.ErrWriteZero) {
		t.Fatalf("want ErrWriteZero got %v", err)
	}
}

func TestWriteAll_DomainError(t *testing.T) {
	overrun := errors.New("tx overrun")
	w := &nbiotest.Writer{Store: make([]byte, 4), Steps: []nbiotest.Step{{N: 1, Err: overrun}}}
	m := nbio.NewWriteAll(w, []byte("ab"))

	_, _, err := m.Poll()
	if !errors.Is(err, overrun) || errors.Is(err, nbio.ErrWriteZero) {
		t.Fatalf("want overrun got %v", err)
	}
	if m.Progress() != 1 || !m.Done() {
		t.Fatalf("progress=%d done=%v", m.Progress(), m.Done())
	}
	mustPanicConsumed(t, func() { m.Poll() })
}

func TestWriteAll_WouldBlockIsIdempotent(t *testing.T) {
	w := &nbiotest.Writer{Store: make([]byte, 2), Default: nbiotest.WouldBlock()}
	m := nbio.NewWriteAll(w, []byte("ok"))
	for i := 1; i <= 50; i++ {
		if _, _, err := m.Poll(); !nbio.IsWouldBlock(err) {
			t.Fatalf("poll %d: %v", i, err)
		}
		if m.Progress() != 0 || m.Done() || len(w.Written()) != 0 {
			t.Fatalf("poll %d: state changed", i)
		}
	}
	w.Default = nbiotest.Bytes(nbiotest.All)
	if _, buf, err := m.Poll(); err != nil || string(buf) != "ok" {
		t.Fatalf("resume: %q %v", buf, err)
	}
}

func TestWriteAll_ProgressWithWouldBlockCompletes(t *testing.T) {
	w := &nbiotest.Writer{Store: make([]byte, 2), Steps: []nbiotest.Step{{N: nbiotest.All, Err: nbio.ErrWouldBlock}}}
	m := nbio.NewWriteAll(w, []byte("ok"))
	if _, _, err := m.Poll(); err != nil {
		t.Fatalf("full progress with would-block must complete, got %v", err)
	}
}

func TestWriteAll_EmptyBuffer(t *testing.T) {
	w := &nbiotest.Writer{Default: nbiotest.Zero()}
	m := nbio.NewWriteAll(w, []byte{})
	if _, _, err := m.Poll(); err != nil || w.Calls != 0 {
		t.Fatalf("err=%v calls=%d", err, w.Calls)
	}
}
