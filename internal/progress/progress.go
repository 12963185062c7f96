// Package progress delivers byte-level transfer feedback.
package progress

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"s3fetch/pkg/utils"
)

// Tracker receives feedback for a single object transfer.
type Tracker interface {
	Update(transferred, total int64)
	Complete()
	Error(err error)
}

// Factory builds a Tracker for one transfer, labeled with the object key.
type Factory func(label string, total int64) Tracker

// Discard is a Factory whose trackers drop all feedback. Used in quiet mode
// and in tests.
func Discard(string, int64) Tracker { return nopTracker{} }

type nopTracker struct{}

func (nopTracker) Update(int64, int64) {}
func (nopTracker) Complete()           {}
func (nopTracker) Error(error)         {}

const renderInterval = 100 * time.Millisecond

// NewConsole returns a Factory rendering a single carriage-return progress
// line per transfer to w.
func NewConsole(w io.Writer) Factory {
	return func(label string, total int64) Tracker {
		return &consoleTracker{w: w, label: label, total: total}
	}
}

type consoleTracker struct {
	mu          sync.Mutex
	w           io.Writer
	label       string
	total       int64
	transferred int64
	lastRender  time.Time
	done        bool
}

func (t *consoleTracker) Update(transferred, total int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.done {
		return
	}

	t.transferred = transferred
	if total > 0 {
		t.total = total
	}

	now := time.Now()
	if transferred < t.total && now.Sub(t.lastRender) < renderInterval {
		return
	}
	t.lastRender = now
	t.render()
}

func (t *consoleTracker) Complete() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.done {
		return
	}
	t.done = true

	if t.total > 0 {
		t.transferred = t.total
	}
	t.render()
	fmt.Fprintln(t.w)
}

func (t *consoleTracker) Error(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.done {
		return
	}
	t.done = true
	fmt.Fprintln(t.w)
}

func (t *consoleTracker) render() {
	if t.total > 0 {
		percent := float64(t.transferred) / float64(t.total) * 100
		fmt.Fprintf(t.w, "\r%s: %.1f%% (%s / %s)", t.label, percent,
			utils.FormatBytes(t.transferred), utils.FormatBytes(t.total))
		return
	}
	fmt.Fprintf(t.w, "\r%s: %s", t.label, utils.FormatBytes(t.transferred))
}

// WriterAt counts bytes written through it and forwards running totals to a
// Tracker. The transfer manager may write parts from several goroutines, so
// the counter is atomic.
type WriterAt struct {
	w           io.WriterAt
	total       int64
	transferred atomic.Int64
	tracker     Tracker
}

func NewWriterAt(w io.WriterAt, total int64, tracker Tracker) *WriterAt {
	return &WriterAt{w: w, total: total, tracker: tracker}
}

func (w *WriterAt) WriteAt(p []byte, off int64) (int, error) {
	n, err := w.w.WriteAt(p, off)
	if n > 0 {
		w.tracker.Update(w.transferred.Add(int64(n)), w.total)
	}
	return n, err
}

// Transferred reports the bytes written so far.
func (w *WriterAt) Transferred() int64 {
	return w.transferred.Load()
}
