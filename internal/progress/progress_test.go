package progress

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type recordingTracker struct {
	updates   [][2]int64
	completed bool
	failed    bool
}

func (r *recordingTracker) Update(transferred, total int64) {
	r.updates = append(r.updates, [2]int64{transferred, total})
}

func (r *recordingTracker) Complete()   { r.completed = true }
func (r *recordingTracker) Error(error) { r.failed = true }

type sinkWriterAt struct {
	data []byte
}

func (s *sinkWriterAt) WriteAt(p []byte, off int64) (int, error) {
	end := off + int64(len(p))
	if int64(len(s.data)) < end {
		grown := make([]byte, end)
		copy(grown, s.data)
		s.data = grown
	}
	copy(s.data[off:], p)
	return len(p), nil
}

func TestWriterAtCountsBytes(t *testing.T) {
	tracker := &recordingTracker{}
	sink := &sinkWriterAt{}
	w := NewWriterAt(sink, 10, tracker)

	if _, err := w.WriteAt([]byte("hello"), 0); err != nil {
		t.Fatalf("WriteAt() error = %v", err)
	}
	if _, err := w.WriteAt([]byte("world"), 5); err != nil {
		t.Fatalf("WriteAt() error = %v", err)
	}

	if got := w.Transferred(); got != 10 {
		t.Errorf("Transferred() = %d, want %d", got, 10)
	}

	if len(tracker.updates) != 2 {
		t.Fatalf("updates = %d, want %d", len(tracker.updates), 2)
	}

	last := tracker.updates[len(tracker.updates)-1]
	if last[0] != 10 || last[1] != 10 {
		t.Errorf("last update = %v, want [10 10]", last)
	}

	if string(sink.data) != "helloworld" {
		t.Errorf("written data = %q, want %q", sink.data, "helloworld")
	}
}

func TestConsoleTrackerRendersProgress(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewConsole(&buf)("photos/cat.jpg", 2048)

	tracker.Update(1024, 2048)
	tracker.Complete()

	output := buf.String()

	if !strings.Contains(output, "photos/cat.jpg") {
		t.Errorf("output missing label: %q", output)
	}

	if !strings.Contains(output, "50.0%") {
		t.Errorf("output missing midpoint percentage: %q", output)
	}

	if !strings.Contains(output, "100.0%") {
		t.Errorf("output missing completion percentage: %q", output)
	}

	if !strings.HasSuffix(output, "\n") {
		t.Errorf("output should end with a newline: %q", output)
	}
}

func TestConsoleTrackerErrorStopsRendering(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewConsole(&buf)("logs/app.log", 100)

	tracker.Update(10, 100)
	tracker.Error(errors.New("connection reset"))

	before := buf.Len()
	tracker.Update(50, 100)
	tracker.Complete()

	if buf.Len() != before {
		t.Errorf("tracker kept rendering after Error(): %q", buf.String())
	}
}

func TestDiscardTracker(t *testing.T) {
	tracker := Discard("anything", 42)
	tracker.Update(1, 42)
	tracker.Complete()
	tracker.Error(errors.New("ignored"))
}
