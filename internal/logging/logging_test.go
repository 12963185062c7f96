package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, closeLog, err := New(logPath)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("download complete", "key", "photos/cat.jpg")

	if err := closeLog(); err != nil {
		t.Fatalf("closeLog() error = %v", err)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	if !strings.Contains(string(content), "download complete") {
		t.Errorf("log file missing message: %s", content)
	}

	if !strings.Contains(string(content), "photos/cat.jpg") {
		t.Errorf("log file missing attribute: %s", content)
	}
}

func TestNewFailsOnBadPath(t *testing.T) {
	_, _, err := New(filepath.Join(t.TempDir(), "missing", "test.log"))
	if err == nil {
		t.Fatal("New() expected error for unwritable path")
	}
}
