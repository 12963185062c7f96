package s3client

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestIsDirMarker(t *testing.T) {
	tests := []struct {
		key      string
		expected bool
	}{
		{"images/", true},
		{"images/2024/", true},
		{"images/cat.jpg", false},
		{"file", false},
		{"/", true},
	}

	for _, tt := range tests {
		if got := IsDirMarker(tt.key); got != tt.expected {
			t.Errorf("IsDirMarker(%q) = %t, want %t", tt.key, got, tt.expected)
		}
	}
}

func TestRelativeKeyPath(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		prefix   string
		expected string
	}{
		{"Prefix with trailing slash", "images/sub/x.png", "images/", "sub/x.png"},
		{"Prefix without trailing slash", "images/sub/x.png", "images", "sub/x.png"},
		{"Empty prefix", "images/x.png", "", "images/x.png"},
		{"Key equals prefix", "images/", "images/", ""},
		{"Deep nesting", "a/b/c/d.txt", "a/", "b/c/d.txt"},
		{"Doubled separator after prefix", "images//x.png", "images", "x.png"},
		{"Prefix not present", "other/x.png", "images/", "other/x.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelativeKeyPath(tt.key, tt.prefix)
			if got != tt.expected {
				t.Errorf("RelativeKeyPath(%q, %q) = %q, want %q", tt.key, tt.prefix, got, tt.expected)
			}

			if strings.HasPrefix(got, "/") {
				t.Errorf("RelativeKeyPath(%q, %q) = %q starts with a separator", tt.key, tt.prefix, got)
			}
		})
	}
}

func TestRelativeKeyPathNeverKeepsPrefix(t *testing.T) {
	keys := []string{"images/a.jpg", "images/sub/b.png", "images/sub/deep/c.gif"}

	for _, key := range keys {
		rel := RelativeKeyPath(key, "images/")
		if strings.HasPrefix(rel, "images/") {
			t.Errorf("RelativeKeyPath(%q) = %q still contains the prefix", key, rel)
		}
	}
}

func TestLocalPath(t *testing.T) {
	got := LocalPath("downloads", "images/sub/x.png", "images/")
	want := filepath.Join("downloads", "sub", "x.png")
	if got != want {
		t.Errorf("LocalPath() = %q, want %q", got, want)
	}
}
