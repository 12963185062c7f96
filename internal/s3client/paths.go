package s3client

import (
	"path/filepath"
	"strings"
)

// IsDirMarker reports whether key is a zero-byte directory placeholder,
// a key ending in the separator.
func IsDirMarker(key string) bool {
	return strings.HasSuffix(key, "/")
}

// RelativeKeyPath strips prefix from the left of key and drops any leading
// separators, yielding a path relative to the download root.
func RelativeKeyPath(key, prefix string) string {
	rel := strings.TrimPrefix(key, prefix)
	return strings.TrimLeft(rel, "/")
}

// LocalPath maps an object key to its destination under root, preserving
// the key's subdirectory structure relative to prefix.
func LocalPath(root, key, prefix string) string {
	return filepath.Join(root, filepath.FromSlash(RelativeKeyPath(key, prefix)))
}
