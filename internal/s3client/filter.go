package s3client

import (
	"strings"

	"s3fetch/internal/models"
)

// FilterByExtension keeps records whose key ends in one of the given
// extensions, matched case-insensitively. A nil or empty allow-list keeps
// everything.
func FilterByExtension(records []models.ObjectRecord, extensions []string) []models.ObjectRecord {
	if len(extensions) == 0 {
		return records
	}

	filtered := make([]models.ObjectRecord, 0, len(records))
	for _, record := range records {
		key := strings.ToLower(record.Key)
		for _, ext := range extensions {
			if strings.HasSuffix(key, strings.ToLower(ext)) {
				filtered = append(filtered, record)
				break
			}
		}
	}
	return filtered
}

// Truncate returns a stable prefix of at most maxFiles records, preserving
// listing order. maxFiles <= 0 means no cap.
func Truncate(records []models.ObjectRecord, maxFiles int) []models.ObjectRecord {
	if maxFiles <= 0 || len(records) <= maxFiles {
		return records
	}
	return records[:maxFiles]
}
