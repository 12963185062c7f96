// Package report formats and persists batch download reports.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"s3fetch/internal/models"
	"s3fetch/pkg/utils"
)

// FileName is the fixed name of the report written under the download root.
const FileName = "download_report.txt"

// Generate renders batch statistics as the textual download report. The
// success rate divides by max(total, 1) so an empty run reports 0.0%.
func Generate(stats *models.BatchStats, downloadRoot string, at time.Time) string {
	successRate := float64(stats.Downloaded) / float64(max(stats.TotalFiles, 1)) * 100

	var b strings.Builder
	b.WriteString("=== S3 Download Report ===\n")
	fmt.Fprintf(&b, "Timestamp: %s\n", utils.FormatTime(at))
	fmt.Fprintf(&b, "Bucket: %s\n", stats.BucketName)
	fmt.Fprintf(&b, "Download Path: %s\n", downloadRoot)
	b.WriteString("\nStatistics:\n")
	fmt.Fprintf(&b, "- Total files processed: %d\n", stats.TotalFiles)
	fmt.Fprintf(&b, "- Successfully downloaded: %d\n", stats.Downloaded)
	fmt.Fprintf(&b, "- Failed downloads: %d\n", stats.Failed)
	fmt.Fprintf(&b, "- Success rate: %.1f%%\n", successRate)

	if len(stats.Errors) > 0 {
		b.WriteString("\nFailed files:\n")
		for _, key := range stats.Errors {
			fmt.Fprintf(&b, "  - %s\n", key)
		}
	}

	return b.String()
}

// Save writes content under downloadRoot at the fixed report name and
// returns the full path.
func Save(downloadRoot, content string) (string, error) {
	path := filepath.Join(downloadRoot, FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to save report: %w", err)
	}
	return path, nil
}
