package s3client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"s3fetch/internal/models"
	"s3fetch/internal/progress"
	"s3fetch/pkg/utils"
)

// DownloadFile fetches one object to destPath, creating missing parent
// directories. The object size comes from a head call so progress totals
// are known before the transfer starts. A failed transfer leaves no
// partial file behind. The returned outcome describes the attempt and is
// populated on failure as well.
func (c *Client) DownloadFile(ctx context.Context, key, destPath string) (*models.DownloadOutcome, error) {
	bucketName := c.config.BucketName
	outcome := &models.DownloadOutcome{Key: key, LocalPath: destPath}

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		err = fmt.Errorf("failed to create directory for %s: %w", destPath, err)
		outcome.Error = err.Error()
		c.logDownloadError(key, err)
		return outcome, err
	}

	info, err := c.StatObject(ctx, key)
	if err != nil {
		outcome.Error = err.Error()
		c.logDownloadError(key, err)
		return outcome, err
	}
	outcome.Size = info.Size

	file, err := os.Create(destPath)
	if err != nil {
		err = fmt.Errorf("failed to create file %s: %w", destPath, err)
		outcome.Error = err.Error()
		c.logDownloadError(key, err)
		return outcome, err
	}

	tracker := c.newTracker(key, info.Size)
	writer := progress.NewWriterAt(file, info.Size, tracker)

	_, err = c.downloader.Download(ctx, writer, &s3.GetObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		file.Close()
		os.Remove(destPath)
		err = fmt.Errorf("failed to download %s: %w", key, classifyError(err))
		tracker.Error(err)
		outcome.Error = err.Error()
		c.logDownloadError(key, err)
		return outcome, err
	}

	if err := file.Close(); err != nil {
		os.Remove(destPath)
		err = fmt.Errorf("failed to close %s: %w", destPath, err)
		outcome.Error = err.Error()
		c.logDownloadError(key, err)
		return outcome, err
	}

	outcome.Succeeded = true
	tracker.Complete()
	c.log.Info("downloaded object", "bucket", bucketName, "key", key, "path", destPath, "size", utils.FormatBytes(info.Size))
	return outcome, nil
}

func (c *Client) logDownloadError(key string, err error) {
	switch {
	case errors.Is(err, ErrObjectNotFound):
		c.log.Error("object not found", "bucket", c.config.BucketName, "key", key)
	case errors.Is(err, ErrBucketNotFound):
		c.log.Error("bucket not found", "bucket", c.config.BucketName)
	case isClientError(err):
		c.log.Error("failed to download object", "bucket", c.config.BucketName, "key", key, "error", err)
	default:
		c.log.Error("unexpected error downloading object", "bucket", c.config.BucketName, "key", key, "error", err)
	}
}

// DownloadPrefix downloads every object under prefix that survives the
// extension filter and maxFiles cap, sequentially and in listing order.
// Per-object failures are accumulated, never fatal; directory markers are
// skipped and excluded from every count. A canceled context stops further
// attempts and the partial statistics are returned with the context error.
func (c *Client) DownloadPrefix(ctx context.Context, prefix string, extensions []string, maxFiles int) (*models.BatchStats, error) {
	startTime := time.Now()
	bucketName := c.config.BucketName

	stats := &models.BatchStats{
		BucketName: bucketName,
		Prefix:     prefix,
	}

	records, err := c.ListObjects(ctx, prefix, defaultMaxKeys)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		c.log.Warn("no objects found", "bucket", bucketName, "prefix", prefix)
		stats.Success = true
		stats.TotalSizeHuman = utils.FormatBytes(0)
		stats.OperationTime = utils.FormatTime(startTime)
		stats.Duration = time.Since(startTime).String()
		return stats, nil
	}

	filtered := FilterByExtension(records, extensions)
	if len(extensions) > 0 {
		c.log.Info("filtered objects by extension", "extensions", extensions, "matched", len(filtered), "listed", len(records))
	}

	if maxFiles > 0 && len(filtered) > maxFiles {
		c.log.Info("limiting download count", "max_files", maxFiles, "matched", len(filtered))
	}
	filtered = Truncate(filtered, maxFiles)

	var totalSize int64
	var ctxErr error

	for _, record := range filtered {
		if err := ctx.Err(); err != nil {
			ctxErr = err
			break
		}

		if IsDirMarker(record.Key) {
			continue
		}

		destPath := LocalPath(c.config.DownloadDir, record.Key, prefix)
		stats.TotalFiles++

		outcome, err := c.DownloadFile(ctx, record.Key, destPath)
		if err != nil {
			stats.Failed++
			stats.Errors = append(stats.Errors, record.Key)
		} else {
			stats.Downloaded++
			totalSize += outcome.Size
		}
		stats.Outcomes = append(stats.Outcomes, *outcome)
	}

	stats.Success = stats.Failed == 0
	stats.TotalSizeBytes = totalSize
	stats.TotalSizeHuman = utils.FormatBytes(totalSize)
	stats.OperationTime = utils.FormatTime(startTime)
	stats.Duration = time.Since(startTime).String()

	if ctxErr != nil {
		c.log.Warn("download interrupted", "bucket", bucketName, "prefix", prefix,
			"downloaded", stats.Downloaded, "failed", stats.Failed)
		return stats, ctxErr
	}

	c.log.Info("download batch complete", "bucket", bucketName, "prefix", prefix,
		"downloaded", stats.Downloaded, "failed", stats.Failed)
	return stats, nil
}
