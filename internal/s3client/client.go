package s3client

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appConfig "s3fetch/config"
	"s3fetch/internal/models"
	"s3fetch/internal/progress"
	"s3fetch/internal/s3api"
	"s3fetch/pkg/utils"
)

// defaultMaxKeys caps how many records a single listing collects. Prefix
// downloads list with the same cap before filtering.
const defaultMaxKeys = 1000

type Client struct {
	s3Client   s3api.S3API
	downloader *manager.Downloader
	config     *appConfig.Config
	log        *slog.Logger
	newTracker progress.Factory
}

func New(cfg *appConfig.Config, log *slog.Logger, quiet bool) (*Client, error) {
	loadOptions := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.HasStaticCredentials() {
		loadOptions = append(loadOptions, config.WithCredentialsProvider(credentials.StaticCredentialsProvider{
			Value: aws.Credentials{
				AccessKeyID:     cfg.AccessKey,
				SecretAccessKey: cfg.SecretKey,
			},
		}))
	}

	awsConfig, err := config.LoadDefaultConfig(context.TODO(), loadOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var s3Client *s3.Client
	if cfg.ApiURL != "" {
		s3Client = s3.NewFromConfig(awsConfig, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.ApiURL)
			o.UsePathStyle = true
		})
	} else {
		s3Client = s3.NewFromConfig(awsConfig)
	}

	tracker := progress.NewConsole(os.Stderr)
	if quiet {
		tracker = progress.Discard
	}

	return newClient(s3Client, cfg, log, tracker), nil
}

// NewWithAPI wires a pre-built storage API; used by tests.
func NewWithAPI(api s3api.S3API, cfg *appConfig.Config, log *slog.Logger) *Client {
	return newClient(api, cfg, log, progress.Discard)
}

func newClient(api s3api.S3API, cfg *appConfig.Config, log *slog.Logger, tracker progress.Factory) *Client {
	return &Client{
		s3Client:   api,
		downloader: manager.NewDownloader(api),
		config:     cfg,
		log:        log,
		newTracker: tracker,
	}
}

func (c *Client) ListBuckets(ctx context.Context) ([]models.Bucket, error) {
	resp, err := c.s3Client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list buckets: %w", classifyError(err))
	}

	buckets := make([]models.Bucket, 0, len(resp.Buckets))
	for _, bucket := range resp.Buckets {
		buckets = append(buckets, models.Bucket{
			Name:         aws.ToString(bucket.Name),
			CreationDate: aws.ToTime(bucket.CreationDate),
		})
	}

	c.log.Info("listed buckets", "count", len(buckets))
	return buckets, nil
}

// ListObjects collects up to maxItems records under prefix, walking the
// paginated listing until the source is exhausted or the cap is reached.
// maxItems <= 0 means no cap.
func (c *Client) ListObjects(ctx context.Context, prefix string, maxItems int) ([]models.ObjectRecord, error) {
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(c.config.BucketName),
	}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}

	paginator := s3.NewListObjectsV2Paginator(c.s3Client, input)

	var records []models.ObjectRecord
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", classifyError(err))
		}

		for _, obj := range page.Contents {
			records = append(records, models.ObjectRecord{
				Key:          aws.ToString(obj.Key),
				Size:         aws.ToInt64(obj.Size),
				LastModified: aws.ToTime(obj.LastModified),
				ETag:         aws.ToString(obj.ETag),
			})
			if maxItems > 0 && len(records) >= maxItems {
				c.log.Info("listing reached cap", "bucket", c.config.BucketName, "prefix", prefix, "max_items", maxItems)
				return records, nil
			}
		}
	}

	c.log.Info("listed objects", "bucket", c.config.BucketName, "prefix", prefix, "count", len(records))
	return records, nil
}

// StatObject fetches object metadata via a head call.
func (c *Client) StatObject(ctx context.Context, key string) (*models.ObjectInfo, error) {
	resp, err := c.s3Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(c.config.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to stat object %s: %w", key, classifyError(err))
	}

	size := aws.ToInt64(resp.ContentLength)
	return &models.ObjectInfo{
		Key:          key,
		Size:         size,
		SizeHuman:    utils.FormatBytes(size),
		LastModified: aws.ToTime(resp.LastModified),
		ETag:         aws.ToString(resp.ETag),
		ContentType:  aws.ToString(resp.ContentType),
		Metadata:     resp.Metadata,
	}, nil
}
