package objectclient

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	cfg "github.com/markdave123-py/textract-api/internal/config"
)

type S3Client struct {
	uploader *manager.Uploader
	region   string
	bucket   string
	endpoint string
}

// NewS3Client connects to the archive bucket. Static keys are used when both
// are configured, otherwise the default AWS credential chain applies.
func NewS3Client(ctx context.Context, cfg *cfg.Config, logger *zap.Logger) (*S3Client, error) {
	if cfg.ArchiveBucket == "" {
		return nil, fmt.Errorf("S3 bucket name not set")
	}
	if cfg.AwsRegion == "" {
		return nil, fmt.Errorf("AWS_REGION not set")
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.AwsRegion)}
	if cfg.AwsAccessKey != "" && cfg.AwsSecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AwsAccessKey, cfg.AwsSecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})
	logger.Info("S3 archive client ready",
		zap.String("bucket", cfg.ArchiveBucket),
		zap.String("region", cfg.AwsRegion))

	return &S3Client{
		uploader: manager.NewUploader(client),
		region:   cfg.AwsRegion,
		bucket:   cfg.ArchiveBucket,
		endpoint: strings.TrimRight(cfg.S3Endpoint, "/"),
	}, nil
}

// UploadFile uploads a file to the archive bucket and returns its URL.
func (c *S3Client) UploadFile(ctx context.Context, key string, data io.Reader, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        data,
		ContentType: aws.String(contentType),
	}

	ctxUpload, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	if _, err := c.uploader.Upload(ctxUpload, input); err != nil {
		return "", fmt.Errorf("s3 upload failed: %w", err)
	}

	return c.objectURL(key), nil
}

func (c *S3Client) objectURL(key string) string {
	if c.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", c.endpoint, c.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.bucket, c.region, key)
}
