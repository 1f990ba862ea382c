package output

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

// DefaultUploadTimeout bounds a single upload
const DefaultUploadTimeout = 30 * time.Second

// Sink receives finished images
type Sink interface {
	Write(ctx context.Context, name string, img image.Image) error
}

// FileSink writes images below a directory
type FileSink struct {
	Dir string
}

// Write saves img as Dir/name, creating Dir if needed
func (f FileSink) Write(ctx context.Context, name string, img image.Image) error {
	if f.Dir != "" {
		if err := os.MkdirAll(f.Dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	return Save(img, filepath.Join(f.Dir, name))
}

// S3Config holds the connection settings of an S3 compatible store
type S3Config struct {
	AccessKey string
	SecretKey string
	Endpoint  string // empty for AWS itself
	Region    string
	Bucket    string
	ACL       string // e.g. "public-read", empty to use the bucket default
	Timeout   time.Duration
}

// S3Sink uploads images as PNG objects
type S3Sink struct {
	client  s3iface.S3API
	bucket  string
	acl     string
	timeout time.Duration
}

// NewS3Sink creates a sink using static credentials and path-style addressing
func NewS3Sink(cfg S3Config) (*S3Sink, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 sink needs a bucket")
	}

	awsConfig := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.Endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 session: %w", err)
	}

	sink := NewS3SinkWithClient(s3.New(sess), cfg.Bucket)
	sink.acl = cfg.ACL
	if cfg.Timeout > 0 {
		sink.timeout = cfg.Timeout
	}
	return sink, nil
}

// NewS3SinkWithClient creates a sink around an existing client
func NewS3SinkWithClient(client s3iface.S3API, bucket string) *S3Sink {
	return &S3Sink{client: client, bucket: bucket, timeout: DefaultUploadTimeout}
}

// Write uploads img under key
func (s *S3Sink) Write(ctx context.Context, key string, img image.Image) error {
	data, err := EncodePNG(img)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String("image/png"),
	}
	if s.acl != "" {
		input.ACL = aws.String(s.acl)
	}

	if _, err := s.client.PutObjectWithContext(ctx, input); err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	logger.Noticef("uploaded s3://%s/%s (%d bytes)", s.bucket, key, len(data))
	return nil
}
