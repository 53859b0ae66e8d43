package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}
)

var ErrNoBucket = errors.New("no S3 bucket configured")

// S3Config points at an S3-compatible endpoint such as MinIO. Empty Endpoint
// means AWS itself; empty keys fall back to the default credential chain.
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

type S3Sink struct {
	cfg S3Config
}

func NewS3Sink(cfg S3Config) *S3Sink {
	return &S3Sink{cfg: cfg}
}

// ParseS3URL splits s3://bucket/key. The bucket may be empty, as in
// s3:///exports/x.xlsx, to mean the configured bucket.
func ParseS3URL(dest string) (bucket, key string, err error) {
	u, err := url.Parse(dest)
	if err != nil {
		return "", "", fmt.Errorf("invalid S3 destination %q: %w", dest, err)
	}
	if !strings.EqualFold(u.Scheme, "s3") {
		return "", "", fmt.Errorf("invalid S3 destination %q: scheme must be s3", dest)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", "", fmt.Errorf("invalid S3 destination %q: missing object key", dest)
	}
	return u.Host, key, nil
}

func (s *S3Sink) client(ctx context.Context) (*s3.Client, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(s.cfg.Region)}
	if s.cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.AccessKey,
			s.cfg.SecretKey,
			"",
		)))
	}
	cfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load S3 config: %w", err)
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if s.cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// Put uploads body to dest and returns its s3:// location.
func (s *S3Sink) Put(ctx context.Context, dest string, body []byte) (string, error) {
	bucket, key, err := ParseS3URL(dest)
	if err != nil {
		return "", err
	}
	if bucket == "" {
		bucket = s.cfg.Bucket
	}
	if bucket == "" {
		return "", ErrNoBucket
	}

	c, err := s.client(ctx)
	if err != nil {
		return "", err
	}

	_, err = putObject(c, ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(xlsxContentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload s3://%s/%s: %w", bucket, key, err)
	}
	return "s3://" + bucket + "/" + key, nil
}
