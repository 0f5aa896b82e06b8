package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
)

// S3Config describes an S3-compatible bucket (AWS or MinIO)
type S3Config struct {
	Bucket        string
	Region        string
	Endpoint      string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
	PresignTTL    time.Duration
}

// S3Storage implements domain.ObjectStorage with presigned PUT requests
type S3Storage struct {
	presign *s3.PresignClient
	cfg     S3Config
	now     func() time.Time
}

// NewS3Storage builds a presigning client. No network call is made.
func NewS3Storage(ctx context.Context, cfg S3Config) (*S3Storage, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	if cfg.PresignTTL <= 0 {
		cfg.PresignTTL = 15 * time.Minute
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	// Without static keys the default chain (env, shared config, IAM role) applies.
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Storage{presign: s3.NewPresignClient(client), cfg: cfg, now: time.Now}, nil
}

// PresignUpload implements domain.ObjectStorage
func (s *S3Storage) PresignUpload(ctx context.Context, key string) (string, time.Time, error) {
	expires := s.now().Add(s.cfg.PresignTTL)
	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.cfg.PresignTTL))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("presign put: %w", err)
	}
	return req.URL, expires, nil
}

// ObjectURL implements domain.ObjectStorage
func (s *S3Storage) ObjectURL(key string) string {
	base := s.cfg.PublicBaseURL
	if base == "" {
		if s.cfg.Endpoint != "" {
			base = strings.TrimRight(s.cfg.Endpoint, "/") + "/" + s.cfg.Bucket
		} else {
			base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", s.cfg.Bucket, s.cfg.Region)
		}
	}
	return strings.TrimRight(base, "/") + "/" + key
}

var _ domain.ObjectStorage = (*S3Storage)(nil)
