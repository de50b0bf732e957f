// Package s3media resolves and removes media objects kept in an S3
// compatible bucket. Clients upload directly; the service only stores keys.
package s3media

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"foodshare/internal/config/configs"
)

// ObjectDeleter is the part of the S3 client the store uses.
type ObjectDeleter interface {
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Store implements port.MediaStore.
type Store struct {
	client  ObjectDeleter
	bucket  string
	baseURL *url.URL
}

// New builds a Store on top of an S3 client created from cfg. A custom
// endpoint switches to path style addressing for MinIO.
func New(ctx context.Context, cfg configs.S3) (*Store, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
		if cfg.UsePathStyle {
			o.UsePathStyle = true
		}
	})
	return NewWithClient(client, cfg)
}

// NewWithClient builds a Store around an existing client.
func NewWithClient(client ObjectDeleter, cfg configs.S3) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	base, err := publicBase(cfg)
	if err != nil {
		return nil, err
	}
	return &Store{client: client, bucket: cfg.Bucket, baseURL: base}, nil
}

// publicBase picks the URL keys are published under: an explicit base,
// the MinIO endpoint with the bucket as first path segment, or the AWS
// virtual hosted bucket URL.
func publicBase(cfg configs.S3) (*url.URL, error) {
	raw := cfg.PublicBaseURL
	switch {
	case raw != "":
	case cfg.Endpoint != "" && !strings.Contains(cfg.Endpoint, "amazonaws.com"):
		raw = strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	default:
		region := cfg.Region
		if region == "" {
			region = "us-east-1"
		}
		raw = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, region)
	}
	u, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid media base url %q", raw)
	}
	return u, nil
}

// PublicURL returns the URL a stored key is served from.
func (s *Store) PublicURL(key string) string {
	u := *s.baseURL
	u.Path = u.Path + "/" + strings.TrimLeft(key, "/")
	return u.String()
}

// ExtractKey returns the object key of a URL under the public base. URLs
// on other hosts, or with nothing after the base, are rejected.
func (s *Store) ExtractKey(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil || !strings.EqualFold(u.Host, s.baseURL.Host) {
		return "", false
	}
	prefix := s.baseURL.Path + "/"
	if !strings.HasPrefix(u.Path, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(u.Path, prefix)
	if key == "" {
		return "", false
	}
	return key, true
}

// Delete removes an object. Deleting a missing key is not an error in S3.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete media %s: %w", key, err)
	}
	return nil
}
