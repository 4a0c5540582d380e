package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/dmitrymomot/l20n/pkg/l10n"
)

// S3Client defines the S3 operations used by the S3 fetcher.
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Config contains configuration for the S3 fetcher.
type S3Config struct {
	Bucket         string `env:"L20N_S3_BUCKET"`
	Region         string `env:"L20N_S3_REGION" envDefault:"us-east-1"`
	AccessKeyID    string `env:"L20N_S3_ACCESS_KEY_ID"`
	SecretKey      string `env:"L20N_S3_SECRET_KEY"`
	Endpoint       string `env:"L20N_S3_ENDPOINT"`         // Optional: for S3-compatible services
	ForcePathStyle bool   `env:"L20N_S3_FORCE_PATH_STYLE"` // For S3-compatible services like MinIO
	Prefix         string `env:"L20N_S3_PREFIX"`           // Key prefix prepended to every resource id
}

// S3Option configures the S3 fetcher.
type S3Option func(*s3Options)

type s3Options struct {
	httpClient      *http.Client
	s3Client        S3Client
	s3ConfigOptions []func(*config.LoadOptions) error
	s3ClientOptions []func(*s3.Options)
	timeout         time.Duration
}

// WithS3Client sets a custom pre-configured S3 client.
// Useful for testing with mocks.
func WithS3Client(client S3Client) S3Option {
	return func(o *s3Options) {
		o.s3Client = client
	}
}

// WithS3HTTPClient sets a custom HTTP client for S3 requests.
func WithS3HTTPClient(client *http.Client) S3Option {
	return func(o *s3Options) {
		o.httpClient = client
	}
}

// WithS3ConfigOption adds a custom AWS config option.
func WithS3ConfigOption(option func(*config.LoadOptions) error) S3Option {
	return func(o *s3Options) {
		o.s3ConfigOptions = append(o.s3ConfigOptions, option)
	}
}

// WithS3ClientOption adds a custom S3 client option.
func WithS3ClientOption(option func(*s3.Options)) S3Option {
	return func(o *s3Options) {
		o.s3ClientOptions = append(o.s3ClientOptions, option)
	}
}

// WithS3Timeout bounds every download.
// If not set, the context deadline from the caller is used.
func WithS3Timeout(timeout time.Duration) S3Option {
	return func(o *s3Options) {
		o.timeout = timeout
	}
}

// S3 fetches resources from an S3 bucket. It is safe for concurrent use.
type S3 struct {
	client  S3Client
	bucket  string
	prefix  string
	timeout time.Duration
}

// NewS3 creates an S3 fetcher.
func NewS3(ctx context.Context, cfg S3Config, opts ...S3Option) (*S3, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, ErrInvalidConfig
	}

	options := &s3Options{}
	for _, opt := range opts {
		opt(options)
	}

	client := options.s3Client
	if client == nil {
		awsOptions := []func(*config.LoadOptions) error{
			config.WithRegion(cfg.Region),
		}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions,
				config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
					cfg.AccessKeyID,
					cfg.SecretKey,
					"",
				)),
			)
		}
		if options.httpClient != nil {
			awsOptions = append(awsOptions, config.WithHTTPClient(options.httpClient))
		}
		awsOptions = append(awsOptions, options.s3ConfigOptions...)

		awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToLoadConfig, err)
		}

		client = s3.NewFromConfig(awsConfig, func(o *s3.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			o.UsePathStyle = cfg.ForcePathStyle
			for _, opt := range options.s3ClientOptions {
				opt(o)
			}
		})
	}

	return &S3{
		client:  client,
		bucket:  cfg.Bucket,
		prefix:  strings.Trim(cfg.Prefix, "/"),
		timeout: options.timeout,
	}, nil
}

func (s *S3) Fetch(ctx context.Context, resID string, lang l10n.Language) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	key := s.key(resID, lang.Code)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", s.mapError(err, key)
	}
	defer out.Body.Close()

	body, err := io.ReadAll(io.LimitReader(out.Body, maxResourceSize))
	if err != nil {
		return "", errors.Join(ErrFailedToRead, err)
	}
	return string(body), nil
}

func (s *S3) key(resID, code string) string {
	key := strings.TrimPrefix(ExpandLocale(resID, code), "/")
	if s.prefix == "" {
		return key
	}
	return path.Join(s.prefix, key)
}

// mapError converts S3 errors into the not-found condition the engine
// expects. Access and network failures keep their own identity.
func (s *S3) mapError(err error, key string) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("get %s: %w", key, err)
	}

	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return fmt.Errorf("%w: %s", l10n.ErrNotFound, key)
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound", "NoSuchBucket":
			return fmt.Errorf("%w: %s: %s", l10n.ErrNotFound, key, apiErr.ErrorCode())
		case "AccessDenied", "Forbidden":
			return fmt.Errorf("%w: %s", ErrAccessDenied, key)
		default:
			return fmt.Errorf("get %s failed (code: %s): %w", key, apiErr.ErrorCode(), err)
		}
	}

	return fmt.Errorf("get %s failed: %w", key, err)
}
