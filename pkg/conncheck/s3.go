package conncheck

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrymomot/confcheck/pkg/validate"
)

// S3Client is the subset of the S3 API the bucket probe needs. Satisfied by
// *s3.Client; substitutable in tests.
type S3Client interface {
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

// S3Option configures the S3 bucket probe.
type S3Option func(*s3Options)

type s3Options struct {
	client      S3Client
	region      string
	accessKeyID string
	secretKey   string
	endpoint    string
}

// WithS3Client sets a pre-configured client, bypassing the default AWS
// config chain. Useful for tests and for S3-compatible services.
func WithS3Client(client S3Client) S3Option {
	return func(o *s3Options) { o.client = client }
}

// WithS3Region sets the region for the default config chain.
func WithS3Region(region string) S3Option {
	return func(o *s3Options) { o.region = region }
}

// WithS3Credentials sets static credentials instead of the default chain.
func WithS3Credentials(accessKeyID, secretKey string) S3Option {
	return func(o *s3Options) {
		o.accessKeyID = accessKeyID
		o.secretKey = secretKey
	}
}

// WithS3Endpoint sets a custom endpoint and enables path-style addressing,
// for S3-compatible services like MinIO.
func WithS3Endpoint(endpoint string) S3Option {
	return func(o *s3Options) { o.endpoint = endpoint }
}

// S3Bucket returns a rule that verifies the bucket named by the property is
// accessible with the resolved credentials, via a HeadBucket call bounded by
// the given timeout.
func S3Bucket[T any](p validate.Property[T, string], timeout time.Duration, opts ...S3Option) validate.Rule[T] {
	var o s3Options
	for _, opt := range opts {
		opt(&o)
	}
	return validate.RuleFunc[T](func(instance T, section string) *validate.Error {
		bucket := strings.TrimSpace(p.Get(instance))
		key := p.Key(section)
		if bucket == "" {
			return &validate.Error{
				Key:         key,
				Message:     "bucket name is not specified",
				Suggestions: []string{fmt.Sprintf("set %s to the bucket name", key)},
			}
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		client := o.client
		if client == nil {
			var loadOpts []func(*awsconfig.LoadOptions) error
			if o.region != "" {
				loadOpts = append(loadOpts, awsconfig.WithRegion(o.region))
			}
			if o.accessKeyID != "" {
				loadOpts = append(loadOpts,
					awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(o.accessKeyID, o.secretKey, "")))
			}
			cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
			if err != nil {
				return &validate.Error{
					Key:         key,
					Message:     fmt.Sprintf("could not resolve AWS configuration: %v", err),
					Suggestions: []string{"configure AWS credentials via the environment or shared config"},
				}
			}
			client = s3.NewFromConfig(cfg, func(so *s3.Options) {
				if o.endpoint != "" {
					so.BaseEndpoint = aws.String(o.endpoint)
					so.UsePathStyle = true
				}
			})
		}

		if _, err := client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)}); err != nil {
			return &validate.Error{
				Key:          key,
				Message:      fmt.Sprintf("bucket is not accessible: %v", err),
				CurrentValue: bucket,
				Suggestions:  []string{"verify the bucket exists and the credentials grant access to it"},
			}
		}
		return nil
	})
}
