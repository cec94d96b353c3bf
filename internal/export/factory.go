// Where: internal/export/factory.go
// What: S3 client factory for context export.
// Why: Encapsulate SDK configuration, including local object-store endpoints.
package export

import (
	"context"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const defaultRegion = "us-east-1"

// Environment variables consumed when targeting a local object store.
const (
	EnvEndpoint  = "LAUNCHKIT_S3_ENDPOINT"
	EnvAccessKey = "LAUNCHKIT_S3_ACCESS_KEY"
	EnvSecretKey = "LAUNCHKIT_S3_SECRET_KEY"
)

// NewS3Client builds an S3 client from the default AWS configuration. When
// LAUNCHKIT_S3_ENDPOINT is set the client targets that endpoint with
// path-style addressing and static credentials, which is what local object
// stores expect.
func NewS3Client(ctx context.Context) (S3API, error) {
	endpoint := strings.TrimSpace(os.Getenv(EnvEndpoint))

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(resolveRegion()),
	}
	if endpoint != "" {
		accessKey := os.Getenv(EnvAccessKey)
		secretKey := os.Getenv(EnvSecretKey)
		if accessKey != "" && secretKey != "" {
			opts = append(opts, config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
			))
		}
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(cfg, func(options *s3.Options) {
		if endpoint != "" {
			options.BaseEndpoint = aws.String(endpoint)
			options.UsePathStyle = true
		}
	}), nil
}

func resolveRegion() string {
	if region := strings.TrimSpace(os.Getenv("AWS_REGION")); region != "" {
		return region
	}
	return defaultRegion
}
