// Where: internal/export/s3.go
// What: Build-context upload for remote builders.
// Why: Agents building off-host need the packaged context in object storage.
package export

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API defines the subset of S3 client methods used by this package.
// This interface enables mocking the S3 client in tests.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader copies packaged context archives into an S3 bucket so a remote
// builder can consume them.
type Uploader struct {
	Client S3API
	Bucket string
	// Prefix is prepended to every object key, e.g. "contexts".
	Prefix string
}

// Upload stores the archive at archivePath under a key derived from the
// image tag and returns the object key.
func (u Uploader) Upload(ctx context.Context, archivePath, tag string) (string, error) {
	if u.Client == nil {
		return "", fmt.Errorf("s3 client is nil")
	}
	if strings.TrimSpace(u.Bucket) == "" {
		return "", fmt.Errorf("bucket is required")
	}
	if strings.TrimSpace(tag) == "" {
		return "", fmt.Errorf("image tag is required")
	}

	archive, err := os.Open(archivePath)
	if err != nil {
		return "", fmt.Errorf("open context archive: %w", err)
	}
	defer archive.Close()

	key := objectKey(u.Prefix, tag)
	_, err = u.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.Bucket),
		Key:         aws.String(key),
		Body:        archive,
		ContentType: aws.String("application/gzip"),
	})
	if err != nil {
		return "", fmt.Errorf("upload context archive: %w", err)
	}
	return key, nil
}

// objectKey flattens a tag into a storable key; colons and slashes become
// path-safe separators.
func objectKey(prefix, tag string) string {
	safe := strings.NewReplacer(":", "_", "/", "-").Replace(tag)
	return path.Join(prefix, safe+".tgz")
}
