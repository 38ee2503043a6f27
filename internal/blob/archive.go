// Package blob keeps an institutional archive copy of uploaded project
// files in an S3-compatible bucket. Pinning remains the canonical content
// address; the archive only exists so the institution holds its own copy.
package blob

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/UniChain-25-26J-287/uni-repo-backend/config"
)

type Archive struct {
	client *s3.Client
	bucket string
	prefix string
}

// New builds the archive store, or returns (nil, nil) when no bucket is
// configured; a nil *Archive is a valid "disabled" value.
func New(ctx context.Context, cfg config.ArchiveConfig) (*Archive, error) {
	if cfg.Bucket == "" {
		return nil, nil
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	// Static credentials for local S3-compatible stores; otherwise the
	// default chain applies.
	if ak := os.Getenv("ARCHIVE_ACCESS_KEY_ID"); ak != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(ak, os.Getenv("ARCHIVE_SECRET_ACCESS_KEY"), ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("archive config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint := os.Getenv("ARCHIVE_ENDPOINT"); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &Archive{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix}, nil
}

// Enabled reports whether the archive is configured.
func (a *Archive) Enabled() bool {
	return a != nil
}

// Store writes the file bytes under <prefix><ipfsHash>/<name> so archived
// objects are addressable by the same CID the catalog records.
func (a *Archive) Store(ctx context.Context, ipfsHash, name, contentType string, data []byte) (string, error) {
	if !a.Enabled() {
		return "", nil
	}

	key := a.prefix + ipfsHash + "/" + name
	input := &s3.PutObjectInput{
		Bucket: &a.bucket,
		Key:    &key,
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		input.ContentType = &contentType
	}

	if _, err := a.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("archive put %s: %w", key, err)
	}
	return key, nil
}
