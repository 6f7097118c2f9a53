package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the subset of the S3 client the uploader needs.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Uploader pushes snapshots to an S3 bucket.
type S3Uploader struct {
	client S3API
	bucket string
	prefix string
}

// NewS3Uploader creates an uploader with an existing client.
func NewS3Uploader(client S3API, bucket, prefix string) *S3Uploader {
	return &S3Uploader{client: client, bucket: bucket, prefix: prefix}
}

// NewS3UploaderFromConfig creates an uploader by loading the default AWS
// credential chain for the given region.
func NewS3UploaderFromConfig(ctx context.Context, bucket, region, prefix string) (*S3Uploader, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	return NewS3Uploader(s3.NewFromConfig(awsCfg), bucket, prefix), nil
}

// ObjectKey returns the key a snapshot taken at ts is uploaded under.
func (u *S3Uploader) ObjectKey(ts time.Time) string {
	name := fmt.Sprintf("campusmap-export-%s.json", ts.UTC().Format("20060102-150405"))
	return path.Join(u.prefix, name)
}

// Upload marshals the snapshot and writes it to the bucket. It returns the
// object key the snapshot was stored under.
func (u *S3Uploader) Upload(ctx context.Context, snap *Snapshot) (string, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}

	key := u.ObjectKey(snap.ExportedAt)
	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put object: %w", err)
	}

	return key, nil
}
