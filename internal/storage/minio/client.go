package minio

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"path/filepath"
	"time"

	"github.com/minio/minio-go/v7"

	"github.com/dtroode/pdfgenie-client/internal/model"
)

// objectAPI is the subset of *minio.Client the sink needs.
type objectAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
}

var _ model.ResultSink = (*Sink)(nil)

// Sink mirrors downloaded results into an S3-compatible bucket.
type Sink struct {
	api    objectAPI
	bucket string
}

// NewSink creates a sink using a real *minio.Client instance.
func NewSink(ctx context.Context, client *minio.Client, bucket string) (*Sink, error) {
	return NewSinkWithAPI(ctx, client, bucket)
}

// NewSinkWithAPI allows injecting a fake API (used in tests).
func NewSinkWithAPI(ctx context.Context, api objectAPI, bucket string) (*Sink, error) {
	s := &Sink{
		api:    api,
		bucket: bucket,
	}

	if err := s.ensureBucketExists(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
	}

	return s, nil
}

func (s *Sink) ensureBucketExists(ctx context.Context) error {
	exists, err := s.api.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}

	if err := s.api.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// Upload stores the result under key. The content type is derived from the key extension.
func (s *Sink) Upload(ctx context.Context, key string, reader io.Reader) error {
	opts := minio.PutObjectOptions{ContentType: mime.TypeByExtension(path.Ext(key))}
	if opts.ContentType == "" {
		opts.ContentType = "application/octet-stream"
	}

	if _, err := s.api.PutObject(ctx, s.bucket, key, reader, -1, opts); err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}
	return nil
}

// Exists checks whether a result was already mirrored under key.
func (s *Sink) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.api.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat object: %w", err)
	}
	return true, nil
}

// ObjectKey builds the bucket key of a result: <owner>/<yyyy-mm-dd>/<file>.
func ObjectKey(owner, fileName string, at time.Time) string {
	if owner == "" {
		owner = "anonymous"
	}
	return path.Join(owner, at.UTC().Format(time.DateOnly), filepath.Base(fileName))
}
