// Package s3 contains implementation of FileStorage interface with any s3-compatible storage.
package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"

	"github.com/Adefolalu/clinkers/internal/storage"
)

// Artwork is served straight from the bucket, so a fresh bucket is made
// world-readable.
const policyTpl = `{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`

type s3 struct {
	c *minio.Client
	b string
	u string
}

// NewStorage returns s3 implementation of FileStorage interface. publicURL is
// the base the bucket is served from, empty means the AWS virtual-host form.
func NewStorage(client *minio.Client, bucket, publicURL string) (storage.FileStorage, error) {
	logrus.WithField("bucket", bucket).Debug("check bucket existence")
	exists, err := client.BucketExists(context.Background(), bucket)
	if err != nil {
		return nil, err
	}

	if !exists {
		logrus.WithField("bucket", bucket).Info("create bucket in s3 storage")
		if err := client.MakeBucket(context.Background(), bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
		if err := client.SetBucketPolicy(context.Background(), bucket, fmt.Sprintf(policyTpl, bucket)); err != nil {
			return nil, err
		}
	}

	return &s3{
		c: client,
		b: bucket,
		u: strings.TrimSuffix(publicURL, "/"),
	}, nil
}

func (s s3) Ping(ctx context.Context) error {
	if _, err := s.c.ListBuckets(ctx); err != nil {
		return errors.New("connection with s3 seems broken") // nolint:goerr113
	}
	return nil
}

// Write puts artwork into s3 storage and returns its public URL.
func (s s3) Write(ctx context.Context, r io.Reader, size int64, path string, contentType string) (string, error) {
	i, err := s.c.PutObject(ctx, s.b, path, r, size, minio.PutObjectOptions{DisableMultipart: true, ContentType: contentType})
	if err != nil {
		return "", err
	}

	if s.u == "" {
		return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", i.Bucket, i.Key), nil
	}
	return fmt.Sprintf("%s/%s", s.u, i.Key), nil
}
