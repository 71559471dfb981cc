package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"motomart-api/config"
)

// BlobStore wraps the S3 compatible object store holding listing and
// testimonial images. Public URLs are served from cfg.StoragePublicURL.
type BlobStore struct {
	client    *minio.Client
	publicURL string
}

func NewBlobStore(cfg *config.Config) (*BlobStore, error) {
	client, err := minio.New(cfg.StorageEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.StorageAccessKey, cfg.StorageSecretKey, ""),
		Secure: cfg.StorageUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &BlobStore{
		client:    client,
		publicURL: strings.TrimRight(cfg.StoragePublicURL, "/"),
	}, nil
}

// EnsureBuckets creates the given buckets if they do not exist yet.
func (bs *BlobStore) EnsureBuckets(ctx context.Context, buckets ...string) error {
	for _, bucket := range buckets {
		exists, err := bs.client.BucketExists(ctx, bucket)
		if err != nil {
			return fmt.Errorf("failed to check bucket %s: %w", bucket, err)
		}
		if !exists {
			if err := bs.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
	}
	return nil
}

// Upload stores a single object and returns its public URL.
func (bs *BlobStore) Upload(ctx context.Context, bucket, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	_, err := bs.client.PutObject(ctx, bucket, filename, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to bucket %s: %w", filename, bucket, err)
	}

	return bs.PublicURL(bucket, filename), nil
}

// PublicURL derives the public URL for a stored object. Pure derivation,
// does not touch the network.
func (bs *BlobStore) PublicURL(bucket, filename string) string {
	return bs.publicURL + "/" + bucket + "/" + filename
}

// Remove deletes the objects behind the given public URLs, best-effort.
// URLs that do not belong to our storage origin are skipped rather than
// treated as errors, so externally hosted image URLs never trigger
// deletion calls. Individual failures are logged and do not stop the rest.
func (bs *BlobStore) Remove(ctx context.Context, bucket string, urls []string) error {
	var lastErr error
	for _, rawURL := range urls {
		filename := FilenameFromURL(rawURL, bucket, bs.publicURL)
		if filename == "" {
			continue
		}
		if err := bs.client.RemoveObject(ctx, bucket, filename, minio.RemoveObjectOptions{}); err != nil {
			log.Printf("Warning: failed to delete %s from bucket %s: %v", filename, bucket, err)
			lastErr = err
		}
	}
	return lastErr
}

// FilenameFromURL recovers the stored object name from a public URL.
// Returns "" when the URL does not parse, does not match the storage
// origin, or does not contain the bucket segment.
func FilenameFromURL(rawURL, bucket, publicURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	origin, err := url.Parse(publicURL)
	if err != nil || parsed.Host != origin.Host {
		return ""
	}

	parts := strings.SplitN(parsed.Path, "/"+bucket+"/", 2)
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}
