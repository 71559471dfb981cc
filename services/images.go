package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// BlobStore is the gateway to the object store holding images.
type BlobStore interface {
	Upload(ctx context.Context, bucket, filename string, reader io.Reader, size int64, contentType string) (string, error)
	Remove(ctx context.Context, bucket string, urls []string) error
}

// PageInvalidator signals that cached storefront views are stale.
// Implementations must be safe to call with a nil receiver.
type PageInvalidator interface {
	Invalidate(ctx context.Context, tags ...string)
}

// ReconcileImages computes the image set a record ends up with after a
// mutation. finalURLs keeps the client-chosen keptURLs in order, followed by
// the freshly uploaded ones. orphanedURLs are the originals no longer
// referenced; a URL present in finalURLs is never orphaned, even if it also
// appears in originalURLs. Orphans must only be deleted after the record
// referencing finalURLs has been persisted.
func ReconcileImages(originalURLs, keptURLs, uploadedURLs []string) (finalURLs, orphanedURLs []string) {
	finalURLs = make([]string, 0, len(keptURLs)+len(uploadedURLs))
	finalURLs = append(finalURLs, keptURLs...)
	finalURLs = append(finalURLs, uploadedURLs...)

	referenced := make(map[string]struct{}, len(finalURLs))
	for _, url := range finalURLs {
		referenced[url] = struct{}{}
	}

	for _, url := range originalURLs {
		if _, ok := referenced[url]; !ok {
			orphanedURLs = append(orphanedURLs, url)
		}
	}

	return finalURLs, orphanedURLs
}

// uploadFiles stores each non-empty file under a fresh unique name keeping
// the original extension, and returns the public URLs in upload order.
// Uploads run sequentially so the returned order is deterministic. Any
// failure aborts the whole mutation; files uploaded before the failure stay
// behind as orphans.
func uploadFiles(ctx context.Context, blobs BlobStore, bucket string, files []*multipart.FileHeader) ([]string, error) {
	var urls []string
	for _, fh := range files {
		if fh == nil || fh.Size == 0 {
			// zero-byte file means "no file chosen"
			continue
		}

		src, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: could not open %s: %v", ErrUpload, fh.Filename, err)
		}

		filename := uuid.New().String() + strings.ToLower(filepath.Ext(fh.Filename))
		contentType := fh.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		url, err := blobs.Upload(ctx, bucket, filename, src, fh.Size, contentType)
		src.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUpload, err)
		}

		urls = append(urls, url)
	}
	return urls, nil
}

// SplitImageList parses the kept-images form field, which arrives as a
// comma separated list of URLs. Empty entries are dropped.
func SplitImageList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var urls []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			urls = append(urls, trimmed)
		}
	}
	return urls
}
