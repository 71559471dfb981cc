package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"motomart-api/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Listing{},
		&models.Testimonial{},
		&models.Submission{},
	))

	return db
}

// fakeBlobStore records every upload and removal so tests can assert on
// exactly which blob store calls a mutation produced.
type fakeBlobStore struct {
	uploaded    []string // object names, in upload order
	removed     []string // public URLs passed to Remove
	failUploads bool
}

func (f *fakeBlobStore) Upload(ctx context.Context, bucket, filename string, reader io.Reader, size int64, contentType string) (string, error) {
	if f.failUploads {
		return "", errors.New("storage quota exceeded")
	}
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return "", err
	}
	f.uploaded = append(f.uploaded, filename)
	return "http://localhost:9000/" + bucket + "/" + filename, nil
}

func (f *fakeBlobStore) Remove(ctx context.Context, bucket string, urls []string) error {
	f.removed = append(f.removed, urls...)
	return nil
}

// makeFileHeader builds a real multipart.FileHeader the way gin would hand
// it to a controller.
func makeFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("images", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	files := form.File["images"]
	require.Len(t, files, 1)
	return files[0]
}

func validListingInput() ListingInput {
	return ListingInput{
		Make:               "Honda",
		Model:              "CB350",
		Year:               2021,
		Price:              150000,
		KmDriven:           5000,
		EngineDisplacement: 350,
		Registration:       "BR06AB1234",
		Condition:          "Good",
		Description:        "Well maintained single owner bike.",
	}
}
