package services

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"motomart-api/models"
)

func newListingService(t *testing.T) (*ListingService, *fakeBlobStore) {
	t.Helper()
	blobs := &fakeBlobStore{}
	return NewListingService(setupTestDB(t), blobs, nil, "listings-images"), blobs
}

func seedListing(t *testing.T, s *ListingService, images ...string) *models.Listing {
	t.Helper()
	listing := models.Listing{
		Make:               "Honda",
		Model:              "CB350",
		Year:               2021,
		Price:              150000,
		KmDriven:           5000,
		EngineDisplacement: 350,
		Registration:       "BR06AB1234",
		Condition:          "Good",
		Description:        "Well maintained single owner bike.",
		Images:             models.StringSliceType(images),
	}
	if listing.Images == nil {
		listing.Images = models.StringSliceType{}
	}
	require.NoError(t, s.db.Create(&listing).Error)
	return &listing
}

func TestCreateListingWithImage(t *testing.T) {
	s, blobs := newListingService(t)

	file := makeFileHeader(t, "bike.JPG", strings.Repeat("x", 2048))
	listing, err := s.Create(context.Background(), validListingInput(), []*multipart.FileHeader{file})
	require.NoError(t, err)

	assert.NotZero(t, listing.ID, "fresh integer id assigned")
	require.Len(t, listing.Images, 1)
	assert.True(t, strings.HasSuffix(listing.Images[0], ".jpg"), "stored extension preserved, got %s", listing.Images[0])
	assert.Empty(t, blobs.removed, "create must not delete anything")
}

func TestCreateListingWithoutImages(t *testing.T) {
	s, blobs := newListingService(t)

	listing, err := s.Create(context.Background(), validListingInput(), nil)
	require.NoError(t, err)

	assert.NotNil(t, listing.Images)
	assert.Empty(t, listing.Images)
	assert.Empty(t, blobs.uploaded)
}

func TestCreateListingSkipsEmptyFiles(t *testing.T) {
	s, blobs := newListingService(t)

	empty := makeFileHeader(t, "empty.jpg", "")
	listing, err := s.Create(context.Background(), validListingInput(), []*multipart.FileHeader{empty})
	require.NoError(t, err)

	assert.Empty(t, listing.Images, "zero-byte file means no file chosen")
	assert.Empty(t, blobs.uploaded)
}

func TestCreateListingValidationRejectsBeforeUpload(t *testing.T) {
	s, blobs := newListingService(t)

	input := validListingInput()
	input.Price = 0
	file := makeFileHeader(t, "bike.jpg", "data")

	_, err := s.Create(context.Background(), input, []*multipart.FileHeader{file})

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Empty(t, blobs.uploaded, "validation failures must precede any side effect")

	input = validListingInput()
	input.Condition = "Mint"
	_, err = s.Create(context.Background(), input, nil)
	require.True(t, errors.As(err, &vErr))

	input = validListingInput()
	input.Year = 1899
	_, err = s.Create(context.Background(), input, nil)
	require.True(t, errors.As(err, &vErr))
}

func TestCreateListingUploadFailureAbortsInsert(t *testing.T) {
	s, blobs := newListingService(t)
	blobs.failUploads = true

	file := makeFileHeader(t, "bike.jpg", "data")
	_, err := s.Create(context.Background(), validListingInput(), []*multipart.FileHeader{file})
	require.ErrorIs(t, err, ErrUpload)

	var count int64
	s.db.Model(&models.Listing{}).Count(&count)
	assert.Zero(t, count, "no row may be created when an upload fails")
}

func TestUpdateListingKeepsAndUploads(t *testing.T) {
	s, blobs := newListingService(t)
	listing := seedListing(t, s,
		"http://localhost:9000/listings-images/keep.jpg",
		"http://localhost:9000/listings-images/drop.jpg",
	)

	file := makeFileHeader(t, "new.png", "data")
	kept := []string{"http://localhost:9000/listings-images/keep.jpg"}

	updated, err := s.Update(context.Background(), listing.ID, validListingInput(), kept, []*multipart.FileHeader{file})
	require.NoError(t, err)

	require.Len(t, updated.Images, 2)
	assert.Equal(t, kept[0], updated.Images[0], "kept URLs come first")
	assert.True(t, strings.HasSuffix(updated.Images[1], ".png"))

	assert.Equal(t, []string{"http://localhost:9000/listings-images/drop.jpg"}, blobs.removed,
		"exactly the orphaned URL is deleted, exactly once")
}

func TestUpdateListingRemoveOnlyImage(t *testing.T) {
	s, blobs := newListingService(t)
	original := "http://localhost:9000/listings-images/only.jpg"
	listing := seedListing(t, s, original)

	updated, err := s.Update(context.Background(), listing.ID, validListingInput(), nil, nil)
	require.NoError(t, err)

	assert.Empty(t, updated.Images)
	assert.Equal(t, []string{original}, blobs.removed)

	var reloaded models.Listing
	require.NoError(t, s.db.First(&reloaded, listing.ID).Error)
	assert.Empty(t, []string(reloaded.Images))
}

func TestUpdateListingIdempotentWhenNothingChanges(t *testing.T) {
	s, blobs := newListingService(t)
	url := "http://localhost:9000/listings-images/keep.jpg"
	listing := seedListing(t, s, url)

	for i := 0; i < 2; i++ {
		updated, err := s.Update(context.Background(), listing.ID, validListingInput(), []string{url}, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{url}, []string(updated.Images))
	}

	assert.Empty(t, blobs.uploaded, "no uploads on a no-op update")
	assert.Empty(t, blobs.removed, "no deletions on a no-op update")
}

func TestUpdateListingNotFound(t *testing.T) {
	s, blobs := newListingService(t)

	_, err := s.Update(context.Background(), 9999, validListingInput(), nil, nil)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, blobs.uploaded)
	assert.Empty(t, blobs.removed)
}

func TestDeleteListingRemovesImages(t *testing.T) {
	s, blobs := newListingService(t)
	listing := seedListing(t, s,
		"http://localhost:9000/listings-images/a.jpg",
		"http://localhost:9000/listings-images/b.jpg",
	)

	require.NoError(t, s.Delete(context.Background(), listing.ID))

	var count int64
	s.db.Model(&models.Listing{}).Count(&count)
	assert.Zero(t, count)
	assert.Len(t, blobs.removed, 2)
}

func TestDeleteListingNotFound(t *testing.T) {
	s, blobs := newListingService(t)

	err := s.Delete(context.Background(), 123)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, blobs.removed, "no blob store calls for a missing listing")
}

func TestListListingsFilters(t *testing.T) {
	s, _ := newListingService(t)
	seedListing(t, s)

	other := validListingInput()
	other.Make = "Yamaha"
	other.Price = 90000
	_, err := s.Create(context.Background(), other, nil)
	require.NoError(t, err)

	all, err := s.List(context.Background(), ListingFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	hondas, err := s.List(context.Background(), ListingFilter{Make: "Honda"})
	require.NoError(t, err)
	require.Len(t, hondas, 1)
	assert.Equal(t, "Honda", hondas[0].Make)

	cheap, err := s.List(context.Background(), ListingFilter{MaxPrice: 100000})
	require.NoError(t, err)
	require.Len(t, cheap, 1)
	assert.Equal(t, "Yamaha", cheap[0].Make)
}
