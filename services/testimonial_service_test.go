package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"motomart-api/models"
)

func newTestimonialService(t *testing.T) (*TestimonialService, *fakeBlobStore) {
	t.Helper()
	blobs := &fakeBlobStore{}
	return NewTestimonialService(setupTestDB(t), blobs, nil, "testimonials-images"), blobs
}

func validTestimonialInput() TestimonialInput {
	return TestimonialInput{
		Name:     "Ananya Shah",
		Location: "Bengaluru",
		Review:   "Fair price and honest condition report.",
		Rating:   4,
	}
}

func TestCreateTestimonialRatingOutOfRange(t *testing.T) {
	s, blobs := newTestimonialService(t)

	for _, rating := range []int{0, 6, -1} {
		input := validTestimonialInput()
		input.Rating = rating

		_, err := s.Create(context.Background(), input, makeFileHeader(t, "photo.jpg", "data"))

		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr), "rating %d must be rejected", rating)
	}

	assert.Empty(t, blobs.uploaded, "rejected writes must not call the blob store")
}

func TestCreateTestimonialWithPhoto(t *testing.T) {
	s, blobs := newTestimonialService(t)

	testimonial, err := s.Create(context.Background(), validTestimonialInput(), makeFileHeader(t, "photo.jpg", "data"))
	require.NoError(t, err)

	require.NotNil(t, testimonial.Image)
	assert.Len(t, blobs.uploaded, 1)
}

func TestCreateTestimonialWithoutPhoto(t *testing.T) {
	s, blobs := newTestimonialService(t)

	testimonial, err := s.Create(context.Background(), validTestimonialInput(), nil)
	require.NoError(t, err)

	assert.Nil(t, testimonial.Image)
	assert.Empty(t, blobs.uploaded)
}

func TestUpdateTestimonialReplacePhotoDeletesOld(t *testing.T) {
	s, blobs := newTestimonialService(t)
	old := "http://localhost:9000/testimonials-images/old.jpg"
	testimonial := models.Testimonial{Name: "A", Location: "B", Review: "ok review", Rating: 3, Image: &old}
	require.NoError(t, s.db.Create(&testimonial).Error)

	updated, err := s.Update(context.Background(), testimonial.ID, validTestimonialInput(), "", makeFileHeader(t, "new.jpg", "data"))
	require.NoError(t, err)

	require.NotNil(t, updated.Image)
	assert.NotEqual(t, old, *updated.Image)
	assert.Equal(t, []string{old}, blobs.removed, "superseded image deleted after the record commits")
}

func TestUpdateTestimonialClearPhoto(t *testing.T) {
	s, blobs := newTestimonialService(t)
	old := "http://localhost:9000/testimonials-images/old.jpg"
	testimonial := models.Testimonial{Name: "A", Location: "B", Review: "ok review", Rating: 3, Image: &old}
	require.NoError(t, s.db.Create(&testimonial).Error)

	updated, err := s.Update(context.Background(), testimonial.ID, validTestimonialInput(), "", nil)
	require.NoError(t, err)

	assert.Nil(t, updated.Image)
	assert.Equal(t, []string{old}, blobs.removed)

	var reloaded models.Testimonial
	require.NoError(t, s.db.First(&reloaded, testimonial.ID).Error)
	assert.Nil(t, reloaded.Image)
}

func TestUpdateTestimonialKeepPhotoNoDeletion(t *testing.T) {
	s, blobs := newTestimonialService(t)
	old := "http://localhost:9000/testimonials-images/old.jpg"
	testimonial := models.Testimonial{Name: "A", Location: "B", Review: "ok review", Rating: 3, Image: &old}
	require.NoError(t, s.db.Create(&testimonial).Error)

	updated, err := s.Update(context.Background(), testimonial.ID, validTestimonialInput(), old, nil)
	require.NoError(t, err)

	require.NotNil(t, updated.Image)
	assert.Equal(t, old, *updated.Image)
	assert.Empty(t, blobs.removed)
}

func TestUpdateTestimonialNotFound(t *testing.T) {
	s, _ := newTestimonialService(t)

	_, err := s.Update(context.Background(), 42, validTestimonialInput(), "", nil)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteTestimonialRemovesPhoto(t *testing.T) {
	s, blobs := newTestimonialService(t)
	old := "http://localhost:9000/testimonials-images/old.jpg"
	testimonial := models.Testimonial{Name: "A", Location: "B", Review: "ok review", Rating: 3, Image: &old}
	require.NoError(t, s.db.Create(&testimonial).Error)

	require.NoError(t, s.Delete(context.Background(), testimonial.ID))

	assert.Equal(t, []string{old}, blobs.removed)
	var count int64
	s.db.Model(&models.Testimonial{}).Count(&count)
	assert.Zero(t, count)
}
