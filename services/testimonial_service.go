package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"strings"

	"gorm.io/gorm"
	"motomart-api/models"
	"motomart-api/utils"
)

// TestimonialService follows the same reconciliation pattern as listings,
// but for a single optional image instead of an array.
type TestimonialService struct {
	db     *gorm.DB
	blobs  BlobStore
	cache  PageInvalidator
	bucket string
}

func NewTestimonialService(db *gorm.DB, blobs BlobStore, cache PageInvalidator, bucket string) *TestimonialService {
	return &TestimonialService{
		db:     db,
		blobs:  blobs,
		cache:  cache,
		bucket: bucket,
	}
}

type TestimonialInput struct {
	Name     string
	Location string
	Review   string
	Rating   int
}

func (in *TestimonialInput) validate() error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return validationErrorf("name is required")
	case strings.TrimSpace(in.Location) == "":
		return validationErrorf("location is required")
	case strings.TrimSpace(in.Review) == "":
		return validationErrorf("review is required")
	}
	if !utils.IsValidRating(in.Rating) {
		return validationErrorf("rating must be between 1 and 5")
	}
	return nil
}

func (s *TestimonialService) List(ctx context.Context) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	if err := s.db.WithContext(ctx).Order("id DESC").Find(&testimonials).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch testimonials: %w", err)
	}
	return testimonials, nil
}

func (s *TestimonialService) Get(ctx context.Context, id uint) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	if err := s.db.WithContext(ctx).First(&testimonial, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch testimonial: %w", err)
	}
	return &testimonial, nil
}

func (s *TestimonialService) Create(ctx context.Context, input TestimonialInput, file *multipart.FileHeader) (*models.Testimonial, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	var image *string
	if file != nil && file.Size > 0 {
		urls, err := uploadFiles(ctx, s.blobs, s.bucket, []*multipart.FileHeader{file})
		if err != nil {
			return nil, err
		}
		if len(urls) > 0 {
			image = &urls[0]
		}
	}

	testimonial := models.Testimonial{
		Name:     input.Name,
		Location: input.Location,
		Review:   input.Review,
		Rating:   input.Rating,
		Image:    image,
	}

	if err := s.db.WithContext(ctx).Create(&testimonial).Error; err != nil {
		return nil, fmt.Errorf("failed to create testimonial: %w", err)
	}

	s.invalidate(ctx, "home", "admin")
	return &testimonial, nil
}

// Update replaces or clears the photo. keptImage is the existing URL when
// the admin keeps it, "" when it was removed. A superseded or removed image
// is deleted only after the record commits.
func (s *TestimonialService) Update(ctx context.Context, id uint, input TestimonialInput, keptImage string, file *multipart.FileHeader) (*models.Testimonial, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	testimonial, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	originalImage := testimonial.Image

	var newImage *string
	if keptImage != "" {
		newImage = &keptImage
	}
	if file != nil && file.Size > 0 {
		urls, err := uploadFiles(ctx, s.blobs, s.bucket, []*multipart.FileHeader{file})
		if err != nil {
			return nil, err
		}
		if len(urls) > 0 {
			newImage = &urls[0]
		}
	}

	updates := map[string]interface{}{
		"name":     input.Name,
		"location": input.Location,
		"review":   input.Review,
		"rating":   input.Rating,
		"image":    newImage,
	}

	if err := s.db.WithContext(ctx).Model(testimonial).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update testimonial: %w", err)
	}

	if originalImage != nil && (newImage == nil || *originalImage != *newImage) {
		s.removeImage(ctx, *originalImage)
	}

	s.invalidate(ctx, "home", "admin")
	testimonial.Image = newImage
	return testimonial, nil
}

func (s *TestimonialService) Delete(ctx context.Context, id uint) error {
	testimonial, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(testimonial).Error; err != nil {
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}

	if testimonial.Image != nil {
		s.removeImage(ctx, *testimonial.Image)
	}

	s.invalidate(ctx, "home", "admin")
	return nil
}

func (s *TestimonialService) removeImage(ctx context.Context, url string) {
	if err := s.blobs.Remove(ctx, s.bucket, []string{url}); err != nil {
		log.Printf("Warning: could not delete superseded testimonial image: %v", err)
	}
}

func (s *TestimonialService) invalidate(ctx context.Context, tags ...string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, tags...)
	}
}
