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

// ListingService owns the live motorcycle listings and their images.
type ListingService struct {
	db     *gorm.DB
	blobs  BlobStore
	cache  PageInvalidator
	bucket string
}

func NewListingService(db *gorm.DB, blobs BlobStore, cache PageInvalidator, bucket string) *ListingService {
	return &ListingService{
		db:     db,
		blobs:  blobs,
		cache:  cache,
		bucket: bucket,
	}
}

// ListingInput carries the validated attributes of a listing mutation.
type ListingInput struct {
	Make               string
	Model              string
	Year               int
	Price              int
	KmDriven           int
	EngineDisplacement int
	Registration       string
	Condition          string
	Description        string
}

func (in *ListingInput) validate() error {
	switch {
	case strings.TrimSpace(in.Make) == "":
		return validationErrorf("make is required")
	case strings.TrimSpace(in.Model) == "":
		return validationErrorf("model is required")
	case strings.TrimSpace(in.Registration) == "":
		return validationErrorf("registration is required")
	case strings.TrimSpace(in.Description) == "":
		return validationErrorf("description is required")
	}

	if !utils.IsValidCondition(in.Condition) {
		return validationErrorf("condition must be one of Excellent, Good, Fair, Poor")
	}
	if in.Price < 1 {
		return validationErrorf("price must be at least 1")
	}
	if !utils.IsValidYear(in.Year) {
		return validationErrorf("year must be 1900 or later")
	}
	if in.KmDriven < 0 {
		return validationErrorf("km driven cannot be negative")
	}

	return nil
}

// ListingFilter narrows the public listing index.
type ListingFilter struct {
	Make      string
	Condition string
	MinPrice  int
	MaxPrice  int
	MinYear   int
	MaxYear   int
}

func (s *ListingService) List(ctx context.Context, filter ListingFilter) ([]models.Listing, error) {
	query := s.db.WithContext(ctx).Model(&models.Listing{})

	if filter.Make != "" {
		query = query.Where("make = ?", filter.Make)
	}
	if filter.Condition != "" {
		query = query.Where("`condition` = ?", filter.Condition)
	}
	if filter.MinPrice > 0 {
		query = query.Where("price >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		query = query.Where("price <= ?", filter.MaxPrice)
	}
	if filter.MinYear > 0 {
		query = query.Where("year >= ?", filter.MinYear)
	}
	if filter.MaxYear > 0 {
		query = query.Where("year <= ?", filter.MaxYear)
	}

	var listings []models.Listing
	if err := query.Order("id DESC").Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch listings: %w", err)
	}
	return listings, nil
}

func (s *ListingService) Get(ctx context.Context, id uint) (*models.Listing, error) {
	var listing models.Listing
	if err := s.db.WithContext(ctx).First(&listing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch listing: %w", err)
	}
	return &listing, nil
}

// Create validates the input, uploads the new files and persists a fresh
// listing. Nothing pre-exists, so no deletions can happen.
func (s *ListingService) Create(ctx context.Context, input ListingInput, files []*multipart.FileHeader) (*models.Listing, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	uploadedURLs, err := uploadFiles(ctx, s.blobs, s.bucket, files)
	if err != nil {
		return nil, err
	}

	finalURLs, _ := ReconcileImages(nil, nil, uploadedURLs)

	listing := models.Listing{
		Make:               input.Make,
		Model:              input.Model,
		Year:               input.Year,
		Price:              input.Price,
		KmDriven:           input.KmDriven,
		EngineDisplacement: input.EngineDisplacement,
		Registration:       input.Registration,
		Condition:          input.Condition,
		Description:        input.Description,
		Images:             models.StringSliceType(finalURLs),
	}
	if listing.Images == nil {
		listing.Images = models.StringSliceType{}
	}

	if err := s.db.WithContext(ctx).Create(&listing).Error; err != nil {
		// already-uploaded blobs stay behind as orphans
		log.Printf("Warning: listing insert failed after uploading %d images: %v", len(uploadedURLs), err)
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}

	s.invalidate(ctx, "home", "admin")
	return &listing, nil
}

// Update reconciles the image set against the stored listing, persists the
// new attributes and only then removes the orphaned blobs. A deletion
// failure is logged, never surfaced: the record itself is already correct.
func (s *ListingService) Update(ctx context.Context, id uint, input ListingInput, keptURLs []string, files []*multipart.FileHeader) (*models.Listing, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	listing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	originalURLs := []string(listing.Images)

	uploadedURLs, err := uploadFiles(ctx, s.blobs, s.bucket, files)
	if err != nil {
		return nil, err
	}

	finalURLs, orphanedURLs := ReconcileImages(originalURLs, keptURLs, uploadedURLs)

	updates := map[string]interface{}{
		"make":                input.Make,
		"model":               input.Model,
		"year":                input.Year,
		"price":               input.Price,
		"km_driven":           input.KmDriven,
		"engine_displacement": input.EngineDisplacement,
		"registration":        input.Registration,
		"condition":           input.Condition,
		"description":         input.Description,
		"images":              models.StringSliceType(finalURLs),
	}

	if err := s.db.WithContext(ctx).Model(listing).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update listing: %w", err)
	}

	s.removeOrphans(ctx, orphanedURLs)
	s.invalidate(ctx, "home", "admin", fmt.Sprintf("listing:%d", id))

	listing.Images = models.StringSliceType(finalURLs)
	return listing, nil
}

// Delete removes the listing row, then best-effort deletes its images.
func (s *ListingService) Delete(ctx context.Context, id uint) error {
	listing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Delete(listing).Error; err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}

	s.removeOrphans(ctx, []string(listing.Images))
	s.invalidate(ctx, "home", "admin", fmt.Sprintf("listing:%d", id))
	return nil
}

func (s *ListingService) removeOrphans(ctx context.Context, urls []string) {
	if len(urls) == 0 {
		return
	}
	if err := s.blobs.Remove(ctx, s.bucket, urls); err != nil {
		log.Printf("Warning: could not delete %d orphaned listing images: %v", len(urls), err)
	}
}

func (s *ListingService) invalidate(ctx context.Context, tags ...string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, tags...)
	}
}
