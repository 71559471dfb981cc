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
)

// SubmissionService owns the unmoderated seller leads. Approval promotes a
// submission into a live listing; both flows share the listings bucket so
// images transfer ownership instead of being copied.
type SubmissionService struct {
	db     *gorm.DB
	blobs  BlobStore
	cache  PageInvalidator
	email  *EmailService
	bucket string
}

func NewSubmissionService(db *gorm.DB, blobs BlobStore, cache PageInvalidator, email *EmailService, bucket string) *SubmissionService {
	return &SubmissionService{
		db:     db,
		blobs:  blobs,
		cache:  cache,
		email:  email,
		bucket: bucket,
	}
}

// SubmissionInput carries the public sell form fields.
type SubmissionInput struct {
	Name     string
	Phone    string
	Location string
	Listing  ListingInput
}

func (in *SubmissionInput) validate() error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return validationErrorf("name is required")
	case len(strings.TrimSpace(in.Phone)) < 10:
		return validationErrorf("phone must have at least 10 digits")
	case strings.TrimSpace(in.Location) == "":
		return validationErrorf("location is required")
	}
	return in.Listing.validate()
}

func (s *SubmissionService) List(ctx context.Context) ([]models.Submission, error) {
	var submissions []models.Submission
	if err := s.db.WithContext(ctx).Order("submitted_at DESC").Find(&submissions).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch submissions: %w", err)
	}
	return submissions, nil
}

func (s *SubmissionService) Get(ctx context.Context, id uint) (*models.Submission, error) {
	var submission models.Submission
	if err := s.db.WithContext(ctx).First(&submission, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch submission: %w", err)
	}
	return &submission, nil
}

// Create handles the public "sell my bike" form: validate, upload the
// attached photos, insert the lead and notify the admin by email. There is
// nothing pre-existing to reconcile against.
func (s *SubmissionService) Create(ctx context.Context, input SubmissionInput, files []*multipart.FileHeader) (*models.Submission, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	uploadedURLs, err := uploadFiles(ctx, s.blobs, s.bucket, files)
	if err != nil {
		return nil, err
	}

	submission := models.Submission{
		Name:               input.Name,
		Phone:              input.Phone,
		Location:           input.Location,
		Make:               input.Listing.Make,
		Model:              input.Listing.Model,
		Year:               input.Listing.Year,
		Price:              input.Listing.Price,
		KmDriven:           input.Listing.KmDriven,
		EngineDisplacement: input.Listing.EngineDisplacement,
		Registration:       input.Listing.Registration,
		Condition:          input.Listing.Condition,
		Description:        input.Listing.Description,
		Images:             models.StringSliceType(uploadedURLs),
	}

	if err := s.db.WithContext(ctx).Create(&submission).Error; err != nil {
		log.Printf("Warning: submission insert failed after uploading %d images: %v", len(uploadedURLs), err)
		return nil, fmt.Errorf("failed to save submission: %w", err)
	}

	if s.email != nil {
		// notification failures never fail the submission
		go func(sub models.Submission) {
			if err := s.email.SendSubmissionNotification(&sub); err != nil {
				log.Printf("Warning: failed to send submission notification: %v", err)
			}
		}(submission)
	}

	s.invalidate(ctx, "admin")
	return &submission, nil
}

// Approve promotes a submission into a live listing. The listing insert is
// attempted first; only once it succeeds is the submission row removed, so
// a failed approval always leaves the submission intact for retry. If the
// submission delete fails after a successful insert, the transient
// double-existence is logged for manual cleanup rather than retried.
func (s *SubmissionService) Approve(ctx context.Context, id uint, input ListingInput, keptURLs []string, files []*multipart.FileHeader) (*models.Listing, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	submission, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	originalURLs := []string(submission.Images)

	uploadedURLs, err := uploadFiles(ctx, s.blobs, s.bucket, files)
	if err != nil {
		return nil, err
	}

	finalURLs, orphanedURLs := ReconcileImages(originalURLs, keptURLs, uploadedURLs)

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
		return nil, fmt.Errorf("failed to create listing from submission: %w", err)
	}

	if err := s.db.WithContext(ctx).Delete(submission).Error; err != nil {
		log.Printf("Warning: listing %d created but submission %d could not be deleted, manual cleanup needed: %v", listing.ID, id, err)
	}

	s.removeOrphans(ctx, orphanedURLs)
	s.invalidate(ctx, "home", "admin")
	return &listing, nil
}

// Delete rejects a submission outright: its images are removed best-effort
// and the row is dropped. Submissions are never publicly visible, so only
// the admin view needs invalidating.
func (s *SubmissionService) Delete(ctx context.Context, id uint) error {
	submission, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	s.removeOrphans(ctx, []string(submission.Images))

	if err := s.db.WithContext(ctx).Delete(submission).Error; err != nil {
		return fmt.Errorf("failed to delete submission: %w", err)
	}

	s.invalidate(ctx, "admin")
	return nil
}

func (s *SubmissionService) removeOrphans(ctx context.Context, urls []string) {
	if len(urls) == 0 {
		return
	}
	if err := s.blobs.Remove(ctx, s.bucket, urls); err != nil {
		log.Printf("Warning: could not delete %d orphaned submission images: %v", len(urls), err)
	}
}

func (s *SubmissionService) invalidate(ctx context.Context, tags ...string) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, tags...)
	}
}
