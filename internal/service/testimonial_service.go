package service

import (
	"context"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/notify"
	"portfolio/internal/repository"
)

const alertTimeout = 10 * time.Second

// SubmitTestimonialInput carries a public submission.
type SubmitTestimonialInput struct {
	Name     string
	Quote    string
	Title    *string
	Company  *string
	ImageURL *string
}

// TestimonialService handles public submissions and admin moderation.
type TestimonialService interface {
	Submit(ctx context.Context, input SubmitTestimonialInput) (*model.Testimonial, error)
	ListApproved(ctx context.Context) ([]model.Testimonial, error)
	ListAll(ctx context.Context) ([]model.Testimonial, error)
	Approve(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
	UpdateImage(ctx context.Context, id uint, imageURL *string) error
}

type testimonialService struct {
	repo     repository.TestimonialRepository
	notifier notify.Notifier
}

// NewTestimonialService creates a new testimonial service.
func NewTestimonialService(repo repository.TestimonialRepository, notifier notify.Notifier) TestimonialService {
	return &testimonialService{
		repo:     repo,
		notifier: notifier,
	}
}

// Submit persists a pending testimonial and alerts the admin. The alert
// is fire-and-forget: its failure never affects the submitter's response.
func (s *testimonialService) Submit(ctx context.Context, input SubmitTestimonialInput) (*model.Testimonial, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.ErrNameRequired
	}
	quote := strings.TrimSpace(input.Quote)
	if quote == "" {
		return nil, errors.ErrQuoteRequired
	}

	t := &model.Testimonial{
		Name:       name,
		Quote:      quote,
		Title:      trimmed(input.Title),
		Company:    trimmed(input.Company),
		ImageURL:   input.ImageURL,
		IsApproved: false,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	go func() {
		alertCtx, cancel := context.WithTimeout(context.Background(), alertTimeout)
		defer cancel()
		if err := s.notifier.SendTestimonialAlert(alertCtx, t); err != nil {
			log.Printf("testimonial alert for %q: %v", t.Name, err)
		}
	}()

	return t, nil
}

// ListApproved returns publicly visible testimonials. Store errors
// degrade to an empty list so the public page never breaks.
func (s *testimonialService) ListApproved(ctx context.Context) ([]model.Testimonial, error) {
	testimonials, err := s.repo.ListApproved(ctx)
	if err != nil {
		log.Printf("list approved testimonials: %v", err)
		return []model.Testimonial{}, nil
	}
	return testimonials, nil
}

// ListAll returns every testimonial regardless of approval state.
func (s *testimonialService) ListAll(ctx context.Context) ([]model.Testimonial, error) {
	return s.repo.ListAll(ctx)
}

// Approve marks a testimonial publicly visible. Approving an already
// approved row is a no-op.
func (s *testimonialService) Approve(ctx context.Context, id uint) error {
	t, err := s.findByID(ctx, id)
	if err != nil {
		return err
	}
	if t.IsApproved {
		return nil
	}
	return s.repo.Approve(ctx, id)
}

// Delete removes a testimonial from either state.
func (s *testimonialService) Delete(ctx context.Context, id uint) error {
	if _, err := s.findByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// UpdateImage sets or clears the image URL independently of approval
// state. A nil imageURL clears; an empty string is a validation error.
func (s *testimonialService) UpdateImage(ctx context.Context, id uint, imageURL *string) error {
	if imageURL != nil && *imageURL == "" {
		return errors.ErrEmptyImageURL
	}
	if _, err := s.findByID(ctx, id); err != nil {
		return err
	}
	return s.repo.UpdateImage(ctx, id, imageURL)
}

func (s *testimonialService) findByID(ctx context.Context, id uint) (*model.Testimonial, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTestimonialNotFound
		}
		return nil, err
	}
	return t, nil
}

// trimmed trims an optional field, collapsing whitespace-only values to nil.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
