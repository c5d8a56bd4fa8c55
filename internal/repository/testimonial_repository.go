package repository

import (
	"context"

	"gorm.io/gorm"

	"portfolio/internal/model"
)

// TestimonialRepository defines persistence operations for testimonials.
// List operations return newest first.
type TestimonialRepository interface {
	Create(ctx context.Context, t *model.Testimonial) error
	FindByID(ctx context.Context, id uint) (*model.Testimonial, error)
	ListAll(ctx context.Context) ([]model.Testimonial, error)
	ListApproved(ctx context.Context) ([]model.Testimonial, error)
	Approve(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
	UpdateImage(ctx context.Context, id uint, imageURL *string) error
}

type testimonialRepository struct {
	db *gorm.DB
}

// NewTestimonialRepository builds a GORM-backed repository.
func NewTestimonialRepository(db *gorm.DB) TestimonialRepository {
	return &testimonialRepository{db: db}
}

func (r *testimonialRepository) Create(ctx context.Context, t *model.Testimonial) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *testimonialRepository) FindByID(ctx context.Context, id uint) (*model.Testimonial, error) {
	var t model.Testimonial
	if err := r.db.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *testimonialRepository) ListAll(ctx context.Context) ([]model.Testimonial, error) {
	var testimonials []model.Testimonial
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (r *testimonialRepository) ListApproved(ctx context.Context) ([]model.Testimonial, error) {
	var testimonials []model.Testimonial
	if err := r.db.WithContext(ctx).
		Where("is_approved = ?", true).
		Order("created_at DESC").
		Find(&testimonials).Error; err != nil {
		return nil, err
	}
	return testimonials, nil
}

func (r *testimonialRepository) Approve(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&model.Testimonial{}).
		Where("id = ?", id).
		Update("is_approved", true).Error
}

func (r *testimonialRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Testimonial{}, id).Error
}

func (r *testimonialRepository) UpdateImage(ctx context.Context, id uint, imageURL *string) error {
	return r.db.WithContext(ctx).
		Model(&model.Testimonial{}).
		Where("id = ?", id).
		Update("image_url", imageURL).Error
}
