package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"portfolio/internal/errors"
	"portfolio/internal/model"
)

// MockTestimonialRepository is a mock implementation of TestimonialRepository.
type MockTestimonialRepository struct {
	mock.Mock
}

func (m *MockTestimonialRepository) Create(ctx context.Context, t *model.Testimonial) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTestimonialRepository) FindByID(ctx context.Context, id uint) (*model.Testimonial, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) ListAll(ctx context.Context) ([]model.Testimonial, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) ListApproved(ctx context.Context) ([]model.Testimonial, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) Approve(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTestimonialRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTestimonialRepository) UpdateImage(ctx context.Context, id uint, imageURL *string) error {
	args := m.Called(ctx, id, imageURL)
	return args.Error(0)
}

// alertRecorder records testimonial alerts on a channel so tests can wait
// for the fire-and-forget goroutine without racing it.
type alertRecorder struct {
	alerts chan *model.Testimonial
	err    error
}

func newAlertRecorder(err error) *alertRecorder {
	return &alertRecorder{alerts: make(chan *model.Testimonial, 1), err: err}
}

func (r *alertRecorder) SendResetCode(ctx context.Context, toEmail, code string) error {
	return nil
}

func (r *alertRecorder) SendTestimonialAlert(ctx context.Context, t *model.Testimonial) error {
	r.alerts <- t
	return r.err
}

func (r *alertRecorder) wait(t *testing.T) *model.Testimonial {
	t.Helper()
	select {
	case alert := <-r.alerts:
		return alert
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for testimonial alert")
		return nil
	}
}

func strPtr(s string) *string { return &s }

func TestTestimonialService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects blank name and quote", func(t *testing.T) {
		mockRepo := new(MockTestimonialRepository)
		service := NewTestimonialService(mockRepo, newAlertRecorder(nil))

		_, err := service.Submit(ctx, SubmitTestimonialInput{Name: "   ", Quote: "great work"})
		assert.Equal(t, errors.ErrNameRequired, err)

		_, err = service.Submit(ctx, SubmitTestimonialInput{Name: "Jane", Quote: "\t\n"})
		assert.Equal(t, errors.ErrQuoteRequired, err)

		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("persists pending and alerts the admin", func(t *testing.T) {
		mockRepo := new(MockTestimonialRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Testimonial")).Return(nil)
		recorder := newAlertRecorder(nil)
		service := NewTestimonialService(mockRepo, recorder)

		created, err := service.Submit(ctx, SubmitTestimonialInput{
			Name:    "  Jane Doe  ",
			Quote:   " Great work. ",
			Title:   strPtr(" CTO "),
			Company: strPtr("   "),
		})
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", created.Name)
		assert.Equal(t, "Great work.", created.Quote)
		assert.Equal(t, "CTO", *created.Title)
		assert.Nil(t, created.Company)
		assert.False(t, created.IsApproved)
		assert.Nil(t, created.UserID)

		alert := recorder.wait(t)
		assert.Equal(t, "Jane Doe", alert.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("notifier failure does not fail the submission", func(t *testing.T) {
		mockRepo := new(MockTestimonialRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Testimonial")).Return(nil)
		recorder := newAlertRecorder(assert.AnError)
		service := NewTestimonialService(mockRepo, recorder)

		created, err := service.Submit(ctx, SubmitTestimonialInput{Name: "Jane", Quote: "Great"})
		require.NoError(t, err)
		require.NotNil(t, created)
		recorder.wait(t)
	})

	t.Run("store error fails the submission", func(t *testing.T) {
		mockRepo := new(MockTestimonialRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Testimonial")).Return(assert.AnError)
		service := NewTestimonialService(mockRepo, newAlertRecorder(nil))

		_, err := service.Submit(ctx, SubmitTestimonialInput{Name: "Jane", Quote: "Great"})
		assert.Error(t, err)
	})
}

func TestTestimonialService_ListApproved_DegradesToEmpty(t *testing.T) {
	mockRepo := new(MockTestimonialRepository)
	mockRepo.On("ListApproved", mock.Anything).Return(nil, assert.AnError)
	service := NewTestimonialService(mockRepo, newAlertRecorder(nil))

	testimonials, err := service.ListApproved(context.Background())
	require.NoError(t, err)
	assert.Empty(t, testimonials)
	assert.NotNil(t, testimonials)
}

func TestTestimonialService_Approve(t *testing.T) {
	ctx := context.Background()

	t.Run("approves a pending testimonial", func(t *testing.T) {
		mockRepo := new(MockTestimonialRepository)
		mockRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.Testimonial{ID: 5}, nil)
		mockRepo.On("Approve", mock.Anything, uint(5)).Return(nil)
		service := NewTestimonialService(mockRepo, newAlertRecorder(nil))

		require.NoError(t, service.Approve(ctx, 5))
		mockRepo.AssertExpectations(t)
	})

	t.Run("already approved is a no-op", func(t *testing.T) {
		mockRepo := new(MockTestimonialRepository)
		mockRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.Testimonial{ID: 5, IsApproved: true}, nil)
		service := NewTestimonialService(mockRepo, newAlertRecorder(nil))

		require.NoError(t, service.Approve(ctx, 5))
		mockRepo.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything)
	})

	t.Run("missing id is not found", func(t *testing.T) {
		mockRepo := new(MockTestimonialRepository)
		mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
		service := NewTestimonialService(mockRepo, newAlertRecorder(nil))

		assert.Equal(t, errors.ErrTestimonialNotFound, service.Approve(ctx, 99))
	})
}

func TestTestimonialService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes from either state", func(t *testing.T) {
		mockRepo := new(MockTestimonialRepository)
		mockRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.Testimonial{ID: 5, IsApproved: true}, nil)
		mockRepo.On("Delete", mock.Anything, uint(5)).Return(nil)
		service := NewTestimonialService(mockRepo, newAlertRecorder(nil))

		require.NoError(t, service.Delete(ctx, 5))
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing id is not found", func(t *testing.T) {
		mockRepo := new(MockTestimonialRepository)
		mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
		service := NewTestimonialService(mockRepo, newAlertRecorder(nil))

		assert.Equal(t, errors.ErrTestimonialNotFound, service.Delete(ctx, 99))
	})
}

func TestTestimonialService_UpdateImage(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects empty string", func(t *testing.T) {
		mockRepo := new(MockTestimonialRepository)
		service := NewTestimonialService(mockRepo, newAlertRecorder(nil))

		assert.Equal(t, errors.ErrEmptyImageURL, service.UpdateImage(ctx, 5, strPtr("")))
		mockRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("nil clears the image", func(t *testing.T) {
		mockRepo := new(MockTestimonialRepository)
		mockRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.Testimonial{ID: 5, ImageURL: strPtr("https://old")}, nil)
		mockRepo.On("UpdateImage", mock.Anything, uint(5), (*string)(nil)).Return(nil)
		service := NewTestimonialService(mockRepo, newAlertRecorder(nil))

		require.NoError(t, service.UpdateImage(ctx, 5, nil))
		mockRepo.AssertExpectations(t)
	})

	t.Run("sets the image independently of approval", func(t *testing.T) {
		mockRepo := new(MockTestimonialRepository)
		mockRepo.On("FindByID", mock.Anything, uint(5)).Return(&model.Testimonial{ID: 5}, nil)
		url := strPtr("https://example.com/avatar.png")
		mockRepo.On("UpdateImage", mock.Anything, uint(5), url).Return(nil)
		service := NewTestimonialService(mockRepo, newAlertRecorder(nil))

		require.NoError(t, service.UpdateImage(ctx, 5, url))
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing id is not found", func(t *testing.T) {
		mockRepo := new(MockTestimonialRepository)
		mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
		service := NewTestimonialService(mockRepo, newAlertRecorder(nil))

		assert.Equal(t, errors.ErrTestimonialNotFound, service.UpdateImage(ctx, 99, nil))
	})
}
