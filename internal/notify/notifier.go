package notify

import (
	"context"

	"portfolio/internal/model"
)

// Notifier delivers operator-facing email: the password reset code and
// alerts about new testimonial submissions. Implementations are selected
// at startup by configuration presence.
type Notifier interface {
	SendResetCode(ctx context.Context, toEmail, code string) error
	SendTestimonialAlert(ctx context.Context, t *model.Testimonial) error
}
