package notify

import (
	"context"
	"log"

	"portfolio/internal/model"
)

// LogNotifier writes notifications to the server log. It stands in for a
// real provider when SES is not configured, which keeps the reset flow
// usable in development.
type LogNotifier struct{}

var _ Notifier = LogNotifier{}

// SendResetCode logs the code instead of emailing it.
func (LogNotifier) SendResetCode(ctx context.Context, toEmail, code string) error {
	log.Printf("email disabled: password reset code for %s is %s", toEmail, code)
	return nil
}

// SendTestimonialAlert logs the pending submission.
func (LogNotifier) SendTestimonialAlert(ctx context.Context, t *model.Testimonial) error {
	log.Printf("email disabled: new testimonial from %q awaiting approval", t.Name)
	return nil
}
