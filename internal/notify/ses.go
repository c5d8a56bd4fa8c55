package notify

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"portfolio/internal/model"
)

// SESNotifier sends notifications via Amazon SES.
type SESNotifier struct {
	client     *sesv2.Client
	fromEmail  string
	fromName   string
	adminEmail string
}

var _ Notifier = (*SESNotifier)(nil)

// NewSESNotifier builds a notifier over Amazon SES. adminEmail is the
// destination for testimonial alerts; reset codes go to the requesting
// account instead.
func NewSESNotifier(ctx context.Context, awsRegion, fromEmail, fromName, adminEmail string) (*SESNotifier, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(awsRegion))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	log.Printf("email notifier enabled: from=%s, region=%s", fromEmail, awsRegion)
	return &SESNotifier{
		client:     sesv2.NewFromConfig(cfg),
		fromEmail:  fromEmail,
		fromName:   fromName,
		adminEmail: adminEmail,
	}, nil
}

// SendResetCode emails the 6-digit verification code to the admin.
func (s *SESNotifier) SendResetCode(ctx context.Context, toEmail, code string) error {
	subject := "Admin Password Reset Code"
	htmlBody := fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
	<h2 style="color: #333;">Password Reset Request</h2>
	<p>You requested a password reset for your admin account.</p>
	<p>Your verification code is:</p>
	<div style="background-color: #f4f4f4; padding: 20px; text-align: center; margin: 20px 0;">
		<h1 style="color: #007bff; font-size: 32px; margin: 0; letter-spacing: 5px;">%s</h1>
	</div>
	<p><strong>This code will expire in 15 minutes.</strong></p>
	<p>If you didn't request this reset, please ignore this email.</p>
	<hr style="margin: 30px 0; border: none; border-top: 1px solid #eee;">
	<p style="color: #666; font-size: 12px;">
		This is an automated message from your portfolio admin system.
	</p>
</div>
`, code)

	textBody := fmt.Sprintf(`You requested a password reset for your admin account.

Your verification code is: %s

This code will expire in 15 minutes.

If you didn't request this reset, please ignore this email.
`, code)

	return s.sendEmail(ctx, toEmail, subject, htmlBody, textBody)
}

// SendTestimonialAlert emails the admin about a new pending submission.
func (s *SESNotifier) SendTestimonialAlert(ctx context.Context, t *model.Testimonial) error {
	if s.adminEmail == "" {
		log.Println("skipping testimonial alert: ADMIN_NOTIFY_EMAIL not configured")
		return nil
	}

	attribution := t.Name
	if t.Title != nil && *t.Title != "" {
		attribution += ", " + *t.Title
	}
	if t.Company != nil && *t.Company != "" {
		attribution += " at " + *t.Company
	}

	subject := "New testimonial awaiting approval"
	htmlBody := fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
	<h2 style="color: #333;">New Testimonial Submitted</h2>
	<p><strong>%s</strong> submitted a testimonial:</p>
	<blockquote style="background-color: #f4f4f4; padding: 20px; margin: 20px 0; font-style: italic;">%s</blockquote>
	<p>Log in to the admin dashboard to approve or delete it.</p>
</div>
`, attribution, t.Quote)

	textBody := fmt.Sprintf(`%s submitted a testimonial:

%q

Log in to the admin dashboard to approve or delete it.
`, attribution, t.Quote)

	return s.sendEmail(ctx, s.adminEmail, subject, htmlBody, textBody)
}

// sendEmail sends an email using Amazon SES.
func (s *SESNotifier) sendEmail(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	fromAddress := s.fromEmail
	if s.fromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("send email to %s: %w", toEmail, err)
	}

	log.Printf("email sent: to=%s, subject=%s", toEmail, subject)
	return nil
}
