package service

import (
	"context"
	"fmt"
	"html"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"go.uber.org/zap"
)

// emailSender is the part of the SES client the service uses
type emailSender interface {
	SendEmail(ctx context.Context, params *sesv2.SendEmailInput, optFns ...func(*sesv2.Options)) (*sesv2.SendEmailOutput, error)
}

// EmailOptions configures the e-mail service
type EmailOptions struct {
	AWSRegion    string
	FromEmail    string
	FromName     string
	SupportEmail string
	AppBaseURL   string
	Debug        bool
}

// ContactMessage is a message sent through the contact form
type ContactMessage struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

// EmailService handles sending emails via Amazon SES
type EmailService struct {
	client  emailSender
	opts    EmailOptions
	enabled bool
	log     *zap.Logger
}

// NewEmailService creates a new email service. Without a from-address the
// service is disabled and every send is skipped.
func NewEmailService(ctx context.Context, opts EmailOptions, log *zap.Logger) (*EmailService, error) {
	if opts.FromEmail == "" {
		log.Info("email service disabled: SES_FROM_EMAIL not configured")
		return &EmailService{opts: opts, log: log}, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(opts.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Info("email service enabled", zap.String("from", opts.FromEmail), zap.String("region", opts.AWSRegion))
	return newEmailServiceWithClient(sesv2.NewFromConfig(cfg), opts, log), nil
}

func newEmailServiceWithClient(client emailSender, opts EmailOptions, log *zap.Logger) *EmailService {
	return &EmailService{client: client, opts: opts, enabled: true, log: log}
}

// IsEnabled returns whether the email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.enabled
}

// SendUsernameReminder tells a parent which username belongs to their e-mail address
func (s *EmailService) SendUsernameReminder(ctx context.Context, toEmail, username string) error {
	subject := "Your QuizOwl username"
	loginLink := s.opts.AppBaseURL + "/?screen=parent-login"

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
	<h1>Forgot your password?</h1>
	<p>Someone asked for help signing in to the QuizOwl parent account registered with this address.</p>
	<p>Your username is <strong>%s</strong>.</p>
	<p>If you have forgotten your password as well, sign in from a device where you are still logged in and change it from the account page.</p>
	<p><a href="%s">Go to parent login</a></p>
	<p style="font-size: 12px; color: #666;">If you didn't ask for this, you can safely ignore this email.</p>
</body>
</html>`, html.EscapeString(username), html.EscapeString(loginLink))

	textBody := fmt.Sprintf(`Someone asked for help signing in to the QuizOwl parent account registered with this address.

Your username is: %s

Parent login: %s

If you didn't ask for this, you can safely ignore this email.
`, username, loginLink)

	return s.sendEmail(ctx, toEmail, "", subject, htmlBody, textBody)
}

// SendContactMessage forwards a contact form message to the support inbox.
// Without a support inbox or with e-mail disabled, the message is only logged.
func (s *EmailService) SendContactMessage(ctx context.Context, msg ContactMessage) error {
	if s.opts.SupportEmail == "" || !s.enabled {
		s.log.Info("contact message received",
			zap.String("from", msg.Email),
			zap.String("name", msg.Name),
			zap.String("subject", msg.Subject),
			zap.String("message", msg.Message))
		return nil
	}

	subject := "[QuizOwl contact] " + msg.Subject
	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif;">
	<p><strong>From:</strong> %s &lt;%s&gt;</p>
	<p><strong>Subject:</strong> %s</p>
	<pre style="white-space: pre-wrap;">%s</pre>
</body>
</html>`, html.EscapeString(msg.Name), html.EscapeString(msg.Email), html.EscapeString(msg.Subject), html.EscapeString(msg.Message))
	textBody := fmt.Sprintf("From: %s <%s>\nSubject: %s\n\n%s\n", msg.Name, msg.Email, msg.Subject, msg.Message)

	return s.sendEmail(ctx, s.opts.SupportEmail, msg.Email, subject, htmlBody, textBody)
}

// sendEmail sends an email using Amazon SES
func (s *EmailService) sendEmail(ctx context.Context, toEmail, replyTo, subject, htmlBody, textBody string) error {
	if !s.enabled {
		s.log.Info("skipping email send (service disabled)", zap.String("to", toEmail), zap.String("subject", subject))
		return nil
	}

	fromAddress := s.opts.FromEmail
	if s.opts.FromName != "" {
		fromAddress = fmt.Sprintf("%s <%s>", s.opts.FromName, s.opts.FromEmail)
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
	if replyTo != "" {
		input.ReplyToAddresses = []string{replyTo}
	}

	if s.opts.Debug {
		s.log.Debug("calling SES SendEmail", zap.String("from", fromAddress), zap.String("to", toEmail), zap.String("subject", subject))
	}

	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}

	fields := []zap.Field{zap.String("to", toEmail), zap.String("subject", subject)}
	if result != nil && result.MessageId != nil {
		fields = append(fields, zap.String("message_id", *result.MessageId))
	}
	s.log.Info("email sent", fields...)
	return nil
}
