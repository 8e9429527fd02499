package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"
	"github.com/sirupsen/logrus"

	"github.com/queuely/queuely-api/internal/config"
	"github.com/queuely/queuely-api/internal/logger"
)

type Mailer interface {
	SendOTP(ctx context.Context, toEmail, name, code string) error
}

type resendMailer struct {
	client *resend.Client
	from   string
}

// New returns a resend-backed mailer. Without an API key the mailer
// only logs, so the reset flow keeps working in development.
func New(cfg *config.Config) Mailer {
	if cfg.ResendAPIKey == "" {
		return &noopMailer{}
	}

	return &resendMailer{
		client: resend.NewClient(cfg.ResendAPIKey),
		from:   cfg.MailFrom,
	}
}

func (m *resendMailer) SendOTP(ctx context.Context, toEmail, name, code string) error {
	html := fmt.Sprintf(`
<body style="font-family: sans-serif;">
	<h2>Queuely password reset</h2>
	<p>Hi %s,</p>
	<p>Your one-time code is:</p>
	<p style="font-size: 28px; letter-spacing: 4px;"><strong>%s</strong></p>
	<p>The code expires in 10 minutes. If you did not request a reset,
	you can ignore this email.</p>
</body>`, name, code)

	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{toEmail},
		Subject: "Your Queuely password reset code",
		Html:    html,
	}

	_, err := m.client.Emails.Send(params)
	return err
}

type noopMailer struct{}

func (m *noopMailer) SendOTP(ctx context.Context, toEmail, name, code string) error {
	logger.WithFields(logrus.Fields{"to": toEmail}).Info("mailer disabled, OTP not sent")
	return nil
}
