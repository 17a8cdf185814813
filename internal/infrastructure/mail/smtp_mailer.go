// Package mail implements the Mailer port over SMTP using gomail.
package mail

import (
	"context"
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/intertech/sales-automation-api/internal/application/ports"
	"github.com/intertech/sales-automation-api/pkg/config"
)

// SMTPMailer sends transactional mail through a plain SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

var _ ports.Mailer = (*SMTPMailer)(nil)

// NewSMTPMailer builds a mailer from SMTP settings.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// SendPasswordReset emails a password-reset link. The context is checked
// before dialing since gomail does not take one.
func (m *SMTPMailer) SendPasswordReset(ctx context.Context, to, resetURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Password Reset Request")
	msg.SetBody("text/html", fmt.Sprintf(
		`<p>You requested a password reset.</p>
<p><a href=%q>Click here to reset your password</a></p>
<p>This link expires shortly. If you did not request a reset, ignore this email.</p>`,
		resetURL,
	))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("sending password reset mail: %w", err)
	}
	return nil
}
