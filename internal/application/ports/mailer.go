// Package ports declares the narrow interfaces the use cases need from
// external collaborators, so the core stays testable without real I/O.
package ports

import "context"

// Mailer delivers transactional email. Implementations live in
// infrastructure (SMTP via gomail); tests inject fakes.
type Mailer interface {
	// SendPasswordReset emails the reset link to the given address.
	SendPasswordReset(ctx context.Context, to, resetURL string) error
}
