// Package mail sends transactional email through an HTTP API. Delivery is a
// single attempt; failures propagate to the caller unretried.
package mail

import "context"

// VerificationEmail is everything the template needs to greet the user and
// point them at the verification link.
type VerificationEmail struct {
	ToEmail          string
	ToName           string
	VerificationLink string
}

// Mailer dispatches a verification email to one recipient.
type Mailer interface {
	SendVerificationEmail(ctx context.Context, msg VerificationEmail) error
}
