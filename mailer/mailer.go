// Package mailer is used to deliver emails
package mailer

import (
	"context"
	"fmt"
)

// Mailer sends a single email, there is no retry logic
type Mailer interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

// Kind denotes why an email could not be delivered
type Kind string

const (
	// MissingCredentials -> the mailer is not configured with credentials
	MissingCredentials Kind = "missing_credentials"
	// AuthFailed -> the mail server rejected the credentials
	AuthFailed Kind = "auth_failed"
	// Transport -> any other failure while talking to the mail server or API
	Transport Kind = "transport"
)

// Error is returned by the mailers, Reason is a human readable message that is
// safe to show to the end users
type Error struct {
	Kind   Kind
	Reason string
	Err    error
}

func (e *Error) Error() string {
	return e.Reason
}

func (e *Error) Unwrap() error {
	return e.Err
}

func transport(err error) *Error {
	return &Error{
		Kind:   Transport,
		Reason: fmt.Sprintf("Error sending email: %v", err),
		Err:    err,
	}
}
