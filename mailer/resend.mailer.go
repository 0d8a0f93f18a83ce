package mailer

import (
	"context"
	"fmt"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/resendlabs/resend-go"
)

// Resend sends emails through the Resend API
type Resend struct {
	APIKey string
	From   string

	client *resend.Client
}

// NewResend is a function that is used to create a Resend mailer
func NewResend(apiKey, from string) *Resend {
	return &Resend{
		APIKey: apiKey,
		From:   from,
		client: resend.NewClient(apiKey),
	}
}

// Send the email
func (m *Resend) Send(ctx context.Context, recipient, subject, body string) error {
	if m.APIKey == "" {
		return &Error{
			Kind:   MissingCredentials,
			Reason: "Error: RESEND_API_KEY environment variable not set.",
		}
	}
	if m.client == nil {
		m.client = resend.NewClient(m.APIKey)
	}

	select {
	case <-ctx.Done():
		return transport(ctx.Err())
	default:
	}

	send, err := m.client.Emails.Send(&resend.SendEmailRequest{
		From:    m.From,
		To:      []string{recipient},
		Subject: subject,
		Text:    body,
		ReplyTo: m.From,
	})
	if err != nil {
		return transport(err)
	}

	logger.Log(fmt.Sprintf("[ %s ] : email sent to %s", send.Id, recipient))
	return nil
}
