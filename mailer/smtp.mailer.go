package mailer

import (
	"context"
	"crypto/tls"
	errs "errors"
	"fmt"
	"net"
	"net/smtp"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"github.com/VinukaThejana/go-utils/logger"
)

// SMTP sends emails through an SMTP relay, upgrading the connection with STARTTLS
type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	UseTLS   bool
}

func (m *SMTP) check() error {
	if m.Username == "" {
		return &Error{
			Kind:   MissingCredentials,
			Reason: "Error: SMTP_USERNAME environment variable not set.",
		}
	}
	if m.Password == "" {
		return &Error{
			Kind:   MissingCredentials,
			Reason: "Error: SMTP_PASSWORD environment variable not set.",
		}
	}

	return nil
}

func (m *SMTP) sender() string {
	if m.From == "" {
		logger.Log(fmt.Sprintf("SENDER_EMAIL not set, falling back to SMTP_USERNAME (%s)", m.Username))
		return m.Username
	}

	return m.From
}

// Message is a function that is used to build the plain text message
func Message(from, to, subject, body string) []byte {
	var message strings.Builder
	message.WriteString(fmt.Sprintf("From: %s\r\n", from))
	message.WriteString(fmt.Sprintf("To: %s\r\n", to))
	message.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	message.WriteString("Content-Transfer-Encoding: 8bit\r\n\r\n")
	message.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	message.WriteString("\r\n")

	return []byte(message.String())
}

// Send the email
func (m *SMTP) Send(ctx context.Context, recipient, subject, body string) error {
	if err := m.check(); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		return transport(ctx.Err())
	default:
	}

	from := m.sender()
	addr := net.JoinHostPort(m.Host, strconv.Itoa(m.Port))

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return transport(err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	} else {
		conn.SetDeadline(time.Now().Add(time.Minute))
	}

	client, err := smtp.NewClient(conn, m.Host)
	if err != nil {
		conn.Close()
		return transport(err)
	}
	defer client.Close()

	if m.UseTLS {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err = client.StartTLS(&tls.Config{ServerName: m.Host}); err != nil {
				return transport(err)
			}
		}
	}

	if err = client.Auth(smtp.PlainAuth("", m.Username, m.Password, m.Host)); err != nil {
		return m.authError(err)
	}

	if err = client.Mail(from); err != nil {
		return transport(err)
	}
	if err = client.Rcpt(recipient); err != nil {
		return transport(err)
	}

	w, err := client.Data()
	if err != nil {
		return transport(err)
	}
	if _, err = w.Write(Message(from, recipient, subject, body)); err != nil {
		return transport(err)
	}
	if err = w.Close(); err != nil {
		return transport(err)
	}

	if err = client.Quit(); err != nil {
		logger.Error(err)
	}

	return nil
}

func (m *SMTP) authError(err error) error {
	var protoErr *textproto.Error
	if errs.As(err, &protoErr) {
		return &Error{
			Kind: AuthFailed,
			Reason: fmt.Sprintf(
				"SMTP Authentication Error: Login failed for %s. Check username/App Password. (Code: %d Detail: %s)",
				m.Username,
				protoErr.Code,
				protoErr.Msg,
			),
			Err: err,
		}
	}

	return transport(err)
}
