package mailer_test

import (
	"bufio"
	"context"
	errs "errors"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/VinukaThejana/feedback/mailer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSMTP is a minimal SMTP server that accepts a single session
type fakeSMTP struct {
	listener net.Listener
	authCode string

	mu   sync.Mutex
	data string
	rcpt string
}

func newFakeSMTP(t *testing.T, authCode string) *fakeSMTP {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { l.Close() })

	f := &fakeSMTP{listener: l, authCode: authCode}
	go f.serve()
	return f
}

func (f *fakeSMTP) port() int {
	return f.listener.Addr().(*net.TCPAddr).Port
}

func (f *fakeSMTP) serve() {
	conn, err := f.listener.Accept()
	if err != nil {
		return
	}
	defer conn.Close()

	r := bufio.NewReader(conn)
	write := func(s string) { conn.Write([]byte(s + "\r\n")) }

	write("220 localhost ready")
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimRight(line, "\r\n")
		cmd := strings.ToUpper(line)

		switch {
		case strings.HasPrefix(cmd, "EHLO"):
			write("250-localhost")
			write("250 AUTH PLAIN")
		case strings.HasPrefix(cmd, "AUTH"):
			write(f.authCode)
		case strings.HasPrefix(cmd, "RCPT TO"):
			f.mu.Lock()
			f.rcpt = line
			f.mu.Unlock()
			write("250 ok")
		case cmd == "DATA":
			write("354 go ahead")
			var data strings.Builder
			for {
				l, err := r.ReadString('\n')
				if err != nil {
					return
				}
				if l == ".\r\n" {
					break
				}
				data.WriteString(l)
			}
			f.mu.Lock()
			f.data = data.String()
			f.mu.Unlock()
			write("250 queued")
		case cmd == "*":
			write("501 cancelled")
		case cmd == "QUIT":
			write("221 bye")
			return
		default:
			write("250 ok")
		}
	}
}

func TestSMTPMissingCredentials(t *testing.T) {
	args := []struct {
		m      mailer.SMTP
		reason string
	}{
		{
			m:      mailer.SMTP{Host: "127.0.0.1", Port: 25, Password: "secret"},
			reason: "Error: SMTP_USERNAME environment variable not set.",
		},
		{
			m:      mailer.SMTP{Host: "127.0.0.1", Port: 25, Username: "noreply@x.com"},
			reason: "Error: SMTP_PASSWORD environment variable not set.",
		},
	}

	for _, arg := range args {
		err := arg.m.Send(context.Background(), "a@x.com", "subject", "body")
		require.Error(t, err)

		var mailErr *mailer.Error
		require.True(t, errs.As(err, &mailErr))
		assert.Equal(t, mailer.MissingCredentials, mailErr.Kind)
		assert.Equal(t, arg.reason, err.Error())
	}
}

func TestSMTPSend(t *testing.T) {
	server := newFakeSMTP(t, "235 2.7.0 accepted")

	m := mailer.SMTP{
		Host:     "127.0.0.1",
		Port:     server.port(),
		Username: "noreply@x.com",
		Password: "secret",
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := m.Send(ctx, "a@x.com", "Your MFA OTP Code", "line one\nline two")
	require.NoError(t, err)

	server.mu.Lock()
	defer server.mu.Unlock()
	assert.Contains(t, server.rcpt, "a@x.com")
	assert.Contains(t, server.data, "From: noreply@x.com\r\n")
	assert.Contains(t, server.data, "Subject: Your MFA OTP Code\r\n")
	assert.Contains(t, server.data, "line one\r\nline two")
}

func TestSMTPAuthFailed(t *testing.T) {
	server := newFakeSMTP(t, "535 5.7.8 bad credentials")

	m := mailer.SMTP{
		Host:     "127.0.0.1",
		Port:     server.port(),
		Username: "noreply@x.com",
		Password: "wrong",
		From:     "noreply@x.com",
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := m.Send(ctx, "a@x.com", "subject", "body")
	require.Error(t, err)

	var mailErr *mailer.Error
	require.True(t, errs.As(err, &mailErr))
	assert.Equal(t, mailer.AuthFailed, mailErr.Kind)
	assert.Equal(
		t,
		"SMTP Authentication Error: Login failed for noreply@x.com. Check username/App Password. (Code: 535 Detail: 5.7.8 bad credentials)",
		err.Error(),
	)
}

func TestSMTPTransportFailure(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	l.Close()

	m := mailer.SMTP{
		Host:     "127.0.0.1",
		Port:     port,
		Username: "noreply@x.com",
		Password: "secret",
	}

	err = m.Send(context.Background(), "a@x.com", "subject", "body")
	require.Error(t, err)

	var mailErr *mailer.Error
	require.True(t, errs.As(err, &mailErr))
	assert.Equal(t, mailer.Transport, mailErr.Kind)
	assert.True(t, strings.HasPrefix(err.Error(), "Error sending email: "), err.Error())
}

func TestMessage(t *testing.T) {
	msg := string(mailer.Message("from@x.com", "to@x.com", "hello", "a\nb"))

	assert.True(t, strings.HasPrefix(msg, "From: from@x.com\r\nTo: to@x.com\r\nSubject: hello\r\n"))
	assert.True(t, strings.HasSuffix(msg, "\r\n\r\na\r\nb\r\n"))
}

func TestResendMissingAPIKey(t *testing.T) {
	m := mailer.NewResend("", "noreply@x.com")

	err := m.Send(context.Background(), "a@x.com", "subject", "body")
	require.Error(t, err)

	var mailErr *mailer.Error
	require.True(t, errs.As(err, &mailErr))
	assert.Equal(t, mailer.MissingCredentials, mailErr.Kind)
}

func TestLog(t *testing.T) {
	assert.NoError(t, mailer.Log{}.Send(context.Background(), "a@x.com", "subject", "body"))
}

func TestErrorKeepsCause(t *testing.T) {
	cause := errs.New("boom")
	err := &mailer.Error{Kind: mailer.Transport, Reason: "Error sending email: " + cause.Error(), Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Error sending email: boom", err.Error())
}
