package mailer

import (
	"context"
	"fmt"

	"github.com/VinukaThejana/go-utils/logger"
)

// Log only logs the emails, it is used in development where no mail server is available
type Log struct{}

// Send logs the recipient and the subject, the body is never logged as it may contain an OTP
func (Log) Send(_ context.Context, recipient, subject, _ string) error {
	logger.Log(fmt.Sprintf("[ mailer ] : %q to %s", subject, recipient))
	return nil
}
