package connect

import (
	"fmt"

	"github.com/VinukaThejana/feedback/config"
	"github.com/VinukaThejana/feedback/enums"
	"github.com/VinukaThejana/feedback/mailer"
)

// InitMailer is a function that is used to select the mailer from the MAILER configuration
func (c *Connector) InitMailer(env *config.Env) error {
	switch env.Mailer {
	case enums.MailerSMTP:
		c.Mailer = &mailer.SMTP{
			Host:     env.SMTPServer,
			Port:     env.SMTPPort,
			Username: env.SMTPUsername,
			Password: env.SMTPPassword,
			From:     env.SenderAddress(),
			UseTLS:   env.SMTPUseTLS,
		}
	case enums.MailerResend:
		c.Mailer = mailer.NewResend(env.ResendAPIKey, env.SenderAddress())
	case enums.MailerLog:
		c.Mailer = mailer.Log{}
	default:
		return fmt.Errorf("unknown mailer %q", env.Mailer)
	}

	return nil
}
