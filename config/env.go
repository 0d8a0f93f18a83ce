package config

import (
	"time"

	"github.com/VinukaThejana/go-utils/logger"
	"github.com/spf13/viper"
)

// Env is structure containing env variables
type Env struct {
	DevEnv                   string        `mapstructure:"DEV_ENV" validate:"required,oneof=DEV PROD TEST"`
	Port                     string        `mapstructure:"PORT" validate:"required,numeric"`
	FrontendHostname         string        `mapstructure:"FRONTEND_HOSTNAME" validate:"required"`
	OTPStore                 string        `mapstructure:"OTP_STORE" validate:"required,oneof=postgres redis memory"`
	DSN                      string        `mapstructure:"DATABASE_URL" validate:"required_if=OTPStore postgres"`
	RedisOTPURL              string        `mapstructure:"REDIS_OTP_URL" validate:"required_if=OTPStore redis,omitempty,uri"`
	RedisSystemURL           string        `mapstructure:"REDIS_SYSTEM_URL" validate:"omitempty,uri"`
	RedisRatelimiterHost     string        `mapstructure:"REDIS_RATELIMITER_HOST"`
	RedisRatelimiterUsername string        `mapstructure:"REDIS_RATELIMITER_USERNAME"`
	RedisRatelimiterPassword string        `mapstructure:"REDIS_RATELIMITER_PASSWORD"`
	RedisRatelimiterPort     int           `mapstructure:"REDIS_RATELIMITER_PORT" validate:"required_with=RedisRatelimiterHost"`
	RateLimitMax             int           `mapstructure:"RATE_LIMIT_MAX" validate:"gte=0"`
	Mailer                   string        `mapstructure:"MAILER" validate:"required,oneof=smtp resend log"`
	SMTPServer               string        `mapstructure:"SMTP_SERVER"`
	SMTPPort                 int           `mapstructure:"SMTP_PORT" validate:"required_if=Mailer smtp"`
	SMTPUsername             string        `mapstructure:"SMTP_USERNAME"`
	SMTPPassword             string        `mapstructure:"SMTP_PASSWORD"`
	SMTPUseTLS               bool          `mapstructure:"SMTP_USE_TLS"`
	SenderEmail              string        `mapstructure:"SENDER_EMAIL"`
	ResendAPIKey             string        `mapstructure:"RESEND_API_KEY" validate:"required_if=Mailer resend"`
	OTPValidity              time.Duration `mapstructure:"OTP_VALIDITY" validate:"gt=0"`
	MailTimeout              time.Duration `mapstructure:"MAIL_TIMEOUT" validate:"gte=0"`
	ReminderInterval         time.Duration `mapstructure:"REMINDER_INTERVAL" validate:"gt=0"`
	ReminderMaxAttempts      int           `mapstructure:"REMINDER_MAX_ATTEMPTS" validate:"gte=0"`
	ReminderRetention        time.Duration `mapstructure:"REMINDER_RETENTION" validate:"gte=0"`
}

// defaults are registered for every key so that AutomaticEnv picks up
// variables even when no .env file is present
var defaults = map[string]interface{}{
	"DEV_ENV":                    string(Dev),
	"PORT":                       "8080",
	"FRONTEND_HOSTNAME":          "*",
	"OTP_STORE":                  "postgres",
	"DATABASE_URL":               "",
	"REDIS_OTP_URL":              "",
	"REDIS_SYSTEM_URL":           "",
	"REDIS_RATELIMITER_HOST":     "",
	"REDIS_RATELIMITER_USERNAME": "",
	"REDIS_RATELIMITER_PASSWORD": "",
	"REDIS_RATELIMITER_PORT":     0,
	"RATE_LIMIT_MAX":             100,
	"MAILER":                     "smtp",
	"SMTP_SERVER":                "smtp.gmail.com",
	"SMTP_PORT":                  587,
	"SMTP_USERNAME":              "",
	"SMTP_PASSWORD":              "",
	"SMTP_USE_TLS":               true,
	"SENDER_EMAIL":               "",
	"RESEND_API_KEY":             "",
	"OTP_VALIDITY":               5 * time.Minute,
	"MAIL_TIMEOUT":               30 * time.Second,
	"REMINDER_INTERVAL":          60 * time.Second,
	"REMINDER_MAX_ATTEMPTS":      0,
	"REMINDER_RETENTION":         time.Duration(0),
}

// Load is a function that is used to load the env variables from the .env file
// (looked up in the given directories) and the enviroment
func (e *Env) Load(paths ...string) {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	for _, path := range paths {
		v.AddConfigPath(path)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.Log("No .env file found, using the enviroment")
		} else {
			logger.Error(err)
		}
	}

	if err := v.Unmarshal(e); err != nil {
		logger.Errorf(err)
	}

	logger.Validatef(e)
}

// SenderAddress is the address emails are sent from, falls back to the SMTP username
func (e *Env) SenderAddress() string {
	if e.SenderEmail != "" {
		return e.SenderEmail
	}

	return e.SMTPUsername
}
