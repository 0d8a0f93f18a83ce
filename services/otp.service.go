// Package services contains the business logic of the service
package services

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	errs "errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/VinukaThejana/feedback/errors"
	"github.com/VinukaThejana/feedback/mailer"
	"github.com/VinukaThejana/feedback/metrics"
	"github.com/VinukaThejana/feedback/models"
	"github.com/VinukaThejana/feedback/store"
	"github.com/VinukaThejana/feedback/templates"
	"github.com/VinukaThejana/go-utils/logger"
)

const (
	// DefaultOTPValidity is the time an OTP can be verified after it is issued
	DefaultOTPValidity = 5 * time.Minute

	otpMin   = 100000
	otpRange = 900000
)

// OTP contains the OTP lifecycle, generation, verification and invalidation
type OTP struct {
	Store    store.OTP
	Mailer   mailer.Mailer
	Validity time.Duration
	// Now is used as the clock, defaults to time.Now
	Now func() time.Time
}

func (o *OTP) now() time.Time {
	if o.Now != nil {
		return o.Now().UTC()
	}

	return time.Now().UTC()
}

func (o *OTP) validity() time.Duration {
	if o.Validity <= 0 {
		return DefaultOTPValidity
	}

	return o.Validity
}

// GenerateCode is a function that is used to generate a 6 digit code
// uniformly distributed over 100000-999999
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpRange))
	if err != nil {
		return "", err
	}

	return fmt.Sprint(otpMin + n.Int64()), nil
}

// Generate is a function that is used to issue a new OTP for the given email and deliver it,
// any OTP previously issued for the email is replaced.
// When the delivery fails the record stays stored and a DeliveryError is returned with it
func (o *OTP) Generate(ctx context.Context, email string) (*models.OTP, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, errors.Validation("email is required")
	}

	code, err := GenerateCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate the otp: %w", err)
	}

	otp := models.OTP{
		Email:    email,
		Code:     code,
		IssuedAt: o.now(),
	}
	if err = o.Store.Upsert(ctx, otp); err != nil {
		metrics.OTPIssued.WithLabelValues(metrics.ResultStorageError).Inc()
		return nil, errors.Storage(err)
	}

	body, err := templates.Email{}.OTPTmpl(code, o.validity())
	if err != nil {
		return &otp, fmt.Errorf("failed to render the otp email: %w", err)
	}

	start := time.Now()
	err = o.Mailer.Send(ctx, email, templates.OTPSubject, body)
	metrics.MailDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.OTPIssued.WithLabelValues(metrics.ResultDeliveryFailed).Inc()
		logger.ErrorWithMsg(err, fmt.Sprintf("Failed to deliver the OTP to %s", email))
		return &otp, errors.NewDeliveryError(err)
	}

	metrics.OTPIssued.WithLabelValues(metrics.ResultOK).Inc()
	logger.Log(fmt.Sprintf("OTP issued for %s", email))
	return &otp, nil
}

// Verify is a function that is used to verify the submitted code against the code issued
// for the email. Absent, expired and mismatched codes all fail with ErrInvalidOrExpired.
// A verified code is deleted so it can only be used once
func (o *OTP) Verify(ctx context.Context, email, code string) error {
	email = strings.TrimSpace(email)
	if email == "" || code == "" {
		return errors.Validation("email and otp are required")
	}

	otp, err := o.Store.Get(ctx, email)
	if err != nil {
		if errs.Is(err, errors.ErrRecordNotFound) {
			metrics.OTPVerifications.WithLabelValues(metrics.ResultInvalid).Inc()
			return errors.ErrInvalidOrExpired
		}

		metrics.OTPVerifications.WithLabelValues(metrics.ResultStorageError).Inc()
		return errors.Storage(err)
	}

	if otp.Expired(o.now(), o.validity()) {
		if err = o.Store.Delete(ctx, email); err != nil {
			logger.ErrorWithMsg(err, fmt.Sprintf("Failed to delete the expired OTP of %s", email))
		}
		metrics.OTPVerifications.WithLabelValues(metrics.ResultInvalid).Inc()
		return errors.ErrInvalidOrExpired
	}

	if subtle.ConstantTimeCompare([]byte(code), []byte(otp.Code)) != 1 {
		metrics.OTPVerifications.WithLabelValues(metrics.ResultInvalid).Inc()
		return errors.ErrInvalidOrExpired
	}

	// a failed delete leaves the code replayable until it expires, the caller still
	// gets the verification result
	if err = o.Store.Delete(ctx, email); err != nil {
		logger.ErrorWithMsg(err, fmt.Sprintf("Failed to delete the used OTP of %s", email))
	}

	metrics.OTPVerifications.WithLabelValues(metrics.ResultOK).Inc()
	logger.Log(fmt.Sprintf("OTP verified for %s", email))
	return nil
}

// Purge is a function that is used to remove the records that can no longer be verified
func (o *OTP) Purge(ctx context.Context) (int64, error) {
	n, err := o.Store.DeleteExpired(ctx, o.now().Add(-o.validity()))
	if err != nil {
		return 0, errors.Storage(err)
	}

	return n, nil
}
