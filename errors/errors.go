// Package errors contains the error kinds of the service and the http responses they map to
package errors

import (
	errs "errors"
	"fmt"

	"github.com/VinukaThejana/feedback/schemas"
	"github.com/gofiber/fiber/v2"
)

//revive:disable

var (
	ErrValidation          = fmt.Errorf("validation_error")
	ErrInvalidOrExpired    = fmt.Errorf("invalid_or_expired")
	ErrPastDue             = fmt.Errorf("past_due")
	ErrDelivery            = fmt.Errorf("delivery_failed")
	ErrStorage             = fmt.Errorf("storage_error")
	ErrRecordNotFound      = fmt.Errorf("record_not_found")
	ErrInternalServerError = fmt.Errorf("internal_server_error")
)

const (
	MsgRequestMustBeJSON    = "Request must be JSON"
	MsgEmailRequired        = "Email is required"
	MsgEmailAndOTPRequired  = "Email and OTP are required"
	MsgInvalidOrExpiredOTP  = "Invalid or expired OTP"
	MsgOTPSent              = "OTP sent successfully"
	MsgVerified             = "Verification successful"
	MsgFailedToStoreOTP     = "Failed to generate or store OTP"
	MsgFailedToVerifyOTP    = "Failed to verify OTP due to server error"
	MsgInternalServerError  = "Internal server error"
	MsgFailedToSendOTPEmail = "Failed to send OTP email: %s"
)

//revive:enable

// DeliveryError is returned when the mailer could not deliver an email,
// Reason is the human readable reason given by the mailer
type DeliveryError struct {
	Reason string
	Err    error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("%s: %s", ErrDelivery, e.Reason)
}

// Is makes DeliveryError match ErrDelivery
func (e *DeliveryError) Is(target error) bool {
	return target == ErrDelivery
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// NewDeliveryError is a function that is used to wrap a mailer error
func NewDeliveryError(err error) *DeliveryError {
	return &DeliveryError{
		Reason: err.Error(),
		Err:    err,
	}
}

// Storage is a function that is used to wrap an unexpected backing store failure
func Storage(err error) error {
	return fmt.Errorf("%w: %v", ErrStorage, err)
}

// Validation is a function that is used to create a validation error with the given detail
func Validation(detail string) error {
	return fmt.Errorf("%w: %s", ErrValidation, detail)
}

// Kind is a function that is used to get the error kind of the given error
func Kind(err error) error {
	for _, kind := range []error{
		ErrValidation,
		ErrInvalidOrExpired,
		ErrPastDue,
		ErrDelivery,
		ErrStorage,
		ErrRecordNotFound,
	} {
		if errs.Is(err, kind) {
			return kind
		}
	}

	return ErrInternalServerError
}

func respond(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(schemas.Res{
		Message: msg,
	})
}

// BadRequest responds with 400 and the given message
func BadRequest(c *fiber.Ctx, msg string) error {
	return respond(c, fiber.StatusBadRequest, msg)
}

// UnsupportedMediaType responds with 415 when the request body is not JSON
func UnsupportedMediaType(c *fiber.Ctx) error {
	return respond(c, fiber.StatusUnsupportedMediaType, MsgRequestMustBeJSON)
}

// InternalServerErr responds with 500 and the given message
func InternalServerErr(c *fiber.Ctx, msg string) error {
	if msg == "" {
		msg = MsgInternalServerError
	}
	return respond(c, fiber.StatusInternalServerError, msg)
}

// InvalidOrExpired responds with the generic OTP failure, wether the OTP was absent,
// mismatched or expired is never disclosed
func InvalidOrExpired(c *fiber.Ctx) error {
	return BadRequest(c, MsgInvalidOrExpiredOTP)
}

// DeliveryFailed responds with 500 and the reason given by the mailer
func DeliveryFailed(c *fiber.Ctx, err error) error {
	reason := err.Error()

	var deliveryErr *DeliveryError
	if errs.As(err, &deliveryErr) {
		reason = deliveryErr.Reason
	}

	return InternalServerErr(c, fmt.Sprintf(MsgFailedToSendOTPEmail, reason))
}

// Done responds with 200 and the given message
func Done(c *fiber.Ctx, msg string) error {
	return respond(c, fiber.StatusOK, msg)
}
