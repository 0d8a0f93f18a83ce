package controllers

import (
	errs "errors"

	"github.com/VinukaThejana/feedback/errors"
	"github.com/VinukaThejana/feedback/schemas"
	"github.com/VinukaThejana/feedback/services"
	"github.com/VinukaThejana/feedback/validate"
	"github.com/VinukaThejana/go-utils/logger"
	"github.com/gofiber/fiber/v2"
)

// OTP struct contains all the OTP related controllers
type OTP struct {
	Service *services.OTP
}

// Generate is a function that is used to issue an OTP for the email in the payload and email it
func (o *OTP) Generate(c *fiber.Ctx) error {
	if !c.Is("json") {
		return errors.UnsupportedMediaType(c)
	}

	var payload schemas.GenerateOTP
	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c, errors.MsgEmailRequired)
	}
	if err := validate.New().Struct(payload); err != nil {
		return errors.BadRequest(c, errors.MsgEmailRequired)
	}

	_, err := o.Service.Generate(c.UserContext(), payload.Email)
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrValidation):
			return errors.BadRequest(c, errors.MsgEmailRequired)
		case errs.Is(err, errors.ErrDelivery):
			return errors.DeliveryFailed(c, err)
		case errs.Is(err, errors.ErrStorage):
			logger.Error(err)
			return errors.InternalServerErr(c, errors.MsgFailedToStoreOTP)
		default:
			logger.Error(err)
			return errors.InternalServerErr(c, "")
		}
	}

	return errors.Done(c, errors.MsgOTPSent)
}

// Verify is a function that is used to verify the OTP in the payload
func (o *OTP) Verify(c *fiber.Ctx) error {
	if !c.Is("json") {
		return errors.UnsupportedMediaType(c)
	}

	var payload schemas.VerifyOTP
	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
		return errors.BadRequest(c, errors.MsgEmailAndOTPRequired)
	}
	if err := validate.New().Struct(payload); err != nil {
		return errors.BadRequest(c, errors.MsgEmailAndOTPRequired)
	}

	err := o.Service.Verify(c.UserContext(), payload.Email, payload.OTP)
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrValidation):
			return errors.BadRequest(c, errors.MsgEmailAndOTPRequired)
		case errs.Is(err, errors.ErrInvalidOrExpired):
			return errors.InvalidOrExpired(c)
		default:
			logger.Error(err)
			return errors.InternalServerErr(c, errors.MsgFailedToVerifyOTP)
		}
	}

	return errors.Done(c, errors.MsgVerified)
}
