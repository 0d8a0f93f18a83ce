package controllers

import (
	"fmt"

	"github.com/VinukaThejana/feedback/errors"
	"github.com/VinukaThejana/feedback/services"
	"github.com/VinukaThejana/go-utils/logger"
	"github.com/gofiber/fiber/v2"
)

// Admin is a struct that contains all the admin related controllers
type Admin struct {
	Service *services.OTP
}

// DeleteExpiredOTPs is a fucntion that is used to delete the OTPs that can no longer be verified
func (a *Admin) DeleteExpiredOTPs(c *fiber.Ctx) error {
	n, err := a.Service.Purge(c.UserContext())
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c, "")
	}

	return errors.Done(c, fmt.Sprintf("%d expired OTPs deleted", n))
}
