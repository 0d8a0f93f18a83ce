// Package validate contains custom validation functions
package validate

import (
	"strings"
	"sync"
	"time"

	"github.com/VinukaThejana/feedback/enums"
	"github.com/go-playground/validator/v10"
)

var (
	once sync.Once
	v    *validator.Validate
)

// New is a function that is used to get the validator with the custom validations registered
func New() *validator.Validate {
	once.Do(func() {
		v = validator.New()
		v.RegisterValidation("identity", Identity)
		v.RegisterValidation("reminder_datetime", ReminderDatetime)
	})

	return v
}

// Identity is a custom validation function that is used to validate the identity
// an OTP is issued for, blank identities are rejected
func Identity(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// ReminderDatetime is a custom validation function that is used to validate
// the datetime a reminder is scheduled for
func ReminderDatetime(fl validator.FieldLevel) bool {
	_, err := time.Parse(enums.ReminderLayout, fl.Field().String())
	return err == nil
}
