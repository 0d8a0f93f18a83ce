// Package store contains the OTP store implementations
package store

import (
	"context"
	"time"

	"github.com/VinukaThejana/feedback/models"
)

// OTP is a keyed store of OTP records, the email is the key
type OTP interface {
	// Upsert writes the record replacing any record of the same email
	Upsert(ctx context.Context, otp models.OTP) error
	// Get returns errors.ErrRecordNotFound when there is no record for the email
	Get(ctx context.Context, email string) (*models.OTP, error)
	// Delete removes the record of the email, deleting a missing record is not an error
	Delete(ctx context.Context, email string) error
	// DeleteExpired removes the records issued at or before the given time
	// and returns how many were removed
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
	// Ping checks wether the store is reachable
	Ping(ctx context.Context) error
}
