package store

import (
	"context"
	"encoding/json"
	errs "errors"
	"fmt"
	"time"

	"github.com/VinukaThejana/feedback/errors"
	"github.com/VinukaThejana/feedback/models"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "otp:"

// Redis keeps OTP records in redis, every record expires after TTL so stale
// records are removed even if they are never verified
type Redis struct {
	Client *redis.Client
	TTL    time.Duration
}

func key(email string) string {
	return redisKeyPrefix + email
}

// Upsert the OTP record
func (r *Redis) Upsert(ctx context.Context, otp models.OTP) error {
	val, err := json.Marshal(otp)
	if err != nil {
		return err
	}

	return r.Client.Set(ctx, key(otp.Email), val, r.TTL).Err()
}

// Get the OTP record of the given email
func (r *Redis) Get(ctx context.Context, email string) (*models.OTP, error) {
	val, err := r.Client.Get(ctx, key(email)).Bytes()
	if err != nil {
		if errs.Is(err, redis.Nil) {
			return nil, errors.ErrRecordNotFound
		}

		return nil, err
	}

	var otp models.OTP
	if err = json.Unmarshal(val, &otp); err != nil {
		return nil, fmt.Errorf("corrupt otp record for %s: %w", email, err)
	}

	return &otp, nil
}

// Delete the OTP record of the given email
func (r *Redis) Delete(ctx context.Context, email string) error {
	return r.Client.Del(ctx, key(email)).Err()
}

// DeleteExpired is a no-op, redis evicts the records once their TTL runs out
func (r *Redis) DeleteExpired(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

// Ping the redis instance
func (r *Redis) Ping(ctx context.Context) error {
	return r.Client.Ping(ctx).Err()
}
