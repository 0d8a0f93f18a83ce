// Package connect is used to initialize connections to thrid party services
package connect

import (
	"github.com/VinukaThejana/feedback/mailer"
	"github.com/VinukaThejana/feedback/store"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage/redis"
	"gorm.io/gorm"
)

// Connector contains various connections to thrid party serivces
type Connector struct {
	DB          *gorm.DB
	Ratelimiter *redis.Storage
	R           *Redis
	OTP         store.OTP
	Mailer      mailer.Mailer
}

// RatelimiterStorage returns the shared rate limiter storage, nil makes the
// limiter keep its counters in memory
func (c *Connector) RatelimiterStorage() fiber.Storage {
	if c.Ratelimiter == nil {
		return nil
	}

	return c.Ratelimiter
}
