package connect

import (
	"context"

	"github.com/VinukaThejana/feedback/config"
	"github.com/VinukaThejana/go-utils/logger"
	"github.com/redis/go-redis/v9"
)

// Redis is used to manage all redis service connections, a client is nil
// when its url is not configured
type Redis struct {
	OTP    *redis.Client
	System *redis.Client
}

func connect(url string) *redis.Client {
	if url == "" {
		return nil
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		logger.Errorf(err)
	}

	r := redis.NewClient(opt)
	if err := r.Ping(context.Background()).Err(); err != nil {
		logger.Errorf(err)
	}

	return r
}

// InitRedis is a function to initialize all redis instances
func (c *Connector) InitRedis(env *config.Env) {
	c.R = &Redis{
		OTP:    connect(env.RedisOTPURL),
		System: connect(env.RedisSystemURL),
	}
}
