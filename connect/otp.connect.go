package connect

import (
	"fmt"

	"github.com/VinukaThejana/feedback/config"
	"github.com/VinukaThejana/feedback/enums"
	"github.com/VinukaThejana/feedback/store"
)

// InitOTPStore is a function that is used to select the OTP store from the OTP_STORE
// configuration, the backing connection must be initialized before
func (c *Connector) InitOTPStore(env *config.Env) error {
	switch env.OTPStore {
	case enums.StorePostgres:
		if c.DB == nil {
			return fmt.Errorf("the %s OTP store requires DATABASE_URL", env.OTPStore)
		}
		c.OTP = &store.Postgres{DB: c.DB}
	case enums.StoreRedis:
		if c.R == nil || c.R.OTP == nil {
			return fmt.Errorf("the %s OTP store requires REDIS_OTP_URL", env.OTPStore)
		}
		c.OTP = &store.Redis{Client: c.R.OTP, TTL: env.OTPValidity}
	case enums.StoreMemory:
		c.OTP = store.NewMemory()
	default:
		return fmt.Errorf("unknown OTP store %q", env.OTPStore)
	}

	return nil
}
