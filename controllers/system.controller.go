package controllers

import (
	"context"
	"strconv"
	"time"

	"github.com/VinukaThejana/feedback/config"
	"github.com/VinukaThejana/feedback/connect"
	"github.com/VinukaThejana/feedback/enums"
	"github.com/VinukaThejana/feedback/scheduler"
	"github.com/VinukaThejana/feedback/schemas"
	"github.com/VinukaThejana/go-utils/logger"
	"github.com/gofiber/fiber/v2"
)

const healthTimeout = 2 * time.Second

// System is a struct that contains system level controllers
type System struct {
	Conn      *connect.Connector
	Env       *config.Env
	Scheduler *scheduler.Reminder
}

// Health is a function that is notifys the system health, the OTP store must be
// reachable and the health flag, when it is set in the system redis, must be true
func (s *System) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
	defer cancel()

	res := schemas.Health{
		OTPStore:         s.Env.OTPStore,
		Reminders:        s.Scheduler.Len(),
		PendingReminders: s.Scheduler.Pending(),
	}

	if err := s.Conn.OTP.Ping(ctx); err != nil {
		logger.ErrorWithMsg(err, "OTP store is not reachable")
	} else {
		res.OTPStoreHealthy = true
	}
	res.Health = res.OTPStoreHealthy

	if s.Conn.R != nil && s.Conn.R.System != nil {
		if status := s.Conn.R.System.Get(ctx, enums.SysHealth).Val(); status != "" {
			health, err := strconv.ParseBool(status)
			res.Health = res.Health && err == nil && health
		}
		res.Message = s.Conn.R.System.Get(ctx, enums.SysHealthMsg).Val()
	}

	if !res.Health {
		return c.Status(fiber.StatusServiceUnavailable).JSON(res)
	}

	return c.Status(fiber.StatusOK).JSON(res)
}
