// Feedback is the OTP and notification backend of the student feedback platform
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VinukaThejana/feedback/config"
	"github.com/VinukaThejana/feedback/connect"
	"github.com/VinukaThejana/feedback/controllers"
	"github.com/VinukaThejana/feedback/metrics"
	"github.com/VinukaThejana/feedback/scheduler"
	"github.com/VinukaThejana/feedback/services"
	"github.com/VinukaThejana/feedback/utils"
	"github.com/VinukaThejana/go-utils/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
)

var (
	env  config.Env
	conn connect.Connector
)

func init() {
	flags, err := utils.ParseFlags(os.Args[1:])
	if err != nil {
		logger.Errorf(err)
	}

	if flags.EnvPath != "" {
		env.Load(flags.EnvPath)
	} else {
		env.Load()
	}

	conn.InitDatabase(&env)
	utils.CheckForMigrations(&conn, &env, flags)

	conn.InitRatelimiter(&env)
	conn.InitRedis(&env)

	if err := conn.InitOTPStore(&env); err != nil {
		logger.Errorf(err)
	}
	if err := conn.InitMailer(&env); err != nil {
		logger.Errorf(err)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	otpS := services.OTP{
		Store:    conn.OTP,
		Mailer:   conn.Mailer,
		Validity: env.OTPValidity,
	}
	reminderS := scheduler.Reminder{
		Mailer:      conn.Mailer,
		Interval:    env.ReminderInterval,
		MaxAttempts: env.ReminderMaxAttempts,
		Retention:   env.ReminderRetention,
		SendTimeout: env.MailTimeout,
	}
	go reminderS.Run(ctx)

	otpC := controllers.OTP{
		Service: &otpS,
	}
	notificationC := controllers.Notification{
		Scheduler:   &reminderS,
		Mailer:      conn.Mailer,
		MailTimeout: env.MailTimeout,
	}
	systemC := controllers.System{
		Conn:      &conn,
		Env:       &env,
		Scheduler: &reminderS,
	}
	adminC := controllers.Admin{
		Service: &otpS,
	}

	app := fiber.New()
	if config.GetDevEnv(&env) == config.Dev {
		app.Use(fiberLogger.New())
	}

	app.Use(cors.New(cors.Config{
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowOrigins:     env.FrontendHostname,
		AllowCredentials: env.FrontendHostname != "*",
		AllowMethods:     "*",
	}))

	if env.RateLimitMax > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        env.RateLimitMax,
			Expiration: 1 * time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c *fiber.Ctx) error {
				return c.SendStatus(fiber.StatusTooManyRequests)
			},
			SkipFailedRequests:     false,
			SkipSuccessfulRequests: false,
			LimiterMiddleware:      limiter.SlidingWindow{},
			Storage:                conn.RatelimiterStorage(),
		}))
	}

	app.Get("/", notificationC.Index)
	app.Post("/send_notification", notificationC.Send)
	app.Get("/reminders", notificationC.List)

	app.Post("/generate-otp", otpC.Generate)
	app.Post("/verify-otp", otpC.Verify)

	app.Get("/health", systemC.Health)

	app.Route("/admin", func(router fiber.Router) {
		router.Delete("/otps/expired", adminC.DeleteExpiredOTPs)
	})

	app.Route("/monitor", func(router fiber.Router) {
		router.Get("/metrics", monitor.New(monitor.Config{
			Title: "Monitor Feedback",
		}))
		router.Get("/prometheus", metrics.Handler())
	})

	go func() {
		<-ctx.Done()
		logger.Log("Shutting down ...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Error(err)
		}
	}()

	if err := app.Listen(fmt.Sprintf(":%s", env.Port)); err != nil {
		logger.Errorf(err)
	}
}
