// Package metrics contains the prometheus collectors of the service
package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result label values
const (
	ResultOK             = "ok"
	ResultInvalid        = "invalid_or_expired"
	ResultDeliveryFailed = "delivery_failed"
	ResultStorageError   = "storage_error"
	ResultRetry          = "retry"
	ResultFailed         = "failed"
)

var (
	// OTPIssued counts the OTP generations by result
	OTPIssued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_otp_issued_total",
			Help: "Total number of OTPs issued",
		},
		[]string{"result"},
	)

	// OTPVerifications counts the OTP verifications by result
	OTPVerifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_otp_verifications_total",
			Help: "Total number of OTP verifications",
		},
		[]string{"result"},
	)

	// RemindersScheduled counts the reminders accepted by the scheduler
	RemindersScheduled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "feedback_reminders_scheduled_total",
			Help: "Total number of reminders scheduled",
		},
	)

	// ReminderDispatches counts the reminder send attempts by result
	ReminderDispatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedback_reminder_dispatches_total",
			Help: "Total number of reminder send attempts",
		},
		[]string{"result"},
	)

	// MailDuration observes how long the mailer takes to send an email
	MailDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "feedback_mail_duration_seconds",
			Help:    "Duration of email sends",
			Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10, 30},
		},
	)
)

// Handler is the fiber handler that exposes the collectors
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
