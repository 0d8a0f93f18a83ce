package controllers

import (
	"context"
	errs "errors"
	"fmt"
	"time"

	"github.com/VinukaThejana/feedback/enums"
	"github.com/VinukaThejana/feedback/errors"
	"github.com/VinukaThejana/feedback/mailer"
	"github.com/VinukaThejana/feedback/scheduler"
	"github.com/VinukaThejana/feedback/schemas"
	"github.com/VinukaThejana/feedback/templates"
	"github.com/VinukaThejana/feedback/validate"
	"github.com/VinukaThejana/go-utils/logger"
	"github.com/gofiber/fiber/v2"
)

const (
	statusNoEmail          = "No email requested or missing details."
	statusEmailSent        = "Email sent successfully to %s."
	statusEmailFailed      = "Failed to send email to %s: %s"
	statusNoReminder       = "No reminder requested or missing details."
	statusReminderSet      = "Reminder set for %s at %s for: %s"
	statusReminderPastDue  = "Reminder time must be in the future."
	statusReminderBadInput = "Invalid reminder datetime format provided."

	reminderStatusLayout = "2006-01-02 15:04:05"
)

// Notification struct contains the controllers that send emails and set reminders
type Notification struct {
	Scheduler   *scheduler.Reminder
	Mailer      mailer.Mailer
	MailTimeout time.Duration
	// Location the reminder_datetime is interpreted in, defaults to time.Local
	Location *time.Location
}

func (n *Notification) render(c *fiber.Ctx, data schemas.StatusPage) error {
	data.ReminderCount = n.Scheduler.Len()

	page, err := templates.Page{}.StatusTmpl(data)
	if err != nil {
		logger.Error(err)
		return errors.InternalServerErr(c, "")
	}

	c.Type("html")
	return c.Status(fiber.StatusOK).SendString(page)
}

// Index is a function that is used to render the notification page
func (n *Notification) Index(c *fiber.Ctx) error {
	return n.render(c, schemas.StatusPage{})
}

// Send is a function that is used to send the immediate email and set the reminder
// requested in the form, the outcome of both is reported independently
func (n *Notification) Send(c *fiber.Ctx) error {
	var payload schemas.Notification
	if err := c.BodyParser(&payload); err != nil {
		logger.Error(err)
	}

	return n.render(c, schemas.StatusPage{
		EmailStatus:    n.sendEmail(c.UserContext(), &payload),
		ReminderStatus: n.setReminder(&payload),
	})
}

func (n *Notification) sendEmail(ctx context.Context, payload *schemas.Notification) string {
	if !payload.WantsEmail() {
		return statusNoEmail
	}

	if n.MailTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.MailTimeout)
		defer cancel()
	}

	err := n.Mailer.Send(ctx, payload.StudentEmail, payload.EmailSubject, payload.EmailBody)
	if err != nil {
		logger.ErrorWithMsg(err, fmt.Sprintf("Failed to send email to %s", payload.StudentEmail))
		return fmt.Sprintf(statusEmailFailed, payload.StudentEmail, err.Error())
	}

	return fmt.Sprintf(statusEmailSent, payload.StudentEmail)
}

func (n *Notification) setReminder(payload *schemas.Notification) string {
	if !payload.WantsReminder() {
		return statusNoReminder
	}

	if err := validate.New().Var(payload.ReminderDatetime, "reminder_datetime"); err != nil {
		return statusReminderBadInput
	}

	loc := n.Location
	if loc == nil {
		loc = time.Local
	}
	fireAt, err := time.ParseInLocation(enums.ReminderLayout, payload.ReminderDatetime, loc)
	if err != nil {
		return statusReminderBadInput
	}

	reminder, err := n.Scheduler.Schedule(payload.StudentEmail, fireAt, payload.ReminderSubject, payload.ReminderMessage)
	if err != nil {
		if errs.Is(err, errors.ErrPastDue) {
			return statusReminderPastDue
		}

		logger.Error(err)
		return statusNoReminder
	}

	status := fmt.Sprintf(statusReminderSet, reminder.Recipient, reminder.FireAt.Format(reminderStatusLayout), reminder.Subject)
	logger.Log(status)
	return status
}

// List is a function that is used to list the reminders the scheduler holds
func (n *Notification) List(c *fiber.Ctx) error {
	snapshot := n.Scheduler.Snapshot()

	reminders := make([]schemas.Reminder, 0, len(snapshot))
	for _, reminder := range snapshot {
		reminders = append(reminders, schemas.FilterReminder(reminder))
	}

	return c.Status(fiber.StatusOK).JSON(reminders)
}
