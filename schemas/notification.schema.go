package schemas

import (
	"time"

	"github.com/VinukaThejana/feedback/models"
	"github.com/google/uuid"
)

// Notification is the form that is submitted to send an email and/or set a reminder
type Notification struct {
	StudentEmail     string `form:"student_email"`
	EmailSubject     string `form:"email_subject"`
	EmailBody        string `form:"email_body"`
	ReminderDatetime string `form:"reminder_datetime"`
	ReminderSubject  string `form:"reminder_subject"`
	ReminderMessage  string `form:"reminder_message"`
}

// WantsEmail reports wether an immediate email was requested with all the details
func (n *Notification) WantsEmail() bool {
	return n.StudentEmail != "" && n.EmailSubject != "" && n.EmailBody != ""
}

// WantsReminder reports wether a reminder was requested with all the details
func (n *Notification) WantsReminder() bool {
	return n.StudentEmail != "" && n.ReminderDatetime != "" && n.ReminderSubject != "" && n.ReminderMessage != ""
}

// StatusPage is the data that is rendered on the notification status page
type StatusPage struct {
	EmailStatus    string
	ReminderStatus string
	ReminderCount  int
}

// Reminder is the user freindly view of a reminder
type Reminder struct {
	ID        uuid.UUID `json:"id"`
	Recipient string    `json:"recipient"`
	FireAt    time.Time `json:"fire_at"`
	Subject   string    `json:"subject"`
	Sent      bool      `json:"sent"`
	Failed    bool      `json:"failed"`
	Attempts  int       `json:"attempts"`
	LastError string    `json:"last_error,omitempty"`
}

// FilterReminder is a function that is used to filter the reminder model to a user freindly format
func FilterReminder(reminder models.Reminder) Reminder {
	return Reminder{
		ID:        reminder.ID,
		Recipient: reminder.Recipient,
		FireAt:    reminder.FireAt,
		Subject:   reminder.Subject,
		Sent:      reminder.Sent,
		Failed:    reminder.Failed,
		Attempts:  reminder.Attempts,
		LastError: reminder.LastError,
	}
}

// Health is the health report of the service
type Health struct {
	Health           bool   `json:"health"`
	Message          string `json:"message,omitempty"`
	OTPStore         string `json:"otp_store"`
	OTPStoreHealthy  bool   `json:"otp_store_healthy"`
	Reminders        int    `json:"reminders"`
	PendingReminders int    `json:"pending_reminders"`
}
