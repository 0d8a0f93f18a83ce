// Package scheduler contains the reminder scheduler and its dispatch loop
package scheduler

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/VinukaThejana/feedback/errors"
	"github.com/VinukaThejana/feedback/mailer"
	"github.com/VinukaThejana/feedback/metrics"
	"github.com/VinukaThejana/feedback/models"
	"github.com/VinukaThejana/go-utils/logger"
	"github.com/google/uuid"
)

// DefaultInterval is the time between two dispatch scans
const DefaultInterval = 60 * time.Second

// Reminder holds the pending reminders and dispatches the due ones through the mailer
type Reminder struct {
	Mailer mailer.Mailer
	// Interval is the time between two scans of the dispatch loop
	Interval time.Duration
	// MaxAttempts is the number of failed sends after which a reminder is marked
	// as failed, zero retries forever
	MaxAttempts int
	// Retention is the time sent and failed reminders are kept after their fire time,
	// zero keeps them for the lifetime of the process
	Retention time.Duration
	// SendTimeout bounds a single send, zero leaves it to the mailer
	SendTimeout time.Duration
	// Now is used as the clock, defaults to time.Now
	Now func() time.Time

	mu        sync.Mutex
	reminders []*models.Reminder

	// serializes scans so a reminder is never dispatched twice
	scanMu sync.Mutex
}

func (r *Reminder) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}

	return time.Now()
}

func (r *Reminder) interval() time.Duration {
	if r.Interval <= 0 {
		return DefaultInterval
	}

	return r.Interval
}

// Schedule is a function that is used to add a reminder that is sent at fireAt,
// fireAt must be strictly in the future
func (r *Reminder) Schedule(recipient string, fireAt time.Time, subject, message string) (*models.Reminder, error) {
	var missing []string
	for _, field := range []struct{ name, val string }{
		{"recipient", recipient},
		{"subject", subject},
		{"message", message},
	} {
		if strings.TrimSpace(field.val) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 || fireAt.IsZero() {
		return nil, errors.Validation(fmt.Sprintf("missing reminder details %v", missing))
	}

	if !fireAt.After(r.now()) {
		return nil, fmt.Errorf("%w: reminder time must be in the future", errors.ErrPastDue)
	}

	reminder := &models.Reminder{
		ID:        uuid.New(),
		Recipient: recipient,
		FireAt:    fireAt,
		Subject:   subject,
		Message:   message,
	}

	scheduled := *reminder

	r.mu.Lock()
	r.reminders = append(r.reminders, reminder)
	r.mu.Unlock()
	metrics.RemindersScheduled.Inc()

	return &scheduled, nil
}

// Run is the dispatch loop, it scans for due reminders every interval until the context is cancelled
func (r *Reminder) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval())
	defer ticker.Stop()

	logger.Log(fmt.Sprintf("Reminder dispatch loop started, scanning every %s", r.interval()))

	for {
		select {
		case <-ctx.Done():
			logger.Log("Reminder dispatch loop stopped")
			return
		case <-ticker.C:
			r.Scan(ctx)
		}
	}
}

// Scan is a function that is used to dispatch every due reminder that is not sent yet,
// it returns the number of reminders that were sent
func (r *Reminder) Scan(ctx context.Context) (sent int) {
	r.scanMu.Lock()
	defer r.scanMu.Unlock()

	now := r.now()

	r.mu.Lock()
	due := make([]*models.Reminder, 0)
	for _, reminder := range r.reminders {
		if reminder.Due(now) {
			due = append(due, reminder)
		}
	}
	r.mu.Unlock()

	for _, reminder := range due {
		if ctx.Err() != nil {
			return sent
		}

		r.mu.Lock()
		recipient, subject, message := reminder.Recipient, reminder.Subject, reminder.Message
		r.mu.Unlock()

		logger.Log(fmt.Sprintf("Processing reminder for %s for: %s", recipient, subject))
		err := r.send(ctx, recipient, subject, message)

		r.mu.Lock()
		reminder.Attempts++
		if err == nil {
			reminder.Sent = true
			reminder.LastError = ""
			sent++
		} else {
			reminder.LastError = err.Error()
			if r.MaxAttempts > 0 && reminder.Attempts >= r.MaxAttempts {
				reminder.Failed = true
			}
		}
		failed := reminder.Failed
		r.mu.Unlock()

		if err != nil {
			logger.ErrorWithMsg(err, fmt.Sprintf("Failed to send reminder email to %s", recipient))
			if failed {
				metrics.ReminderDispatches.WithLabelValues(metrics.ResultFailed).Inc()
				logger.Log(fmt.Sprintf("Giving up on the reminder for %s after %d attempts", recipient, r.MaxAttempts))
			} else {
				metrics.ReminderDispatches.WithLabelValues(metrics.ResultRetry).Inc()
			}
			continue
		}

		metrics.ReminderDispatches.WithLabelValues(metrics.ResultOK).Inc()
		logger.Log(fmt.Sprintf("Reminder sent to %s for: %s", recipient, subject))
	}

	r.prune(now)
	return sent
}

func (r *Reminder) send(ctx context.Context, recipient, subject, message string) error {
	if r.SendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.SendTimeout)
		defer cancel()
	}

	start := time.Now()
	defer func() {
		metrics.MailDuration.Observe(time.Since(start).Seconds())
	}()

	return r.Mailer.Send(ctx, recipient, subject, message)
}

func (r *Reminder) prune(now time.Time) {
	if r.Retention <= 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.reminders[:0]
	for _, reminder := range r.reminders {
		done := reminder.Sent || reminder.Failed
		if done && now.Sub(reminder.FireAt) > r.Retention {
			continue
		}
		kept = append(kept, reminder)
	}
	for i := len(kept); i < len(r.reminders); i++ {
		r.reminders[i] = nil
	}
	r.reminders = kept
}

// Snapshot returns a copy of the reminders
func (r *Reminder) Snapshot() []models.Reminder {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make([]models.Reminder, 0, len(r.reminders))
	for _, reminder := range r.reminders {
		snapshot = append(snapshot, *reminder)
	}

	return snapshot
}

// Len returns the number of reminders that are held
func (r *Reminder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.reminders)
}

// Pending returns the number of reminders that are neither sent nor failed
func (r *Reminder) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	pending := 0
	for _, reminder := range r.reminders {
		if !reminder.Sent && !reminder.Failed {
			pending++
		}
	}

	return pending
}
