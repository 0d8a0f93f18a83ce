package models

import (
	"time"

	"github.com/google/uuid"
)

// Reminder is an email that is sent once its fire time has passed
type Reminder struct {
	ID        uuid.UUID `json:"id"`
	Recipient string    `json:"recipient"`
	FireAt    time.Time `json:"fire_at"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Sent      bool      `json:"sent"`
	Failed    bool      `json:"failed"`
	Attempts  int       `json:"attempts"`
	LastError string    `json:"last_error,omitempty"`
}

// Due reports wether the reminder should be dispatched at the given time
func (r *Reminder) Due(now time.Time) bool {
	return !r.Sent && !r.Failed && !r.FireAt.After(now)
}
