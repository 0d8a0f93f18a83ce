package store

import (
	"context"
	"sync"
	"time"

	"github.com/VinukaThejana/feedback/errors"
	"github.com/VinukaThejana/feedback/models"
)

// Memory keeps OTP records in the process memory, records are lost on restart
type Memory struct {
	mu      sync.RWMutex
	records map[string]models.OTP
}

// NewMemory is a function that is used to create an empty memory store
func NewMemory() *Memory {
	return &Memory{
		records: make(map[string]models.OTP),
	}
}

// Upsert the OTP record
func (m *Memory) Upsert(_ context.Context, otp models.OTP) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[otp.Email] = otp
	return nil
}

// Get the OTP record of the given email
func (m *Memory) Get(_ context.Context, email string) (*models.OTP, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	otp, ok := m.records[email]
	if !ok {
		return nil, errors.ErrRecordNotFound
	}

	return &otp, nil
}

// Delete the OTP record of the given email
func (m *Memory) Delete(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, email)
	return nil
}

// DeleteExpired removes the records issued at or before the given time
func (m *Memory) DeleteExpired(_ context.Context, before time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for email, otp := range m.records {
		if !otp.IssuedAt.After(before) {
			delete(m.records, email)
			n++
		}
	}

	return n, nil
}

// Ping always succeeds
func (m *Memory) Ping(_ context.Context) error {
	return nil
}

// Len returns the number of live records
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.records)
}
