package models

import "time"

// OTP is a one time password that is issued for an email address,
// there is at most one record per email
type OTP struct {
	Email    string    `gorm:"type:varchar(255);primary_key" json:"email"`
	Code     string    `gorm:"column:otp;type:varchar(6);not null" json:"otp"`
	IssuedAt time.Time `gorm:"column:created_at;type:timestamptz;not null" json:"created_at"`
}

// TableName is the name of the table the OTP records are kept in
func (OTP) TableName() string {
	return "mfa_otps"
}

// Expired reports wether the OTP is older than the given validity window
func (o *OTP) Expired(now time.Time, validity time.Duration) bool {
	return now.Sub(o.IssuedAt) >= validity
}
