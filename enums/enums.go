// Package enums contains enums
package enums

const (
	// SysHealth -> denotes the health status of the system
	SysHealth = "health"
	// SysHealthMsg -> denotes the custom health status message of the system
	SysHealthMsg = "system_message"

	// StorePostgres -> OTP records are kept in the relational database
	StorePostgres = "postgres"
	// StoreRedis -> OTP records are kept in redis with a TTL
	StoreRedis = "redis"
	// StoreMemory -> OTP records are kept in the process memory and lost on restart
	StoreMemory = "memory"

	// MailerSMTP -> emails are sent through an SMTP relay
	MailerSMTP = "smtp"
	// MailerResend -> emails are sent through the Resend API
	MailerResend = "resend"
	// MailerLog -> emails are only logged, used for development
	MailerLog = "log"

	// ReminderLayout -> the layout of the reminder_datetime form field
	ReminderLayout = "2006-01-02T15:04"
)
