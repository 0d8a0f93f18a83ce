package schemas

// GenerateOTP is the payload of the generate OTP request
type GenerateOTP struct {
	Email string `json:"email" validate:"identity"`
}

// VerifyOTP is the payload of the verify OTP request
type VerifyOTP struct {
	Email string `json:"email" validate:"identity"`
	OTP   string `json:"otp" validate:"required"`
}
