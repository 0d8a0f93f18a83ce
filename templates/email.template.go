// Package templates contains the email and page templates
package templates

import (
	"bytes"
	"fmt"
	"text/template"
	"time"
)

// OTPSubject is the subject of the email carrying the OTP
const OTPSubject = "Your MFA OTP Code"

var otpTmpl = template.Must(template.New("otp").Parse(
	"Your One-Time Password (OTP) for login is: {{.Code}}\nIt is valid for {{.Validity}}.",
))

// Email contains all the templates that are related to email
type Email struct{}

// OTPTmpl is a function that is used to get the plain text body of the email carrying the OTP
func (Email) OTPTmpl(code string, validity time.Duration) (body string, err error) {
	var buf bytes.Buffer
	err = otpTmpl.Execute(&buf, struct {
		Code     string
		Validity string
	}{
		Code:     code,
		Validity: humanize(validity),
	})
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

func humanize(d time.Duration) string {
	switch {
	case d%time.Minute == 0:
		return plural(int(d/time.Minute), "minute")
	case d%time.Second == 0:
		return plural(int(d/time.Second), "second")
	default:
		return d.String()
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}

	return fmt.Sprintf("%d %ss", n, unit)
}
