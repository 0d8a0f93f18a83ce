package templates

import (
	"bytes"
	"html/template"

	"github.com/VinukaThejana/feedback/schemas"
)

var statusTmpl = template.Must(template.New("status").Parse(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>Student Notifications</title>
    <style>
      body {
        font-family: system-ui, -apple-system, "Helvetica Neue", Helvetica, Arial, sans-serif;
        margin: 40px auto;
        max-width: 640px;
      }
      form {
        display: flex;
        flex-direction: column;
        gap: 8px;
      }
      .status {
        border: 1px solid rgba(0, 0, 0, 0.1);
        border-radius: 0.25rem;
        padding: 12px;
        margin-bottom: 20px;
      }
    </style>
  </head>
  <body>
    <h1>Student Notifications</h1>
    {{if .EmailStatus}}<div class="status" id="email-status">{{.EmailStatus}}</div>{{end}}
    {{if .ReminderStatus}}<div class="status" id="reminder-status">{{.ReminderStatus}}</div>{{end}}
    <form method="post" action="/send_notification">
      <label>Student email <input type="email" name="student_email" /></label>
      <label>Email subject <input type="text" name="email_subject" /></label>
      <label>Email body <textarea name="email_body"></textarea></label>
      <label>Reminder at <input type="datetime-local" name="reminder_datetime" /></label>
      <label>Reminder subject <input type="text" name="reminder_subject" /></label>
      <label>Reminder message <textarea name="reminder_message"></textarea></label>
      <button type="submit">Send</button>
    </form>
    <footer>Reminders scheduled: <span id="reminder-count">{{.ReminderCount}}</span></footer>
  </body>
</html>
`))

// Page contains all the templates that are rendered as pages
type Page struct{}

// StatusTmpl is a function that is used to render the notification status page
func (Page) StatusTmpl(data schemas.StatusPage) (pageHTML string, err error) {
	var buf bytes.Buffer
	err = statusTmpl.Execute(&buf, data)
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}
