package notifier

import (
	"storecare-backend/config"

	"gopkg.in/gomail.v2"
)

// Mailer delivers report emails over SMTP. With no SMTP_HOST configured it is
// disabled and callers fall back to logging the report body.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewMailerFromEnv() *Mailer {
	return &Mailer{
		host:     config.GetEnv("SMTP_HOST", ""),
		port:     config.GetEnvAsInt("SMTP_PORT", 587),
		username: config.GetEnv("SMTP_USERNAME", ""),
		password: config.GetEnv("SMTP_PASSWORD", ""),
		from:     config.GetEnv("SMTP_FROM", "reports@storecare.local"),
	}
}

func (m *Mailer) Enabled() bool {
	return m.host != ""
}

func (m *Mailer) Send(to []string, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.host, m.port, m.username, m.password)
	return d.DialAndSend(msg)
}
