package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Notifier sends account notifications to recruiters. Send failures
// must never fail the triggering request; callers log and move on.
type Notifier interface {
	SendCredentials(to, fullName, recruiterID string) error
	SendPasswordChanged(to, fullName string) error
}

type Config struct {
	SMTPHost string
	SMTPPort int
	Username string
	Password string
	From     string
	FromName string
}

// SMTPNotifier delivers notifications over SMTP.
type SMTPNotifier struct {
	cfg Config
}

func NewSMTPNotifier(cfg Config) (*SMTPNotifier, error) {
	if cfg.SMTPHost == "" || cfg.From == "" {
		return nil, fmt.Errorf("smtp host and from address are required")
	}
	return &SMTPNotifier{cfg: cfg}, nil
}

func (n *SMTPNotifier) SendCredentials(to, fullName, recruiterID string) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nYour RecruitPro account is ready.\nRecruiter ID: %s\n\nLog in and change your password on first use.",
		fullName, recruiterID,
	)
	return n.send(to, "Your RecruitPro account", body)
}

func (n *SMTPNotifier) SendPasswordChanged(to, fullName string) error {
	body := fmt.Sprintf(
		"Hello %s,\n\nYour RecruitPro password was just changed. If this was not you, contact your administrator.",
		fullName,
	)
	return n.send(to, "RecruitPro password changed", body)
}

func (n *SMTPNotifier) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.cfg.From, n.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(n.cfg.SMTPHost, n.cfg.SMTPPort, n.cfg.Username, n.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}

// NoopNotifier is used when email is disabled and in tests.
type NoopNotifier struct{}

func (NoopNotifier) SendCredentials(to, fullName, recruiterID string) error { return nil }
func (NoopNotifier) SendPasswordChanged(to, fullName string) error          { return nil }
