package email

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

// Service sends transactional mail. All sends are best-effort; callers log
// failures and move on.
type Service interface {
	SendBookingConfirmation(ctx context.Context, to, name string, date time.Time) error
	SendWelcome(ctx context.Context, to, name string) error
}

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type smtpService struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPService creates a gomail-backed mail service
func NewSMTPService(cfg Config) Service {
	return &smtpService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *smtpService) SendBookingConfirmation(ctx context.Context, to, name string, date time.Time) error {
	body := fmt.Sprintf(
		"Hello %s,<br><br>Your appointment on %s has been received and is pending confirmation.<br><br>MedVault",
		name, date.Format("Mon, 02 Jan 2006 15:04"),
	)
	return s.send(to, "Appointment received", body)
}

func (s *smtpService) SendWelcome(ctx context.Context, to, name string) error {
	body := fmt.Sprintf("Hello %s,<br><br>Welcome to MedVault.<br><br>MedVault", name)
	return s.send(to, "Welcome to MedVault", body)
}

func (s *smtpService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
