package email

import (
	"fmt"

	"skillbridge_backend/internal/config"
	"skillbridge_backend/internal/logger"

	"gopkg.in/gomail.v2"
)

// Sender delivers transactional mail. Delivery is best-effort everywhere it
// is used; callers must not block registration on it.
type Sender interface {
	SendVerification(to, name, token string) error
}

// SMTPSender sends mail through the configured SMTP relay using gomail.
type SMTPSender struct {
	cfg *config.Config
}

// NewSender picks the SMTP sender when a relay is configured and a log-only
// sender otherwise, so development setups work without mail credentials.
func NewSender(cfg *config.Config) Sender {
	if cfg.Email.SMTPHost == "" {
		return &LogSender{}
	}
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) SendVerification(to, name, token string) error {
	verifyURL := fmt.Sprintf("%s/verify-email/%s", s.cfg.Client.BaseURL, token)

	body, err := renderVerificationEmail(name, verifyURL)
	if err != nil {
		return fmt.Errorf("failed to render verification email: %w", err)
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.Email.FromEmail, s.cfg.Email.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "SkillBridge - Verify Your Email")
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		s.cfg.Email.SMTPHost,
		s.cfg.Email.SMTPPort,
		s.cfg.Email.SMTPUsername,
		s.cfg.Email.SMTPPassword,
	)
	return d.DialAndSend(m)
}

// LogSender writes the verification link to the log instead of sending mail.
type LogSender struct{}

func (s *LogSender) SendVerification(to, name, token string) error {
	logger.Info("email delivery disabled, logging verification token",
		"to", to,
		"token", token,
	)
	return nil
}
