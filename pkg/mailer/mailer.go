// Package mailer sends transactional email. All sends are fire-and-forget
// from the caller's perspective: failures are logged, never surfaced.
package mailer

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"kikao-backend/pkg/utils"
)

type Mailer struct {
	cfg utils.EmailConfig
	log *zap.Logger
}

func New(cfg utils.EmailConfig, log *zap.Logger) *Mailer {
	return &Mailer{
		cfg: cfg,
		log: log.With(zap.String("notifier", "email")),
	}
}

// SendWelcome greets a freshly provisioned user.
func (m *Mailer) SendWelcome(username, to string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Welcome to Kikao")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hello %s,\n\nYour Kikao account is ready. Happy house hunting!\n\nThe Kikao team", username))

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)

	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send welcome email to %s: %w", to, err)
	}

	m.log.Info("Welcome email sent", zap.String("username", username))
	return nil
}
