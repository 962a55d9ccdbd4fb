package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"github.com/alhuda-academy/admissions-api/pkg/config"
)

// Sender delivers a single plain-text message.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMTP sends mail over a plain SMTP relay.
type SMTP struct {
	cfg    config.MailConfig
	logger *zap.Logger
}

// New returns an SMTP sender, or nil when no relay host is configured.
// Callers treat a nil Sender as "log instead of deliver".
func New(cfg config.MailConfig, logger *zap.Logger) *SMTP {
	if cfg.Host == "" {
		return nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SMTP{cfg: cfg, logger: logger}
}

// Send delivers one message. The context is consulted before dialing; net/smtp
// itself does not support cancellation mid-send.
func (m *SMTP) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}
	msg := strings.Join([]string{
		"From: " + m.cfg.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}, "\r\n")
	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	m.logger.Debug("mail sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
