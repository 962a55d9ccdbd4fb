package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/alhuda-academy/admissions-api/internal/models"
	"github.com/alhuda-academy/admissions-api/pkg/mailer"
)

// Notifications adapts the shared mail sender to the per-service mailer
// interfaces. With a nil sender it logs instead of delivering, which keeps
// every flow usable without an SMTP relay.
type Notifications struct {
	sender     mailer.Sender
	adminEmail string
	logger     *zap.Logger
}

// NewNotifications constructs Notifications. sender may be nil.
func NewNotifications(sender mailer.Sender, adminEmail string, logger *zap.Logger) *Notifications {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifications{sender: sender, adminEmail: adminEmail, logger: logger}
}

// SendResetCode emails a password reset code to the account holder.
func (n *Notifications) SendResetCode(ctx context.Context, email, code string) error {
	subject := "Your password reset code"
	body := fmt.Sprintf("Your password reset code is %s. It expires shortly; ignore this message if you did not request it.", code)
	if n.sender == nil {
		n.logger.Info("reset code issued without mail delivery", zap.String("email", email))
		return nil
	}
	return n.sender.Send(ctx, email, subject, body)
}

// NotifyContact forwards a new contact-form inquiry to the site admin.
func (n *Notifications) NotifyContact(ctx context.Context, msg *models.ContactMessage) error {
	if n.sender == nil || n.adminEmail == "" {
		n.logger.Info("contact notification skipped",
			zap.String("from", msg.Email),
			zap.Bool("mail_configured", n.sender != nil))
		return nil
	}
	subject := fmt.Sprintf("New contact message from %s", msg.Name)
	body := fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message)
	return n.sender.Send(ctx, n.adminEmail, subject, body)
}

// SendApplicantEmail delivers an admin-composed message to an applicant.
func (n *Notifications) SendApplicantEmail(ctx context.Context, to, subject, message string) error {
	if n.sender == nil {
		n.logger.Info("applicant email logged without delivery", zap.String("to", to), zap.String("subject", subject))
		return nil
	}
	return n.sender.Send(ctx, to, subject, message)
}
