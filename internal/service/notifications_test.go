package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alhuda-academy/admissions-api/internal/models"
	"github.com/alhuda-academy/admissions-api/pkg/config"
	"github.com/alhuda-academy/admissions-api/pkg/mailer"
)

type recordingSender struct {
	to       []string
	subjects []string
}

func (r *recordingSender) Send(ctx context.Context, to, subject, body string) error {
	r.to = append(r.to, to)
	r.subjects = append(r.subjects, subject)
	return nil
}

// Mirrors the gateway wiring: with no relay host configured, mailer.New
// returns a nil pointer that must become a nil interface, not a typed nil.
func TestNotificationsUnconfiguredRelayLogsOnly(t *testing.T) {
	var sender mailer.Sender
	if smtp := mailer.New(config.MailConfig{}, nil); smtp != nil {
		sender = smtp
	}
	n := NewNotifications(sender, "admin@example.com", nil)

	require.NotPanics(t, func() {
		assert.NoError(t, n.SendResetCode(context.Background(), "omar@example.com", "123456"))
		assert.NoError(t, n.NotifyContact(context.Background(), &models.ContactMessage{
			Name:    "Omar Khan",
			Email:   "omar@example.com",
			Message: "Assalamu alaikum",
		}))
		assert.NoError(t, n.SendApplicantEmail(context.Background(), "omar@example.com", "Interview", "Please come in Monday."))
	})
}

func TestNotificationsDeliversThroughSender(t *testing.T) {
	sender := &recordingSender{}
	n := NewNotifications(sender, "admin@example.com", nil)

	require.NoError(t, n.SendApplicantEmail(context.Background(), "omar@example.com", "Interview", "Monday 9am"))
	require.NoError(t, n.NotifyContact(context.Background(), &models.ContactMessage{
		Name:    "Omar Khan",
		Email:   "omar@example.com",
		Message: "question about tuition",
	}))

	require.Len(t, sender.to, 2)
	assert.Equal(t, "omar@example.com", sender.to[0])
	assert.Equal(t, "admin@example.com", sender.to[1])
}

func TestNotificationsContactSkippedWithoutAdminEmail(t *testing.T) {
	sender := &recordingSender{}
	n := NewNotifications(sender, "", nil)

	require.NoError(t, n.NotifyContact(context.Background(), &models.ContactMessage{
		Name: "Omar Khan", Email: "omar@example.com", Message: "hello",
	}))
	assert.Empty(t, sender.to)
}
