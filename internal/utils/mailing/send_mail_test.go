package mailing

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMailer_NoHostIsNoop(t *testing.T) {
	m := NewMailer(MailConfig{})
	_, ok := m.(noopMailer)
	assert.True(t, ok)
	assert.NoError(t, m.SendMail("org@example.com", "subject", "body"))
}

func TestSMTPMailer_InvalidPort(t *testing.T) {
	m := NewMailer(MailConfig{SMTPHost: "localhost", SMTPPort: "abc"})
	err := m.SendMail("org@example.com", "subject", "body")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid smtp port")
}

func TestSMTPMailer_NewMessageHeaders(t *testing.T) {
	m := &smtpMailer{config: MailConfig{SMTPEmail: "noreply@foodbridge.id", SMTPSender: "FoodBridge"}}
	msg := m.NewMessage("org@example.com", "New donation", "<p>hi</p>")

	assert.Equal(t, []string{"FoodBridge <noreply@foodbridge.id>"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"org@example.com"}, msg.GetHeader("To"))

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "New donation")
}
