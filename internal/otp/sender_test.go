package otp

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/locksafe/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChallenge() Challenge {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return Challenge{Code: "4321", BoundEmail: "u@x.io", IssuedAt: now, ExpiresAt: now.Add(2 * time.Minute)}
}

func TestSMTPSender_Send(t *testing.T) {
	s := NewSMTPSender(SMTPConfig{Host: "mail.local", Username: "bot", Password: "pw", From: "bot@x.io"})

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	s.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		require.NotNil(t, a)
		return nil
	}

	require.NoError(t, s.Send(context.Background(), testChallenge()))
	assert.Equal(t, "mail.local:587", gotAddr)
	assert.Equal(t, "bot@x.io", gotFrom)
	assert.Equal(t, []string{"u@x.io"}, gotTo)

	body := string(gotMsg)
	assert.Contains(t, body, "Subject: Your LockSafe OTP Code")
	assert.Contains(t, body, "Your OTP code is: 4321")
	assert.Contains(t, body, "expire in 2 minutes")
}

func TestSMTPSender_Errors(t *testing.T) {
	s := NewSMTPSender(SMTPConfig{Host: "mail.local", Port: 25, From: "bot@x.io"})
	s.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("relay down")
	}

	err := s.Send(context.Background(), testChallenge())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "relay down")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Send(ctx, testChallenge()), context.Canceled)
}

func TestSMTPConfig_Enabled(t *testing.T) {
	assert.False(t, SMTPConfig{}.Enabled())
	assert.True(t, SMTPConfig{Host: "h", From: "f@x.io"}.Enabled())
}

func TestLogSender(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, NewLogSender(l).Send(context.Background(), testChallenge()))
	out := buf.String()
	assert.True(t, strings.Contains(out, "code=4321"), out)
	assert.Contains(t, out, "module=otp_log_sender")
}
