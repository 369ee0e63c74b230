package otp

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/locksafe/internal/logging"
)

// Sender delivers a freshly issued code to its bound address.
type Sender interface {
	Send(ctx context.Context, c Challenge) error
}

// SMTPConfig describes the outgoing mail relay.
type SMTPConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	From     string `json:"from" yaml:"from"`
}

func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.From != ""
}

type SMTPSender struct {
	cfg      SMTPConfig
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	return &SMTPSender{cfg: cfg, sendMail: smtp.SendMail}
}

func (s *SMTPSender) Send(ctx context.Context, c Challenge) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	if err := s.sendMail(addr, auth, s.cfg.From, []string{c.BoundEmail}, s.message(c)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func (s *SMTPSender) message(c Challenge) []byte {
	minutes := int(c.ExpiresAt.Sub(c.IssuedAt) / time.Minute)
	if minutes < 1 {
		minutes = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", c.BoundEmail)
	b.WriteString("Subject: Your LockSafe OTP Code\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	fmt.Fprintf(&b, "Your OTP code is: %s\r\n\r\n", c.Code)
	fmt.Fprintf(&b, "This code will expire in %d minutes.\r\n\r\n", minutes)
	b.WriteString("If you didn't request this code, please ignore this email.\r\n")
	return []byte(b.String())
}

// LogSender writes the code to the log. Development servers only.
type LogSender struct {
	logger logging.Logger
}

func NewLogSender(l logging.Logger) *LogSender {
	return &LogSender{logger: l.With("module", "otp_log_sender")}
}

func (s *LogSender) Send(ctx context.Context, c Challenge) error {
	s.logger.Warn(ctx, "otp delivered to log", "email", c.BoundEmail, "code", c.Code, "expires_at", c.ExpiresAt)
	return nil
}
