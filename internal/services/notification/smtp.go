package notification

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"estatien/internal/config"
)

// SMTPMailer delivers mail through a plain SMTP relay.
type SMTPMailer struct {
	cfg config.Mail
}

func NewSMTPMailer(cfg config.Mail) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if m.cfg.Username == "" || m.cfg.Password == "" {
		return errors.New("email transport not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	addr := m.cfg.Host + ":" + m.cfg.Port
	return smtp.SendMail(addr, auth, m.cfg.Username, []string{to}, []byte(msg.String()))
}
