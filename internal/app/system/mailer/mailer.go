// internal/app/system/mailer/mailer.go

// Package mailer sends transactional email over SMTP: contact inquiry
// notifications to the site operators and welcome messages to newsletter
// subscribers.
package mailer

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

// Config holds SMTP settings.
type Config struct {
	Host     string
	Port     int
	User     string
	Pass     string
	From     string
	FromName string
}

// Mailer sends email through a single SMTP server.
type Mailer struct {
	host     string
	port     int
	user     string
	pass     string
	from     string
	fromName string
	log      *zap.Logger
}

// New creates a mailer from config.
func New(cfg Config, log *zap.Logger) *Mailer {
	return &Mailer{
		host:     cfg.Host,
		port:     cfg.Port,
		user:     cfg.User,
		pass:     cfg.Pass,
		from:     cfg.From,
		fromName: cfg.FromName,
		log:      log,
	}
}

// Enabled reports whether the mailer is configured to send. Deployments
// without SMTP settings skip email silently.
func (m *Mailer) Enabled() bool {
	return m != nil && m.host != "" && m.from != ""
}

// Email is one outgoing message. HTMLBody is optional; when present the
// message is sent as multipart/alternative.
type Email struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Send delivers the email. Returns an error on SMTP failure; callers that
// treat email as best-effort should log and continue.
func (m *Mailer) Send(e Email) error {
	if !m.Enabled() {
		return fmt.Errorf("mailer is not configured")
	}

	from := m.from
	if m.fromName != "" {
		from = fmt.Sprintf("%s <%s>", m.fromName, m.from)
	}

	var msg strings.Builder
	msg.WriteString("From: " + from + "\r\n")
	msg.WriteString("To: " + e.To + "\r\n")
	msg.WriteString("Subject: " + e.Subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")

	if e.HTMLBody == "" {
		msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
		msg.WriteString(e.TextBody)
	} else {
		boundary := randomBoundary()
		msg.WriteString("Content-Type: multipart/alternative; boundary=\"" + boundary + "\"\r\n\r\n")

		msg.WriteString("--" + boundary + "\r\n")
		msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
		msg.WriteString(e.TextBody + "\r\n\r\n")

		msg.WriteString("--" + boundary + "\r\n")
		msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
		msg.WriteString(e.HTMLBody + "\r\n\r\n")

		msg.WriteString("--" + boundary + "--\r\n")
	}

	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	var auth smtp.Auth
	if m.user != "" && m.pass != "" {
		auth = smtp.PlainAuth("", m.user, m.pass, m.host)
	}

	if err := smtp.SendMail(addr, auth, m.from, []string{e.To}, []byte(msg.String())); err != nil {
		m.log.Error("failed to send email",
			zap.String("to", e.To),
			zap.String("subject", e.Subject),
			zap.Error(err))
		return err
	}

	m.log.Info("sent email",
		zap.String("to", e.To),
		zap.String("subject", e.Subject))
	return nil
}

// randomBoundary returns a MIME boundary unlikely to appear in content.
func randomBoundary() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return "----=_Part_" + hex.EncodeToString(b)
}
