package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"strings"
	"time"
)

// Mailer delivers a composed email to a single recipient.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// SMTPMailer delivers mail through an SMTP relay with PLAIN auth.
type SMTPMailer struct {
	addr     string // host:port
	username string
	password string
	from     string
}

// NewSMTPMailer creates an SMTPMailer.
func NewSMTPMailer(addr, username, password, from string) *SMTPMailer {
	return &SMTPMailer{addr: addr, username: username, password: password, from: from}
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	host := m.addr
	if i := strings.LastIndex(host, ":"); i >= 0 {
		host = host[:i]
	}
	auth := smtp.PlainAuth("", m.username, m.password, host)

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	if err := smtp.SendMail(m.addr, auth, m.from, []string{to}, msg.Bytes()); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// LogMailer logs instead of delivering. Used when no SMTP relay is
// configured, so the send-email endpoint stays usable in development.
type LogMailer struct{}

func (LogMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	slog.Info("mail delivery skipped (no SMTP configured)", "to", to, "subject", subject)
	return nil
}

// registrationEmailTmpl renders the admin notification body.
var registrationEmailTmpl = template.Must(template.New("registration").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1>🎉 New Event Registration</h1>
  <p>CampusEvents Platform</p>
  <h2>📋 Registration Details</h2>
  <h3>👤 Student Information</h3>
  <p><strong>Name:</strong> {{.UserName}}</p>
  <p><strong>Email:</strong> {{.UserEmail}}</p>
  <h3>📅 Event Information</h3>
  <p><strong>Event Name:</strong> {{.EventTitle}}</p>
  <p><strong>Date &amp; Time:</strong> {{.EventDate}}</p>
  <p><strong>Location:</strong> {{.EventLocation}}</p>
  <h3>✅ Registration Status</h3>
  <p>Student successfully registered for this event</p>
  <p style="color: #718096; font-size: 14px;">
    📧 This notification was sent from CampusEvents<br>
    🕒 Registration Time: {{.SentAt}}
  </p>
</div>`))

// ComposeRegistrationEmail builds the subject and HTML body for a
// registration notice. The event date is reformatted for display when it
// parses; otherwise the raw value is shown as-is.
func ComposeRegistrationEmail(notice RegistrationNotice) (subject, body string, err error) {
	subject = "🎉 New Event Registration - " + notice.EventTitle

	data := struct {
		RegistrationNotice
		SentAt string
	}{notice, time.Now().Format("Monday, January 2, 2006 at 3:04 PM")}
	if t, perr := time.Parse(time.RFC3339, notice.EventDate); perr == nil {
		data.EventDate = t.Format("Monday, January 2, 2006 at 3:04 PM")
	}

	var buf bytes.Buffer
	if err := registrationEmailTmpl.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("render registration email: %w", err)
	}
	return subject, buf.String(), nil
}
