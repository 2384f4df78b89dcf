package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strings"
	"time"
)

// Mailer sends transactional mail. The only message this service emits
// is the password-reset OTP.
type Mailer interface {
	SendPasswordResetOTP(ctx context.Context, to, otp string) error
}

// SMTPMailer delivers over plain SMTP with STARTTLS-less PlainAuth,
// matching the relay setups this is deployed behind.
type SMTPMailer struct {
	host     string
	port     int
	user     string
	password string
	from     string
	timeout  time.Duration
}

func NewSMTPMailer(host string, port int, user, password, from string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		user:     user,
		password: password,
		from:     from,
		timeout:  30 * time.Second,
	}
}

func (m *SMTPMailer) SendPasswordResetOTP(ctx context.Context, to, otp string) error {
	msg := m.buildMessage(to, otp)

	addr := net.JoinHostPort(m.host, fmt.Sprintf("%d", m.port))

	dialer := &net.Dialer{Timeout: m.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp client: %w", err)
	}
	defer client.Close()

	if m.user != "" {
		auth := smtp.PlainAuth("", m.user, m.password, m.host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.Mail(m.from); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write([]byte(msg)); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close: %w", err)
	}

	return client.Quit()
}

func (m *SMTPMailer) buildMessage(to, otp string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	b.WriteString("Subject: Your BookWorm password reset code\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, "Your password reset code is %s. It expires in 10 minutes.\r\n", otp)
	return b.String()
}

// LogMailer writes the OTP to the log instead of sending mail. Used in
// development when no SMTP host is configured.
type LogMailer struct {
	Logger *slog.Logger
}

func (m LogMailer) SendPasswordResetOTP(ctx context.Context, to, otp string) error {
	m.Logger.Info("password reset OTP (mail disabled)", "to", to, "otp", otp)
	return nil
}
