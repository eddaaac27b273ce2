package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"

	portssvc "github.com/ledgerlogic/ledgerlogic/internal/core/ports/services"
)

// SMTPMailer sends plain-text mail over implicit TLS (port 465 style).
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// NewSMTPMailer creates a mailer for the given SMTP server and credentials.
// When from is empty the username is used as the sender address.
func NewSMTPMailer(host, port, username, password, from string) portssvc.Mailer {
	if from == "" {
		from = username
	}
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// Ensure SMTPMailer implements the Mailer port
var _ portssvc.Mailer = (*SMTPMailer)(nil)

// Send delivers one message. The context bounds the dial; smtp.Client does
// not accept a context for the remaining round trips.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	msg := []byte(
		fmt.Sprintf("From: %s\r\n", m.from) +
			fmt.Sprintf("To: %s\r\n", to) +
			fmt.Sprintf("Subject: %s\r\n", subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/plain; charset=\"utf-8\"\r\n" +
			"\r\n" +
			body,
	)

	serverAddr := m.host + ":" + m.port
	tlsConfig := &tls.Config{ServerName: m.host}

	dialer := &tls.Dialer{Config: tlsConfig}
	conn, err := dialer.DialContext(ctx, "tcp", serverAddr)
	if err != nil {
		return fmt.Errorf("failed to dial SMTP server %s: %w", serverAddr, err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Quit()

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("SMTP authentication failed: %w", err)
	}

	if err := client.Mail(m.from); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open message body: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("failed to write message body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish message body: %w", err)
	}
	return nil
}
