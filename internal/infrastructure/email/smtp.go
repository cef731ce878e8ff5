package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"holzwerk/internal/domain/notification"
	"holzwerk/internal/shared/id"
)

type SMTPConfig struct {
	Host         string
	Port         int
	Secure       bool
	Username     string
	Password     string
	FromAddress  string
	FromName     string
	AdminAddress string
}

// SMTPMailer delivers rendered messages over a single SMTP endpoint.
type SMTPMailer struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPMailer(config SMTPConfig) *SMTPMailer {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	dialer.SSL = config.Secure
	if !config.Secure {
		// Opportunistic STARTTLS against servers with self-signed certs,
		// common for relay hosts on internal networks.
		dialer.TLSConfig = &tls.Config{ServerName: config.Host, InsecureSkipVerify: true}
	}

	return &SMTPMailer{
		config: config,
		dialer: dialer,
	}
}

// Config returns the configuration the mailer was built with.
func (s *SMTPMailer) Config() SMTPConfig {
	return s.config
}

// Send delivers msg and returns the generated Message-ID.
func (s *SMTPMailer) Send(ctx context.Context, msg notification.OutboundEmail) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	messageID, err := id.NewMessageID(s.messageIDDomain())
	if err != nil {
		return "", fmt.Errorf("failed to generate message id: %w", err)
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", msg.To)
	if len(msg.CC) > 0 {
		m.SetHeader("Cc", msg.CC...)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("Message-ID", messageID)

	switch {
	case msg.TextBody != "" && msg.HTMLBody != "":
		m.SetBody("text/plain", msg.TextBody)
		m.AddAlternative("text/html", msg.HTMLBody)
	case msg.HTMLBody != "":
		m.SetBody("text/html", msg.HTMLBody)
	default:
		m.SetBody("text/plain", msg.TextBody)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	return messageID, nil
}

// SendTest sends a short plain message to verify the SMTP configuration.
func (s *SMTPMailer) SendTest(ctx context.Context, to string) error {
	msg := notification.OutboundEmail{
		To:       to,
		Subject:  "SMTP configuration test",
		TextBody: fmt.Sprintf("This is a test message from %s. Your SMTP settings are working.", s.config.FromName),
	}

	if _, err := s.Send(ctx, msg); err != nil {
		return err
	}
	return nil
}

// messageIDDomain derives the Message-ID domain from the from address.
func (s *SMTPMailer) messageIDDomain() string {
	if at := strings.LastIndex(s.config.FromAddress, "@"); at >= 0 && at < len(s.config.FromAddress)-1 {
		return s.config.FromAddress[at+1:]
	}
	return "localhost"
}
