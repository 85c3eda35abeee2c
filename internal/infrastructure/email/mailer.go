package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"net/smtp"

	"talenthub/internal/config"
)

// Sender is the outbound-mail capability consumed by the auth flow.
type Sender interface {
	SendVerificationCode(ctx context.Context, to, code string)
}

// Mailer sends over SMTP with implicit TLS. Dispatch is fire-and-forget:
// a send failure is logged and never surfaced to the request that caused it.
type Mailer struct {
	cfg    config.SMTPConfig
	logger *log.Logger
}

func NewMailer(cfg config.SMTPConfig, logger *log.Logger) *Mailer {
	if logger == nil {
		logger = log.Default()
	}
	return &Mailer{cfg: cfg, logger: logger}
}

func (m *Mailer) SendVerificationCode(ctx context.Context, to, code string) {
	if m == nil || to == "" {
		return
	}
	if m.cfg.Host == "" {
		m.logger.Printf("[Mailer] SMTP not configured, skipping verification email | to=%s", to)
		return
	}

	subject := "Your verification code"
	body := fmt.Sprintf("Your verification code is %s", code)

	go func() {
		if err := m.send(to, subject, body); err != nil {
			m.logger.Printf("[Mailer] failed to send verification email | to=%s error=%v", to, err)
			return
		}
		m.logger.Printf("[Mailer] verification email sent | to=%s", to)
	}()
}

func (m *Mailer) send(to, subject, body string) error {
	from := m.cfg.From
	if from == "" {
		from = m.cfg.Username
	}

	msg := []byte(
		fmt.Sprintf("From: %s\r\n", from) +
			fmt.Sprintf("To: %s\r\n", to) +
			fmt.Sprintf("Subject: %s\r\n", subject) +
			"\r\n" +
			body,
	)

	serverAddr := m.cfg.Host + ":" + m.cfg.Port

	// Implicit TLS (port 465 style).
	conn, err := tls.Dial("tcp", serverAddr, &tls.Config{ServerName: m.cfg.Host})
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		return err
	}
	defer client.Quit()

	if m.cfg.Username != "" {
		auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}
