// Package notify delivers temperature alerts to the configured recipients.
package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"loading/internal/core/ports"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPNotifier sends one plain-text email per recipient.
type SMTPNotifier struct {
	cfg      SMTPConfig
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPNotifier(cfg SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg, sendMail: smtp.SendMail}
}

func (n *SMTPNotifier) Notify(ctx context.Context, recipient string, msg ports.AlertMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if n.cfg.Username != "" {
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)
	}
	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)

	if err := n.sendMail(addr, auth, n.cfg.From, []string{recipient}, n.message(recipient, msg)); err != nil {
		return fmt.Errorf("send alert email to %s: %w", recipient, err)
	}
	return nil
}

func (n *SMTPNotifier) message(recipient string, msg ports.AlertMessage) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", n.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", recipient)
	fmt.Fprintf(&b, "Subject: %s\r\n", Subject(msg))
	b.WriteString("MIME-version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(Body(msg))
	return []byte(b.String())
}

// Subject is shared by every channel so recipients can filter on it.
func Subject(msg ports.AlertMessage) string {
	return fmt.Sprintf("Temperature alert on loading order %s", msg.OrderNumber)
}

func Body(msg ports.AlertMessage) string {
	return fmt.Sprintf(
		"Order %s reported %.2f °C at %s, above the configured threshold of %.2f °C.\r\n"+
			"Acknowledge alarm #%d to close it.\r\n",
		msg.OrderNumber,
		msg.Temperature,
		msg.At.UTC().Format(time.RFC3339),
		msg.Threshold,
		msg.AlarmID,
	)
}
