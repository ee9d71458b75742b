package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"

	"swiftrider/internal/entities"
	"swiftrider/internal/gateway"
	"swiftrider/internal/pkg/config"
)

const serviceName = "smtp"

type Mailer struct {
	host     string
	addr     string
	username string
	password string
	from     string
}

func New(cfg *config.SMTP) *Mailer {
	return &Mailer{
		host:     cfg.Host,
		addr:     net.JoinHostPort(cfg.Host, cfg.Port),
		username: cfg.Username,
		password: cfg.Password,
		from:     cfg.From,
	}
}

// Send отправляет одно письмо. Дедлайн контекста ограничивает всю SMTP сессию.
func (m *Mailer) Send(ctx context.Context, message entities.EmailMessage) error {
	start := time.Now()
	err := m.send(ctx, message)

	code := "OK"
	if err != nil {
		code = "error"
	}
	gateway.Observe(serviceName, "send", code, start, 1)

	if err != nil {
		return fmt.Errorf("smtp send to %s: %w", message.To, err)
	}
	return nil
}

func (m *Mailer) send(ctx context.Context, message entities.EmailMessage) error {
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", m.addr)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("handshake: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		err = client.StartTLS(&tls.Config{ServerName: m.host, MinVersion: tls.VersionTLS12})
		if err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}

	if m.username != "" {
		if ok, _ := client.Extension("AUTH"); ok {
			err = client.Auth(smtp.PlainAuth("", m.username, m.password, m.host))
			if err != nil {
				return fmt.Errorf("auth: %w", err)
			}
		}
	}

	if err = client.Mail(m.from); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err = client.Rcpt(message.To); err != nil {
		return fmt.Errorf("rcpt to: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err = w.Write(m.compose(message)); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("close body: %w", err)
	}

	return client.Quit()
}

func (m *Mailer) compose(message entities.EmailMessage) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "From: %s\r\n", m.from)
	fmt.Fprintf(&buf, "To: %s\r\n", message.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", message.Subject))
	fmt.Fprintf(&buf, "Date: %s\r\n", time.Now().UTC().Format(time.RFC1123Z))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	buf.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	buf.WriteString("\r\n")

	body := strings.ReplaceAll(message.Body, "\r\n", "\n")
	buf.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))

	return buf.Bytes()
}
