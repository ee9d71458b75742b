package notification

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"swiftrider/internal/entities"
	"swiftrider/pkg/logger"
)

type Notification struct {
	mailer Mailer
	log    serviceLogger
}

func New(mailer Mailer, log serviceLogger) *Notification {
	return &Notification{
		mailer: mailer,
		log:    log,
	}
}

// Render собирает письмо по типу уведомления.
func (s *Notification) Render(n entities.Notification) (entities.EmailMessage, error) {
	tmpl, ok := templates[n.Kind]
	if !ok {
		return entities.EmailMessage{}, fmt.Errorf("%w: %q", ErrUnknownKind, n.Kind)
	}

	to := strings.TrimSpace(n.To)
	if to == "" {
		return entities.EmailMessage{}, ErrMissingRecipient
	}

	data := n.Data
	if data == nil {
		data = map[string]string{}
	}

	var subject, body bytes.Buffer
	if err := tmpl.subject.Execute(&subject, data); err != nil {
		return entities.EmailMessage{}, fmt.Errorf("%w: %v", ErrRender, err)
	}
	if err := tmpl.body.Execute(&body, data); err != nil {
		return entities.EmailMessage{}, fmt.Errorf("%w: %v", ErrRender, err)
	}

	return entities.EmailMessage{
		To:      to,
		Subject: subject.String(),
		Body:    body.String(),
	}, nil
}

// Send рендерит уведомление и отправляет письмо.
func (s *Notification) Send(ctx context.Context, n entities.Notification) error {
	message, err := s.Render(n)
	if err != nil {
		return err
	}

	err = s.mailer.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("send %s email: %w", n.Kind, err)
	}

	s.log.Info("notification sent",
		logger.NewField("kind", n.Kind.String()),
		logger.NewField("to", message.To),
	)

	return nil
}
