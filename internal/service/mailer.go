package service

import (
	"context"
	"log/slog"
)

// Mailer delivers an HTML message.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// LogMailer only logs what would have been sent.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogMailer{logger: logger}
}

func (m *LogMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	m.logger.InfoContext(ctx, "invoice would be sent", "to", to, "subject", subject)
	m.logger.InfoContext(ctx, "invoice content", "body", htmlBody)
	return nil
}
