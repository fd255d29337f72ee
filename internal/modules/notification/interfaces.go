package notification

import (
	"context"

	"hotelbooking/internal/domain"
)

type OutboxRepository interface {
	Enqueue(ctx context.Context, e *domain.OutboundEmail) error
	GetPending(ctx context.Context, limit int) ([]domain.OutboundEmail, error)
	MarkSent(ctx context.Context, id int64) error
	MarkFailed(ctx context.Context, id int64, attemptErr string, maxAttempts int) error
}

// Mailer delivers a single message. Implementations are expected to be
// safe for concurrent use.
type Mailer interface {
	Send(to, subject, body string) error
}
