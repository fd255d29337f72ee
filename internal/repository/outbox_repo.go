package repository

import (
	"context"
	"time"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

type OutboxRepository struct {
	db *gorm.DB
}

func NewOutboxRepository(db *gorm.DB) *OutboxRepository {
	return &OutboxRepository{db: db}
}

type outboxModel struct {
	ID        int64      `gorm:"column:id;primaryKey"`
	Recipient string     `gorm:"column:recipient"`
	Subject   string     `gorm:"column:subject"`
	Body      string     `gorm:"column:body;type:text"`
	Status    string     `gorm:"column:status;index"`
	Attempts  int        `gorm:"column:attempts"`
	LastError *string    `gorm:"column:last_error"`
	CreatedAt time.Time  `gorm:"column:created_at"`
	SentAt    *time.Time `gorm:"column:sent_at"`
}

func (outboxModel) TableName() string { return "email_outbox" }

func toDomainEmail(m outboxModel) *domain.OutboundEmail {
	var lastErr string
	if m.LastError != nil {
		lastErr = *m.LastError
	}

	return &domain.OutboundEmail{
		ID:        m.ID,
		Recipient: m.Recipient,
		Subject:   m.Subject,
		Body:      m.Body,
		Status:    domain.EmailStatus(m.Status),
		Attempts:  m.Attempts,
		LastError: lastErr,
		CreatedAt: m.CreatedAt,
		SentAt:    m.SentAt,
	}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, e *domain.OutboundEmail) error {
	m := outboxModel{
		Recipient: e.Recipient,
		Subject:   e.Subject,
		Body:      e.Body,
		Status:    string(domain.EmailPending),
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*e = *toDomainEmail(m)
	return nil
}

// GetPending returns the oldest undelivered emails, capped at limit.
func (r *OutboxRepository) GetPending(ctx context.Context, limit int) ([]domain.OutboundEmail, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var rows []outboxModel
	tx := r.db.WithContext(ctx).
		Where("status = ?", string(domain.EmailPending)).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.OutboundEmail, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainEmail(m))
	}
	return out, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id int64) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":  string(domain.EmailSent),
			"sent_at": &now,
		}).Error
}

// MarkFailed records a failed attempt. Once attempts reach maxAttempts
// the row moves to the terminal failed state and is no longer picked up.
func (r *OutboxRepository) MarkFailed(ctx context.Context, id int64, attemptErr string, maxAttempts int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m outboxModel
		if err := tx.First(&m, id).Error; err != nil {
			return err
		}

		m.Attempts++
		m.LastError = &attemptErr
		if m.Attempts >= maxAttempts {
			m.Status = string(domain.EmailFailed)
		}
		return tx.Save(&m).Error
	})
}
