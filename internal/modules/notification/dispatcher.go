package notification

import (
	"context"
	"log"
	"time"
)

const (
	defaultBatchSize   = 20
	defaultMaxAttempts = 3
)

// Dispatcher drains the outbox on a fixed interval. Each pending row is
// attempted once per pass; after maxAttempts failures the row is parked
// in the terminal failed state.
type Dispatcher struct {
	outbox      OutboxRepository
	mailer      Mailer
	interval    time.Duration
	batchSize   int
	maxAttempts int
}

func NewDispatcher(outbox OutboxRepository, mailer Mailer, interval time.Duration) *Dispatcher {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &Dispatcher{
		outbox:      outbox,
		mailer:      mailer,
		interval:    interval,
		batchSize:   defaultBatchSize,
		maxAttempts: defaultMaxAttempts,
	}
}

// Run blocks until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.drainOnce(ctx)
		}
	}
}

func (d *Dispatcher) drainOnce(ctx context.Context) {
	pending, err := d.outbox.GetPending(ctx, d.batchSize)
	if err != nil {
		log.Printf("outbox_fetch_fail err=%v", err)
		return
	}

	for _, e := range pending {
		if err := d.mailer.Send(e.Recipient, e.Subject, e.Body); err != nil {
			log.Printf("outbox_send_fail email_id=%d attempt=%d err=%v", e.ID, e.Attempts+1, err)
			if err := d.outbox.MarkFailed(ctx, e.ID, err.Error(), d.maxAttempts); err != nil {
				log.Printf("outbox_mark_failed_fail email_id=%d err=%v", e.ID, err)
			}
			continue
		}
		if err := d.outbox.MarkSent(ctx, e.ID); err != nil {
			log.Printf("outbox_mark_sent_fail email_id=%d err=%v", e.ID, err)
		}
	}
}
