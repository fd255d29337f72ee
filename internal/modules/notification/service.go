package notification

import (
	"context"
	"fmt"
	"strings"

	"hotelbooking/internal/domain"
)

// Service turns lifecycle events into queued outbox rows. It never
// talks to SMTP directly; delivery belongs to the dispatcher.
type Service struct {
	outbox OutboxRepository
}

func NewService(outbox OutboxRepository) *Service {
	return &Service{outbox: outbox}
}

// BookingDecided enqueues the decision email for a renter. The total
// price line appears only on confirmations.
func (s *Service) BookingDecided(ctx context.Context, recipientEmail string, status domain.BookingStatus, hotelName, bookingRef string, totalPrice float64) error {
	if recipientEmail == "" {
		return fmt.Errorf("notification: empty recipient")
	}

	subject := fmt.Sprintf("Your booking at %s was %s", hotelName, status)

	var b strings.Builder
	fmt.Fprintf(&b, "Hello,\n\n")
	fmt.Fprintf(&b, "Your booking %s at %s has been %s.\n", bookingRef, hotelName, status)
	if status == domain.BookingConfirmed {
		fmt.Fprintf(&b, "Total price: %.2f\n", totalPrice)
	}
	fmt.Fprintf(&b, "\nThank you for booking with us.\n")

	return s.outbox.Enqueue(ctx, &domain.OutboundEmail{
		Recipient: recipientEmail,
		Subject:   subject,
		Body:      b.String(),
	})
}
