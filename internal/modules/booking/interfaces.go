package booking

import (
	"context"

	"hotelbooking/internal/domain"
)

// BookingRepository defines the persistence operations of the lifecycle engine.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByRenterID(ctx context.Context, renterID int64) ([]domain.Booking, error)
	GetByListingID(ctx context.Context, listingID int64) ([]domain.Booking, error)
	GetListingOwnerForBooking(ctx context.Context, bookingID int64) (ownerID int64, status string, err error)
	UpdateStatus(ctx context.Context, bookingID int64, status string) error
	CountPending(ctx context.Context, listingID int64) (int64, error)
}

type ListingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Notifier enqueues a lifecycle notification. Enqueue failures are
// non-fatal for the caller: the decision has already been persisted.
type Notifier interface {
	BookingDecided(ctx context.Context, recipientEmail string, status domain.BookingStatus, hotelName, bookingRef string, totalPrice float64) error
}
