package hotel

import (
	"context"

	"hotelbooking/internal/domain"
)

type SubmissionRepository interface {
	Create(ctx context.Context, s *domain.Submission) error
	GetByID(ctx context.Context, id int64) (*domain.Submission, error)
}

type ListingRepository interface {
	GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.Listing, error)
}

type BookingCounter interface {
	CountPending(ctx context.Context, listingID int64) (int64, error)
}
