package hotel

import (
	"context"
	"log"

	"hotelbooking/internal/domain"
)

type Service struct {
	submissions SubmissionRepository
	listings    ListingRepository
	bookings    BookingCounter
}

func NewService(
	submissions SubmissionRepository,
	listings ListingRepository,
	bookings BookingCounter,
) *Service {
	return &Service{
		submissions: submissions,
		listings:    listings,
		bookings:    bookings,
	}
}

// SubmitHotel files a new hotel for admin review. The submission starts
// unapproved and becomes a bookable listing only after approval.
func (s *Service) SubmitHotel(ctx context.Context, ownerID int64, req SubmitHotelRequest) (*domain.Submission, error) {
	if len(req.ImageIDs) < 1 || len(req.ImageIDs) > 15 {
		return nil, ErrValidation
	}

	capacity := req.MaxCapacity
	if capacity <= 0 || capacity > domain.DefaultMaxCapacity {
		capacity = domain.DefaultMaxCapacity
	}

	sub := &domain.Submission{
		SubmitterID:  ownerID,
		Name:         req.Name,
		Description:  req.Description,
		Category:     domain.HotelCategory(req.Category),
		Address:      req.Address,
		Country:      req.Country,
		NightlyPrice: req.NightlyPrice,
		MaxCapacity:  capacity,
		ImageIDs:     req.ImageIDs,
		Approved:     false,
	}
	if err := s.submissions.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// MyListings returns the owner's listings with pending booking counts.
// A failed count leaves the row in place with a zero count.
func (s *Service) MyListings(ctx context.Context, ownerID int64) ([]OwnedListing, error) {
	listings, err := s.listings.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]OwnedListing, 0, len(listings))
	for _, l := range listings {
		pending, err := s.bookings.CountPending(ctx, l.ID)
		if err != nil {
			log.Printf("hotel_pending_count_fail listing_id=%d err=%v", l.ID, err)
			pending = 0
		}
		out = append(out, OwnedListing{
			ID:              l.ID,
			Name:            l.Name,
			Category:        string(l.Category),
			Country:         l.Country,
			NightlyPrice:    l.NightlyPrice,
			Published:       l.Published,
			PendingBookings: pending,
		})
	}
	return out, nil
}
