package booking

import (
	"context"
	"errors"
	"log"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/dates"
	"hotelbooking/internal/pkg/pricing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	bookings BookingRepository
	listings ListingRepository
	users    UserRepository
	notifs   Notifier
}

func NewService(
	bookings BookingRepository,
	listings ListingRepository,
	users UserRepository,
	notifs Notifier,
) *Service {
	return &Service{
		bookings: bookings,
		listings: listings,
		users:    users,
		notifs:   notifs,
	}
}

// CreateBooking validates the request, prices the stay and persists a
// pending booking. Validation happens before any write; a repository
// failure leaves no partial state behind.
func (s *Service) CreateBooking(ctx context.Context, renterID int64, req CreateBookingRequest) (*domain.Booking, error) {
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return nil, ErrValidation
	}
	if !req.CheckOut.After(req.CheckIn) {
		return nil, ErrValidation
	}

	listing, err := s.listings.GetByID(ctx, req.ListingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrValidation
		}
		return nil, err
	}
	if !listing.Published {
		return nil, ErrValidation
	}

	capacity := listing.MaxCapacity
	if capacity <= 0 || capacity > domain.DefaultMaxCapacity {
		capacity = domain.DefaultMaxCapacity
	}
	if req.PartySize < 1 || req.PartySize > capacity {
		return nil, ErrValidation
	}

	nights := pricing.Nights(req.CheckIn, req.CheckOut)
	total := pricing.Total(listing.NightlyPrice, req.PartySize, nights)

	b := &domain.Booking{
		Reference:  uuid.New().String(),
		ListingID:  req.ListingID,
		RenterID:   renterID,
		PartySize:  req.PartySize,
		Nights:     nights,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		MonthLabel: req.CheckIn.Month().String(),
		TotalPrice: total,
		Status:     domain.BookingPending,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrConflict
		}
		return nil, err
	}

	return b, nil
}

// DecideBooking moves a pending booking to confirmed or cancelled. Only
// the owner of the booked listing may decide, and both outcomes are
// terminal: deciding an already-decided booking is rejected.
func (s *Service) DecideBooking(ctx context.Context, bookingID, actorUserID int64, decision string) (*domain.Booking, error) {
	var newStatus domain.BookingStatus
	switch decision {
	case "approve":
		newStatus = domain.BookingConfirmed
	case "reject":
		newStatus = domain.BookingCancelled
	default:
		return nil, ErrValidation
	}

	ownerID, currentStatus, err := s.bookings.GetListingOwnerForBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if ownerID == 0 && currentStatus == "" {
		return nil, ErrNotFound
	}
	if ownerID != actorUserID {
		return nil, ErrForbidden
	}
	if domain.BookingStatus(currentStatus).Decided() {
		return nil, ErrAlreadyDecided
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, string(newStatus)); err != nil {
		return nil, err
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	// Best-effort notification after the transition has persisted.
	// Recipient resolution or enqueue failures are logged and swallowed,
	// never rolled back.
	s.notifyDecided(ctx, b, newStatus)

	return b, nil
}

func (s *Service) notifyDecided(ctx context.Context, b *domain.Booking, status domain.BookingStatus) {
	if s.notifs == nil {
		return
	}

	renter, err := s.users.GetByID(ctx, b.RenterID)
	if err != nil || renter.Email == "" {
		log.Printf("booking_notify_skip booking_id=%d reason=recipient_unresolved err=%v", b.ID, err)
		return
	}

	hotelName := "your hotel"
	if listing, err := s.listings.GetByID(ctx, b.ListingID); err == nil {
		hotelName = listing.Name
	}

	price := 0.0
	if status == domain.BookingConfirmed {
		price = b.TotalPrice
	}

	if err := s.notifs.BookingDecided(ctx, renter.Email, status, hotelName, b.ShortRef(), price); err != nil {
		log.Printf("booking_notify_fail booking_id=%d err=%v", b.ID, err)
	}
}

// CountPending drives the attention badge for a listing. It is
// recomputed per view against the repository, no caching.
func (s *Service) CountPending(ctx context.Context, listingID int64) (int64, error) {
	return s.bookings.CountPending(ctx, listingID)
}

// GetMyTrips returns the renter's bookings joined with listing details,
// one lookup per unique listing. A failed listing lookup yields
// placeholder display fields; the booking itself is always included.
func (s *Service) GetMyTrips(ctx context.Context, renterID int64, now time.Time) ([]TripDetails, error) {
	rows, err := s.bookings.GetByRenterID(ctx, renterID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []TripDetails{}, nil
	}

	listingsByID := make(map[int64]*domain.Listing)
	for _, b := range rows {
		if _, seen := listingsByID[b.ListingID]; seen {
			continue
		}
		l, err := s.listings.GetByID(ctx, b.ListingID)
		if err != nil {
			listingsByID[b.ListingID] = nil // listing unpublished or gone
			continue
		}
		listingsByID[b.ListingID] = l
	}

	out := make([]TripDetails, 0, len(rows))
	for _, b := range rows {
		d := TripDetails{
			ID:         b.ID,
			Reference:  b.Reference,
			Status:     b.Status,
			TimeStatus: dates.ClassifyTimeStatus(b.Calendar(), now),
			CheckIn:    b.CheckIn,
			CheckOut:   b.CheckOut,
			Nights:     b.Nights,
			PartySize:  b.PartySize,
			TotalPrice: b.TotalPrice,
			ListingID:  b.ListingID,
			HotelName:  "Listing unavailable",
		}
		if l := listingsByID[b.ListingID]; l != nil {
			d.HotelName = l.Name
			d.Country = l.Country
			d.Category = string(l.Category)
			d.NightlyPrice = l.NightlyPrice
			d.ImageIDs = l.ImageIDs
		}
		out = append(out, d)
	}
	return out, nil
}

// GetListingBookings returns all booking requests for one of the
// actor's listings, joined best-effort with renter contact info.
func (s *Service) GetListingBookings(ctx context.Context, listingID, actorUserID int64, now time.Time) ([]OwnerBookingDetails, error) {
	listing, err := s.listings.GetByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if listing.OwnerID != actorUserID {
		return nil, ErrForbidden
	}

	rows, err := s.bookings.GetByListingID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	rentersByID := make(map[int64]*domain.User)
	out := make([]OwnerBookingDetails, 0, len(rows))
	for _, b := range rows {
		d := OwnerBookingDetails{
			ID:         b.ID,
			Reference:  b.Reference,
			Status:     b.Status,
			TimeStatus: dates.ClassifyTimeStatus(b.Calendar(), now),
			CheckIn:    b.CheckIn,
			CheckOut:   b.CheckOut,
			Nights:     b.Nights,
			PartySize:  b.PartySize,
			TotalPrice: b.TotalPrice,
			RenterID:   b.RenterID,
		}

		renter, seen := rentersByID[b.RenterID]
		if !seen {
			renter, _ = s.users.GetByID(ctx, b.RenterID)
			rentersByID[b.RenterID] = renter
		}
		if renter != nil {
			d.RenterName = renter.Name
			d.RenterMail = renter.Email
		}

		out = append(out, d)
	}
	return out, nil
}

// GetByID retrieves a booking by ID.
func (s *Service) GetByID(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, bookingID)
}
