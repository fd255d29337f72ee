package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/dates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 501 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByRenterID(ctx context.Context, renterID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, renterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByListingID(ctx context.Context, listingID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, listingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetListingOwnerForBooking(ctx context.Context, bookingID int64) (int64, string, error) {
	args := m.Called(ctx, bookingID)
	return args.Get(0).(int64), args.String(1), args.Error(2)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status string) error {
	args := m.Called(ctx, bookingID, status)
	return args.Error(0)
}

func (m *MockBookingRepository) CountPending(ctx context.Context, listingID int64) (int64, error) {
	args := m.Called(ctx, listingID)
	return args.Get(0).(int64), args.Error(1)
}

type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) BookingDecided(ctx context.Context, recipientEmail string, status domain.BookingStatus, hotelName, bookingRef string, totalPrice float64) error {
	args := m.Called(ctx, recipientEmail, status, hotelName, bookingRef, totalPrice)
	return args.Error(0)
}

func newTestService() (*Service, *MockBookingRepository, *MockListingRepository, *MockUserRepository, *MockNotifier) {
	bookings := new(MockBookingRepository)
	listings := new(MockListingRepository)
	users := new(MockUserRepository)
	notifs := new(MockNotifier)
	return NewService(bookings, listings, users, notifs), bookings, listings, users, notifs
}

func publishedListing() *domain.Listing {
	return &domain.Listing{
		ID:           10,
		OwnerID:      1,
		Name:         "Grand Plaza",
		Country:      "France",
		Category:     domain.CategoryMedium,
		NightlyPrice: 100,
		MaxCapacity:  7,
		Published:    true,
	}
}

func TestService_CreateBooking_Success(t *testing.T) {
	service, bookings, listings, _, _ := newTestService()

	listings.On("GetByID", mock.Anything, int64(10)).Return(publishedListing(), nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)

	req := CreateBookingRequest{
		ListingID: 10,
		CheckIn:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
		PartySize: 2,
	}

	b, err := service.CreateBooking(context.Background(), 999, req)

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, 3, b.Nights)
	assert.Equal(t, 600.0, b.TotalPrice)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, "June", b.MonthLabel)
	assert.NotEmpty(t, b.Reference)
}

func TestService_CreateBooking_InvertedDates(t *testing.T) {
	service, _, _, _, _ := newTestService()

	req := CreateBookingRequest{
		ListingID: 10,
		CheckIn:   time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		PartySize: 2,
	}

	_, err := service.CreateBooking(context.Background(), 999, req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CreateBooking_PartySizeBounds(t *testing.T) {
	service, _, listings, _, _ := newTestService()

	listings.On("GetByID", mock.Anything, int64(10)).Return(publishedListing(), nil)

	req := CreateBookingRequest{
		ListingID: 10,
		CheckIn:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
	}

	req.PartySize = 0
	_, err := service.CreateBooking(context.Background(), 999, req)
	assert.ErrorIs(t, err, ErrValidation)

	req.PartySize = 8
	_, err = service.CreateBooking(context.Background(), 999, req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CreateBooking_UnpublishedListing(t *testing.T) {
	service, _, listings, _, _ := newTestService()

	l := publishedListing()
	l.Published = false
	listings.On("GetByID", mock.Anything, int64(10)).Return(l, nil)

	req := CreateBookingRequest{
		ListingID: 10,
		CheckIn:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
		PartySize: 2,
	}

	_, err := service.CreateBooking(context.Background(), 999, req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CreateBooking_UnknownListing(t *testing.T) {
	service, _, listings, _, _ := newTestService()

	listings.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	req := CreateBookingRequest{
		ListingID: 404,
		CheckIn:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
		PartySize: 2,
	}

	_, err := service.CreateBooking(context.Background(), 999, req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_GetListingBookings_UnknownListing(t *testing.T) {
	service, _, listings, _, _ := newTestService()

	listings.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.GetListingBookings(context.Background(), 404, 1, time.Now())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_DecideBooking_Approve(t *testing.T) {
	service, bookings, listings, users, notifs := newTestService()

	bookingID := int64(123)
	ownerID := int64(1)
	renterID := int64(888)

	bookings.On("GetListingOwnerForBooking", mock.Anything, bookingID).Return(ownerID, "pending", nil)
	bookings.On("UpdateStatus", mock.Anything, bookingID, "confirmed").Return(nil)
	bookings.On("GetByID", mock.Anything, bookingID).Return(&domain.Booking{
		ID:         bookingID,
		Reference:  "abcdef-123456",
		ListingID:  10,
		RenterID:   renterID,
		TotalPrice: 600,
		Status:     domain.BookingConfirmed,
	}, nil)

	users.On("GetByID", mock.Anything, renterID).Return(&domain.User{
		ID:    renterID,
		Email: "renter@example.com",
	}, nil)
	listings.On("GetByID", mock.Anything, int64(10)).Return(publishedListing(), nil)

	// Confirmed decisions carry a non-empty total price.
	notifs.On("BookingDecided", mock.Anything, "renter@example.com",
		domain.BookingConfirmed, "Grand Plaza", "abcdef", 600.0).Return(nil)

	b, err := service.DecideBooking(context.Background(), bookingID, ownerID, "approve")

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	notifs.AssertExpectations(t)
}

func TestService_DecideBooking_Reject(t *testing.T) {
	service, bookings, listings, users, notifs := newTestService()

	bookingID := int64(123)
	ownerID := int64(1)
	renterID := int64(888)

	bookings.On("GetListingOwnerForBooking", mock.Anything, bookingID).Return(ownerID, "pending", nil)
	bookings.On("UpdateStatus", mock.Anything, bookingID, "cancelled").Return(nil)
	bookings.On("GetByID", mock.Anything, bookingID).Return(&domain.Booking{
		ID:         bookingID,
		Reference:  "abcdef-123456",
		ListingID:  10,
		RenterID:   renterID,
		TotalPrice: 600,
		Status:     domain.BookingCancelled,
	}, nil)

	users.On("GetByID", mock.Anything, renterID).Return(&domain.User{
		ID:    renterID,
		Email: "renter@example.com",
	}, nil)
	listings.On("GetByID", mock.Anything, int64(10)).Return(publishedListing(), nil)

	// Rejections carry an empty price.
	notifs.On("BookingDecided", mock.Anything, "renter@example.com",
		domain.BookingCancelled, "Grand Plaza", "abcdef", 0.0).Return(nil)

	b, err := service.DecideBooking(context.Background(), bookingID, ownerID, "reject")

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b.Status)
	notifs.AssertExpectations(t)
}

func TestService_DecideBooking_AlreadyDecided(t *testing.T) {
	service, bookings, _, _, _ := newTestService()

	bookings.On("GetListingOwnerForBooking", mock.Anything, int64(123)).Return(int64(1), "confirmed", nil)

	_, err := service.DecideBooking(context.Background(), 123, 1, "reject")
	assert.ErrorIs(t, err, ErrAlreadyDecided)
}

func TestService_DecideBooking_Forbidden(t *testing.T) {
	service, bookings, _, _, _ := newTestService()

	bookings.On("GetListingOwnerForBooking", mock.Anything, int64(123)).Return(int64(1), "pending", nil)

	_, err := service.DecideBooking(context.Background(), 123, 777, "approve")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_DecideBooking_NotFound(t *testing.T) {
	service, bookings, _, _, _ := newTestService()

	bookings.On("GetListingOwnerForBooking", mock.Anything, int64(123)).Return(int64(0), "", nil)

	_, err := service.DecideBooking(context.Background(), 123, 1, "approve")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_DecideBooking_NotificationFailureIsNonFatal(t *testing.T) {
	service, bookings, listings, users, notifs := newTestService()

	bookingID := int64(123)

	bookings.On("GetListingOwnerForBooking", mock.Anything, bookingID).Return(int64(1), "pending", nil)
	bookings.On("UpdateStatus", mock.Anything, bookingID, "confirmed").Return(nil)
	bookings.On("GetByID", mock.Anything, bookingID).Return(&domain.Booking{
		ID:        bookingID,
		Reference: "abcdef-123456",
		ListingID: 10,
		RenterID:  888,
		Status:    domain.BookingConfirmed,
	}, nil)
	users.On("GetByID", mock.Anything, int64(888)).Return(&domain.User{ID: 888, Email: "renter@example.com"}, nil)
	listings.On("GetByID", mock.Anything, int64(10)).Return(publishedListing(), nil)
	notifs.On("BookingDecided", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("smtp down"))

	b, err := service.DecideBooking(context.Background(), bookingID, 1, "approve")

	// The persisted transition stands even when the notification fails.
	assert.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
}

func TestService_CountPending_ReflectsDecisions(t *testing.T) {
	service, bookings, _, _, _ := newTestService()

	bookings.On("CountPending", mock.Anything, int64(10)).Return(int64(2), nil).Once()
	bookings.On("CountPending", mock.Anything, int64(10)).Return(int64(1), nil).Once()

	cnt, err := service.CountPending(context.Background(), 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), cnt)

	// After one pending booking is decided the recount drops to 1.
	cnt, err = service.CountPending(context.Background(), 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), cnt)
}

func TestService_GetMyTrips_BestEffortJoin(t *testing.T) {
	service, bookings, listings, _, _ := newTestService()

	now := time.Date(2024, 6, 2, 12, 0, 0, 0, time.UTC)

	bookings.On("GetByRenterID", mock.Anything, int64(888)).Return([]domain.Booking{
		{
			ID:        1,
			ListingID: 10,
			CheckIn:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			CheckOut:  time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC),
			Status:    domain.BookingConfirmed,
		},
		{
			ID:        2,
			ListingID: 20, // listing has since been unpublished
			CheckIn:   time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			CheckOut:  time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC),
			Status:    domain.BookingPending,
		},
	}, nil)

	listings.On("GetByID", mock.Anything, int64(10)).Return(publishedListing(), nil)
	listings.On("GetByID", mock.Anything, int64(20)).Return(nil, errors.New("record not found"))

	trips, err := service.GetMyTrips(context.Background(), 888, now)

	assert.NoError(t, err)
	assert.Len(t, trips, 2)

	assert.Equal(t, "Grand Plaza", trips[0].HotelName)
	assert.Equal(t, dates.StatusActive, trips[0].TimeStatus)

	// The orphaned booking survives with placeholder display fields.
	assert.Equal(t, "Listing unavailable", trips[1].HotelName)
	assert.Equal(t, dates.StatusUpcoming, trips[1].TimeStatus)
}
