package hotel

import (
	"context"
	"errors"
	"testing"

	"hotelbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) Create(ctx context.Context, s *domain.Submission) error {
	args := m.Called(ctx, s)
	if args.Error(0) == nil {
		s.ID = 77
	}
	return args.Error(0)
}

func (m *MockSubmissionRepository) GetByID(ctx context.Context, id int64) (*domain.Submission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Submission), args.Error(1)
}

type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.Listing, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Listing), args.Error(1)
}

type MockBookingCounter struct {
	mock.Mock
}

func (m *MockBookingCounter) CountPending(ctx context.Context, listingID int64) (int64, error) {
	args := m.Called(ctx, listingID)
	return args.Get(0).(int64), args.Error(1)
}

func validSubmitRequest() SubmitHotelRequest {
	return SubmitHotelRequest{
		Name:         "Harbor View",
		Description:  "Sea-facing rooms",
		Category:     "luxury",
		Address:      "1 Quay St",
		Country:      "KZ",
		NightlyPrice: 100,
		ImageIDs:     []string{"img-a"},
	}
}

func TestSubmitHotelStartsUnapproved(t *testing.T) {
	subs := new(MockSubmissionRepository)
	svc := NewService(subs, nil, nil)

	subs.On("Create", mock.Anything, mock.AnythingOfType("*domain.Submission")).Return(nil)

	sub, err := svc.SubmitHotel(context.Background(), 3, validSubmitRequest())

	assert.NoError(t, err)
	assert.False(t, sub.Approved)
	assert.Equal(t, int64(3), sub.SubmitterID)
	assert.Equal(t, int64(77), sub.ID)
	assert.Equal(t, domain.DefaultMaxCapacity, sub.MaxCapacity)
}

func TestSubmitHotelImageBounds(t *testing.T) {
	subs := new(MockSubmissionRepository)
	svc := NewService(subs, nil, nil)

	req := validSubmitRequest()
	req.ImageIDs = nil
	_, err := svc.SubmitHotel(context.Background(), 3, req)
	assert.ErrorIs(t, err, ErrValidation)

	req.ImageIDs = make([]string, 16)
	_, err = svc.SubmitHotel(context.Background(), 3, req)
	assert.ErrorIs(t, err, ErrValidation)

	subs.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmitHotelCapacityClamped(t *testing.T) {
	subs := new(MockSubmissionRepository)
	svc := NewService(subs, nil, nil)

	subs.On("Create", mock.Anything, mock.AnythingOfType("*domain.Submission")).Return(nil)

	req := validSubmitRequest()
	req.MaxCapacity = 30
	sub, err := svc.SubmitHotel(context.Background(), 3, req)

	assert.NoError(t, err)
	assert.Equal(t, domain.DefaultMaxCapacity, sub.MaxCapacity)
}

func TestMyListingsAnnotatesPendingCounts(t *testing.T) {
	listings := new(MockListingRepository)
	counter := new(MockBookingCounter)
	svc := NewService(nil, listings, counter)

	listings.On("GetByOwnerID", mock.Anything, int64(3)).Return([]domain.Listing{
		{ID: 10, Name: "Harbor View", Published: true},
		{ID: 11, Name: "Harbor View Annex", Published: true},
	}, nil)
	counter.On("CountPending", mock.Anything, int64(10)).Return(int64(2), nil)
	counter.On("CountPending", mock.Anything, int64(11)).Return(int64(0), errors.New("db down"))

	rows, err := svc.MyListings(context.Background(), 3)

	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, int64(2), rows[0].PendingBookings)
	// Count failures degrade to zero, the row itself survives.
	assert.Equal(t, int64(0), rows[1].PendingBookings)
}
