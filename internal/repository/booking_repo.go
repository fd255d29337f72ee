package repository

import (
	"context"
	"time"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID         int64      `gorm:"column:id;primaryKey"`
	Reference  string     `gorm:"column:reference;uniqueIndex"`
	ListingID  int64      `gorm:"column:listing_id;index"`
	RenterID   int64      `gorm:"column:renter_id;index"`
	PartySize  int        `gorm:"column:party_size"`
	Nights     int        `gorm:"column:nights"`
	CheckIn    time.Time  `gorm:"column:check_in"`
	CheckOut   time.Time  `gorm:"column:check_out"`
	MonthLabel string     `gorm:"column:month_label"`
	TotalPrice float64    `gorm:"column:total_price"`
	Status     string     `gorm:"column:status;index"`
	CreatedAt  time.Time  `gorm:"column:created_at"`
	UpdatedAt  time.Time  `gorm:"column:updated_at"`
	DecidedAt  *time.Time `gorm:"column:decided_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:         m.ID,
		Reference:  m.Reference,
		ListingID:  m.ListingID,
		RenterID:   m.RenterID,
		PartySize:  m.PartySize,
		Nights:     m.Nights,
		CheckIn:    m.CheckIn,
		CheckOut:   m.CheckOut,
		MonthLabel: m.MonthLabel,
		TotalPrice: m.TotalPrice,
		Status:     domain.BookingStatus(m.Status),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		DecidedAt:  m.DecidedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:         b.ID,
		Reference:  b.Reference,
		ListingID:  b.ListingID,
		RenterID:   b.RenterID,
		PartySize:  b.PartySize,
		Nights:     b.Nights,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		MonthLabel: b.MonthLabel,
		TotalPrice: b.TotalPrice,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
		DecidedAt:  b.DecidedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetByRenterID(ctx context.Context, renterID int64) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("renter_id = ?", renterID).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) GetByListingID(ctx context.Context, listingID int64) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// GetListingOwnerForBooking resolves the owning user of the booked
// listing together with the booking's current status.
func (r *BookingRepository) GetListingOwnerForBooking(ctx context.Context, bookingID int64) (ownerID int64, status string, err error) {
	var row struct {
		OwnerID int64  `gorm:"column:owner_id"`
		Status  string `gorm:"column:status"`
	}

	tx := r.db.WithContext(ctx).
		Table("bookings").
		Select("listings.owner_id AS owner_id, bookings.status AS status").
		Joins("JOIN listings ON listings.id = bookings.listing_id").
		Where("bookings.id = ?", bookingID).
		Scan(&row)
	if tx.Error != nil {
		return 0, "", tx.Error
	}
	return row.OwnerID, row.Status, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ?", bookingID).
		Updates(map[string]any{
			"status":     status,
			"decided_at": &now,
		}).Error
}

func (r *BookingRepository) CountPending(ctx context.Context, listingID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("listing_id = ? AND status = ?", listingID, string(domain.BookingPending)).
		Count(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return cnt, nil
}
