package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Decided reports whether the status is terminal. Confirmed and
// cancelled bookings accept no further transitions.
func (s BookingStatus) Decided() bool {
	return s == BookingConfirmed || s == BookingCancelled
}

type Booking struct {
	ID         int64         `json:"id"`
	Reference  string        `json:"reference"`
	ListingID  int64         `json:"listing_id" validate:"required"`
	RenterID   int64         `json:"renter_id" validate:"required"`
	PartySize  int           `json:"party_size" validate:"required,gte=1,lte=7"`
	Nights     int           `json:"nights"`
	CheckIn    time.Time     `json:"check_in" validate:"required"`
	CheckOut   time.Time     `json:"check_out" validate:"required"`
	MonthLabel string        `json:"month_label"`
	TotalPrice float64       `json:"total_price" validate:"gte=0"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
	DecidedAt  *time.Time    `json:"decided_at,omitempty"`
}

// Calendar returns the persisted stay window as ordered RFC3339
// strings: [checkIn, checkOut]. Time-status classification consumes
// this shape.
func (b *Booking) Calendar() []string {
	return []string{b.CheckIn.Format(time.RFC3339), b.CheckOut.Format(time.RFC3339)}
}

// ShortRef is the truncated booking reference used in outbound email.
func (b *Booking) ShortRef() string {
	if len(b.Reference) <= 6 {
		return b.Reference
	}
	return b.Reference[:6]
}
