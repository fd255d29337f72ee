package booking

import (
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/dates"
)

type CreateBookingRequest struct {
	ListingID int64     `json:"listing_id" binding:"required"`
	CheckIn   time.Time `json:"check_in" binding:"required"`
	CheckOut  time.Time `json:"check_out" binding:"required"`
	PartySize int       `json:"party_size" binding:"required"`
}

type DecideBookingRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approve reject"`
}

// TripDetails is a renter's booking joined with listing display fields
// and the clock-derived time status.
type TripDetails struct {
	ID           int64                `json:"id"`
	Reference    string               `json:"reference"`
	Status       domain.BookingStatus `json:"status"`
	TimeStatus   dates.TimeStatus     `json:"time_status"`
	CheckIn      time.Time            `json:"check_in"`
	CheckOut     time.Time            `json:"check_out"`
	Nights       int                  `json:"nights"`
	PartySize    int                  `json:"party_size"`
	TotalPrice   float64              `json:"total_price"`
	ListingID    int64                `json:"listing_id"`
	HotelName    string               `json:"hotel_name"`
	Country      string               `json:"country"`
	Category     string               `json:"category"`
	NightlyPrice float64              `json:"nightly_price"`
	ImageIDs     []string             `json:"image_ids,omitempty"`
}

// OwnerBookingDetails is a listing owner's view of one booking request,
// joined best-effort with the renter's contact info.
type OwnerBookingDetails struct {
	ID         int64                `json:"id"`
	Reference  string               `json:"reference"`
	Status     domain.BookingStatus `json:"status"`
	TimeStatus dates.TimeStatus     `json:"time_status"`
	CheckIn    time.Time            `json:"check_in"`
	CheckOut   time.Time            `json:"check_out"`
	Nights     int                  `json:"nights"`
	PartySize  int                  `json:"party_size"`
	TotalPrice float64              `json:"total_price"`
	RenterID   int64                `json:"renter_id"`
	RenterName string               `json:"renter_name,omitempty"`
	RenterMail string               `json:"renter_email,omitempty"`
}
