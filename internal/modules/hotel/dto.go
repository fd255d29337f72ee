package hotel

type SubmitHotelRequest struct {
	Name         string   `json:"name" validate:"required,min=2"`
	Description  string   `json:"description" validate:"required"`
	Category     string   `json:"category" validate:"required,oneof=luxury medium budget"`
	Address      string   `json:"address" validate:"required"`
	Country      string   `json:"country" validate:"required"`
	NightlyPrice float64  `json:"nightly_price" validate:"required,gt=0"`
	MaxCapacity  int      `json:"max_capacity" validate:"omitempty,min=1,max=7"`
	ImageIDs     []string `json:"image_ids" validate:"required,min=1,max=15"`
}

// OwnedListing is a listing row on the owner dashboard, annotated with
// the number of booking requests still awaiting a decision.
type OwnedListing struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Country         string  `json:"country"`
	NightlyPrice    float64 `json:"nightly_price"`
	Published       bool    `json:"published"`
	PendingBookings int64   `json:"pending_bookings"`
}
