package admin

import "time"

type SetApprovalRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

// PendingSubmission is a submission joined with its submitter's contact
// details. A submitter that cannot be resolved is rendered with
// placeholders rather than dropped from the review queue.
type PendingSubmission struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Address        string    `json:"address"`
	Country        string    `json:"country"`
	NightlyPrice   float64   `json:"nightly_price"`
	MaxCapacity    int       `json:"max_capacity"`
	ImageIDs       []string  `json:"image_ids"`
	CreatedAt      time.Time `json:"created_at"`
	SubmitterName  string    `json:"submitter_name"`
	SubmitterEmail string    `json:"submitter_email"`
}

type Statistics struct {
	Users              int64            `json:"users"`
	PublishedListings  int64            `json:"published_listings"`
	PendingSubmissions int64            `json:"pending_submissions"`
	BookingsToday      int64            `json:"bookings_today"`
	BookingsByStatus   map[string]int64 `json:"bookings_by_status"`
}
