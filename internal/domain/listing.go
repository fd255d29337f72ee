package domain

import "time"

type HotelCategory string

const (
	CategoryLuxury HotelCategory = "luxury"
	CategoryMedium HotelCategory = "medium"
	CategoryBudget HotelCategory = "budget"
)

const DefaultMaxCapacity = 7

// Listing is a published, bookable hotel record. Listings exist only as
// mirrors of approved submissions and share the submission's identity.
type Listing struct {
	ID           int64         `json:"id"`
	OwnerID      int64         `json:"owner_id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Category     HotelCategory `json:"category"`
	Address      string        `json:"address"`
	Country      string        `json:"country"`
	NightlyPrice float64       `json:"nightly_price"`
	MaxCapacity  int           `json:"max_capacity"`
	ImageIDs     []string      `json:"image_ids,omitempty"`
	Published    bool          `json:"published"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// ListingFilters narrows a published-listing query.
type ListingFilters struct {
	Category string
	Country  string
	Query    string // name contains, case-insensitive
	SortDesc bool   // price sort direction
	Limit    int
	Offset   int
}

// Submission is an unapproved hotel record awaiting admin review.
// Submissions are retained after approval or un-approval as an audit trail.
type Submission struct {
	ID           int64         `json:"id"`
	SubmitterID  int64         `json:"submitter_id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Category     HotelCategory `json:"category"`
	Address      string        `json:"address"`
	Country      string        `json:"country"`
	NightlyPrice float64       `json:"nightly_price"`
	MaxCapacity  int           `json:"max_capacity"`
	ImageIDs     []string      `json:"image_ids,omitempty"`
	Approved     bool          `json:"approved"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
