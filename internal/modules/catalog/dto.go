package catalog

type BrowseRequest struct {
	Category string `form:"category" binding:"omitempty,oneof=luxury medium budget"`
	Country  string `form:"country"`
	Query    string `form:"q"`
	Sort     string `form:"sort" binding:"omitempty,oneof=price_asc price_desc"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset   int    `form:"offset" binding:"omitempty,min=0"`
}

// ListingCard is the browse-grid projection of a listing.
type ListingCard struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Country      string   `json:"country"`
	NightlyPrice float64  `json:"nightly_price"`
	ImageURLs    []string `json:"image_urls"`
}

type ListingDetail struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Address      string   `json:"address"`
	Country      string   `json:"country"`
	NightlyPrice float64  `json:"nightly_price"`
	MaxCapacity  int      `json:"max_capacity"`
	ImageURLs    []string `json:"image_urls"`
}

type BrowseResponse struct {
	Listings []ListingCard `json:"listings"`
	Total    int64         `json:"total"`
}
