package catalog

import (
	"context"
	"errors"
	"fmt"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

const defaultPageSize = 20

// Service serves the public hotel catalog. Only published listings are
// ever visible here.
type Service struct {
	listings  ListingRepository
	imageBase string // URL prefix for image view links
}

func NewService(listings ListingRepository, imageBase string) *Service {
	return &Service{listings: listings, imageBase: imageBase}
}

func (s *Service) Browse(ctx context.Context, req BrowseRequest) (*BrowseResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	listings, total, err := s.listings.GetPublished(ctx, domain.ListingFilters{
		Category: req.Category,
		Country:  req.Country,
		Query:    req.Query,
		SortDesc: req.Sort == "price_desc",
		Limit:    limit,
		Offset:   req.Offset,
	})
	if err != nil {
		return nil, err
	}

	cards := make([]ListingCard, 0, len(listings))
	for _, l := range listings {
		cards = append(cards, ListingCard{
			ID:           l.ID,
			Name:         l.Name,
			Category:     string(l.Category),
			Country:      l.Country,
			NightlyPrice: l.NightlyPrice,
			ImageURLs:    s.imageURLs(l.ImageIDs),
		})
	}
	return &BrowseResponse{Listings: cards, Total: total}, nil
}

func (s *Service) GetListing(ctx context.Context, id int64) (*ListingDetail, error) {
	l, err := s.listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !l.Published {
		return nil, ErrNotFound
	}

	return &ListingDetail{
		ID:           l.ID,
		Name:         l.Name,
		Description:  l.Description,
		Category:     string(l.Category),
		Address:      l.Address,
		Country:      l.Country,
		NightlyPrice: l.NightlyPrice,
		MaxCapacity:  l.MaxCapacity,
		ImageURLs:    s.imageURLs(l.ImageIDs),
	}, nil
}

// imageURLs builds view links without touching storage. The link is
// resolved lazily when the browser fetches it.
func (s *Service) imageURLs(ids []string) []string {
	urls := make([]string, 0, len(ids))
	for _, id := range ids {
		urls = append(urls, fmt.Sprintf("%s/%s/view", s.imageBase, id))
	}
	return urls
}
