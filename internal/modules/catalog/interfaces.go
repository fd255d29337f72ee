package catalog

import (
	"context"

	"hotelbooking/internal/domain"
)

type ListingRepository interface {
	GetPublished(ctx context.Context, f domain.ListingFilters) ([]domain.Listing, int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
}
