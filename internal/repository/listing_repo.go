package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ListingRepository struct {
	db *gorm.DB
}

func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

type listingModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	OwnerID      int64     `gorm:"column:owner_id;index"`
	Name         string    `gorm:"column:name"`
	Description  string    `gorm:"column:description;type:text"`
	Category     string    `gorm:"column:category"`
	Address      string    `gorm:"column:address"`
	Country      string    `gorm:"column:country"`
	NightlyPrice float64   `gorm:"column:nightly_price"`
	MaxCapacity  int       `gorm:"column:max_capacity"`
	ImageIDs     string    `gorm:"column:image_ids;type:text"`
	Published    bool      `gorm:"column:published"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (listingModel) TableName() string { return "listings" }

func toDomainListing(m listingModel) *domain.Listing {
	var imageIDs []string
	if m.ImageIDs != "" {
		_ = json.Unmarshal([]byte(m.ImageIDs), &imageIDs)
	}

	return &domain.Listing{
		ID:           m.ID,
		OwnerID:      m.OwnerID,
		Name:         m.Name,
		Description:  m.Description,
		Category:     domain.HotelCategory(m.Category),
		Address:      m.Address,
		Country:      m.Country,
		NightlyPrice: m.NightlyPrice,
		MaxCapacity:  m.MaxCapacity,
		ImageIDs:     imageIDs,
		Published:    m.Published,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toListingModel(l *domain.Listing) listingModel {
	var imageIDs string
	if len(l.ImageIDs) > 0 {
		b, _ := json.Marshal(l.ImageIDs)
		imageIDs = string(b)
	}

	return listingModel{
		ID:           l.ID,
		OwnerID:      l.OwnerID,
		Name:         l.Name,
		Description:  l.Description,
		Category:     string(l.Category),
		Address:      l.Address,
		Country:      l.Country,
		NightlyPrice: l.NightlyPrice,
		MaxCapacity:  l.MaxCapacity,
		ImageIDs:     imageIDs,
		Published:    l.Published,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

// GetPublished returns published listings with optional filters.
func (r *ListingRepository) GetPublished(ctx context.Context, f domain.ListingFilters) ([]domain.Listing, int64, error) {
	var total int64

	q := r.db.WithContext(ctx).
		Model(&listingModel{}).
		Where("published = ?", true)

	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Country != "" {
		q = q.Where("country = ?", f.Country)
	}
	if strings.TrimSpace(f.Query) != "" {
		sv := "%" + strings.ToLower(strings.TrimSpace(f.Query)) + "%"
		q = q.Where("LOWER(name) LIKE ?", sv)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "nightly_price ASC"
	if f.SortDesc {
		order = "nightly_price DESC"
	}

	var rows []listingModel
	if err := q.
		Order(order).
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]domain.Listing, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainListing(m))
	}
	return out, total, nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	var m listingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainListing(m), nil
}

func (r *ListingRepository) GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.Listing, error) {
	var rows []listingModel
	tx := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Listing, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainListing(m))
	}
	return out, nil
}

// upsertListingRow writes a listing row keyed by its explicit ID,
// replacing all descriptive fields on conflict. The approval mirror
// relies on this to keep listing identity equal to submission identity.
func upsertListingRow(db *gorm.DB, m *listingModel) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(m).Error
}

// deleteListingRow removes a listing row. A missing record is not an
// error: the mirror may never have been created or was already removed.
func deleteListingRow(db *gorm.DB, id int64) error {
	err := db.Delete(&listingModel{}, id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
