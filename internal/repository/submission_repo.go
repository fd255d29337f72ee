package repository

import (
	"context"
	"encoding/json"
	"time"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

type submissionModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	SubmitterID  int64     `gorm:"column:submitter_id;index"`
	Name         string    `gorm:"column:name"`
	Description  string    `gorm:"column:description;type:text"`
	Category     string    `gorm:"column:category"`
	Address      string    `gorm:"column:address"`
	Country      string    `gorm:"column:country"`
	NightlyPrice float64   `gorm:"column:nightly_price"`
	MaxCapacity  int       `gorm:"column:max_capacity"`
	ImageIDs     string    `gorm:"column:image_ids;type:text"`
	Approved     bool      `gorm:"column:approved;index"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (submissionModel) TableName() string { return "submissions" }

func toDomainSubmission(m submissionModel) *domain.Submission {
	var imageIDs []string
	if m.ImageIDs != "" {
		_ = json.Unmarshal([]byte(m.ImageIDs), &imageIDs)
	}

	return &domain.Submission{
		ID:           m.ID,
		SubmitterID:  m.SubmitterID,
		Name:         m.Name,
		Description:  m.Description,
		Category:     domain.HotelCategory(m.Category),
		Address:      m.Address,
		Country:      m.Country,
		NightlyPrice: m.NightlyPrice,
		MaxCapacity:  m.MaxCapacity,
		ImageIDs:     imageIDs,
		Approved:     m.Approved,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toSubmissionModel(s *domain.Submission) submissionModel {
	var imageIDs string
	if len(s.ImageIDs) > 0 {
		b, _ := json.Marshal(s.ImageIDs)
		imageIDs = string(b)
	}

	return submissionModel{
		ID:           s.ID,
		SubmitterID:  s.SubmitterID,
		Name:         s.Name,
		Description:  s.Description,
		Category:     string(s.Category),
		Address:      s.Address,
		Country:      s.Country,
		NightlyPrice: s.NightlyPrice,
		MaxCapacity:  s.MaxCapacity,
		ImageIDs:     imageIDs,
		Approved:     s.Approved,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func (r *SubmissionRepository) Create(ctx context.Context, s *domain.Submission) error {
	m := toSubmissionModel(s)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainSubmission(m)
	return nil
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id int64) (*domain.Submission, error) {
	var m submissionModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainSubmission(m), nil
}

func (r *SubmissionRepository) GetPending(ctx context.Context) ([]domain.Submission, error) {
	var rows []submissionModel
	tx := r.db.WithContext(ctx).
		Where("approved = ?", false).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Submission, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainSubmission(m))
	}
	return out, nil
}

func (r *SubmissionRepository) SetApproved(ctx context.Context, id int64, approved bool) error {
	return r.db.WithContext(ctx).
		Model(&submissionModel{}).
		Where("id = ?", id).
		Update("approved", approved).Error
}
