package repository

import (
	"context"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

// ApprovalRepository performs the submission/listing mirror as one
// transaction. The submission flag and the mirrored listing either both
// change or neither does.
type ApprovalRepository struct {
	db *gorm.DB
}

func NewApprovalRepository(db *gorm.DB) *ApprovalRepository {
	return &ApprovalRepository{db: db}
}

// Approve flips the submission to approved and upserts the published
// listing mirror under the same identity.
func (r *ApprovalRepository) Approve(ctx context.Context, submissionID int64) (*domain.Submission, error) {
	var sub submissionModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sub, submissionID).Error; err != nil {
			return err
		}

		if err := tx.Model(&submissionModel{}).
			Where("id = ?", submissionID).
			Update("approved", true).Error; err != nil {
			return err
		}
		sub.Approved = true

		mirror := listingModel{
			ID:           sub.ID,
			OwnerID:      sub.SubmitterID,
			Name:         sub.Name,
			Description:  sub.Description,
			Category:     sub.Category,
			Address:      sub.Address,
			Country:      sub.Country,
			NightlyPrice: sub.NightlyPrice,
			MaxCapacity:  sub.MaxCapacity,
			ImageIDs:     sub.ImageIDs,
			Published:    true,
		}
		return upsertListingRow(tx, &mirror)
	})
	if err != nil {
		return nil, err
	}
	return toDomainSubmission(sub), nil
}

// Unapprove clears the submission flag and removes the listing mirror.
// A mirror that is already gone is not an error.
func (r *ApprovalRepository) Unapprove(ctx context.Context, submissionID int64) (*domain.Submission, error) {
	var sub submissionModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sub, submissionID).Error; err != nil {
			return err
		}

		if err := tx.Model(&submissionModel{}).
			Where("id = ?", submissionID).
			Update("approved", false).Error; err != nil {
			return err
		}
		sub.Approved = false

		return deleteListingRow(tx, submissionID)
	})
	if err != nil {
		return nil, err
	}
	return toDomainSubmission(sub), nil
}
