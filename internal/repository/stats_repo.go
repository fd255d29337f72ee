package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// StatsRepository aggregates the dashboard counters.
type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&userModel{}).Count(&n).Error
	return n, err
}

func (r *StatsRepository) CountPublishedListings(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&listingModel{}).
		Where("published = ?", true).
		Count(&n).Error
	return n, err
}

func (r *StatsRepository) CountPendingSubmissions(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&submissionModel{}).
		Where("approved = ?", false).
		Count(&n).Error
	return n, err
}

func (r *StatsRepository) CountBookingsToday(ctx context.Context) (int64, error) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var n int64
	err := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("created_at >= ?", midnight).
		Count(&n).Error
	return n, err
}

func (r *StatsRepository) CountBookingsByStatus(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}
