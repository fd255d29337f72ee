package admin

import (
	"context"

	"hotelbooking/internal/domain"
)

// ApprovalStore applies an approval decision atomically: the submission
// flag and the published listing mirror change together or not at all.
type ApprovalStore interface {
	Approve(ctx context.Context, submissionID int64) (*domain.Submission, error)
	Unapprove(ctx context.Context, submissionID int64) (*domain.Submission, error)
}

type SubmissionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Submission, error)
	GetPending(ctx context.Context) ([]domain.Submission, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// StatsRepository serves the dashboard counters.
type StatsRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountPublishedListings(ctx context.Context) (int64, error)
	CountPendingSubmissions(ctx context.Context) (int64, error)
	CountBookingsToday(ctx context.Context) (int64, error)
	CountBookingsByStatus(ctx context.Context) (map[string]int64, error)
}
