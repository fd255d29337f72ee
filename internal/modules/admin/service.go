package admin

import (
	"context"
	"errors"
	"log"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	approvals   ApprovalStore
	submissions SubmissionRepository
	users       UserRepository
	stats       StatsRepository
}

func NewService(
	approvals ApprovalStore,
	submissions SubmissionRepository,
	users UserRepository,
	stats StatsRepository,
) *Service {
	return &Service{
		approvals:   approvals,
		submissions: submissions,
		users:       users,
		stats:       stats,
	}
}

// SetApproval approves or unapproves a submission. Approving publishes
// the listing mirror; unapproving withdraws it. Both effects land in a
// single transaction inside the store.
func (s *Service) SetApproval(ctx context.Context, submissionID int64, approved bool) (*domain.Submission, error) {
	var (
		sub *domain.Submission
		err error
	)
	if approved {
		sub, err = s.approvals.Approve(ctx, submissionID)
	} else {
		sub, err = s.approvals.Unapprove(ctx, submissionID)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sub, nil
}

// ListPendingSubmissions returns the review queue with submitter contact
// details joined in. Submitter lookups are best effort: a failed lookup
// yields placeholder contact fields, never a missing row.
func (s *Service) ListPendingSubmissions(ctx context.Context) ([]PendingSubmission, error) {
	subs, err := s.submissions.GetPending(ctx)
	if err != nil {
		return nil, err
	}

	submitters := make(map[int64]*domain.User)
	out := make([]PendingSubmission, 0, len(subs))
	for _, sub := range subs {
		submitter, ok := submitters[sub.SubmitterID]
		if !ok {
			submitter, err = s.users.GetByID(ctx, sub.SubmitterID)
			if err != nil {
				log.Printf("admin_submitter_lookup_fail submission_id=%d submitter_id=%d err=%v", sub.ID, sub.SubmitterID, err)
				submitter = nil
			}
			submitters[sub.SubmitterID] = submitter
		}

		row := PendingSubmission{
			ID:             sub.ID,
			Name:           sub.Name,
			Description:    sub.Description,
			Category:       string(sub.Category),
			Address:        sub.Address,
			Country:        sub.Country,
			NightlyPrice:   sub.NightlyPrice,
			MaxCapacity:    sub.MaxCapacity,
			ImageIDs:       sub.ImageIDs,
			CreatedAt:      sub.CreatedAt,
			SubmitterName:  "Unknown submitter",
			SubmitterEmail: "",
		}
		if submitter != nil {
			row.SubmitterName = submitter.Name
			row.SubmitterEmail = submitter.Email
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *Service) GetStatistics(ctx context.Context) (*Statistics, error) {
	users, err := s.stats.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	listings, err := s.stats.CountPublishedListings(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.stats.CountPendingSubmissions(ctx)
	if err != nil {
		return nil, err
	}
	today, err := s.stats.CountBookingsToday(ctx)
	if err != nil {
		return nil, err
	}
	byStatus, err := s.stats.CountBookingsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	return &Statistics{
		Users:              users,
		PublishedListings:  listings,
		PendingSubmissions: pending,
		BookingsToday:      today,
		BookingsByStatus:   byStatus,
	}, nil
}
