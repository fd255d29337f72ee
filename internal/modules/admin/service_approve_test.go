package admin

import (
	"context"
	"testing"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

type fakeApprovalStore struct {
	subs        map[int64]*domain.Submission
	published   map[int64]bool
	approveErr  error
	approveHits int
}

func (f *fakeApprovalStore) Approve(_ context.Context, id int64) (*domain.Submission, error) {
	f.approveHits++
	if f.approveErr != nil {
		return nil, f.approveErr
	}
	sub, ok := f.subs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	sub.Approved = true
	f.published[id] = true
	return sub, nil
}

func (f *fakeApprovalStore) Unapprove(_ context.Context, id int64) (*domain.Submission, error) {
	sub, ok := f.subs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	sub.Approved = false
	delete(f.published, id)
	return sub, nil
}

type fakeSubmissionRepo struct {
	pending []domain.Submission
}

func (f *fakeSubmissionRepo) GetByID(_ context.Context, id int64) (*domain.Submission, error) {
	for i := range f.pending {
		if f.pending[i].ID == id {
			return &f.pending[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSubmissionRepo) GetPending(_ context.Context) ([]domain.Submission, error) {
	return f.pending, nil
}

type fakeUserRepo struct {
	users      map[int64]*domain.User
	lookupHits int
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	f.lookupHits++
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func newApprovalFixture() (*Service, *fakeApprovalStore, *fakeUserRepo, *fakeSubmissionRepo) {
	store := &fakeApprovalStore{
		subs: map[int64]*domain.Submission{
			10: {ID: 10, SubmitterID: 3, Name: "Harbor View", Approved: false},
		},
		published: map[int64]bool{},
	}
	subs := &fakeSubmissionRepo{}
	users := &fakeUserRepo{users: map[int64]*domain.User{}}
	return NewService(store, subs, users, nil), store, users, subs
}

func TestSetApprovalApprovePublishesMirror(t *testing.T) {
	svc, store, _, _ := newApprovalFixture()

	sub, err := svc.SetApproval(context.Background(), 10, true)
	if err != nil {
		t.Fatalf("SetApproval returned error: %v", err)
	}
	if !sub.Approved {
		t.Fatalf("expected submission to be approved")
	}
	if !store.published[10] {
		t.Fatalf("expected listing mirror to be published")
	}
}

func TestSetApprovalUnapproveWithdrawsMirror(t *testing.T) {
	svc, store, _, _ := newApprovalFixture()

	if _, err := svc.SetApproval(context.Background(), 10, true); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	sub, err := svc.SetApproval(context.Background(), 10, false)
	if err != nil {
		t.Fatalf("unapprove failed: %v", err)
	}
	if sub.Approved {
		t.Fatalf("expected submission flag to be cleared")
	}
	if store.published[10] {
		t.Fatalf("expected listing mirror to be withdrawn")
	}
}

func TestSetApprovalUnapproveWithoutMirror(t *testing.T) {
	// Unapproving a submission whose mirror never existed must not fail.
	svc, store, _, _ := newApprovalFixture()

	if _, err := svc.SetApproval(context.Background(), 10, false); err != nil {
		t.Fatalf("unapprove without mirror failed: %v", err)
	}
	if store.published[10] {
		t.Fatalf("mirror should stay absent")
	}
}

func TestSetApprovalUnknownSubmission(t *testing.T) {
	svc, _, _, _ := newApprovalFixture()

	if _, err := svc.SetApproval(context.Background(), 999, true); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListPendingSubmissionsJoinsSubmitter(t *testing.T) {
	svc, _, users, subs := newApprovalFixture()
	users.users[3] = &domain.User{ID: 3, Name: "Aruzhan", Email: "aruzhan@example.com"}
	subs.pending = []domain.Submission{
		{ID: 10, SubmitterID: 3, Name: "Harbor View"},
		{ID: 11, SubmitterID: 3, Name: "Harbor View Annex"},
		{ID: 12, SubmitterID: 77, Name: "Ghost Hotel"},
	}

	rows, err := svc.ListPendingSubmissions(context.Background())
	if err != nil {
		t.Fatalf("ListPendingSubmissions returned error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].SubmitterName != "Aruzhan" || rows[0].SubmitterEmail != "aruzhan@example.com" {
		t.Fatalf("unexpected submitter join: %+v", rows[0])
	}
	// A failed submitter lookup keeps the row with placeholder contact.
	if rows[2].SubmitterName != "Unknown submitter" || rows[2].SubmitterEmail != "" {
		t.Fatalf("expected placeholder submitter, got %+v", rows[2])
	}
	// One lookup per unique submitter.
	if users.lookupHits != 2 {
		t.Fatalf("expected 2 submitter lookups, got %d", users.lookupHits)
	}
}
