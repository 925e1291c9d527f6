package promote

import (
	"context"
	"errors"
	"testing"

	draftDomain "projektrack-backend/internal/domain/draft"
	projectDomain "projektrack-backend/internal/domain/project"
	"projektrack-backend/internal/domain/uow"
	"projektrack-backend/internal/testutil/draftmock"
	"projektrack-backend/internal/testutil/projectmock"
	"projektrack-backend/internal/testutil/uowmock"

	"gorm.io/gorm"
)

const testDraftID = "abababababababababababababababab"

func newAwaitingDraft() *draftDomain.Draft {
	return &draftDomain.Draft{
		ID:             77,
		DraftID:        testDraftID,
		Name:           "Community hall upgrade",
		ConstituencyID: 1,
		TotalCost:      500_000,
		Status:         draftDomain.StatusAwaitingApproval,
	}
}

// draftTx builds a UoW whose WithinDraftTx hands the given draft to fn.
func draftTx(d *draftDomain.Draft, r uow.Repos) *uowmock.UoW {
	return &uowmock.UoW{
		WithinDraftTxFn: func(ctx context.Context, draftID string, fn func(r uow.Repos, d *draftDomain.Draft) error) error {
			if d == nil {
				return gorm.ErrRecordNotFound
			}
			return fn(r, d)
		},
	}
}

func TestPromote_CreatesRecordOnce(t *testing.T) {
	d := newAwaitingDraft()

	var created *projectDomain.Project
	projects := &projectmock.Repo{
		GetByDraftIDFn: func(ctx context.Context, draftNumericID uint64) (*projectDomain.Project, error) {
			if created != nil && draftNumericID == d.ID {
				return created, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		CreateFn: func(ctx context.Context, p *projectDomain.Project) error {
			if created != nil {
				t.Fatalf("second record created for the same draft")
			}
			created = p
			return nil
		},
	}
	var saves int
	drafts := &draftmock.Repo{
		SaveFn: func(ctx context.Context, got *draftDomain.Draft) error {
			saves++
			if got.Status != draftDomain.StatusApproved {
				t.Fatalf("draft saved with status %s, want approved", got.Status)
			}
			return nil
		},
	}

	uc := NewUsecase(draftTx(d, uow.Repos{Drafts: drafts, Projects: projects}), nil)

	in := PromoteInput{DraftID: testDraftID, RecordNo: "PROJ/2026/005", RecordYear: 2026}
	dto, err := uc.Promote(context.Background(), in)
	if err != nil {
		t.Fatalf("Promote: %v", err)
	}
	if dto.RecordNo != "PROJ/2026/005" || dto.DraftID != testDraftID || dto.Status != string(projectDomain.StatusActive) {
		t.Fatalf("unexpected dto: %+v", dto)
	}
	if created == nil || created.DraftID != d.ID || created.TotalCost != 500_000 {
		t.Fatalf("unexpected record: %+v", created)
	}

	// Second call must return the same record, not create another.
	again, err := uc.Promote(context.Background(), in)
	if err != nil {
		t.Fatalf("second Promote: %v", err)
	}
	if again.RecordNo != dto.RecordNo || again.ProjectID != dto.ProjectID {
		t.Fatalf("repeat promotion diverged: %+v vs %+v", again, dto)
	}
	if saves != 1 {
		t.Fatalf("draft saved %d times, want 1 (already approved on repeat)", saves)
	}
}

// A record that exists while the draft status lagged behind gets the status
// fixed, still without creating a second record.
func TestPromote_FixesLaggingDraftStatus(t *testing.T) {
	d := newAwaitingDraft()
	existing := &projectDomain.Project{
		ID: 5, ProjectID: "cdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcd",
		DraftID: d.ID, RecordNo: "PROJ/2026/009", RecordYear: 2026,
		Status: projectDomain.StatusActive,
	}

	projects := &projectmock.Repo{
		GetByDraftIDFn: func(context.Context, uint64) (*projectDomain.Project, error) {
			return existing, nil
		},
		CreateFn: func(context.Context, *projectDomain.Project) error {
			t.Fatalf("must not create when record exists")
			return nil
		},
	}
	saved := false
	drafts := &draftmock.Repo{
		SaveFn: func(ctx context.Context, got *draftDomain.Draft) error {
			saved = true
			if got.Status != draftDomain.StatusApproved {
				t.Fatalf("status not fixed, got %s", got.Status)
			}
			return nil
		},
	}

	uc := NewUsecase(draftTx(d, uow.Repos{Drafts: drafts, Projects: projects}), nil)
	dto, err := uc.Promote(context.Background(), PromoteInput{DraftID: testDraftID, RecordNo: "PROJ/2026/009", RecordYear: 2026})
	if err != nil {
		t.Fatalf("Promote: %v", err)
	}
	if dto.RecordNo != "PROJ/2026/009" {
		t.Fatalf("unexpected dto: %+v", dto)
	}
	if !saved {
		t.Fatalf("lagging draft status was not fixed")
	}
}

// A promotion that races past the lock and loses on the unique index retries
// once and returns the winner's record.
func TestPromote_RetriesOnConflict(t *testing.T) {
	d := newAwaitingDraft()
	winner := &projectDomain.Project{
		ID: 8, ProjectID: "efefefefefefefefefefefefefefefef",
		DraftID: d.ID, RecordNo: "PROJ/2026/010", RecordYear: 2026,
		Status: projectDomain.StatusActive,
	}

	attempt := 0
	projects := &projectmock.Repo{
		GetByDraftIDFn: func(context.Context, uint64) (*projectDomain.Project, error) {
			if attempt == 0 {
				return nil, gorm.ErrRecordNotFound
			}
			return winner, nil
		},
		CreateFn: func(context.Context, *projectDomain.Project) error {
			attempt++
			return errors.New("Duplicate entry '77' for key 'ux_projects_draft'")
		},
	}
	drafts := &draftmock.Repo{
		SaveFn: func(context.Context, *draftDomain.Draft) error { return nil },
	}

	uc := NewUsecase(draftTx(d, uow.Repos{Drafts: drafts, Projects: projects}), nil)
	dto, err := uc.Promote(context.Background(), PromoteInput{DraftID: testDraftID, RecordNo: "PROJ/2026/011", RecordYear: 2026})
	if err != nil {
		t.Fatalf("Promote after conflict: %v", err)
	}
	if dto.RecordNo != winner.RecordNo {
		t.Fatalf("expected winner's record, got %+v", dto)
	}
	if attempt != 1 {
		t.Fatalf("create attempts = %d, want 1", attempt)
	}
}

func TestPromote_DraftNotFound(t *testing.T) {
	uc := NewUsecase(draftTx(nil, uow.Repos{}), nil)
	_, err := uc.Promote(context.Background(), PromoteInput{DraftID: "ffffffffffffffffffffffffffffffff", RecordNo: "PROJ/2026/001", RecordYear: 2026})
	if !errors.Is(err, draftDomain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestPromote_NilUoW(t *testing.T) {
	uc := NewUsecase(nil, nil)
	_, err := uc.Promote(context.Background(), PromoteInput{DraftID: testDraftID, RecordNo: "PROJ/2026/001", RecordYear: 2026})
	if !errors.Is(err, draftDomain.ErrInvalidTransition) {
		t.Fatalf("want ErrInvalidTransition, got %v", err)
	}
}
