package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "projektrack-backend/internal/domain/draft"
	"projektrack-backend/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schema only for tests (no ENUM) ---

type draftSQLite struct {
	ID                  uint64         `gorm:"primaryKey;column:id"`
	DraftID             string         `gorm:"size:32;column:draft_id"`
	Name                string         `gorm:"column:name"`
	Description         string         `gorm:"column:description"`
	ConstituencyID      uint64         `gorm:"column:constituency_id"`
	AgencyID            *uint64        `gorm:"column:agency_id"`
	ActualProjectCost   float64        `gorm:"column:actual_project_cost"`
	ConsultationCost    float64        `gorm:"column:consultation_cost"`
	InspectionCost      float64        `gorm:"column:inspection_cost"`
	TaxCost             float64        `gorm:"column:tax_cost"`
	OtherCost           float64        `gorm:"column:other_cost"`
	TotalCost           float64        `gorm:"column:total_cost"`
	OriginalProjectCost *float64       `gorm:"column:original_project_cost"`
	SourceNoticeEntryID *uint64        `gorm:"column:source_notice_entry_id"`
	Status              string         `gorm:"type:text;column:status"` // ← no enum
	StatusUpdatedAt     time.Time      `gorm:"column:status_updated_at"`
	CreatedAt           time.Time      `gorm:"column:created_at"`
	UpdatedAt           time.Time      `gorm:"column:updated_at"`
	DeletedAt           gorm.DeletedAt `gorm:"column:deleted_at"`
	DeletedBy           string         `gorm:"column:deleted_by"`
}

func (draftSQLite) TableName() string { return "drafts" }

// openDraftTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schema.
func openDraftTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// IMPORTANT: migrate the sqlite-safe model, NOT the domain model.
	if err := db.AutoMigrate(&draftSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeDraft(draftID string, constituencyID uint64, total float64, status domain.Status) *domain.Draft {
	return &domain.Draft{
		DraftID:           draftID,
		Name:              "Community hall upgrade",
		ConstituencyID:    constituencyID,
		ActualProjectCost: total,
		TotalCost:         total,
		Status:            status,
		StatusUpdatedAt:   time.Now().UTC(),
	}
}

func TestDraftCreateAndGetByDraftID(t *testing.T) {
	db := openDraftTestDB(t)
	repo := NewDraftRepository(db)
	ctx := context.Background()

	draftID := id.NewID32()
	d := makeDraft(draftID, 1, 250_000, domain.StatusDraft)
	if err := repo.Create(ctx, d); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if d.ID == 0 {
		t.Fatalf("Create did not set auto-increment ID")
	}

	got, err := repo.GetByDraftID(ctx, draftID)
	if err != nil {
		t.Fatalf("GetByDraftID: %v", err)
	}
	if got.DraftID != draftID || got.ConstituencyID != 1 {
		t.Errorf("unexpected draft: %+v", got)
	}
}

func TestDraftSaveUpdates(t *testing.T) {
	db := openDraftTestDB(t)
	repo := NewDraftRepository(db)
	ctx := context.Background()

	draftID := id.NewID32()
	d := makeDraft(draftID, 1, 250_000, domain.StatusDraft)
	if err := repo.Create(ctx, d); err != nil {
		t.Fatalf("Create: %v", err)
	}

	d.Status = domain.StatusAwaitingApproval
	d.TotalCost = 300_000
	if err := repo.Save(ctx, d); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.GetByDraftID(ctx, draftID)
	if err != nil {
		t.Fatalf("GetByDraftID: %v", err)
	}
	if got.Status != domain.StatusAwaitingApproval || got.TotalCost != 300_000 {
		t.Errorf("draft not updated: %+v", got)
	}
}

func TestDraftGetByDraftID_NotFound(t *testing.T) {
	db := openDraftTestDB(t)
	repo := NewDraftRepository(db)

	_, err := repo.GetByDraftID(context.Background(), "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestSumLiveCommitments(t *testing.T) {
	db := openDraftTestDB(t)
	repo := NewDraftRepository(db)
	ctx := context.Background()

	// Seed drafts in every status; only awaiting_approval and approved count.
	excludeID := id.NewID32()
	seed := []*domain.Draft{
		makeDraft(id.NewID32(), 1, 100_000, domain.StatusDraft),
		makeDraft(id.NewID32(), 1, 200_000, domain.StatusAwaitingApproval),
		makeDraft(excludeID, 1, 300_000, domain.StatusApproved),
		makeDraft(id.NewID32(), 1, 400_000, domain.StatusRejected),
		makeDraft(id.NewID32(), 2, 999_000, domain.StatusAwaitingApproval),
	}
	for _, d := range seed {
		if err := repo.Create(ctx, d); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	got, err := repo.SumLiveCommitments(ctx, 1, nil)
	if err != nil {
		t.Fatalf("SumLiveCommitments: %v", err)
	}
	if got != 500_000 {
		t.Errorf("live sum = %.2f, want 500000", got)
	}

	// Excluding a draft removes it from the committed sum (edit-in-place).
	got, err = repo.SumLiveCommitments(ctx, 1, &excludeID)
	if err != nil {
		t.Fatalf("SumLiveCommitments exclude: %v", err)
	}
	if got != 200_000 {
		t.Errorf("excluded sum = %.2f, want 200000", got)
	}

	// A constituency with no live drafts sums to zero, not an error.
	got, err = repo.SumLiveCommitments(ctx, 42, nil)
	if err != nil || got != 0 {
		t.Errorf("empty sum = %.2f err=%v, want 0/nil", got, err)
	}
}

func TestSumLiveByConstituency(t *testing.T) {
	db := openDraftTestDB(t)
	repo := NewDraftRepository(db)
	ctx := context.Background()

	seed := []*domain.Draft{
		makeDraft(id.NewID32(), 1, 200_000, domain.StatusAwaitingApproval),
		makeDraft(id.NewID32(), 1, 300_000, domain.StatusApproved),
		makeDraft(id.NewID32(), 2, 999_000, domain.StatusAwaitingApproval),
		makeDraft(id.NewID32(), 3, 50_000, domain.StatusDraft), // not live
	}
	for _, d := range seed {
		if err := repo.Create(ctx, d); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	got, err := repo.SumLiveByConstituency(ctx)
	if err != nil {
		t.Fatalf("SumLiveByConstituency: %v", err)
	}
	if len(got) != 2 || got[1] != 500_000 || got[2] != 999_000 {
		t.Errorf("unexpected grouped sums: %v", got)
	}
}
