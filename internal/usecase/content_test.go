package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Bhaskar0624/FUTURE-FS-01/internal/adapter/repository"
	"github.com/Bhaskar0624/FUTURE-FS-01/internal/domain"
)

func newTestService(t *testing.T) *ContentService {
	t.Helper()
	store, err := repository.NewFileStore(filepath.Join(t.TempDir(), "content.json"))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	return NewContentService(store, zerolog.Nop())
}

func TestSaveSectionUnknownSection(t *testing.T) {
	svc := newTestService(t)
	err := svc.SaveSection(context.Background(), "blog", json.RawMessage(`[]`))
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestSaveSectionRejectsMalformedPayload(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	err := svc.SaveSection(ctx, "projects", json.RawMessage(`{"title":"not an array"}`))
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}

	// nothing persisted
	snap, _ := svc.FetchSnapshot(ctx)
	if len(snap.Projects) != 0 {
		t.Errorf("rejected payload mutated the store: %d projects", len(snap.Projects))
	}
}

func TestSaveSectionStripsClientTemporaryIDs(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// the editor may send temp ids that are not uuids at all
	payload := json.RawMessage(`[{"id":"temp-1","created_at":"whenever","title":"P1","tags":["go"]}]`)
	if err := svc.SaveSection(ctx, "projects", payload); err != nil {
		t.Fatalf("SaveSection: %v", err)
	}

	snap, err := svc.FetchSnapshot(ctx)
	if err != nil {
		t.Fatalf("FetchSnapshot: %v", err)
	}
	if len(snap.Projects) != 1 {
		t.Fatalf("got %d projects, want 1", len(snap.Projects))
	}
	p := snap.Projects[0]
	if p.ID == uuid.Nil {
		t.Error("store did not assign an id")
	}
	if p.CreatedAt.IsZero() {
		t.Error("store did not assign created_at")
	}
	if p.Title != "P1" || len(p.Tags) != 1 || p.Tags[0] != "go" {
		t.Errorf("row fields lost: %+v", p)
	}
}

func TestSaveProfileNeverTouchesIdentity(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	before, _ := svc.FetchSnapshot(ctx)

	payload := json.RawMessage(`{"id":"` + uuid.NewString() + `","created_at":"2001-01-01T00:00:00Z","name":"Bhaskar","status":"open to work"}`)
	if err := svc.SaveSection(ctx, "profile", payload); err != nil {
		t.Fatalf("SaveSection: %v", err)
	}

	after, _ := svc.FetchSnapshot(ctx)
	if after.Profile.ID != before.Profile.ID {
		t.Error("profile id changed across save")
	}
	if !after.Profile.CreatedAt.Equal(before.Profile.CreatedAt) {
		t.Error("profile created_at changed across save")
	}
	if after.Profile.Name != "Bhaskar" || after.Profile.Status != "open to work" {
		t.Errorf("profile fields not applied: %+v", after.Profile)
	}
}

func TestReadYourWrite(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	payload := json.RawMessage(`[{"year":"2019","title":"First internship","sort_order":0},{"year":"2023","title":"First job","sort_order":1}]`)
	if err := svc.SaveSection(ctx, "journey", payload); err != nil {
		t.Fatalf("SaveSection: %v", err)
	}

	snap, err := svc.FetchSnapshot(ctx)
	if err != nil {
		t.Fatalf("FetchSnapshot: %v", err)
	}
	if len(snap.Journey) != 2 {
		t.Fatalf("got %d journey entries, want 2", len(snap.Journey))
	}
	if snap.Journey[0].Title != "First internship" || snap.Journey[1].Title != "First job" {
		t.Errorf("journey entries wrong: %+v", snap.Journey)
	}
}
