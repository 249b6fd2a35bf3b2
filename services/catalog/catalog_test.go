package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"voyago/models"
	"voyago/services/fault"
)

// fakeDestinationRepo is an in-memory repository.DestinationRepository.
type fakeDestinationRepo struct {
	dests  map[string]models.Destination
	seeded bool
}

func newFakeDestinationRepo() *fakeDestinationRepo {
	return &fakeDestinationRepo{dests: make(map[string]models.Destination)}
}

func (r *fakeDestinationRepo) GetByID(ctx context.Context, id string) (*models.Destination, error) {
	d, ok := r.dests[id]
	if !ok {
		return nil, nil
	}
	cp := d
	return &cp, nil
}

func (r *fakeDestinationRepo) Save(ctx context.Context, dest *models.Destination) error {
	r.dests[dest.ID] = *dest
	return nil
}

func (r *fakeDestinationRepo) Delete(ctx context.Context, id string) error {
	delete(r.dests, id)
	return nil
}

func (r *fakeDestinationRepo) GetAll(ctx context.Context) ([]models.Destination, error) {
	out := make([]models.Destination, 0, len(r.dests))
	for _, d := range r.dests {
		out = append(out, d)
	}
	return out, nil
}

func (r *fakeDestinationRepo) IsSeeded(ctx context.Context) (bool, error) { return r.seeded, nil }
func (r *fakeDestinationRepo) MarkSeeded(ctx context.Context) error      { r.seeded = true; return nil }

func TestCreateAndList(t *testing.T) {
	ctx := context.Background()
	svc := &DefaultCatalogService{Repo: newFakeDestinationRepo()}

	created, err := svc.Create(ctx, models.Destination{
		Name:     "Santorini Dreams",
		Location: "Santorini, Greece",
		Price:    1699,
		Category: models.CategoryBeach,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !strings.HasPrefix(created.ID, "dest_") {
		t.Errorf("unexpected id format: %q", created.ID)
	}

	listed, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected 1 destination, got %d", len(listed))
	}
	// Price must come back exactly as submitted, unmodified.
	if listed[0].Price != 1699 {
		t.Errorf("expected price 1699, got %v", listed[0].Price)
	}
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	repo := newFakeDestinationRepo()
	repo.dests["dest_1"] = models.Destination{ID: "dest_1", Name: "Maldives Paradise"}
	svc := &DefaultCatalogService{Repo: repo}

	t.Run("Found", func(t *testing.T) {
		dest, err := svc.Get(ctx, "dest_1")
		if err != nil || dest.Name != "Maldives Paradise" {
			t.Errorf("unexpected result: %+v err=%v", dest, err)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		if _, err := svc.Get(ctx, "dest_999"); !errors.Is(err, fault.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newFakeDestinationRepo()
	repo.dests["dest_1"] = models.Destination{ID: "dest_1"}
	svc := &DefaultCatalogService{Repo: repo}

	if err := svc.Delete(ctx, "dest_1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := svc.Delete(ctx, "dest_1"); err != nil {
		t.Errorf("deleting an absent id should still succeed, got %v", err)
	}
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	repo := newFakeDestinationRepo()
	svc := &DefaultCatalogService{Repo: repo}

	seeded, err := svc.Seed(ctx)
	if err != nil || !seeded {
		t.Fatalf("first Seed: seeded=%v err=%v", seeded, err)
	}
	if len(repo.dests) != len(sampleDestinations) {
		t.Errorf("expected %d seeded destinations, got %d", len(sampleDestinations), len(repo.dests))
	}

	seeded, err = svc.Seed(ctx)
	if err != nil || seeded {
		t.Errorf("second Seed should be a no-op: seeded=%v err=%v", seeded, err)
	}
}
