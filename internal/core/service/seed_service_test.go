package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/consultbridge/marketplace-api/internal/core/domain"
)

const testVersionKey = "consultbridge:version"

func newSeedFixture(src *stubFixtureSource) (*SeedService, *memCollection[domain.Consultant], *memCollection[domain.Project], *memCollection[domain.Inquiry], *memKV) {
	consultants := &memCollection[domain.Consultant]{}
	projects := &memCollection[domain.Project]{}
	inquiries := &memCollection[domain.Inquiry]{}
	kv := newMemKV()
	svc := NewSeedService(src, consultants, projects, inquiries, kv, testVersionKey, "2024-03-25", zerolog.Nop())
	return svc, consultants, projects, inquiries, kv
}

func TestSeedService_SeedsOnFirstRun(t *testing.T) {
	ctx := context.Background()
	src := &stubFixtureSource{
		consultants: []domain.Consultant{{ID: "c1", Name: "山田"}},
		projects:    []domain.Project{{ID: "p1", Title: "PMO支援"}},
	}
	svc, consultants, projects, inquiries, kv := newSeedFixture(src)

	// Pre-existing inquiries must be reset by the version migration.
	inquiries.items = []domain.Inquiry{{ID: "old"}}

	if err := svc.EnsureSeeded(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(consultants.items) != 1 || len(projects.items) != 1 {
		t.Fatalf("collections not replaced: %d consultants, %d projects", len(consultants.items), len(projects.items))
	}
	if len(inquiries.items) != 0 {
		t.Fatalf("inquiries must be reset, got %v", inquiries.items)
	}
	if string(kv.data[testVersionKey]) != "2024-03-25" {
		t.Fatalf("version marker not written: %q", kv.data[testVersionKey])
	}
	if !svc.Seeded(ctx) {
		t.Fatal("Seeded must report true after a successful run")
	}
}

func TestSeedService_SecondRunPerformsNoFetch(t *testing.T) {
	ctx := context.Background()
	src := &stubFixtureSource{
		consultants: []domain.Consultant{{ID: "c1"}},
		projects:    []domain.Project{{ID: "p1"}},
	}
	svc, consultants, _, _, _ := newSeedFixture(src)

	if err := svc.EnsureSeeded(ctx); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	fetchesAfterFirst := src.fetches
	replacesAfterFirst := consultants.replaces

	if err := svc.EnsureSeeded(ctx); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	if src.fetches != fetchesAfterFirst {
		t.Fatalf("second run must not fetch: %d → %d", fetchesAfterFirst, src.fetches)
	}
	if consultants.replaces != replacesAfterFirst {
		t.Fatal("second run must leave collections untouched")
	}
}

func TestSeedService_FetchFailureLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	src := &stubFixtureSource{err: errors.New("connection refused")}
	svc, consultants, projects, _, kv := newSeedFixture(src)

	consultants.items = []domain.Consultant{{ID: "keep"}}
	projects.items = []domain.Project{{ID: "keep"}}

	err := svc.EnsureSeeded(ctx)
	if !errors.Is(err, domain.ErrSeedFetch) {
		t.Fatalf("expected ErrSeedFetch, got %v", err)
	}
	if len(consultants.items) != 1 || consultants.items[0].ID != "keep" {
		t.Fatalf("failed seed must not overwrite consultants: %v", consultants.items)
	}
	if len(projects.items) != 1 || projects.items[0].ID != "keep" {
		t.Fatalf("failed seed must not overwrite projects: %v", projects.items)
	}
	if _, ok := kv.data[testVersionKey]; ok {
		t.Fatal("failed seed must not write the version marker")
	}
	if svc.Seeded(ctx) {
		t.Fatal("Seeded must stay false after a failed run")
	}
}
