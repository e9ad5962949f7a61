package ports

import (
	"context"

	"github.com/consultbridge/marketplace-api/internal/core/domain"
)

// Entity is anything storable in a named collection.
type Entity interface {
	EntityID() string
}

// Collection defines snapshot persistence for one named set of entities.
// Every mutation rewrites the whole collection synchronously before
// returning; List reflects insertion order.
type Collection[T Entity] interface {
	// List returns all entities in insertion order. A collection that was
	// never written, or whose persisted blob cannot be decoded, yields an
	// empty slice rather than an error.
	List(ctx context.Context) ([]T, error)
	// Add appends item. Adding an id that already exists returns
	// domain.ErrDuplicateID.
	Add(ctx context.Context, item T) error
	// Update replaces the entity whose id matches item. A missing id is a
	// silent no-op so that edits against stale references never fail.
	Update(ctx context.Context, item T) error
	// Remove deletes the entity with the given id; no-op when absent.
	Remove(ctx context.Context, id string) error
	// Replace overwrites the entire collection, used by seeding.
	Replace(ctx context.Context, items []T) error
}

// KV is the durable key-value layer backing collections and the seed
// version marker. Get returns (nil, nil) for a missing key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// FixtureSource fetches the canonical seed documents.
type FixtureSource interface {
	FetchConsultants(ctx context.Context) ([]domain.Consultant, error)
	FetchProjects(ctx context.Context) ([]domain.Project, error)
}

// SeedService ensures the store holds a dataset for the expected schema
// version.
type SeedService interface {
	// EnsureSeeded is idempotent per version: when the persisted marker
	// matches it performs no fetch and returns nil. On fetch failure it
	// returns an error wrapping domain.ErrSeedFetch and leaves prior
	// persisted state untouched.
	EnsureSeeded(ctx context.Context) error
	// Seeded reports whether the current schema version marker is present.
	Seeded(ctx context.Context) bool
}
