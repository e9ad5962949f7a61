// Package store implements the snapshot collection store: each named
// collection is persisted as one JSON blob in the key-value layer, and every
// mutation rewrites the whole blob synchronously before returning.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/consultbridge/marketplace-api/internal/core/domain"
	"github.com/consultbridge/marketplace-api/internal/core/ports"
)

// keyPrefix namespaces all collection keys in the shared KV layer.
const keyPrefix = "consultbridge:"

// Collection names.
const (
	Consultants = "consultants"
	Projects    = "projects"
	Inquiries   = "inquiries"
)

// VersionKey holds the schema-version marker checked by the seed routine.
const VersionKey = keyPrefix + "version"

// Collection persists one named set of entities as a full snapshot per
// mutation. It implements ports.Collection[T].
type Collection[T ports.Entity] struct {
	kv   ports.KV
	name string
	key  string
	log  zerolog.Logger
}

// NewCollection binds a snapshot collection to its KV key.
func NewCollection[T ports.Entity](kv ports.KV, name string, log zerolog.Logger) *Collection[T] {
	return &Collection[T]{
		kv:   kv,
		name: name,
		key:  keyPrefix + name,
		log:  log.With().Str("collection", name).Logger(),
	}
}

// List returns all entities in insertion order. A missing key yields an
// empty slice. A blob that fails to decode also yields an empty slice, so a
// corrupted collection never takes down unrelated features; the corruption
// is logged once per read.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	raw, err := c.kv.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", c.name, err)
	}
	if raw == nil {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		c.log.Warn().Err(err).Msg("corrupt collection blob, serving empty")
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Add appends item to the collection. An id that already exists returns
// domain.ErrDuplicateID; callers always generate fresh uuids, so this only
// fires on a programming error.
func (c *Collection[T]) Add(ctx context.Context, item T) error {
	items, err := c.List(ctx)
	if err != nil {
		return err
	}
	for _, existing := range items {
		if existing.EntityID() == item.EntityID() {
			return fmt.Errorf("%s %q: %w", c.name, item.EntityID(), domain.ErrDuplicateID)
		}
	}
	return c.write(ctx, append(items, item))
}

// Update replaces the entity whose id matches item, keeping its position.
// A missing id leaves the collection unchanged.
func (c *Collection[T]) Update(ctx context.Context, item T) error {
	items, err := c.List(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i, existing := range items {
		if existing.EntityID() == item.EntityID() {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		return nil
	}
	return c.write(ctx, items)
}

// Remove deletes the entity with the given id; no-op when absent.
func (c *Collection[T]) Remove(ctx context.Context, id string) error {
	items, err := c.List(ctx)
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, existing := range items {
		if existing.EntityID() != id {
			kept = append(kept, existing)
		}
	}
	if len(kept) == len(items) {
		return nil
	}
	return c.write(ctx, kept)
}

// Replace overwrites the whole collection in one snapshot write.
func (c *Collection[T]) Replace(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	return c.write(ctx, items)
}

func (c *Collection[T]) write(ctx context.Context, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.name, err)
	}
	if err := c.kv.Set(ctx, c.key, raw); err != nil {
		return fmt.Errorf("write %s: %w", c.name, err)
	}
	return nil
}
