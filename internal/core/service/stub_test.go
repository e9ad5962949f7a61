package service

import (
	"context"

	"github.com/consultbridge/marketplace-api/internal/core/domain"
	"github.com/consultbridge/marketplace-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs shared by the service tests
// ---------------------------------------------------------------------------

type memCollection[T ports.Entity] struct {
	items    []T
	addErr   error
	replaces int
}

func (m *memCollection[T]) List(_ context.Context) ([]T, error) {
	out := make([]T, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *memCollection[T]) Add(_ context.Context, item T) error {
	if m.addErr != nil {
		return m.addErr
	}
	for _, existing := range m.items {
		if existing.EntityID() == item.EntityID() {
			return domain.ErrDuplicateID
		}
	}
	m.items = append(m.items, item)
	return nil
}

func (m *memCollection[T]) Update(_ context.Context, item T) error {
	for i, existing := range m.items {
		if existing.EntityID() == item.EntityID() {
			m.items[i] = item
			break
		}
	}
	return nil
}

func (m *memCollection[T]) Remove(_ context.Context, id string) error {
	kept := m.items[:0]
	for _, existing := range m.items {
		if existing.EntityID() != id {
			kept = append(kept, existing)
		}
	}
	m.items = kept
	return nil
}

func (m *memCollection[T]) Replace(_ context.Context, items []T) error {
	m.replaces++
	m.items = append([]T{}, items...)
	return nil
}

type memKV struct {
	data map[string][]byte
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string][]byte)}
}

func (m *memKV) Get(_ context.Context, key string) ([]byte, error) {
	raw, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return raw, nil
}

func (m *memKV) Set(_ context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}

// stubFixtureSource counts fetches and can be forced to fail.
type stubFixtureSource struct {
	consultants []domain.Consultant
	projects    []domain.Project
	err         error
	fetches     int
}

func (s *stubFixtureSource) FetchConsultants(_ context.Context) ([]domain.Consultant, error) {
	s.fetches++
	if s.err != nil {
		return nil, s.err
	}
	return s.consultants, nil
}

func (s *stubFixtureSource) FetchProjects(_ context.Context) ([]domain.Project, error) {
	s.fetches++
	if s.err != nil {
		return nil, s.err
	}
	return s.projects, nil
}
