package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/consultbridge/marketplace-api/internal/api/metrics"
	"github.com/consultbridge/marketplace-api/internal/core/domain"
	"github.com/consultbridge/marketplace-api/internal/core/ports"
)

// SeedService populates the collection store from the canonical fixture
// documents, gated by a schema-version marker. A version mismatch always
// triggers a full replace of consultants and projects and a reset of
// inquiries; there is no incremental migration.
type SeedService struct {
	source      ports.FixtureSource
	consultants ports.Collection[domain.Consultant]
	projects    ports.Collection[domain.Project]
	inquiries   ports.Collection[domain.Inquiry]
	kv          ports.KV
	versionKey  string
	version     string
	logger      zerolog.Logger
}

func NewSeedService(
	source ports.FixtureSource,
	consultants ports.Collection[domain.Consultant],
	projects ports.Collection[domain.Project],
	inquiries ports.Collection[domain.Inquiry],
	kv ports.KV,
	versionKey, version string,
	logger zerolog.Logger,
) *SeedService {
	return &SeedService{
		source:      source,
		consultants: consultants,
		projects:    projects,
		inquiries:   inquiries,
		kv:          kv,
		versionKey:  versionKey,
		version:     version,
		logger:      logger,
	}
}

// EnsureSeeded is idempotent per schema version: when the persisted marker
// matches the expected version it returns immediately without fetching.
// Otherwise both fixture documents are fetched before anything is written,
// so a fetch failure leaves prior persisted state untouched and returns an
// error wrapping domain.ErrSeedFetch.
func (s *SeedService) EnsureSeeded(ctx context.Context) error {
	if s.Seeded(ctx) {
		metrics.SeedRunsTotal.WithLabelValues("skipped").Inc()
		s.logger.Debug().Str("version", s.version).Msg("seed marker current, skipping")
		return nil
	}

	consultants, err := s.source.FetchConsultants(ctx)
	if err != nil {
		metrics.SeedRunsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("%w: %v", domain.ErrSeedFetch, err)
	}
	projects, err := s.source.FetchProjects(ctx)
	if err != nil {
		metrics.SeedRunsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("%w: %v", domain.ErrSeedFetch, err)
	}

	if err := s.consultants.Replace(ctx, consultants); err != nil {
		return err
	}
	if err := s.projects.Replace(ctx, projects); err != nil {
		return err
	}
	if err := s.inquiries.Replace(ctx, nil); err != nil {
		return err
	}
	// The marker is written last: an interrupted seed reruns next start.
	if err := s.kv.Set(ctx, s.versionKey, []byte(s.version)); err != nil {
		return err
	}

	metrics.SeedRunsTotal.WithLabelValues("seeded").Inc()
	s.logger.Info().
		Str("version", s.version).
		Int("consultants", len(consultants)).
		Int("projects", len(projects)).
		Msg("collections seeded")
	return nil
}

// Seeded reports whether the persisted schema-version marker matches the
// expected version.
func (s *SeedService) Seeded(ctx context.Context) bool {
	raw, err := s.kv.Get(ctx, s.versionKey)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to read seed marker")
		return false
	}
	return string(raw) == s.version
}
