package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/consultbridge/marketplace-api/internal/api/metrics"
	"github.com/consultbridge/marketplace-api/internal/core/domain"
	"github.com/consultbridge/marketplace-api/internal/core/ports"
	"github.com/consultbridge/marketplace-api/internal/core/query"
	"github.com/consultbridge/marketplace-api/internal/core/validation"
)

// dateStamp is the lexicographically sortable creation-date format used by
// consultants and projects.
const dateStamp = "2006-01-02"

// ConsultantService implements registration, search and moderation for
// consultants.
type ConsultantService struct {
	col    ports.Collection[domain.Consultant]
	logger zerolog.Logger
}

func NewConsultantService(col ports.Collection[domain.Consultant], logger zerolog.Logger) *ConsultantService {
	return &ConsultantService{col: col, logger: logger}
}

// Register validates the submitted form and, on success, synthesizes a fresh
// id and creation date before appending the consultant. A failing form
// returns a domain.ValidationError listing every offending field.
func (s *ConsultantService) Register(ctx context.Context, input ports.RegisterConsultantInput) (*domain.Consultant, error) {
	if err := validation.Check(input); err != nil {
		metrics.ValidationFailuresTotal.WithLabelValues("consultant").Inc()
		return nil, err
	}

	consultant := domain.Consultant{
		ID:              uuid.NewString(),
		Name:            input.Name,
		ExperienceYears: input.ExperienceYears,
		PreferredRate: domain.Rate{
			Type:   domain.RateType(input.PreferredRateType),
			Amount: input.PreferredRateAmount,
		},
		PreferredUtilization: input.PreferredUtilization,
		BaseLocation:         input.BaseLocation,
		Remote:               input.Remote,
		Skills:               input.Skills,
		Industries:           input.Industries,
		AvailableFrom:        input.AvailableFrom,
		EngagementLength:     input.EngagementLength,
		Bio:                  input.Bio,
		Contact:              input.Contact,
		CreatedAt:            time.Now().UTC().Format(dateStamp),
	}

	if err := s.col.Add(ctx, consultant); err != nil {
		s.logger.Error().Err(err).Msg("failed to add consultant")
		return nil, err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("consultants").Inc()
	s.logger.Info().Str("id", consultant.ID).Msg("consultant registered")
	return &consultant, nil
}

// Search evaluates filter → sort → paginate over the full collection.
func (s *ConsultantService) Search(ctx context.Context, input ports.ConsultantSearchInput) (*ports.ConsultantSearchResult, error) {
	timer := time.Now()
	items, err := s.col.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := query.FilterConsultants(items, query.ConsultantCriteria{
		Keyword:     input.Keyword,
		Skills:      input.Skills,
		Experience:  input.Experience,
		RateMax:     input.RateMax,
		Utilization: input.Utilization,
		Location:    input.Location,
		Remote:      input.Remote,
		Industry:    input.Industry,
	})
	sorted := query.SortConsultants(filtered, input.Sort)

	page := input.Page
	if page < 1 {
		page = 1
	}
	paged := query.Paginate(sorted, page, query.DefaultPerPage)

	metrics.SearchesTotal.WithLabelValues("consultants").Inc()
	metrics.SearchDuration.WithLabelValues("consultants").Observe(time.Since(timer).Seconds())

	return &ports.ConsultantSearchResult{
		Items:      paged.Items,
		Total:      len(filtered),
		Page:       page,
		PerPage:    query.DefaultPerPage,
		TotalPages: paged.TotalPages,
	}, nil
}

// Get returns the consultant with the given id or domain.ErrNotFound.
func (s *ConsultantService) Get(ctx context.Context, id string) (*domain.Consultant, error) {
	items, err := s.col.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range items {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Update applies a moderation edit to the subset of editable fields. The
// entity is re-read first, so an edit against a deleted consultant reports
// domain.ErrNotFound instead of silently writing nothing.
func (s *ConsultantService) Update(ctx context.Context, id string, input ports.UpdateConsultantInput) (*domain.Consultant, error) {
	if err := validation.Check(input); err != nil {
		metrics.ValidationFailuresTotal.WithLabelValues("consultant").Inc()
		return nil, err
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.PreferredRate = domain.Rate{
		Type:   domain.RateType(input.PreferredRateType),
		Amount: input.PreferredRateAmount,
	}
	existing.PreferredUtilization = input.PreferredUtilization
	existing.Contact = input.Contact

	if err := s.col.Update(ctx, *existing); err != nil {
		s.logger.Error().Err(err).Str("id", id).Msg("failed to update consultant")
		return nil, err
	}
	s.logger.Info().Str("id", id).Msg("consultant updated")
	return existing, nil
}

// Delete removes the consultant with the given id; absent ids are a no-op.
func (s *ConsultantService) Delete(ctx context.Context, id string) error {
	if err := s.col.Remove(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("id", id).Msg("failed to delete consultant")
		return err
	}
	s.logger.Info().Str("id", id).Msg("consultant deleted")
	return nil
}
