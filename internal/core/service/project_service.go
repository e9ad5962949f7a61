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

// ProjectService implements registration, search and moderation for
// projects.
type ProjectService struct {
	col    ports.Collection[domain.Project]
	logger zerolog.Logger
}

func NewProjectService(col ports.Collection[domain.Project], logger zerolog.Logger) *ProjectService {
	return &ProjectService{col: col, logger: logger}
}

// Register validates the submitted form and, on success, synthesizes a fresh
// id, the masked company label and a creation date before appending the
// project.
func (s *ProjectService) Register(ctx context.Context, input ports.RegisterProjectInput) (*domain.Project, error) {
	if err := validation.Check(input); err != nil {
		metrics.ValidationFailuresTotal.WithLabelValues("project").Inc()
		return nil, err
	}

	project := domain.Project{
		ID:               uuid.NewString(),
		Title:            input.Title,
		Company:          input.Company,
		MaskedCompany:    domain.MaskCompany(input.Company),
		Description:      input.Description,
		RequiredSkills:   input.RequiredSkills,
		NiceToHaveSkills: input.NiceToHaveSkills,
		Role:             input.Role,
		Utilization:      input.Utilization,
		RateLower:        input.RateLower,
		RateUpper:        input.RateUpper,
		EngagementLength: input.EngagementLength,
		StartDate:        input.StartDate,
		WorkStyle:        domain.WorkStyle(input.WorkStyle),
		Location:         input.Location,
		Industry:         input.Industry,
		Contact:          input.Contact,
		CreatedAt:        time.Now().UTC().Format(dateStamp),
	}

	if err := s.col.Add(ctx, project); err != nil {
		s.logger.Error().Err(err).Msg("failed to add project")
		return nil, err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("projects").Inc()
	s.logger.Info().Str("id", project.ID).Str("company", project.MaskedCompany).Msg("project registered")
	return &project, nil
}

// Search evaluates filter → sort → paginate over the full collection.
func (s *ProjectService) Search(ctx context.Context, input ports.ProjectSearchInput) (*ports.ProjectSearchResult, error) {
	timer := time.Now()
	items, err := s.col.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := query.FilterProjects(items, query.ProjectCriteria{
		Keyword:     input.Keyword,
		Role:        input.Role,
		Skills:      input.Skills,
		RateMin:     input.RateMin,
		RateMax:     input.RateMax,
		Utilization: input.Utilization,
		WorkStyle:   input.WorkStyle,
		Industry:    input.Industry,
	})
	sorted := query.SortProjects(filtered, input.Sort)

	page := input.Page
	if page < 1 {
		page = 1
	}
	paged := query.Paginate(sorted, page, query.DefaultPerPage)

	metrics.SearchesTotal.WithLabelValues("projects").Inc()
	metrics.SearchDuration.WithLabelValues("projects").Observe(time.Since(timer).Seconds())

	return &ports.ProjectSearchResult{
		Items:      paged.Items,
		Total:      len(filtered),
		Page:       page,
		PerPage:    query.DefaultPerPage,
		TotalPages: paged.TotalPages,
	}, nil
}

// Get returns the project with the given id or domain.ErrNotFound.
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	items, err := s.col.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range items {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Update applies a moderation edit to the subset of editable fields.
func (s *ProjectService) Update(ctx context.Context, id string, input ports.UpdateProjectInput) (*domain.Project, error) {
	if err := validation.Check(input); err != nil {
		metrics.ValidationFailuresTotal.WithLabelValues("project").Inc()
		return nil, err
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Title = input.Title
	existing.RateLower = input.RateLower
	existing.RateUpper = input.RateUpper
	existing.Utilization = input.Utilization
	existing.Contact = input.Contact

	if err := s.col.Update(ctx, *existing); err != nil {
		s.logger.Error().Err(err).Str("id", id).Msg("failed to update project")
		return nil, err
	}
	s.logger.Info().Str("id", id).Msg("project updated")
	return existing, nil
}

// Delete removes the project with the given id; absent ids are a no-op.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.col.Remove(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("id", id).Msg("failed to delete project")
		return err
	}
	s.logger.Info().Str("id", id).Msg("project deleted")
	return nil
}
