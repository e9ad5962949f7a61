package ports

import (
	"context"

	"github.com/consultbridge/marketplace-api/internal/core/domain"
)

// RegisterProjectInput carries all data submitted by the project
// registration form. RateUpper is validated against the submitted RateLower,
// not a constant, so an inverted range is reported on rate_upper.
type RegisterProjectInput struct {
	Title            string   `json:"title" validate:"required"`
	Company          string   `json:"company" validate:"required"`
	Description      string   `json:"description" validate:"required"`
	RequiredSkills   []string `json:"required_skills" validate:"min=1"`
	NiceToHaveSkills []string `json:"nice_to_have_skills"`
	Role             string   `json:"role" validate:"required"`
	Utilization      int      `json:"utilization" validate:"gte=10,lte=100"`
	RateLower        int      `json:"rate_lower" validate:"gte=100000"`
	RateUpper        int      `json:"rate_upper" validate:"gtefield=RateLower"`
	EngagementLength string   `json:"engagement_length"`
	StartDate        string   `json:"start_date" validate:"required"`
	WorkStyle        string   `json:"work_style" validate:"oneof=remote onsite hybrid"`
	Location         string   `json:"location" validate:"required"`
	Industry         string   `json:"industry"`
	Contact          string   `json:"contact" validate:"contact_email"`
}

// ProjectSearchInput carries the optional criteria of the project search
// surface. Zero values mean the criterion is absent. RateMin and RateMax use
// range-overlap semantics against the project's rate band.
type ProjectSearchInput struct {
	Keyword     string
	Role        string
	Skills      []string
	RateMin     int
	RateMax     int
	Utilization int
	WorkStyle   string
	Industry    string
	Sort        string // new (default) | rate-high | start-soon
	Page        int    // 1-based
}

// ProjectSearchResult is one page of matches plus paging metadata.
type ProjectSearchResult struct {
	Items      []domain.Project
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

// UpdateProjectInput holds the subset of fields editable from the moderation
// surface.
type UpdateProjectInput struct {
	Title       string `json:"title" validate:"required"`
	RateLower   int    `json:"rate_lower" validate:"gte=100000"`
	RateUpper   int    `json:"rate_upper" validate:"gtefield=RateLower"`
	Utilization int    `json:"utilization" validate:"gte=10,lte=100"`
	Contact     string `json:"contact" validate:"contact_email"`
}

// ProjectService defines use-case operations over the projects collection.
type ProjectService interface {
	Register(ctx context.Context, input RegisterProjectInput) (*domain.Project, error)
	Search(ctx context.Context, input ProjectSearchInput) (*ProjectSearchResult, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Update(ctx context.Context, id string, input UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
}
