package ports

import (
	"context"

	"github.com/consultbridge/marketplace-api/internal/core/domain"
)

// RegisterConsultantInput carries all data submitted by the consultant
// registration form. Validate tags are evaluated by the validation layer
// before any entity is constructed; field names in the resulting error map
// follow the json tags.
type RegisterConsultantInput struct {
	Name                 string   `json:"name" validate:"required"`
	ExperienceYears      int      `json:"experience_years" validate:"gte=0,lte=50"`
	PreferredRateType    string   `json:"preferred_rate_type" validate:"oneof=hourly daily monthly"`
	PreferredRateAmount  int      `json:"preferred_rate_amount" validate:"gte=1000"`
	PreferredUtilization int      `json:"preferred_utilization" validate:"gte=10,lte=100"`
	BaseLocation         string   `json:"base_location" validate:"required"`
	Remote               bool     `json:"remote"`
	Skills               []string `json:"skills" validate:"min=1"`
	Industries           []string `json:"industries"`
	AvailableFrom        string   `json:"available_from" validate:"required"`
	EngagementLength     string   `json:"engagement_length"`
	Bio                  string   `json:"bio" validate:"required"`
	Contact              string   `json:"contact" validate:"contact_email"`
}

// ConsultantSearchInput carries the optional criteria of the consultant
// search surface. Zero values mean the criterion is absent. Remote is a
// tri-state string: "" (unconstrained), "true" or "false".
type ConsultantSearchInput struct {
	Keyword     string
	Skills      []string
	Experience  int
	RateMax     int
	Utilization int
	Location    string
	Remote      string
	Industry    string
	Sort        string // new (default) | rate-low | experience
	Page        int    // 1-based
}

// ConsultantSearchResult is one page of matches plus paging metadata.
type ConsultantSearchResult struct {
	Items      []domain.Consultant
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

// UpdateConsultantInput holds the subset of fields editable from the
// moderation surface.
type UpdateConsultantInput struct {
	Name                 string `json:"name" validate:"required"`
	PreferredRateType    string `json:"preferred_rate_type" validate:"oneof=hourly daily monthly"`
	PreferredRateAmount  int    `json:"preferred_rate_amount" validate:"gte=1000"`
	PreferredUtilization int    `json:"preferred_utilization" validate:"gte=10,lte=100"`
	Contact              string `json:"contact" validate:"contact_email"`
}

// ConsultantService defines use-case operations over the consultants
// collection.
type ConsultantService interface {
	Register(ctx context.Context, input RegisterConsultantInput) (*domain.Consultant, error)
	Search(ctx context.Context, input ConsultantSearchInput) (*ConsultantSearchResult, error)
	Get(ctx context.Context, id string) (*domain.Consultant, error)
	Update(ctx context.Context, id string, input UpdateConsultantInput) (*domain.Consultant, error)
	Delete(ctx context.Context, id string) error
}
