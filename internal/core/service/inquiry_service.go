package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/consultbridge/marketplace-api/internal/api/metrics"
	"github.com/consultbridge/marketplace-api/internal/core/domain"
	"github.com/consultbridge/marketplace-api/internal/core/ports"
	"github.com/consultbridge/marketplace-api/internal/core/validation"
)

// unknownTarget is the placeholder title rendered when an inquiry points at
// an entity that has since been deleted.
const unknownTarget = "unknown target"

// InquiryService captures contact requests and serves the moderation list.
// The target reference is recorded as submitted and never checked against
// the target collection.
type InquiryService struct {
	col         ports.Collection[domain.Inquiry]
	consultants ports.Collection[domain.Consultant]
	projects    ports.Collection[domain.Project]
	logger      zerolog.Logger
}

func NewInquiryService(
	col ports.Collection[domain.Inquiry],
	consultants ports.Collection[domain.Consultant],
	projects ports.Collection[domain.Project],
	logger zerolog.Logger,
) *InquiryService {
	return &InquiryService{col: col, consultants: consultants, projects: projects, logger: logger}
}

// Create validates the inquiry form and appends the inquiry with a fresh id
// and a full datetime stamp.
func (s *InquiryService) Create(ctx context.Context, input ports.CreateInquiryInput) (*domain.Inquiry, error) {
	if err := validation.Check(input); err != nil {
		metrics.ValidationFailuresTotal.WithLabelValues("inquiry").Inc()
		return nil, err
	}

	inquiry := domain.Inquiry{
		ID:         uuid.NewString(),
		TargetID:   input.TargetID,
		TargetType: domain.TargetType(input.TargetType),
		Name:       input.Name,
		Email:      input.Email,
		Message:    input.Message,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.col.Add(ctx, inquiry); err != nil {
		s.logger.Error().Err(err).Msg("failed to add inquiry")
		return nil, err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("inquiries").Inc()
	s.logger.Info().
		Str("id", inquiry.ID).
		Str("target_type", string(inquiry.TargetType)).
		Str("target_id", inquiry.TargetID).
		Msg("inquiry recorded")
	return &inquiry, nil
}

// List returns all inquiries with their target titles resolved. A dangling
// target id resolves to a placeholder rather than an error.
func (s *InquiryService) List(ctx context.Context) ([]ports.InquiryListItem, error) {
	inquiries, err := s.col.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ports.InquiryListItem, 0, len(inquiries))
	for _, inq := range inquiries {
		out = append(out, ports.InquiryListItem{
			Inquiry:     inq,
			TargetTitle: s.resolveTarget(ctx, inq),
		})
	}
	return out, nil
}

// Delete removes the inquiry with the given id; absent ids are a no-op.
func (s *InquiryService) Delete(ctx context.Context, id string) error {
	if err := s.col.Remove(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("id", id).Msg("failed to delete inquiry")
		return err
	}
	s.logger.Info().Str("id", id).Msg("inquiry deleted")
	return nil
}

func (s *InquiryService) resolveTarget(ctx context.Context, inq domain.Inquiry) string {
	switch inq.TargetType {
	case domain.TargetConsultant:
		items, err := s.consultants.List(ctx)
		if err == nil {
			for _, c := range items {
				if c.ID == inq.TargetID {
					return c.Name
				}
			}
		}
	case domain.TargetProject:
		items, err := s.projects.List(ctx)
		if err == nil {
			for _, p := range items {
				if p.ID == inq.TargetID {
					return p.Title
				}
			}
		}
	}
	return unknownTarget
}
