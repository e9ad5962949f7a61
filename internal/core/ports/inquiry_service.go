package ports

import (
	"context"

	"github.com/consultbridge/marketplace-api/internal/core/domain"
)

// CreateInquiryInput carries a contact request submitted from a project or
// consultant detail view. TargetID is never checked against the target
// collection; it is recorded as given.
type CreateInquiryInput struct {
	TargetID   string `json:"target_id" validate:"required"`
	TargetType string `json:"target_type" validate:"oneof=project consultant"`
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"contact_email"`
	Message    string `json:"message" validate:"required"`
}

// InquiryListItem is an inquiry enriched with the resolved target title for
// the moderation view. TargetTitle falls back to a placeholder when the
// referenced entity no longer exists.
type InquiryListItem struct {
	Inquiry     domain.Inquiry
	TargetTitle string
}

// InquiryService defines use-case operations over the inquiries collection.
type InquiryService interface {
	Create(ctx context.Context, input CreateInquiryInput) (*domain.Inquiry, error)
	List(ctx context.Context) ([]InquiryListItem, error)
	Delete(ctx context.Context, id string) error
}
