package domain

// TargetType identifies which collection an inquiry points at.
type TargetType string

const (
	TargetProject    TargetType = "project"
	TargetConsultant TargetType = "consultant"
)

// Inquiry is a contact request against a project or consultant.
//
// TargetID is a soft reference: the target may have been deleted since the
// inquiry was recorded, and readers must tolerate the dangling id.
// CreatedAt is a full RFC 3339 datetime, unlike the date-only stamps on
// consultants and projects.
type Inquiry struct {
	ID         string     `json:"id" bson:"id"`
	TargetID   string     `json:"target_id" bson:"target_id"`
	TargetType TargetType `json:"target_type" bson:"target_type"`
	Name       string     `json:"name" bson:"name"`
	Email      string     `json:"email" bson:"email"`
	Message    string     `json:"message" bson:"message"`
	CreatedAt  string     `json:"created_at" bson:"created_at"`
}

// EntityID satisfies ports.Entity.
func (i Inquiry) EntityID() string { return i.ID }
