package domain

// WorkStyle describes where the engagement is performed.
type WorkStyle string

const (
	WorkRemote WorkStyle = "remote"
	WorkOnsite WorkStyle = "onsite"
	WorkHybrid WorkStyle = "hybrid"
)

// Project is an engagement opportunity posted by a company.
//
// MaskedCompany is the public label shown instead of the company name; it is
// derived once at registration time (see MaskCompany) and stored with the
// entity. Invariant: RateLower <= RateUpper.
type Project struct {
	ID               string    `json:"id" bson:"id"`
	Title            string    `json:"title" bson:"title"`
	Company          string    `json:"company" bson:"company"`
	MaskedCompany    string    `json:"masked_company" bson:"masked_company"`
	Description      string    `json:"description" bson:"description"`
	RequiredSkills   []string  `json:"required_skills" bson:"required_skills"`
	NiceToHaveSkills []string  `json:"nice_to_have_skills,omitempty" bson:"nice_to_have_skills,omitempty"`
	Role             string    `json:"role" bson:"role"`
	Utilization      int       `json:"utilization" bson:"utilization"`
	RateLower        int       `json:"rate_lower" bson:"rate_lower"`
	RateUpper        int       `json:"rate_upper" bson:"rate_upper"`
	EngagementLength string    `json:"engagement_length" bson:"engagement_length"`
	StartDate        string    `json:"start_date" bson:"start_date"`
	WorkStyle        WorkStyle `json:"work_style" bson:"work_style"`
	Location         string    `json:"location" bson:"location"`
	Industry         string    `json:"industry" bson:"industry"`
	Contact          string    `json:"contact" bson:"contact"`
	CreatedAt        string    `json:"created_at" bson:"created_at"`
}

// EntityID satisfies ports.Entity.
func (p Project) EntityID() string { return p.ID }

// companyMaskSuffix is appended to the first rune of a company name to build
// the redacted label shown in search results and detail views.
const companyMaskSuffix = "社"

// MaskCompany derives the redacted company label: first rune + fixed suffix.
// An empty name yields just the suffix.
func MaskCompany(name string) string {
	for _, r := range name {
		return string(r) + companyMaskSuffix
	}
	return companyMaskSuffix
}
