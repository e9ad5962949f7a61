package handler

type registerProjectRequest struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Description      string   `json:"description"`
	RequiredSkills   []string `json:"required_skills"`
	NiceToHaveSkills []string `json:"nice_to_have_skills"`
	Role             string   `json:"role"`
	Utilization      int      `json:"utilization"`
	RateLower        int      `json:"rate_lower"`
	RateUpper        int      `json:"rate_upper"`
	EngagementLength string   `json:"engagement_length"`
	StartDate        string   `json:"start_date"`
	WorkStyle        string   `json:"work_style"`
	Location         string   `json:"location"`
	Industry         string   `json:"industry"`
	Contact          string   `json:"contact"`
}

type updateProjectRequest struct {
	Title       string `json:"title"`
	RateLower   int    `json:"rate_lower"`
	RateUpper   int    `json:"rate_upper"`
	Utilization int    `json:"utilization"`
	Contact     string `json:"contact"`
}

// projectResponse is the public view of a project. The company name is only
// exposed through its masked label; the raw name stays internal to the
// moderation surface.
type projectResponse struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	MaskedCompany    string   `json:"masked_company"`
	Description      string   `json:"description"`
	RequiredSkills   []string `json:"required_skills"`
	NiceToHaveSkills []string `json:"nice_to_have_skills,omitempty"`
	Role             string   `json:"role"`
	Utilization      int      `json:"utilization"`
	RateLower        int      `json:"rate_lower"`
	RateUpper        int      `json:"rate_upper"`
	EngagementLength string   `json:"engagement_length"`
	StartDate        string   `json:"start_date"`
	WorkStyle        string   `json:"work_style"`
	Location         string   `json:"location"`
	Industry         string   `json:"industry"`
	Contact          string   `json:"contact"`
	CreatedAt        string   `json:"created_at"`
}

type listProjectsResponse struct {
	Data       []projectResponse  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
