package handler

// --- Request / Response types ---
//
// Transport types are intentionally separate from ports/domain types so the
// JSON contract is not coupled to internal service changes. Request field
// names match the json names reported by the validation layer, so a client
// can attach each error message to its form field.

type registerConsultantRequest struct {
	Name                 string   `json:"name"`
	ExperienceYears      int      `json:"experience_years"`
	PreferredRateType    string   `json:"preferred_rate_type"`
	PreferredRateAmount  int      `json:"preferred_rate_amount"`
	PreferredUtilization int      `json:"preferred_utilization"`
	BaseLocation         string   `json:"base_location"`
	Remote               bool     `json:"remote"`
	Skills               []string `json:"skills"`
	Industries           []string `json:"industries"`
	AvailableFrom        string   `json:"available_from"`
	EngagementLength     string   `json:"engagement_length"`
	Bio                  string   `json:"bio"`
	Contact              string   `json:"contact"`
}

type updateConsultantRequest struct {
	Name                 string `json:"name"`
	PreferredRateType    string `json:"preferred_rate_type"`
	PreferredRateAmount  int    `json:"preferred_rate_amount"`
	PreferredUtilization int    `json:"preferred_utilization"`
	Contact              string `json:"contact"`
}

type rateResponse struct {
	Type   string `json:"type"`
	Amount int    `json:"amount"`
}

type consultantResponse struct {
	ID                   string       `json:"id"`
	Name                 string       `json:"name"`
	ExperienceYears      int          `json:"experience_years"`
	PreferredRate        rateResponse `json:"preferred_rate"`
	PreferredUtilization int          `json:"preferred_utilization"`
	BaseLocation         string       `json:"base_location"`
	Remote               bool         `json:"remote"`
	Skills               []string     `json:"skills"`
	Industries           []string     `json:"industries"`
	AvailableFrom        string       `json:"available_from"`
	EngagementLength     string       `json:"engagement_length"`
	Bio                  string       `json:"bio"`
	Contact              string       `json:"contact"`
	CreatedAt            string       `json:"created_at"`
}

// paginationResponse is shared by both search surfaces.
type paginationResponse struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
}

type listConsultantsResponse struct {
	Data       []consultantResponse `json:"data"`
	Pagination paginationResponse   `json:"pagination"`
}
