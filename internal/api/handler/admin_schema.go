package handler

type adminLoginRequest struct {
	Passcode string `json:"passcode"`
}

type adminLoginResponse struct {
	Token string `json:"token"`
}

type createInquiryRequest struct {
	TargetID   string `json:"target_id"`
	TargetType string `json:"target_type"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Message    string `json:"message"`
}

type inquiryResponse struct {
	ID          string `json:"id"`
	TargetID    string `json:"target_id"`
	TargetType  string `json:"target_type"`
	TargetTitle string `json:"target_title,omitempty"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Message     string `json:"message"`
	CreatedAt   string `json:"created_at"`
}

type listInquiriesResponse struct {
	Data []inquiryResponse `json:"data"`
}

type monthlyCountResponse struct {
	Month       string `json:"month"`
	Consultants int    `json:"consultants"`
	Projects    int    `json:"projects"`
	Inquiries   int    `json:"inquiries"`
}

type statsResponse struct {
	TotalConsultants int                    `json:"total_consultants"`
	TotalProjects    int                    `json:"total_projects"`
	TotalInquiries   int                    `json:"total_inquiries"`
	Monthly          []monthlyCountResponse `json:"monthly"`
}
