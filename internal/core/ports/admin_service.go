package ports

import "context"

// MonthlyCount aggregates how many entities were created in one calendar
// month (YYYY-MM), per collection.
type MonthlyCount struct {
	Month       string
	Consultants int
	Projects    int
	Inquiries   int
}

// StatsResult is the moderation dashboard summary.
type StatsResult struct {
	TotalConsultants int
	TotalProjects    int
	TotalInquiries   int
	Monthly          []MonthlyCount
}

// AdminService gates the moderation surface behind the shared passcode and
// serves its dashboard data.
type AdminService interface {
	// Login compares the passcode against the configured constant and, on
	// match, issues a session token. A mismatch returns
	// domain.ErrInvalidPasscode.
	Login(passcode string) (string, error)
	Stats(ctx context.Context) (*StatsResult, error)
}
