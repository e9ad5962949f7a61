package service

import (
	"context"
	"crypto/subtle"
	"sort"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/consultbridge/marketplace-api/internal/core/domain"
	"github.com/consultbridge/marketplace-api/internal/core/ports"
)

// AdminService gates the moderation surface behind the shared passcode. The
// passcode is a casual access deterrent, not a security boundary; a match
// just unlocks a short-lived session token.
type AdminService struct {
	passcode     string
	passcodeHash string
	jwtSecret    string
	tokenTTL     time.Duration
	consultants  ports.Collection[domain.Consultant]
	projects     ports.Collection[domain.Project]
	inquiries    ports.Collection[domain.Inquiry]
	logger       zerolog.Logger
}

func NewAdminService(
	passcode, passcodeHash, jwtSecret string,
	tokenTTL time.Duration,
	consultants ports.Collection[domain.Consultant],
	projects ports.Collection[domain.Project],
	inquiries ports.Collection[domain.Inquiry],
	logger zerolog.Logger,
) *AdminService {
	if tokenTTL <= 0 {
		tokenTTL = 12 * time.Hour
	}
	return &AdminService{
		passcode:     passcode,
		passcodeHash: passcodeHash,
		jwtSecret:    jwtSecret,
		tokenTTL:     tokenTTL,
		consultants:  consultants,
		projects:     projects,
		inquiries:    inquiries,
		logger:       logger,
	}
}

// Login compares the passcode against the configured constant and issues an
// HS256 session token on match. When a bcrypt hash is configured it takes
// precedence over the plaintext constant.
func (s *AdminService) Login(passcode string) (string, error) {
	if !s.passcodeMatches(passcode) {
		s.logger.Warn().Msg("admin login rejected")
		return "", domain.ErrInvalidPasscode
	}

	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}

	s.logger.Info().Msg("admin session opened")
	return token, nil
}

func (s *AdminService) passcodeMatches(passcode string) bool {
	if s.passcodeHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.passcodeHash), []byte(passcode)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(s.passcode), []byte(passcode)) == 1
}

// Stats aggregates per-collection totals and monthly creation counts for the
// moderation dashboard. Months are derived from the creation-date prefix
// (YYYY-MM) and reported in ascending order.
func (s *AdminService) Stats(ctx context.Context) (*ports.StatsResult, error) {
	consultants, err := s.consultants.List(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	inquiries, err := s.inquiries.List(ctx)
	if err != nil {
		return nil, err
	}

	monthly := make(map[string]*ports.MonthlyCount)
	bump := func(createdAt string, pick func(*ports.MonthlyCount)) {
		if len(createdAt) < 7 {
			return
		}
		month := createdAt[:7]
		mc, ok := monthly[month]
		if !ok {
			mc = &ports.MonthlyCount{Month: month}
			monthly[month] = mc
		}
		pick(mc)
	}
	for _, c := range consultants {
		bump(c.CreatedAt, func(mc *ports.MonthlyCount) { mc.Consultants++ })
	}
	for _, p := range projects {
		bump(p.CreatedAt, func(mc *ports.MonthlyCount) { mc.Projects++ })
	}
	for _, i := range inquiries {
		bump(i.CreatedAt, func(mc *ports.MonthlyCount) { mc.Inquiries++ })
	}

	months := make([]ports.MonthlyCount, 0, len(monthly))
	for _, mc := range monthly {
		months = append(months, *mc)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Month < months[j].Month })

	return &ports.StatsResult{
		TotalConsultants: len(consultants),
		TotalProjects:    len(projects),
		TotalInquiries:   len(inquiries),
		Monthly:          months,
	}, nil
}
