package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/consultbridge/marketplace-api/internal/core/domain"
)

func newAdminFixture(passcode, passcodeHash string) *AdminService {
	return NewAdminService(
		passcode, passcodeHash, "test-secret", time.Hour,
		&memCollection[domain.Consultant]{},
		&memCollection[domain.Project]{},
		&memCollection[domain.Inquiry]{},
		zerolog.Nop(),
	)
}

func TestAdminService_Login(t *testing.T) {
	svc := newAdminFixture("4321", "")

	token, err := svc.Login("4321")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("issued token must verify: %v", err)
	}
	if claims["role"] != "admin" {
		t.Fatalf("token must carry the admin role: %v", claims)
	}
}

func TestAdminService_LoginWrongPasscode(t *testing.T) {
	svc := newAdminFixture("4321", "")
	if _, err := svc.Login("1234"); !errors.Is(err, domain.ErrInvalidPasscode) {
		t.Fatalf("expected ErrInvalidPasscode, got %v", err)
	}
}

func TestAdminService_LoginBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("4321"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	svc := newAdminFixture("", string(hash))

	if _, err := svc.Login("4321"); err != nil {
		t.Fatalf("hash login: %v", err)
	}
	if _, err := svc.Login("9999"); !errors.Is(err, domain.ErrInvalidPasscode) {
		t.Fatalf("expected ErrInvalidPasscode, got %v", err)
	}
}

func TestAdminService_Stats(t *testing.T) {
	svc := NewAdminService(
		"4321", "", "secret", time.Hour,
		&memCollection[domain.Consultant]{items: []domain.Consultant{
			{ID: "c1", CreatedAt: "2024-02-10"},
			{ID: "c2", CreatedAt: "2024-03-05"},
		}},
		&memCollection[domain.Project]{items: []domain.Project{
			{ID: "p1", CreatedAt: "2024-03-12"},
		}},
		&memCollection[domain.Inquiry]{items: []domain.Inquiry{
			{ID: "i1", CreatedAt: "2024-03-25T10:00:00Z"},
		}},
		zerolog.Nop(),
	)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalConsultants != 2 || stats.TotalProjects != 1 || stats.TotalInquiries != 1 {
		t.Fatalf("totals wrong: %+v", stats)
	}
	if len(stats.Monthly) != 2 {
		t.Fatalf("expected 2 months, got %+v", stats.Monthly)
	}
	if stats.Monthly[0].Month != "2024-02" || stats.Monthly[0].Consultants != 1 {
		t.Fatalf("february wrong: %+v", stats.Monthly[0])
	}
	march := stats.Monthly[1]
	if march.Month != "2024-03" || march.Consultants != 1 || march.Projects != 1 || march.Inquiries != 1 {
		t.Fatalf("march wrong: %+v", march)
	}
}
