package validation

import (
	"testing"

	"github.com/consultbridge/marketplace-api/internal/core/domain"
	"github.com/consultbridge/marketplace-api/internal/core/ports"
)

func validProjectForm() ports.RegisterProjectInput {
	return ports.RegisterProjectInput{
		Title:          "ERP刷新PMO",
		Company:        "Acme株式会社",
		Description:    "基幹システム刷新のPMO支援",
		RequiredSkills: []string{"PMO"},
		Role:           "PMO",
		Utilization:    80,
		RateLower:      700000,
		RateUpper:      900000,
		StartDate:      "2024-05-01",
		WorkStyle:      "hybrid",
		Location:       "東京",
		Contact:        "pm@acme.co.jp",
	}
}

func TestCheck_ValidProject(t *testing.T) {
	if err := Check(validProjectForm()); err != nil {
		t.Fatalf("valid form rejected: %v", err)
	}
}

func TestCheck_RateUpperBelowLower(t *testing.T) {
	form := validProjectForm()
	form.RateLower = 800000
	form.RateUpper = 500000

	err := Check(form)
	ve, ok := domain.AsValidationError(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, found := ve.Fields["rate_upper"]; !found {
		t.Fatalf("inverted range must be reported on rate_upper: %v", ve.Fields)
	}
	if _, found := ve.Fields["rate_lower"]; found {
		t.Fatalf("rate_lower=800000 is valid on its own: %v", ve.Fields)
	}
}

func TestCheck_ReportsAllFailingFields(t *testing.T) {
	form := ports.RegisterConsultantInput{
		// name, base_location, available_from, bio all missing
		ExperienceYears:      60,
		PreferredRateType:    "weekly",
		PreferredRateAmount:  100,
		PreferredUtilization: 5,
		Skills:               nil,
		Contact:              "not-an-email",
	}

	err := Check(form)
	ve, ok := domain.AsValidationError(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	for _, field := range []string{
		"name", "experience_years", "preferred_rate_type", "preferred_rate_amount",
		"preferred_utilization", "base_location", "skills", "available_from",
		"bio", "contact",
	} {
		if _, found := ve.Fields[field]; !found {
			t.Errorf("missing error for %s: %v", field, ve.Fields)
		}
	}
}

func TestCheck_ContactEmailShape(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"a@b.co", true},
		{"taro.yamada@example.co.jp", true},
		{"missing-at.example.com", false},
		{"no-dot@example", false},
		{"", false},
	}
	for _, tc := range cases {
		form := validProjectForm()
		form.Contact = tc.email
		err := Check(form)
		if tc.valid && err != nil {
			t.Errorf("%q should be accepted: %v", tc.email, err)
		}
		if !tc.valid {
			ve, ok := domain.AsValidationError(err)
			if !ok || ve.Fields["contact"] == "" {
				t.Errorf("%q should fail on contact, got %v", tc.email, err)
			}
		}
	}
}

func TestCheck_InquiryTargetType(t *testing.T) {
	form := ports.CreateInquiryInput{
		TargetID:   "p1",
		TargetType: "company",
		Name:       "山田",
		Email:      "yamada@example.com",
		Message:    "お話を伺いたいです",
	}
	err := Check(form)
	ve, ok := domain.AsValidationError(err)
	if !ok || ve.Fields["target_type"] == "" {
		t.Fatalf("unknown target type must be rejected, got %v", err)
	}
}
