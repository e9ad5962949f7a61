// Package fixtures fetches the canonical seed documents from their static
// hosting location.
package fixtures

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/consultbridge/marketplace-api/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// HTTPSource fetches the consultant and project fixture documents by
// relative path under a base URL. It implements ports.FixtureSource.
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPSource creates a fixture source rooted at baseURL
// (e.g. "https://static.example.com/mock").
func NewHTTPSource(baseURL string) *HTTPSource {
	return &HTTPSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

// FetchConsultants retrieves and decodes consultants.json.
func (s *HTTPSource) FetchConsultants(ctx context.Context) ([]domain.Consultant, error) {
	var items []domain.Consultant
	if err := s.fetch(ctx, "consultants.json", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// FetchProjects retrieves and decodes projects.json.
func (s *HTTPSource) FetchProjects(ctx context.Context) ([]domain.Project, error) {
	var items []domain.Project
	if err := s.fetch(ctx, "projects.json", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// fetch GETs one fixture document and decodes it into out. A non-2xx status
// or a malformed body is a hard failure; the seed routine turns it into
// domain.ErrSeedFetch.
func (s *HTTPSource) fetch(ctx context.Context, name string, out any) error {
	url := s.baseURL + "/" + name
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("fixture request %s: %w", name, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("fixture fetch %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("fixture fetch %s: unexpected status %d", name, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("fixture decode %s: %w", name, err)
	}
	return nil
}
