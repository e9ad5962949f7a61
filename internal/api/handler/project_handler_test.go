package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/consultbridge/marketplace-api/internal/core/domain"
	"github.com/consultbridge/marketplace-api/internal/core/ports"
)

type stubProjectService struct {
	registerFn func(ctx context.Context, input ports.RegisterProjectInput) (*domain.Project, error)
	searchFn   func(ctx context.Context, input ports.ProjectSearchInput) (*ports.ProjectSearchResult, error)
	getFn      func(ctx context.Context, id string) (*domain.Project, error)
	updateFn   func(ctx context.Context, id string, input ports.UpdateProjectInput) (*domain.Project, error)
	deleteFn   func(ctx context.Context, id string) error
}

func (s *stubProjectService) Register(ctx context.Context, input ports.RegisterProjectInput) (*domain.Project, error) {
	return s.registerFn(ctx, input)
}

func (s *stubProjectService) Search(ctx context.Context, input ports.ProjectSearchInput) (*ports.ProjectSearchResult, error) {
	return s.searchFn(ctx, input)
}

func (s *stubProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.getFn(ctx, id)
}

func (s *stubProjectService) Update(ctx context.Context, id string, input ports.UpdateProjectInput) (*domain.Project, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubProjectService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestProjectHandler_Search_MapsQueryParams(t *testing.T) {
	e := echo.New()
	stub := &stubProjectService{
		searchFn: func(ctx context.Context, input ports.ProjectSearchInput) (*ports.ProjectSearchResult, error) {
			if input.Keyword != "DX" || input.Role != "PM" {
				t.Fatalf("unexpected text criteria: %+v", input)
			}
			if len(input.Skills) != 2 || input.Skills[0] != "PMO" || input.Skills[1] != "戦略" {
				t.Fatalf("unexpected skills: %v", input.Skills)
			}
			if input.RateMin != 800000 || input.RateMax != 1200000 {
				t.Fatalf("unexpected rate band: %+v", input)
			}
			if input.Sort != "rate-high" || input.Page != 2 {
				t.Fatalf("unexpected sort/page: %+v", input)
			}
			return &ports.ProjectSearchResult{Items: nil, Total: 0, Page: 2, PerPage: 6, TotalPages: 1}, nil
		},
	}
	handler := NewProjectHandler(stub)

	q := "keyword=DX&role=PM&skills=PMO,戦略&rate_min=800000&rate_max=1200000&sort=rate-high&page=2"
	req := httptest.NewRequest(http.MethodGet, "/v1/projects?"+q, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp listProjectsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data) != 0 || resp.Pagination.Page != 2 || resp.Pagination.PerPage != 6 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestProjectHandler_Search_MalformedIntParamIgnored(t *testing.T) {
	e := echo.New()
	stub := &stubProjectService{
		searchFn: func(ctx context.Context, input ports.ProjectSearchInput) (*ports.ProjectSearchResult, error) {
			if input.RateMin != 0 || input.Page != 0 {
				t.Fatalf("malformed params should map to zero: %+v", input)
			}
			return &ports.ProjectSearchResult{Page: 1, PerPage: 6, TotalPages: 1}, nil
		},
	}
	handler := NewProjectHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/projects?rate_min=abc&page=-3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestProjectHandler_Get_ExposesMaskedCompanyOnly(t *testing.T) {
	e := echo.New()
	stub := &stubProjectService{
		getFn: func(ctx context.Context, id string) (*domain.Project, error) {
			if id != "p1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return &domain.Project{
				ID:            "p1",
				Title:         "基幹システム刷新PM",
				Company:       "株式会社アルファ",
				MaskedCompany: "株社",
			}, nil
		},
	}
	handler := NewProjectHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/projects/p1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["masked_company"] != "株社" {
		t.Fatalf("expected masked company, got %+v", resp)
	}
	if _, leaked := resp["company"]; leaked {
		t.Fatalf("raw company name must not appear in the public payload")
	}
}

func TestProjectHandler_Get_NotFoundPropagates(t *testing.T) {
	e := echo.New()
	stub := &stubProjectService{
		getFn: func(ctx context.Context, id string) (*domain.Project, error) {
			return nil, domain.ErrNotFound
		},
	}
	handler := NewProjectHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/projects/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := handler.Get(c)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProjectHandler_Register_Success(t *testing.T) {
	e := echo.New()
	stub := &stubProjectService{
		registerFn: func(ctx context.Context, input ports.RegisterProjectInput) (*domain.Project, error) {
			if input.Title != "新規事業の戦略策定" || input.RateLower != 900000 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Project{ID: "p9", Title: input.Title, MaskedCompany: "ベ社"}, nil
		},
	}
	handler := NewProjectHandler(stub)

	body := strings.NewReader(`{"title":"新規事業の戦略策定","company":"ベータ株式会社","rate_lower":900000,"rate_upper":1100000}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/projects", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestProjectHandler_Register_InvalidPayload(t *testing.T) {
	e := echo.New()
	stub := &stubProjectService{
		registerFn: func(ctx context.Context, input ports.RegisterProjectInput) (*domain.Project, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewProjectHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/projects", strings.NewReader("not-json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Register(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestProjectHandler_Delete(t *testing.T) {
	e := echo.New()
	deleted := ""
	stub := &stubProjectService{
		deleteFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	handler := NewProjectHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/v1/admin/projects/p1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent || deleted != "p1" {
		t.Fatalf("expected 204 for p1, got %d (%q)", rec.Code, deleted)
	}
}
