// Package query implements the pure search primitives shared by the public
// search surfaces and the moderation view: predicate filtering, stable
// comparator sorting and offset pagination. All functions are side-effect
// free; sorts operate on a copy of the input slice.
//
// Filtering and sorting always run over the full collection. The working set
// is a small directory dataset, so there is no index; composition order is
// filter, then sort, then paginate.
package query

import (
	"sort"
	"strings"

	"github.com/consultbridge/marketplace-api/internal/core/domain"
)

// Sort strategy names. Unknown names fall back to the "new" default.
const (
	SortNew        = "new"
	SortRateHigh   = "rate-high"
	SortStartSoon  = "start-soon"
	SortRateLow    = "rate-low"
	SortExperience = "experience"
)

// DefaultPerPage is the fixed page size of the search surfaces.
const DefaultPerPage = 6

// ProjectCriteria is the optional-criteria query for projects. Zero values
// impose no constraint; present criteria combine with logical AND.
type ProjectCriteria struct {
	Keyword     string
	Role        string
	Skills      []string
	RateMin     int
	RateMax     int
	Utilization int
	WorkStyle   string
	Industry    string
}

// ConsultantCriteria is the optional-criteria query for consultants. Remote
// is tri-state: "" unconstrained, "true"/"false" exact match.
type ConsultantCriteria struct {
	Keyword     string
	Skills      []string
	Experience  int
	RateMax     int
	Utilization int
	Location    string
	Remote      string
	Industry    string
}

// FilterProjects keeps projects satisfying every present criterion.
// RateMin/RateMax use range-overlap semantics: a project matches RateMin when
// its upper bound reaches it, and RateMax when its lower bound stays under.
func FilterProjects(items []domain.Project, c ProjectCriteria) []domain.Project {
	out := make([]domain.Project, 0, len(items))
	for _, p := range items {
		if c.Keyword != "" && !containsFold(p.Title, c.Keyword) && !containsFold(p.Description, c.Keyword) {
			continue
		}
		if c.Role != "" && p.Role != c.Role {
			continue
		}
		if c.WorkStyle != "" && string(p.WorkStyle) != c.WorkStyle {
			continue
		}
		if c.Industry != "" && p.Industry != c.Industry {
			continue
		}
		if len(c.Skills) > 0 && !hasAll(append(append([]string{}, p.RequiredSkills...), p.NiceToHaveSkills...), c.Skills) {
			continue
		}
		if c.RateMin > 0 && p.RateUpper < c.RateMin {
			continue
		}
		if c.RateMax > 0 && p.RateLower > c.RateMax {
			continue
		}
		if c.Utilization > 0 && p.Utilization < c.Utilization {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterConsultants keeps consultants satisfying every present criterion.
func FilterConsultants(items []domain.Consultant, c ConsultantCriteria) []domain.Consultant {
	out := make([]domain.Consultant, 0, len(items))
	for _, cons := range items {
		if c.Keyword != "" && !containsFold(cons.Name, c.Keyword) && !containsFold(cons.Bio, c.Keyword) {
			continue
		}
		if len(c.Skills) > 0 && !hasAll(cons.Skills, c.Skills) {
			continue
		}
		if c.Experience > 0 && cons.ExperienceYears < c.Experience {
			continue
		}
		if c.RateMax > 0 && cons.PreferredRate.Amount > c.RateMax {
			continue
		}
		if c.Utilization > 0 && cons.PreferredUtilization < c.Utilization {
			continue
		}
		if c.Location != "" && cons.BaseLocation != c.Location {
			continue
		}
		if c.Remote != "" && cons.Remote != (c.Remote == "true") {
			continue
		}
		if c.Industry != "" && !contains(cons.Industries, c.Industry) {
			continue
		}
		out = append(out, cons)
	}
	return out
}

// SortProjects returns a sorted copy of items. Strategies:
//
//	new        — creation date descending (default)
//	rate-high  — rate upper bound descending
//	start-soon — start date ascending
func SortProjects(items []domain.Project, strategy string) []domain.Project {
	sorted := make([]domain.Project, len(items))
	copy(sorted, items)
	switch strategy {
	case SortRateHigh:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].RateUpper > sorted[j].RateUpper })
	case SortStartSoon:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].StartDate < sorted[j].StartDate })
	default:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].CreatedAt > sorted[j].CreatedAt })
	}
	return sorted
}

// SortConsultants returns a sorted copy of items. Strategies:
//
//	new        — creation date descending (default)
//	rate-low   — preferred rate amount ascending
//	experience — experience years descending
func SortConsultants(items []domain.Consultant, strategy string) []domain.Consultant {
	sorted := make([]domain.Consultant, len(items))
	copy(sorted, items)
	switch strategy {
	case SortRateLow:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].PreferredRate.Amount < sorted[j].PreferredRate.Amount })
	case SortExperience:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ExperienceYears > sorted[j].ExperienceYears })
	default:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].CreatedAt > sorted[j].CreatedAt })
	}
	return sorted
}

// Page is one pagination window plus the total page count.
type Page[T any] struct {
	Items      []T
	TotalPages int
}

// Paginate slices items to the 1-based page of the given size. A page past
// the end yields empty Items; the page number is not clamped. TotalPages is
// at least 1 even for an empty input.
func Paginate[T any](items []T, page, perPage int) Page[T] {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if page < 1 {
		page = 1
	}
	totalPages := (len(items) + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	start := (page - 1) * perPage
	if start >= len(items) {
		return Page[T]{Items: []T{}, TotalPages: totalPages}
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}
	return Page[T]{Items: items[start:end], TotalPages: totalPages}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func contains(set []string, want string) bool {
	for _, s := range set {
		if s == want {
			return true
		}
	}
	return false
}

// hasAll reports whether every wanted tag appears in set.
func hasAll(set, wanted []string) bool {
	for _, w := range wanted {
		if !contains(set, w) {
			return false
		}
	}
	return true
}
