package query

import (
	"testing"

	"github.com/consultbridge/marketplace-api/internal/core/domain"
)

func sampleProjects() []domain.Project {
	return []domain.Project{
		{
			ID: "p1", Title: "ERP刷新PMO", Description: "基幹システム刷新のPMO支援",
			Role: "PMO", WorkStyle: domain.WorkHybrid, Industry: "製造",
			RequiredSkills: []string{"PMO"}, NiceToHaveSkills: []string{"SAP"},
			RateLower: 700000, RateUpper: 900000, Utilization: 80,
			StartDate: "2024-05-01", CreatedAt: "2024-03-01",
		},
		{
			ID: "p2", Title: "新規事業戦略策定", Description: "戦略コンサルタント募集",
			Role: "戦略", WorkStyle: domain.WorkRemote, Industry: "小売",
			RequiredSkills: []string{"戦略", "市場調査"},
			RateLower:      1000000, RateUpper: 1300000, Utilization: 100,
			StartDate: "2024-04-15", CreatedAt: "2024-03-10",
		},
		{
			ID: "p3", Title: "データ基盤構築", Description: "データ分析基盤のリード",
			Role: "データ", WorkStyle: domain.WorkOnsite, Industry: "金融",
			RequiredSkills: []string{"データ分析"},
			RateLower:      800000, RateUpper: 1100000, Utilization: 60,
			StartDate: "2024-06-01", CreatedAt: "2024-02-20",
		},
	}
}

func sampleConsultants() []domain.Consultant {
	return []domain.Consultant{
		{
			ID: "c1", Name: "山田太郎", Bio: "製造業向けPMO経験10年",
			Skills: []string{"PMO", "戦略"}, Industries: []string{"製造"},
			ExperienceYears: 10, PreferredRate: domain.Rate{Type: domain.RateMonthly, Amount: 900000},
			PreferredUtilization: 80, BaseLocation: "東京", Remote: true, CreatedAt: "2024-03-05",
		},
		{
			ID: "c2", Name: "佐藤花子", Bio: "データ分析と市場調査",
			Skills: []string{"データ分析", "市場調査"}, Industries: []string{"小売", "金融"},
			ExperienceYears: 5, PreferredRate: domain.Rate{Type: domain.RateMonthly, Amount: 700000},
			PreferredUtilization: 100, BaseLocation: "大阪", Remote: false, CreatedAt: "2024-03-08",
		},
	}
}

func TestFilterProjects_RateOverlap(t *testing.T) {
	got := FilterProjects(sampleProjects(), ProjectCriteria{RateMin: 950000})
	for _, p := range got {
		if p.RateUpper < 950000 {
			t.Errorf("project %s with rate_upper=%d should be excluded", p.ID, p.RateUpper)
		}
	}
	if len(got) != 2 {
		t.Fatalf("expected p2 and p3, got %d results", len(got))
	}

	// Overlap edge: A(700k-900k) vs B(1000k-1300k) with rateMin=950000.
	two := []domain.Project{
		{ID: "A", RateLower: 700000, RateUpper: 900000},
		{ID: "B", RateLower: 1000000, RateUpper: 1300000},
	}
	got = FilterProjects(two, ProjectCriteria{RateMin: 950000})
	if len(got) != 1 || got[0].ID != "B" {
		t.Fatalf("expected only B, got %v", got)
	}
}

func TestFilterProjects_SkillsRequireAll(t *testing.T) {
	got := FilterProjects(sampleProjects(), ProjectCriteria{Skills: []string{"PMO", "SAP"}})
	if len(got) != 1 || got[0].ID != "p1" {
		t.Fatalf("nice-to-have skills must count toward the union, got %v", got)
	}
	got = FilterProjects(sampleProjects(), ProjectCriteria{Skills: []string{"PMO", "データ分析"}})
	if len(got) != 0 {
		t.Fatalf("partial skill match must exclude, got %v", got)
	}
}

func TestFilterProjects_KeywordCaseInsensitive(t *testing.T) {
	items := []domain.Project{{ID: "x", Title: "SAP Migration", Description: "legacy"}}
	if got := FilterProjects(items, ProjectCriteria{Keyword: "sap"}); len(got) != 1 {
		t.Fatalf("keyword match should be case-insensitive")
	}
	if got := FilterProjects(items, ProjectCriteria{Keyword: "LEGACY"}); len(got) != 1 {
		t.Fatalf("keyword should match the description too")
	}
}

func TestFilterProjects_Monotonic(t *testing.T) {
	items := sampleProjects()
	base := FilterProjects(items, ProjectCriteria{Utilization: 60})
	narrowed := FilterProjects(items, ProjectCriteria{Utilization: 60, Industry: "製造"})
	if len(narrowed) > len(base) {
		t.Fatalf("adding a criterion must never grow the result: %d > %d", len(narrowed), len(base))
	}
}

func TestFilterConsultants(t *testing.T) {
	items := sampleConsultants()

	if got := FilterConsultants(items, ConsultantCriteria{Skills: []string{"PMO", "データ分析"}}); len(got) != 0 {
		t.Fatalf("AND-over-membership must exclude partial matches, got %v", got)
	}
	if got := FilterConsultants(items, ConsultantCriteria{Remote: "true"}); len(got) != 1 || got[0].ID != "c1" {
		t.Fatalf("remote=true should match only c1, got %v", got)
	}
	if got := FilterConsultants(items, ConsultantCriteria{Remote: "false"}); len(got) != 1 || got[0].ID != "c2" {
		t.Fatalf("remote=false should match only c2, got %v", got)
	}
	if got := FilterConsultants(items, ConsultantCriteria{Experience: 8}); len(got) != 1 || got[0].ID != "c1" {
		t.Fatalf("experience is a minimum bound, got %v", got)
	}
	if got := FilterConsultants(items, ConsultantCriteria{RateMax: 800000}); len(got) != 1 || got[0].ID != "c2" {
		t.Fatalf("rate_max bounds the preferred amount, got %v", got)
	}
	if got := FilterConsultants(items, ConsultantCriteria{Industry: "金融"}); len(got) != 1 || got[0].ID != "c2" {
		t.Fatalf("industry is a membership test, got %v", got)
	}
	if got := FilterConsultants(items, ConsultantCriteria{}); len(got) != 2 {
		t.Fatalf("absent criteria impose no constraint, got %v", got)
	}
}

func TestSortProjects(t *testing.T) {
	items := sampleProjects()

	byRate := SortProjects(items, SortRateHigh)
	for i := 1; i < len(byRate); i++ {
		if byRate[i-1].RateUpper < byRate[i].RateUpper {
			t.Fatalf("rate-high must be descending: %v", byRate)
		}
	}

	byStart := SortProjects(items, SortStartSoon)
	if byStart[0].ID != "p2" {
		t.Fatalf("start-soon must be ascending by start date, got %s first", byStart[0].ID)
	}

	byNew := SortProjects(items, "")
	if byNew[0].ID != "p2" || byNew[2].ID != "p3" {
		t.Fatalf("default sort must be newest first, got %v", byNew)
	}

	// The input order must survive a sort call.
	if items[0].ID != "p1" || items[1].ID != "p2" || items[2].ID != "p3" {
		t.Fatal("sort mutated its input")
	}
}

func TestSortProjects_Stable(t *testing.T) {
	items := []domain.Project{
		{ID: "a", RateUpper: 1000000},
		{ID: "b", RateUpper: 1000000},
		{ID: "c", RateUpper: 1000000},
	}
	got := SortProjects(items, SortRateHigh)
	if got[0].ID != "a" || got[1].ID != "b" || got[2].ID != "c" {
		t.Fatalf("equal keys must preserve input order, got %v", got)
	}
}

func TestSortConsultants(t *testing.T) {
	items := sampleConsultants()
	if got := SortConsultants(items, SortRateLow); got[0].ID != "c2" {
		t.Fatalf("rate-low must be ascending, got %s first", got[0].ID)
	}
	if got := SortConsultants(items, SortExperience); got[0].ID != "c1" {
		t.Fatalf("experience must be descending, got %s first", got[0].ID)
	}
	if got := SortConsultants(items, "unknown"); got[0].ID != "c2" {
		t.Fatalf("unknown strategy falls back to newest first, got %s first", got[0].ID)
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	page1 := Paginate(items, 1, 3)
	if page1.TotalPages != 3 || len(page1.Items) != 3 {
		t.Fatalf("page 1: %+v", page1)
	}
	page3 := Paginate(items, 3, 3)
	if len(page3.Items) != 1 || page3.Items[0] != 7 {
		t.Fatalf("last page must be clamped to bounds: %+v", page3)
	}
	beyond := Paginate(items, 4, 3)
	if len(beyond.Items) != 0 || beyond.TotalPages != 3 {
		t.Fatalf("page beyond totalPages yields empty, not an error: %+v", beyond)
	}
	empty := Paginate([]int{}, 1, 3)
	if empty.TotalPages != 1 || len(empty.Items) != 0 {
		t.Fatalf("empty input still has one page: %+v", empty)
	}
}

func TestPaginate_CoversWithoutOverlap(t *testing.T) {
	items := make([]int, 20)
	for i := range items {
		items[i] = i
	}
	perPage := 6
	var joined []int
	total := Paginate(items, 1, perPage).TotalPages
	for page := 1; page <= total; page++ {
		joined = append(joined, Paginate(items, page, perPage).Items...)
	}
	if len(joined) != len(items) {
		t.Fatalf("concatenated pages have %d items, want %d", len(joined), len(items))
	}
	for i, v := range joined {
		if v != i {
			t.Fatalf("page concatenation out of order at %d: got %d", i, v)
		}
	}
}
