package seeder

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/anterra/worksim/internal/app/seeder/chrono"
	"github.com/anterra/worksim/internal/domain"
)

func sectionRefsNamed(names ...string) []domain.SectionRef {
	projectID := uuid.New()
	refs := make([]domain.SectionRef, len(names))
	for i, n := range names {
		refs[i] = domain.SectionRef{ID: uuid.New(), ProjectID: projectID, Name: n}
	}
	return refs
}

func newTestPipeline(t *testing.T) *Pipeline {
	t.Helper()
	return NewPipeline(testLogger(), newMockRepo(), testConfig())
}

func TestWeightedUniqueNames(t *testing.T) {
	p := newTestPipeline(t)

	names := p.weightedUniqueNames(10)
	if len(names) != 10 {
		t.Fatalf("expected 10 names, got %d", len(names))
	}

	seen := make(map[string]bool)
	valid := make(map[string]bool)
	for _, n := range teamCatalog {
		valid[n] = true
	}
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate team name %q", n)
		}
		if !valid[n] {
			t.Errorf("unknown team name %q", n)
		}
		seen[n] = true
	}

	// Requesting more than the catalog holds caps at the catalog size.
	all := p.weightedUniqueNames(100)
	if len(all) != len(teamCatalog) {
		t.Errorf("expected %d names, got %d", len(teamCatalog), len(all))
	}
}

func TestPreferredTeamNames_Routing(t *testing.T) {
	tests := []struct {
		role string
		want []string
	}{
		{"Software Engineer", []string{"Engineering", "Security", "IT"}},
		{"QA Engineer", []string{"Quality Assurance", "Engineering"}},
		{"Product Manager", []string{"Product", "Program Management"}},
		{"Product Designer", []string{"Product", "Program Management"}},
		{"Design Lead", []string{"Design"}},
		{"Data Scientist", []string{"Data"}},
		{"Finance Analyst", []string{"Data"}},
		{"Sales Executive", []string{"Sales"}},
		{"Customer Success Manager", []string{"Customer Success", "Sales"}},
		{"Account Manager", []string{"Customer Success", "Sales"}},
		{"Security Engineer", []string{"Engineering", "Security", "IT"}},
		{"IT Support Specialist", []string{"IT"}},
		{"People Ops Specialist", []string{"People Operations", "Recruiting"}},
		{"Finance Controller", []string{"Finance", "Business Operations"}},
		{"Chief of Vibes", []string{"Business Operations"}},
	}

	for _, tc := range tests {
		t.Run(tc.role, func(t *testing.T) {
			got := preferredTeamNames(tc.role)
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("got %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestMembershipRole_ManagerBias(t *testing.T) {
	p := newTestPipeline(t)

	const n = 2000
	managerLeads, icLeads := 0, 0
	for i := 0; i < n; i++ {
		if p.membershipRole("Customer Success Manager") == "lead" {
			managerLeads++
		}
		if p.membershipRole("Software Engineer") == "lead" {
			icLeads++
		}
	}

	// Manager titles lead ~70%+ of the time, plain ICs ~7%.
	if managerLeads < n/2 {
		t.Errorf("manager titles should usually be leads, got %d/%d", managerLeads, n)
	}
	if icLeads > n/4 {
		t.Errorf("IC titles should rarely be leads, got %d/%d", icLeads, n)
	}
	if icLeads == 0 {
		t.Error("expected an occasional IC lead")
	}
}

func TestUniqueEmail_DeduplicatesCollisions(t *testing.T) {
	p := newTestPipeline(t)
	used := make(map[string]int)

	first := p.uniqueEmail("Ada Lovelace", used)
	second := p.uniqueEmail("Ada Lovelace", used)
	third := p.uniqueEmail("Ada Lovelace", used)

	if first != "ada.lovelace@test.example" {
		t.Errorf("unexpected first email %q", first)
	}
	if second != "ada.lovelace1@test.example" || third != "ada.lovelace2@test.example" {
		t.Errorf("collision suffixes wrong: %q, %q", second, third)
	}

	// Apostrophes and middle names must not leak into the local part.
	got := p.uniqueEmail("Miles O'Brien Jr", used)
	if strings.ContainsAny(got, "' ") {
		t.Errorf("email %q contains forbidden characters", got)
	}
	if !strings.HasSuffix(got, "@test.example") {
		t.Errorf("email %q missing org domain", got)
	}
}

func TestStageSections_OpsDropsOnlyInteriorColumns(t *testing.T) {
	p := newTestPipeline(t)

	projects := make([]domain.ProjectRef, 300)
	for i := range projects {
		projects[i] = domain.ProjectRef{
			ID:        uuid.New(),
			TeamID:    uuid.New(),
			Archetype: domain.ArchetypeOps,
			CreatedAt: time.Now().UTC().AddDate(0, 0, -200),
		}
	}

	refs, _, err := p.stageSections(context.Background(), projects)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	firsts := make(map[string]bool)
	lasts := make(map[string]bool)
	for _, tmpl := range sectionTemplates {
		firsts[tmpl[0]] = true
		lasts[tmpl[len(tmpl)-1]] = true
	}

	byProject := make(map[uuid.UUID][]string)
	for _, r := range refs {
		byProject[r.ProjectID] = append(byProject[r.ProjectID], r.Name)
	}

	sawFull, sawTrimmed := false, false
	for id, names := range byProject {
		switch len(names) {
		case 5:
			sawFull = true
		case 4:
			sawTrimmed = true
		default:
			t.Fatalf("project %s has %d sections, want 4 or 5", id, len(names))
		}
		// A dropped column must never be the opening or closing stage.
		if !firsts[names[0]] {
			t.Errorf("project %s lost its opening stage, board starts with %q", id, names[0])
		}
		if !lasts[names[len(names)-1]] {
			t.Errorf("project %s lost its closing stage, board ends with %q", id, names[len(names)-1])
		}
	}
	if !sawFull || !sawTrimmed {
		t.Errorf("expected both full and trimmed boards, full=%v trimmed=%v", sawFull, sawTrimmed)
	}
}

func TestStageMemberships_PerUserBounds(t *testing.T) {
	p := newTestPipeline(t)

	teams := make([]domain.TeamRef, 0, 10)
	for _, name := range teamCatalog[:10] {
		teams = append(teams, domain.TeamRef{ID: uuid.New(), Name: name, CreatedAt: time.Now().UTC().AddDate(-2, 0, 0)})
	}

	users := make([]domain.UserRef, 200)
	for i := range users {
		users[i] = domain.UserRef{ID: uuid.New(), Role: userRoles[i%len(userRoles)]}
	}

	refs, _, err := p.stageMemberships(context.Background(), teams, users)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	perUser := make(map[uuid.UUID]int)
	pairs := make(map[[2]uuid.UUID]bool)
	for _, r := range refs {
		perUser[r.UserID]++
		pair := [2]uuid.UUID{r.TeamID, r.UserID}
		if pairs[pair] {
			t.Errorf("user %s holds a duplicate membership in team %s", r.UserID, r.TeamID)
		}
		pairs[pair] = true
	}

	for _, u := range users {
		n := perUser[u.ID]
		if n < 1 || n > 3 {
			t.Errorf("user %s has %d memberships, want 1 to 3", u.ID, n)
		}
	}
}

func TestStageTasks_OverdueInjection(t *testing.T) {
	cfg := testConfig()
	cfg.OverdueProbability = 1.0
	p := NewPipeline(testLogger(), newMockRepo(), cfg)

	org := domain.OrgRef{ID: uuid.New(), CreatedAt: time.Now().UTC().AddDate(-5, 0, 0)}
	projects := make([]domain.ProjectRef, 20)
	for i := range projects {
		projects[i] = domain.ProjectRef{
			ID:        uuid.New(),
			TeamID:    uuid.New(),
			Archetype: domain.ArchetypeRoadmap,
			CreatedAt: time.Now().UTC().AddDate(0, 0, -200),
		}
	}
	users := make([]domain.UserRef, 10)
	for i := range users {
		users[i] = domain.UserRef{ID: uuid.New(), Role: "Software Engineer"}
	}

	refs, _, err := p.stageTasks(context.Background(), org, projects, nil, users, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	today := chrono.DateOf(p.now)
	pulledToToday := 0
	completed := 0
	for _, task := range refs {
		if task.CompletedAt != nil {
			completed++
			if task.CompletedAt.Before(task.CreatedAt) {
				t.Errorf("task %s completed before creation", task.ID)
			}
			continue
		}
		if task.DueDate == nil {
			continue
		}
		// Every open due-dated task must already be overdue or due today.
		if task.DueDate.After(today) {
			t.Errorf("task %s still due in the future at %v", task.ID, task.DueDate)
		}
		if task.DueDate.Equal(today) {
			pulledToToday++
		}
	}

	if pulledToToday == 0 {
		t.Error("expected some open tasks pulled back to today's date")
	}
	if completed == 0 {
		t.Error("expected completed tasks to survive overdue injection")
	}
}

func TestPickSection_FavorsInFlightColumns(t *testing.T) {
	p := newTestPipeline(t)
	sections := sectionRefsNamed("Backlog", "In Progress", "Done")

	counts := make(map[string]int)
	const n = 5000
	for i := 0; i < n; i++ {
		counts[p.pickSection(sections).Name]++
	}

	if counts["In Progress"] <= counts["Backlog"] || counts["In Progress"] <= counts["Done"] {
		t.Errorf("expected the in-flight column to dominate, got %v", counts)
	}
}
