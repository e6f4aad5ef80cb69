// Package text composes the human-sounding strings in the dataset: task
// and subtask titles, project names, team blurbs, and comment bodies.
// Light templates over small catalogs beat pure lorem ipsum because titles
// encode intent, scope, and sometimes the workflow stage.
package text

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/anterra/worksim/internal/app/seeder/chrono"
	"github.com/anterra/worksim/internal/domain"
)

var verbs = []string{
	"Review",
	"Implement",
	"Draft",
	"Refine",
	"Validate",
	"Align on",
	"Plan",
	"Sync on",
	"Estimate",
	"Document",
	"Prioritize",
	"Migrate",
	"Clean up",
	"Backfill",
}

var objectsProduct = []string{
	"API contract for %s",
	"feature spec for %s",
	"user journey for %s",
	"acceptance criteria for %s",
	"tracking plan for %s",
}

var objectsEngineering = []string{
	"service dependency graph",
	"background job reliability",
	"database query performance",
	"error handling for edge cases",
	"deployment pipeline",
}

var objectsGoToMarket = []string{
	"launch messaging",
	"sales enablement deck",
	"onboarding guide",
	"pricing one-pager",
	"FAQ document",
}

var objectsOps = []string{
	"runbook for %s incidents",
	"alert thresholds for %s",
	"playbook for %s handoffs",
	"cleanup tasks for %s",
}

var areas = []string{
	"billing",
	"onboarding",
	"notifications",
	"workspace settings",
	"mobile experience",
	"reporting dashboards",
	"admin controls",
}

var subtaskPrefixes = []string{
	"Draft",
	"Review",
	"Finalize",
	"Get sign-off on",
	"Update",
	"Double-check",
	"Clarify",
}

var commentSnippets = []string{
	"Let's sync on this before EOD.",
	"Pushing this to next sprint based on priorities.",
	"Blocked until we hear back from legal.",
	"Dropping a quick note here instead of email.",
	"Can we clarify the scope in the description?",
	"Looks good to me, thanks for the update.",
	"Flagging that this might impact reporting.",
	"Happy to pair on this if helpful.",
	"Let's keep this aligned with the roadmap doc.",
	"Moving this to In Progress now.",
}

var sprintCodenames = []string{"Orion", "Nova", "Atlas", "Vega", "Helix", "Quasar"}

var launchMarkets = []string{"Enterprise", "SMB", "EMEA", "US", "APAC"}

var opsThemes = []string{"Reliability", "SRE", "Incident Readiness", "Data Hygiene", "Automation"}

// Composer generates all free-form text. It shares the sampler's random
// stream with the rest of the pipeline, so a fixed seed reproduces the
// exact wording of a run.
type Composer struct {
	f *gofakeit.Faker
	s *chrono.Sampler
}

func NewComposer(f *gofakeit.Faker, s *chrono.Sampler) *Composer {
	return &Composer{f: f, s: s}
}

// PersonName returns a plausible full name.
func (c *Composer) PersonName() string {
	return c.f.Name()
}

// TeamDescription returns a short corporate blurb.
func (c *Composer) TeamDescription() string {
	return fmt.Sprintf("%s %s", titleCase(c.f.BuzzWord()), c.f.BS())
}

// ProjectDescription returns a one-sentence project summary.
func (c *Composer) ProjectDescription() string {
	return c.f.Sentence(10)
}

// ProjectName generates a name keyed on the project archetype:
// roadmaps emphasize quarters and years, sprints use numbered codenames,
// launches use feature and market labels, ops use stability phrasing.
func (c *Composer) ProjectName(archetype domain.Archetype, teamName string, now time.Time) string {
	switch archetype {
	case domain.ArchetypeRoadmap:
		quarter := chrono.Pick(c.s, []string{"Q1", "Q2", "Q3", "Q4"})
		year := now.Year() + c.s.IntBetween(0, 1)
		return fmt.Sprintf("%s %s %d Roadmap", teamName, quarter, year)
	case domain.ArchetypeSprint:
		return fmt.Sprintf("Sprint %d - %s", c.s.IntBetween(12, 58), chrono.Pick(c.s, sprintCodenames))
	case domain.ArchetypeLaunch:
		feature := titleCase(c.f.BuzzWord() + " " + c.f.BS())
		return fmt.Sprintf("%s Launch - %s", feature, chrono.Pick(c.s, launchMarkets))
	default:
		return fmt.Sprintf("%s %s Ops", teamName, chrono.Pick(c.s, opsThemes))
	}
}

// TaskTitle biases wording by archetype: roadmap and launch work leans
// toward specs and messaging, sprint work toward implementation, ops work
// toward runbooks and cleanups. Titles in early-funnel sections get a
// "Candidate: " prefix 40% of the time.
func (c *Composer) TaskTitle(archetype domain.Archetype, sectionName string) string {
	verb := chrono.Pick(c.s, verbs)
	area := chrono.Pick(c.s, areas)

	var object string
	switch archetype {
	case domain.ArchetypeRoadmap, domain.ArchetypeLaunch:
		object = chrono.Pick(c.s, append(append([]string{}, objectsProduct...), objectsGoToMarket...))
	case domain.ArchetypeSprint:
		object = chrono.Pick(c.s, append(append([]string{}, objectsEngineering...), objectsProduct...))
	default:
		object = chrono.Pick(c.s, objectsOps)
	}
	if strings.Contains(object, "%s") {
		object = fmt.Sprintf(object, area)
	}

	title := verb + " " + object

	switch strings.ToLower(sectionName) {
	case "backlog", "ideas":
		if c.s.Float64() < 0.4 {
			title = "Candidate: " + title
		}
	}
	return title
}

// SubtaskTitle derives a short, action-oriented title from the parent.
// Only the suffix after the last " for " is kept so titles stay compact.
func (c *Composer) SubtaskTitle(parentTitle string) string {
	focus := parentTitle
	if idx := strings.LastIndex(parentTitle, " for "); idx >= 0 {
		focus = parentTitle[idx+len(" for "):]
	}
	return chrono.Pick(c.s, subtaskPrefixes) + " " + focus
}

// Comment returns a short conversational body: a canned snippet 70% of the
// time, otherwise a 6–14 word generated sentence for variety.
func (c *Composer) Comment() string {
	if c.s.Float64() < 0.7 {
		return chrono.Pick(c.s, commentSnippets)
	}
	return c.f.Sentence(c.s.IntBetween(6, 14))
}

func titleCase(s string) string {
	fields := strings.Fields(s)
	for i, w := range fields {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		fields[i] = string(r)
	}
	return strings.Join(fields, " ")
}
