package seeder

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/anterra/worksim/internal/domain"
)

// Core functional areas appear more often; niche teams less so.
var teamCatalog = []string{
	"Engineering",
	"Product",
	"Design",
	"Marketing",
	"Sales",
	"Customer Success",
	"Data",
	"IT",
	"Security",
	"Finance",
	"People Operations",
	"Recruiting",
	"Quality Assurance",
	"Business Operations",
	"Program Management",
}

var teamWeights = []float64{
	0.20, // Engineering dominates headcount in many tech orgs
	0.14, // Product partners closely with Engineering
	0.10, // Design smaller but central
	0.10, // Marketing mid-sized
	0.10, // Sales sizable in enterprise
	0.06, // Customer Success present but smaller
	0.05, // Data/Analytics
	0.04, // IT
	0.03, // Security
	0.03, // Finance
	0.03, // People Ops
	0.03, // Recruiting
	0.03, // QA
	0.03, // BizOps
	0.03, // Program Mgmt
}

// stageTeams creates 8–15 teams with realistic functional coverage, biased
// toward ~11 via a triangular draw. Creation dates spread over the years
// after founding to emulate staged org growth.
func (p *Pipeline) stageTeams(ctx context.Context, org domain.OrgRef) ([]domain.TeamRef, int, error) {
	target := p.sampler.TriangularInt(p.cfg.MinTeams, p.cfg.MaxTeams,
		float64(p.cfg.MinTeams+p.cfg.MaxTeams)/2+2)

	names := p.weightedUniqueNames(target)

	teams := make([]domain.Team, 0, len(names))
	refs := make([]domain.TeamRef, 0, len(names))
	for _, name := range names {
		yearsAfter := p.sampler.Uniform(0.5, 9.0)
		createdAt := org.CreatedAt.Add(time.Duration(yearsAfter * 365 * 24 * float64(time.Hour)))

		team := domain.Team{
			ID:          uuid.New(),
			OrgID:       org.ID,
			Name:        name,
			Description: p.text.TeamDescription(),
			CreatedAt:   createdAt,
		}
		teams = append(teams, team)
		refs = append(refs, domain.TeamRef{ID: team.ID, Name: team.Name, CreatedAt: team.CreatedAt})
	}

	n, err := write(ctx, p, teams, p.repo.BulkInsertTeams)
	if err != nil {
		return nil, n, err
	}
	return refs, n, nil
}

// weightedUniqueNames samples unique team names using the catalog weights,
// without replacement. Draws are retried until the target count is reached
// so weighting is preserved while duplicates are excluded.
func (p *Pipeline) weightedUniqueNames(target int) []string {
	if target > len(teamCatalog) {
		target = len(teamCatalog)
	}
	chosen := make([]string, 0, target)
	seen := make(map[string]bool, target)
	for len(chosen) < target {
		name := teamCatalog[p.sampler.WeightedIndex(teamWeights)]
		if seen[name] {
			continue
		}
		seen[name] = true
		chosen = append(chosen, name)
	}
	return chosen
}
