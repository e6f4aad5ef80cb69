package seeder

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/anterra/worksim/internal/app/seeder/chrono"
	"github.com/anterra/worksim/internal/domain"
)

// Users typically belong to a single primary team; a minority straddle two.
var membershipCountWeights = []float64{0.70, 0.25, 0.05}

// stageMemberships assigns each user to 1–3 teams, steering toward
// role-aligned teams when present. Added-at dates spread across the last
// few years to simulate staggered hiring and team growth.
func (p *Pipeline) stageMemberships(ctx context.Context, teams []domain.TeamRef, users []domain.UserRef) ([]domain.MembershipRef, int, error) {
	teamByName := make(map[string]uuid.UUID, len(teams))
	teamIDs := make([]uuid.UUID, 0, len(teams))
	for _, t := range teams {
		teamByName[t.Name] = t.ID
		teamIDs = append(teamIDs, t.ID)
	}

	var memberships []domain.TeamMembership
	var refs []domain.MembershipRef

	for _, user := range users {
		desired := 1 + p.sampler.WeightedIndex(membershipCountWeights)

		// Candidate team IDs prioritizing role-preferred teams.
		var preferred []uuid.UUID
		inPreferred := make(map[uuid.UUID]bool)
		for _, name := range preferredTeamNames(user.Role) {
			if id, ok := teamByName[name]; ok {
				preferred = append(preferred, id)
				inPreferred[id] = true
			}
		}

		chosen := preferred
		if len(chosen) > desired {
			chosen = chosen[:desired]
		}
		if len(chosen) < desired {
			var remaining []uuid.UUID
			for _, id := range teamIDs {
				if !inPreferred[id] {
					remaining = append(remaining, id)
				}
			}
			chosen = append(chosen, chrono.Sample(p.sampler, remaining, desired-len(chosen))...)
		}
		if len(chosen) == 0 && len(teamIDs) > 0 {
			chosen = []uuid.UUID{chrono.Pick(p.sampler, teamIDs)}
		}

		addedAt := p.now.AddDate(0, 0, -p.sampler.IntBetween(30, 900))
		role := p.membershipRole(user.Role)

		for _, teamID := range chosen {
			memberships = append(memberships, domain.TeamMembership{
				ID:      uuid.New(),
				TeamID:  teamID,
				UserID:  user.ID,
				Role:    role,
				AddedAt: addedAt,
			})
			refs = append(refs, domain.MembershipRef{TeamID: teamID, UserID: user.ID})
		}
	}

	n, err := write(ctx, p, memberships, p.repo.BulkInsertMemberships)
	if err != nil {
		return nil, n, err
	}
	return refs, n, nil
}

// preferredTeamNames maps user role keywords to likely team buckets.
func preferredTeamNames(role string) []string {
	r := strings.ToLower(role)
	switch {
	case strings.Contains(r, "engineer") && !strings.Contains(r, "qa"):
		return []string{"Engineering", "Security", "IT"}
	case strings.Contains(r, "qa"):
		return []string{"Quality Assurance", "Engineering"}
	case strings.Contains(r, "product"):
		return []string{"Product", "Program Management"}
	case strings.Contains(r, "design"):
		return []string{"Design"}
	case strings.Contains(r, "data"), strings.Contains(r, "analyst"):
		return []string{"Data"}
	case strings.Contains(r, "sales"):
		return []string{"Sales"}
	case strings.Contains(r, "customer success"), strings.Contains(r, "account"):
		return []string{"Customer Success", "Sales"}
	case strings.Contains(r, "security"):
		return []string{"Security", "Engineering"}
	case strings.Contains(r, "it"):
		return []string{"IT"}
	case strings.Contains(r, "finance"):
		return []string{"Finance", "Business Operations"}
	case strings.Contains(r, "people"), strings.Contains(r, "recruit"):
		return []string{"People Operations", "Recruiting"}
	case strings.Contains(r, "program"), strings.Contains(r, "project"):
		return []string{"Program Management", "Product"}
	default:
		return []string{"Business Operations"}
	}
}

// membershipRole makes a small fraction of memberships leads, aligned with
// manager/lead/staff titles.
func (p *Pipeline) membershipRole(userRole string) domain.MembershipRole {
	r := strings.ToLower(userRole)
	managerTitle := strings.Contains(r, "manager") || strings.Contains(r, "lead") || strings.Contains(r, "staff")
	if managerTitle && p.sampler.Float64() > 0.3 {
		return domain.MembershipRoleLead
	}
	if p.sampler.Float64() < 0.07 {
		return domain.MembershipRoleLead
	}
	return domain.MembershipRoleMember
}
