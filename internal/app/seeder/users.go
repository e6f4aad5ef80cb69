package seeder

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/anterra/worksim/internal/domain"
)

// Non-uniform role distribution reflecting a product-led enterprise.
var userRoles = []string{
	"Software Engineer",
	"Senior Software Engineer",
	"Staff Engineer",
	"Product Manager",
	"Product Owner",
	"Product Designer",
	"Design Lead",
	"Data Scientist",
	"Data Analyst",
	"Sales Executive",
	"Account Manager",
	"Customer Success Manager",
	"Sales Engineer",
	"QA Engineer",
	"IT Support Specialist",
	"Security Engineer",
	"Finance Analyst",
	"People Ops Specialist",
}

var userRoleWeights = []float64{
	0.22, 0.13, 0.04, 0.07, 0.03, 0.07, 0.02, 0.06, 0.04,
	0.06, 0.05, 0.04, 0.03, 0.04, 0.03, 0.02, 0.02, 0.02,
}

// Weighted office/remote mix to resemble distributed teams.
var userLocations = []string{
	"New York",
	"San Francisco",
	"Austin",
	"London",
	"Dublin",
	"Toronto",
	"Bangalore",
	"Remote - US",
	"Remote - EMEA",
	"Remote - APAC",
}

var userLocationWeights = []float64{
	0.18, 0.15, 0.10, 0.12, 0.08, 0.07, 0.10, 0.12, 0.05, 0.03,
}

// stageUsers creates thousands of employees with a realistic role mix and
// join dates skewed toward recent hires. The headcount target uses a
// triangular draw with the mode leaning toward the upper half to emulate
// continued growth.
func (p *Pipeline) stageUsers(ctx context.Context, org domain.OrgRef) ([]domain.UserRef, int, error) {
	mode := float64(p.cfg.MinUsers+p.cfg.MaxUsers)/2 + 800
	total := p.sampler.TriangularInt(p.cfg.MinUsers, p.cfg.MaxUsers, mode)

	joinWindowStart := p.now.AddDate(-3, 0, 0)
	usedEmails := make(map[string]int, total)

	users := make([]domain.User, 0, total)
	refs := make([]domain.UserRef, 0, total)
	for i := 0; i < total; i++ {
		fullName := p.text.PersonName()
		joinedAt := p.sampler.Between(joinWindowStart, p.now)

		user := domain.User{
			ID:        uuid.New(),
			OrgID:     org.ID,
			FullName:  fullName,
			Email:     p.uniqueEmail(fullName, usedEmails),
			Role:      userRoles[p.sampler.WeightedIndex(userRoleWeights)],
			Location:  userLocations[p.sampler.WeightedIndex(userLocationWeights)],
			JoinedAt:  joinedAt,
			IsActive:  p.sampler.Float64() > 0.03, // small inactive fraction
			CreatedAt: joinedAt,
		}
		users = append(users, user)
		refs = append(refs, domain.UserRef{ID: user.ID, Role: user.Role})
	}

	n, err := write(ctx, p, users, p.repo.BulkInsertUsers)
	if err != nil {
		return nil, n, err
	}
	return refs, n, nil
}

var emailSanitizer = strings.NewReplacer("'", "", " ", "", ".", "")

// uniqueEmail builds first.last@domain, suffixing a counter on collision so
// the UNIQUE constraint on users.email always holds.
func (p *Pipeline) uniqueEmail(fullName string, used map[string]int) string {
	parts := strings.Fields(fullName)
	first, last := parts[0], parts[len(parts)-1]
	base := strings.ToLower(emailSanitizer.Replace(first) + "." + emailSanitizer.Replace(last))

	count := used[base]
	used[base] = count + 1
	if count == 0 {
		return fmt.Sprintf("%s@%s", base, p.cfg.OrgDomain)
	}
	return fmt.Sprintf("%s%d@%s", base, count, p.cfg.OrgDomain)
}
