package seeder

import (
	"context"

	"github.com/google/uuid"

	"github.com/anterra/worksim/internal/domain"
)

// stageOrganization creates the single root organization. Founding is set
// 8–15 years in the past to reflect a mature enterprise that has grown to
// thousands of users; every downstream date cascades forward from it.
func (p *Pipeline) stageOrganization(ctx context.Context) (domain.OrgRef, int, error) {
	yearsAgo := p.sampler.IntBetween(8, 15)
	createdAt := p.now.AddDate(0, 0, -365*yearsAgo)

	org := domain.Organization{
		ID:        uuid.New(),
		Name:      p.cfg.OrgName,
		Domain:    p.cfg.OrgDomain,
		CreatedAt: createdAt,
	}

	n, err := write(ctx, p, []domain.Organization{org}, p.repo.BulkInsertOrganizations)
	if err != nil {
		return domain.OrgRef{}, n, err
	}
	return domain.OrgRef{ID: org.ID, CreatedAt: org.CreatedAt}, n, nil
}
