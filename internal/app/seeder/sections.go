package seeder

import (
	"context"

	"github.com/google/uuid"

	"github.com/anterra/worksim/internal/app/seeder/chrono"
	"github.com/anterra/worksim/internal/domain"
)

var sectionTemplates = [][]string{
	{"Backlog", "Next Up", "In Progress", "Review", "Done"},
	{"Todo", "Doing", "Blocked", "Ready for QA", "Done"},
	{"Ideas", "Prioritized", "Building", "Testing", "Launched"},
	{"Intake", "Triaged", "In Progress", "Validation", "Closed"},
	{"Pipeline", "Discovery", "Execution", "UAT", "Complete"},
}

// stageSections assigns a workflow template to each project with slight
// variability: ops projects occasionally drop one middle column to reflect
// leaner bespoke boards.
func (p *Pipeline) stageSections(ctx context.Context, projects []domain.ProjectRef) ([]domain.SectionRef, int, error) {
	var sections []domain.Section
	var refs []domain.SectionRef

	for _, project := range projects {
		template := chrono.Pick(p.sampler, sectionTemplates)

		names := make([]string, len(template))
		copy(names, template)
		if project.Archetype == domain.ArchetypeOps && len(names) > 4 && p.sampler.Float64() < 0.4 {
			drop := p.sampler.IntBetween(1, len(names)-2) // drop a middle stage
			names = append(names[:drop], names[drop+1:]...)
		}

		for order, name := range names {
			section := domain.Section{
				ID:        uuid.New(),
				ProjectID: project.ID,
				Name:      name,
				SortOrder: order,
				CreatedAt: project.CreatedAt.AddDate(0, 0, p.sampler.IntBetween(0, 60)),
			}
			sections = append(sections, section)
			refs = append(refs, domain.SectionRef{ID: section.ID, ProjectID: section.ProjectID, Name: section.Name})
		}
	}

	n, err := write(ctx, p, sections, p.repo.BulkInsertSections)
	if err != nil {
		return nil, n, err
	}
	return refs, n, nil
}
