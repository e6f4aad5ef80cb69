package seeder

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/anterra/worksim/internal/app/seeder/chrono"
	"github.com/anterra/worksim/internal/domain"
)

var projectArchetypes = []domain.Archetype{
	domain.ArchetypeRoadmap,
	domain.ArchetypeSprint,
	domain.ArchetypeLaunch,
	domain.ArchetypeOps,
}

var projectArchetypeWeights = []float64{0.25, 0.35, 0.20, 0.20}

// stageProjects creates 3–10 projects per team with a weighted archetype
// mix. Creation dates trail team creation to reflect team ramp-up;
// roadmaps and launches tend to carry due dates while ops work may not.
func (p *Pipeline) stageProjects(ctx context.Context, org domain.OrgRef, teams []domain.TeamRef) ([]domain.ProjectRef, int, error) {
	var projects []domain.Project
	var refs []domain.ProjectRef

	for _, team := range teams {
		count := p.sampler.TriangularInt(p.cfg.MinProjectsPerTeam, p.cfg.MaxProjectsPerTeam,
			float64(p.cfg.MinProjectsPerTeam+p.cfg.MaxProjectsPerTeam)/2+1)

		for i := 0; i < count; i++ {
			archetype := projectArchetypes[p.sampler.WeightedIndex(projectArchetypeWeights)]
			createdAt := team.CreatedAt.AddDate(0, 0, p.sampler.IntBetween(30, 900))

			var dueDate *time.Time
			if archetype.HasProjectDueDate() {
				d := chrono.DateOf(createdAt.AddDate(0, 0, p.sampler.IntBetween(60, 240)))
				dueDate = &d
			}

			project := domain.Project{
				ID:          uuid.New(),
				TeamID:      team.ID,
				OrgID:       org.ID,
				Name:        p.text.ProjectName(archetype, team.Name, p.now),
				Description: p.text.ProjectDescription(),
				Archetype:   archetype,
				StartDate:   chrono.DateOf(createdAt),
				DueDate:     dueDate,
				CreatedAt:   createdAt,
			}
			projects = append(projects, project)
			refs = append(refs, domain.ProjectRef{
				ID:        project.ID,
				TeamID:    project.TeamID,
				Archetype: project.Archetype,
				CreatedAt: project.CreatedAt,
			})
		}
	}

	n, err := write(ctx, p, projects, p.repo.BulkInsertProjects)
	if err != nil {
		return nil, n, err
	}
	return refs, n, nil
}
