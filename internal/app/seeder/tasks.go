package seeder

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/anterra/worksim/internal/app/seeder/chrono"
	"github.com/anterra/worksim/internal/domain"
)

var taskPriorities = []domain.Priority{
	domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh, domain.PriorityUrgent,
}

// stageTasks creates 40–120 tasks per project with corporate-like lifecycle
// patterns: non-uniform completion, a controlled overdue fraction,
// business-day-weighted due dates, and optional assignees and sections.
func (p *Pipeline) stageTasks(
	ctx context.Context,
	org domain.OrgRef,
	projects []domain.ProjectRef,
	sections []domain.SectionRef,
	users []domain.UserRef,
	memberships []domain.MembershipRef,
) ([]domain.TaskRef, int, error) {
	sectionsByProject := make(map[uuid.UUID][]domain.SectionRef, len(projects))
	for _, s := range sections {
		sectionsByProject[s.ProjectID] = append(sectionsByProject[s.ProjectID], s)
	}
	teamMembers := make(map[uuid.UUID][]uuid.UUID)
	for _, m := range memberships {
		teamMembers[m.TeamID] = append(teamMembers[m.TeamID], m.UserID)
	}

	var tasks []domain.Task
	var refs []domain.TaskRef

	for _, project := range projects {
		count := p.sampler.TriangularInt(p.cfg.MinTasksPerProject, p.cfg.MaxTasksPerProject,
			float64(p.cfg.MinTasksPerProject+p.cfg.MaxTasksPerProject)/2+10) // bias slightly above midpoint

		projectSections := sectionsByProject[project.ID]

		for i := 0; i < count; i++ {
			createdAt := p.sampler.Between(project.CreatedAt, p.now)

			var sectionID *uuid.UUID
			sectionName := ""
			if len(projectSections) > 0 {
				section := p.pickSection(projectSections)
				sectionID = &section.ID
				sectionName = section.Name
			}

			assigneeID := p.pickAssignee(project, teamMembers, users)

			// Due dates show up more often on roadmap/sprint/launch work.
			hasDueBias := project.Archetype != domain.ArchetypeOps
			var dueDate *time.Time
			switch {
			case hasDueBias && p.sampler.Float64() < 0.85:
				d := p.sampler.BusinessDueDate(createdAt, 3, 75)
				dueDate = &d
			case p.sampler.Float64() < 0.35:
				d := p.sampler.BusinessDueDate(createdAt, 5, 45)
				dueDate = &d
			}

			// Completion decisions: globally ~60-70% completed.
			var completedAt *time.Time
			if p.sampler.Float64() < p.cfg.CompletionRatio {
				c := p.sampler.CompletionAfter(createdAt, dueDate, 1, 60)
				completedAt = &c
			}

			// A controlled fraction of open tasks is forced overdue: if the
			// due date has not yet passed, pull it back to today.
			if dueDate != nil && completedAt == nil && p.sampler.Float64() < p.cfg.OverdueProbability {
				if !dueDate.Before(chrono.DateOf(p.now)) {
					d := chrono.DateOf(p.now)
					dueDate = &d
				}
			}

			lastActivity := createdAt
			if completedAt != nil {
				lastActivity = *completedAt
			}

			var createdBy uuid.UUID
			if assigneeID != nil {
				createdBy = *assigneeID
			} else {
				createdBy = chrono.Pick(p.sampler, users).ID
			}

			task := domain.Task{
				ID:             uuid.New(),
				ProjectID:      project.ID,
				SectionID:      sectionID,
				OrgID:          org.ID,
				Name:           p.text.TaskTitle(project.Archetype, sectionName),
				AssigneeID:     assigneeID,
				CreatedByID:    createdBy,
				CreatedAt:      createdAt,
				DueDate:        dueDate,
				CompletedAt:    completedAt,
				LastActivityAt: lastActivity,
				Priority:       chrono.Pick(p.sampler, taskPriorities),
			}
			tasks = append(tasks, task)
			refs = append(refs, domain.TaskRef{
				ID:          task.ID,
				ProjectID:   task.ProjectID,
				Name:        task.Name,
				SectionID:   task.SectionID,
				AssigneeID:  task.AssigneeID,
				CreatedAt:   task.CreatedAt,
				DueDate:     task.DueDate,
				CompletedAt: task.CompletedAt,
			})
		}
	}

	n, err := write(ctx, p, tasks, p.repo.BulkInsertTasks)
	if err != nil {
		return nil, n, err
	}
	return refs, n, nil
}

// pickSection prefers work-in-flight columns over Done/Backlog so active
// columns carry more tasks than terminal ones.
func (p *Pipeline) pickSection(sections []domain.SectionRef) domain.SectionRef {
	weights := make([]float64, len(sections))
	for i, s := range sections {
		name := strings.ToLower(s.Name)
		switch {
		case strings.Contains(name, "backlog") || strings.Contains(name, "ideas"):
			weights[i] = 0.8
		case strings.Contains(name, "done") || strings.Contains(name, "closed") || strings.Contains(name, "complete"):
			weights[i] = 0.7
		default:
			weights[i] = 2.0 // emphasize in-progress stages
		}
	}
	return sections[p.sampler.WeightedIndex(weights)]
}

// pickAssignee assigns from the project's team when possible, leaving a
// configured fraction of tasks unassigned. Falls back to any user when
// membership data for the team is sparse.
func (p *Pipeline) pickAssignee(project domain.ProjectRef, teamMembers map[uuid.UUID][]uuid.UUID, users []domain.UserRef) *uuid.UUID {
	if p.sampler.Float64() < p.cfg.UnassignedProbability {
		return nil
	}
	candidates := teamMembers[project.TeamID]
	if len(candidates) == 0 {
		id := chrono.Pick(p.sampler, users).ID
		return &id
	}
	id := chrono.Pick(p.sampler, candidates)
	return &id
}
