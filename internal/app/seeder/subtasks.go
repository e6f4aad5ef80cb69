package seeder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/anterra/worksim/internal/app/seeder/chrono"
	"github.com/anterra/worksim/internal/domain"
)

// stageSubtasks attaches 2–6 subtasks to 30–40% of tasks. Subtask
// lifecycles nest inside the parent's: creation falls between parent
// creation and parent completion, due dates usually inherit the parent's,
// and completion correlates strongly with parent completion.
func (p *Pipeline) stageSubtasks(ctx context.Context, org domain.OrgRef, tasks []domain.TaskRef) (int, error) {
	if len(tasks) == 0 {
		return 0, nil
	}

	fraction := p.sampler.Uniform(p.cfg.MinSubtaskFraction, p.cfg.MaxSubtaskFraction)
	numParents := max(1, int(float64(len(tasks))*fraction))
	parents := chrono.Sample(p.sampler, tasks, numParents)

	// Possible creators: any assigned user across all tasks.
	var creatorPool []uuid.UUID
	for _, t := range tasks {
		if t.AssigneeID != nil {
			creatorPool = append(creatorPool, *t.AssigneeID)
		}
	}

	var subtasks []domain.Subtask
	for _, parent := range parents {
		end := p.now
		if parent.CompletedAt != nil {
			end = *parent.CompletedAt
		}

		count := p.sampler.IntBetween(2, 6)
		for i := 0; i < count; i++ {
			createdAt := p.sampler.Between(parent.CreatedAt, end)

			// Subtasks often share the parent due date or get a short one.
			var dueDate *time.Time
			if parent.DueDate != nil && p.sampler.Float64() < 0.8 {
				d := *parent.DueDate
				dueDate = &d
			} else {
				d := p.sampler.BusinessDueDate(createdAt, 1, 30)
				dueDate = &d
			}

			completionProb := 0.3
			if parent.CompletedAt != nil {
				completionProb = 0.9
			}
			var completedAt *time.Time
			if p.sampler.Float64() < completionProb {
				c := p.sampler.CompletionAfter(createdAt, dueDate, 1, 30)
				completedAt = &c
			}

			var createdBy uuid.UUID
			if parent.AssigneeID != nil {
				createdBy = *parent.AssigneeID
			} else {
				if len(creatorPool) == 0 {
					return 0, fmt.Errorf("subtask creator pool: %w", domain.ErrEmptySelection)
				}
				createdBy = chrono.Pick(p.sampler, creatorPool)
			}

			// Assignee may be cleared to mimic delegation.
			assigneeID := parent.AssigneeID
			if assigneeID != nil && p.sampler.Float64() < 0.15 {
				assigneeID = nil
			}

			subtasks = append(subtasks, domain.Subtask{
				ID:          uuid.New(),
				ParentID:    parent.ID,
				ProjectID:   parent.ProjectID,
				OrgID:       org.ID,
				Name:        p.text.SubtaskTitle(parent.Name),
				AssigneeID:  assigneeID,
				CreatedByID: createdBy,
				CreatedAt:   createdAt,
				DueDate:     dueDate,
				CompletedAt: completedAt,
				SortOrder:   i,
			})
		}
	}

	return write(ctx, p, subtasks, p.repo.BulkInsertSubtasks)
}
