package seeder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/anterra/worksim/internal/app/seeder/chrono"
	"github.com/anterra/worksim/internal/domain"
)

// stageComments attaches 1–5 short conversational comments to roughly 20%
// of tasks. Timestamps advance strictly within a thread, and each commented
// task's last activity is amended to its newest comment afterwards.
func (p *Pipeline) stageComments(ctx context.Context, tasks []domain.TaskRef, users []domain.UserRef) (int, error) {
	if len(tasks) == 0 {
		return 0, nil
	}

	numCommented := max(1, int(float64(len(tasks))*p.cfg.CommentedTaskFraction))
	commented := chrono.Sample(p.sampler, tasks, numCommented)

	type activityAmend struct {
		taskID uuid.UUID
		at     time.Time
	}

	var comments []domain.Comment
	var amends []activityAmend

	for _, task := range commented {
		end := p.now
		if task.CompletedAt != nil {
			end = *task.CompletedAt
		}

		count := p.sampler.IntBetween(1, 5)
		last := task.CreatedAt
		for i := 0; i < count; i++ {
			last = p.sampler.Between(last, end)
			comments = append(comments, domain.Comment{
				ID:        uuid.New(),
				TaskID:    task.ID,
				AuthorID:  chrono.Pick(p.sampler, users).ID,
				Body:      p.text.Comment(),
				CreatedAt: last,
			})
		}
		amends = append(amends, activityAmend{taskID: task.ID, at: last})
	}

	n, err := write(ctx, p, comments, p.repo.BulkInsertComments)
	if err != nil {
		return n, err
	}

	if !p.cfg.DryRun {
		for _, a := range amends {
			if err := p.repo.AmendTaskActivity(ctx, a.taskID, a.at); err != nil {
				return n, fmt.Errorf("amend task activity: %w", err)
			}
		}
	}
	return n, nil
}
