// Package seeder defines interfaces and orchestration for the workspace
// dataset generation pipeline.
package seeder

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/anterra/worksim/internal/domain"
)

// WorkspaceBulkRepo defines the batch repository contract consumed by the
// pipeline. All methods use only domain types, no adapter imports.
// Implemented by workspace.Repo.
type WorkspaceBulkRepo interface {
	// Batch inserts, one per entity in dependency order. Each returns the
	// number of rows actually written.
	BulkInsertOrganizations(ctx context.Context, orgs []domain.Organization) (int, error)
	BulkInsertTeams(ctx context.Context, teams []domain.Team) (int, error)
	BulkInsertUsers(ctx context.Context, users []domain.User) (int, error)
	BulkInsertMemberships(ctx context.Context, memberships []domain.TeamMembership) (int, error)
	BulkInsertProjects(ctx context.Context, projects []domain.Project) (int, error)
	BulkInsertSections(ctx context.Context, sections []domain.Section) (int, error)
	BulkInsertTasks(ctx context.Context, tasks []domain.Task) (int, error)
	BulkInsertSubtasks(ctx context.Context, subtasks []domain.Subtask) (int, error)
	BulkInsertComments(ctx context.Context, comments []domain.Comment) (int, error)

	// Post-hoc update that pushes a task's last activity forward to the newest
	// comment timestamp, never backward.
	AmendTaskActivity(ctx context.Context, taskID uuid.UUID, lastActivity time.Time) error
}
