// Package workspace implements the workspace bulk repository on PostgreSQL.
// It covers the nine generated tables as one aggregate. The dataset is
// append-only: the single mutable-after-creation field is
// tasks.last_activity_at, exposed through AmendTaskActivity.
package workspace

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anterra/worksim/internal/domain"
)

// psql builds statements with PostgreSQL $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides workspace persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new workspace repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// execInsert renders a multi-row insert and executes it in one round trip.
// Callers chunk their input (the pipeline batches rows) so the statement
// stays well under the PostgreSQL placeholder limit.
func (r *Repo) execInsert(ctx context.Context, table string, qb sq.InsertBuilder) (int, error) {
	sqlStr, args, err := qb.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: build insert: %w", table, err)
	}

	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return 0, mapError(err, table)
	}
	return int(tag.RowsAffected()), nil
}

// BulkInsertOrganizations inserts organization rows.
func (r *Repo) BulkInsertOrganizations(ctx context.Context, orgs []domain.Organization) (int, error) {
	if len(orgs) == 0 {
		return 0, nil
	}

	qb := psql.Insert("organizations").
		Columns("id", "name", "domain", "created_at")
	for _, o := range orgs {
		qb = qb.Values(o.ID, o.Name, o.Domain, o.CreatedAt)
	}
	return r.execInsert(ctx, "organizations", qb)
}

// BulkInsertTeams inserts team rows.
func (r *Repo) BulkInsertTeams(ctx context.Context, teams []domain.Team) (int, error) {
	if len(teams) == 0 {
		return 0, nil
	}

	qb := psql.Insert("teams").
		Columns("id", "organization_id", "name", "description", "created_at")
	for _, t := range teams {
		qb = qb.Values(t.ID, t.OrgID, t.Name, t.Description, t.CreatedAt)
	}
	return r.execInsert(ctx, "teams", qb)
}

// BulkInsertUsers inserts user rows.
func (r *Repo) BulkInsertUsers(ctx context.Context, users []domain.User) (int, error) {
	if len(users) == 0 {
		return 0, nil
	}

	qb := psql.Insert("users").
		Columns("id", "organization_id", "full_name", "email", "role",
			"location", "joined_at", "is_active", "created_at")
	for _, u := range users {
		qb = qb.Values(u.ID, u.OrgID, u.FullName, u.Email, u.Role,
			u.Location, u.JoinedAt, u.IsActive, u.CreatedAt)
	}
	return r.execInsert(ctx, "users", qb)
}

// BulkInsertMemberships inserts team membership rows.
func (r *Repo) BulkInsertMemberships(ctx context.Context, memberships []domain.TeamMembership) (int, error) {
	if len(memberships) == 0 {
		return 0, nil
	}

	qb := psql.Insert("team_memberships").
		Columns("id", "team_id", "user_id", "role", "added_at")
	for _, m := range memberships {
		qb = qb.Values(m.ID, m.TeamID, m.UserID, string(m.Role), m.AddedAt)
	}
	return r.execInsert(ctx, "team_memberships", qb)
}

// BulkInsertProjects inserts project rows.
func (r *Repo) BulkInsertProjects(ctx context.Context, projects []domain.Project) (int, error) {
	if len(projects) == 0 {
		return 0, nil
	}

	qb := psql.Insert("projects").
		Columns("id", "team_id", "organization_id", "name", "description",
			"project_type", "start_date", "due_date", "created_at",
			"completed_at", "is_archived")
	for _, p := range projects {
		qb = qb.Values(p.ID, p.TeamID, p.OrgID, p.Name, p.Description,
			string(p.Archetype), p.StartDate, dateOrNil(p.DueDate), p.CreatedAt,
			p.CompletedAt, p.IsArchived)
	}
	return r.execInsert(ctx, "projects", qb)
}

// BulkInsertSections inserts section rows.
func (r *Repo) BulkInsertSections(ctx context.Context, sections []domain.Section) (int, error) {
	if len(sections) == 0 {
		return 0, nil
	}

	qb := psql.Insert("sections").
		Columns("id", "project_id", "name", "sort_order", "created_at")
	for _, s := range sections {
		qb = qb.Values(s.ID, s.ProjectID, s.Name, s.SortOrder, s.CreatedAt)
	}
	return r.execInsert(ctx, "sections", qb)
}

// BulkInsertTasks inserts task rows.
func (r *Repo) BulkInsertTasks(ctx context.Context, tasks []domain.Task) (int, error) {
	if len(tasks) == 0 {
		return 0, nil
	}

	qb := psql.Insert("tasks").
		Columns("id", "project_id", "section_id", "organization_id", "name",
			"description", "assignee_id", "created_by_user_id", "created_at",
			"due_date", "completed_at", "last_activity_at", "priority", "is_deleted")
	for _, t := range tasks {
		qb = qb.Values(t.ID, t.ProjectID, t.SectionID, t.OrgID, t.Name,
			t.Description, t.AssigneeID, t.CreatedByID, t.CreatedAt,
			dateOrNil(t.DueDate), t.CompletedAt, t.LastActivityAt,
			string(t.Priority), t.IsDeleted)
	}
	return r.execInsert(ctx, "tasks", qb)
}

// BulkInsertSubtasks inserts subtask rows.
func (r *Repo) BulkInsertSubtasks(ctx context.Context, subtasks []domain.Subtask) (int, error) {
	if len(subtasks) == 0 {
		return 0, nil
	}

	qb := psql.Insert("subtasks").
		Columns("id", "parent_task_id", "project_id", "organization_id", "name",
			"description", "assignee_id", "created_by_user_id", "created_at",
			"due_date", "completed_at", "sort_order")
	for _, s := range subtasks {
		qb = qb.Values(s.ID, s.ParentID, s.ProjectID, s.OrgID, s.Name,
			s.Description, s.AssigneeID, s.CreatedByID, s.CreatedAt,
			dateOrNil(s.DueDate), s.CompletedAt, s.SortOrder)
	}
	return r.execInsert(ctx, "subtasks", qb)
}

// BulkInsertComments inserts comment rows.
func (r *Repo) BulkInsertComments(ctx context.Context, comments []domain.Comment) (int, error) {
	if len(comments) == 0 {
		return 0, nil
	}

	qb := psql.Insert("comments").
		Columns("id", "task_id", "subtask_id", "author_id", "body", "created_at")
	for _, c := range comments {
		qb = qb.Values(c.ID, c.TaskID, c.SubtaskID, c.AuthorID, c.Body, c.CreatedAt)
	}
	return r.execInsert(ctx, "comments", qb)
}

// AmendTaskActivity advances a task's last_activity_at to the given
// timestamp if it is later than the stored value. This is the only
// post-insert mutation the generator performs.
func (r *Repo) AmendTaskActivity(ctx context.Context, taskID uuid.UUID, lastActivity time.Time) error {
	qb := psql.Update("tasks").
		Set("last_activity_at", sq.Expr("GREATEST(last_activity_at, ?)", lastActivity)).
		Where(sq.Eq{"id": taskID})

	sqlStr, args, err := qb.ToSql()
	if err != nil {
		return fmt.Errorf("tasks: build amend: %w", err)
	}

	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		return mapError(err, "tasks")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("tasks: amend %s: %w", taskID, domain.ErrNotFound)
	}
	return nil
}

// dateOrNil strips the time-of-day from an optional timestamp so DATE
// columns receive plain dates.
func dateOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format("2006-01-02")
}
