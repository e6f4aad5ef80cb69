// Package domain defines the workspace entities produced by the generator
// and the reduced record types passed between pipeline stages.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Organization is the single root entity; every downstream creation date
// cascades forward from its founding timestamp.
type Organization struct {
	ID        uuid.UUID
	Name      string
	Domain    string
	CreatedAt time.Time
}

// Team is a functional unit owned by the organization. Names are unique
// within the organization.
type Team struct {
	ID          uuid.UUID
	OrgID       uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
}

// User is an employee. Team linkage happens via TeamMembership only.
type User struct {
	ID        uuid.UUID
	OrgID     uuid.UUID
	FullName  string
	Email     string
	Role      string
	Location  string
	JoinedAt  time.Time
	IsActive  bool
	CreatedAt time.Time
}

// TeamMembership joins a user to a team. Created once, never mutated.
type TeamMembership struct {
	ID      uuid.UUID
	TeamID  uuid.UUID
	UserID  uuid.UUID
	Role    MembershipRole
	AddedAt time.Time
}

// Project belongs to a team. CompletedAt is always nil at creation; no
// project-level completion is modeled downstream.
type Project struct {
	ID          uuid.UUID
	TeamID      uuid.UUID
	OrgID       uuid.UUID
	Name        string
	Description string
	Archetype   Archetype
	StartDate   time.Time
	DueDate     *time.Time
	CreatedAt   time.Time
	CompletedAt *time.Time
	IsArchived  bool
}

// Section is a workflow column. The set is fixed at project creation.
type Section struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	Name      string
	SortOrder int
	CreatedAt time.Time
}

// Task is the central work item. LastActivityAt is the only field mutated
// after insertion, once per commented task, via the amend operation.
type Task struct {
	ID             uuid.UUID
	ProjectID      uuid.UUID
	SectionID      *uuid.UUID
	OrgID          uuid.UUID
	Name           string
	Description    *string
	AssigneeID     *uuid.UUID
	CreatedByID    uuid.UUID
	CreatedAt      time.Time
	DueDate        *time.Time
	CompletedAt    *time.Time
	LastActivityAt time.Time
	Priority       Priority
	IsDeleted      bool
}

// Subtask is a child work item. Its creation timestamp falls between the
// parent's creation and the parent's completion (or "now").
type Subtask struct {
	ID          uuid.UUID
	ParentID    uuid.UUID
	ProjectID   uuid.UUID
	OrgID       uuid.UUID
	Name        string
	Description *string
	AssigneeID  *uuid.UUID
	CreatedByID uuid.UUID
	CreatedAt   time.Time
	DueDate     *time.Time
	CompletedAt *time.Time
	SortOrder   int
}

// Comment is attached to a task. SubtaskID is reserved but always nil in
// this generator. Timestamps advance strictly within a task's thread.
type Comment struct {
	ID        uuid.UUID
	TaskID    uuid.UUID
	SubtaskID *uuid.UUID
	AuthorID  uuid.UUID
	Body      string
	CreatedAt time.Time
}
