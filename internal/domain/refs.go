package domain

import (
	"time"

	"github.com/google/uuid"
)

// The Ref types are the reduced in-memory records passed forward between
// pipeline stages. Each carries exactly the fields downstream stages need;
// the full rows live only in the database once inserted.

// OrgRef anchors all downstream dating to the founding timestamp.
type OrgRef struct {
	ID        uuid.UUID
	CreatedAt time.Time
}

// TeamRef carries the name because membership routing and project naming
// are both keyed on it.
type TeamRef struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// UserRef carries the role label used by membership routing.
type UserRef struct {
	ID   uuid.UUID
	Role string
}

// MembershipRef is consumed by the task stage to build the team→members map.
type MembershipRef struct {
	TeamID uuid.UUID
	UserID uuid.UUID
}

// ProjectRef drives section templating and task generation.
type ProjectRef struct {
	ID        uuid.UUID
	TeamID    uuid.UUID
	Archetype Archetype
	CreatedAt time.Time
}

// SectionRef is consumed by the task stage for column placement.
type SectionRef struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	Name      string
}

// TaskRef is consumed by the subtask and comment stages. Name is kept so
// subtask titles can be derived from the parent's.
type TaskRef struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	Name        string
	SectionID   *uuid.UUID
	AssigneeID  *uuid.UUID
	CreatedAt   time.Time
	DueDate     *time.Time
	CompletedAt *time.Time
}
