package domain

// Archetype is one of the four fixed project categories driving naming and
// date-shape biases.
type Archetype string

const (
	ArchetypeRoadmap Archetype = "roadmap"
	ArchetypeSprint  Archetype = "sprint"
	ArchetypeLaunch  Archetype = "launch"
	ArchetypeOps     Archetype = "ops"
)

func (a Archetype) String() string { return string(a) }

func (a Archetype) IsValid() bool {
	switch a {
	case ArchetypeRoadmap, ArchetypeSprint, ArchetypeLaunch, ArchetypeOps:
		return true
	}
	return false
}

// HasProjectDueDate reports whether projects of this archetype carry a
// project-level due date.
func (a Archetype) HasProjectDueDate() bool {
	return a == ArchetypeRoadmap || a == ArchetypeLaunch
}

// Priority is the categorical task priority, drawn uniformly.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) String() string { return string(p) }

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// MembershipRole is the role a user holds within a team.
type MembershipRole string

const (
	MembershipRoleMember MembershipRole = "member"
	MembershipRoleLead   MembershipRole = "lead"
)

func (r MembershipRole) String() string { return string(r) }

func (r MembershipRole) IsValid() bool {
	return r == MembershipRoleMember || r == MembershipRoleLead
}
