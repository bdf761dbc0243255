package models

// PlanStatus is the lifecycle state of a single maintenance plan occurrence.
type PlanStatus string

const (
	PlanStatusPlanned   PlanStatus = "planned"
	PlanStatusActive    PlanStatus = "active"
	PlanStatusCompleted PlanStatus = "completed"
	PlanStatusOverdue   PlanStatus = "overdue"
	PlanStatusArchived  PlanStatus = "archived"
)

func (s PlanStatus) Valid() bool {
	switch s {
	case PlanStatusPlanned, PlanStatusActive, PlanStatusCompleted,
		PlanStatusOverdue, PlanStatusArchived:
		return true
	}
	return false
}

// Terminal reports whether a plan in this status accepts no further work.
// Completed plans may still be archived; archived plans accept nothing.
func (s PlanStatus) Terminal() bool {
	return s == PlanStatusCompleted || s == PlanStatusArchived
}

// CanTransition implements the plan state machine. Re-asserting the current
// status is always a no-op and allowed; once a plan is completed the only exit
// is archival, because a completion record has already been minted for it.
func (s PlanStatus) CanTransition(to PlanStatus) bool {
	if s == to {
		return true
	}

	switch s {
	case PlanStatusPlanned:
		return to == PlanStatusActive || to == PlanStatusCompleted || to == PlanStatusOverdue
	case PlanStatusActive:
		return to == PlanStatusCompleted || to == PlanStatusOverdue
	case PlanStatusOverdue:
		return to == PlanStatusActive || to == PlanStatusCompleted || to == PlanStatusArchived
	case PlanStatusCompleted:
		return to == PlanStatusArchived
	case PlanStatusArchived:
		return false
	}

	return false
}
