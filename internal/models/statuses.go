package models

type UserRole string
type ProjectStatus string
type BidStatus string

const (
	UserRoleStudent  UserRole = "student"
	UserRoleBusiness UserRole = "business"

	ProjectStatusOpen       ProjectStatus = "open"
	ProjectStatusInProgress ProjectStatus = "in-progress"
	ProjectStatusCompleted  ProjectStatus = "completed"

	BidStatusPending  BidStatus = "pending"
	BidStatusAccepted BidStatus = "accepted"
	BidStatusRejected BidStatus = "rejected"
)

func (r UserRole) Valid() bool {
	return r == UserRoleStudent || r == UserRoleBusiness
}

// projectTransitions encodes the one-way lifecycle from open to in-progress to completed.
// No transition skips a state and none reverses.
var projectTransitions = map[ProjectStatus]ProjectStatus{
	ProjectStatusOpen:       ProjectStatusInProgress,
	ProjectStatusInProgress: ProjectStatusCompleted,
}

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusOpen, ProjectStatusInProgress, ProjectStatusCompleted:
		return true
	}
	return false
}

func (s ProjectStatus) CanTransitionTo(next ProjectStatus) bool {
	return projectTransitions[s] == next
}

func (s BidStatus) Valid() bool {
	switch s {
	case BidStatusPending, BidStatusAccepted, BidStatusRejected:
		return true
	}
	return false
}

// CanTransitionTo allows a pending bid to become accepted or rejected only;
// accepted and rejected are terminal.
func (s BidStatus) CanTransitionTo(next BidStatus) bool {
	if s != BidStatusPending {
		return false
	}
	return next == BidStatusAccepted || next == BidStatusRejected
}
