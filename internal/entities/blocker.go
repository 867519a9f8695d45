// Package entities contains core business entities.
package entities

import "time"

// BlockerStatus enumerates blocker lifecycle states.
type BlockerStatus string

const (
	// StatusPending marks a freshly reported blocker.
	StatusPending BlockerStatus = "pending"
	// StatusAssigned marks a blocker handed to an actor.
	StatusAssigned BlockerStatus = "assigned"
	// StatusInProgress marks work underway.
	StatusInProgress BlockerStatus = "in_progress"
	// StatusCompleted marks work done but not yet verified.
	StatusCompleted BlockerStatus = "completed"
	// StatusVerifiedComplete marks a verified resolution.
	StatusVerifiedComplete BlockerStatus = "verified_complete"
	// StatusRejected marks rejected work.
	StatusRejected BlockerStatus = "rejected"
	// StatusCancelled marks an abandoned blocker.
	StatusCancelled BlockerStatus = "cancelled"
)

// Valid reports whether the status is a known lifecycle state.
func (s BlockerStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAssigned, StatusInProgress, StatusCompleted,
		StatusVerifiedComplete, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// BlockerPriority enumerates urgency levels.
type BlockerPriority string

const (
	// PriorityLow marks a low-urgency blocker.
	PriorityLow BlockerPriority = "low"
	// PriorityMedium marks a medium-urgency blocker.
	PriorityMedium BlockerPriority = "medium"
	// PriorityHigh marks a high-urgency blocker.
	PriorityHigh BlockerPriority = "high"
	// PriorityCritical marks a site-stopping blocker.
	PriorityCritical BlockerPriority = "critical"
)

// StatusChange is one entry of a blocker's status history.
type StatusChange struct {
	Status BlockerStatus `json:"status"`
	At     time.Time     `json:"at"`
}

// Blocker is a domain model of a tracked site issue.
type Blocker struct {
	ID               string
	Category         string
	Priority         BlockerPriority
	Status           BlockerStatus
	Location         string
	CreatedAt        time.Time
	CompletedAt      *time.Time
	AssignedActorID  string
	ProjectID        string
	StatusHistory    []StatusChange
	HasDocumentation bool
}

// Resolved reports whether the blocker reached a verified resolution
// with a sane completion timestamp. Records where CompletedAt precedes
// CreatedAt are treated as unresolved.
func (b Blocker) Resolved() bool {
	return b.Status == StatusVerifiedComplete &&
		b.CompletedAt != nil &&
		!b.CompletedAt.Before(b.CreatedAt)
}

// BlockerFilter limits blocker queries by project, status and window.
type BlockerFilter struct {
	ProjectID string
	Status    *BlockerStatus
	From      *time.Time
	To        *time.Time
}
