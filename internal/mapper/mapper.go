// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"time"

	"github.com/GEK100/blocker-management-system-2024-sub001/internal/entities"
)

// CreateBlockerRequest is the transport payload for reporting a blocker.
type CreateBlockerRequest struct {
	ID               string     `json:"id,omitempty"`
	Category         string     `json:"category,omitempty"`
	Priority         string     `json:"priority,omitempty"`
	Status           string     `json:"status,omitempty"`
	Location         string     `json:"location,omitempty"`
	ProjectID        string     `json:"project_id"`
	AssignedActorID  string     `json:"assigned_actor_id,omitempty"`
	HasDocumentation bool       `json:"has_documentation,omitempty"`
	CreatedAt        *time.Time `json:"created_at,omitempty"`
}

// UpdateStatusRequest is the transport payload for a status transition.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// StatusChangeDTO is one transport history entry.
type StatusChangeDTO struct {
	Status string    `json:"status"`
	At     time.Time `json:"at"`
}

// BlockerDTO is the transport projection of a blocker.
type BlockerDTO struct {
	ID               string            `json:"id"`
	Category         string            `json:"category"`
	Priority         string            `json:"priority"`
	Status           string            `json:"status"`
	Location         string            `json:"location"`
	ProjectID        string            `json:"project_id"`
	AssignedActorID  string            `json:"assigned_actor_id,omitempty"`
	HasDocumentation bool              `json:"has_documentation"`
	CreatedAt        time.Time         `json:"created_at"`
	CompletedAt      *time.Time        `json:"completed_at,omitempty"`
	StatusHistory    []StatusChangeDTO `json:"status_history"`
}

// FromCreateRequest builds a domain blocker from the transport payload.
func FromCreateRequest(req CreateBlockerRequest) entities.Blocker {
	b := entities.Blocker{
		ID:               req.ID,
		Category:         req.Category,
		Priority:         entities.BlockerPriority(req.Priority),
		Status:           entities.BlockerStatus(req.Status),
		Location:         req.Location,
		ProjectID:        req.ProjectID,
		AssignedActorID:  req.AssignedActorID,
		HasDocumentation: req.HasDocumentation,
	}
	if req.CreatedAt != nil {
		b.CreatedAt = *req.CreatedAt
	}
	return b
}

// ToBlockerDTO maps a domain blocker to its transport projection.
func ToBlockerDTO(b entities.Blocker) BlockerDTO {
	history := make([]StatusChangeDTO, 0, len(b.StatusHistory))
	for _, ch := range b.StatusHistory {
		history = append(history, StatusChangeDTO{Status: string(ch.Status), At: ch.At})
	}
	return BlockerDTO{
		ID:               b.ID,
		Category:         b.Category,
		Priority:         string(b.Priority),
		Status:           string(b.Status),
		Location:         b.Location,
		ProjectID:        b.ProjectID,
		AssignedActorID:  b.AssignedActorID,
		HasDocumentation: b.HasDocumentation,
		CreatedAt:        b.CreatedAt,
		CompletedAt:      b.CompletedAt,
		StatusHistory:    history,
	}
}
