package analytics

import (
	"time"

	"github.com/GEK100/blocker-management-system-2024-sub001/internal/entities"
)

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

// created returns a blocker created hoursAgo before testNow.
func created(id, category string, hoursAgo float64) entities.Blocker {
	return entities.Blocker{
		ID:        id,
		Category:  category,
		Status:    entities.StatusPending,
		CreatedAt: testNow.Add(-time.Duration(hoursAgo * float64(time.Hour))),
	}
}

// resolved returns a verified-complete blocker created hoursAgo before
// testNow and resolved after durationHours.
func resolved(id, category string, hoursAgo, durationHours float64) entities.Blocker {
	b := created(id, category, hoursAgo)
	b.Status = entities.StatusVerifiedComplete
	done := b.CreatedAt.Add(time.Duration(durationHours * float64(time.Hour)))
	b.CompletedAt = &done
	return b
}

// assignedTo pins a blocker on an actor.
func assignedTo(b entities.Blocker, actorID string) entities.Blocker {
	b.AssignedActorID = actorID
	return b
}

func documented(b entities.Blocker) entities.Blocker {
	b.HasDocumentation = true
	return b
}

func withHistory(b entities.Blocker, changes ...entities.StatusChange) entities.Blocker {
	b.StatusHistory = changes
	return b
}

func change(status entities.BlockerStatus, hoursAfterCreation float64, b entities.Blocker) entities.StatusChange {
	return entities.StatusChange{
		Status: status,
		At:     b.CreatedAt.Add(time.Duration(hoursAfterCreation * float64(time.Hour))),
	}
}

func actor(id, name, teamID string) entities.Actor {
	return entities.Actor{ID: id, DisplayName: name, Role: "worker", TeamID: teamID}
}
