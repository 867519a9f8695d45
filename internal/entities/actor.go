// Package entities contains core business entities.
package entities

import "time"

// Actor is a domain representation of a worker or subcontractor to
// whom blockers are assigned.
type Actor struct {
	ID           string
	DisplayName  string
	Role         string
	TeamID       string
	LastActiveAt *time.Time
}

// Project aggregates blockers under a site.
type Project struct {
	ID       string
	Name     string
	Location string
}
