// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrBlockerNotFound signals a missing blocker.
	ErrBlockerNotFound = errors.New("blocker not found")
	// ErrBlockerExists signals duplicate blocker id.
	ErrBlockerExists = errors.New("blocker exists")
	// ErrProjectNotFound signals a missing project.
	ErrProjectNotFound = errors.New("project not found")
	// ErrActorNotFound signals a missing actor.
	ErrActorNotFound = errors.New("actor not found")
	// ErrTeamNotFound signals a team with no known members.
	ErrTeamNotFound = errors.New("team not found")
)
