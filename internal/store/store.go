// Package store defines the persistence boundary for registrations.
package store

import (
	"context"

	"github.com/reach-summit/summit-api/internal/registration"
)

// Store persists registrations. List methods return newest first.
// Implementations must be safe for concurrent use.
type Store interface {
	InsertIndividual(ctx context.Context, rec registration.IndividualRecord) error
	InsertGroup(ctx context.Context, rec registration.GroupRecord) error
	ListIndividuals(ctx context.Context) ([]registration.IndividualRecord, error)
	ListGroups(ctx context.Context) ([]registration.GroupRecord, error)
}

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
