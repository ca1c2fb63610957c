package ports

import (
	"context"
	"driver-training-service/internal/domain"
)

// DefaultStateKey names the persisted record holding the whole store.
const DefaultStateKey = "driver-store"

// Full contents of the store, read at startup and rewritten on every mutation.
type State struct {
	Drivers       []domain.Driver      `json:"drivers"`
	RosterEntries []domain.RosterEntry `json:"rosterEntries"`
}

// Port: durable storage for the single state record.
type StateBackend interface {
	// Return the stored state, or an empty State when nothing has been saved yet.
	Load(ctx context.Context) (State, error)
	// Replace the stored state wholesale.
	Save(ctx context.Context, state State) error
}
