package persistence

import (
	"driver-training-service/internal/domain"
	"driver-training-service/internal/ports"
	"encoding/json"
	"fmt"
)

const stateVersion = 0

// Persisted envelope. The layout matches the record written by the browser
// build of the tracker, so an exported record can be loaded as-is.
type envelope struct {
	State   *ports.State `json:"state"`
	Version int          `json:"version"`
}

func encodeState(s ports.State) ([]byte, error) {
	if s.Drivers == nil {
		s.Drivers = []domain.Driver{}
	}
	if s.RosterEntries == nil {
		s.RosterEntries = []domain.RosterEntry{}
	}

	b, err := json.Marshal(envelope{State: &s, Version: stateVersion})
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return b, nil
}

func decodeState(b []byte) (ports.State, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return ports.State{}, fmt.Errorf("decode state: %w", err)
	}
	if env.State == nil {
		return ports.State{}, nil
	}
	if env.Version != stateVersion {
		return ports.State{}, fmt.Errorf("decode state: unsupported version %d", env.Version)
	}
	return *env.State, nil
}
