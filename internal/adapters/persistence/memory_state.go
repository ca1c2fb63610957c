package persistence

import (
	"context"
	"driver-training-service/internal/ports"
	"sync"
)

// In-process StateBackend. State is round-tripped through the JSON codec on
// every call so callers never share memory with the stored copy.
type MemoryStateBackend struct {
	mu    sync.Mutex
	data  []byte
	Saves int
	// SaveErr, when set, is returned by Save without storing anything.
	SaveErr error
}

func NewMemoryStateBackend() *MemoryStateBackend {
	return &MemoryStateBackend{}
}

func (m *MemoryStateBackend) Load(ctx context.Context) (ports.State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data == nil {
		return ports.State{}, nil
	}
	return decodeState(m.data)
}

func (m *MemoryStateBackend) Save(ctx context.Context, state ports.State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SaveErr != nil {
		return m.SaveErr
	}

	b, err := encodeState(state)
	if err != nil {
		return err
	}
	m.data = b
	m.Saves++
	return nil
}
