package store

import (
	"context"
	"driver-training-service/internal/domain"
	"driver-training-service/internal/ports"
	"driver-training-service/internal/services"
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"
)

// Store holds drivers and roster entries in memory and writes every change
// through to a StateBackend.
//
// Each mutation builds the next state, saves it, and only then swaps it in, so a
// failed save leaves the in-memory tables unchanged. Progress is never cached.
type Store struct {
	mu      sync.RWMutex
	backend ports.StateBackend
	ids     ports.IDGenerator
	logger  *zap.Logger

	drivers []domain.Driver
	entries []domain.RosterEntry
}

// New loads the persisted state and returns a ready Store.
func New(ctx context.Context, backend ports.StateBackend, ids ports.IDGenerator, logger *zap.Logger) (*Store, error) {
	if backend == nil {
		return nil, errors.New("new store: backend is nil")
	}
	if ids == nil {
		return nil, errors.New("new store: id generator is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	state, err := backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("new store: load state: %w", err)
	}

	logger.Info("store loaded",
		zap.Int("drivers", len(state.Drivers)),
		zap.Int("roster_entries", len(state.RosterEntries)),
	)

	return &Store{
		backend: backend,
		ids:     ids,
		logger:  logger,
		drivers: state.Drivers,
		entries: state.RosterEntries,
	}, nil
}

// commit persists the next tables and installs them. Caller holds s.mu for writing.
func (s *Store) commit(ctx context.Context, op string, drivers []domain.Driver, entries []domain.RosterEntry) error {
	if err := s.backend.Save(ctx, ports.State{Drivers: drivers, RosterEntries: entries}); err != nil {
		s.logger.Error("state save failed", zap.String("op", op), zap.Error(err))
		return fmt.Errorf("%s: save state: %w", op, err)
	}
	s.drivers = drivers
	s.entries = entries
	return nil
}

func (s *Store) newID(op string) (string, error) {
	id, err := s.ids.NewID()
	if err != nil {
		return "", fmt.Errorf("%s: generate id: %w", op, err)
	}
	return id, nil
}

func (s *Store) driverIndex(id string) int {
	return slices.IndexFunc(s.drivers, func(d domain.Driver) bool { return d.ID == id })
}

func (s *Store) entryIndex(id string) int {
	return slices.IndexFunc(s.entries, func(e domain.RosterEntry) bool { return e.ID == id })
}

// AddDriver assigns a fresh ID to d and stores it.
func (s *Store) AddDriver(ctx context.Context, d domain.Driver) (domain.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.newID("add driver")
	if err != nil {
		return domain.Driver{}, err
	}
	d.ID = id

	drivers := append(slices.Clone(s.drivers), d)
	if err := s.commit(ctx, "add driver", drivers, s.entries); err != nil {
		return domain.Driver{}, err
	}
	return d, nil
}

// UpdateDriver applies a partial update. Unknown IDs return domain.ErrNotFound.
func (s *Store) UpdateDriver(ctx context.Context, id string, upd domain.DriverUpdate) (domain.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.driverIndex(id)
	if i < 0 {
		return domain.Driver{}, fmt.Errorf("update driver %q: %w", id, domain.ErrNotFound)
	}

	drivers := slices.Clone(s.drivers)
	upd.Apply(&drivers[i])

	if err := s.commit(ctx, "update driver", drivers, s.entries); err != nil {
		return domain.Driver{}, err
	}
	return drivers[i], nil
}

// DeleteDriver removes a driver together with all of its roster entries.
func (s *Store) DeleteDriver(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.driverIndex(id)
	if i < 0 {
		return fmt.Errorf("delete driver %q: %w", id, domain.ErrNotFound)
	}

	drivers := slices.Delete(slices.Clone(s.drivers), i, i+1)
	entries := make([]domain.RosterEntry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.DriverID != id {
			entries = append(entries, e)
		}
	}

	return s.commit(ctx, "delete driver", drivers, entries)
}

// Driver returns the driver with the given ID, if any.
func (s *Store) Driver(id string) (domain.Driver, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.driverIndex(id)
	if i < 0 {
		return domain.Driver{}, false
	}
	return s.drivers[i], true
}

// Drivers returns all drivers in insertion order.
func (s *Store) Drivers() []domain.Driver {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.drivers)
}

// AddRosterEntry stores an entry for an existing driver under a fresh ID.
// Driving totals are recomputed from the segments.
func (s *Store) AddRosterEntry(ctx context.Context, e domain.RosterEntry) (domain.RosterEntry, error) {
	added, err := s.ImportRosterEntries(ctx, []domain.RosterEntry{e})
	if err != nil {
		return domain.RosterEntry{}, err
	}
	return added[0], nil
}

// ImportRosterEntries appends a batch of entries in one write.
// Every entry gets a fresh ID; the batch is rejected if any driver is unknown.
func (s *Store) ImportRosterEntries(ctx context.Context, batch []domain.RosterEntry) ([]domain.RosterEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := make([]domain.RosterEntry, 0, len(batch))
	for _, e := range batch {
		if s.driverIndex(e.DriverID) < 0 {
			return nil, fmt.Errorf("add roster entry: driver %q: %w", e.DriverID, domain.ErrNotFound)
		}

		id, err := s.newID("add roster entry")
		if err != nil {
			return nil, err
		}

		e = e.Clone()
		e.ID = id
		if e.RouteSegments == nil {
			e.RouteSegments = []domain.RouteSegment{}
		}
		e.RecalculateTotals()
		added = append(added, e)
	}

	if len(added) == 0 {
		return added, nil
	}

	entries := append(slices.Clone(s.entries), added...)
	if err := s.commit(ctx, "add roster entry", s.drivers, entries); err != nil {
		return nil, err
	}
	return added, nil
}

// UpdateRosterEntry applies a partial update and recomputes the driving totals.
func (s *Store) UpdateRosterEntry(ctx context.Context, id string, upd domain.RosterEntryUpdate) (domain.RosterEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.entryIndex(id)
	if i < 0 {
		return domain.RosterEntry{}, fmt.Errorf("update roster entry %q: %w", id, domain.ErrNotFound)
	}

	entries := slices.Clone(s.entries)
	e := entries[i].Clone()
	upd.Apply(&e)
	if upd.DeriveSegments && upd.RouteSegments == nil {
		segs, err := services.DeriveSegments(e.Duties, e.BookOnTime, e.BookOffTime)
		if err != nil {
			return domain.RosterEntry{}, fmt.Errorf("update roster entry %q: %w", id, err)
		}
		e.RouteSegments = segs
	}
	e.RecalculateTotals()
	entries[i] = e

	if err := s.commit(ctx, "update roster entry", s.drivers, entries); err != nil {
		return domain.RosterEntry{}, err
	}
	return e.Clone(), nil
}

// DeleteRosterEntry removes a single entry.
func (s *Store) DeleteRosterEntry(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.entryIndex(id)
	if i < 0 {
		return fmt.Errorf("delete roster entry %q: %w", id, domain.ErrNotFound)
	}

	entries := slices.Delete(slices.Clone(s.entries), i, i+1)
	return s.commit(ctx, "delete roster entry", s.drivers, entries)
}

// RosterEntry returns the entry with the given ID, if any.
func (s *Store) RosterEntry(id string) (domain.RosterEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.entryIndex(id)
	if i < 0 {
		return domain.RosterEntry{}, false
	}
	return s.entries[i].Clone(), true
}

// RosterEntriesForDriver returns the driver's entries in insertion order.
// Callers sort by date when they need to.
func (s *Store) RosterEntriesForDriver(driverID string) []domain.RosterEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.entriesFor(driverID)
}

func (s *Store) entriesFor(driverID string) []domain.RosterEntry {
	out := []domain.RosterEntry{}
	for _, e := range s.entries {
		if e.DriverID == driverID {
			out = append(out, e.Clone())
		}
	}
	return out
}

// DriverProgress recomputes the driver's training progress from its entries.
// It returns false when the driver does not exist.
func (s *Store) DriverProgress(driverID string) (domain.TrainingProgress, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.driverIndex(driverID)
	if i < 0 {
		return domain.TrainingProgress{}, false
	}
	return services.CalculateTrainingProgress(s.drivers[i], s.entriesFor(driverID)), true
}
