package persistence

import (
	"context"
	"database/sql"
	"driver-training-service/internal/platform/obs"
	"driver-training-service/internal/ports"
	"errors"
	"fmt"
)

// SQLite-backed implementation of the StateBackend port.
// The whole store lives in one app_state row keyed by Key.
type SqliteStateBackend struct {
	DB  *sql.DB
	Key string
}

func NewSqliteStateBackend(db *sql.DB, key string) *SqliteStateBackend {
	if key == "" {
		key = ports.DefaultStateKey
	}
	return &SqliteStateBackend{DB: db, Key: key}
}

func (s *SqliteStateBackend) Load(ctx context.Context) (_ ports.State, err error) {
	defer obs.Time(ctx, "state.sqlite.Load")(&err)

	if s.DB == nil {
		return ports.State{}, errors.New("sqlite state: DB is nil")
	}

	query := `
	SELECT payload
	FROM app_state
	WHERE store_key = ?;
	`
	var payload string
	err = s.DB.QueryRowContext(ctx, query, s.Key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.State{}, nil
	}
	if err != nil {
		return ports.State{}, fmt.Errorf("load state: query app_state key=%q: %w", s.Key, err)
	}

	return decodeState([]byte(payload))
}

func (s *SqliteStateBackend) Save(ctx context.Context, state ports.State) (err error) {
	defer obs.Time(ctx, "state.sqlite.Save")(&err)

	if s.DB == nil {
		return errors.New("sqlite state: DB is nil")
	}

	b, err := encodeState(state)
	if err != nil {
		return err
	}

	query := `
	INSERT OR REPLACE INTO app_state (
		store_key,
		payload,
		updated_at
	)
	VALUES (?, ?, datetime('now'));
	`
	if _, err := s.DB.ExecContext(ctx, query, s.Key, string(b)); err != nil {
		return fmt.Errorf("save state: upsert app_state key=%q: %w", s.Key, err)
	}

	return nil
}
