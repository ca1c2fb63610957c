package persistence

import (
	"context"
	"database/sql"
	"driver-training-service/internal/platform/obs"
	"driver-training-service/internal/ports"
	"errors"
	"fmt"
)

// SQLStateBackend is the Postgres implementation of the StateBackend port.
type SQLStateBackend struct {
	DB  *sql.DB
	Key string
}

func NewSQLStateBackend(db *sql.DB, key string) *SQLStateBackend {
	if key == "" {
		key = ports.DefaultStateKey
	}
	return &SQLStateBackend{DB: db, Key: key}
}

func (s *SQLStateBackend) Load(ctx context.Context) (_ ports.State, err error) {
	defer obs.Time(ctx, "state.sql.Load")(&err)

	if s.DB == nil {
		return ports.State{}, errors.New("sql state: DB is nil")
	}

	var payload []byte
	err = s.DB.QueryRowContext(ctx, `
	SELECT payload::text
	FROM app_state
	WHERE store_key = $1;
	`, s.Key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.State{}, nil
	}
	if err != nil {
		return ports.State{}, fmt.Errorf("load state: query app_state key=%q: %w", s.Key, err)
	}

	return decodeState(payload)
}

func (s *SQLStateBackend) Save(ctx context.Context, state ports.State) (err error) {
	defer obs.Time(ctx, "state.sql.Save")(&err)

	if s.DB == nil {
		return errors.New("sql state: DB is nil")
	}

	b, err := encodeState(state)
	if err != nil {
		return err
	}

	_, err = s.DB.ExecContext(ctx, `
	INSERT INTO app_state (store_key, payload, updated_at)
	VALUES ($1, $2::jsonb, now())
	ON CONFLICT (store_key) DO UPDATE
	SET payload = EXCLUDED.payload,
		updated_at = EXCLUDED.updated_at;
	`, s.Key, string(b))
	if err != nil {
		return fmt.Errorf("save state: upsert app_state key=%q: %w", s.Key, err)
	}

	return nil
}
