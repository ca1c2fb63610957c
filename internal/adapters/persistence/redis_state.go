package persistence

import (
	"context"
	"driver-training-service/internal/platform/obs"
	"driver-training-service/internal/ports"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// StateBackend storing the JSON record as a single Redis string.
type RedisStateBackend struct {
	Client redis.Cmdable
	Key    string
}

func NewRedisStateBackend(client redis.Cmdable, key string) *RedisStateBackend {
	if key == "" {
		key = ports.DefaultStateKey
	}
	return &RedisStateBackend{Client: client, Key: key}
}

func (r *RedisStateBackend) Load(ctx context.Context) (_ ports.State, err error) {
	defer obs.Time(ctx, "state.redis.Load")(&err)

	if r.Client == nil {
		return ports.State{}, errors.New("redis state: client is nil")
	}

	b, err := r.Client.Get(ctx, r.Key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.State{}, nil
	}
	if err != nil {
		return ports.State{}, fmt.Errorf("load state: redis get %q: %w", r.Key, err)
	}

	return decodeState(b)
}

func (r *RedisStateBackend) Save(ctx context.Context, state ports.State) (err error) {
	defer obs.Time(ctx, "state.redis.Save")(&err)

	if r.Client == nil {
		return errors.New("redis state: client is nil")
	}

	b, err := encodeState(state)
	if err != nil {
		return err
	}

	if err := r.Client.Set(ctx, r.Key, b, 0).Err(); err != nil {
		return fmt.Errorf("save state: redis set %q: %w", r.Key, err)
	}
	return nil
}
