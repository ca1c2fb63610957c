package bootstrap

import (
	"context"
	"driver-training-service/internal/adapters/persistence"
	"driver-training-service/internal/config"
	"driver-training-service/internal/platform/db"
	"driver-training-service/internal/ports"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// OpenBackend builds the StateBackend selected by cfg.Backend, creating any
// schema it needs. The returned close func releases the underlying connection.
func OpenBackend(ctx context.Context, cfg *config.Config, logger *zap.Logger) (ports.StateBackend, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case config.BackendSQLite:
		sqlDB, err := db.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open backend: %w", err)
		}
		if err := persistence.InitSQLiteSchema(sqlDB); err != nil {
			sqlDB.Close()
			return nil, nil, fmt.Errorf("open backend: %w", err)
		}
		logger.Info("state backend ready", zap.String("backend", cfg.Backend), zap.String("path", cfg.DBPath))
		return persistence.NewSqliteStateBackend(sqlDB, cfg.StateKey), sqlDB.Close, nil

	case config.BackendPostgres:
		sqlDB, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open backend: %w", err)
		}
		if err := persistence.InitPostgresSchema(sqlDB); err != nil {
			sqlDB.Close()
			return nil, nil, fmt.Errorf("open backend: %w", err)
		}
		logger.Info("state backend ready", zap.String("backend", cfg.Backend))
		return persistence.NewSQLStateBackend(sqlDB, cfg.StateKey), sqlDB.Close, nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("open backend: ping redis %q: %w", cfg.RedisAddr, err)
		}
		logger.Info("state backend ready", zap.String("backend", cfg.Backend), zap.String("addr", cfg.RedisAddr))
		return persistence.NewRedisStateBackend(client, cfg.StateKey), client.Close, nil

	case config.BackendFile:
		logger.Info("state backend ready", zap.String("backend", cfg.Backend), zap.String("path", cfg.StatePath))
		return persistence.NewFileStateBackend(cfg.StatePath), noop, nil

	case config.BackendMemory:
		logger.Warn("state backend is in-memory; changes are lost on exit")
		return persistence.NewMemoryStateBackend(), noop, nil
	}

	return nil, nil, fmt.Errorf("open backend: unknown backend %q", cfg.Backend)
}
