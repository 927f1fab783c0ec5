// ABOUTME: Store factory selects the durable key-value backend from configuration
// ABOUTME: Shared by the API server and the command-line client

package cache

import (
	"context"
	"fmt"

	"newsboard-api/core/interfaces"
	"newsboard-api/infrastructure/cache/memory"
	"newsboard-api/infrastructure/cache/postgres"
	"newsboard-api/infrastructure/cache/redis"
	"newsboard-api/infrastructure/cache/sqlite"
	"newsboard-api/pkg/config"
)

func noopClose() error { return nil }

// Open builds the backend named by cfg.Type. The returned close func is never nil.
func Open(ctx context.Context, cfg config.StoreConfig, logger interfaces.Logger) (interfaces.Store, func() error, error) {
	if logger == nil {
		logger = interfaces.NopLogger{}
	}

	switch cfg.Type {
	case config.StoreMemory, "":
		return memory.NewMemoryStore(), noopClose, nil

	case config.StoreSQLite:
		store, err := sqlite.NewSQLiteStoreWithLogger(cfg.SQLitePath, logger)
		if err != nil {
			return nil, noopClose, err
		}
		return store, store.Close, nil

	case config.StoreRedis:
		store, err := redis.NewRedisStore(cfg.Redis)
		if err != nil {
			return nil, noopClose, err
		}
		return store, store.Close, nil

	case config.StorePostgres:
		store, err := postgres.NewPostgresStore(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, noopClose, err
		}
		return store, store.Close, nil
	}

	return nil, noopClose, fmt.Errorf("unknown store type %q", cfg.Type)
}
