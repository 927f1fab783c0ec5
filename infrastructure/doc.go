// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as durable storage, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory store on patrickmn/go-cache
// - cache/sqlite: File-backed store on mattn/go-sqlite3
// - cache/redis: Redis-backed store on go-redis
// - cache/postgres: Postgres-backed store on a pgx pool
// - http/standard: net/http client with retry logic
// - logger/logrus: Structured logger on sirupsen/logrus
//
// Every store implements interfaces.Store: a missing key is reported with
// an error satisfying errors.IsNotFound, and a TTL of 0 never expires.
//
// # Stores
//
// Memory Store Example:
//
//	store := memory.NewMemoryStore()
//	err := store.Set(ctx, "favorites", data, 0)
//	value, err := store.Get(ctx, "favorites")
//
// SQLite Store Example:
//
//	store, err := sqlite.NewSQLiteStore(filepath.Join(xdg.DataHome, "newsboard", "store.db"))
//	defer store.Close()
//
// Redis Store Example:
//
//	store, err := redis.NewRedisStore(config.RedisConfig{
//	    Address: "localhost:6379",
//	})
//
// # HTTP Client
//
// The HTTP client includes automatic retry logic for transient failures:
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://example.com/data.json")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger := logrus.New(logrus.Options{Level: "info", Format: "json"})
//	logger.Info("Published feed", map[string]interface{}{
//	    "items": 120,
//	})
package infrastructure
