package sqlite

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreerrors "newsboard-api/core/errors"
)

// MockLogger records warnings
type MockLogger struct {
	mu       sync.Mutex
	warnings []string
}

func (m *MockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *MockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *MockLogger) Error(msg string, fields map[string]interface{}) {}

func (m *MockLogger) Warn(msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.warnings = append(m.warnings, msg)
}

func newTestStore(t *testing.T) *Client {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_SetGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "favorites:abc", []byte(`[{"link":"x"}]`), 0))

	got, err := store.Get(ctx, "favorites:abc")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"link":"x"}]`, string(got))
}

func TestSQLiteStore_ZeroTTLNeverExpires(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("v"), 0))
	store.cleanup()

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))
}

func TestSQLiteStore_Expired(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// expiry is stored at second resolution
	_, err := store.db.Exec("INSERT INTO kv (key, value, expiry) VALUES (?, ?, ?)", "old", []byte("v"), time.Now().Add(-time.Minute).Unix())
	require.NoError(t, err)

	_, err = store.Get(ctx, "old")
	assert.True(t, coreerrors.IsNotFound(err))

	stats, err := store.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats["expired_entries"])

	store.cleanup()
	stats, err = store.Stats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats["total_entries"])
}

func TestSQLiteStore_Missing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "missing")
	assert.True(t, coreerrors.IsNotFound(err))
}

func TestSQLiteStore_OverwriteAndDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("one"), time.Hour))
	require.NoError(t, store.Set(ctx, "k", []byte("two"), 0))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "two", string(got))

	require.NoError(t, store.Delete(ctx, "k"))
	require.NoError(t, store.Delete(ctx, "k"))
	_, err = store.Get(ctx, "k")
	assert.True(t, coreerrors.IsNotFound(err))
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.db")
	ctx := context.Background()

	first, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "favorites", []byte(`[]`), 0))
	require.NoError(t, first.Close())
	require.NoError(t, first.Close())

	second, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.Get(ctx, "favorites")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestSQLiteStore_InMemory(t *testing.T) {
	store, err := NewSQLiteStore(":memory:")
	require.NoError(t, err)
	defer store.Close()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("v"), 0))
	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))
}

func TestSQLiteStore_SuspiciousKeyIsStoredAndLogged(t *testing.T) {
	logger := &MockLogger{}
	store, err := NewSQLiteStoreWithLogger(filepath.Join(t.TempDir(), "store.db"), logger)
	require.NoError(t, err)
	defer store.Close()
	ctx := context.Background()

	key := "user_data';DROP TABLE kv;--"
	require.NoError(t, store.Set(ctx, key, []byte("v"), 0))

	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))
	assert.NotEmpty(t, logger.warnings)

	stats, err := store.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats["total_entries"])
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"plain", "favorites", false},
		{"namespaced", "favorites:6f1c", false},
		{"empty", "", true},
		{"too long", strings.Repeat("k", maxKeyLength+1), true},
		{"null byte", "a\x00b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateKey(tt.key, nil)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateValue(t *testing.T) {
	assert.Error(t, ValidateValue(nil))
	assert.Error(t, ValidateValue(make([]byte, maxValueLength+1)))
	assert.NoError(t, ValidateValue([]byte("[]")))
}

func TestTruncateKey(t *testing.T) {
	assert.Equal(t, "short", truncateKey("short"))
	assert.Equal(t, strings.Repeat("a", 50)+"...", truncateKey(strings.Repeat("a", 80)))
}
