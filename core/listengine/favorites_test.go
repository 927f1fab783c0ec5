package listengine

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsboard-api/core/domain"
)

func ctx() context.Context {
	return context.Background()
}

func TestToggleFavorite_AddsToFrontAndRemoves(t *testing.T) {
	store := newMockStore()
	e := New(DefaultConfig(), store, nil)

	a := item("A", 100, "politics", "NHK")
	b := item("B", 200, "politics", "NHK")

	assert.True(t, e.ToggleFavorite(ctx(), a))
	assert.True(t, e.ToggleFavorite(ctx(), b))

	favs := e.Favorites()
	require.Len(t, favs, 2)
	assert.Equal(t, "B", favs[0].Link)
	assert.Equal(t, "A", favs[1].Link)
	assert.False(t, favs[0].IsRead)

	assert.False(t, e.ToggleFavorite(ctx(), a))
	assert.False(t, e.IsFavorite("A"))
	assert.Equal(t, 1, e.FavoriteCount())
}

func TestToggleFavorite_TwiceRestoresList(t *testing.T) {
	e := New(DefaultConfig(), newMockStore(), nil)
	e.ToggleFavorite(ctx(), item("A", 1, "", ""))
	e.ToggleFavorite(ctx(), item("B", 2, "", ""))
	before := e.Favorites()

	x := item("X", 3, "", "")
	e.ToggleFavorite(ctx(), x)
	e.ToggleFavorite(ctx(), x)

	assert.Equal(t, before, e.Favorites())
}

func TestFavorites_PersistedOnEveryMutation(t *testing.T) {
	store := newMockStore()
	e := New(DefaultConfig(), store, nil)

	e.ToggleFavorite(ctx(), item("A", 1, "", ""))
	e.ToggleFavorite(ctx(), item("B", 2, "", ""))
	e.MarkFavoriteRead(ctx(), "A")

	raw, err := store.Get(ctx(), DefaultFavoritesKey)
	require.NoError(t, err)

	var persisted []domain.FavoriteEntry
	require.NoError(t, json.Unmarshal(raw, &persisted))
	assert.Equal(t, e.Favorites(), persisted)
	assert.Equal(t, 3, store.setCall)
}

func TestFavorites_SnapshotIndependentOfFeed(t *testing.T) {
	e := New(DefaultConfig(), newMockStore(), nil)
	original := item("A", 1, "politics", "NHK")
	e.SetFeed([]domain.NewsItem{original})
	e.ToggleFavorite(ctx(), original)

	changed := original
	changed.Title = "Rewritten"
	e.SetFeed([]domain.NewsItem{changed})

	assert.Equal(t, original.Title, e.Favorites()[0].Title)
}

func TestMarkFavoriteRead(t *testing.T) {
	e := New(DefaultConfig(), newMockStore(), nil)
	e.ToggleFavorite(ctx(), item("A", 1, "", ""))
	e.ToggleFavorite(ctx(), item("B", 2, "", ""))

	assert.Equal(t, 2, e.UnreadFavoriteCount())
	assert.True(t, e.MarkFavoriteRead(ctx(), "A"))
	assert.Equal(t, 1, e.UnreadFavoriteCount())
	assert.True(t, e.Favorites()[1].IsRead)

	assert.False(t, e.MarkFavoriteRead(ctx(), "missing"))
	assert.Equal(t, 2, e.FavoriteCount())
}

func TestBulkDeleteFavorites(t *testing.T) {
	e := New(DefaultConfig(), newMockStore(), nil)
	for _, l := range []string{"A", "B", "C", "D"} {
		e.ToggleFavorite(ctx(), item(l, 1, "", ""))
	}

	removed := e.BulkDeleteFavorites(ctx(), map[string]struct{}{"B": {}, "D": {}, "zzz": {}})
	assert.Equal(t, 2, removed)
	assert.Equal(t, []string{"C", "A"}, favoriteLinks(e))

	// idempotent
	removed = e.BulkDeleteFavorites(ctx(), map[string]struct{}{"B": {}, "D": {}})
	assert.Equal(t, 0, removed)
	assert.Equal(t, []string{"C", "A"}, favoriteLinks(e))
}

func TestClearFavorites(t *testing.T) {
	store := newMockStore()
	e := New(DefaultConfig(), store, nil)
	e.ToggleFavorite(ctx(), item("A", 1, "", ""))

	e.ClearFavorites(ctx())
	e.ClearFavorites(ctx())

	assert.Equal(t, 0, e.FavoriteCount())
	raw, err := store.Get(ctx(), DefaultFavoritesKey)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestLoadFavorites_RoundTrip(t *testing.T) {
	store := newMockStore()
	first := New(DefaultConfig(), store, nil)
	first.ToggleFavorite(ctx(), item("A", 1, "", ""))
	first.ToggleFavorite(ctx(), item("B", 2, "", ""))
	first.MarkFavoriteRead(ctx(), "B")

	second := New(DefaultConfig(), store, nil)
	second.LoadFavorites(ctx())

	assert.Equal(t, first.Favorites(), second.Favorites())
}

func TestLoadFavorites_MissingKey(t *testing.T) {
	logger := &recordingLogger{}
	e := New(DefaultConfig(), newMockStore(), logger)
	e.LoadFavorites(ctx())

	assert.Equal(t, 0, e.FavoriteCount())
	assert.Empty(t, logger.warns)
}

func TestLoadFavorites_CorruptData(t *testing.T) {
	store := newMockStore()
	store.data[DefaultFavoritesKey] = []byte("{not json")
	logger := &recordingLogger{}

	e := New(DefaultConfig(), store, logger)
	e.LoadFavorites(ctx())

	assert.Equal(t, 0, e.FavoriteCount())
	assert.Len(t, logger.warns, 1)
}

func TestLoadFavorites_LegacyPayloadDropsDuplicates(t *testing.T) {
	store := newMockStore()
	store.data["favorites"] = []byte(`[
		{"link":"A","title":"first","isRead":true},
		{"link":"A","title":"dup"},
		{"title":"no link"},
		{"link":"B","title":"second","timestamp":1700000000}
	]`)

	e := New(DefaultConfig(), store, nil)
	e.LoadFavorites(ctx())

	favs := e.Favorites()
	require.Len(t, favs, 2)
	assert.Equal(t, "first", favs[0].Title)
	assert.True(t, favs[0].IsRead)
	assert.Equal(t, int64(1700000000), favs[1].Timestamp)
}

func TestPersistFailure_KeepsMemoryState(t *testing.T) {
	store := newMockStore()
	store.setErr = errStoreDown
	logger := &recordingLogger{}
	e := New(DefaultConfig(), store, logger)

	assert.True(t, e.ToggleFavorite(ctx(), item("A", 1, "", "")))
	assert.True(t, e.IsFavorite("A"))
	assert.True(t, e.MarkFavoriteRead(ctx(), "A"))
	assert.Equal(t, 0, e.UnreadFavoriteCount())
	assert.Len(t, logger.warns, 2)
}

func TestFavorites_CustomKey(t *testing.T) {
	store := newMockStore()
	cfg := DefaultConfig()
	cfg.FavoritesKey = "favorites:abc"
	e := New(cfg, store, nil)

	e.ToggleFavorite(ctx(), item("A", 1, "", ""))

	_, err := store.Get(ctx(), "favorites:abc")
	assert.NoError(t, err)
	_, err = store.Get(ctx(), DefaultFavoritesKey)
	assert.Error(t, err)
}

func TestFavorites_ReturnsCopy(t *testing.T) {
	e := New(DefaultConfig(), nil, nil)
	e.ToggleFavorite(ctx(), item("A", 1, "", ""))

	favs := e.Favorites()
	favs[0].Link = "mutated"
	assert.True(t, e.IsFavorite("A"))
}

func favoriteLinks(e *Engine) []string {
	favs := e.Favorites()
	out := make([]string, len(favs))
	for i, f := range favs {
		out[i] = f.Link
	}
	return out
}
