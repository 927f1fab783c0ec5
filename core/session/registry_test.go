package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsboard-api/core/domain"
	coreerrors "newsboard-api/core/errors"
	"newsboard-api/core/listengine"
	"newsboard-api/infrastructure/cache/memory"
)

func testDoc(links ...string) domain.FeedDocument {
	items := make([]domain.NewsItem, len(links))
	for i, l := range links {
		items[i] = domain.NewsItem{Link: l, Title: "T " + l, Timestamp: int64(100 + i)}
	}
	return domain.FeedDocument{Items: items, LastUpdated: "stamp"}
}

func newTestRegistry() *Registry {
	return NewRegistry(listengine.DefaultConfig(), memory.NewMemoryStore(), nil, time.Minute)
}

func TestCreate_AssignsUUID(t *testing.T) {
	r := newTestRegistry()

	s := r.Create(context.Background())

	_, err := uuid.Parse(s.ID())
	assert.NoError(t, err)
	assert.Equal(t, 1, r.Count())

	got, err := r.Get(s.ID())
	require.NoError(t, err)
	assert.Same(t, s, got)
}

func TestGet_Unknown(t *testing.T) {
	r := newTestRegistry()

	_, err := r.Get(uuid.NewString())
	assert.True(t, coreerrors.IsNotFound(err))
}

func TestResume_RejectsNonUUID(t *testing.T) {
	r := newTestRegistry()

	_, err := r.Resume(context.Background(), "not-a-uuid")
	assert.True(t, coreerrors.IsValidation(err))
}

func TestResume_ReturnsLiveSession(t *testing.T) {
	r := newTestRegistry()
	s := r.Create(context.Background())

	again, err := r.Resume(context.Background(), s.ID())
	require.NoError(t, err)
	assert.Same(t, s, again)
}

func TestResume_ReloadsPersistedFavorites(t *testing.T) {
	r := newTestRegistry()
	r.Publish(testDoc("a", "b"))
	ctx := context.Background()

	s := r.Create(ctx)
	s.Do(func(e *listengine.Engine) {
		item, ok := e.FindItem("a")
		require.True(t, ok)
		e.ToggleFavorite(ctx, item)
	})

	r.Remove(s.ID())
	assert.Equal(t, 0, r.Count())

	resumed, err := r.Resume(ctx, s.ID())
	require.NoError(t, err)
	assert.NotSame(t, s, resumed)
	resumed.Do(func(e *listengine.Engine) {
		assert.True(t, e.IsFavorite("a"))
		assert.Equal(t, 1, e.FavoriteCount())
	})
}

func TestSessions_FavoritesAreIsolated(t *testing.T) {
	r := newTestRegistry()
	r.Publish(testDoc("a"))
	ctx := context.Background()

	one := r.Create(ctx)
	two := r.Create(ctx)

	one.Do(func(e *listengine.Engine) {
		e.ToggleFavorite(ctx, e.Items()[0])
	})
	two.Do(func(e *listengine.Engine) {
		assert.Equal(t, 0, e.FavoriteCount())
	})
}

func TestPublish_SessionsPickUpNewFeed(t *testing.T) {
	r := newTestRegistry()
	s := r.Create(context.Background())

	r.Publish(testDoc("a", "b"))
	s.Do(func(e *listengine.Engine) {
		assert.Len(t, e.Projection().VisibleItems, 2)
		e.SetSearchQuery("T a")
	})

	r.Publish(testDoc("a", "b", "c"))
	_, version := r.Current()
	assert.Equal(t, uint64(2), version)

	s.Do(func(e *listengine.Engine) {
		assert.Len(t, e.Items(), 3)
		assert.Equal(t, "t a", e.View().SearchQuery)
		assert.Equal(t, "stamp", e.LastUpdated())
	})
}

func TestSession_ConcurrentAccess(t *testing.T) {
	r := newTestRegistry()
	r.Publish(testDoc("a", "b", "c"))
	s := r.Create(context.Background())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Do(func(e *listengine.Engine) {
				e.LoadMore()
				_ = e.Projection()
			})
		}()
	}
	wg.Wait()

	s.Do(func(e *listengine.Engine) {
		assert.Equal(t, listengine.DefaultMaxVisible, e.View().VisibleCount)
	})
}

func TestFavoritesKey(t *testing.T) {
	assert.Equal(t, "favorites:abc", FavoritesKey("abc"))
}
