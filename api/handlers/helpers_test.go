package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/require"

	"newsboard-api/core/domain"
	"newsboard-api/core/listengine"
	"newsboard-api/core/session"
	"newsboard-api/infrastructure/cache/memory"
	"newsboard-api/pkg/featureflags"
)

// fixedNow is 2024-03-10 12:00 UTC
var fixedNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func feedFixture() domain.FeedDocument {
	items := []domain.NewsItem{
		{Link: "https://news.example/budget", Title: "Diet passes budget", Category: "政治", Origin: "NHK", Timestamp: fixedNow.Add(-1 * time.Hour).Unix()},
		{Link: "https://news.example/baseball", Title: "Tigers win opener", Category: "体育", Origin: "Kyodo", Timestamp: fixedNow.Add(-2 * time.Hour).Unix()},
		{Link: "https://news.example/yen", Title: "Yen slides again", Category: "经济", Origin: "NHK", Timestamp: fixedNow.Add(-26 * time.Hour).Unix()},
	}
	// filler pushes the total past one page
	for i := 0; i < 30; i++ {
		items = append(items, domain.NewsItem{
			Link:      fmt.Sprintf("https://news.example/misc-%d", i),
			Title:     fmt.Sprintf("Local story %d", i),
			Timestamp: fixedNow.Add(-time.Duration(72+i) * time.Hour).Unix(),
		})
	}
	return domain.FeedDocument{Items: items, LastUpdated: "2024年3月10日 11时30分"}
}

type testEnv struct {
	api      humatest.TestAPI
	registry *session.Registry
}

// newTestEnv registers every session-scoped handler over a registry holding feedFixture
func newTestEnv(t *testing.T, flags map[featureflags.FeatureFlag]bool) *testEnv {
	t.Helper()

	cfg := listengine.DefaultConfig()
	cfg.Location = time.UTC
	registry := session.NewRegistry(cfg, memory.NewMemoryStore(), nil, time.Minute)
	registry.Publish(feedFixture())

	_, api := humatest.New(t)
	manager := featureflags.NewStaticManager(flags)
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, featureflags.WithManager(ctx.Context(), manager)))
	})

	NewCategoryHandler(nil).RegisterRoutes(api)
	NewSessionHandler(registry).RegisterRoutes(api)
	news := NewNewsHandler(registry, nil)
	news.now = func() time.Time { return fixedNow }
	news.RegisterRoutes(api)
	NewFavoritesHandler(registry).RegisterRoutes(api)
	archive := NewArchiveHandler(registry)
	archive.now = func() time.Time { return fixedNow }
	archive.RegisterRoutes(api)

	return &testEnv{api: api, registry: registry}
}

// newSession creates a session through the API and returns its id
func (env *testEnv) newSession(t *testing.T) string {
	t.Helper()
	resp := env.api.Post("/sessions", map[string]any{})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	var body struct {
		ID string `json:"id"`
	}
	decode(t, resp, &body)
	return body.ID
}

func decode(t *testing.T, resp *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), v), resp.Body.String())
}

type projectionBody struct {
	Items []struct {
		Link       string `json:"link"`
		Category   string `json:"category"`
		LogoURL    string `json:"logoUrl"`
		IsFavorite bool   `json:"isFavorite"`
	} `json:"items"`
	TotalMatched int  `json:"totalMatched"`
	HasMore      bool `json:"hasMore"`
	Empty        bool `json:"empty"`
	View         struct {
		Category     string `json:"category"`
		Query        string `json:"query"`
		VisibleCount int    `json:"visibleCount"`
	} `json:"view"`
	LastUpdated   string     `json:"lastUpdated"`
	LastUpdatedAt *time.Time `json:"lastUpdatedAt"`
	LastUpdateAge *int64     `json:"lastUpdateAge"`
}
