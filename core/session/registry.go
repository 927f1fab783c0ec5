// ABOUTME: Session registry hosts one news list engine per client over a shared feed
// ABOUTME: Idle sessions expire through go-cache; favorites live in the durable store per session

package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"newsboard-api/core/domain"
	coreerrors "newsboard-api/core/errors"
	"newsboard-api/core/interfaces"
	"newsboard-api/core/listengine"
)

// DefaultTTL is how long an idle session is kept
const DefaultTTL = 30 * time.Minute

// FavoritesKey returns the durable store key of a session's favorites
func FavoritesKey(id string) string {
	return "favorites:" + id
}

// Registry owns the live sessions and the most recently published feed
type Registry struct {
	sessions *cache.Cache
	store    interfaces.Store
	logger   interfaces.Logger
	base     listengine.Config

	mu      sync.RWMutex
	doc     domain.FeedDocument
	version uint64
}

// NewRegistry creates a registry. Every session engine starts from base,
// with its favorites key replaced by the session's own.
func NewRegistry(base listengine.Config, store interfaces.Store, logger interfaces.Logger, ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &Registry{
		sessions: cache.New(ttl, ttl/2),
		store:    store,
		logger:   logger,
		base:     base,
		doc:      domain.FeedDocument{Items: []domain.NewsItem{}},
	}
}

// Publish makes doc the current feed. Sessions pick it up on their next access.
func (r *Registry) Publish(doc domain.FeedDocument) {
	r.mu.Lock()
	r.doc = doc
	r.version++
	version := r.version
	r.mu.Unlock()

	r.logger.Info("Published feed", map[string]interface{}{
		"items":        len(doc.Items),
		"last_updated": doc.LastUpdated,
		"version":      version,
	})
}

// Current returns the latest published feed and its version
func (r *Registry) Current() (domain.FeedDocument, uint64) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.doc, r.version
}

// Count returns the number of live sessions
func (r *Registry) Count() int {
	return r.sessions.ItemCount()
}

// Create starts a session with a fresh id
func (r *Registry) Create(ctx context.Context) *Session {
	s, _ := r.open(ctx, uuid.NewString())
	return s
}

// Resume returns the live session with the given id, or recreates it with
// its persisted favorites. The id must be a UUID.
func (r *Registry) Resume(ctx context.Context, id string) (*Session, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, &coreerrors.ValidationError{Field: "id", Message: "session id must be a UUID"}
	}
	s, _ := r.open(ctx, parsed.String())
	return s, nil
}

// Get returns a live session and extends its lifetime
func (r *Registry) Get(id string) (*Session, error) {
	v, found := r.sessions.Get(id)
	if !found {
		return nil, &coreerrors.NotFoundError{Resource: "session", ID: id}
	}
	s := v.(*Session)
	r.sessions.SetDefault(id, s)
	return s, nil
}

// Remove drops a live session. Persisted favorites are kept.
func (r *Registry) Remove(id string) {
	r.sessions.Delete(id)
}

// open returns the live session for id or creates one. The bool reports
// whether a new session was created.
func (r *Registry) open(ctx context.Context, id string) (*Session, bool) {
	if v, found := r.sessions.Get(id); found {
		s := v.(*Session)
		r.sessions.SetDefault(id, s)
		return s, false
	}

	cfg := r.base
	cfg.FavoritesKey = FavoritesKey(id)
	engine := listengine.New(cfg, r.store, r.logger)
	engine.LoadFavorites(ctx)

	s := &Session{id: id, engine: engine, registry: r}
	if err := r.sessions.Add(id, s, cache.DefaultExpiration); err != nil {
		// lost a race with a concurrent open of the same id
		if v, found := r.sessions.Get(id); found {
			return v.(*Session), false
		}
		r.sessions.SetDefault(id, s)
	}

	r.logger.Debug("Opened session", map[string]interface{}{
		"session_id": id,
		"favorites":  engine.FavoriteCount(),
	})
	return s, true
}

// Session is one client's engine. All access goes through Do.
type Session struct {
	id       string
	registry *Registry

	mu      sync.Mutex
	engine  *listengine.Engine
	version uint64
}

// ID returns the session id
func (s *Session) ID() string {
	return s.id
}

// Do runs fn with exclusive access to the session's engine. A session whose
// feed is behind the registry reloads it first.
func (s *Session) Do(fn func(e *listengine.Engine)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, version := s.registry.Current()
	if s.version != version {
		s.engine.Load(doc)
		s.version = version
	}
	fn(s.engine)
}
