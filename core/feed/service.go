// ABOUTME: Feed service fetches the published news document and keeps the last good copy
// ABOUTME: Provides feed loading independent of the HTTP layer and the CLI

package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"newsboard-api/core/domain"
	coreerrors "newsboard-api/core/errors"
	"newsboard-api/core/interfaces"
)

// DocumentCacheKey is the store key of the last successfully fetched feed
const DocumentCacheKey = "feed:document"

// FeedService loads the feed document from a URL or a local file
type FeedService struct {
	deps     interfaces.Dependencies
	source   string
	cacheTTL time.Duration
	now      func() time.Time
}

// NewFeedService creates a new feed service for the given source.
// cacheTTL bounds how long the last good document is kept; 0 keeps it forever.
func NewFeedService(deps interfaces.Dependencies, source string, cacheTTL time.Duration) *FeedService {
	if deps.Logger == nil {
		deps.Logger = interfaces.NopLogger{}
	}
	return &FeedService{
		deps:     deps,
		source:   source,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

// Source returns the configured feed location
func (s *FeedService) Source() string {
	return s.source
}

// Fetch loads and decodes the feed. When the source cannot be read the
// cached copy of the last good document is served instead; the error is
// returned only if there is no cached copy either. A payload that is not a
// feed document never replaces the cached copy.
func (s *FeedService) Fetch(ctx context.Context) (domain.FeedDocument, error) {
	raw, err := s.fetchRaw(ctx)
	if err == nil {
		doc, ok := decodeDocument(raw)
		if ok {
			s.cacheDocument(ctx, raw)
			return doc, nil
		}

		s.deps.Logger.Warn("Feed payload is not a news document, trying cached copy", map[string]interface{}{
			"source": s.source,
			"bytes":  len(raw),
		})
		if cached, cacheErr := s.cachedDocument(ctx); cacheErr == nil {
			return DecodeDocument(cached), nil
		}
		return doc, nil
	}

	s.deps.Logger.Warn("Failed to fetch feed, trying cached copy", map[string]interface{}{
		"source": s.source,
		"error":  err.Error(),
	})

	cached, cacheErr := s.cachedDocument(ctx)
	if cacheErr != nil {
		return domain.FeedDocument{Items: []domain.NewsItem{}}, err
	}
	return DecodeDocument(cached), nil
}

// FetchFresh loads and decodes the feed without touching the cache
func (s *FeedService) FetchFresh(ctx context.Context) (domain.FeedDocument, error) {
	raw, err := s.fetchRaw(ctx)
	if err != nil {
		return domain.FeedDocument{Items: []domain.NewsItem{}}, err
	}
	return DecodeDocument(raw), nil
}

func (s *FeedService) fetchRaw(ctx context.Context) ([]byte, error) {
	if s.source == "" {
		return nil, &coreerrors.ValidationError{Field: "source", Message: "feed source cannot be empty"}
	}

	parsed, err := url.Parse(s.source)
	if err == nil {
		switch parsed.Scheme {
		case "http", "https":
			return s.fetchHTTP(ctx, parsed)
		case "file":
			return readFile(parsed.Path)
		}
	}
	return readFile(s.source)
}

func (s *FeedService) fetchHTTP(ctx context.Context, u *url.URL) ([]byte, error) {
	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	// cache-busting parameter, the feed host sits behind a CDN
	q := u.Query()
	q.Set("t", strconv.FormatInt(s.now().UnixMilli(), 10))
	busted := *u
	busted.RawQuery = q.Encode()

	resp, err := s.deps.HTTPClient.Get(ctx, busted.String())
	if err != nil {
		return nil, coreerrors.WrapError(err, "fetching feed")
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "feed returned non-200 status code",
			API:        u.Host,
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, coreerrors.WrapError(err, "reading feed body")
	}
	return body, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(strings.TrimSpace(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &coreerrors.NotFoundError{Resource: "feed file", ID: path}
		}
		return nil, fmt.Errorf("reading feed file: %w", err)
	}
	return data, nil
}

func (s *FeedService) cachedDocument(ctx context.Context) ([]byte, error) {
	if s.deps.Store == nil {
		return nil, coreerrors.KeyNotFound(DocumentCacheKey)
	}
	return s.deps.Store.Get(ctx, DocumentCacheKey)
}

// cacheDocument stores the raw document; cache errors are logged only
func (s *FeedService) cacheDocument(ctx context.Context, raw []byte) {
	if s.deps.Store == nil {
		return
	}
	if err := s.deps.Store.Set(ctx, DocumentCacheKey, raw, s.cacheTTL); err != nil {
		s.deps.Logger.Warn("Failed to cache feed document", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
