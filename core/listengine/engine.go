// ABOUTME: NewsListEngine owns the raw feed and derives filtered, searched, sorted projections
// ABOUTME: Single-owner and synchronous; callers serialize access when sharing an instance

package listengine

import (
	"cmp"
	"slices"
	"strings"

	"newsboard-api/core/category"
	"newsboard-api/core/domain"
	"newsboard-api/core/interfaces"
)

// ViewState is the filter/search/window key of the current projection
type ViewState struct {
	FilterCategory category.Key
	SearchQuery    string
	VisibleCount   int
}

// Projection is the render-ready slice of the feed
type Projection struct {
	// VisibleItems is the window prefix of the matched, sorted items
	VisibleItems []domain.NewsItem

	// TotalMatched counts matches before truncation
	TotalMatched int

	// HasMore is true when "load more" would reveal further items
	HasMore bool

	// Empty marks the "no results" state
	Empty bool
}

// Engine is the list state machine behind the news card view
type Engine struct {
	cfg    Config
	store  interfaces.Store
	logger interfaces.Logger

	items       []domain.NewsItem
	lastUpdated string
	archive     ArchiveIndex
	view        ViewState
	favorites   []domain.FavoriteEntry
}

// New creates an engine with an empty feed and no favorites.
// store may be nil, in which case favorites live only in memory.
func New(cfg Config, store interfaces.Store, logger interfaces.Logger) *Engine {
	cfg = cfg.withDefaults()
	if logger == nil {
		logger = interfaces.NopLogger{}
	}
	return &Engine{
		cfg:     cfg,
		store:   store,
		logger:  logger,
		archive: ArchiveIndex{},
		view: ViewState{
			FilterCategory: category.All,
			VisibleCount:   cfg.PageSize,
		},
		favorites: []domain.FavoriteEntry{},
	}
}

// Config returns the effective settings
func (e *Engine) Config() Config {
	return e.cfg
}

// SetFeed replaces the raw items wholesale and rebuilds the archive index
// before returning. View state and favorites are left untouched.
func (e *Engine) SetFeed(items []domain.NewsItem) {
	e.items = slices.Clone(items)
	if e.items == nil {
		e.items = []domain.NewsItem{}
	}
	e.archive = BuildArchive(e.items, e.cfg.Location)
}

// Load installs a whole feed document, recording its last-updated stamp
func (e *Engine) Load(doc domain.FeedDocument) {
	e.SetFeed(doc.Items)
	e.lastUpdated = doc.LastUpdated
}

// LastUpdated returns the stamp of the most recently loaded document
func (e *Engine) LastUpdated() string {
	return e.lastUpdated
}

// Items returns a copy of the raw item sequence in feed order
func (e *Engine) Items() []domain.NewsItem {
	return slices.Clone(e.items)
}

// FindItem looks an item up by link in the current feed
func (e *Engine) FindItem(link string) (domain.NewsItem, bool) {
	doc := domain.FeedDocument{Items: e.items}
	return doc.FindByLink(link)
}

// View returns the current view state
func (e *Engine) View() ViewState {
	return e.view
}

// CategoryOf returns the canonical key for an item
func (e *Engine) CategoryOf(item domain.NewsItem) category.Key {
	return e.cfg.Categories.Canonicalize(item.Category)
}

// SetCategoryFilter sets the category filter and resets the window.
// "all" (or an empty key) matches everything.
func (e *Engine) SetCategoryFilter(key category.Key) {
	e.view.FilterCategory = category.NormalizeFilter(string(key))
	e.view.VisibleCount = e.cfg.PageSize
}

// SetSearchQuery sets the trimmed, case-folded query and resets the window.
// An empty query clears the search.
func (e *Engine) SetSearchQuery(raw string) {
	e.view.SearchQuery = normalizeQuery(raw)
	e.view.VisibleCount = e.cfg.PageSize
}

// LoadMore grows the window by one page, never past the ceiling.
// It returns the resulting window size.
func (e *Engine) LoadMore() int {
	e.view.VisibleCount = growWindow(e.view.VisibleCount, e.cfg.PageSize, e.cfg.MaxVisible)
	return e.view.VisibleCount
}

// Projection filters by category, then by search query, stable-sorts by
// timestamp descending and truncates to the window. It is recomputed on
// every call.
func (e *Engine) Projection() Projection {
	matched := make([]domain.NewsItem, 0, len(e.items))
	for _, item := range e.items {
		if !e.matchesCategory(item) {
			continue
		}
		if e.view.SearchQuery != "" && !matchesQuery(item, e.view.SearchQuery) {
			continue
		}
		matched = append(matched, item)
	}

	sortByRecency(matched)

	visible := visiblePrefix(matched, e.view.VisibleCount)
	return Projection{
		VisibleItems: visible,
		TotalMatched: len(matched),
		HasMore:      len(matched) > len(visible) && e.view.VisibleCount < e.cfg.MaxVisible,
		Empty:        len(matched) == 0,
	}
}

func (e *Engine) matchesCategory(item domain.NewsItem) bool {
	if e.view.FilterCategory == category.All {
		return true
	}
	return e.CategoryOf(item) == e.view.FilterCategory
}

// matchesQuery is a plain substring test against title or origin
func matchesQuery(item domain.NewsItem, query string) bool {
	if strings.Contains(strings.ToLower(item.Title), query) {
		return true
	}
	return strings.Contains(strings.ToLower(item.Origin), query)
}

func normalizeQuery(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// sortByRecency orders newest first; ties and missing timestamps keep input order
func sortByRecency(items []domain.NewsItem) {
	slices.SortStableFunc(items, func(a, b domain.NewsItem) int {
		return cmp.Compare(b.SortKey(), a.SortKey())
	})
}
