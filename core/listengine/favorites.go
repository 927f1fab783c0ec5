// ABOUTME: Favorites are an ordered list of item snapshots persisted whole on every mutation
// ABOUTME: The in-memory list is authoritative; store failures are logged and swallowed

package listengine

import (
	"context"
	"encoding/json"

	"newsboard-api/core/domain"
	coreerrors "newsboard-api/core/errors"
)

// LoadFavorites replaces the in-memory favorites with the persisted list.
// A missing key yields an empty list; corrupt data is logged and ignored.
func (e *Engine) LoadFavorites(ctx context.Context) {
	e.favorites = []domain.FavoriteEntry{}
	if e.store == nil {
		return
	}

	data, err := e.store.Get(ctx, e.cfg.FavoritesKey)
	if err != nil {
		if !coreerrors.IsNotFound(err) {
			e.logger.Warn("Failed to read favorites", map[string]interface{}{
				"key":   e.cfg.FavoritesKey,
				"error": err.Error(),
			})
		}
		return
	}

	var entries []domain.FavoriteEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		e.logger.Warn("Discarding corrupt favorites", map[string]interface{}{
			"key":   e.cfg.FavoritesKey,
			"error": err.Error(),
		})
		return
	}

	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if entry.Link == "" {
			continue
		}
		if _, dup := seen[entry.Link]; dup {
			continue
		}
		seen[entry.Link] = struct{}{}
		e.favorites = append(e.favorites, entry)
	}
}

// ToggleFavorite removes the item if it is a favorite, otherwise inserts a
// snapshot of it at the front. It returns whether the item is now a favorite.
func (e *Engine) ToggleFavorite(ctx context.Context, item domain.NewsItem) bool {
	if idx := e.favoriteIndex(item.Link); idx >= 0 {
		e.favorites = append(e.favorites[:idx:idx], e.favorites[idx+1:]...)
		e.persistFavorites(ctx)
		return false
	}

	entries := make([]domain.FavoriteEntry, 0, len(e.favorites)+1)
	entries = append(entries, domain.NewFavoriteEntry(item))
	e.favorites = append(entries, e.favorites...)
	e.persistFavorites(ctx)
	return true
}

// MarkFavoriteRead flags a favorite as read. It reports whether the link
// was found; an unknown link changes nothing.
func (e *Engine) MarkFavoriteRead(ctx context.Context, link string) bool {
	idx := e.favoriteIndex(link)
	if idx < 0 {
		return false
	}
	e.favorites[idx].IsRead = true
	e.persistFavorites(ctx)
	return true
}

// BulkDeleteFavorites removes every favorite whose link is in the set and
// returns how many were removed. Order of the rest is preserved.
func (e *Engine) BulkDeleteFavorites(ctx context.Context, links map[string]struct{}) int {
	kept := make([]domain.FavoriteEntry, 0, len(e.favorites))
	for _, entry := range e.favorites {
		if _, drop := links[entry.Link]; drop {
			continue
		}
		kept = append(kept, entry)
	}
	removed := len(e.favorites) - len(kept)
	e.favorites = kept
	e.persistFavorites(ctx)
	return removed
}

// ClearFavorites empties the favorites list
func (e *Engine) ClearFavorites(ctx context.Context) {
	e.favorites = []domain.FavoriteEntry{}
	e.persistFavorites(ctx)
}

// Favorites returns a copy of the favorites, most recently added first
func (e *Engine) Favorites() []domain.FavoriteEntry {
	out := make([]domain.FavoriteEntry, len(e.favorites))
	copy(out, e.favorites)
	return out
}

// IsFavorite reports whether the link is in the favorites list
func (e *Engine) IsFavorite(link string) bool {
	return e.favoriteIndex(link) >= 0
}

// FavoriteCount returns the number of favorites
func (e *Engine) FavoriteCount() int {
	return len(e.favorites)
}

// UnreadFavoriteCount returns the number of favorites not yet marked read
func (e *Engine) UnreadFavoriteCount() int {
	n := 0
	for _, entry := range e.favorites {
		if !entry.IsRead {
			n++
		}
	}
	return n
}

func (e *Engine) favoriteIndex(link string) int {
	for i, entry := range e.favorites {
		if entry.Link == link {
			return i
		}
	}
	return -1
}

func (e *Engine) persistFavorites(ctx context.Context) {
	if e.store == nil {
		return
	}

	data, err := json.Marshal(e.favorites)
	if err != nil {
		e.logger.Error("Failed to encode favorites", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	if err := e.store.Set(ctx, e.cfg.FavoritesKey, data, 0); err != nil {
		e.logger.Warn("Failed to persist favorites", map[string]interface{}{
			"key":   e.cfg.FavoritesKey,
			"count": len(e.favorites),
			"error": err.Error(),
		})
	}
}
