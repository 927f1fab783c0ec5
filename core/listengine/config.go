// ABOUTME: Engine configuration collapses the behavioral knobs of the list view
// ABOUTME: Page increment, window ceiling, favorites key, archive timezone and category table

package listengine

import (
	"time"

	"newsboard-api/core/category"
)

const (
	// DefaultPageSize is the "load more" increment and the reset window size
	DefaultPageSize = 25

	// DefaultMaxVisible is the hard ceiling of the visible window
	DefaultMaxVisible = 100

	// DefaultFavoritesKey is the store key the favorites list is persisted under
	DefaultFavoritesKey = "favorites"
)

// Config holds the per-instance settings of an Engine.
// Zero values fall back to the defaults above.
type Config struct {
	// PageSize is the window increment used by LoadMore
	PageSize int

	// MaxVisible caps the visible window
	MaxVisible int

	// FavoritesKey is the store key for the persisted favorites list
	FavoritesKey string

	// Location is the calendar timezone used for archive dates
	Location *time.Location

	// Categories maps source labels to canonical keys
	Categories *category.Table
}

// DefaultConfig returns the settings used by the published front-end
func DefaultConfig() Config {
	return Config{
		PageSize:     DefaultPageSize,
		MaxVisible:   DefaultMaxVisible,
		FavoritesKey: DefaultFavoritesKey,
		Location:     time.Local,
		Categories:   category.DefaultTable(),
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.PageSize < 1 {
		c.PageSize = d.PageSize
	}
	if c.MaxVisible < 1 {
		c.MaxVisible = d.MaxVisible
	}
	if c.MaxVisible < c.PageSize {
		c.MaxVisible = c.PageSize
	}
	if c.FavoritesKey == "" {
		c.FavoritesKey = d.FavoritesKey
	}
	if c.Location == nil {
		c.Location = d.Location
	}
	if c.Categories == nil {
		c.Categories = d.Categories
	}
	return c
}
