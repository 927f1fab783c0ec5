// ABOUTME: NewsItem domain model represents a single entry of the published news feed
// ABOUTME: FavoriteEntry is a frozen snapshot of an item plus its read flag

package domain

// NewsItem represents an individual news entry in the feed document.
// Items are immutable once loaded; Link is the identity everywhere.
type NewsItem struct {
	// Link is the URL of the article and the item's identity
	Link string `json:"link"`

	// Title is the translated headline shown on the card
	Title string `json:"title"`

	// Alternate renderings of the headline
	TitleAlt     string `json:"title_tc,omitempty"` // Traditional Chinese variant
	TitleForeign string `json:"title_ja,omitempty"` // Original-language headline

	// Category is the free-form source label, see category.Table
	Category string `json:"category,omitempty"`

	// Origin is the publisher name
	Origin string `json:"origin,omitempty"`

	// TimeDisplay is a pre-formatted short time label
	TimeDisplay string `json:"time_str,omitempty"`

	// Timestamp is seconds since epoch; zero means missing
	Timestamp int64 `json:"timestamp,omitempty"`

	// ImageURL is an optional thumbnail
	ImageURL string `json:"image,omitempty"`
}

// IsValid checks if the news item has all required fields
func (ni *NewsItem) IsValid() bool {
	if ni.Title == "" {
		return false
	}

	if ni.Link == "" {
		return false
	}

	return true
}

// HasTimestamp reports whether the item carries a publication time
func (ni *NewsItem) HasTimestamp() bool {
	return ni.Timestamp > 0
}

// SortKey returns the timestamp used for recency ordering; missing sorts as oldest.
func (ni *NewsItem) SortKey() int64 {
	if ni.Timestamp < 0 {
		return 0
	}
	return ni.Timestamp
}

// FavoriteEntry is a favorited item frozen at favorite-time plus its read flag.
// The JSON shape flattens the item fields so persisted lists stay compatible
// with the browser's localStorage format.
type FavoriteEntry struct {
	NewsItem
	IsRead bool `json:"isRead"`
}

// NewFavoriteEntry snapshots an item as an unread favorite
func NewFavoriteEntry(item NewsItem) FavoriteEntry {
	return FavoriteEntry{
		NewsItem: item,
		IsRead:   false,
	}
}
