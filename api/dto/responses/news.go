// ABOUTME: Response DTOs for session, projection, favorites and archive endpoints
// ABOUTME: Items carry their canonical category and publisher logo ready for rendering

package responses

import (
	"time"

	"newsboard-api/core/listengine"
)

// NewsItemResponse is a render-ready news card
type NewsItemResponse struct {
	Link          string `json:"link"`
	Title         string `json:"title"`
	TitleAlt      string `json:"titleAlt,omitempty"`
	TitleForeign  string `json:"titleForeign,omitempty"`
	Category      string `json:"category" doc:"Canonical category key"`
	CategoryLabel string `json:"categoryLabel,omitempty" doc:"Label as published by the source"`
	Origin        string `json:"origin,omitempty"`
	LogoURL       string `json:"logoUrl,omitempty"`
	TimeDisplay   string `json:"timeDisplay,omitempty"`
	Timestamp     int64  `json:"timestamp,omitempty"`
	Image         string `json:"image,omitempty"`
	IsFavorite    bool   `json:"isFavorite"`
}

// ViewStateResponse echoes the session's current list view
type ViewStateResponse struct {
	Category     string `json:"category"`
	Query        string `json:"query"`
	VisibleCount int    `json:"visibleCount"`
}

// ProjectionResponse is the visible slice of the news list
type ProjectionResponse struct {
	SessionID     string             `json:"sessionId"`
	Items         []NewsItemResponse `json:"items"`
	TotalMatched  int                `json:"totalMatched"`
	HasMore       bool               `json:"hasMore"`
	Empty         bool               `json:"empty" doc:"True when nothing matches the current filter and query"`
	View          ViewStateResponse  `json:"view"`
	LastUpdated   string             `json:"lastUpdated,omitempty" doc:"Producer's refresh stamp as published"`
	LastUpdatedAt *time.Time         `json:"lastUpdatedAt,omitempty"`
	LastUpdateAge *int64             `json:"lastUpdateAge,omitempty" doc:"Seconds since lastUpdatedAt, never negative"`
}

// SessionResponse identifies a session
type SessionResponse struct {
	ID        string `json:"id"`
	Resumed   bool   `json:"resumed"`
	Favorites int    `json:"favorites"`
}

// CategoriesResponse lists the canonical category keys
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// FavoriteResponse is a favorited item snapshot
type FavoriteResponse struct {
	NewsItemResponse
	IsRead bool `json:"isRead"`
}

// FavoritesResponse lists a session's favorites, newest first
type FavoritesResponse struct {
	Favorites []FavoriteResponse `json:"favorites"`
	Count     int                `json:"count"`
	Unread    int                `json:"unread"`
}

// ToggleResponse reports favorite membership after a toggle
type ToggleResponse struct {
	Link       string `json:"link"`
	IsFavorite bool   `json:"isFavorite"`
	Count      int    `json:"count"`
}

// MarkReadResponse reports whether the favorite was found
type MarkReadResponse struct {
	Link    string `json:"link"`
	Updated bool   `json:"updated"`
}

// DeleteFavoritesResponse reports how many favorites were removed
type DeleteFavoritesResponse struct {
	Removed int `json:"removed"`
	Count   int `json:"count"`
}

// ArchiveResponse is the archive overview: the recent week strip and all dates
type ArchiveResponse struct {
	Days  []listengine.DayCount `json:"days"`
	Dates []string              `json:"dates"`
}

// CalendarResponse is a month of per-day counts
type CalendarResponse struct {
	Year  int                   `json:"year"`
	Month int                   `json:"month"`
	Days  []listengine.DayCount `json:"days"`
}

// ArchiveDayResponse is one archive bucket
type ArchiveDayResponse struct {
	Date  string             `json:"date"`
	Items []NewsItemResponse `json:"items"`
}
