// ABOUTME: Mappers for converting engine state to API DTOs
// ABOUTME: Must be called inside a session's Do so the engine is not shared

package mappers

import (
	"time"

	"newsboard-api/api/dto/responses"
	"newsboard-api/core/domain"
	"newsboard-api/core/feed"
	"newsboard-api/core/listengine"
	"newsboard-api/core/media"
)

// ToNewsItemResponse converts an item using the engine's category table and favorites
func ToNewsItemResponse(e *listengine.Engine, item domain.NewsItem) responses.NewsItemResponse {
	return responses.NewsItemResponse{
		Link:          item.Link,
		Title:         item.Title,
		TitleAlt:      item.TitleAlt,
		TitleForeign:  item.TitleForeign,
		Category:      string(e.CategoryOf(item)),
		CategoryLabel: item.Category,
		Origin:        item.Origin,
		LogoURL:       media.LogoFor(item.Origin),
		TimeDisplay:   item.TimeDisplay,
		Timestamp:     item.Timestamp,
		Image:         item.ImageURL,
		IsFavorite:    e.IsFavorite(item.Link),
	}
}

// ToNewsItemResponses converts a slice of items; never returns nil
func ToNewsItemResponses(e *listengine.Engine, items []domain.NewsItem) []responses.NewsItemResponse {
	out := make([]responses.NewsItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ToNewsItemResponse(e, item))
	}
	return out
}

// ToProjectionResponse renders the engine's current projection. now dates
// the feed's age.
func ToProjectionResponse(sessionID string, e *listengine.Engine, now time.Time) *responses.ProjectionResponse {
	p := e.Projection()
	view := e.View()

	resp := &responses.ProjectionResponse{
		SessionID:    sessionID,
		Items:        ToNewsItemResponses(e, p.VisibleItems),
		TotalMatched: p.TotalMatched,
		HasMore:      p.HasMore,
		Empty:        p.Empty,
		View: responses.ViewStateResponse{
			Category:     string(view.FilterCategory),
			Query:        view.SearchQuery,
			VisibleCount: view.VisibleCount,
		},
		LastUpdated: e.LastUpdated(),
	}

	if at := feed.LastUpdatedTime(e.LastUpdated(), e.Config().Location); !at.IsZero() {
		resp.LastUpdatedAt = &at
		age := int64(max(now.Sub(at), 0) / time.Second)
		resp.LastUpdateAge = &age
	}
	return resp
}

// ToFavoritesResponse renders the engine's favorites list
func ToFavoritesResponse(e *listengine.Engine) *responses.FavoritesResponse {
	favorites := e.Favorites()
	out := make([]responses.FavoriteResponse, 0, len(favorites))
	for _, fav := range favorites {
		item := ToNewsItemResponse(e, fav.NewsItem)
		out = append(out, responses.FavoriteResponse{NewsItemResponse: item, IsRead: fav.IsRead})
	}
	return &responses.FavoritesResponse{
		Favorites: out,
		Count:     len(out),
		Unread:    e.UnreadFavoriteCount(),
	}
}
