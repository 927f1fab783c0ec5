// ABOUTME: Favorites handlers for the Huma API
// ABOUTME: Toggle, mark read, bulk delete and clear operate on the session's saved list

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"newsboard-api/api/dto/mappers"
	"newsboard-api/api/dto/requests"
	"newsboard-api/api/dto/responses"
	coreerrors "newsboard-api/core/errors"
	"newsboard-api/core/listengine"
	"newsboard-api/pkg/featureflags"
)

// FavoritesHandler serves a session's favorites
type FavoritesHandler struct {
	sessions SessionStore
}

// NewFavoritesHandler creates a new favorites handler
func NewFavoritesHandler(sessions SessionStore) *FavoritesHandler {
	return &FavoritesHandler{sessions: sessions}
}

// RegisterRoutes registers all favorites routes
func (h *FavoritesHandler) RegisterRoutes(api huma.API) {
	tags := []string{"Favorites"}

	huma.Register(api, huma.Operation{
		OperationID: "listFavorites",
		Method:      http.MethodGet,
		Path:        "/sessions/{id}/favorites",
		Summary:     "List favorites",
		Description: "Returns the saved items, most recently added first, with total and unread counts",
		Tags:        tags,
	}, h.ListFavorites)

	huma.Register(api, huma.Operation{
		OperationID: "toggleFavorite",
		Method:      http.MethodPost,
		Path:        "/sessions/{id}/favorites/toggle",
		Summary:     "Toggle a favorite",
		Description: "Removes the item if saved, otherwise saves a snapshot of it from the current feed",
		Tags:        tags,
	}, h.ToggleFavorite)

	huma.Register(api, huma.Operation{
		OperationID: "markFavoriteRead",
		Method:      http.MethodPost,
		Path:        "/sessions/{id}/favorites/read",
		Summary:     "Mark a favorite as read",
		Tags:        tags,
	}, h.MarkRead)

	huma.Register(api, huma.Operation{
		OperationID: "deleteFavorites",
		Method:      http.MethodPost,
		Path:        "/sessions/{id}/favorites/delete",
		Summary:     "Delete favorites",
		Description: "Removes every favorite whose link is listed; unknown links are ignored",
		Tags:        tags,
	}, h.DeleteFavorites)

	huma.Register(api, huma.Operation{
		OperationID: "clearFavorites",
		Method:      http.MethodDelete,
		Path:        "/sessions/{id}/favorites",
		Summary:     "Clear favorites",
		Tags:        tags,
	}, h.ClearFavorites)
}

// ListFavoritesInput defines the input for the ListFavorites operation
type ListFavoritesInput struct {
	SessionPath
}

// ListFavoritesOutput defines the output for the ListFavorites and ClearFavorites operations
type ListFavoritesOutput struct {
	Body *responses.FavoritesResponse
}

// LinkInput carries a single link in the body
type LinkInput struct {
	SessionPath
	Body requests.LinkRequest
}

// ToggleFavoriteOutput defines the output for the ToggleFavorite operation
type ToggleFavoriteOutput struct {
	Body responses.ToggleResponse
}

// MarkReadOutput defines the output for the MarkRead operation
type MarkReadOutput struct {
	Body responses.MarkReadResponse
}

// DeleteFavoritesInput defines the input for the DeleteFavorites operation
type DeleteFavoritesInput struct {
	SessionPath
	Body requests.LinksRequest
}

// DeleteFavoritesOutput defines the output for the DeleteFavorites operation
type DeleteFavoritesOutput struct {
	Body responses.DeleteFavoritesResponse
}

// ListFavorites handles GET /sessions/{id}/favorites
func (h *FavoritesHandler) ListFavorites(ctx context.Context, input *ListFavoritesInput) (*ListFavoritesOutput, error) {
	out := &ListFavoritesOutput{}
	err := h.with(ctx, input.ID, func(e *listengine.Engine) error {
		out.Body = mappers.ToFavoritesResponse(e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ToggleFavorite handles POST /sessions/{id}/favorites/toggle
func (h *FavoritesHandler) ToggleFavorite(ctx context.Context, input *LinkInput) (*ToggleFavoriteOutput, error) {
	link := input.Body.Link
	out := &ToggleFavoriteOutput{}
	err := h.with(ctx, input.ID, func(e *listengine.Engine) error {
		if !e.IsFavorite(link) {
			item, ok := e.FindItem(link)
			if !ok {
				return toHumaError(&coreerrors.NotFoundError{Resource: "news item", ID: link})
			}
			out.Body.IsFavorite = e.ToggleFavorite(ctx, item)
		} else {
			for _, fav := range e.Favorites() {
				if fav.Link == link {
					out.Body.IsFavorite = e.ToggleFavorite(ctx, fav.NewsItem)
					break
				}
			}
		}
		out.Body.Link = link
		out.Body.Count = e.FavoriteCount()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MarkRead handles POST /sessions/{id}/favorites/read
func (h *FavoritesHandler) MarkRead(ctx context.Context, input *LinkInput) (*MarkReadOutput, error) {
	out := &MarkReadOutput{}
	err := h.with(ctx, input.ID, func(e *listengine.Engine) error {
		out.Body.Link = input.Body.Link
		out.Body.Updated = e.MarkFavoriteRead(ctx, input.Body.Link)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteFavorites handles POST /sessions/{id}/favorites/delete
func (h *FavoritesHandler) DeleteFavorites(ctx context.Context, input *DeleteFavoritesInput) (*DeleteFavoritesOutput, error) {
	links := input.Body.LinkSet()
	out := &DeleteFavoritesOutput{}
	err := h.with(ctx, input.ID, func(e *listengine.Engine) error {
		out.Body.Removed = e.BulkDeleteFavorites(ctx, links)
		out.Body.Count = e.FavoriteCount()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ClearFavorites handles DELETE /sessions/{id}/favorites
func (h *FavoritesHandler) ClearFavorites(ctx context.Context, input *ListFavoritesInput) (*ListFavoritesOutput, error) {
	out := &ListFavoritesOutput{}
	err := h.with(ctx, input.ID, func(e *listengine.Engine) error {
		e.ClearFavorites(ctx)
		out.Body = mappers.ToFavoritesResponse(e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// with runs fn on the session's engine unless favorites are switched off
func (h *FavoritesHandler) with(ctx context.Context, id string, fn func(e *listengine.Engine) error) error {
	if featureflags.IsEnabled(ctx, featureflags.FavoritesDisabled) {
		return featureDisabled("favorites")
	}
	s, err := lookup(h.sessions, id)
	if err != nil {
		return err
	}
	s.Do(func(e *listengine.Engine) {
		err = fn(e)
	})
	return err
}
