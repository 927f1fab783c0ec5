// ABOUTME: News list handlers for the Huma API
// ABOUTME: Filter, search and load-more each mutate the session view and return the new projection

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"newsboard-api/api/dto/mappers"
	"newsboard-api/api/dto/requests"
	"newsboard-api/api/dto/responses"
	"newsboard-api/core/category"
	coreerrors "newsboard-api/core/errors"
	"newsboard-api/core/listengine"
)

// NewsHandler serves the session list views
type NewsHandler struct {
	sessions SessionStore
	table    *category.Table
	now      func() time.Time
}

// NewNewsHandler creates a new news handler. Filter keys are validated
// against table.
func NewNewsHandler(sessions SessionStore, table *category.Table) *NewsHandler {
	if table == nil {
		table = category.DefaultTable()
	}
	return &NewsHandler{sessions: sessions, table: table, now: time.Now}
}

// RegisterRoutes registers all news list routes
func (h *NewsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getNews",
		Method:      http.MethodGet,
		Path:        "/sessions/{id}/news",
		Summary:     "Get the visible news list",
		Description: "Returns the session's current projection: filtered, searched, newest first and cut to the visible window",
		Tags:        []string{"News"},
	}, h.GetNews)

	huma.Register(api, huma.Operation{
		OperationID: "setCategoryFilter",
		Method:      http.MethodPut,
		Path:        "/sessions/{id}/filter",
		Summary:     "Set the category filter",
		Description: "Selects a category and resets the visible window",
		Tags:        []string{"News"},
	}, h.SetFilter)

	huma.Register(api, huma.Operation{
		OperationID: "setSearchQuery",
		Method:      http.MethodPut,
		Path:        "/sessions/{id}/search",
		Summary:     "Set the search query",
		Description: "Sets the title/origin search and resets the visible window",
		Tags:        []string{"News"},
	}, h.SetSearch)

	huma.Register(api, huma.Operation{
		OperationID: "loadMore",
		Method:      http.MethodPost,
		Path:        "/sessions/{id}/more",
		Summary:     "Load more items",
		Description: "Grows the visible window by one page up to the ceiling",
		Tags:        []string{"News"},
	}, h.LoadMore)
}

// ProjectionOutput is returned by every list view operation
type ProjectionOutput struct {
	Body *responses.ProjectionResponse
}

// GetNewsInput defines the input for the GetNews operation
type GetNewsInput struct {
	SessionPath
}

// SetFilterInput defines the input for the SetFilter operation
type SetFilterInput struct {
	SessionPath
	Body requests.FilterRequest
}

// SetSearchInput defines the input for the SetSearch operation
type SetSearchInput struct {
	SessionPath
	Body requests.SearchRequest
}

// LoadMoreInput defines the input for the LoadMore operation
type LoadMoreInput struct {
	SessionPath
}

// GetNews handles GET /sessions/{id}/news
func (h *NewsHandler) GetNews(ctx context.Context, input *GetNewsInput) (*ProjectionOutput, error) {
	return h.project(input.ID, nil)
}

// SetFilter handles PUT /sessions/{id}/filter
func (h *NewsHandler) SetFilter(ctx context.Context, input *SetFilterInput) (*ProjectionOutput, error) {
	key := category.NormalizeFilter(input.Body.Category)
	if !h.table.IsKnown(key) {
		return nil, toHumaError(&coreerrors.ValidationError{
			Field:   "category",
			Message: "unknown category " + string(key),
		})
	}
	return h.project(input.ID, func(e *listengine.Engine) {
		e.SetCategoryFilter(key)
	})
}

// SetSearch handles PUT /sessions/{id}/search
func (h *NewsHandler) SetSearch(ctx context.Context, input *SetSearchInput) (*ProjectionOutput, error) {
	return h.project(input.ID, func(e *listengine.Engine) {
		e.SetSearchQuery(input.Body.Query)
	})
}

// LoadMore handles POST /sessions/{id}/more
func (h *NewsHandler) LoadMore(ctx context.Context, input *LoadMoreInput) (*ProjectionOutput, error) {
	return h.project(input.ID, func(e *listengine.Engine) {
		e.LoadMore()
	})
}

// project applies mutate, if any, and renders the projection in one critical section
func (h *NewsHandler) project(id string, mutate func(e *listengine.Engine)) (*ProjectionOutput, error) {
	s, err := lookup(h.sessions, id)
	if err != nil {
		return nil, err
	}

	out := &ProjectionOutput{}
	s.Do(func(e *listengine.Engine) {
		if mutate != nil {
			mutate(e)
		}
		out.Body = mappers.ToProjectionResponse(s.ID(), e, h.now())
	})
	return out, nil
}
