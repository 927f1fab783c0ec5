// ABOUTME: Category handler for the Huma API
// ABOUTME: Lists the canonical category keys clients can filter by

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"newsboard-api/api/dto/responses"
	"newsboard-api/core/category"
)

// CategoryHandler serves the category table
type CategoryHandler struct {
	table *category.Table
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(table *category.Table) *CategoryHandler {
	if table == nil {
		table = category.DefaultTable()
	}
	return &CategoryHandler{table: table}
}

// RegisterRoutes registers the category routes
func (h *CategoryHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listCategories",
		Method:      http.MethodGet,
		Path:        "/categories",
		Summary:     "List categories",
		Description: "Returns the wildcard followed by the canonical category keys in display order",
		Tags:        []string{"Categories"},
	}, h.ListCategories)
}

// ListCategoriesOutput defines the output for the ListCategories operation
type ListCategoriesOutput struct {
	Body responses.CategoriesResponse
}

// ListCategories handles GET /categories
func (h *CategoryHandler) ListCategories(ctx context.Context, _ *struct{}) (*ListCategoriesOutput, error) {
	keys := h.table.Keys()
	out := &ListCategoriesOutput{}
	out.Body.Categories = make([]string, 0, len(keys)+1)
	out.Body.Categories = append(out.Body.Categories, string(category.All))
	for _, k := range keys {
		out.Body.Categories = append(out.Body.Categories, string(k))
	}
	return out, nil
}
