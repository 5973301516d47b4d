package api

import (
	"context"
	"net/http"

	"github.com/medicart/medicart-client/internal/models"
)

func (c *restClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	return do[[]models.Category](ctx, c, http.MethodGet, "/category", nil)
}

func (c *restClient) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	return do[*models.Category](ctx, c, http.MethodPost, "/category", req)
}

func (c *restClient) UpdateCategory(ctx context.Context, id string, req *models.CreateCategoryRequest) (*models.Category, error) {
	return do[*models.Category](ctx, c, http.MethodPatch, "/category/"+pathEscape(id), req)
}

func (c *restClient) DeleteCategory(ctx context.Context, id string) error {
	return c.doDiscard(ctx, http.MethodDelete, "/category/"+pathEscape(id))
}
