package actions

import (
	"context"
	"strings"

	"github.com/medicart/medicart-client/internal/errors"
	"github.com/medicart/medicart-client/internal/models"
)

func (c *Catalog) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	return c.client.ListCategories(ctx)
}

// CreateCategory rejects an empty name before any network call.
func (c *Catalog) CreateCategory(ctx context.Context, name string) (*models.Category, error) {

	req := &models.CreateCategoryRequest{Name: strings.TrimSpace(name)}

	if req.Name == "" {
		return nil, errors.ValidationError("Category name is required")
	}

	if _, err := c.session.RequireUser(); err != nil {
		return nil, err
	}

	return c.client.CreateCategory(ctx, req)
}

func (c *Catalog) UpdateCategory(ctx context.Context, id, name string) (*models.Category, error) {

	req := &models.CreateCategoryRequest{Name: strings.TrimSpace(name)}

	if req.Name == "" {
		return nil, errors.ValidationError("Category name is required")
	}

	if _, err := c.session.RequireUser(); err != nil {
		return nil, err
	}

	return c.client.UpdateCategory(ctx, id, req)
}

func (c *Catalog) DeleteCategory(ctx context.Context, id string) error {

	if _, err := c.session.RequireUser(); err != nil {
		return err
	}

	return c.client.DeleteCategory(ctx, id)
}
