package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/medicart/medicart-client/internal/models"
)

// ListMedicines fetches the catalog, optionally filtered to one category
// name for shop-page filtering.
func (c *restClient) ListMedicines(ctx context.Context, category string) ([]models.Medicine, error) {

	path := "/medicines"

	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}

	return do[[]models.Medicine](ctx, c, http.MethodGet, path, nil)
}

func (c *restClient) GetMedicine(ctx context.Context, id string) (*models.Medicine, error) {
	return do[*models.Medicine](ctx, c, http.MethodGet, "/medicines/"+pathEscape(id), nil)
}

func (c *restClient) CreateMedicine(ctx context.Context, req *models.CreateMedicineRequest) (*models.Medicine, error) {
	return do[*models.Medicine](ctx, c, http.MethodPost, "/medicines", req)
}

func (c *restClient) UpdateMedicine(ctx context.Context, id string, req *models.UpdateMedicineRequest) (*models.Medicine, error) {
	return do[*models.Medicine](ctx, c, http.MethodPatch, "/medicines/"+pathEscape(id), req)
}

func (c *restClient) DeleteMedicine(ctx context.Context, id string) error {
	return c.doDiscard(ctx, http.MethodDelete, "/medicines/"+pathEscape(id))
}
