package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/medicart/medicart-client/internal/models"
)

func (c *restClient) ListReviews(ctx context.Context, medicineID string) ([]models.Review, error) {

	path := "/reviews"

	if medicineID != "" {
		path += "?medicineId=" + url.QueryEscape(medicineID)
	}

	return do[[]models.Review](ctx, c, http.MethodGet, path, nil)
}

func (c *restClient) CreateReview(ctx context.Context, req *models.CreateReviewRequest) (*models.Review, error) {
	return do[*models.Review](ctx, c, http.MethodPost, "/reviews", req)
}
