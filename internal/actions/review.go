package actions

import (
	"context"

	"github.com/medicart/medicart-client/internal/models"
)

func (c *Catalog) GetReviews(ctx context.Context, medicineID string) ([]models.Review, error) {

	reviews, err := c.client.ListReviews(ctx, medicineID)
	if err != nil {
		return nil, err
	}

	for i := range reviews {
		reviews[i].Comment = c.sanitizer.Sanitize(reviews[i].Comment)
	}

	return reviews, nil
}

func (c *Catalog) CreateReview(ctx context.Context, req *models.CreateReviewRequest) (*models.Review, error) {

	if _, err := c.session.RequireUser(); err != nil {
		return nil, err
	}

	if err := c.check(req); err != nil {
		return nil, err
	}

	return c.client.CreateReview(ctx, req)
}
