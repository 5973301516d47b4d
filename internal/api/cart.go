package api

import (
	"context"
	"net/http"

	"github.com/medicart/medicart-client/internal/models"
)

func (c *restClient) GetCart(ctx context.Context) ([]models.CartItem, error) {
	return do[[]models.CartItem](ctx, c, http.MethodGet, "/cart", nil)
}

func (c *restClient) AddToCart(ctx context.Context, req *models.AddToCartRequest) (*models.CartItem, error) {
	return do[*models.CartItem](ctx, c, http.MethodPost, "/cart", req)
}

func (c *restClient) UpdateCartItem(ctx context.Context, id string, req *models.UpdateQuantityRequest) (*models.CartItem, error) {
	return do[*models.CartItem](ctx, c, http.MethodPatch, "/cart/"+pathEscape(id), req)
}

func (c *restClient) RemoveCartItem(ctx context.Context, id string) error {
	return c.doDiscard(ctx, http.MethodDelete, "/cart/"+pathEscape(id))
}
