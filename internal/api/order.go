package api

import (
	"context"
	"net/http"

	"github.com/medicart/medicart-client/internal/models"
)

func (c *restClient) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {
	return do[*models.Order](ctx, c, http.MethodPost, "/orders", req)
}

func (c *restClient) MyOrders(ctx context.Context) ([]models.Order, error) {
	return do[[]models.Order](ctx, c, http.MethodGet, "/orders/my-orders", nil)
}

func (c *restClient) SellerOrders(ctx context.Context) ([]models.Order, error) {
	return do[[]models.Order](ctx, c, http.MethodGet, "/orders/seller-orders", nil)
}

func (c *restClient) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	return do[*models.Order](ctx, c, http.MethodGet, "/orders/"+pathEscape(id), nil)
}

func (c *restClient) UpdateOrderStatus(ctx context.Context, id string, req *models.UpdateOrderStatusRequest) (*models.Order, error) {
	return do[*models.Order](ctx, c, http.MethodPatch, "/orders/"+pathEscape(id)+"/status", req)
}
