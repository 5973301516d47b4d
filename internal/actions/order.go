package actions

import (
	"context"

	"github.com/medicart/medicart-client/internal/errors"
	"github.com/medicart/medicart-client/internal/models"
)

func (c *Catalog) CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {

	if _, err := c.session.RequireUser(); err != nil {
		return nil, err
	}

	if err := c.check(req); err != nil {
		return nil, err
	}

	return c.client.CreateOrder(ctx, req)
}

func (c *Catalog) GetMyOrders(ctx context.Context) ([]models.Order, error) {

	if _, err := c.session.RequireUser(); err != nil {
		return nil, err
	}

	return c.client.MyOrders(ctx)
}

func (c *Catalog) GetSellerOrders(ctx context.Context) ([]models.Order, error) {

	if err := c.requireRole(models.RoleSeller); err != nil {
		return nil, err
	}

	return c.client.SellerOrders(ctx)
}

func (c *Catalog) GetOrder(ctx context.Context, id string) (*models.Order, error) {

	if _, err := c.session.RequireUser(); err != nil {
		return nil, err
	}

	return c.client.GetOrder(ctx, id)
}

// UpdateOrderStatus requests a transition and returns the re-read order; the
// server stays authoritative and may reject it.
func (c *Catalog) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (*models.Order, error) {

	if err := c.requireRole(models.RoleSeller); err != nil {
		return nil, err
	}

	req := &models.UpdateOrderStatusRequest{Status: status}

	if err := c.check(req); err != nil {
		return nil, err
	}

	order, err := c.client.UpdateOrderStatus(ctx, id, req)
	if err != nil {
		return nil, err
	}

	if order == nil || order.ID == "" {
		return nil, errors.DecodeError("order status response carried no order")
	}

	return order, nil
}
