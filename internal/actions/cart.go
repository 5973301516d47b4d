package actions

import (
	"context"

	"github.com/medicart/medicart-client/internal/models"
)

func (c *Catalog) GetCart(ctx context.Context) ([]models.CartItem, error) {

	if _, err := c.session.RequireUser(); err != nil {
		return nil, err
	}

	return c.client.GetCart(ctx)
}

func (c *Catalog) AddToCart(ctx context.Context, medicineID string, quantity int) (*models.CartItem, error) {

	if _, err := c.session.RequireUser(); err != nil {
		return nil, err
	}

	req := &models.AddToCartRequest{MedicineID: medicineID, Quantity: quantity}

	if err := c.check(req); err != nil {
		return nil, err
	}

	return c.client.AddToCart(ctx, req)
}

func (c *Catalog) UpdateCartItem(ctx context.Context, id string, quantity int) (*models.CartItem, error) {

	if _, err := c.session.RequireUser(); err != nil {
		return nil, err
	}

	req := &models.UpdateQuantityRequest{Quantity: quantity}

	if err := c.check(req); err != nil {
		return nil, err
	}

	return c.client.UpdateCartItem(ctx, id, req)
}

func (c *Catalog) RemoveCartItem(ctx context.Context, id string) error {

	if _, err := c.session.RequireUser(); err != nil {
		return err
	}

	return c.client.RemoveCartItem(ctx, id)
}
