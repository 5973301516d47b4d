package actions

import (
	"context"

	"github.com/medicart/medicart-client/internal/models"
	"golang.org/x/sync/errgroup"
)

// ShopData is everything the shop page needs in one load.
type ShopData struct {
	Categories []models.Category
	Medicines  []models.Medicine
}

// LoadShop fetches categories and the catalog in parallel. One failure fails
// the whole load; the caller shows a single retryable error.
func (c *Catalog) LoadShop(ctx context.Context) (*ShopData, error) {

	g, ctx := errgroup.WithContext(ctx)

	var data ShopData

	g.Go(func() error {
		var err error
		data.Categories, err = c.client.ListCategories(ctx)

		return err
	})

	g.Go(func() error {
		var err error
		data.Medicines, err = c.list(ctx, "")

		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &data, nil
}

type AdminDashboard struct {
	Stats *models.AdminStats
	Users []models.User
}

func (c *Catalog) LoadAdminDashboard(ctx context.Context) (*AdminDashboard, error) {

	if err := c.requireRole(models.RoleAdmin); err != nil {
		return nil, err
	}

	g, ctx := errgroup.WithContext(ctx)

	var data AdminDashboard

	g.Go(func() error {
		var err error
		data.Stats, err = c.client.AdminStats(ctx)

		return err
	})

	g.Go(func() error {
		var err error
		data.Users, err = c.client.ListUsers(ctx)

		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &data, nil
}

type SellerDashboard struct {
	Stats  *models.SellerStats
	Orders []models.Order
}

func (c *Catalog) LoadSellerDashboard(ctx context.Context) (*SellerDashboard, error) {

	if err := c.requireRole(models.RoleSeller); err != nil {
		return nil, err
	}

	g, ctx := errgroup.WithContext(ctx)

	var data SellerDashboard

	g.Go(func() error {
		var err error
		data.Stats, err = c.client.SellerStats(ctx)

		return err
	})

	g.Go(func() error {
		var err error
		data.Orders, err = c.client.SellerOrders(ctx)

		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &data, nil
}
