package actions

import (
	"context"

	"github.com/medicart/medicart-client/internal/errors"
	"github.com/medicart/medicart-client/internal/models"
)

func (c *Catalog) GetAllUsers(ctx context.Context) ([]models.User, error) {

	if err := c.requireRole(models.RoleAdmin); err != nil {
		return nil, err
	}

	return c.client.ListUsers(ctx)
}

// UpdateUserRole covers both role changes and active/banned status flips.
func (c *Catalog) UpdateUserRole(ctx context.Context, id string, req *models.UpdateRoleRequest) (*models.User, error) {

	if err := c.requireRole(models.RoleAdmin); err != nil {
		return nil, err
	}

	if req.Role == "" && req.Status == "" {
		return nil, errors.ValidationError("Nothing to update")
	}

	if err := c.check(req); err != nil {
		return nil, err
	}

	return c.client.UpdateUserRole(ctx, id, req)
}

func (c *Catalog) DeleteUser(ctx context.Context, id string) error {

	if err := c.requireRole(models.RoleAdmin); err != nil {
		return err
	}

	return c.client.DeleteUser(ctx, id)
}

func (c *Catalog) GetAdminStats(ctx context.Context) (*models.AdminStats, error) {

	if err := c.requireRole(models.RoleAdmin); err != nil {
		return nil, err
	}

	return c.client.AdminStats(ctx)
}

func (c *Catalog) GetSellerStats(ctx context.Context) (*models.SellerStats, error) {

	if err := c.requireRole(models.RoleSeller); err != nil {
		return nil, err
	}

	return c.client.SellerStats(ctx)
}

func (c *Catalog) UpdateProfile(ctx context.Context, req *models.UpdateProfileRequest) (*models.User, error) {

	if _, err := c.session.RequireUser(); err != nil {
		return nil, err
	}

	user, err := c.client.UpdateProfile(ctx, req)
	if err != nil {
		return nil, err
	}

	// Refresh the cached snapshot so navigation data stays consistent.
	if refreshed, refreshErr := c.session.RefreshProfile(ctx); refreshErr == nil {
		return refreshed, nil
	}

	return user, nil
}

func (c *Catalog) requireRole(role models.Role) error {

	user, err := c.session.RequireUser()
	if err != nil {
		return err
	}

	if user.Role != role {
		return errors.UnauthenticatedError("You do not have access to this area")
	}

	return nil
}
