package api

import (
	"context"
	"net/http"

	"github.com/medicart/medicart-client/internal/models"
)

func (c *restClient) ListUsers(ctx context.Context) ([]models.User, error) {
	return do[[]models.User](ctx, c, http.MethodGet, "/user", nil)
}

func (c *restClient) GetUser(ctx context.Context, id string) (*models.User, error) {
	return do[*models.User](ctx, c, http.MethodGet, "/user/"+pathEscape(id), nil)
}

func (c *restClient) UpdateUserRole(ctx context.Context, id string, req *models.UpdateRoleRequest) (*models.User, error) {
	return do[*models.User](ctx, c, http.MethodPatch, "/user/"+pathEscape(id)+"/role", req)
}

func (c *restClient) DeleteUser(ctx context.Context, id string) error {
	return c.doDiscard(ctx, http.MethodDelete, "/user/"+pathEscape(id))
}

func (c *restClient) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	return do[*models.AdminStats](ctx, c, http.MethodGet, "/user/admin/stats", nil)
}

func (c *restClient) SellerStats(ctx context.Context) (*models.SellerStats, error) {
	return do[*models.SellerStats](ctx, c, http.MethodGet, "/user/seller/stats", nil)
}
