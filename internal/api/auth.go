package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/medicart/medicart-client/internal/errors"
	"github.com/medicart/medicart-client/internal/models"
)

func (c *restClient) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthData, error) {
	return do[*models.AuthData](ctx, c, http.MethodPost, "/auth/login", req)
}

func (c *restClient) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthData, error) {
	return do[*models.AuthData](ctx, c, http.MethodPost, "/auth/register", req)
}

// Profile returns the user behind the attached bearer token. The payload is
// sometimes {user: {...}} and sometimes the user itself; both are handled.
func (c *restClient) Profile(ctx context.Context) (*models.User, error) {

	raw, err := c.call(ctx, http.MethodGet, "/auth/profile", nil)
	if err != nil {
		return nil, err
	}

	var wrapped struct {
		User *models.User `json:"user"`
	}

	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.User != nil {
		return wrapped.User, nil
	}

	var user models.User

	if err := json.Unmarshal(raw, &user); err != nil || user.ID == "" {
		return nil, errors.DecodeError("unexpected profile response shape").WithError(err)
	}

	return &user, nil
}

func (c *restClient) UpdateProfile(ctx context.Context, req *models.UpdateProfileRequest) (*models.User, error) {
	return do[*models.User](ctx, c, http.MethodPatch, "/auth/profile", req)
}
