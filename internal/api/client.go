package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/medicart/medicart-client/internal/errors"
	"github.com/medicart/medicart-client/internal/models"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const defaultErrorMessage = "API Request Failed"

// Client is one method per (resource, verb) pair of the storefront API.
// Every method attaches the bearer token when the token source has one and
// normalizes non-2xx responses into *errors.AppError carrying the server's
// message. No method touches session state.
type Client interface {
	// auth
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthData, error)
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthData, error)
	Profile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, req *models.UpdateProfileRequest) (*models.User, error)

	// users (admin)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateUserRole(ctx context.Context, id string, req *models.UpdateRoleRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
	AdminStats(ctx context.Context) (*models.AdminStats, error)
	SellerStats(ctx context.Context) (*models.SellerStats, error)

	// categories
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, req *models.CreateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	// medicines
	ListMedicines(ctx context.Context, category string) ([]models.Medicine, error)
	GetMedicine(ctx context.Context, id string) (*models.Medicine, error)
	CreateMedicine(ctx context.Context, req *models.CreateMedicineRequest) (*models.Medicine, error)
	UpdateMedicine(ctx context.Context, id string, req *models.UpdateMedicineRequest) (*models.Medicine, error)
	DeleteMedicine(ctx context.Context, id string) error

	// orders
	CreateOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error)
	MyOrders(ctx context.Context) ([]models.Order, error)
	SellerOrders(ctx context.Context) ([]models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, req *models.UpdateOrderStatusRequest) (*models.Order, error)

	// cart
	GetCart(ctx context.Context) ([]models.CartItem, error)
	AddToCart(ctx context.Context, req *models.AddToCartRequest) (*models.CartItem, error)
	UpdateCartItem(ctx context.Context, id string, req *models.UpdateQuantityRequest) (*models.CartItem, error)
	RemoveCartItem(ctx context.Context, id string) error

	// reviews
	ListReviews(ctx context.Context, medicineID string) ([]models.Review, error)
	CreateReview(ctx context.Context, req *models.CreateReviewRequest) (*models.Review, error)
}

type Config struct {
	BaseURL string
	Timeout time.Duration
	Tokens  TokenSource
	// HTTPClient overrides the built transport chain; tests use it.
	HTTPClient *http.Client
}

type restClient struct {
	baseURL string
	client  *http.Client
}

func New(cfg Config) Client {

	httpClient := cfg.HTTPClient

	if httpClient == nil {

		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 15 * time.Second
		}

		httpClient = &http.Client{
			Transport: otelhttp.NewTransport(&authTransport{
				tokens: cfg.Tokens,
				base:   http.DefaultTransport,
			}),
			Timeout: timeout,
		}
	}

	return &restClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  httpClient,
	}
}

// call issues the request and returns the entity bytes, already unwrapped
// from the response envelope.
func (c *restClient) call(ctx context.Context, method, path string, body any) (json.RawMessage, error) {

	var reqBody io.Reader

	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, errors.DecodeError("failed to encode request body").WithError(err)
		}

		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, errors.TransportError("failed to build request").WithError(err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errors.TransportError(fmt.Sprintf("request to %s failed", path)).WithError(err)
	}
	defer resp.Body.Close()

	decodeBody(resp)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.TransportError("failed to read response body").WithError(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {

		message := serverMessage(raw)
		if message == "" {
			message = defaultErrorMessage
		}

		return nil, errors.APIError(resp.StatusCode, message)
	}

	return payload(raw), nil
}

// do decodes the unwrapped payload into T.
func do[T any](ctx context.Context, c *restClient, method, path string, body any) (T, error) {

	var out T

	raw, err := c.call(ctx, method, path, body)
	if err != nil {
		return out, err
	}

	if len(raw) == 0 {
		return out, nil
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, errors.DecodeError(fmt.Sprintf("unexpected response shape from %s", path)).WithError(err)
	}

	return out, nil
}

// doDiscard is for endpoints whose response body carries nothing the client
// needs (deletes).
func (c *restClient) doDiscard(ctx context.Context, method, path string) error {
	_, err := c.call(ctx, method, path, nil)

	return err
}

func pathEscape(id string) string {
	return url.PathEscape(id)
}
