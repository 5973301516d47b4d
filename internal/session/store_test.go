package session_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/medicart/medicart-client/internal/api"
	"github.com/medicart/medicart-client/internal/models"
	"github.com/medicart/medicart-client/internal/session"
	"github.com/medicart/medicart-client/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	mux          *http.ServeMux
	server       *httptest.Server
	profileCalls int
}

func newFakeAPI(t *testing.T, user models.User) *fakeAPI {
	t.Helper()

	f := &fakeAPI{mux: http.NewServeMux()}

	f.mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req.Password != "correct" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Invalid credentials"})

			return
		}

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    models.AuthData{Token: "issued-token", User: user},
		})
	})

	f.mux.HandleFunc("GET /auth/profile", func(w http.ResponseWriter, r *http.Request) {
		f.profileCalls++

		if r.Header.Get("Authorization") != "Bearer issued-token" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "No valid token"})

			return
		}

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"user": user},
		})
	})

	f.server = httptest.NewServer(f.mux)
	t.Cleanup(f.server.Close)

	return f
}

func newStore(t *testing.T, f *fakeAPI, credsPath string) (*session.Store, *storage.CredentialStore) {
	t.Helper()

	creds, err := storage.NewCredentialStore(credsPath)
	require.NoError(t, err)

	client := api.New(api.Config{BaseURL: f.server.URL, Tokens: creds})

	return session.New(client, creds), creds
}

func TestLogin(t *testing.T) {
	customer := models.User{ID: "u1", Name: "Rahim", Email: "r@example.com", Role: models.RoleCustomer}

	t.Run("success persists the session and lands on the shop", func(t *testing.T) {
		// Arrange
		f := newFakeAPI(t, customer)
		store, creds := newStore(t, f, filepath.Join(t.TempDir(), "credentials.json"))

		// Act
		route, err := store.Login(context.Background(), &models.LoginRequest{Email: "r@example.com", Password: "correct"})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "/shop", route)
		assert.Equal(t, session.StateAuthenticated, store.State())

		token, ok := creds.Token()
		require.True(t, ok)
		assert.Equal(t, "issued-token", token)

		user, ok := store.User()
		require.True(t, ok)
		assert.Equal(t, "u1", user.ID)
	})

	t.Run("failure leaves the session unauthenticated", func(t *testing.T) {
		f := newFakeAPI(t, customer)
		store, creds := newStore(t, f, filepath.Join(t.TempDir(), "credentials.json"))

		_, err := store.Login(context.Background(), &models.LoginRequest{Email: "r@example.com", Password: "wrong"})

		assert.EqualError(t, err, "Invalid credentials")
		assert.Equal(t, session.StateUnauthenticated, store.State())

		_, ok := creds.Token()
		assert.False(t, ok)
	})

	t.Run("admin and seller land on their dashboards", func(t *testing.T) {
		assert.Equal(t, "/admin", session.LandingRoute(models.RoleAdmin))
		assert.Equal(t, "/seller", session.LandingRoute(models.RoleSeller))
		assert.Equal(t, "/shop", session.LandingRoute(models.RoleCustomer))
	})
}

func TestSessionRoundTrip(t *testing.T) {
	seller := models.User{ID: "u2", Name: "Karim", Email: "k@example.com", Role: models.RoleSeller}

	// Arrange: log in with one store, then hydrate a fresh one from the same
	// credential file, as a new page load would.
	f := newFakeAPI(t, seller)
	credsPath := filepath.Join(t.TempDir(), "credentials.json")

	first, _ := newStore(t, f, credsPath)
	_, err := first.Login(context.Background(), &models.LoginRequest{Email: "k@example.com", Password: "correct"})
	require.NoError(t, err)

	// Act
	second, _ := newStore(t, f, credsPath)
	assert.Equal(t, session.StateHydrating, second.State())
	require.NoError(t, second.Hydrate(context.Background()))

	// Assert
	assert.Equal(t, session.StateAuthenticated, second.State())

	user, ok := second.User()
	require.True(t, ok)
	assert.Equal(t, seller.ID, user.ID)
	assert.Equal(t, seller.Email, user.Email)
	assert.Equal(t, models.RoleSeller, user.Role)
}

func TestHydrate(t *testing.T) {
	customer := models.User{ID: "u1", Name: "Rahim", Email: "r@example.com", Role: models.RoleCustomer}

	t.Run("no token goes straight to unauthenticated", func(t *testing.T) {
		f := newFakeAPI(t, customer)
		store, _ := newStore(t, f, filepath.Join(t.TempDir(), "credentials.json"))

		require.NoError(t, store.Hydrate(context.Background()))

		assert.Equal(t, session.StateUnauthenticated, store.State())
		assert.Zero(t, f.profileCalls)
	})

	t.Run("rejected token is purged", func(t *testing.T) {
		// Arrange
		f := newFakeAPI(t, customer)
		credsPath := filepath.Join(t.TempDir(), "credentials.json")

		creds, err := storage.NewCredentialStore(credsPath)
		require.NoError(t, err)
		require.NoError(t, creds.Save("stale-token", &customer))

		store, creds := newStore(t, f, credsPath)

		// Act
		err = store.Hydrate(context.Background())

		// Assert
		assert.Error(t, err)
		assert.Equal(t, session.StateUnauthenticated, store.State())

		_, ok := creds.Token()
		assert.False(t, ok, "invalid token must be purged")
	})

	t.Run("expired jwt is purged without a network call", func(t *testing.T) {
		// Arrange: a signed-but-expired token; the client only reads exp.
		f := newFakeAPI(t, customer)
		credsPath := filepath.Join(t.TempDir(), "credentials.json")

		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, models.Claims{
			UserID: "u1",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})
		tokenString, err := expired.SignedString([]byte("irrelevant"))
		require.NoError(t, err)

		creds, err := storage.NewCredentialStore(credsPath)
		require.NoError(t, err)
		require.NoError(t, creds.Save(tokenString, &customer))

		store, _ := newStore(t, f, credsPath)

		// Act
		err = store.Hydrate(context.Background())

		// Assert
		assert.Error(t, err)
		assert.Equal(t, session.StateUnauthenticated, store.State())
		assert.Zero(t, f.profileCalls)
	})
}

func TestLogout(t *testing.T) {
	customer := models.User{ID: "u1", Name: "Rahim", Email: "r@example.com", Role: models.RoleCustomer}

	f := newFakeAPI(t, customer)
	store, creds := newStore(t, f, filepath.Join(t.TempDir(), "credentials.json"))

	_, err := store.Login(context.Background(), &models.LoginRequest{Email: "r@example.com", Password: "correct"})
	require.NoError(t, err)

	store.Logout()

	assert.Equal(t, session.StateUnauthenticated, store.State())

	_, ok := creds.Token()
	assert.False(t, ok)

	// Logging out twice is harmless.
	store.Logout()
	assert.Equal(t, session.StateUnauthenticated, store.State())
}

func TestNavLinks(t *testing.T) {

	tests := []struct {
		role models.Role
		want []string
	}{
		{role: models.RoleAdmin, want: []string{"Dashboard", "Users", "Categories"}},
		{role: models.RoleSeller, want: []string{"Dashboard", "Inventory", "Orders"}},
		{role: models.RoleCustomer, want: []string{"Home", "Shop", "My Orders", "Profile"}},
		{role: models.Role(""), want: []string{"Home", "Shop"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+" links", func(t *testing.T) {
			links := session.NavLinks(tt.role)

			names := make([]string, 0, len(links))
			for _, link := range links {
				names = append(names, link.Name)
			}

			assert.Equal(t, tt.want, names)
		})
	}
}
