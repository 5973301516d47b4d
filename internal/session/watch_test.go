package session_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/medicart/medicart-client/internal/models"
	"github.com/medicart/medicart-client/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two stores share one credential file, standing in for two open tabs.
func TestWatchPropagatesLogout(t *testing.T) {
	customer := models.User{ID: "u1", Name: "Rahim", Email: "r@example.com", Role: models.RoleCustomer}

	// Arrange
	f := newFakeAPI(t, customer)
	credsPath := filepath.Join(t.TempDir(), "credentials.json")

	first, _ := newStore(t, f, credsPath)
	_, err := first.Login(context.Background(), &models.LoginRequest{Email: "r@example.com", Password: "correct"})
	require.NoError(t, err)

	second, _ := newStore(t, f, credsPath)
	require.NoError(t, second.Hydrate(context.Background()))
	require.Equal(t, session.StateAuthenticated, second.State())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, second.Watch(ctx))
	defer second.Close()

	// Act: logging out in the first "tab" removes the shared file.
	first.Logout()

	// Assert
	assert.Eventually(t, func() bool {
		return second.State() == session.StateUnauthenticated
	}, 5*time.Second, 20*time.Millisecond, "logout should propagate to the watching store")
}

func TestWatchAdoptsExternalLogin(t *testing.T) {
	customer := models.User{ID: "u1", Name: "Rahim", Email: "r@example.com", Role: models.RoleCustomer}

	// Arrange: the watching store starts logged out.
	f := newFakeAPI(t, customer)
	credsPath := filepath.Join(t.TempDir(), "credentials.json")

	watcher, _ := newStore(t, f, credsPath)
	require.NoError(t, watcher.Hydrate(context.Background()))
	require.Equal(t, session.StateUnauthenticated, watcher.State())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, watcher.Watch(ctx))
	defer watcher.Close()

	// Act: a login in another "tab" writes the shared file.
	other, _ := newStore(t, f, credsPath)
	_, err := other.Login(context.Background(), &models.LoginRequest{Email: "r@example.com", Password: "correct"})
	require.NoError(t, err)

	// Assert: last write wins, the watcher adopts the session.
	assert.Eventually(t, func() bool {
		user, ok := watcher.User()

		return ok && user.ID == "u1"
	}, 5*time.Second, 20*time.Millisecond, "login should propagate to the watching store")
}
