package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/medicart/medicart-client/internal/api"
	"github.com/medicart/medicart-client/internal/errors"
	"github.com/medicart/medicart-client/internal/models"
	"github.com/medicart/medicart-client/internal/storage"
)

type State int

const (
	StateUnauthenticated State = iota
	StateHydrating
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateHydrating:
		return "hydrating"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// Store is the single source of truth for "who is logged in". It is built
// explicitly from its dependencies and has an explicit Hydrate/Close
// lifecycle; nothing here is package-level state.
type Store struct {
	client api.Client
	creds  *storage.CredentialStore
	logger *slog.Logger

	mu    sync.RWMutex
	state State
	user  *models.User

	watchCancel context.CancelFunc
	events      chan Event
}

type Option func(*Store)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

func New(client api.Client, creds *storage.CredentialStore, opts ...Option) *Store {

	s := &Store{
		client: client,
		creds:  creds,
		logger: slog.Default(),
		state:  StateUnauthenticated,
	}

	if _, ok := creds.Token(); ok {
		s.state = StateHydrating
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Store) State() State {

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// User returns the cached profile snapshot when authenticated.
func (s *Store) User() (*models.User, bool) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state != StateAuthenticated || s.user == nil {
		return nil, false
	}

	user := *s.user

	return &user, true
}

// RequireUser is the guard every authenticated action calls before spending
// a network round-trip.
func (s *Store) RequireUser() (*models.User, error) {

	user, ok := s.User()
	if !ok {
		return nil, errors.UnauthenticatedError("You must be logged in")
	}

	return user, nil
}

// Hydrate resolves the initial state from the persisted token: a successful
// profile fetch authenticates; any failure purges the token. Tokens whose
// expiry claim has already passed are purged without a network call.
func (s *Store) Hydrate(ctx context.Context) error {

	token, ok := s.creds.Token()
	if !ok {
		s.setState(StateUnauthenticated, nil)

		return nil
	}

	if expired(token) {
		s.logger.Info("persisted token is expired, purging session")
		s.purge()

		return errors.UnauthenticatedError("Session expired, please log in again")
	}

	// Seed the cached snapshot so callers see a user while the refresh runs.
	if user, ok := s.creds.User(); ok {
		s.mu.Lock()
		s.user = user
		s.mu.Unlock()
	}

	user, err := s.client.Profile(ctx)
	if err != nil {
		s.logger.Warn("profile fetch failed during hydration, purging session", slog.String("error", err.Error()))
		s.purge()

		return errors.UnauthenticatedError("Session is no longer valid").WithError(err)
	}

	user.Role = models.ParseRole(string(user.Role))

	if err := s.creds.SaveUser(user); err != nil {
		s.logger.Warn("failed to persist refreshed user", slog.String("error", err.Error()))
	}

	s.setState(StateAuthenticated, user)

	return nil
}

// Login authenticates, persists the session, and returns the role-specific
// landing route.
func (s *Store) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	return s.authenticate(ctx, func(ctx context.Context) (*models.AuthData, error) {
		return s.client.Login(ctx, req)
	})
}

// Register creates the account and starts a session exactly like Login.
func (s *Store) Register(ctx context.Context, req *models.RegisterRequest) (string, error) {
	return s.authenticate(ctx, func(ctx context.Context) (*models.AuthData, error) {
		return s.client.Register(ctx, req)
	})
}

func (s *Store) authenticate(ctx context.Context, call func(context.Context) (*models.AuthData, error)) (string, error) {

	data, err := call(ctx)
	if err != nil {
		return "", err
	}

	if data == nil || data.Token == "" {
		return "", errors.DecodeError("auth response carried no token")
	}

	data.User.Role = models.ParseRole(string(data.User.Role))

	if err := s.creds.Save(data.Token, &data.User); err != nil {
		return "", err
	}

	s.setState(StateAuthenticated, &data.User)

	s.logger.Info("session established",
		slog.String("user_id", data.User.ID),
		slog.String("role", string(data.User.Role)))

	return LandingRoute(data.User.Role), nil
}

// Logout is unconditional and has no failure mode: the persisted credentials
// and in-memory state are purged even if the file removal errors.
func (s *Store) Logout() {

	if err := s.creds.Clear(); err != nil {
		s.logger.Warn("failed to clear persisted credentials", slog.String("error", err.Error()))
	}

	s.setState(StateUnauthenticated, nil)
	s.logger.Info("session cleared")
}

// RefreshProfile replaces the cached user snapshot. An invalid-token failure
// forces logout; any other failure leaves the session untouched.
func (s *Store) RefreshProfile(ctx context.Context) (*models.User, error) {

	if _, err := s.RequireUser(); err != nil {
		return nil, err
	}

	user, err := s.client.Profile(ctx)
	if err != nil {
		if errors.IsUnauthenticated(err) {
			s.logger.Warn("token rejected during profile refresh, logging out")
			s.Logout()
		}

		return nil, err
	}

	user.Role = models.ParseRole(string(user.Role))

	if err := s.creds.SaveUser(user); err != nil {
		s.logger.Warn("failed to persist refreshed user", slog.String("error", err.Error()))
	}

	s.setState(StateAuthenticated, user)

	return user, nil
}

// Close stops the credential watcher, if one is running.
func (s *Store) Close() {

	s.mu.Lock()
	cancel := s.watchCancel
	s.watchCancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

func (s *Store) setState(state State, user *models.User) {

	s.mu.Lock()
	s.state = state
	s.user = user
	events := s.events
	s.mu.Unlock()

	if events != nil {
		select {
		case events <- Event{State: state, User: user}:
		default:
		}
	}
}

func (s *Store) purge() {

	if err := s.creds.Clear(); err != nil {
		s.logger.Warn("failed to clear persisted credentials", slog.String("error", err.Error()))
	}

	s.setState(StateUnauthenticated, nil)
}

// expired reports whether the token is a JWT whose exp claim has passed.
// Opaque or unparsable tokens are never treated as expired; the server is
// the authority for those.
func expired(token string) bool {

	claims := &models.Claims{}

	parser := jwt.NewParser()

	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}

	if claims.ExpiresAt == nil {
		return false
	}

	return claims.ExpiresAt.Before(time.Now())
}
