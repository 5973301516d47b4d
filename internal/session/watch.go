package session

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/medicart/medicart-client/internal/models"
)

// Event is delivered to Events subscribers whenever the session state
// changes, locally or because another process rewrote the credential file.
type Event struct {
	State State
	User  *models.User
}

// Events returns the subscription channel, creating it on first use. Slow
// consumers miss events rather than blocking state transitions.
func (s *Store) Events() <-chan Event {

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.events == nil {
		s.events = make(chan Event, 8)
	}

	return s.events
}

// Watch follows the credential file with fsnotify so that a logout or login
// in one process propagates to the others sharing the file. It returns once
// the watcher is installed and resyncs in the background until ctx ends or
// Close is called.
func (s *Store) Watch(ctx context.Context) error {

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	// Watch the directory: the file itself disappears on logout and rename
	// events for it would stop arriving.
	if err := watcher.Add(filepath.Dir(s.creds.Path())); err != nil {
		watcher.Close()

		return err
	}

	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	s.watchCancel = cancel
	s.mu.Unlock()

	go func() {
		defer watcher.Close()

		target := filepath.Base(s.creds.Path())

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				if filepath.Base(event.Name) != target {
					continue
				}

				s.resync(event)

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}

				s.logger.Warn("credential watcher error", slog.String("error", err.Error()))
			}
		}
	}()

	return nil
}

// resync adopts whatever the credential file now says. Last write wins
// across processes, matching the storefront's uncoordinated multi-tab rule.
func (s *Store) resync(event fsnotify.Event) {

	if err := s.creds.Reload(); err != nil {
		s.logger.Warn("failed to reload credentials", slog.String("error", err.Error()))

		return
	}

	token, hasToken := s.creds.Token()

	if !hasToken || token == "" {
		if s.State() != StateUnauthenticated {
			s.logger.Info("credentials removed externally, clearing session")
			s.setState(StateUnauthenticated, nil)
		}

		return
	}

	user, hasUser := s.creds.User()
	if !hasUser {
		return
	}

	s.logger.Info("credentials updated externally, adopting session",
		slog.String("op", event.Op.String()),
		slog.String("user_id", user.ID))

	s.setState(StateAuthenticated, user)
}
