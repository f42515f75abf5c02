package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/dtroode/pdfgenie-client/internal/logger"
	"github.com/dtroode/pdfgenie-client/internal/model"
	"github.com/dtroode/pdfgenie-client/internal/token"
)

var _ model.SessionState = (*SessionStore)(nil)

// SessionStore is the single owner of the authenticated identity.
// The in-memory session, the persisted token and the adapter's bearer
// header only change together, inside transition.
type SessionStore struct {
	client    model.AuthClient
	tokens    model.TokenStore
	navigator model.Navigator
	inspector model.TokenInspector
	logger    *logger.Logger
	now       func() time.Time

	mu      sync.RWMutex
	session model.Session
	loading bool

	ready       chan struct{}
	restoreOnce sync.Once
}

func NewSessionStore(
	client model.AuthClient,
	tokens model.TokenStore,
	navigator model.Navigator,
	inspector model.TokenInspector,
	logger *logger.Logger,
) *SessionStore {
	s := &SessionStore{
		client:    client,
		tokens:    tokens,
		navigator: navigator,
		inspector: inspector,
		logger:    logger,
		now:       time.Now,
		loading:   true,
		ready:     make(chan struct{}),
	}
	client.OnUnauthorized(s.handleUnauthorized)

	return s
}

// Restore reloads the persisted session once. Failures are logged and
// leave the store unauthenticated; they never propagate.
func (s *SessionStore) Restore(ctx context.Context) {
	s.restoreOnce.Do(func() {
		defer s.settle()
		s.restore(ctx)
	})
}

func (s *SessionStore) restore(ctx context.Context) {
	saved, err := s.tokens.Load()
	if err != nil {
		s.logger.Warn("Session: failed to load saved token",
			"error", err.Error())
		s.reset()
		return
	}

	if saved == "" {
		s.logger.Debug("Session: no saved token")
		return
	}

	if token.Expired(s.inspector, saved, s.now()) {
		s.logger.Info("Session: saved token expired, clearing")
		s.reset()
		return
	}

	s.client.SetBearer(saved)

	user, err := s.client.Me(ctx)
	if err != nil {
		s.logger.Info("Session: saved token rejected, clearing",
			"error", err.Error())
		s.reset()
		return
	}

	if err := s.transition(&user, saved); err != nil {
		s.logger.Warn("Session: failed to restore session",
			"error", err.Error())
		return
	}

	s.logger.Info("Session: restored session",
		"username", user.Username)
}

func (s *SessionStore) settle() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()

	close(s.ready)
	s.logger.Debug("Session: initialization complete")
}

// Ready returns a channel closed once initialization has settled.
func (s *SessionStore) Ready() <-chan struct{} {
	return s.ready
}

// Loading reports whether initialization is still in flight.
func (s *SessionStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Current returns a copy of the session.
func (s *SessionStore) Current() model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := model.Session{Token: s.session.Token}
	if s.session.User != nil {
		u := *s.session.User
		out.User = &u
	}
	return out
}

// Login exchanges credentials for a session.
func (s *SessionStore) Login(ctx context.Context, username, password string) (bool, error) {
	s.logger.Debug("Session: starting login",
		"username", username)

	resp, err := s.client.Login(ctx, model.LoginRequest{Username: username, Password: password})
	if err != nil {
		s.reset()

		var apiErr *model.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			s.logger.Info("Session: login rejected",
				"username", username)
			return false, fmt.Errorf("%w: %s", model.ErrInvalidCredentials, apiErr.Detail)
		}
		s.logger.Error("Session: login failed",
			"username", username,
			"error", err.Error())
		return false, fmt.Errorf("failed to login: %w", err)
	}

	if resp.AccessToken == "" {
		s.reset()
		return false, model.ErrNoAccessToken
	}

	user := resp.User
	if user == nil {
		// Older backends return only the token.
		s.client.SetBearer(resp.AccessToken)
		me, err := s.client.Me(ctx)
		if err != nil {
			s.reset()
			return false, fmt.Errorf("failed to get current user: %w", err)
		}
		user = &me
	}

	if err := s.transition(user, resp.AccessToken); err != nil {
		return false, err
	}

	s.logger.Info("Session: logged in",
		"username", user.Username)

	return true, nil
}

// Signup registers an account and logs into it.
func (s *SessionStore) Signup(ctx context.Context, username, email, password string) error {
	_, err := s.client.Register(ctx, model.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		s.logger.Info("Session: signup failed",
			"username", username,
			"error", err.Error())
		return fmt.Errorf("failed to register: %w", err)
	}

	s.logger.Info("Session: account created",
		"username", username)

	if _, err := s.Login(ctx, username, password); err != nil {
		return err
	}
	return nil
}

// Logout drops the session and moves to the login view.
func (s *SessionStore) Logout() {
	s.reset()
	s.logger.Info("Session: logged out")
	s.navigator.Navigate(model.ViewLogin)
}

// handleUnauthorized runs when an authenticated call gets 401.
// During restoration the session is cleared without navigating.
func (s *SessionStore) handleUnauthorized() {
	loading := s.Loading()
	s.reset()

	s.logger.Warn("Session: token rejected by server")
	if !loading {
		s.navigator.Navigate(model.ViewLogin)
	}
}

func (s *SessionStore) reset() {
	_ = s.transition(nil, "")
}

// transition replaces the session. A nil user or an empty token clears
// memory, storage and the bearer header together.
func (s *SessionStore) transition(user *model.User, accessToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user == nil || accessToken == "" {
		if err := s.tokens.Clear(); err != nil {
			s.logger.Warn("Session: failed to clear saved token",
				"error", err.Error())
		}
		s.client.ClearBearer()
		s.session = model.Session{}
		return nil
	}

	if err := s.tokens.Save(accessToken); err != nil {
		_ = s.tokens.Clear()
		s.client.ClearBearer()
		s.session = model.Session{}
		return fmt.Errorf("failed to save token: %w", err)
	}

	u := *user
	s.client.SetBearer(accessToken)
	s.session = model.Session{User: &u, Token: accessToken}
	return nil
}
