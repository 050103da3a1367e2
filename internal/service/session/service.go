// Package session implements the gate between the login form and the main
// interface: one startup session check, sign-in, sign-out, and the
// authenticated flag the presentation shell renders from.
package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/dreamworld/wms-console/pkg/clients/identity"
)

// Service owns the authenticated/unauthenticated state.
type Service struct {
	idp    identity.Client
	logger *zap.Logger

	mu            sync.RWMutex
	authenticated bool
}

// NewService wires a session gate around the identity provider client.
func NewService(idp identity.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{idp: idp, logger: logger}
}

// CheckSession performs the single startup probe for a live session. Every
// failure mode, from "never signed in" to a network error, collapses to
// unauthenticated; no error is surfaced.
func (s *Service) CheckSession(ctx context.Context) bool {
	err := s.idp.CurrentSession(ctx)
	if err != nil {
		s.logger.Debug("no live session", zap.Error(err))
	}
	s.setAuthenticated(err == nil)
	return err == nil
}

// SignIn delegates to the identity provider. On failure the provider's error
// is returned unchanged so the login form can display its message verbatim;
// there is no automatic retry.
func (s *Service) SignIn(ctx context.Context, username, password string) error {
	if err := s.idp.SignIn(ctx, username, password); err != nil {
		s.logger.Warn("sign in rejected", zap.String("username", username), zap.Error(err))
		return err
	}
	s.setAuthenticated(true)
	s.logger.Info("signed in", zap.String("username", username))
	return nil
}

// SignOut delegates to the identity provider. On failure the error is logged
// and the authenticated flag is left unchanged, so the interface stays in a
// signed-in state even though the backend may already have invalidated the
// session. Long-standing behavior, preserved deliberately; see DESIGN.md.
func (s *Service) SignOut(ctx context.Context) {
	if err := s.idp.SignOut(ctx); err != nil {
		s.logger.Error("sign out failed", zap.Error(err))
		return
	}
	s.setAuthenticated(false)
	s.logger.Info("signed out")
}

// Authenticated reports the current gate state.
func (s *Service) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

func (s *Service) setAuthenticated(v bool) {
	s.mu.Lock()
	s.authenticated = v
	s.mu.Unlock()
}
