package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akarpov/go-dash-sync/internal/adapter"
	"github.com/akarpov/go-dash-sync/internal/logger"
	"github.com/akarpov/go-dash-sync/internal/store"
	"github.com/akarpov/go-dash-sync/models"
)

// clientSessionService is the concrete implementation of
// [ClientSessionService].
type clientSessionService struct {
	adapter       adapter.ServerAdapter
	cache         store.CacheRepository
	viewStateSync ViewStateSync
	logger        *logger.Logger
}

// NewClientSessionService constructs a [ClientSessionService].
func NewClientSessionService(serverAdapter adapter.ServerAdapter, cache store.CacheRepository, viewStateSync ViewStateSync, log *logger.Logger) ClientSessionService {
	return &clientSessionService{
		adapter:       serverAdapter,
		cache:         cache,
		viewStateSync: viewStateSync,
		logger:        log,
	}
}

// Register implements [ClientSessionService].
func (s *clientSessionService) Register(ctx context.Context, login, password string) (models.Session, error) {
	token, err := s.adapter.Register(ctx, models.User{Login: login, Password: password})
	if err != nil {
		return models.Session{}, fmt.Errorf("registration failed: %w", err)
	}

	return s.storeSession(ctx, login, token)
}

// Login implements [ClientSessionService].
func (s *clientSessionService) Login(ctx context.Context, login, password string) (models.Session, error) {
	token, err := s.adapter.Login(ctx, models.User{Login: login, Password: password})
	if err != nil {
		return models.Session{}, fmt.Errorf("login failed: %w", err)
	}

	return s.storeSession(ctx, login, token)
}

func (s *clientSessionService) storeSession(ctx context.Context, login string, token models.Token) (models.Session, error) {
	session := models.Session{
		UserID:  token.UserID,
		Login:   login,
		Token:   token.SignedString,
		SavedAt: time.Now().UTC(),
	}
	if err := s.cache.SaveSession(ctx, session); err != nil {
		// the sign-in itself succeeded; a cache failure only loses session
		// restore across restarts
		logger.FromContext(ctx).Warn().Err(err).Msg("failed to persist session")
	}

	return session, nil
}

// Restore implements [ClientSessionService].
func (s *clientSessionService) Restore(ctx context.Context) (models.Session, error) {
	session, err := s.cache.GetSession(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.Session{}, fmt.Errorf("%w: %w", ErrNotSignedIn, err)
		}
		return models.Session{}, err
	}

	s.adapter.SetToken(session.Token)

	return session, nil
}

// Logout implements [ClientSessionService]. The remote reset is best effort:
// sign-out always succeeds locally.
func (s *clientSessionService) Logout(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if err := s.viewStateSync.Reset(ctx); err != nil {
		log.Warn().Err(err).Msg("view state reset during logout failed")
	}

	if err := s.cache.ClearSession(ctx); err != nil {
		return fmt.Errorf("clearing session failed: %w", err)
	}
	s.adapter.SetToken("")

	return nil
}
