package store

import (
	"context"

	"github.com/akarpov/go-dash-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// CacheRepository is the client's local persistence: the sign-in session,
// the cached activity list served when the remote is unreachable, and the
// last view state the server confirmed.
type CacheRepository interface {
	// SaveSession stores the sign-in session, replacing any previous one.
	SaveSession(ctx context.Context, session models.Session) error

	// GetSession returns the stored session, or [ErrSessionNotFound].
	GetSession(ctx context.Context) (models.Session, error)

	// ClearSession removes the stored session. Clearing an absent session is
	// not an error.
	ClearSession(ctx context.Context) error

	// SaveActivities replaces the cached activity list.
	SaveActivities(ctx context.Context, activities []models.Activity) error

	// GetActivities returns the cached activity list, or [ErrCacheMiss] when
	// nothing has ever been cached.
	GetActivities(ctx context.Context) ([]models.Activity, error)

	// SaveCommittedState stores the view state last confirmed by the server.
	SaveCommittedState(ctx context.Context, state models.ViewState) error

	// GetCommittedState returns the last confirmed view state, or
	// [ErrCacheMiss].
	GetCommittedState(ctx context.Context) (models.ViewState, error)

	// ClearCommittedState drops the stored snapshot (sign-out path).
	ClearCommittedState(ctx context.Context) error
}
