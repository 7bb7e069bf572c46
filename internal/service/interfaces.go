// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Karpov

// Package service holds the business logic of both binaries: the server's
// auth, view-state and activity services, and the client's session service,
// activity cache and the debounced view-state synchroniser.
package service

import (
	"context"

	"github.com/akarpov/go-dash-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService handles account registration, credential verification, and the
// JWT token lifecycle.
type AuthService interface {
	// RegisterUser creates a new account with a bcrypt-hashed password.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login verifies the credentials and returns the stored account.
	Login(ctx context.Context, user models.User) (models.User, error)

	// CreateToken issues a signed JWT for the given user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string and extracts the user ID.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ViewStateService serves and mutates the per-user dashboard view state.
type ViewStateService interface {
	// GetViewState returns the stored state, or defaults when the user has
	// never saved one.
	GetViewState(ctx context.Context, userID int64) (models.ViewState, error)

	// SaveViewState validates and applies a partial update, returning the
	// merged state. A stale write (older sequence number) is dropped and the
	// current state returned unchanged.
	SaveViewState(ctx context.Context, userID int64, update models.ViewStateUpdate) (models.ViewState, error)

	// ResetViewState deletes the stored state so the next read yields
	// defaults.
	ResetViewState(ctx context.Context, userID int64) error
}

// ActivityService serves the dashboard activity list.
type ActivityService interface {
	ListActivities(ctx context.Context, userID int64) ([]models.Activity, error)
}
