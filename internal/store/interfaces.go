// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Karpov

// Package store implements the persistence layer: the server's PostgreSQL
// repositories for users, dashboard view states and activities, and the
// client's local SQLite cache for the session, the cached activity list and
// the last committed view state.
package store

import (
	"context"
	"time"

	"github.com/akarpov/go-dash-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository handles account creation and lookup against the "users"
// table.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields (UserID, CreatedAt). Returns [ErrLoginAlreadyExists] when the
	// login is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin returns the account with the given login, or
	// [ErrUserNotFound].
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// ViewStateRepository stores one dashboard view state row per user.
type ViewStateRepository interface {
	// GetViewState returns the stored state for userID, or
	// [ErrViewStateNotFound] when the user has never saved one.
	GetViewState(ctx context.Context, userID int64) (models.ViewState, error)

	// UpsertViewState applies a partial update: fields the update does not
	// carry keep their stored value, a missing row is created from defaults
	// first. The merged row is returned with updated_at set to now.
	//
	// A write whose sequence number is older than the stored one is not
	// applied; the current row is returned together with [ErrStaleUpdate].
	UpsertViewState(ctx context.Context, userID int64, update models.ViewStateUpdate, now time.Time) (models.ViewState, error)

	// DeleteViewState removes the stored row. Deleting a missing row is not
	// an error.
	DeleteViewState(ctx context.Context, userID int64) error
}

// ActivityRepository serves the activity list backing the dashboard.
type ActivityRepository interface {
	// ListActivities returns all activities belonging to userID.
	ListActivities(ctx context.Context, userID int64) ([]models.Activity, error)
}
