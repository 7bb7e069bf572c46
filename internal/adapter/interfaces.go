// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Karpov

// Package adapter provides transport-layer abstractions for communicating
// with the dashboard API server.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty with a bounded
// retry/backoff policy for transient failures.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthenticated] for 401, [ErrRemoteUnavailable]
// for exhausted retries).
package adapter

import (
	"context"

	"github.com/akarpov/go-dash-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the dashboard
// API server. Implementations are responsible for serialisation,
// authentication header management, retrying transient failures, and mapping
// transport-level errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a registration request with the provided credentials.
	// On success it stores the returned bearer token via SetToken.
	Register(ctx context.Context, user models.User) (models.Token, error)

	// Login authenticates the user. On success it stores the returned bearer
	// token via SetToken and returns it together with the parsed user ID.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// FetchViewState retrieves the caller's dashboard view state. A server
	// that has nothing stored answers with defaults, so a successful call
	// always yields a usable state.
	FetchViewState(ctx context.Context) (models.ViewState, error)

	// SaveViewState sends a partial update and returns the full merged state
	// as persisted by the server, including the new UpdatedAt.
	SaveViewState(ctx context.Context, update models.ViewStateUpdate) (models.ViewState, error)

	// ResetViewState deletes the caller's stored view state so the next
	// FetchViewState returns defaults. Used on sign-out.
	ResetViewState(ctx context.Context) error

	// FetchActivities retrieves the caller's activity list.
	FetchActivities(ctx context.Context) ([]models.Activity, error)
}
