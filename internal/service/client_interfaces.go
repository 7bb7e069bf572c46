package service

import (
	"context"
	"time"

	"github.com/akarpov/go-dash-sync/models"
)

// ClientSessionService handles the client's sign-in lifecycle: registering
// and authenticating against the server, persisting the session locally, and
// tearing everything down on sign-out.
type ClientSessionService interface {
	// Register creates an account on the server and signs the user in.
	Register(ctx context.Context, login, password string) (models.Session, error)

	// Login authenticates against the server, stores the issued token in the
	// adapter and the local cache, and returns the session.
	Login(ctx context.Context, login, password string) (models.Session, error)

	// Restore re-attaches a previously persisted session (token into the
	// adapter) without a network round trip. Returns [ErrNotSignedIn]
	// (wrapping [store.ErrSessionNotFound]) when nobody is signed in.
	Restore(ctx context.Context) (models.Session, error)

	// Logout resets the remote view state (best effort), clears the local
	// session and cached snapshots, and drops the adapter token.
	Logout(ctx context.Context) error
}

// ViewStateSync keeps the user's dashboard view state synchronised with the
// server: reads fall back to defaults, writes are debounced and coalesced,
// and rapid successive saves supersede one another so only the final state
// reaches the wire.
type ViewStateSync interface {
	// Load fetches the current view state. A user with nothing stored gets
	// defaults. When the remote stays unreachable after retries, Load returns
	// the last committed snapshot from the local cache (or defaults) together
	// with the transport error, so the caller can render and degrade instead
	// of block.
	Load(ctx context.Context) (models.ViewState, error)

	// ScheduleSave merges the partial update into the pending buffer and
	// (re)starts the debounce timer. The returned handle completes when this
	// buffered save reaches the server — or immediately with [ErrSuperseded]
	// once a newer ScheduleSave call replaces it.
	ScheduleSave(update models.ViewStateUpdate) *SaveHandle

	// SaveImmediately cancels any running debounce timer, merges the pending
	// buffer with update, and writes synchronously. The pending handle, if
	// any, is completed with this write's outcome. Used on navigation away
	// from the dashboard.
	SaveImmediately(ctx context.Context, update models.ViewStateUpdate) (models.ViewState, error)

	// Reset discards pending changes, resets the in-memory state to defaults
	// and deletes the stored state (best effort — a remote failure never
	// blocks sign-out).
	Reset(ctx context.Context) error

	// Current returns the optimistic local view state: the last loaded state
	// with all scheduled updates already applied.
	Current() models.ViewState

	// IsDirty reports whether the local state differs from the last state
	// the server confirmed.
	IsDirty() bool
}

// ClientActivityService is a read-through cache of the activity list: remote
// fetches refresh the local cache, and the cache is served when the remote
// is unreachable. Listing applies the view state's filters and sort
// client-side.
type ClientActivityService interface {
	// Refresh fetches the activity list from the server and replaces the
	// local cache.
	Refresh(ctx context.Context) ([]models.Activity, error)

	// List returns activities filtered and ordered according to state,
	// serving the local cache when the remote is unreachable.
	List(ctx context.Context, state models.ViewState) ([]models.Activity, error)
}

// ClientSyncJob is the background worker that keeps the activity cache warm.
type ClientSyncJob interface {
	// Start launches the refresh goroutine ticking every interval. A
	// previously running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the goroutine to exit and blocks until it has terminated.
	Stop()
}
