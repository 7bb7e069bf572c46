package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known
// failure conditions. Callers should use [errors.Is] to match against these
// values.
var (
	// ErrLoginAlreadyExists is returned when registering a user whose login
	// is already present in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrUserNotFound is returned when a lookup by login matches no account.
	ErrUserNotFound = errors.New("user not found")

	// ErrViewStateNotFound is returned when a user has no stored view state
	// row. The service layer substitutes defaults.
	ErrViewStateNotFound = errors.New("view state not found")

	// ErrStaleUpdate is returned when a view-state write carries a sequence
	// number older than the one already stored, meaning a newer write has
	// been applied in the meantime. The row is left unchanged.
	ErrStaleUpdate = errors.New("stale view state update")

	// ErrSessionNotFound is returned by the client cache when no session row
	// is stored, i.e. nobody is signed in.
	ErrSessionNotFound = errors.New("local session not found")

	// ErrCacheMiss is returned by the client cache when the requested cached
	// value (activities, committed state) has never been written.
	ErrCacheMiss = errors.New("cache miss")
)

// Low-level database operation errors, wrapped around driver errors by
// repository methods.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values from a result
	// set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
