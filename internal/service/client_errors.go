package service

import "errors"

var (
	// ErrSuperseded completes a scheduled save that was replaced by a newer
	// one before reaching the wire. It is a control signal, not a failure:
	// callers match it with [errors.Is] and ignore it.
	ErrSuperseded = errors.New("save superseded by a newer update")

	// ErrNotSignedIn is returned by client operations that need a session
	// when none is stored.
	ErrNotSignedIn = errors.New("not signed in")
)
