package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/akarpov/go-dash-sync/internal/adapter"
	"github.com/akarpov/go-dash-sync/internal/config"
	"github.com/akarpov/go-dash-sync/internal/logger"
	"github.com/akarpov/go-dash-sync/internal/store"
	"github.com/akarpov/go-dash-sync/models"
)

// SaveHandle tracks the outcome of one ScheduleSave call. It completes
// exactly once: with the server-confirmed state when the buffered save is
// flushed, or with [ErrSuperseded] when a newer save replaced it.
type SaveHandle struct {
	done  chan struct{}
	state models.ViewState
	err   error
}

func newSaveHandle() *SaveHandle {
	return &SaveHandle{done: make(chan struct{})}
}

// Done returns a channel closed when the handle completes.
func (h *SaveHandle) Done() <-chan struct{} {
	return h.done
}

// Result blocks until the handle completes and returns its outcome.
func (h *SaveHandle) Result() (models.ViewState, error) {
	<-h.done
	return h.state, h.err
}

// complete must be called at most once per handle; every call site owns the
// handle exclusively when it calls it.
func (h *SaveHandle) complete(state models.ViewState, err error) {
	h.state = state
	h.err = err
	close(h.done)
}

// viewStateSync is the concrete implementation of [ViewStateSync].
//
// Writes move through three phases: idle (no buffered changes), pending
// (buffered changes waiting out the debounce delay), and flushing (one
// in-flight remote write). The pending buffer coalesces updates field-wise —
// the last scheduled value per field wins — so a burst of interactions
// produces exactly one write. Flushes are serialized by flushMu and carry a
// monotonically increasing sequence number, so even a delayed earlier write
// can never overwrite a newer one server-side.
type viewStateSync struct {
	adapter adapter.ServerAdapter
	cache   store.CacheRepository
	logger  *logger.Logger

	debounce time.Duration

	mu        sync.Mutex
	pending   models.ViewStateUpdate
	handle    *SaveHandle
	timer     *time.Timer
	seq       uint64
	current   models.ViewState
	committed models.ViewState

	// flushMu serializes remote writes.
	flushMu sync.Mutex
}

// NewViewStateSync constructs a [ViewStateSync] writing through the given
// adapter and caching confirmed snapshots locally.
func NewViewStateSync(serverAdapter adapter.ServerAdapter, cache store.CacheRepository, cfg config.Sync, log *logger.Logger) ViewStateSync {
	debounce := cfg.DebounceDelay
	if debounce <= 0 {
		debounce = config.DefaultDebounceDelay
	}

	return &viewStateSync{
		adapter:  serverAdapter,
		cache:    cache,
		logger:   log,
		debounce: debounce,
	}
}

// Load implements [ViewStateSync].
func (v *viewStateSync) Load(ctx context.Context) (models.ViewState, error) {
	log := logger.FromContext(ctx)

	state, err := v.adapter.FetchViewState(ctx)
	switch {
	case err == nil:
		// server answers defaults for first-time users, so any success is a
		// usable state
	case errors.Is(err, adapter.ErrNotFound):
		state = models.DefaultViewState(time.Now())
		err = nil
	case errors.Is(err, adapter.ErrRemoteUnavailable):
		log.Warn().Err(err).Msg("remote unavailable, loading cached view state")
		if cached, cacheErr := v.cache.GetCommittedState(ctx); cacheErr == nil {
			state = cached
		} else {
			state = models.DefaultViewState(time.Now())
		}
	default:
		return models.ViewState{}, err
	}

	v.mu.Lock()
	v.current = state
	v.committed = state
	v.mu.Unlock()

	if err == nil {
		if cacheErr := v.cache.SaveCommittedState(ctx, state); cacheErr != nil {
			log.Warn().Err(cacheErr).Msg("failed to cache committed view state")
		}
	}

	return state, err
}

// ScheduleSave implements [ViewStateSync].
func (v *viewStateSync) ScheduleSave(update models.ViewStateUpdate) *SaveHandle {
	handle := newSaveHandle()

	v.mu.Lock()
	mergeUpdate(&v.pending, update)
	update.ApplyTo(&v.current)

	superseded := v.handle
	v.handle = handle

	if v.timer != nil {
		v.timer.Stop()
	}
	v.timer = time.AfterFunc(v.debounce, v.flushExpired)
	v.mu.Unlock()

	if superseded != nil {
		superseded.complete(models.ViewState{}, ErrSuperseded)
	}

	return handle
}

// flushExpired runs in the timer goroutine when the debounce delay elapses
// without further saves.
func (v *viewStateSync) flushExpired() {
	update, handle, ok := v.takePending()
	if !ok {
		return
	}

	state, err := v.flush(context.Background(), update)
	handle.complete(state, err)
}

// SaveImmediately implements [ViewStateSync].
func (v *viewStateSync) SaveImmediately(ctx context.Context, update models.ViewStateUpdate) (models.ViewState, error) {
	v.mu.Lock()
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
	mergeUpdate(&v.pending, update)
	update.ApplyTo(&v.current)

	combined := v.pending
	handle := v.handle
	v.pending = models.ViewStateUpdate{}
	v.handle = nil

	if combined.IsZero() {
		current := v.current
		v.mu.Unlock()
		// nothing buffered and nothing new: a flush would be a no-op
		if handle != nil {
			handle.complete(current, nil)
		}
		return current, nil
	}

	v.seq++
	combined.Seq = v.seq
	v.mu.Unlock()

	state, err := v.flush(ctx, combined)
	if handle != nil {
		handle.complete(state, err)
	}

	return state, err
}

// takePending atomically claims the buffered update. The second return is
// the pending waiter; ok is false when another path (SaveImmediately, Reset)
// already claimed the buffer.
func (v *viewStateSync) takePending() (models.ViewStateUpdate, *SaveHandle, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.handle == nil {
		return models.ViewStateUpdate{}, nil, false
	}

	update := v.pending
	handle := v.handle
	v.pending = models.ViewStateUpdate{}
	v.handle = nil
	v.timer = nil

	v.seq++
	update.Seq = v.seq

	return update, handle, true
}

// flush performs one remote write. flushMu keeps writes strictly ordered:
// a debounce flush and a SaveImmediately can race to this point, but the
// sequence number each carries was assigned under mu, so the server applies
// them newest-wins regardless of arrival order.
func (v *viewStateSync) flush(ctx context.Context, update models.ViewStateUpdate) (models.ViewState, error) {
	v.flushMu.Lock()
	defer v.flushMu.Unlock()

	state, err := v.adapter.SaveViewState(ctx, update)
	if err != nil {
		v.logger.Err(err).Uint64("seq", update.Seq).Msg("view state write failed")
		return models.ViewState{}, err
	}

	v.mu.Lock()
	v.committed = state
	noPending := v.handle == nil
	if noPending {
		// adopt server-side merges (e.g. a stale write that lost) only when
		// no newer local edits exist
		v.current = state
	}
	v.mu.Unlock()

	if cacheErr := v.cache.SaveCommittedState(ctx, state); cacheErr != nil {
		v.logger.Warn().Err(cacheErr).Msg("failed to cache committed view state")
	}

	return state, nil
}

// Reset implements [ViewStateSync].
func (v *viewStateSync) Reset(ctx context.Context) error {
	log := logger.FromContext(ctx)

	v.mu.Lock()
	if v.timer != nil {
		v.timer.Stop()
		v.timer = nil
	}
	handle := v.handle
	v.handle = nil
	v.pending = models.ViewStateUpdate{}

	defaults := models.DefaultViewState(time.Now())
	v.current = defaults
	v.committed = defaults
	v.mu.Unlock()

	if handle != nil {
		handle.complete(models.ViewState{}, ErrSuperseded)
	}

	// best effort: sign-out must not block on the remote
	if err := v.adapter.ResetViewState(ctx); err != nil {
		log.Warn().Err(err).Msg("remote view state reset failed")
	}
	if err := v.cache.ClearCommittedState(ctx); err != nil {
		log.Warn().Err(err).Msg("clearing cached view state failed")
	}

	return nil
}

// Current implements [ViewStateSync].
func (v *viewStateSync) Current() models.ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}

// IsDirty implements [ViewStateSync].
func (v *viewStateSync) IsDirty() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return !v.current.Equal(v.committed)
}

// mergeUpdate coalesces next into dst field-wise; for every field next
// carries, its value replaces whatever dst held.
func mergeUpdate(dst *models.ViewStateUpdate, next models.ViewStateUpdate) {
	if next.SelectedActivityID != nil {
		dst.SelectedActivityID = next.SelectedActivityID
	}
	if next.SortOption != nil {
		dst.SortOption = next.SortOption
	}
	if next.Filter != nil {
		dst.Filter = next.Filter
	}
	if next.DatePickerValue != nil {
		dst.DatePickerValue = next.DatePickerValue
	}
}
