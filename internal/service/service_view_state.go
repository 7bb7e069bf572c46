package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akarpov/go-dash-sync/internal/logger"
	"github.com/akarpov/go-dash-sync/internal/store"
	"github.com/akarpov/go-dash-sync/models"
)

// viewStateService is the concrete implementation of [ViewStateService].
type viewStateService struct {
	repository store.ViewStateRepository
	logger     *logger.Logger

	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

// NewViewStateService constructs a [ViewStateService] backed by the given
// repository.
func NewViewStateService(repository store.ViewStateRepository, logger *logger.Logger) ViewStateService {
	return &viewStateService{
		repository: repository,
		logger:     logger,
		now:        time.Now,
	}
}

// GetViewState returns the stored state for userID. A user who has never
// saved anything gets the documented defaults: no selection, default sort,
// no filters, date picker on today's UTC date.
func (s *viewStateService) GetViewState(ctx context.Context, userID int64) (models.ViewState, error) {
	state, err := s.repository.GetViewState(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrViewStateNotFound) {
			return models.DefaultViewState(s.now()), nil
		}
		return models.ViewState{}, fmt.Errorf("reading view state failed: %w", err)
	}

	return state, nil
}

// SaveViewState validates the partial update and applies it. Only carried
// fields are written; the merged row is returned. An update carrying no
// fields is a read: the current row (or defaults) comes back unchanged. A
// stale write (the stored row already holds a newer sequence number) is
// dropped and the current row returned unchanged, so retried or reordered
// writes converge on the newest state.
func (s *viewStateService) SaveViewState(ctx context.Context, userID int64, update models.ViewStateUpdate) (models.ViewState, error) {
	log := logger.FromContext(ctx)

	if update.IsZero() {
		return s.GetViewState(ctx, userID)
	}
	if err := validateUpdate(update); err != nil {
		return models.ViewState{}, err
	}

	state, err := s.repository.UpsertViewState(ctx, userID, update, s.now())
	if err != nil {
		if errors.Is(err, store.ErrStaleUpdate) {
			log.Debug().Int64("user_id", userID).Uint64("seq", update.Seq).Msg("dropping stale view state write")
			return state, nil
		}
		return models.ViewState{}, fmt.Errorf("saving view state failed: %w", err)
	}

	return state, nil
}

// ResetViewState deletes the stored state for userID.
func (s *viewStateService) ResetViewState(ctx context.Context, userID int64) error {
	if err := s.repository.DeleteViewState(ctx, userID); err != nil {
		return fmt.Errorf("resetting view state failed: %w", err)
	}

	return nil
}

func validateUpdate(update models.ViewStateUpdate) error {
	if update.SortOption != nil && !update.SortOption.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSortOption, *update.SortOption)
	}
	if update.DatePickerValue != nil && *update.DatePickerValue != "" {
		if err := validateDate(*update.DatePickerValue); err != nil {
			return err
		}
	}
	if update.Filter != nil {
		for _, d := range []string{update.Filter.DateFrom, update.Filter.DateTo} {
			if d == "" {
				continue
			}
			if err := validateDate(d); err != nil {
				return err
			}
		}
	}

	return nil
}

func validateDate(value string) error {
	if _, err := time.Parse(models.DateLayout, value); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return nil
}
