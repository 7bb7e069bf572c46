package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/akarpov/go-dash-sync/internal/logger"
	"github.com/akarpov/go-dash-sync/models"
)

const viewStateColumns = "selected_activity_id, sort_option, filter, date_picker_value, updated_at"

// viewStateRepository is the PostgreSQL-backed implementation of
// [ViewStateRepository]. One row per user in "dashboard_states"; the filter
// column is JSONB.
type viewStateRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewViewStateRepository constructs a [ViewStateRepository] backed by the
// provided database connection and logger.
func NewViewStateRepository(db *DB, logger *logger.Logger) ViewStateRepository {
	logger.Debug().Msg("creating view state repository")
	return &viewStateRepository{
		db:     db,
		logger: logger,
	}
}

// GetViewState returns the stored row for userID, or [ErrViewStateNotFound].
func (r *viewStateRepository) GetViewState(ctx context.Context, userID int64) (models.ViewState, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getViewState, userID)
	state, err := scanViewState(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ViewState{}, ErrViewStateNotFound
		}
		log.Err(err).Str("func", "*viewStateRepository.GetViewState").Int64("user_id", userID).Msg("error: reading view state failed")
		return models.ViewState{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return state, nil
}

// UpsertViewState applies a partial update inside a transaction: a missing
// row is first created from defaults, then the carried fields are written
// with a dynamically built UPDATE guarded by the sequence number. A write
// older than the stored row leaves it unchanged and returns the current row
// together with [ErrStaleUpdate].
func (r *viewStateRepository) UpsertViewState(ctx context.Context, userID int64, update models.ViewStateUpdate, now time.Time) (models.ViewState, error) {
	log := logger.FromContext(ctx)
	now = now.UTC()

	query, args, err := buildViewStateUpdateQuery(userID, update, now)
	if err != nil {
		return models.ViewState{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*viewStateRepository.UpsertViewState").Msg("error: beginning transaction failed")
		return models.ViewState{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	defaults := models.DefaultViewState(now)
	if _, err = tx.ExecContext(ctx, insertDefaultViewState, userID, string(defaults.SortOption), defaults.DatePickerValue, now); err != nil {
		log.Err(err).Str("func", "*viewStateRepository.UpsertViewState").Int64("user_id", userID).Msg("error: inserting default row failed")
		return models.ViewState{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	state, err := scanViewState(tx.QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", "*viewStateRepository.UpsertViewState").Int64("user_id", userID).Msg("error: applying update failed")
			return models.ViewState{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		// The row exists but holds a newer sequence number: a later write
		// has already been applied. Surface the winner unchanged.
		state, err = scanViewState(tx.QueryRowContext(ctx, getViewState, userID))
		if err != nil {
			return models.ViewState{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if err = tx.Commit(); err != nil {
			return models.ViewState{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		log.Debug().
			Str("func", "*viewStateRepository.UpsertViewState").
			Int64("user_id", userID).
			Uint64("seq", update.Seq).
			Msg("stale view state update dropped")
		return state, ErrStaleUpdate
	}

	if err = tx.Commit(); err != nil {
		return models.ViewState{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return state, nil
}

// DeleteViewState removes the stored row for userID. Nothing stored is not
// an error.
func (r *viewStateRepository) DeleteViewState(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteViewState, userID); err != nil {
		log.Err(err).Str("func", "*viewStateRepository.DeleteViewState").Int64("user_id", userID).Msg("error: deleting view state failed")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// buildViewStateUpdateQuery builds the dynamic partial UPDATE: only fields
// the update carries are written, plus the new sequence number and
// timestamp. The WHERE clause drops writes older than the stored row.
func buildViewStateUpdateQuery(userID int64, update models.ViewStateUpdate, now time.Time) (string, []any, error) {
	builder := sq.Update("dashboard_states").
		PlaceholderFormat(sq.Dollar).
		Set("seq", update.Seq).
		Set("updated_at", now)

	if update.SelectedActivityID != nil {
		builder = builder.Set("selected_activity_id", *update.SelectedActivityID)
	}
	if update.SortOption != nil {
		builder = builder.Set("sort_option", string(*update.SortOption))
	}
	if update.Filter != nil {
		f := *update.Filter
		f.Normalize()
		payload, err := json.Marshal(f)
		if err != nil {
			return "", nil, err
		}
		builder = builder.Set("filter", payload)
	}
	if update.DatePickerValue != nil {
		builder = builder.Set("date_picker_value", *update.DatePickerValue)
	}

	return builder.
		Where(sq.Eq{"user_id": userID}).
		Where(sq.LtOrEq{"seq": update.Seq}).
		Suffix("RETURNING " + viewStateColumns).
		ToSql()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanViewState(row rowScanner) (models.ViewState, error) {
	var (
		state     models.ViewState
		filter    []byte
		updatedAt time.Time
	)
	if err := row.Scan(&state.SelectedActivityID, &state.SortOption, &filter, &state.DatePickerValue, &updatedAt); err != nil {
		return models.ViewState{}, err
	}

	if len(filter) > 0 {
		if err := json.Unmarshal(filter, &state.Filter); err != nil {
			return models.ViewState{}, fmt.Errorf("%w: decoding filter: %w", ErrScanningRows, err)
		}
	}
	state.UpdatedAt = &updatedAt

	return state, nil
}
