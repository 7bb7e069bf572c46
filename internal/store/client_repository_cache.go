package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/akarpov/go-dash-sync/internal/logger"
	"github.com/akarpov/go-dash-sync/models"
)

// cacheRepository is the SQLite-backed implementation of [CacheRepository].
type cacheRepository struct {
	*DB
	logger *logger.Logger
}

// NewCacheRepository constructs a [CacheRepository] backed by the provided
// local database.
func NewCacheRepository(db *DB, logger *logger.Logger) CacheRepository {
	return &cacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (c *cacheRepository) SaveSession(ctx context.Context, session models.Session) error {
	if _, err := c.ExecContext(ctx, saveSession, session.UserID, session.Login, session.Token, session.SavedAt); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "cacheRepository.SaveSession").Msg("failed to persist session")
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (c *cacheRepository) GetSession(ctx context.Context) (models.Session, error) {
	var session models.Session
	row := c.QueryRowContext(ctx, getSession)
	if err := row.Scan(&session.UserID, &session.Login, &session.Token, &session.SavedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}
		return models.Session{}, fmt.Errorf("failed to read session: %w", err)
	}

	return session, nil
}

func (c *cacheRepository) ClearSession(ctx context.Context) error {
	if _, err := c.ExecContext(ctx, clearSession); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}

// SaveActivities replaces the whole cached list in one transaction so a
// failed refresh never leaves a half-written cache.
func (c *cacheRepository) SaveActivities(ctx context.Context, activities []models.Activity) error {
	log := logger.FromContext(ctx)

	tx, err := c.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err = tx.ExecContext(ctx, clearCachedActivities); err != nil {
		return fmt.Errorf("failed to clear cached activities: %w", err)
	}

	for _, a := range activities {
		if _, err = tx.ExecContext(ctx, saveCachedActivity,
			a.ID, a.Title, string(a.Status), a.Category, a.Priority, a.Score, a.DueDate, a.UpdatedAt,
		); err != nil {
			log.Err(err).Str("func", "cacheRepository.SaveActivities").Str("id", a.ID).Msg("failed to cache activity")
			return fmt.Errorf("failed to cache activity (id=%s): %w", a.ID, err)
		}
	}

	if _, err = tx.ExecContext(ctx, markActivitiesCached); err != nil {
		return fmt.Errorf("failed to mark activities cached: %w", err)
	}

	return tx.Commit()
}

func (c *cacheRepository) GetActivities(ctx context.Context) ([]models.Activity, error) {
	var cached int64
	if err := c.QueryRowContext(ctx, activitiesCached).Scan(&cached); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to read cache marker: %w", err)
	}

	rows, err := c.QueryContext(ctx, getCachedActivities)
	if err != nil {
		return nil, fmt.Errorf("failed to query cached activities: %w", err)
	}
	defer rows.Close()

	activities := make([]models.Activity, 0)
	for rows.Next() {
		var (
			a         models.Activity
			dueDate   sql.NullTime
			updatedAt sql.NullTime
		)
		if err = rows.Scan(&a.ID, &a.Title, &a.Status, &a.Category, &a.Priority, &a.Score, &dueDate, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cached activity: %w", err)
		}
		if dueDate.Valid {
			a.DueDate = &dueDate.Time
		}
		if updatedAt.Valid {
			a.UpdatedAt = &updatedAt.Time
		}
		activities = append(activities, a)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cached activities: %w", err)
	}

	return activities, nil
}

// SaveCommittedState stores the snapshot as a single JSON payload: the cache
// never needs to query individual view-state fields.
func (c *cacheRepository) SaveCommittedState(ctx context.Context, state models.ViewState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode committed state: %w", err)
	}

	if _, err = c.ExecContext(ctx, saveCommittedState, string(payload)); err != nil {
		return fmt.Errorf("failed to save committed state: %w", err)
	}

	return nil
}

func (c *cacheRepository) GetCommittedState(ctx context.Context) (models.ViewState, error) {
	var payload string
	if err := c.QueryRowContext(ctx, getCommittedState).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ViewState{}, ErrCacheMiss
		}
		return models.ViewState{}, fmt.Errorf("failed to read committed state: %w", err)
	}

	var state models.ViewState
	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		return models.ViewState{}, fmt.Errorf("failed to decode committed state: %w", err)
	}

	return state, nil
}

func (c *cacheRepository) ClearCommittedState(ctx context.Context) error {
	if _, err := c.ExecContext(ctx, clearCommittedState); err != nil {
		return fmt.Errorf("failed to clear committed state: %w", err)
	}

	return nil
}
