package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/akarpov/go-dash-sync/internal/logger"
	"github.com/akarpov/go-dash-sync/models"
)

// activityRepository is the PostgreSQL-backed implementation of
// [ActivityRepository].
type activityRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewActivityRepository constructs an [ActivityRepository] backed by the
// provided database connection and logger.
func NewActivityRepository(db *DB, logger *logger.Logger) ActivityRepository {
	logger.Debug().Msg("creating activity repository")
	return &activityRepository{
		db:     db,
		logger: logger,
	}
}

// ListActivities returns all activities belonging to userID, due-date first.
func (r *activityRepository) ListActivities(ctx context.Context, userID int64) ([]models.Activity, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listActivities, userID)
	if err != nil {
		log.Err(err).Str("func", "*activityRepository.ListActivities").Int64("user_id", userID).Msg("error: querying activities failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	activities := make([]models.Activity, 0)
	for rows.Next() {
		var (
			a         models.Activity
			dueDate   sql.NullTime
			updatedAt sql.NullTime
		)
		if err = rows.Scan(&a.ID, &a.UserID, &a.Title, &a.Status, &a.Category, &a.Priority, &a.Score, &dueDate, &updatedAt); err != nil {
			log.Err(err).Str("func", "*activityRepository.ListActivities").Msg("error: scanning activity row failed")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
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
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return activities, nil
}
