package store

import (
	"context"
	"fmt"

	"github.com/akarpov/go-dash-sync/internal/config"
	"github.com/akarpov/go-dash-sync/internal/logger"
)

// Storages groups the server-side repositories into a single value passed to
// the service layer.
type Storages struct {
	UserRepository      UserRepository
	ViewStateRepository ViewStateRepository
	ActivityRepository  ActivityRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations, and wires
// all server repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:      NewUserRepository(db, log),
		ViewStateRepository: NewViewStateRepository(db, log),
		ActivityRepository:  NewActivityRepository(db, log),
	}, nil
}
