package store

import (
	"context"
	"fmt"

	"github.com/akarpov/go-dash-sync/internal/config"
	"github.com/akarpov/go-dash-sync/internal/logger"
)

// ClientStorages groups the client-side repositories into a single value
// passed to the client service layer.
type ClientStorages struct {
	Cache CacheRepository
}

// NewClientStorages opens the local SQLite cache (creating the file and
// schema if needed) and wires the cache repository.
func NewClientStorages(ctx context.Context, cfg config.Cache, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		Cache: NewCacheRepository(db, log),
	}, nil
}
