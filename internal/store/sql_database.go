package store

import (
	"database/sql"

	"github.com/akarpov/go-dash-sync/internal/logger"
	"github.com/akarpov/go-dash-sync/migrations"
)

// DB wraps the standard connection pool with the store's logger. Both the
// server's Postgres connection and the client's SQLite cache use it.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies all pending embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
