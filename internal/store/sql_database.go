package store

import (
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/asemenov/learnhub/internal/logger"
	"github.com/asemenov/learnhub/migrations"
)

// DB wraps the standard library connection pool with everything that differs
// between the supported backends: the goose dialect, the squirrel placeholder
// format, and the unique-violation classifier.
type DB struct {
	*sql.DB

	// builder is the squirrel statement builder pre-configured with the
	// placeholder format of the active backend (`?` for sqlite, `$n` for
	// postgres).
	builder sq.StatementBuilderType

	// dialect is the goose dialect name of the active backend.
	dialect string

	// isUniqueViolation reports whether err is the backend's unique
	// constraint violation. Used to map driver errors to sentinels.
	isUniqueViolation func(err error) bool

	logger *logger.Logger
}

// Migrate applies all pending schema migrations for the connected backend.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// isPostgresDSN reports whether dsn addresses a PostgreSQL server rather than
// a local SQLite file.
func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
