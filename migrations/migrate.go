package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// dialectDirs maps a goose dialect name to the embedded directory holding the
// SQL written for that backend. The schemas are semantically identical; only
// the DDL flavour differs.
var dialectDirs = map[string]string{
	"sqlite3":  "sqlite",
	"postgres": "postgres",
}

// Migrate applies all pending schema migrations for the given dialect.
// It is idempotent: already-applied migrations are skipped by goose.
func Migrate(db *sql.DB, dialect string) error {
	dir, ok := dialectDirs[dialect]
	if !ok {
		return fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
