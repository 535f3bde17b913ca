// Package store implements the persistence layer: SQL-backed repositories for
// users, learning modules and quiz questions over an embedded SQLite database
// (or PostgreSQL when configured), plus the in-memory session registry.
package store

import (
	"context"
	"fmt"

	"github.com/asemenov/learnhub/internal/config"
	"github.com/asemenov/learnhub/internal/logger"
)

// Storages aggregates every repository the service layer depends on.
type Storages struct {
	UserRepository   UserRepository
	ModuleRepository ModuleRepository
	QuizRepository   QuizRepository
	Sessions         SessionStore

	db *DB
}

// NewStorages connects the relational backend selected by the DSN, applies
// schema migrations idempotently, and wires all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting storage: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating storage: %w", err)
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		ModuleRepository: NewModuleRepository(db, log),
		QuizRepository:   NewQuizRepository(db, log),
		Sessions:         NewMemorySessionStore(log),
		db:               db,
	}, nil
}

// Close releases the underlying database connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}

func connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}
