package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/asemenov/learnhub/internal/config"
	"github.com/asemenov/learnhub/internal/logger"
)

// NewConnectPostgres opens a PostgreSQL connection pool for the DSN in cfg.
// It is used when the configured DSN carries a postgres URL scheme; the
// embedded SQLite backend remains the default.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:                conn,
		builder:           sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
		dialect:           "postgres",
		isUniqueViolation: postgresUniqueViolation,
		logger:            log,
	}

	return db, nil
}

// postgresUniqueViolation reports whether err is a PostgreSQL unique
// constraint violation (SQLSTATE 23505).
func postgresUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	return false
}
