package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/asemenov/learnhub/internal/logger"
	"github.com/asemenov/learnhub/models"
)

// moduleRepository is the SQL-backed implementation of [ModuleRepository].
// Modules are read-heavy: they are written once by seeding and then only
// listed and fetched by ID.
type moduleRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewModuleRepository constructs a [ModuleRepository] backed by the provided
// database connection and logger.
func NewModuleRepository(db *DB, logger *logger.Logger) ModuleRepository {
	logger.Debug().Msg("creating module repository")
	return &moduleRepository{
		db:     db,
		logger: logger,
	}
}

// CreateModule persists a new learning module and returns it with the
// server-assigned ModuleID.
func (r *moduleRepository) CreateModule(ctx context.Context, module models.Module) (models.Module, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(module.TableName()).
		Columns("title", "description", "content").
		Values(module.Title, module.Description, module.Content).
		Suffix("RETURNING module_id, title, description, content").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*moduleRepository.CreateModule").Msg("error: building query")
		return models.Module{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var saved models.Module
	if err := row.Scan(&saved.ModuleID, &saved.Title, &saved.Description, &saved.Content); err != nil {
		log.Err(err).Str("func", "*moduleRepository.CreateModule").Msg("error: scanning error")
		return models.Module{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}

// FindAllModules returns every learning module ordered by ID.
func (r *moduleRepository) FindAllModules(ctx context.Context) ([]models.Module, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("module_id", "title", "description", "content").
		From(models.Module{}.TableName()).
		OrderBy("module_id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*moduleRepository.FindAllModules").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*moduleRepository.FindAllModules").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	modules := make([]models.Module, 0)
	for rows.Next() {
		var module models.Module
		if err := rows.Scan(&module.ModuleID, &module.Title, &module.Description, &module.Content); err != nil {
			log.Err(err).Str("func", "*moduleRepository.FindAllModules").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		modules = append(modules, module)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return modules, nil
}

// FindModuleByID retrieves the module with the given primary key.
//
// Error handling:
//   - no matching row → [ErrModuleNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *moduleRepository) FindModuleByID(ctx context.Context, moduleID int64) (models.Module, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("module_id", "title", "description", "content").
		From(models.Module{}.TableName()).
		Where(sq.Eq{"module_id": moduleID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*moduleRepository.FindModuleByID").Msg("error: building query")
		return models.Module{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var found models.Module
	if err := row.Scan(&found.ModuleID, &found.Title, &found.Description, &found.Content); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Module{}, ErrModuleNotFound
		}

		log.Err(err).Str("func", "*moduleRepository.FindModuleByID").Msg("error: scanning error")
		return models.Module{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}
