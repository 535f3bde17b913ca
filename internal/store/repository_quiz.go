package store

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/asemenov/learnhub/internal/logger"
	"github.com/asemenov/learnhub/models"
)

// optionsSeparator joins the ordered answer options into the single text
// column they are stored in. The encoding is private to this repository;
// domain code only ever sees []string.
const optionsSeparator = "\n"

// quizRepository is the SQL-backed implementation of [QuizRepository].
type quizRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewQuizRepository constructs a [QuizRepository] backed by the provided
// database connection and logger.
func NewQuizRepository(db *DB, logger *logger.Logger) QuizRepository {
	logger.Debug().Msg("creating quiz repository")
	return &quizRepository{
		db:     db,
		logger: logger,
	}
}

// CreateQuiz persists a new quiz question and returns it with the
// server-assigned QuizID. The referenced module must exist; the foreign key
// rejects orphan questions.
func (r *quizRepository) CreateQuiz(ctx context.Context, quiz models.Quiz) (models.Quiz, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(quiz.TableName()).
		Columns("module_id", "question", "options", "answer").
		Values(quiz.ModuleID, quiz.Question, encodeOptions(quiz.Options), quiz.Answer).
		Suffix("RETURNING quiz_id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*quizRepository.CreateQuiz").Msg("error: building query")
		return models.Quiz{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&quiz.QuizID); err != nil {
		log.Err(err).Str("func", "*quizRepository.CreateQuiz").Msg("error: scanning error")
		return models.Quiz{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return quiz, nil
}

// FindQuizzesByModule returns the questions belonging to the given module,
// ordered by ID. A module without questions yields an empty slice, not an
// error.
func (r *quizRepository) FindQuizzesByModule(ctx context.Context, moduleID int64) ([]models.Quiz, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("quiz_id", "module_id", "question", "options", "answer").
		From(models.Quiz{}.TableName()).
		Where(sq.Eq{"module_id": moduleID}).
		OrderBy("quiz_id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*quizRepository.FindQuizzesByModule").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*quizRepository.FindQuizzesByModule").Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	quizzes := make([]models.Quiz, 0)
	for rows.Next() {
		var quiz models.Quiz
		var encodedOptions string
		if err := rows.Scan(&quiz.QuizID, &quiz.ModuleID, &quiz.Question, &encodedOptions, &quiz.Answer); err != nil {
			log.Err(err).Str("func", "*quizRepository.FindQuizzesByModule").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		quiz.Options = decodeOptions(encodedOptions)
		quizzes = append(quizzes, quiz)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return quizzes, nil
}

// encodeOptions serializes the ordered option list into the stored text form.
func encodeOptions(options []string) string {
	return strings.Join(options, optionsSeparator)
}

// decodeOptions restores the ordered option list from the stored text form.
// An empty column decodes to an empty list.
func decodeOptions(encoded string) []string {
	if encoded == "" {
		return []string{}
	}

	return strings.Split(encoded, optionsSeparator)
}
