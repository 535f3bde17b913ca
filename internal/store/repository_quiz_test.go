package store

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/asemenov/learnhub/models"
)

func newTestQuizRepo(t *testing.T) (*quizRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, conn := newTestDB(t)
	repo := &quizRepository{
		db:     db,
		logger: db.logger,
	}
	return repo, mock, conn
}

func TestCreateQuiz_Success(t *testing.T) {
	repo, mock, db := newTestQuizRepo(t)
	defer db.Close()

	ctx := context.Background()
	quiz := models.Quiz{
		ModuleID: 1,
		Question: "What keyword declares a variable?",
		Options:  []string{"var", "let", "def"},
		Answer:   "var",
	}

	rows := sqlmock.NewRows([]string{"quiz_id"}).AddRow(5)

	mock.ExpectQuery("INSERT INTO quizzes").
		WithArgs(quiz.ModuleID, quiz.Question, "var\nlet\ndef", quiz.Answer).
		WillReturnRows(rows)

	created, err := repo.CreateQuiz(ctx, quiz)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.QuizID != 5 {
		t.Errorf("expected QuizID=5, got %d", created.QuizID)
	}
	if !reflect.DeepEqual(created.Options, quiz.Options) {
		t.Errorf("expected options preserved, got %v", created.Options)
	}
}

func TestFindQuizzesByModule_Success(t *testing.T) {
	repo, mock, db := newTestQuizRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"quiz_id", "module_id", "question", "options", "answer"}).
		AddRow(1, 1, "Q1", "a\nb\nc", "a").
		AddRow(2, 1, "Q2", "true\nfalse", "false")

	mock.ExpectQuery("SELECT quiz_id").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	quizzes, err := repo.FindQuizzesByModule(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quizzes) != 2 {
		t.Fatalf("expected 2 quizzes, got %d", len(quizzes))
	}
	if !reflect.DeepEqual(quizzes[0].Options, []string{"a", "b", "c"}) {
		t.Errorf("expected decoded options [a b c], got %v", quizzes[0].Options)
	}
	if quizzes[1].Answer != "false" {
		t.Errorf("expected answer false, got %s", quizzes[1].Answer)
	}
}

func TestFindQuizzesByModule_Empty(t *testing.T) {
	repo, mock, db := newTestQuizRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"quiz_id", "module_id", "question", "options", "answer"})

	mock.ExpectQuery("SELECT quiz_id").
		WithArgs(int64(9)).
		WillReturnRows(rows)

	quizzes, err := repo.FindQuizzesByModule(ctx, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(quizzes) != 0 {
		t.Fatalf("expected no quizzes, got %d", len(quizzes))
	}
	if quizzes == nil {
		t.Error("expected empty slice, got nil")
	}
}

func TestFindQuizzesByModule_QueryError(t *testing.T) {
	repo, mock, db := newTestQuizRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT quiz_id").
		WithArgs(int64(1)).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.FindQuizzesByModule(ctx, 1)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestEncodeDecodeOptions(t *testing.T) {
	tests := []struct {
		name    string
		options []string
		encoded string
	}{
		{name: "several options", options: []string{"a", "b", "c"}, encoded: "a\nb\nc"},
		{name: "single option", options: []string{"only"}, encoded: "only"},
		{name: "no options", options: []string{}, encoded: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := encodeOptions(tt.options)
			if got != tt.encoded {
				t.Errorf("encodeOptions(%v) = %q, want %q", tt.options, got, tt.encoded)
			}

			back := decodeOptions(tt.encoded)
			if !reflect.DeepEqual(back, tt.options) {
				t.Errorf("decodeOptions(%q) = %v, want %v", tt.encoded, back, tt.options)
			}
		})
	}
}
