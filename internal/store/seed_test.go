package store

import (
	"context"
	"errors"
	"testing"

	"github.com/asemenov/learnhub/internal/logger"
	"github.com/asemenov/learnhub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seedModuleRepo struct {
	existing []models.Module
	created  []models.Module
	listErr  error
}

func (r *seedModuleRepo) CreateModule(_ context.Context, module models.Module) (models.Module, error) {
	module.ModuleID = int64(len(r.created) + 1)
	r.created = append(r.created, module)
	return module, nil
}

func (r *seedModuleRepo) FindAllModules(_ context.Context) ([]models.Module, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.existing, nil
}

func (r *seedModuleRepo) FindModuleByID(_ context.Context, _ int64) (models.Module, error) {
	return models.Module{}, ErrModuleNotFound
}

type seedQuizRepo struct {
	created []models.Quiz
}

func (r *seedQuizRepo) CreateQuiz(_ context.Context, quiz models.Quiz) (models.Quiz, error) {
	quiz.QuizID = int64(len(r.created) + 1)
	r.created = append(r.created, quiz)
	return quiz, nil
}

func (r *seedQuizRepo) FindQuizzesByModule(_ context.Context, _ int64) ([]models.Quiz, error) {
	return []models.Quiz{}, nil
}

func TestSeedDemoContent_EmptyDatabase(t *testing.T) {
	ctx := context.Background()

	modules := &seedModuleRepo{}
	quizzes := &seedQuizRepo{}
	storages := &Storages{
		ModuleRepository: modules,
		QuizRepository:   quizzes,
	}

	require.NoError(t, SeedDemoContent(ctx, storages, logger.Nop()))

	assert.Len(t, modules.created, len(demoModules))
	assert.NotEmpty(t, quizzes.created)

	// every seeded quiz references the module it was created under
	for _, quiz := range quizzes.created {
		assert.NotZero(t, quiz.ModuleID)
	}
}

func TestSeedDemoContent_SkipsWhenModulesExist(t *testing.T) {
	ctx := context.Background()

	modules := &seedModuleRepo{existing: []models.Module{{ModuleID: 1, Title: "Already here"}}}
	quizzes := &seedQuizRepo{}
	storages := &Storages{
		ModuleRepository: modules,
		QuizRepository:   quizzes,
	}

	require.NoError(t, SeedDemoContent(ctx, storages, logger.Nop()))

	assert.Empty(t, modules.created)
	assert.Empty(t, quizzes.created)
}

func TestSeedDemoContent_ListError(t *testing.T) {
	ctx := context.Background()

	storages := &Storages{
		ModuleRepository: &seedModuleRepo{listErr: errors.New("connection reset")},
		QuizRepository:   &seedQuizRepo{},
	}

	assert.Error(t, SeedDemoContent(ctx, storages, logger.Nop()))
}
