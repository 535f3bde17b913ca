// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Semenov

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/asemenov/learnhub/internal/logger"
	"github.com/asemenov/learnhub/internal/store"
	"github.com/asemenov/learnhub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks: store.ModuleRepository, store.QuizRepository
// ─────────────────────────────────────────────

type mockModuleRepository struct {
	createModuleFn   func(ctx context.Context, module models.Module) (models.Module, error)
	findAllModulesFn func(ctx context.Context) ([]models.Module, error)
	findModuleByIDFn func(ctx context.Context, moduleID int64) (models.Module, error)
}

func (m *mockModuleRepository) CreateModule(ctx context.Context, module models.Module) (models.Module, error) {
	if m.createModuleFn != nil {
		return m.createModuleFn(ctx, module)
	}
	return module, nil
}

func (m *mockModuleRepository) FindAllModules(ctx context.Context) ([]models.Module, error) {
	if m.findAllModulesFn != nil {
		return m.findAllModulesFn(ctx)
	}
	return nil, nil
}

func (m *mockModuleRepository) FindModuleByID(ctx context.Context, moduleID int64) (models.Module, error) {
	if m.findModuleByIDFn != nil {
		return m.findModuleByIDFn(ctx, moduleID)
	}
	return models.Module{}, store.ErrModuleNotFound
}

type mockQuizRepository struct {
	createQuizFn          func(ctx context.Context, quiz models.Quiz) (models.Quiz, error)
	findQuizzesByModuleFn func(ctx context.Context, moduleID int64) ([]models.Quiz, error)
}

func (m *mockQuizRepository) CreateQuiz(ctx context.Context, quiz models.Quiz) (models.Quiz, error) {
	if m.createQuizFn != nil {
		return m.createQuizFn(ctx, quiz)
	}
	return quiz, nil
}

func (m *mockQuizRepository) FindQuizzesByModule(ctx context.Context, moduleID int64) ([]models.Quiz, error) {
	if m.findQuizzesByModuleFn != nil {
		return m.findQuizzesByModuleFn(ctx, moduleID)
	}
	return []models.Quiz{}, nil
}

func newTestQuizService(modules *mockModuleRepository, quizzes *mockQuizRepository) QuizService {
	return NewQuizService(modules, quizzes, logger.Nop())
}

func TestQuestionsByModule_Success(t *testing.T) {
	ctx := context.Background()

	modules := &mockModuleRepository{
		findModuleByIDFn: func(_ context.Context, moduleID int64) (models.Module, error) {
			return models.Module{ModuleID: moduleID, Title: "Go Basics"}, nil
		},
	}
	quizzes := &mockQuizRepository{
		findQuizzesByModuleFn: func(_ context.Context, moduleID int64) ([]models.Quiz, error) {
			return []models.Quiz{
				{QuizID: 1, ModuleID: moduleID, Question: "Q1", Answer: "a"},
				{QuizID: 2, ModuleID: moduleID, Question: "Q2", Answer: "b"},
			}, nil
		},
	}
	svc := newTestQuizService(modules, quizzes)

	module, questions, err := svc.QuestionsByModule(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Go Basics", module.Title)
	assert.Len(t, questions, 2)
}

func TestQuestionsByModule_ModuleNotFound(t *testing.T) {
	ctx := context.Background()

	svc := newTestQuizService(&mockModuleRepository{}, &mockQuizRepository{})

	_, _, err := svc.QuestionsByModule(ctx, 404)
	assert.ErrorIs(t, err, store.ErrModuleNotFound)
}

func TestQuestionsByModule_EmptyModule(t *testing.T) {
	ctx := context.Background()

	modules := &mockModuleRepository{
		findModuleByIDFn: func(_ context.Context, moduleID int64) (models.Module, error) {
			return models.Module{ModuleID: moduleID}, nil
		},
	}
	svc := newTestQuizService(modules, &mockQuizRepository{})

	_, questions, err := svc.QuestionsByModule(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestQuestionsByModule_QuizLookupError(t *testing.T) {
	ctx := context.Background()

	modules := &mockModuleRepository{
		findModuleByIDFn: func(_ context.Context, moduleID int64) (models.Module, error) {
			return models.Module{ModuleID: moduleID}, nil
		},
	}
	quizzes := &mockQuizRepository{
		findQuizzesByModuleFn: func(_ context.Context, _ int64) ([]models.Quiz, error) {
			return nil, errors.New("connection reset")
		},
	}
	svc := newTestQuizService(modules, quizzes)

	_, _, err := svc.QuestionsByModule(ctx, 1)
	assert.Error(t, err)
}

func TestGrade(t *testing.T) {
	svc := newTestQuizService(&mockModuleRepository{}, &mockQuizRepository{})

	questions := []models.Quiz{
		{QuizID: 1, Question: "Q1", Answer: "b"},
		{QuizID: 2, Question: "Q2", Answer: "true"},
		{QuizID: 3, Question: "Q3", Answer: "var"},
	}

	tests := []struct {
		name      string
		questions []models.Quiz
		answers   map[int64]string
		wantScore int
		wantTotal int
	}{
		{
			name:      "all correct",
			questions: questions,
			answers:   map[int64]string{1: "b", 2: "true", 3: "var"},
			wantScore: 3,
			wantTotal: 3,
		},
		{
			name:      "case-insensitive match counts",
			questions: questions,
			answers:   map[int64]string{1: "B", 2: "TRUE", 3: "Var"},
			wantScore: 3,
			wantTotal: 3,
		},
		{
			name:      "wrong answer scores zero",
			questions: questions,
			answers:   map[int64]string{1: "c", 2: "true", 3: "var"},
			wantScore: 2,
			wantTotal: 3,
		},
		{
			name:      "missing answers count as incorrect",
			questions: questions,
			answers:   map[int64]string{1: "b"},
			wantScore: 1,
			wantTotal: 3,
		},
		{
			name:      "no answers at all",
			questions: questions,
			answers:   map[int64]string{},
			wantScore: 0,
			wantTotal: 3,
		},
		{
			name:      "nil answer map",
			questions: questions,
			answers:   nil,
			wantScore: 0,
			wantTotal: 3,
		},
		{
			name:      "unknown question ids are ignored",
			questions: questions,
			answers:   map[int64]string{1: "b", 99: "anything"},
			wantScore: 1,
			wantTotal: 3,
		},
		{
			name:      "no questions yields zero of zero",
			questions: []models.Quiz{},
			answers:   map[int64]string{1: "b"},
			wantScore: 0,
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, total := svc.Grade(tt.questions, tt.answers)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantTotal, total)
		})
	}
}
