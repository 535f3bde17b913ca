// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Semenov

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/asemenov/learnhub/internal/logger"
	"github.com/asemenov/learnhub/internal/store"
	"github.com/asemenov/learnhub/models"
)

// quizService is the concrete implementation of QuizService: question
// retrieval plus the grading engine.
type quizService struct {
	moduleRepository store.ModuleRepository
	quizRepository   store.QuizRepository
	logger           *logger.Logger
}

func NewQuizService(moduleRepository store.ModuleRepository, quizRepository store.QuizRepository, logger *logger.Logger) QuizService {
	return &quizService{
		moduleRepository: moduleRepository,
		quizRepository:   quizRepository,
		logger:           logger,
	}
}

// QuestionsByModule returns the module and its questions. The module lookup
// runs first so that a missing module surfaces as store.ErrModuleNotFound
// rather than as an empty question list.
func (q *quizService) QuestionsByModule(ctx context.Context, moduleID int64) (models.Module, []models.Quiz, error) {
	module, err := q.moduleRepository.FindModuleByID(ctx, moduleID)
	if err != nil {
		return models.Module{}, nil, fmt.Errorf("module lookup failed: %w", err)
	}

	questions, err := q.quizRepository.FindQuizzesByModule(ctx, moduleID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("module_id", moduleID).Msg("question listing failed")
		return models.Module{}, nil, fmt.Errorf("question listing failed: %w", err)
	}

	return module, questions, nil
}

// Grade scores the submitted answers against the questions.
//
// total is always the question count. A question scores one point when a
// submission exists for its ID and equals the canonical answer
// case-insensitively; a missing submission simply scores zero. Submitted
// values are not checked against the question's option set, so free-text
// garbage fails the comparison rather than raising an error. No partial
// credit, no negative scores, no weighting.
func (q *quizService) Grade(questions []models.Quiz, answers map[int64]string) (score, total int) {
	total = len(questions)

	for _, question := range questions {
		submitted, ok := answers[question.QuizID]
		if !ok {
			continue
		}

		if strings.EqualFold(submitted, question.Answer) {
			score++
		}
	}

	return score, total
}
