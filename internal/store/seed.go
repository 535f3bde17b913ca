package store

import (
	"context"
	"fmt"

	"github.com/asemenov/learnhub/internal/logger"
	"github.com/asemenov/learnhub/models"
)

// demo content inserted by SeedDemoContent. Learning modules are created
// out-of-band by design; this seeding path stands in for administrative
// tooling in development deployments.
var demoModules = []struct {
	module  models.Module
	quizzes []models.Quiz
}{
	{
		module: models.Module{
			Title:       "Go Basics",
			Description: "Variables, types and control flow in Go.",
			Content: "Go is a statically typed language. Variables are declared " +
				"with var or the := short form, and every declared variable must " +
				"be used. Control flow uses if, for and switch; for is the only " +
				"loop construct.",
		},
		quizzes: []models.Quiz{
			{
				Question: "Which keyword declares a variable with an inferred type?",
				Options:  []string{"A) var", "B) :=", "C) let", "D) def"},
				Answer:   "B",
			},
			{
				Question: "Which is the only loop construct in Go?",
				Options:  []string{"A) while", "B) do", "C) for", "D) loop"},
				Answer:   "C",
			},
		},
	},
	{
		module: models.Module{
			Title:       "Concurrency",
			Description: "Goroutines and channels.",
			Content: "Goroutines are lightweight threads managed by the Go " +
				"runtime, started with the go keyword. Channels provide typed " +
				"communication between goroutines; unbuffered channels " +
				"synchronize sender and receiver.",
		},
		quizzes: []models.Quiz{
			{
				Question: "Which keyword starts a goroutine?",
				Options:  []string{"A) go", "B) spawn", "C) async", "D) thread"},
				Answer:   "A",
			},
		},
	},
}

// SeedDemoContent inserts the demo modules and their quiz questions when the
// modules table is empty. Seeding is idempotent: a non-empty table is left
// untouched.
func SeedDemoContent(ctx context.Context, storages *Storages, log *logger.Logger) error {
	existing, err := storages.ModuleRepository.FindAllModules(ctx)
	if err != nil {
		return fmt.Errorf("error checking existing modules: %w", err)
	}

	if len(existing) > 0 {
		log.Debug().Int("modules", len(existing)).Msg("modules already present, skipping demo seed")
		return nil
	}

	for _, entry := range demoModules {
		module, err := storages.ModuleRepository.CreateModule(ctx, entry.module)
		if err != nil {
			return fmt.Errorf("error seeding module %q: %w", entry.module.Title, err)
		}

		for _, quiz := range entry.quizzes {
			quiz.ModuleID = module.ModuleID
			if _, err := storages.QuizRepository.CreateQuiz(ctx, quiz); err != nil {
				return fmt.Errorf("error seeding quiz for module %q: %w", module.Title, err)
			}
		}
	}

	log.Info().Int("modules", len(demoModules)).Msg("demo content seeded")
	return nil
}
