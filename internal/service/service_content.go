package service

import (
	"context"
	"fmt"

	"github.com/asemenov/learnhub/internal/logger"
	"github.com/asemenov/learnhub/internal/store"
	"github.com/asemenov/learnhub/models"
)

// contentService is the concrete implementation of ContentService. It is a
// thin read layer over the module repository.
type contentService struct {
	moduleRepository store.ModuleRepository
	logger           *logger.Logger
}

func NewContentService(moduleRepository store.ModuleRepository, logger *logger.Logger) ContentService {
	return &contentService{
		moduleRepository: moduleRepository,
		logger:           logger,
	}
}

// AllModules returns every learning module ordered by ID.
func (c *contentService) AllModules(ctx context.Context) ([]models.Module, error) {
	modules, err := c.moduleRepository.FindAllModules(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("module listing failed")
		return nil, fmt.Errorf("module listing failed: %w", err)
	}

	return modules, nil
}

// ModuleByID returns the module with the given ID or store.ErrModuleNotFound.
func (c *contentService) ModuleByID(ctx context.Context, moduleID int64) (models.Module, error) {
	module, err := c.moduleRepository.FindModuleByID(ctx, moduleID)
	if err != nil {
		return models.Module{}, fmt.Errorf("module lookup failed: %w", err)
	}

	return module, nil
}
