package handler

import (
	"github.com/asemenov/learnhub/internal/config"
	"github.com/asemenov/learnhub/internal/handler/http"
	"github.com/asemenov/learnhub/internal/logger"
	"github.com/asemenov/learnhub/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
