package service

import (
	"github.com/asemenov/learnhub/internal/config"
	"github.com/asemenov/learnhub/internal/logger"
	"github.com/asemenov/learnhub/internal/store"
)

type Services struct {
	AuthService    AuthService
	ContentService ContentService
	QuizService    QuizService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, storages.Sessions, cfg, logger),
		ContentService: NewContentService(storages.ModuleRepository, logger),
		QuizService:    NewQuizService(storages.ModuleRepository, storages.QuizRepository, logger),
		AppInfoService: NewAppInfoService(cfg),
	}
}
