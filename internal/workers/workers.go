// Package workers hosts the application's background processes.
//
// Currently the only worker is the session janitor, which periodically purges
// expired sessions from the session store so that abandoned logins do not
// accumulate for the whole process lifetime.
package workers

import (
	"context"
	"time"

	"github.com/asemenov/learnhub/internal/config"
	"github.com/asemenov/learnhub/internal/logger"
	"github.com/asemenov/learnhub/internal/store"
)

type Workers struct {
	SessionJanitor Worker
}

func NewWorkers(sessions store.SessionStore, cfg config.Workers, logger *logger.Logger) *Workers {
	logger.Info().Msg("creating new workers...")

	return &Workers{
		SessionJanitor: &sessionJanitor{
			sessions: sessions,
			interval: cfg.SessionCleanupInterval,
			logger:   logger,
		},
	}
}

// Run launches every worker and blocks until ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	w.SessionJanitor.Run(ctx)
}

// sessionJanitor deletes expired sessions from the session store on a fixed
// interval. Expired sessions are also rejected lazily on access, so the
// janitor exists purely to bound memory growth.
type sessionJanitor struct {
	sessions store.SessionStore
	interval time.Duration

	logger *logger.Logger
}

func (j *sessionJanitor) Run(ctx context.Context) {
	j.logger.Info().Dur("interval", j.interval).Msg("session janitor started")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("session janitor stopped")
			return
		case <-ticker.C:
			if purged := j.sessions.DeleteExpired(ctx); purged > 0 {
				j.logger.Info().Int("purged", purged).Msg("expired sessions purged")
			}
		}
	}
}
