package app

import (
	"math/rand"
	"time"

	"github.com/lumenlearn/lumen-backend/internal/data"
	"github.com/lumenlearn/lumen-backend/internal/platform/logger"
	"github.com/lumenlearn/lumen-backend/internal/scheduler"
	"github.com/lumenlearn/lumen-backend/internal/services"
)

type Services struct {
	Session services.SessionService
}

func wireServices(cfg Config, repoSet Repos, log *logger.Logger) Services {
	log.Info("Wiring services...")

	store := data.NewStore(
		repoSet.Item,
		repoSet.ItemEdge,
		repoSet.UserItemState,
		repoSet.Goal,
		repoSet.BanditArm,
		cfg.ChunkSize,
		log,
	)

	engine := scheduler.NewEngine(store, cfg.Scheduler, log)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	optimizer := scheduler.NewOptimizer(store, rng, cfg.Scheduler, log)

	return Services{
		Session: services.NewSessionService(
			engine,
			optimizer,
			repoSet.Goal,
			repoSet.SessionTrace,
			repoSet.SessionRecord,
			log,
		),
	}
}
