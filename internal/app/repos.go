package app

import (
	"gorm.io/gorm"

	repos "github.com/lumenlearn/lumen-backend/internal/data/repos/learning"
	"github.com/lumenlearn/lumen-backend/internal/platform/logger"
)

type Repos struct {
	Item          repos.ItemRepo
	ItemEdge      repos.ItemEdgeRepo
	Goal          repos.GoalRepo
	UserItemState repos.UserItemStateRepo
	BanditArm     repos.BanditArmRepo
	SessionTrace  repos.SessionTraceRepo
	SessionRecord repos.SessionRecordRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Item:          repos.NewItemRepo(db, log),
		ItemEdge:      repos.NewItemEdgeRepo(db, log),
		Goal:          repos.NewGoalRepo(db, log),
		UserItemState: repos.NewUserItemStateRepo(db, log),
		BanditArm:     repos.NewBanditArmRepo(db, log),
		SessionTrace:  repos.NewSessionTraceRepo(db, log),
		SessionRecord: repos.NewSessionRecordRepo(db, log),
	}
}
