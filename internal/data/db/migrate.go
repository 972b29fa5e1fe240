package db

import (
	types "github.com/lumenlearn/lumen-backend/internal/domain"
	"gorm.io/gorm"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		// Content graph
		&types.Item{},
		&types.ItemEdge{},
		&types.Goal{},
		&types.GoalItem{},

		// Per-user mastery
		&types.UserItemState{},

		// Personalization + session bookkeeping
		&types.BanditArm{},
		&types.SessionTrace{},
		&types.SessionRecord{},
	)
}
