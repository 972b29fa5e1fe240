package learning

import (
	"time"

	"github.com/google/uuid"
)

// BanditArm tracks Thompson-sampling statistics for one weighting profile
// within a (user, goal_group) partition. Successes/Failures start at 1.0,
// a uniform Beta(1,1) prior, and only ever grow through arm updates.
type BanditArm struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`

	UserID      uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_bandit_arm_identity,priority:1" json:"user_id"`
	GoalGroup   string    `gorm:"column:goal_group;not null;index;uniqueIndex:idx_bandit_arm_identity,priority:2" json:"goal_group"`
	ProfileName string    `gorm:"column:profile_name;not null;uniqueIndex:idx_bandit_arm_identity,priority:3" json:"profile_name"`

	Successes float64 `gorm:"column:successes;not null;default:1" json:"successes"`
	Failures  float64 `gorm:"column:failures;not null;default:1" json:"failures"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (BanditArm) TableName() string { return "bandit_arm" }
