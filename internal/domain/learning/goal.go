package learning

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Goal is a named learning objective. GoalGroup is the personalization
// partition key shared by goals of the same family.
type Goal struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`

	Name      string `gorm:"column:name;not null" json:"name"`
	GoalGroup string `gorm:"column:goal_group;not null;index" json:"goal_group"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Goal) TableName() string { return "goal" }

type GoalItem struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`

	GoalID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_goal_item_identity,priority:1" json:"goal_id"`
	ItemID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_goal_item_identity,priority:2" json:"item_id"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (GoalItem) TableName() string { return "goal_item" }
