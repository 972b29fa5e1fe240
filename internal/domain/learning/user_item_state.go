package learning

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserItemState holds per-user mastery over one item. Energy is the 0..1
// retention proxy; a missing row means the item is new.
type UserItemState struct {
	ID     uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_user_item_state,unique,priority:1" json:"user_id"`
	ItemID uuid.UUID `gorm:"type:uuid;not null;index:idx_user_item_state,unique,priority:2" json:"item_id"`

	Energy float64 `gorm:"column:energy;not null;default:0" json:"energy"` // 0..1

	NextDueAt  *time.Time `gorm:"column:next_due_at;index" json:"next_due_at,omitempty"`
	LastSeenAt *time.Time `gorm:"column:last_seen_at;index" json:"last_seen_at,omitempty"`

	Attempts int `gorm:"column:attempts;not null;default:0" json:"attempts"`
	Correct  int `gorm:"column:correct;not null;default:0" json:"correct"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (UserItemState) TableName() string { return "user_item_state" }
