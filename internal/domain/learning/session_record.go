package learning

import (
	"time"

	"github.com/google/uuid"
)

// SessionRecord stores the outcome of one finished session together with the
// reward that was fed back into the bandit.
type SessionRecord struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`

	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_session_record,priority:1" json:"user_id"`
	GoalID uuid.UUID `gorm:"type:uuid;not null;index:idx_session_record,priority:2" json:"goal_id"`

	Mode        string `gorm:"column:mode;not null" json:"mode"`
	ProfileName string `gorm:"column:profile_name;not null;index" json:"profile_name"`

	Correct   int `gorm:"column:correct;not null;default:0" json:"correct"`
	Total     int `gorm:"column:total;not null;default:0" json:"total"`
	Completed int `gorm:"column:completed;not null;default:0" json:"completed"`
	Presented int `gorm:"column:presented;not null;default:0" json:"presented"`

	Reward float64 `gorm:"column:reward;not null;default:0" json:"reward"`

	CreatedAt time.Time `gorm:"not null;default:now();index" json:"created_at"`
}

func (SessionRecord) TableName() string { return "session_record" }
