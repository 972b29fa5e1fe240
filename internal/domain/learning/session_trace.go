package learning

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SessionTrace records one session-generation pass for audit and tuning.
// Evidence carries the gate/compose counters as jsonb.
type SessionTrace struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`

	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_session_trace,priority:1" json:"user_id"`
	GoalID uuid.UUID `gorm:"type:uuid;not null;index:idx_session_trace,priority:2" json:"goal_id"`

	Mode        string `gorm:"column:mode;not null;index" json:"mode"`
	ProfileName string `gorm:"column:profile_name;not null" json:"profile_name"`

	RequestedSize int `gorm:"column:requested_size;not null" json:"requested_size"`
	ReturnedSize  int `gorm:"column:returned_size;not null" json:"returned_size"`

	CandidateCount int `gorm:"column:candidate_count;not null;default:0" json:"candidate_count"`
	EligibleCount  int `gorm:"column:eligible_count;not null;default:0" json:"eligible_count"`
	GatedCount     int `gorm:"column:gated_count;not null;default:0" json:"gated_count"`

	Evidence datatypes.JSON `gorm:"column:evidence;type:jsonb" json:"evidence,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now();index" json:"created_at"`
}

func (SessionTrace) TableName() string { return "session_trace" }
