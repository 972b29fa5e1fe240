package learning

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Item is a schedulable unit of content. UnitIndex/Position give the
// canonical presentation order inside a content tree.
type Item struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`

	Key  string `gorm:"column:key;not null;uniqueIndex" json:"key"`
	Name string `gorm:"column:name;not null" json:"name"`

	UnitIndex int `gorm:"column:unit_index;not null;default:0;index:idx_item_order,priority:1" json:"unit_index"`
	Position  int `gorm:"column:position;not null;default:0;index:idx_item_order,priority:2" json:"position"`

	FoundationalScore float64 `gorm:"column:foundational_score;not null;default:0" json:"foundational_score"` // 0..1
	InfluenceScore    float64 `gorm:"column:influence_score;not null;default:0" json:"influence_score"`       // 0..1
	DifficultyScore   float64 `gorm:"column:difficulty_score;not null;default:0" json:"difficulty_score"`     // 0..1

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Item) TableName() string { return "item" }
