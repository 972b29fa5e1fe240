package learning

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	EdgeTypePrerequisite = "prerequisite"
	EdgeTypeRelated      = "related"
)

// ItemEdge is a directed parent -> child edge. Only prerequisite-kind edges
// participate in gating; the prerequisite subgraph is kept acyclic at write
// time by the ingestion side.
type ItemEdge struct {
	ID uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`

	ParentItemID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_item_edge_identity,priority:1" json:"parent_item_id"`
	ChildItemID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_item_edge_identity,priority:2" json:"child_item_id"`

	EdgeType string `gorm:"column:edge_type;not null;default:'prerequisite';index;uniqueIndex:idx_item_edge_identity,priority:3" json:"edge_type"`

	Weight float64 `gorm:"column:weight;not null;default:1" json:"weight"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (ItemEdge) TableName() string { return "item_edge" }
