package domain

import (
	"github.com/lumenlearn/lumen-backend/internal/domain/learning"
)

const (
	EdgeTypePrerequisite = learning.EdgeTypePrerequisite
	EdgeTypeRelated      = learning.EdgeTypeRelated
)

type (
	Item          = learning.Item
	ItemEdge      = learning.ItemEdge
	Goal          = learning.Goal
	GoalItem      = learning.GoalItem
	UserItemState = learning.UserItemState
	BanditArm     = learning.BanditArm
	SessionTrace  = learning.SessionTrace
	SessionRecord = learning.SessionRecord
)
