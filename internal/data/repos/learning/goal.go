package learning

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/lumenlearn/lumen-backend/internal/domain"
	"github.com/lumenlearn/lumen-backend/internal/platform/logger"
)

type GoalRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.Goal) ([]*types.Goal, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Goal, error)
	AddItems(ctx context.Context, tx *gorm.DB, goalID uuid.UUID, itemIDs []uuid.UUID) error
	GetItemIDs(ctx context.Context, tx *gorm.DB, goalID uuid.UUID) ([]uuid.UUID, error)
}

type goalRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGoalRepo(db *gorm.DB, baseLog *logger.Logger) GoalRepo {
	return &goalRepo{db: db, log: baseLog.With("repo", "GoalRepo")}
}

func (r *goalRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Goal) ([]*types.Goal, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return []*types.Goal{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *goalRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Goal, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if id == uuid.Nil {
		return nil, nil
	}

	var row types.Goal
	err := transaction.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Find(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, nil
	}
	return &row, nil
}

func (r *goalRepo) AddItems(ctx context.Context, tx *gorm.DB, goalID uuid.UUID, itemIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if goalID == uuid.Nil || len(itemIDs) == 0 {
		return nil
	}

	rows := make([]*types.GoalItem, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		if itemID == uuid.Nil {
			continue
		}
		rows = append(rows, &types.GoalItem{ID: uuid.New(), GoalID: goalID, ItemID: itemID})
	}
	if len(rows) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "goal_id"}, {Name: "item_id"}},
			DoNothing: true,
		}).
		Create(&rows).Error
}

func (r *goalRepo) GetItemIDs(ctx context.Context, tx *gorm.DB, goalID uuid.UUID) ([]uuid.UUID, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var ids []uuid.UUID
	if goalID == uuid.Nil {
		return ids, nil
	}

	if err := transaction.WithContext(ctx).
		Model(&types.GoalItem{}).
		Where("goal_id = ?", goalID).
		Pluck("item_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
