package learning

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/lumenlearn/lumen-backend/internal/domain"
	"github.com/lumenlearn/lumen-backend/internal/platform/logger"
)

type ItemEdgeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.ItemEdge) ([]*types.ItemEdge, error)
	CreateIgnoreDuplicates(ctx context.Context, tx *gorm.DB, rows []*types.ItemEdge) (int, error)
	GetByChildItemIDs(ctx context.Context, tx *gorm.DB, childIDs []uuid.UUID, edgeType string) ([]*types.ItemEdge, error)
	GetByParentItemIDs(ctx context.Context, tx *gorm.DB, parentIDs []uuid.UUID, edgeType string) ([]*types.ItemEdge, error)
	FullDeleteByItemIDs(ctx context.Context, tx *gorm.DB, itemIDs []uuid.UUID) error
}

type itemEdgeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewItemEdgeRepo(db *gorm.DB, baseLog *logger.Logger) ItemEdgeRepo {
	return &itemEdgeRepo{db: db, log: baseLog.With("repo", "ItemEdgeRepo")}
}

func (r *itemEdgeRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.ItemEdge) ([]*types.ItemEdge, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return []*types.ItemEdge{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *itemEdgeRepo) CreateIgnoreDuplicates(ctx context.Context, tx *gorm.DB, rows []*types.ItemEdge) (int, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return 0, nil
	}

	res := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "parent_item_id"}, {Name: "child_item_id"}, {Name: "edge_type"}},
			DoNothing: true,
		}).
		Create(&rows)
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}

func (r *itemEdgeRepo) GetByChildItemIDs(ctx context.Context, tx *gorm.DB, childIDs []uuid.UUID, edgeType string) ([]*types.ItemEdge, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.ItemEdge
	if len(childIDs) == 0 {
		return results, nil
	}

	q := transaction.WithContext(ctx).Where("child_item_id IN ?", childIDs)
	if edgeType != "" {
		q = q.Where("edge_type = ?", edgeType)
	}
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *itemEdgeRepo) GetByParentItemIDs(ctx context.Context, tx *gorm.DB, parentIDs []uuid.UUID, edgeType string) ([]*types.ItemEdge, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.ItemEdge
	if len(parentIDs) == 0 {
		return results, nil
	}

	q := transaction.WithContext(ctx).Where("parent_item_id IN ?", parentIDs)
	if edgeType != "" {
		q = q.Where("edge_type = ?", edgeType)
	}
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *itemEdgeRepo) FullDeleteByItemIDs(ctx context.Context, tx *gorm.DB, itemIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(itemIDs) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Unscoped().
		Where("parent_item_id IN ? OR child_item_id IN ?", itemIDs, itemIDs).
		Delete(&types.ItemEdge{}).Error
}
