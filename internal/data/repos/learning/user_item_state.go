package learning

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/lumenlearn/lumen-backend/internal/domain"
	"github.com/lumenlearn/lumen-backend/internal/platform/logger"
)

type UserItemStateRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.UserItemState) ([]*types.UserItemState, error)
	GetByUserAndItemIDs(ctx context.Context, tx *gorm.DB, userID uuid.UUID, itemIDs []uuid.UUID) ([]*types.UserItemState, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.UserItemState, error)
	Upsert(ctx context.Context, tx *gorm.DB, userID, itemID uuid.UUID, energy float64, nextDueAt *time.Time) error
}

type userItemStateRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserItemStateRepo(db *gorm.DB, baseLog *logger.Logger) UserItemStateRepo {
	return &userItemStateRepo{db: db, log: baseLog.With("repo", "UserItemStateRepo")}
}

func (r *userItemStateRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.UserItemState) ([]*types.UserItemState, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(rows) == 0 {
		return []*types.UserItemState{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *userItemStateRepo) GetByUserAndItemIDs(ctx context.Context, tx *gorm.DB, userID uuid.UUID, itemIDs []uuid.UUID) ([]*types.UserItemState, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.UserItemState
	if userID == uuid.Nil || len(itemIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND item_id IN ?", userID, itemIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *userItemStateRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.UserItemState, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.UserItemState
	if userID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *userItemStateRepo) Upsert(ctx context.Context, tx *gorm.DB, userID, itemID uuid.UUID, energy float64, nextDueAt *time.Time) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if userID == uuid.Nil || itemID == uuid.Nil {
		return nil
	}

	now := time.Now().UTC()
	row := &types.UserItemState{
		ID:         uuid.New(),
		UserID:     userID,
		ItemID:     itemID,
		Energy:     energy,
		NextDueAt:  nextDueAt,
		LastSeenAt: &now,
		UpdatedAt:  now,
	}
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "item_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"energy", "next_due_at", "last_seen_at", "updated_at",
			}),
		}).
		Create(row).Error
}
