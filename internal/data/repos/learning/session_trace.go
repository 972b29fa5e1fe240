package learning

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/lumenlearn/lumen-backend/internal/domain"
	"github.com/lumenlearn/lumen-backend/internal/platform/logger"
)

type SessionTraceRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.SessionTrace) error
	GetByUserAndGoal(ctx context.Context, tx *gorm.DB, userID, goalID uuid.UUID, limit int) ([]*types.SessionTrace, error)
}

type sessionTraceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSessionTraceRepo(db *gorm.DB, baseLog *logger.Logger) SessionTraceRepo {
	return &sessionTraceRepo{db: db, log: baseLog.With("repo", "SessionTraceRepo")}
}

func (r *sessionTraceRepo) Create(ctx context.Context, tx *gorm.DB, row *types.SessionTrace) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if row == nil {
		return nil
	}

	return transaction.WithContext(ctx).Create(row).Error
}

func (r *sessionTraceRepo) GetByUserAndGoal(ctx context.Context, tx *gorm.DB, userID, goalID uuid.UUID, limit int) ([]*types.SessionTrace, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.SessionTrace
	if userID == uuid.Nil || goalID == uuid.Nil {
		return results, nil
	}

	q := transaction.WithContext(ctx).
		Where("user_id = ? AND goal_id = ?", userID, goalID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
