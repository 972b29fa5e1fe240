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

type BanditArmRepo interface {
	GetByUserAndGroup(ctx context.Context, tx *gorm.DB, userID uuid.UUID, goalGroup string) ([]*types.BanditArm, error)
	// InitMissing creates arms at the Beta(1,1) prior for any profile that has
	// no row yet; existing rows are left untouched.
	InitMissing(ctx context.Context, tx *gorm.DB, userID uuid.UUID, goalGroup string, profileNames []string) error
	// AddOutcome folds one reward into an arm in a single upsert statement so
	// concurrent sessions never lose updates.
	AddOutcome(ctx context.Context, tx *gorm.DB, userID uuid.UUID, goalGroup, profileName string, reward float64) error
}

type banditArmRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBanditArmRepo(db *gorm.DB, baseLog *logger.Logger) BanditArmRepo {
	return &banditArmRepo{db: db, log: baseLog.With("repo", "BanditArmRepo")}
}

func (r *banditArmRepo) GetByUserAndGroup(ctx context.Context, tx *gorm.DB, userID uuid.UUID, goalGroup string) ([]*types.BanditArm, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.BanditArm
	if userID == uuid.Nil || goalGroup == "" {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND goal_group = ?", userID, goalGroup).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *banditArmRepo) InitMissing(ctx context.Context, tx *gorm.DB, userID uuid.UUID, goalGroup string, profileNames []string) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if userID == uuid.Nil || goalGroup == "" || len(profileNames) == 0 {
		return nil
	}

	rows := make([]*types.BanditArm, 0, len(profileNames))
	for _, name := range profileNames {
		if name == "" {
			continue
		}
		rows = append(rows, &types.BanditArm{
			ID:          uuid.New(),
			UserID:      userID,
			GoalGroup:   goalGroup,
			ProfileName: name,
			Successes:   1.0,
			Failures:    1.0,
		})
	}
	if len(rows) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "goal_group"}, {Name: "profile_name"}},
			DoNothing: true,
		}).
		Create(&rows).Error
}

func (r *banditArmRepo) AddOutcome(ctx context.Context, tx *gorm.DB, userID uuid.UUID, goalGroup, profileName string, reward float64) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if userID == uuid.Nil || goalGroup == "" || profileName == "" {
		return nil
	}

	now := time.Now().UTC()
	// A fresh insert folds the outcome into the Beta(1,1) prior.
	row := &types.BanditArm{
		ID:          uuid.New(),
		UserID:      userID,
		GoalGroup:   goalGroup,
		ProfileName: profileName,
		Successes:   1.0 + reward,
		Failures:    1.0 + (1 - reward),
		UpdatedAt:   now,
	}
	return transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "goal_group"}, {Name: "profile_name"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"successes":  gorm.Expr("bandit_arm.successes + ?", reward),
				"failures":   gorm.Expr("bandit_arm.failures + ?", 1-reward),
				"updated_at": now,
			}),
		}).
		Create(row).Error
}
