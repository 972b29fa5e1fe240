package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/lumenlearn/lumen-backend/internal/domain"
)

func SeedItem(tb testing.TB, ctx context.Context, tx *gorm.DB, key string, unitIndex, position int) *types.Item {
	tb.Helper()
	it := &types.Item{
		ID:                uuid.New(),
		Key:               key,
		Name:              key,
		UnitIndex:         unitIndex,
		Position:          position,
		FoundationalScore: 0.5,
		InfluenceScore:    0.5,
		DifficultyScore:   0.5,
	}
	if err := tx.WithContext(ctx).Create(it).Error; err != nil {
		tb.Fatalf("seed item: %v", err)
	}
	return it
}

func SeedGoal(tb testing.TB, ctx context.Context, tx *gorm.DB, name, goalGroup string, itemIDs []uuid.UUID) *types.Goal {
	tb.Helper()
	g := &types.Goal{
		ID:        uuid.New(),
		Name:      name,
		GoalGroup: goalGroup,
	}
	if err := tx.WithContext(ctx).Create(g).Error; err != nil {
		tb.Fatalf("seed goal: %v", err)
	}
	for _, itemID := range itemIDs {
		gi := &types.GoalItem{ID: uuid.New(), GoalID: g.ID, ItemID: itemID}
		if err := tx.WithContext(ctx).Create(gi).Error; err != nil {
			tb.Fatalf("seed goal item: %v", err)
		}
	}
	return g
}

func SeedEdge(tb testing.TB, ctx context.Context, tx *gorm.DB, parentID, childID uuid.UUID, edgeType string) *types.ItemEdge {
	tb.Helper()
	e := &types.ItemEdge{
		ID:           uuid.New(),
		ParentItemID: parentID,
		ChildItemID:  childID,
		EdgeType:     edgeType,
		Weight:       1,
	}
	if err := tx.WithContext(ctx).Create(e).Error; err != nil {
		tb.Fatalf("seed edge: %v", err)
	}
	return e
}

func SeedState(tb testing.TB, ctx context.Context, tx *gorm.DB, userID, itemID uuid.UUID, energy float64, nextDueAt *time.Time) *types.UserItemState {
	tb.Helper()
	st := &types.UserItemState{
		ID:        uuid.New(),
		UserID:    userID,
		ItemID:    itemID,
		Energy:    energy,
		NextDueAt: nextDueAt,
	}
	if err := tx.WithContext(ctx).Create(st).Error; err != nil {
		tb.Fatalf("seed user item state: %v", err)
	}
	return st
}
