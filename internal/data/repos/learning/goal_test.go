package learning

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/lumenlearn/lumen-backend/internal/data/repos/testutil"
)

func TestGoalGetByID(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewGoalRepo(db, testutil.Logger(t))
	ctx := context.Background()

	seeded := testutil.SeedGoal(t, ctx, tx, "Unit 3 review", "grammar", nil)

	got, err := repo.GetByID(ctx, tx, seeded.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.GoalGroup != "grammar" {
		t.Fatalf("GetByID = %+v, want goal group %q", got, "grammar")
	}

	missing, err := repo.GetByID(ctx, tx, uuid.New())
	if err != nil {
		t.Fatalf("GetByID missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("missing goal must return nil, got %+v", missing)
	}
}

func TestGoalAddItemsIsIdempotent(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewGoalRepo(db, testutil.Logger(t))
	ctx := context.Background()

	a := testutil.SeedItem(t, ctx, tx, "goal-item-a", 0, 0)
	b := testutil.SeedItem(t, ctx, tx, "goal-item-b", 0, 1)
	goal := testutil.SeedGoal(t, ctx, tx, "Vocab sprint", "vocabulary", nil)

	if err := repo.AddItems(ctx, tx, goal.ID, []uuid.UUID{a.ID, b.ID}); err != nil {
		t.Fatalf("AddItems: %v", err)
	}
	if err := repo.AddItems(ctx, tx, goal.ID, []uuid.UUID{a.ID, b.ID}); err != nil {
		t.Fatalf("AddItems repeat: %v", err)
	}

	ids, err := repo.GetItemIDs(ctx, tx, goal.ID)
	if err != nil {
		t.Fatalf("GetItemIDs: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 memberships, got %d", len(ids))
	}
}
