package learning

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/lumenlearn/lumen-backend/internal/data/repos/testutil"
	types "github.com/lumenlearn/lumen-backend/internal/domain"
)

func TestItemEdgeCreateIgnoreDuplicates(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewItemEdgeRepo(db, testutil.Logger(t))
	ctx := context.Background()

	parent := testutil.SeedItem(t, ctx, tx, "edge-parent", 0, 0)
	child := testutil.SeedItem(t, ctx, tx, "edge-child", 0, 1)

	first, err := repo.CreateIgnoreDuplicates(ctx, tx, []*types.ItemEdge{
		{ID: uuid.New(), ParentItemID: parent.ID, ChildItemID: child.ID, EdgeType: types.EdgeTypePrerequisite, Weight: 1},
	})
	if err != nil {
		t.Fatalf("CreateIgnoreDuplicates: %v", err)
	}
	if first != 1 {
		t.Fatalf("first insert affected %d rows, want 1", first)
	}

	second, err := repo.CreateIgnoreDuplicates(ctx, tx, []*types.ItemEdge{
		{ID: uuid.New(), ParentItemID: parent.ID, ChildItemID: child.ID, EdgeType: types.EdgeTypePrerequisite, Weight: 1},
	})
	if err != nil {
		t.Fatalf("CreateIgnoreDuplicates duplicate: %v", err)
	}
	if second != 0 {
		t.Fatalf("duplicate insert affected %d rows, want 0", second)
	}
}

func TestItemEdgeTypeFilter(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewItemEdgeRepo(db, testutil.Logger(t))
	ctx := context.Background()

	parent := testutil.SeedItem(t, ctx, tx, "filter-parent", 0, 0)
	child := testutil.SeedItem(t, ctx, tx, "filter-child", 0, 1)
	testutil.SeedEdge(t, ctx, tx, parent.ID, child.ID, types.EdgeTypePrerequisite)
	testutil.SeedEdge(t, ctx, tx, parent.ID, child.ID, types.EdgeTypeRelated)

	prereq, err := repo.GetByChildItemIDs(ctx, tx, []uuid.UUID{child.ID}, types.EdgeTypePrerequisite)
	if err != nil {
		t.Fatalf("GetByChildItemIDs: %v", err)
	}
	if len(prereq) != 1 || prereq[0].EdgeType != types.EdgeTypePrerequisite {
		t.Fatalf("prerequisite filter returned %d edges", len(prereq))
	}

	all, err := repo.GetByChildItemIDs(ctx, tx, []uuid.UUID{child.ID}, "")
	if err != nil {
		t.Fatalf("GetByChildItemIDs unfiltered: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("unfiltered lookup returned %d edges, want 2", len(all))
	}

	byParent, err := repo.GetByParentItemIDs(ctx, tx, []uuid.UUID{parent.ID}, types.EdgeTypeRelated)
	if err != nil {
		t.Fatalf("GetByParentItemIDs: %v", err)
	}
	if len(byParent) != 1 || byParent[0].EdgeType != types.EdgeTypeRelated {
		t.Fatalf("related filter returned %d edges", len(byParent))
	}
}

func TestItemEdgeFullDeleteByItemIDs(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewItemEdgeRepo(db, testutil.Logger(t))
	ctx := context.Background()

	a := testutil.SeedItem(t, ctx, tx, "del-a", 0, 0)
	b := testutil.SeedItem(t, ctx, tx, "del-b", 0, 1)
	c := testutil.SeedItem(t, ctx, tx, "del-c", 0, 2)
	testutil.SeedEdge(t, ctx, tx, a.ID, b.ID, types.EdgeTypePrerequisite)
	testutil.SeedEdge(t, ctx, tx, b.ID, c.ID, types.EdgeTypePrerequisite)

	// Deleting b removes every edge touching it, on either side.
	if err := repo.FullDeleteByItemIDs(ctx, tx, []uuid.UUID{b.ID}); err != nil {
		t.Fatalf("FullDeleteByItemIDs: %v", err)
	}

	remaining, err := repo.GetByChildItemIDs(ctx, tx, []uuid.UUID{b.ID, c.ID}, "")
	if err != nil {
		t.Fatalf("GetByChildItemIDs: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected all edges gone, found %d", len(remaining))
	}
}
