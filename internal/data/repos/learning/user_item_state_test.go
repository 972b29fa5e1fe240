package learning

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lumenlearn/lumen-backend/internal/data/repos/testutil"
)

func TestUserItemStateUpsert(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewUserItemStateRepo(db, testutil.Logger(t))
	ctx := context.Background()

	item := testutil.SeedItem(t, ctx, tx, "state-item", 0, 0)
	userID := uuid.New()
	due := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Microsecond)

	if err := repo.Upsert(ctx, tx, userID, item.ID, 0.2, nil); err != nil {
		t.Fatalf("Upsert insert: %v", err)
	}
	if err := repo.Upsert(ctx, tx, userID, item.ID, 0.6, &due); err != nil {
		t.Fatalf("Upsert update: %v", err)
	}

	states, err := repo.GetByUserAndItemIDs(ctx, tx, userID, []uuid.UUID{item.ID})
	if err != nil {
		t.Fatalf("GetByUserAndItemIDs: %v", err)
	}
	if len(states) != 1 {
		t.Fatalf("upsert must keep one row per (user, item), got %d", len(states))
	}
	st := states[0]
	if math.Abs(st.Energy-0.6) > 1e-9 {
		t.Fatalf("energy = %v, want 0.6", st.Energy)
	}
	if st.NextDueAt == nil || !st.NextDueAt.Equal(due) {
		t.Fatalf("next_due_at = %v, want %v", st.NextDueAt, due)
	}
	if st.LastSeenAt == nil {
		t.Fatalf("last_seen_at must be stamped on upsert")
	}
}

func TestUserItemStateLookupScopedToUser(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewUserItemStateRepo(db, testutil.Logger(t))
	ctx := context.Background()

	item := testutil.SeedItem(t, ctx, tx, "scoped-item", 0, 0)
	alice := uuid.New()
	bob := uuid.New()
	testutil.SeedState(t, ctx, tx, alice, item.ID, 0.9, nil)
	testutil.SeedState(t, ctx, tx, bob, item.ID, 0.1, nil)

	states, err := repo.GetByUserID(ctx, tx, alice)
	if err != nil {
		t.Fatalf("GetByUserID: %v", err)
	}
	if len(states) != 1 || math.Abs(states[0].Energy-0.9) > 1e-9 {
		t.Fatalf("lookup leaked across users: %+v", states)
	}

	none, err := repo.GetByUserAndItemIDs(ctx, tx, uuid.Nil, []uuid.UUID{item.ID})
	if err != nil || len(none) != 0 {
		t.Fatalf("nil user lookup must return empty, got %v / %v", none, err)
	}
}
