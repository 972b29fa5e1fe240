package data

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	repos "github.com/lumenlearn/lumen-backend/internal/data/repos/learning"
	types "github.com/lumenlearn/lumen-backend/internal/domain"
	"github.com/lumenlearn/lumen-backend/internal/platform/logger"
	"github.com/lumenlearn/lumen-backend/internal/scheduler"
)

const defaultChunkSize = 500

// Store adapts the gorm repositories to the scheduler's store interfaces.
// Large identifier sets are split into chunks and fetched concurrently;
// results are reassembled by identifier, so response order never matters.
type Store struct {
	items  repos.ItemRepo
	edges  repos.ItemEdgeRepo
	states repos.UserItemStateRepo
	goals  repos.GoalRepo
	arms   repos.BanditArmRepo

	chunkSize int
	log       *logger.Logger
}

func NewStore(items repos.ItemRepo, edges repos.ItemEdgeRepo, states repos.UserItemStateRepo, goals repos.GoalRepo, arms repos.BanditArmRepo, chunkSize int, baseLog *logger.Logger) *Store {
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	return &Store{
		items:     items,
		edges:     edges,
		states:    states,
		goals:     goals,
		arms:      arms,
		chunkSize: chunkSize,
		log:       baseLog.With("component", "SchedulerStore"),
	}
}

var _ scheduler.CandidateStore = (*Store)(nil)
var _ scheduler.ArmStore = (*Store)(nil)

// Candidates joins the goal's items with the user's mastery state and applies
// the mode's coarse filter: revision keeps known-and-due items, mixed keeps
// due-or-new ones.
func (s *Store) Candidates(ctx context.Context, userID, goalID uuid.UUID, now time.Time, mode scheduler.SessionMode) ([]scheduler.CandidateItem, error) {
	itemIDs, err := s.goals.GetItemIDs(ctx, nil, goalID)
	if err != nil {
		return nil, err
	}
	if len(itemIDs) == 0 {
		return nil, nil
	}

	itemsByID := make(map[uuid.UUID]*types.Item, len(itemIDs))
	statesByID := make(map[uuid.UUID]*types.UserItemState, len(itemIDs))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, chunk := range chunkIDs(itemIDs, s.chunkSize) {
		chunk := chunk
		g.Go(func() error {
			rows, err := s.items.GetByIDs(gctx, nil, chunk)
			if err != nil {
				return err
			}
			mu.Lock()
			for _, row := range rows {
				itemsByID[row.ID] = row
			}
			mu.Unlock()
			return nil
		})
		g.Go(func() error {
			rows, err := s.states.GetByUserAndItemIDs(gctx, nil, userID, chunk)
			if err != nil {
				return err
			}
			mu.Lock()
			for _, row := range rows {
				statesByID[row.ItemID] = row
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]scheduler.CandidateItem, 0, len(itemIDs))
	for _, id := range itemIDs {
		item := itemsByID[id]
		if item == nil {
			continue
		}
		c := scheduler.CandidateItem{
			ID:                item.ID,
			FoundationalScore: item.FoundationalScore,
			InfluenceScore:    item.InfluenceScore,
			DifficultyScore:   item.DifficultyScore,
			CanonicalOrder:    canonicalOrder(item),
		}
		if st := statesByID[id]; st != nil {
			c.MasteryEnergy = st.Energy
			c.NextDueAt = st.NextDueAt
		}

		switch mode {
		case scheduler.ModeRevision:
			if c.IsNew() || !c.Due(now) {
				continue
			}
		case scheduler.ModeMixedLearning:
			if !c.IsNew() && !c.Due(now) {
				continue
			}
		}
		out = append(out, c)
	}
	return out, nil
}

// PrerequisiteParents resolves prerequisite-kind edges for the given items.
func (s *Store) PrerequisiteParents(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	parents := make(map[uuid.UUID][]uuid.UUID, len(itemIDs))
	if len(itemIDs) == 0 {
		return parents, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, chunk := range chunkIDs(itemIDs, s.chunkSize) {
		chunk := chunk
		g.Go(func() error {
			edges, err := s.edges.GetByChildItemIDs(gctx, nil, chunk, types.EdgeTypePrerequisite)
			if err != nil {
				return err
			}
			mu.Lock()
			for _, e := range edges {
				parents[e.ChildItemID] = append(parents[e.ChildItemID], e.ParentItemID)
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return parents, nil
}

// Energies returns mastery energy per item; items without a state row are
// simply absent and read as zero.
func (s *Store) Energies(ctx context.Context, userID uuid.UUID, itemIDs []uuid.UUID) (map[uuid.UUID]float64, error) {
	energies := make(map[uuid.UUID]float64, len(itemIDs))
	if len(itemIDs) == 0 {
		return energies, nil
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for _, chunk := range chunkIDs(itemIDs, s.chunkSize) {
		chunk := chunk
		g.Go(func() error {
			rows, err := s.states.GetByUserAndItemIDs(gctx, nil, userID, chunk)
			if err != nil {
				return err
			}
			mu.Lock()
			for _, row := range rows {
				energies[row.ItemID] = row.Energy
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return energies, nil
}

func (s *Store) Arms(ctx context.Context, userID uuid.UUID, goalGroup string) ([]scheduler.ArmState, error) {
	rows, err := s.arms.GetByUserAndGroup(ctx, nil, userID, goalGroup)
	if err != nil {
		return nil, err
	}
	out := make([]scheduler.ArmState, 0, len(rows))
	for _, row := range rows {
		out = append(out, scheduler.ArmState{
			ProfileName: row.ProfileName,
			Successes:   row.Successes,
			Failures:    row.Failures,
		})
	}
	return out, nil
}

func (s *Store) InitArms(ctx context.Context, userID uuid.UUID, goalGroup string, profileNames []string) error {
	return s.arms.InitMissing(ctx, nil, userID, goalGroup, profileNames)
}

func (s *Store) AddOutcome(ctx context.Context, userID uuid.UUID, goalGroup, profileName string, reward float64) error {
	return s.arms.AddOutcome(ctx, nil, userID, goalGroup, profileName, reward)
}

// canonicalOrder packs the structural position into one sortable key.
func canonicalOrder(item *types.Item) int64 {
	return int64(item.UnitIndex)*1_000_000 + int64(item.Position)
}

func chunkIDs(ids []uuid.UUID, size int) [][]uuid.UUID {
	if size <= 0 || len(ids) <= size {
		return [][]uuid.UUID{ids}
	}
	chunks := make([][]uuid.UUID, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}
