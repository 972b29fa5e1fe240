package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lumenlearn/lumen-backend/internal/platform/logger"
)

// CandidateStore supplies the raw material for one scheduling pass. The
// engine depends on it but never on storage types; implementations may chunk
// and parallelize lookups as long as results are keyed by identifier.
type CandidateStore interface {
	// Candidates returns the goal's items that are due or new for this user,
	// with mastery and due state already joined in.
	Candidates(ctx context.Context, userID, goalID uuid.UUID, now time.Time, mode SessionMode) ([]CandidateItem, error)
	// PrerequisiteParents maps each item to its prerequisite-kind parents.
	PrerequisiteParents(ctx context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error)
	// Energies returns mastery energy per item; missing entries mean 0.
	Energies(ctx context.Context, userID uuid.UUID, itemIDs []uuid.UUID) (map[uuid.UUID]float64, error)
}

// SessionPlan is the result of one generation pass plus its pipeline
// counters, which feed the persisted trace.
type SessionPlan struct {
	ItemIDs []uuid.UUID

	CandidateCount int
	EligibleCount  int
	GatedCount     int
}

// Engine wires gate, scorer and composer into the single session-generation
// entry point. The pipeline is a pure computation over fetched data and safe
// to run concurrently for different users.
type Engine struct {
	store CandidateStore
	cfg   Config
	gate  *Gate
	log   *logger.Logger
}

func NewEngine(store CandidateStore, cfg Config, baseLog *logger.Logger) *Engine {
	return &Engine{
		store: store,
		cfg:   cfg,
		gate:  NewGate(cfg),
		log:   baseLog.With("component", "SessionEngine"),
	}
}

// GenerateSession returns the ordered item identifiers for one session. A
// goal with no candidates yields an empty session and no error; store
// failures propagate.
func (e *Engine) GenerateSession(ctx context.Context, userID, goalID uuid.UUID, profile Profile, sessionSize int, now time.Time, mode SessionMode) ([]uuid.UUID, error) {
	plan, err := e.Plan(ctx, userID, goalID, profile, sessionSize, now, mode)
	if err != nil {
		return nil, err
	}
	return plan.ItemIDs, nil
}

// Plan runs fetch -> enrich -> gate -> score -> compose and reports the
// intermediate counts alongside the session.
func (e *Engine) Plan(ctx context.Context, userID, goalID uuid.UUID, profile Profile, sessionSize int, now time.Time, mode SessionMode) (*SessionPlan, error) {
	candidates, err := e.store.Candidates(ctx, userID, goalID, now, mode)
	if err != nil {
		return nil, fmt.Errorf("fetch candidates: %w", err)
	}
	if len(candidates) == 0 {
		e.log.Debug("no candidates for goal", "user_id", userID, "goal_id", goalID, "mode", mode.String())
		return &SessionPlan{}, nil
	}

	itemIDs := make([]uuid.UUID, len(candidates))
	for i, c := range candidates {
		itemIDs[i] = c.ID
	}
	parents, err := e.store.PrerequisiteParents(ctx, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch prerequisite parents: %w", err)
	}

	parentIDs := distinctParentIDs(parents)
	energies := map[uuid.UUID]float64{}
	if len(parentIDs) > 0 {
		energies, err = e.store.Energies(ctx, userID, parentIDs)
		if err != nil {
			return nil, fmt.Errorf("fetch parent energies: %w", err)
		}
	}

	enriched := make([]EnrichedItem, len(candidates))
	for i, c := range candidates {
		enriched[i] = EnrichedItem{CandidateItem: c, ParentIDs: parents[c.ID]}
	}

	eligible := e.gate.Apply(enriched, energies)
	ranked := NewScorer(profile).Rank(eligible, now)
	ids := NewComposer(e.cfg).Compose(ranked, mode, sessionSize, now)

	plan := &SessionPlan{
		ItemIDs:        ids,
		CandidateCount: len(candidates),
		EligibleCount:  len(eligible),
		GatedCount:     len(candidates) - len(eligible),
	}
	e.log.Debug("session planned",
		"user_id", userID,
		"goal_id", goalID,
		"mode", mode.String(),
		"candidates", plan.CandidateCount,
		"eligible", plan.EligibleCount,
		"gated", plan.GatedCount,
		"session_size", len(ids))
	return plan, nil
}

func distinctParentIDs(parents map[uuid.UUID][]uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	out := make([]uuid.UUID, 0, len(parents))
	for _, pids := range parents {
		for _, pid := range pids {
			if _, ok := seen[pid]; ok {
				continue
			}
			seen[pid] = struct{}{}
			out = append(out, pid)
		}
	}
	return out
}
