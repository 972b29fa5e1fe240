package scheduler

import (
	"time"

	"github.com/google/uuid"
)

// SessionMode selects the candidate filter and composition strategy.
type SessionMode int

const (
	ModeRevision SessionMode = iota + 1
	ModeMixedLearning
)

func (m SessionMode) String() string {
	switch m {
	case ModeRevision:
		return "revision"
	case ModeMixedLearning:
		return "mixed_learning"
	default:
		return "unknown"
	}
}

// CandidateItem is one schedulable item as materialized by the store for a
// single scheduling pass. All score fields live in [0,1]; missing metadata
// arrives as 0 and scores accordingly. CanonicalOrder is a stable structural
// tiebreak key; ties on it are broken further by ID so ordering is total.
type CandidateItem struct {
	ID uuid.UUID

	FoundationalScore float64
	InfluenceScore    float64
	DifficultyScore   float64

	// MasteryEnergy is the user's retention proxy; 0 means the item is new.
	MasteryEnergy float64

	// NextDueAt is nil when the item was never scheduled.
	NextDueAt *time.Time

	CanonicalOrder int64
}

// IsNew reports whether the item has no mastery state yet.
func (c CandidateItem) IsNew() bool { return c.MasteryEnergy <= 0 }

// Due reports whether the item is due at the given instant.
func (c CandidateItem) Due(now time.Time) bool {
	return c.NextDueAt != nil && !c.NextDueAt.After(now)
}

// EnrichedItem is a candidate joined with its prerequisite parents plus the
// fields the pipeline computes (gate, then scorer).
type EnrichedItem struct {
	CandidateItem

	ParentIDs []uuid.UUID

	Readiness   float64
	DaysOverdue int
	FinalScore  float64
}

// ArmState mirrors one persisted bandit arm.
type ArmState struct {
	ProfileName string
	Successes   float64
	Failures    float64
}

// SessionResult summarizes one finished session for reward computation.
type SessionResult struct {
	Correct   int
	Total     int
	Completed int
	Presented int
}
