package scheduler

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Composer turns a globally-ranked candidate list into an ordered session.
// Buckets never re-sort: within a bucket and during backfill the global rank
// order from the scorer is preserved.
type Composer struct {
	cfg Config
}

func NewComposer(cfg Config) *Composer {
	return &Composer{cfg: cfg}
}

// Compose applies the mode's candidate filter, buckets the survivors, fills
// each bucket up to its ratio target and backfills shortfalls from the merged
// remainder. The result holds at most sessionSize identifiers.
func (c *Composer) Compose(ranked []EnrichedItem, mode SessionMode, sessionSize int, now time.Time) []uuid.UUID {
	if sessionSize <= 0 {
		return nil
	}

	pool := c.filterByMode(ranked, mode, now)
	if len(pool) == 0 {
		return nil
	}

	if mode == ModeRevision {
		head := c.cfg.HeadSliceFactor * sessionSize
		if head > 0 && len(pool) > head {
			pool = pool[:head]
		}
	}

	ratios := c.bandRatios(mode)
	targets := bandTargets(ratios, sessionSize)

	buckets := make([][]int, len(ratios))
	for idx, it := range pool {
		b := c.bandIndex(it, mode)
		buckets[b] = append(buckets[b], idx)
	}

	selected := make([]bool, len(pool))
	picked := 0
	for b, bucket := range buckets {
		take := targets[b]
		for _, idx := range bucket {
			if take == 0 {
				break
			}
			selected[idx] = true
			picked++
			take--
		}
	}

	// Shortfall backfill: walk the merged pool in global rank order.
	for idx := range pool {
		if picked >= sessionSize {
			break
		}
		if selected[idx] {
			continue
		}
		selected[idx] = true
		picked++
	}

	// The session is presented in global rank order, not bucket order.
	out := make([]uuid.UUID, 0, picked)
	for idx, ok := range selected {
		if ok {
			out = append(out, pool[idx].ID)
		}
	}
	return out
}

func (c *Composer) filterByMode(ranked []EnrichedItem, mode SessionMode, now time.Time) []EnrichedItem {
	out := make([]EnrichedItem, 0, len(ranked))
	for _, it := range ranked {
		switch mode {
		case ModeRevision:
			if !it.IsNew() && it.Due(now) {
				out = append(out, it)
			}
		case ModeMixedLearning:
			if it.Due(now) || it.IsNew() {
				out = append(out, it)
			}
		}
	}
	return out
}

func (c *Composer) bandRatios(mode SessionMode) []float64 {
	if mode == ModeRevision {
		r := c.cfg.Revision
		return []float64{r.Easy, r.Medium, r.Hard}
	}
	m := c.cfg.Mixed
	return []float64{m.New, m.AlmostMastered, m.AlmostThere, m.Struggling, m.ReallyStruggling}
}

func (c *Composer) bandIndex(it EnrichedItem, mode SessionMode) int {
	if mode == ModeRevision {
		switch {
		case it.DifficultyScore < c.cfg.EasyMax:
			return 0
		case it.DifficultyScore < c.cfg.MediumMax:
			return 1
		default:
			return 2
		}
	}
	e := it.MasteryEnergy
	switch {
	case e <= 0:
		return 0 // new
	case e > 0.7:
		return 1 // almost mastered
	case e > 0.4:
		return 2 // almost there
	case e > 0.2:
		return 3 // struggling
	default:
		return 4 // really struggling
	}
}

// bandTargets rounds each band's share of sessionSize in declared order,
// capping the running total so rounding error can never push the sum past
// sessionSize.
func bandTargets(ratios []float64, sessionSize int) []int {
	targets := make([]int, len(ratios))
	used := 0
	for i, r := range ratios {
		t := int(math.Round(r * float64(sessionSize)))
		if remaining := sessionSize - used; t > remaining {
			t = remaining
		}
		if t < 0 {
			t = 0
		}
		targets[i] = t
		used += t
	}
	return targets
}
