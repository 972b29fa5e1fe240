package scheduler

import "github.com/google/uuid"

// Gate drops items whose prerequisite parents are not yet mastered and
// computes readiness for the survivors. Gating runs once per scheduling pass;
// an item scheduled in the same pass does not unlock its children mid-pass.
type Gate struct {
	threshold float64
}

func NewGate(cfg Config) *Gate {
	return &Gate{threshold: cfg.MasteryThreshold}
}

// Apply filters items against the parent energy map. A parent missing from
// the map counts as energy 0. Items with no parents pass with readiness 1.0;
// the rest pass only when every parent meets the threshold, with readiness
// set to the mean parent energy.
func (g *Gate) Apply(items []EnrichedItem, parentEnergy map[uuid.UUID]float64) []EnrichedItem {
	eligible := make([]EnrichedItem, 0, len(items))
	for _, it := range items {
		if len(it.ParentIDs) == 0 {
			it.Readiness = 1.0
			eligible = append(eligible, it)
			continue
		}

		unsatisfied := 0
		sum := 0.0
		for _, pid := range it.ParentIDs {
			e := parentEnergy[pid]
			if e < g.threshold {
				unsatisfied++
			}
			sum += e
		}
		if unsatisfied > 0 {
			continue
		}

		it.Readiness = sum / float64(len(it.ParentIDs))
		eligible = append(eligible, it)
	}
	return eligible
}
