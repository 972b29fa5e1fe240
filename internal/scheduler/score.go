package scheduler

import (
	"math"
	"sort"
	"strings"
	"time"
)

// Scorer ranks gated items under one weighting profile. The ordering is
// total: final score desc, canonical order asc, then ID asc, so identical
// inputs always produce identical output.
type Scorer struct {
	profile Profile
}

func NewScorer(profile Profile) *Scorer {
	return &Scorer{profile: profile}
}

// DaysOverdue returns whole days elapsed past the due instant, floored at 0.
// A nil or future due time yields 0.
func DaysOverdue(nextDueAt *time.Time, now time.Time) int {
	if nextDueAt == nil || nextDueAt.After(now) {
		return 0
	}
	days := int(math.Floor(now.Sub(*nextDueAt).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// Rank computes urgency and learning potential per item and sorts the slice
// into final rank order.
func (s *Scorer) Rank(items []EnrichedItem, now time.Time) []EnrichedItem {
	w := s.profile
	for i := range items {
		it := &items[i]
		it.DaysOverdue = DaysOverdue(it.NextDueAt, now)

		urgency := 1 + w.Urgency*math.Log1p(float64(it.DaysOverdue))
		potential := w.Readiness*it.Readiness +
			w.Foundation*it.FoundationalScore +
			w.Influence*it.InfluenceScore
		it.FinalScore = urgency * potential
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.FinalScore != b.FinalScore {
			return a.FinalScore > b.FinalScore
		}
		if a.CanonicalOrder != b.CanonicalOrder {
			return a.CanonicalOrder < b.CanonicalOrder
		}
		return strings.Compare(a.ID.String(), b.ID.String()) < 0
	})
	return items
}
