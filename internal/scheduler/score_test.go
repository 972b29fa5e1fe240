package scheduler

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestDaysOverdue(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	past := func(d time.Duration) *time.Time {
		ts := now.Add(-d)
		return &ts
	}
	future := now.Add(48 * time.Hour)

	cases := []struct {
		name string
		due  *time.Time
		want int
	}{
		{name: "never_scheduled", due: nil, want: 0},
		{name: "future", due: &future, want: 0},
		{name: "due_now", due: past(0), want: 0},
		{name: "twelve_hours", due: past(12 * time.Hour), want: 0},
		{name: "thirty_six_hours", due: past(36 * time.Hour), want: 1},
		{name: "ten_days", due: past(10 * 24 * time.Hour), want: 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DaysOverdue(tc.due, now); got != tc.want {
				t.Fatalf("DaysOverdue = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestFinalScoreMonotonicInDaysOverdue(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	s := NewScorer(DefaultProfile())

	prev := -1.0
	for days := 0; days <= 30; days++ {
		due := now.Add(-time.Duration(days) * 24 * time.Hour)
		items := []EnrichedItem{{
			CandidateItem: CandidateItem{
				ID:                uuid.New(),
				FoundationalScore: 0.5,
				InfluenceScore:    0.5,
				NextDueAt:         &due,
			},
			Readiness: 0.5,
		}}
		ranked := s.Rank(items, now)
		if ranked[0].FinalScore < prev {
			t.Fatalf("final score decreased at %d days overdue: %v < %v", days, ranked[0].FinalScore, prev)
		}
		prev = ranked[0].FinalScore
	}
}

func TestRankOrderAndTiebreak(t *testing.T) {
	now := time.Now().UTC()
	s := NewScorer(DefaultProfile())

	strong := EnrichedItem{
		CandidateItem: CandidateItem{ID: uuid.New(), FoundationalScore: 0.9, CanonicalOrder: 50},
		Readiness:     1.0,
	}
	tieA := EnrichedItem{
		CandidateItem: CandidateItem{ID: uuid.New(), FoundationalScore: 0.2, CanonicalOrder: 10},
		Readiness:     1.0,
	}
	tieB := EnrichedItem{
		CandidateItem: CandidateItem{ID: uuid.New(), FoundationalScore: 0.2, CanonicalOrder: 20},
		Readiness:     1.0,
	}

	ranked := s.Rank([]EnrichedItem{tieB, strong, tieA}, now)
	if ranked[0].ID != strong.ID {
		t.Fatalf("highest score should rank first")
	}
	if ranked[1].ID != tieA.ID || ranked[2].ID != tieB.ID {
		t.Fatalf("ties must break by canonical order ascending")
	}
}

func TestRankDeterministic(t *testing.T) {
	now := time.Now().UTC()
	s := NewScorer(DefaultProfile())

	base := make([]EnrichedItem, 0, 20)
	for i := 0; i < 20; i++ {
		base = append(base, EnrichedItem{
			CandidateItem: CandidateItem{
				ID:                uuid.New(),
				FoundationalScore: float64(i%5) / 5,
				InfluenceScore:    float64(i%3) / 3,
				CanonicalOrder:    int64(i),
			},
			Readiness: 1.0,
		})
	}

	first := s.Rank(append([]EnrichedItem(nil), base...), now)
	second := s.Rank(append([]EnrichedItem(nil), base...), now)
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("rank order differs at %d across identical inputs", i)
		}
	}
}

func TestPartialMetadataScoresAsZero(t *testing.T) {
	now := time.Now().UTC()
	s := NewScorer(DefaultProfile())

	bare := EnrichedItem{CandidateItem: CandidateItem{ID: uuid.New()}}
	ranked := s.Rank([]EnrichedItem{bare}, now)
	if ranked[0].FinalScore != 0 {
		t.Fatalf("item with zeroed metadata and zero readiness should score 0, got %v", ranked[0].FinalScore)
	}
}
