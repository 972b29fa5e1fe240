package scheduler

import (
	"testing"

	"github.com/google/uuid"
)

func enriched(id uuid.UUID, parents ...uuid.UUID) EnrichedItem {
	return EnrichedItem{
		CandidateItem: CandidateItem{ID: id},
		ParentIDs:     parents,
	}
}

func TestGateNoParents(t *testing.T) {
	g := NewGate(DefaultConfig())
	id := uuid.New()

	out := g.Apply([]EnrichedItem{enriched(id)}, nil)
	if len(out) != 1 {
		t.Fatalf("expected parentless item to pass, got %d items", len(out))
	}
	if out[0].Readiness != 1.0 {
		t.Fatalf("parentless readiness = %v, want exactly 1.0", out[0].Readiness)
	}
}

func TestGateThreshold(t *testing.T) {
	parent := uuid.New()
	child := uuid.New()

	cases := []struct {
		name      string
		energy    float64
		threshold float64
		pass      bool
	}{
		{name: "below_threshold_dropped", energy: 0.29, threshold: 0.3, pass: false},
		{name: "at_threshold_passes", energy: 0.3, threshold: 0.3, pass: true},
		{name: "above_threshold_passes", energy: 0.9, threshold: 0.3, pass: true},
		{name: "custom_threshold_dropped", energy: 0.45, threshold: 0.5, pass: false},
		{name: "custom_threshold_passes", energy: 0.5, threshold: 0.5, pass: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.MasteryThreshold = tc.threshold
			g := NewGate(cfg)

			out := g.Apply(
				[]EnrichedItem{enriched(child, parent)},
				map[uuid.UUID]float64{parent: tc.energy},
			)
			if got := len(out) == 1; got != tc.pass {
				t.Fatalf("pass=%v, want %v (energy=%v threshold=%v)", got, tc.pass, tc.energy, tc.threshold)
			}
		})
	}
}

func TestGateMissingEnergyCountsAsZero(t *testing.T) {
	g := NewGate(DefaultConfig())
	child := uuid.New()

	out := g.Apply([]EnrichedItem{enriched(child, uuid.New())}, map[uuid.UUID]float64{})
	if len(out) != 0 {
		t.Fatalf("item with unknown parent energy should be gated, got %d items", len(out))
	}
}

func TestGateReadinessIsMeanOfParents(t *testing.T) {
	g := NewGate(DefaultConfig())
	p1, p2 := uuid.New(), uuid.New()
	child := uuid.New()

	out := g.Apply(
		[]EnrichedItem{enriched(child, p1, p2)},
		map[uuid.UUID]float64{p1: 0.4, p2: 0.8},
	)
	if len(out) != 1 {
		t.Fatalf("expected item to pass, got %d items", len(out))
	}
	want := (0.4 + 0.8) / 2
	if got := out[0].Readiness; got != want {
		t.Fatalf("readiness = %v, want %v", got, want)
	}
}

// A -> C, B -> C, C -> D with A=0.5, B=0.6, C=0.1: C's parents are both
// satisfied, D's only parent is not.
func TestGateDAGScenario(t *testing.T) {
	g := NewGate(DefaultConfig())
	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	items := []EnrichedItem{
		enriched(c, a, b),
		enriched(d, c),
	}
	energies := map[uuid.UUID]float64{a: 0.5, b: 0.6, c: 0.1}

	out := g.Apply(items, energies)
	if len(out) != 1 {
		t.Fatalf("expected exactly C to pass, got %d items", len(out))
	}
	if out[0].ID != c {
		t.Fatalf("expected C (%s) to pass, got %s", c, out[0].ID)
	}
	if want := (0.5 + 0.6) / 2; out[0].Readiness != want {
		t.Fatalf("C readiness = %v, want %v", out[0].Readiness, want)
	}
}
