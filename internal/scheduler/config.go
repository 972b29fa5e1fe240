package scheduler

// RevisionSplit is the difficulty-band share of a revision session.
type RevisionSplit struct {
	Easy   float64
	Medium float64
	Hard   float64
}

// MixedSplit is the energy-band share of a mixed-learning session. Fields are
// listed in target-population order; the last band absorbs rounding slack.
type MixedSplit struct {
	New              float64
	AlmostMastered   float64
	AlmostThere      float64
	Struggling       float64
	ReallyStruggling float64
}

// Config carries every tunable the pipeline reads. Boundary values live here
// rather than as literals so tests can probe them directly.
type Config struct {
	// MasteryThreshold is the minimum parent energy for a prerequisite to
	// count as satisfied.
	MasteryThreshold float64

	// HeadSliceFactor bounds revision-mode bucketing to the top
	// HeadSliceFactor*sessionSize ranked candidates.
	HeadSliceFactor int

	// BlendRatio is the chosen-profile share when blending with the default.
	BlendRatio float64

	Revision RevisionSplit
	Mixed    MixedSplit

	// EasyMax / MediumMax split the difficulty axis for revision buckets.
	EasyMax   float64
	MediumMax float64
}

// DefaultConfig returns the production tuning.
func DefaultConfig() Config {
	return Config{
		MasteryThreshold: 0.3,
		HeadSliceFactor:  3,
		BlendRatio:       0.8,
		Revision: RevisionSplit{
			Easy:   0.6,
			Medium: 0.3,
			Hard:   0.1,
		},
		Mixed: MixedSplit{
			New:              0.1,
			AlmostMastered:   0.1,
			AlmostThere:      0.5,
			Struggling:       0.2,
			ReallyStruggling: 0.1,
		},
		EasyMax:   0.4,
		MediumMax: 0.7,
	}
}
