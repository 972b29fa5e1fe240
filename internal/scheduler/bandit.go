package scheduler

import (
	"context"
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/lumenlearn/lumen-backend/internal/platform/logger"
)

// ArmStore persists bandit arm statistics per (user, goal_group, profile).
type ArmStore interface {
	Arms(ctx context.Context, userID uuid.UUID, goalGroup string) ([]ArmState, error)
	// InitArms creates missing arms at the uniform Beta(1,1) prior without
	// touching existing rows.
	InitArms(ctx context.Context, userID uuid.UUID, goalGroup string, profileNames []string) error
	// AddOutcome atomically adds reward to successes and (1-reward) to
	// failures for one arm, creating it at the prior when absent.
	AddOutcome(ctx context.Context, userID uuid.UUID, goalGroup, profileName string, reward float64) error
}

// Optimizer picks a weighting profile per (user, goal group) with Thompson
// Sampling over Beta-distributed arms. Personalization is best-effort: every
// failure path degrades to the safe default instead of erroring, so session
// generation is never blocked.
type Optimizer struct {
	store      ArmStore
	rng        *rand.Rand
	blendRatio float64
	log        *logger.Logger
}

// NewOptimizer builds an optimizer around an injected random source. The rng
// must not be shared with other goroutines.
func NewOptimizer(store ArmStore, rng *rand.Rand, cfg Config, baseLog *logger.Logger) *Optimizer {
	return &Optimizer{
		store:      store,
		rng:        rng,
		blendRatio: cfg.BlendRatio,
		log:        baseLog.With("component", "BanditOptimizer"),
	}
}

// ChooseArm samples every preset's Beta posterior and returns the winning
// preset name together with its profile blended against the safe default.
func (o *Optimizer) ChooseArm(ctx context.Context, userID uuid.UUID, goalGroup string) (string, Profile) {
	arms, err := o.store.Arms(ctx, userID, goalGroup)
	if err != nil {
		o.log.Warn("arm lookup failed, falling back to default profile",
			"user_id", userID, "goal_group", goalGroup, "error", err)
		return DefaultProfileName, DefaultProfile()
	}

	known := make(map[string]ArmState, len(arms))
	for _, a := range arms {
		if _, ok := Preset(a.ProfileName); ok {
			known[a.ProfileName] = a
		}
	}

	names := PresetNames()
	if len(known) == 0 {
		if err := o.store.InitArms(ctx, userID, goalGroup, names); err != nil {
			o.log.Warn("arm init failed, sampling from in-memory prior",
				"user_id", userID, "goal_group", goalGroup, "error", err)
		}
	}
	// Presets without a persisted row sample from the uniform prior.
	for _, n := range names {
		if _, ok := known[n]; !ok {
			known[n] = ArmState{ProfileName: n, Successes: 1, Failures: 1}
		}
	}

	best := DefaultProfileName
	bestSample := math.Inf(-1)
	for _, n := range names {
		a := known[n]
		s := sampleBeta(o.rng, a.Successes, a.Failures)
		if s > bestSample {
			best = n
			bestSample = s
		}
	}

	chosen, _ := Preset(best)
	return best, o.Blend(chosen)
}

// Blend mixes the chosen profile with the safe default at the configured
// ratio.
func (o *Optimizer) Blend(chosen Profile) Profile {
	return BlendProfiles(chosen, DefaultProfile(), o.blendRatio)
}

// Reward scores a finished session: 60% accuracy, 40% completion, clamped to
// [0,1]. Zero denominators count as full misses rather than dividing by zero.
func Reward(res SessionResult) float64 {
	accuracy := float64(res.Correct) / math.Max(float64(res.Total), 1)
	completion := float64(res.Completed) / math.Max(float64(res.Presented), 1)
	r := 0.6*accuracy + 0.4*completion
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

// UpdateArm feeds a reward back into one arm: successes grow by reward,
// failures by its complement.
func (o *Optimizer) UpdateArm(ctx context.Context, userID uuid.UUID, goalGroup, profileName string, reward float64) error {
	if reward < 0 {
		reward = 0
	}
	if reward > 1 {
		reward = 1
	}
	return o.store.AddOutcome(ctx, userID, goalGroup, profileName, reward)
}
