package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	repos "github.com/lumenlearn/lumen-backend/internal/data/repos/learning"
	types "github.com/lumenlearn/lumen-backend/internal/domain"
	pkgerrors "github.com/lumenlearn/lumen-backend/internal/pkg/errors"
	"github.com/lumenlearn/lumen-backend/internal/platform/logger"
	"github.com/lumenlearn/lumen-backend/internal/scheduler"
)

// SessionService is the caller-facing surface around the scheduling core:
// it picks a profile through the bandit, generates the session, and feeds
// completed sessions back into the arm statistics.
type SessionService interface {
	Generate(ctx context.Context, userID, goalID uuid.UUID, sessionSize int, mode scheduler.SessionMode) ([]uuid.UUID, error)
	Complete(ctx context.Context, userID, goalID uuid.UUID, profileName string, mode scheduler.SessionMode, result scheduler.SessionResult) (float64, error)
}

type sessionService struct {
	engine    *scheduler.Engine
	optimizer *scheduler.Optimizer
	goalRepo  repos.GoalRepo
	traces    repos.SessionTraceRepo
	records   repos.SessionRecordRepo
	log       *logger.Logger
}

func NewSessionService(
	engine *scheduler.Engine,
	optimizer *scheduler.Optimizer,
	goalRepo repos.GoalRepo,
	traces repos.SessionTraceRepo,
	records repos.SessionRecordRepo,
	baseLog *logger.Logger,
) SessionService {
	return &sessionService{
		engine:    engine,
		optimizer: optimizer,
		goalRepo:  goalRepo,
		traces:    traces,
		records:   records,
		log:       baseLog.With("service", "SessionService"),
	}
}

func (s *sessionService) Generate(ctx context.Context, userID, goalID uuid.UUID, sessionSize int, mode scheduler.SessionMode) ([]uuid.UUID, error) {
	goal, err := s.goalRepo.GetByID(ctx, nil, goalID)
	if err != nil {
		return nil, fmt.Errorf("load goal: %w", err)
	}

	profileName := scheduler.DefaultProfileName
	profile := scheduler.DefaultProfile()
	if goal != nil {
		profileName, profile = s.optimizer.ChooseArm(ctx, userID, goal.GoalGroup)
	}

	now := time.Now().UTC()
	plan, err := s.engine.Plan(ctx, userID, goalID, profile, sessionSize, now, mode)
	if err != nil {
		return nil, err
	}

	s.writeTrace(ctx, userID, goalID, mode, profileName, sessionSize, plan)
	return plan.ItemIDs, nil
}

func (s *sessionService) Complete(ctx context.Context, userID, goalID uuid.UUID, profileName string, mode scheduler.SessionMode, result scheduler.SessionResult) (float64, error) {
	if _, ok := scheduler.Preset(profileName); !ok {
		return 0, fmt.Errorf("profile %q: %w", profileName, pkgerrors.ErrInvalidArgument)
	}

	reward := scheduler.Reward(result)

	goal, err := s.goalRepo.GetByID(ctx, nil, goalID)
	if err != nil {
		return 0, fmt.Errorf("load goal: %w", err)
	}
	if goal == nil {
		return 0, fmt.Errorf("goal %s: %w", goalID, pkgerrors.ErrNotFound)
	}
	if err := s.optimizer.UpdateArm(ctx, userID, goal.GoalGroup, profileName, reward); err != nil {
		return 0, fmt.Errorf("update bandit arm: %w", err)
	}

	record := &types.SessionRecord{
		ID:          uuid.New(),
		UserID:      userID,
		GoalID:      goalID,
		Mode:        mode.String(),
		ProfileName: profileName,
		Correct:     result.Correct,
		Total:       result.Total,
		Completed:   result.Completed,
		Presented:   result.Presented,
		Reward:      reward,
	}
	if err := s.records.Create(ctx, nil, record); err != nil {
		// Bookkeeping only; the arm update already landed.
		s.log.Warn("session record write failed", "user_id", userID, "goal_id", goalID, "error", err)
	}
	return reward, nil
}

func (s *sessionService) writeTrace(ctx context.Context, userID, goalID uuid.UUID, mode scheduler.SessionMode, profileName string, requested int, plan *scheduler.SessionPlan) {
	evidence, err := json.Marshal(map[string]interface{}{
		"candidates": plan.CandidateCount,
		"eligible":   plan.EligibleCount,
		"gated":      plan.GatedCount,
	})
	if err != nil {
		evidence = []byte("{}")
	}

	trace := &types.SessionTrace{
		ID:             uuid.New(),
		UserID:         userID,
		GoalID:         goalID,
		Mode:           mode.String(),
		ProfileName:    profileName,
		RequestedSize:  requested,
		ReturnedSize:   len(plan.ItemIDs),
		CandidateCount: plan.CandidateCount,
		EligibleCount:  plan.EligibleCount,
		GatedCount:     plan.GatedCount,
		Evidence:       datatypes.JSON(evidence),
	}
	if err := s.traces.Create(ctx, nil, trace); err != nil {
		s.log.Warn("session trace write failed", "user_id", userID, "goal_id", goalID, "error", err)
	}
}
