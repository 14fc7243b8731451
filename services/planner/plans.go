package planner

import (
	"Gamehub/models"
	"Gamehub/services/groups"
	"Gamehub/utils"
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
)

// PlanInput is a weekend plan as submitted by its owner
type PlanInput struct {
	GameID              string
	StartTime           time.Time
	EndTime             time.Time
	WillingToJoinOthers bool
}

func (in PlanInput) validate() error {
	if err := utils.RequireNonEmpty("targetGameId", in.GameID); err != nil {
		return err
	}
	if in.StartTime.IsZero() || in.EndTime.IsZero() {
		return fmt.Errorf("%w: start and end time are required", utils.ErrValidation)
	}
	if !in.EndTime.After(in.StartTime) {
		return fmt.Errorf("%w: end time must be after start time", utils.ErrValidation)
	}
	return nil
}

func (s *Service) applyPlan(snap *models.Snapshot, plan *models.GamePlan, in PlanInput) error {
	game := models.FindGame(snap.Games, in.GameID)
	if game == nil {
		return fmt.Errorf("%w: game %s", utils.ErrNotFound, in.GameID)
	}
	plan.TargetGameID = game.ID
	plan.TargetGameName = game.Name
	plan.StartTime = in.StartTime
	plan.EndTime = in.EndTime
	plan.Date = utils.StartOfDay(in.StartTime.In(s.loc))
	plan.WillingToJoinOthers = in.WillingToJoinOthers
	return nil
}

// reconcile refreshes the derived groups from the snapshot's plans
func (s *Service) reconcile(snap *models.Snapshot) []models.GamePlan {
	derived, overflow := s.reconciler.Reconcile(snap.WeekendPlans, snap.GameGroups, snap.Games)
	snap.GameGroups = groups.Decorate(derived, snap.Users, snap.Games)
	if len(overflow) > 0 {
		s.logger.Debug("plans left out of full groups", zap.Int("count", len(overflow)))
	}
	return overflow
}

// CreatePlan records a weekend plan for userID and regroups
func (s *Service) CreatePlan(ctx context.Context, userID string, in PlanInput) (models.GamePlan, error) {
	if err := in.validate(); err != nil {
		return models.GamePlan{}, err
	}

	var plan models.GamePlan
	snap, err := s.mutate(ctx, func(snap *models.Snapshot) error {
		user, err := s.requireUser(snap, userID)
		if err != nil {
			return err
		}
		plan = models.GamePlan{ID: s.newID(), UserID: user.ID, UserName: user.Name}
		if err := s.applyPlan(snap, &plan, in); err != nil {
			return err
		}
		snap.WeekendPlans = append(snap.WeekendPlans, plan)
		s.reconcile(snap)
		return nil
	})
	if err != nil {
		return models.GamePlan{}, err
	}
	s.notify(snap)
	return plan, nil
}

func findPlan(snap *models.Snapshot, userID, planID string) (*models.GamePlan, int, error) {
	for i := range snap.WeekendPlans {
		if snap.WeekendPlans[i].ID != planID {
			continue
		}
		if snap.WeekendPlans[i].UserID != userID {
			return nil, -1, fmt.Errorf("%w: plan %s belongs to another user", utils.ErrForbidden, planID)
		}
		return &snap.WeekendPlans[i], i, nil
	}
	return nil, -1, fmt.Errorf("%w: plan %s", utils.ErrNotFound, planID)
}

// UpdatePlan changes one of userID's plans and regroups
func (s *Service) UpdatePlan(ctx context.Context, userID, planID string, in PlanInput) (models.GamePlan, error) {
	if err := in.validate(); err != nil {
		return models.GamePlan{}, err
	}

	var updated models.GamePlan
	snap, err := s.mutate(ctx, func(snap *models.Snapshot) error {
		plan, _, err := findPlan(snap, userID, planID)
		if err != nil {
			return err
		}
		if err := s.applyPlan(snap, plan, in); err != nil {
			return err
		}
		updated = *plan
		s.reconcile(snap)
		return nil
	})
	if err != nil {
		return models.GamePlan{}, err
	}
	s.notify(snap)
	return updated, nil
}

// DeletePlan removes one of userID's plans. Groups formed from it stay.
func (s *Service) DeletePlan(ctx context.Context, userID, planID string) error {
	_, err := s.mutate(ctx, func(snap *models.Snapshot) error {
		_, idx, err := findPlan(snap, userID, planID)
		if err != nil {
			return err
		}
		snap.WeekendPlans = append(snap.WeekendPlans[:idx], snap.WeekendPlans[idx+1:]...)
		return nil
	})
	return err
}

// ListPlans returns userID's plans by date, or everyone's when userID is
// empty. activeOnly drops plans that already ended.
func (s *Service) ListPlans(ctx context.Context, userID string, activeOnly bool) []models.GamePlan {
	snap := s.Snapshot(ctx)
	now := s.now()
	out := make([]models.GamePlan, 0)
	for _, p := range snap.WeekendPlans {
		if userID != "" && p.UserID != userID {
			continue
		}
		if activeOnly && p.Expired(now) {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
