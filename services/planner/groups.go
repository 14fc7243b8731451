package planner

import (
	"Gamehub/models"
	"Gamehub/services/groups"
	"Gamehub/services/reports"
	"Gamehub/utils"
	"context"
	"fmt"
	"time"
)

// JoinGroup adds userID to a group. Groups that already ended cannot be joined.
func (s *Service) JoinGroup(ctx context.Context, groupID, userID string) (models.GameGroup, error) {
	var joined models.GameGroup
	snap, err := s.mutate(ctx, func(snap *models.Snapshot) error {
		if _, err := s.requireUser(snap, userID); err != nil {
			return err
		}
		if g := groups.FindGroup(snap.GameGroups, groupID); g != nil && g.EndTime.Before(s.now()) {
			return fmt.Errorf("%w: group %s has already ended", utils.ErrValidation, groupID)
		}
		updated, err := groups.JoinGroup(snap.GameGroups, groupID, userID)
		if err != nil {
			return err
		}
		snap.GameGroups = groups.Decorate(updated, snap.Users, snap.Games)
		joined = *groups.FindGroup(snap.GameGroups, groupID)
		return nil
	})
	if err != nil {
		return models.GameGroup{}, err
	}
	s.notify(snap)
	return joined, nil
}

// Reconcile regroups every stored plan and reports how many groups exist
// and how many plans did not fit
func (s *Service) Reconcile(ctx context.Context) (groupCount, overflow int, err error) {
	snap, err := s.mutate(ctx, func(snap *models.Snapshot) error {
		overflow = len(s.reconcile(snap))
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	s.notify(snap)
	return len(snap.GameGroups), overflow, nil
}

// ListGroups returns the live groups of day in slot, or in every slot when
// slot is empty
func (s *Service) ListGroups(ctx context.Context, day time.Time, slot models.TimeSlot) []models.GameGroup {
	snap := s.Snapshot(ctx)
	day = day.In(s.loc)
	now := s.now()
	if slot != "" {
		return groups.GroupsForTimeSlot(snap.GameGroups, day, slot, now)
	}
	out := make([]models.GameGroup, 0)
	for _, ts := range models.TimeSlots {
		out = append(out, groups.GroupsForTimeSlot(snap.GameGroups, day, ts, now)...)
	}
	return out
}

// SlotReport is one time slot of the group report page
type SlotReport struct {
	Slot           models.TimeSlot    `json:"slot"`
	Label          string             `json:"label"`
	Groups         []models.GameGroup `json:"groups"`
	Recruiting     []models.GameGroup `json:"recruiting"`
	AvailableUsers []models.GamePlan  `json:"availableUsers"`
}

// GroupReport lays out day's groups per time slot. Willing users are only
// listed for slots where some group is still recruiting.
func (s *Service) GroupReport(ctx context.Context, day time.Time) []SlotReport {
	snap := s.Snapshot(ctx)
	day = day.In(s.loc)
	now := s.now()

	out := make([]SlotReport, 0, len(models.TimeSlots))
	for _, slot := range models.TimeSlots {
		slotGroups := groups.GroupsForTimeSlot(snap.GameGroups, day, slot, now)
		report := SlotReport{
			Slot:           slot,
			Label:          slot.Label(),
			Groups:         slotGroups,
			Recruiting:     groups.Recruiting(slotGroups),
			AvailableUsers: []models.GamePlan{},
		}
		if len(report.Recruiting) > 0 {
			report.AvailableUsers = groups.AvailableUsers(snap.WeekendPlans, day, slot)
		}
		out = append(out, report)
	}
	return out
}

// DailyReport aggregates day's signups
func (s *Service) DailyReport(ctx context.Context, day time.Time) reports.Daily {
	return reports.BuildDaily(s.Snapshot(ctx), day.In(s.loc), s.Now())
}
