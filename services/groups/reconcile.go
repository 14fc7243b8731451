// Package groups derives game groups from weekend plans and answers the
// capacity and time slot questions asked about them. Every function here is
// pure: inputs are copied, never modified, and no clock is read.
package groups

import (
	"Gamehub/models"
	"Gamehub/utils"
	"time"
)

// Reconciler keeps the set of groups consistent with the set of plans
type Reconciler struct {
	// NewID generates ids for groups created by Reconcile
	NewID func() string
}

// NewReconciler returns a Reconciler that names new groups with random uuids
func NewReconciler() *Reconciler {
	return &Reconciler{NewID: utils.GenerateID}
}

// groupKey identifies a group's window. Times are compared as instants so
// the same window written with different zone offsets matches.
type groupKey struct {
	gameID string
	start  int64
	end    int64
}

func keyOf(gameID string, start, end time.Time) groupKey {
	return groupKey{gameID: gameID, start: start.UnixNano(), end: end.UnixNano()}
}

// Reconcile folds plans into groups. Existing groups that share a window are
// merged first, then each plan either opens a new group, joins the group of
// its window, or, when that group is full, is returned in overflow.
// Plans targeting a game that no longer exists are skipped.
//
// Running Reconcile again over its own output with the same plans yields the
// same groups.
func (r *Reconciler) Reconcile(plans []models.GamePlan, existing []models.GameGroup, games []models.Game) ([]models.GameGroup, []models.GamePlan) {
	result := make([]models.GameGroup, 0, len(existing))
	index := make(map[groupKey]int, len(existing))

	for _, g := range existing {
		k := keyOf(g.GameID, g.StartTime, g.EndTime)
		if i, ok := index[k]; ok {
			mergeInto(&result[i], g.Members)
			continue
		}
		index[k] = len(result)
		result = append(result, g.Clone())
	}

	var overflow []models.GamePlan
	for _, plan := range plans {
		game := models.FindGame(games, plan.TargetGameID)
		if game == nil {
			continue
		}

		k := keyOf(plan.TargetGameID, plan.StartTime, plan.EndTime)
		i, ok := index[k]
		if !ok {
			index[k] = len(result)
			result = append(result, models.GameGroup{
				ID:            r.NewID(),
				GameID:        plan.TargetGameID,
				GameName:      game.Name,
				Initiator:     plan.UserID,
				InitiatorName: plan.UserName,
				StartTime:     plan.StartTime,
				EndTime:       plan.EndTime,
				Members:       []string{plan.UserID},
				MaxMembers:    game.MaxPlayers,
				IsRecruiting:  true,
			})
			continue
		}

		g := &result[i]
		if g.HasMember(plan.UserID) {
			continue
		}
		if g.IsFull() {
			overflow = append(overflow, plan)
			continue
		}
		g.Members = append(g.Members, plan.UserID)
	}

	for i := range result {
		settle(&result[i])
	}
	return result, overflow
}

// mergeInto appends the members of a duplicate group while capacity allows
func mergeInto(g *models.GameGroup, members []string) {
	for _, m := range members {
		if g.IsFull() {
			return
		}
		if !g.HasMember(m) {
			g.Members = append(g.Members, m)
		}
	}
}

// settle restores the per-group invariants: unique members, initiator
// present and first, recruiting flag in line with capacity. A full group
// whose initiator is missing keeps its members and the first one becomes
// the initiator.
func settle(g *models.GameGroup) {
	seen := make(map[string]bool, len(g.Members)+1)
	unique := make([]string, 0, len(g.Members))
	for _, m := range g.Members {
		if seen[m] {
			continue
		}
		seen[m] = true
		unique = append(unique, m)
	}

	members := make([]string, 0, len(unique)+1)
	switch {
	case g.Initiator == "":
		members = append(members, unique...)
	case seen[g.Initiator]:
		members = append(members, g.Initiator)
		for _, m := range unique {
			if m != g.Initiator {
				members = append(members, m)
			}
		}
	case g.MaxMembers > 0 && len(unique) >= g.MaxMembers:
		g.Initiator = unique[0]
		members = append(members, unique...)
	default:
		members = append(members, g.Initiator)
		members = append(members, unique...)
	}

	if g.MaxMembers > 0 && len(members) > g.MaxMembers {
		members = members[:g.MaxMembers]
	}
	g.Members = members
	g.IsRecruiting = len(g.Members) < g.MaxMembers
}

// Decorate fills in display names from the snapshot's users and games.
// It returns new groups and leaves the input untouched.
func Decorate(groups []models.GameGroup, users []models.User, games []models.Game) []models.GameGroup {
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	out := make([]models.GameGroup, len(groups))
	for i, g := range groups {
		g = g.Clone()
		if game := models.FindGame(games, g.GameID); game != nil {
			g.GameName = game.Name
		}
		if name, ok := names[g.Initiator]; ok {
			g.InitiatorName = name
		}
		g.MemberNames = make([]string, len(g.Members))
		for j, m := range g.Members {
			g.MemberNames[j] = names[m]
		}
		out[i] = g
	}
	return out
}
