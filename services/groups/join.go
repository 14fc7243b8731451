package groups

import (
	"Gamehub/models"
	"Gamehub/utils"
	"fmt"
)

// JoinGroup adds userID to the group with groupID and returns the updated
// collection. On failure the input is returned untouched together with
// utils.ErrNotFound, utils.ErrAlreadyMember or utils.ErrGroupFull.
func JoinGroup(groups []models.GameGroup, groupID, userID string) ([]models.GameGroup, error) {
	idx := -1
	for i := range groups {
		if groups[i].ID == groupID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return groups, fmt.Errorf("%w: group %s", utils.ErrNotFound, groupID)
	}

	target := &groups[idx]
	if target.HasMember(userID) {
		return groups, utils.ErrAlreadyMember
	}
	if target.IsFull() {
		return groups, utils.ErrGroupFull
	}

	out := make([]models.GameGroup, len(groups))
	for i, g := range groups {
		out[i] = g.Clone()
	}
	joined := &out[idx]
	joined.Members = append(joined.Members, userID)
	joined.IsRecruiting = len(joined.Members) < joined.MaxMembers
	return out, nil
}

// FindGroup returns the group with id, or nil
func FindGroup(groups []models.GameGroup, id string) *models.GameGroup {
	for i := range groups {
		if groups[i].ID == id {
			return &groups[i]
		}
	}
	return nil
}
