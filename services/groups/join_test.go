package groups

import (
	"Gamehub/models"
	"Gamehub/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chessGroup(members ...string) models.GameGroup {
	return models.GameGroup{
		ID:           "g1",
		GameID:       "chess",
		Initiator:    members[0],
		StartTime:    at(10, 0),
		EndTime:      at(11, 0),
		Members:      members,
		MaxMembers:   2,
		IsRecruiting: len(members) < 2,
	}
}

func TestJoinGroup(t *testing.T) {
	groups := []models.GameGroup{chessGroup("alice")}

	got, err := JoinGroup(groups, "g1", "bob")

	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, got[0].Members)
	assert.False(t, got[0].IsRecruiting)
	assert.Equal(t, []string{"alice"}, groups[0].Members)
}

func TestJoinGroupFailures(t *testing.T) {
	tests := []struct {
		name    string
		groups  []models.GameGroup
		groupID string
		userID  string
		wantErr error
	}{
		{"unknown group", []models.GameGroup{chessGroup("alice")}, "nonexistent-id", "dave", utils.ErrNotFound},
		{"already member", []models.GameGroup{chessGroup("alice")}, "g1", "alice", utils.ErrAlreadyMember},
		{"full", []models.GameGroup{chessGroup("alice", "bob")}, "g1", "carol", utils.ErrGroupFull},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.groups[0].Clone()

			got, err := JoinGroup(tt.groups, tt.groupID, tt.userID)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, got[0])
		})
	}
}

func TestFindGroup(t *testing.T) {
	groups := []models.GameGroup{chessGroup("alice")}
	assert.NotNil(t, FindGroup(groups, "g1"))
	assert.Nil(t, FindGroup(groups, "g2"))
}
