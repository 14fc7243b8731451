package models

import "time"

// GameGroup is derived from weekend plans: everyone targeting the same game
// in the same window ends up in one group.
type GameGroup struct {
	ID            string    `json:"id"`
	GameID        string    `json:"gameId"`
	GameName      string    `json:"gameName,omitempty"`
	Initiator     string    `json:"initiator"`
	InitiatorName string    `json:"initiatorName,omitempty"`
	StartTime     time.Time `json:"startTime"`
	EndTime       time.Time `json:"endTime"`
	Members       []string  `json:"members"` // user ids, unique, initiator first
	MemberNames   []string  `json:"memberNames,omitempty"`
	MaxMembers    int       `json:"maxMembers"`
	IsRecruiting  bool      `json:"isRecruiting"`
}

// HasMember reports whether userID is in the group
func (g *GameGroup) HasMember(userID string) bool {
	for _, m := range g.Members {
		if m == userID {
			return true
		}
	}
	return false
}

// IsFull reports whether the group reached its capacity
func (g *GameGroup) IsFull() bool {
	return len(g.Members) >= g.MaxMembers
}

// Clone returns a copy that shares no slices with g
func (g GameGroup) Clone() GameGroup {
	g.Members = append([]string(nil), g.Members...)
	if g.MemberNames != nil {
		g.MemberNames = append([]string(nil), g.MemberNames...)
	}
	return g
}
