package models

import "time"

// GamePlan is one user's intention to play a specific game during a specific window
type GamePlan struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"userId"`
	UserName            string    `json:"userName,omitempty"`
	TargetGameID        string    `json:"targetGameId"`
	TargetGameName      string    `json:"targetGameName,omitempty"`
	Date                time.Time `json:"date"`
	StartTime           time.Time `json:"startTime"`
	EndTime             time.Time `json:"endTime"`
	WillingToJoinOthers bool      `json:"willingToJoinOthers"`
}

// Expired reports whether the plan's window has fully passed at now
func (p *GamePlan) Expired(now time.Time) bool {
	return p.EndTime.Before(now)
}
