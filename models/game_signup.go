package models

import "time"

const (
	MinPreference     = 1
	MaxPreference     = 5
	DefaultPreference = 3
)

// GameSignup is a user's wish to play a game on a given day
type GameSignup struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName,omitempty"`
	GameID     string    `json:"gameId"`
	GameName   string    `json:"gameName,omitempty"`
	SignupDate time.Time `json:"signupDate"`
	Preference int       `json:"preference"` // 1-5
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ValidPreference reports whether p is within the 1-5 scale
func ValidPreference(p int) bool {
	return p >= MinPreference && p <= MaxPreference
}
