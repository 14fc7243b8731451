package models

// User is a registered player. Users are created on first login and never deleted.
type User struct {
	ID                  string           `json:"id"`
	Name                string           `json:"name"`
	OwnedGames          []string         `json:"ownedGames"` // game ids
	GamePreferences     []GamePreference `json:"gamePreferences"`
	WillingToJoinOthers bool             `json:"willingToJoinOthers"`
}

// GamePreference is how much a user likes a game, 1 to 5
type GamePreference struct {
	GameID     string `json:"gameId"`
	Preference int    `json:"preference"`
}

// PreferenceFor returns the stored preference for gameID, or DefaultPreference
func (u *User) PreferenceFor(gameID string) int {
	for _, p := range u.GamePreferences {
		if p.GameID == gameID {
			return p.Preference
		}
	}
	return DefaultPreference
}
