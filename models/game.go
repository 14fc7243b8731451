package models

import "time"

// SystemCreator marks catalog entries that ship with the application.
// They cannot be deleted.
const SystemCreator = "system"

// Game categories offered by the catalog
const (
	CategoryFPS      = "FPS"
	CategoryRPG      = "RPG"
	CategoryStrategy = "Strategy"
	CategoryCasual   = "Casual"
	CategoryMOBA     = "MOBA"
	CategorySports   = "Sports"
	CategoryPuzzle   = "Puzzle"
	CategoryOther    = "Other"
)

// Game is a catalog entry. Immutable once created; only its creator may delete it.
type Game struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	MinPlayers int       `json:"minPlayers"`
	MaxPlayers int       `json:"maxPlayers"`
	Platform   []string  `json:"platform"`
	CreatedBy  string    `json:"createdBy"` // "system" or a user id
	CreatedAt  time.Time `json:"createdAt"`
}

// IsSystem reports whether the game is a protected catalog entry
func (g *Game) IsSystem() bool {
	return g.CreatedBy == SystemCreator
}

// FindGame returns a pointer into games for the given id, or nil
func FindGame(games []Game, id string) *Game {
	for i := range games {
		if games[i].ID == id {
			return &games[i]
		}
	}
	return nil
}
