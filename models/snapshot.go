package models

import "time"

/*
 * 'Snapshot' is the whole application state as one document. It is what the
 * persistence layer fetches and writes back in full.
 */
type Snapshot struct {
	Users        []User       `json:"users"`
	Games        []Game       `json:"games"`
	DailySignups []GameSignup `json:"dailySignups"`
	WeekendPlans []GamePlan   `json:"weekendPlans"`
	GameGroups   []GameGroup  `json:"gameGroups"`
	LastUpdated  time.Time    `json:"lastUpdated"`
	// Version increases by one on every successful save. Documents written
	// before versioning load as 0.
	Version int64 `json:"version"`
}

// Normalize replaces nil collections with empty ones so the document
// always serializes with arrays, never null.
func (s *Snapshot) Normalize() {
	if s.Users == nil {
		s.Users = []User{}
	}
	if s.Games == nil {
		s.Games = []Game{}
	}
	if s.DailySignups == nil {
		s.DailySignups = []GameSignup{}
	}
	if s.WeekendPlans == nil {
		s.WeekendPlans = []GamePlan{}
	}
	if s.GameGroups == nil {
		s.GameGroups = []GameGroup{}
	}
}

// FindUser returns a pointer into the snapshot's users by id, or nil
func (s *Snapshot) FindUser(id string) *User {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i]
		}
	}
	return nil
}

// FindUserByName returns a pointer into the snapshot's users by name, or nil
func (s *Snapshot) FindUserByName(name string) *User {
	for i := range s.Users {
		if s.Users[i].Name == name {
			return &s.Users[i]
		}
	}
	return nil
}

// UserName resolves a user id to its name, empty when unknown
func (s *Snapshot) UserName(id string) string {
	if u := s.FindUser(id); u != nil {
		return u.Name
	}
	return ""
}

// DefaultSnapshot is served when nothing has been stored yet
func DefaultSnapshot(now time.Time) *Snapshot {
	s := &Snapshot{
		Games: []Game{
			{
				ID:         "game-1",
				Name:       "CS:GO",
				Category:   CategoryFPS,
				MinPlayers: 1,
				MaxPlayers: 10,
				Platform:   []string{"Steam"},
				CreatedBy:  SystemCreator,
				CreatedAt:  now,
			},
			{
				ID:         "game-2",
				Name:       "Honor of Kings",
				Category:   CategoryMOBA,
				MinPlayers: 1,
				MaxPlayers: 5,
				Platform:   []string{"Mobile"},
				CreatedBy:  SystemCreator,
				CreatedAt:  now,
			},
			{
				ID:         "game-3",
				Name:       "Genshin Impact",
				Category:   CategoryRPG,
				MinPlayers: 1,
				MaxPlayers: 4,
				Platform:   []string{"PC", "Mobile", "PS"},
				CreatedBy:  SystemCreator,
				CreatedAt:  now,
			},
		},
		LastUpdated: now,
	}
	s.Normalize()
	return s
}
