// Package reports aggregates daily signups for the report pages
package reports

import (
	"Gamehub/models"
	"Gamehub/utils"
	"sort"
	"time"
)

// SignupEntry is one user's signup as shown under a game
type SignupEntry struct {
	UserName   string `json:"userName"`
	Preference int    `json:"preference"`
	Notes      string `json:"notes"`
}

// GameStat summarizes the signups for one game on the report day
type GameStat struct {
	GameID        string        `json:"gameId"`
	GameName      string        `json:"gameName"`
	Count         int           `json:"count"`
	AvgPreference float64       `json:"avgPreference"`
	Users         []SignupEntry `json:"users"`
}

// DayCount is the number of signups on one day
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// UserActivity ranks users by how often they sign up, over all days
type UserActivity struct {
	UserID       string    `json:"userId"`
	UserName     string    `json:"userName"`
	SignupCount  int       `json:"signupCount"`
	LastSignup   time.Time `json:"lastSignup"`
	FavoriteGame string    `json:"favoriteGame"`
}

type Daily struct {
	Date          string         `json:"date"`
	TotalSignups  int            `json:"totalSignups"`
	DistinctUsers int            `json:"distinctUsers"`
	AvgPreference float64        `json:"avgPreference"`
	Games         []GameStat     `json:"games"`
	LastSevenDays []DayCount     `json:"lastSevenDays"`
	UserActivity  []UserActivity `json:"userActivity"`
}

// BuildDaily computes the report for day. today anchors the seven day
// history, which ends with today.
func BuildDaily(snap *models.Snapshot, day, today time.Time) Daily {
	loc := day.Location()
	report := Daily{Date: utils.FormatDay(day)}

	stats := map[string]*GameStat{}
	var order []string
	users := map[string]bool{}
	total := 0

	for _, s := range snap.DailySignups {
		if !utils.SameDay(s.SignupDate, day, loc) {
			continue
		}
		report.TotalSignups++
		total += s.Preference
		users[s.UserID] = true

		stat, ok := stats[s.GameID]
		if !ok {
			stat = &GameStat{GameID: s.GameID, GameName: s.GameName}
			if g := models.FindGame(snap.Games, s.GameID); g != nil {
				stat.GameName = g.Name
			}
			stats[s.GameID] = stat
			order = append(order, s.GameID)
		}
		stat.Count++
		stat.AvgPreference += float64(s.Preference)
		stat.Users = append(stat.Users, SignupEntry{
			UserName:   signupUserName(snap, s),
			Preference: s.Preference,
			Notes:      s.Notes,
		})
	}

	report.DistinctUsers = len(users)
	if report.TotalSignups > 0 {
		report.AvgPreference = float64(total) / float64(report.TotalSignups)
	}

	report.Games = make([]GameStat, 0, len(order))
	for _, id := range order {
		stat := stats[id]
		stat.AvgPreference /= float64(stat.Count)
		report.Games = append(report.Games, *stat)
	}
	sort.SliceStable(report.Games, func(i, j int) bool {
		return report.Games[i].Count > report.Games[j].Count
	})

	report.LastSevenDays = lastSevenDays(snap.DailySignups, utils.StartOfDay(today.In(loc)))
	report.UserActivity = userActivity(snap)
	return report
}

func signupUserName(snap *models.Snapshot, s models.GameSignup) string {
	if s.UserName != "" {
		return s.UserName
	}
	return snap.UserName(s.UserID)
}

func lastSevenDays(signups []models.GameSignup, today time.Time) []DayCount {
	out := make([]DayCount, 0, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		count := 0
		for _, s := range signups {
			if utils.SameDay(s.SignupDate, day, today.Location()) {
				count++
			}
		}
		out = append(out, DayCount{Date: utils.FormatDay(day), Count: count})
	}
	return out
}

func userActivity(snap *models.Snapshot) []UserActivity {
	type acc struct {
		activity UserActivity
		games    map[string]int
		order    []string
	}
	byUser := map[string]*acc{}
	var order []string

	for _, s := range snap.DailySignups {
		a, ok := byUser[s.UserID]
		if !ok {
			name := snap.UserName(s.UserID)
			if name == "" {
				name = s.UserName
			}
			a = &acc{activity: UserActivity{UserID: s.UserID, UserName: name}, games: map[string]int{}}
			byUser[s.UserID] = a
			order = append(order, s.UserID)
		}
		a.activity.SignupCount++
		if s.SignupDate.After(a.activity.LastSignup) {
			a.activity.LastSignup = s.SignupDate
		}
		if _, seen := a.games[s.GameID]; !seen {
			a.order = append(a.order, s.GameID)
		}
		a.games[s.GameID]++
	}

	out := make([]UserActivity, 0, len(order))
	for _, id := range order {
		a := byUser[id]
		best := 0
		for _, gameID := range a.order {
			if a.games[gameID] > best {
				best = a.games[gameID]
				if g := models.FindGame(snap.Games, gameID); g != nil {
					a.activity.FavoriteGame = g.Name
				}
			}
		}
		out = append(out, a.activity)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SignupCount > out[j].SignupCount
	})
	return out
}
