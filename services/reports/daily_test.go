package reports

import (
	"Gamehub/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDaily(t *testing.T) {
	day := time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC)
	yesterday := day.AddDate(0, 0, -1)
	snap := &models.Snapshot{
		Users: []models.User{{ID: "u1", Name: "alice"}, {ID: "u2", Name: "bob"}},
		Games: []models.Game{{ID: "g1", Name: "Chess"}, {ID: "g2", Name: "CS:GO"}},
		DailySignups: []models.GameSignup{
			{ID: "s1", UserID: "u1", GameID: "g1", SignupDate: day.Add(9 * time.Hour), Preference: 5, Notes: "after lunch"},
			{ID: "s2", UserID: "u2", GameID: "g1", SignupDate: day.Add(10 * time.Hour), Preference: 3},
			{ID: "s3", UserID: "u1", GameID: "g2", SignupDate: day.Add(11 * time.Hour), Preference: 4},
			{ID: "s4", UserID: "u1", GameID: "g1", SignupDate: yesterday.Add(12 * time.Hour), Preference: 2},
		},
	}

	report := BuildDaily(snap, day, day)

	assert.Equal(t, "2026-10-17", report.Date)
	assert.Equal(t, 3, report.TotalSignups)
	assert.Equal(t, 2, report.DistinctUsers)
	assert.InDelta(t, 4.0, report.AvgPreference, 0.001)

	require.Len(t, report.Games, 2)
	assert.Equal(t, "Chess", report.Games[0].GameName)
	assert.Equal(t, 2, report.Games[0].Count)
	assert.InDelta(t, 4.0, report.Games[0].AvgPreference, 0.001)
	assert.Equal(t, "alice", report.Games[0].Users[0].UserName)
	assert.Equal(t, "after lunch", report.Games[0].Users[0].Notes)

	require.Len(t, report.LastSevenDays, 7)
	assert.Equal(t, DayCount{Date: "2026-10-16", Count: 1}, report.LastSevenDays[5])
	assert.Equal(t, DayCount{Date: "2026-10-17", Count: 3}, report.LastSevenDays[6])

	require.Len(t, report.UserActivity, 2)
	assert.Equal(t, "alice", report.UserActivity[0].UserName)
	assert.Equal(t, 3, report.UserActivity[0].SignupCount)
	assert.Equal(t, "Chess", report.UserActivity[0].FavoriteGame)
	assert.Equal(t, day.Add(11*time.Hour), report.UserActivity[0].LastSignup)
}

func TestBuildDailyEmpty(t *testing.T) {
	day := time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC)

	report := BuildDaily(&models.Snapshot{}, day, day)

	assert.Zero(t, report.TotalSignups)
	assert.Zero(t, report.AvgPreference)
	assert.Empty(t, report.Games)
	assert.Len(t, report.LastSevenDays, 7)
}
