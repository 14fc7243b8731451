package socket_io

import (
	"Gamehub/models"
	"Gamehub/services/planner"
	"Gamehub/services/store"
	"context"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var saturday = time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC)

func TestAffectedDays(t *testing.T) {
	shanghai, err := time.LoadLocation("Asia/Shanghai")
	require.NoError(t, err)

	sat := time.Date(2026, time.October, 17, 0, 0, 0, 0, shanghai)
	groups := []models.GameGroup{
		{ID: "late", StartTime: sat.Add(20 * time.Hour)},
		{ID: "early", StartTime: sat.Add(10 * time.Hour)},
		// 17:00 UTC on Saturday is 01:00 Sunday in Shanghai
		{ID: "sunday", StartTime: time.Date(2026, time.October, 17, 17, 0, 0, 0, time.UTC)},
	}

	assert.Equal(t, []string{"2026-10-17", "2026-10-18"}, AffectedDays(groups, shanghai))
	assert.Empty(t, AffectedDays(nil, shanghai))
}

func TestDayPayloadsMatchWatchDayListing(t *testing.T) {
	ctx := context.Background()
	svc := planner.New(store.NewMemoryStore(),
		planner.WithLocation(time.UTC),
		planner.WithClock(func() time.Time { return saturday.Add(15 * time.Hour) }),
	)
	snap := models.DefaultSnapshot(saturday)
	snap.GameGroups = []models.GameGroup{
		{ID: "ended", GameID: "game-1", Initiator: "u1", Members: []string{"u1"}, MaxMembers: 10,
			StartTime: saturday.Add(9 * time.Hour), EndTime: saturday.Add(10 * time.Hour)},
		{ID: "live", GameID: "game-1", Initiator: "u1", Members: []string{"u1"}, MaxMembers: 10,
			StartTime: saturday.Add(20 * time.Hour), EndTime: saturday.Add(21 * time.Hour)},
	}
	require.NoError(t, svc.ReplaceSnapshot(ctx, snap))

	list := func(ctx context.Context, day time.Time) []models.GameGroup {
		return svc.ListGroups(ctx, day, "")
	}
	gin.SetMode(gin.TestMode)
	sio := NewServer(time.UTC, zap.NewNop())
	defer sio.Close()
	sio.Start(gin.New(), list)

	payloads := sio.DayPayloads(ctx, snap.GameGroups)

	require.Len(t, payloads, 1)
	pushed := payloads["2026-10-17"]
	require.Len(t, pushed, 1)
	assert.Equal(t, "live", pushed[0].ID)
	assert.Equal(t, list(ctx, saturday), pushed)
}

func TestGroupsChangedWithoutClients(t *testing.T) {
	sio := NewServer(time.UTC, zap.NewNop())
	defer sio.Close()

	assert.Empty(t, sio.DayPayloads(context.Background(), []models.GameGroup{{ID: "g1", StartTime: saturday}}))
	assert.NotPanics(t, func() {
		sio.GroupsChanged([]models.GameGroup{{ID: "g1", StartTime: saturday}})
	})
}
