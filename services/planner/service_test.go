package planner

import (
	"Gamehub/models"
	"Gamehub/services/store"
	"Gamehub/utils"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	saturday = time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC)
	clock    = saturday.Add(8 * time.Hour)
)

func at(h int) time.Time {
	return saturday.Add(time.Duration(h) * time.Hour)
}

type recordingNotifier struct {
	calls [][]models.GameGroup
}

func (n *recordingNotifier) GroupsChanged(groups []models.GameGroup) {
	n.calls = append(n.calls, groups)
}

func newTestService(t *testing.T, st store.Store) (*Service, *recordingNotifier) {
	t.Helper()
	n := 0
	notifier := &recordingNotifier{}
	svc := New(st,
		WithLocation(time.UTC),
		WithClock(func() time.Time { return clock }),
		WithIDs(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
		WithNotifier(notifier),
	)
	return svc, notifier
}

func login(t *testing.T, svc *Service, name string) models.User {
	t.Helper()
	u, _, err := svc.Login(context.Background(), name)
	require.NoError(t, err)
	return u
}

func TestSnapshotServesDefaultsWhenEmpty(t *testing.T) {
	svc, _ := newTestService(t, store.NewMemoryStore())

	snap := svc.Snapshot(context.Background())

	assert.Len(t, snap.Games, 3)
	assert.Empty(t, snap.Users)
	assert.NotNil(t, snap.GameGroups)
	assert.Equal(t, int64(0), snap.Version)
}

func TestNullStoreReadsDegradeAndWritesFail(t *testing.T) {
	svc, _ := newTestService(t, store.NullStore{})
	ctx := context.Background()

	assert.Len(t, svc.ListGames(ctx, ""), 3)

	_, _, err := svc.Login(ctx, "alice")
	assert.ErrorIs(t, err, utils.ErrStoreUnavailable)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t, store.NewMemoryStore())
	ctx := context.Background()

	first, created, err := svc.Login(ctx, " alice ")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "alice", first.Name)
	assert.True(t, first.WillingToJoinOthers)

	again, created, err := svc.Login(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, again.ID)

	_, _, err = svc.Login(ctx, "  ")
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestSaveUser(t *testing.T) {
	svc, _ := newTestService(t, store.NewMemoryStore())
	ctx := context.Background()
	alice := login(t, svc, "alice")
	login(t, svc, "bob")

	alice.GamePreferences = []models.GamePreference{{GameID: "game-1", Preference: 5}}
	saved, err := svc.SaveUser(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, saved.ID)

	got, err := svc.GetUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 5, got.PreferenceFor("game-1"))

	alice.Name = "bob"
	_, err = svc.SaveUser(ctx, alice)
	assert.ErrorIs(t, err, utils.ErrConflict)

	alice.Name = "alice"
	alice.GamePreferences[0].Preference = 9
	_, err = svc.SaveUser(ctx, alice)
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = svc.GetUser(ctx, "nobody")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestGames(t *testing.T) {
	svc, _ := newTestService(t, store.NewMemoryStore())
	ctx := context.Background()

	chess, err := svc.AddGame(ctx, "alice-id", GameInput{Name: "Chess", MinPlayers: 2, MaxPlayers: 2, Platform: []string{"PC"}})
	require.NoError(t, err)
	assert.Equal(t, models.CategoryOther, chess.Category)
	assert.Equal(t, "alice-id", chess.CreatedBy)

	assert.Len(t, svc.ListGames(ctx, ""), 4)
	assert.Len(t, svc.ListGames(ctx, "CHE"), 1)
	assert.Len(t, svc.ListGames(ctx, "moba"), 1)

	_, err = svc.AddGame(ctx, "alice-id", GameInput{Name: "Bad", MinPlayers: 3, MaxPlayers: 2, Platform: []string{"PC"}})
	assert.ErrorIs(t, err, utils.ErrValidation)

	assert.ErrorIs(t, svc.DeleteGame(ctx, "alice-id", "game-1"), utils.ErrForbidden)
	assert.ErrorIs(t, svc.DeleteGame(ctx, "bob-id", chess.ID), utils.ErrForbidden)
	assert.ErrorIs(t, svc.DeleteGame(ctx, "alice-id", "missing"), utils.ErrNotFound)
	require.NoError(t, svc.DeleteGame(ctx, "alice-id", chess.ID))
	assert.Len(t, svc.ListGames(ctx, ""), 3)
}

func TestAddSignups(t *testing.T) {
	svc, _ := newTestService(t, store.NewMemoryStore())
	ctx := context.Background()
	alice := login(t, svc, "alice")

	created, err := svc.AddSignups(ctx, alice.ID, saturday, []SignupInput{
		{GameID: "game-1"},
		{GameID: "game-2", Preference: 5, Notes: "after dinner"},
		{GameID: "deleted-game"},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, models.DefaultPreference, created[0].Preference)
	assert.Equal(t, "CS:GO", created[0].GameName)
	assert.Equal(t, clock, created[0].SignupDate)

	_, err = svc.AddSignups(ctx, alice.ID, saturday, []SignupInput{{GameID: "game-1"}})
	assert.ErrorIs(t, err, utils.ErrConflict)

	_, err = svc.AddSignups(ctx, alice.ID, saturday, []SignupInput{{GameID: "game-3", Preference: 7}})
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = svc.AddSignups(ctx, alice.ID, saturday, nil)
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = svc.AddSignups(ctx, "ghost", saturday, []SignupInput{{GameID: "game-3"}})
	assert.ErrorIs(t, err, utils.ErrNotFound)

	// another day is another signup
	sunday := saturday.AddDate(0, 0, 1)
	created, err = svc.AddSignups(ctx, alice.ID, sunday, []SignupInput{{GameID: "game-1"}})
	require.NoError(t, err)
	assert.Equal(t, sunday, created[0].SignupDate)

	assert.Len(t, svc.ListSignups(ctx, saturday), 2)
	assert.Len(t, svc.ListSignups(ctx, sunday), 1)
}

func TestCreatePlanFormsGroups(t *testing.T) {
	svc, notifier := newTestService(t, store.NewMemoryStore())
	ctx := context.Background()
	alice := login(t, svc, "alice")
	bob := login(t, svc, "bob")

	in := PlanInput{GameID: "game-3", StartTime: at(10), EndTime: at(12), WillingToJoinOthers: true}
	p1, err := svc.CreatePlan(ctx, alice.ID, in)
	require.NoError(t, err)
	assert.Equal(t, saturday, p1.Date)
	assert.Equal(t, "Genshin Impact", p1.TargetGameName)

	_, err = svc.CreatePlan(ctx, bob.ID, in)
	require.NoError(t, err)

	snap := svc.Snapshot(ctx)
	require.Len(t, snap.GameGroups, 1)
	g := snap.GameGroups[0]
	assert.Equal(t, alice.ID, g.Initiator)
	assert.Equal(t, []string{alice.ID, bob.ID}, g.Members)
	assert.Equal(t, []string{"alice", "bob"}, g.MemberNames)
	assert.Equal(t, 4, g.MaxMembers)
	assert.True(t, g.IsRecruiting)

	require.Len(t, notifier.calls, 2)
	assert.Len(t, notifier.calls[1], 1)
}

func TestCreatePlanValidation(t *testing.T) {
	svc, _ := newTestService(t, store.NewMemoryStore())
	ctx := context.Background()
	alice := login(t, svc, "alice")

	_, err := svc.CreatePlan(ctx, alice.ID, PlanInput{GameID: "game-3", StartTime: at(12), EndTime: at(10)})
	assert.ErrorIs(t, err, utils.ErrValidation)

	_, err = svc.CreatePlan(ctx, alice.ID, PlanInput{GameID: "missing", StartTime: at(10), EndTime: at(12)})
	assert.ErrorIs(t, err, utils.ErrNotFound)

	_, err = svc.CreatePlan(ctx, alice.ID, PlanInput{StartTime: at(10), EndTime: at(12)})
	assert.ErrorIs(t, err, utils.ErrValidation)
}

func TestUpdateAndDeletePlan(t *testing.T) {
	svc, _ := newTestService(t, store.NewMemoryStore())
	ctx := context.Background()
	alice := login(t, svc, "alice")
	bob := login(t, svc, "bob")

	p, err := svc.CreatePlan(ctx, alice.ID, PlanInput{GameID: "game-1", StartTime: at(10), EndTime: at(11)})
	require.NoError(t, err)

	moved := PlanInput{GameID: "game-1", StartTime: at(19), EndTime: at(21)}
	_, err = svc.UpdatePlan(ctx, bob.ID, p.ID, moved)
	assert.ErrorIs(t, err, utils.ErrForbidden)

	updated, err := svc.UpdatePlan(ctx, alice.ID, p.ID, moved)
	require.NoError(t, err)
	assert.Equal(t, at(19), updated.StartTime)

	// groups only grow: the earlier window keeps its group
	assert.Len(t, svc.Snapshot(ctx).GameGroups, 2)

	assert.ErrorIs(t, svc.DeletePlan(ctx, bob.ID, p.ID), utils.ErrForbidden)
	require.NoError(t, svc.DeletePlan(ctx, alice.ID, p.ID))
	assert.ErrorIs(t, svc.DeletePlan(ctx, alice.ID, p.ID), utils.ErrNotFound)
	assert.Empty(t, svc.ListPlans(ctx, alice.ID, false))
	assert.Len(t, svc.Snapshot(ctx).GameGroups, 2)
}

func TestListPlans(t *testing.T) {
	svc, _ := newTestService(t, store.NewMemoryStore())
	ctx := context.Background()
	alice := login(t, svc, "alice")
	bob := login(t, svc, "bob")

	sunday := saturday.AddDate(0, 0, 1)
	_, err := svc.CreatePlan(ctx, alice.ID, PlanInput{GameID: "game-1", StartTime: sunday.Add(10 * time.Hour), EndTime: sunday.Add(11 * time.Hour)})
	require.NoError(t, err)
	_, err = svc.CreatePlan(ctx, alice.ID, PlanInput{GameID: "game-1", StartTime: at(10), EndTime: at(11)})
	require.NoError(t, err)
	// already over at the test clock
	_, err = svc.CreatePlan(ctx, alice.ID, PlanInput{GameID: "game-2", StartTime: at(6), EndTime: at(7)})
	require.NoError(t, err)
	_, err = svc.CreatePlan(ctx, bob.ID, PlanInput{GameID: "game-2", StartTime: at(20), EndTime: at(22)})
	require.NoError(t, err)

	mine := svc.ListPlans(ctx, alice.ID, false)
	require.Len(t, mine, 3)
	assert.Equal(t, saturday, mine[0].Date)
	assert.Equal(t, sunday, mine[2].Date)

	assert.Len(t, svc.ListPlans(ctx, alice.ID, true), 2)
	assert.Len(t, svc.ListPlans(ctx, "", false), 4)
}

func TestJoinGroup(t *testing.T) {
	svc, notifier := newTestService(t, store.NewMemoryStore())
	ctx := context.Background()
	chess, err := svc.AddGame(ctx, "system-test", GameInput{Name: "Chess", MinPlayers: 2, MaxPlayers: 2, Platform: []string{"PC"}})
	require.NoError(t, err)
	alice := login(t, svc, "alice")
	bob := login(t, svc, "bob")
	carol := login(t, svc, "carol")

	_, err = svc.CreatePlan(ctx, alice.ID, PlanInput{GameID: chess.ID, StartTime: at(14), EndTime: at(15)})
	require.NoError(t, err)
	groupID := svc.Snapshot(ctx).GameGroups[0].ID

	g, err := svc.JoinGroup(ctx, groupID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{alice.ID, bob.ID}, g.Members)
	assert.False(t, g.IsRecruiting)
	assert.Equal(t, []string{"alice", "bob"}, g.MemberNames)

	_, err = svc.JoinGroup(ctx, groupID, bob.ID)
	assert.ErrorIs(t, err, utils.ErrAlreadyMember)
	_, err = svc.JoinGroup(ctx, groupID, carol.ID)
	assert.ErrorIs(t, err, utils.ErrGroupFull)
	_, err = svc.JoinGroup(ctx, "missing", carol.ID)
	assert.ErrorIs(t, err, utils.ErrNotFound)

	// one notification for the plan, one for the join
	assert.Len(t, notifier.calls, 2)
}

func TestJoinEndedGroup(t *testing.T) {
	svc, _ := newTestService(t, store.NewMemoryStore())
	ctx := context.Background()
	alice := login(t, svc, "alice")
	bob := login(t, svc, "bob")

	// over before the test clock
	_, err := svc.CreatePlan(ctx, alice.ID, PlanInput{GameID: "game-1", StartTime: at(6), EndTime: at(7)})
	require.NoError(t, err)
	groupID := svc.Snapshot(ctx).GameGroups[0].ID

	_, err = svc.JoinGroup(ctx, groupID, bob.ID)
	assert.ErrorIs(t, err, utils.ErrValidation)
	assert.Equal(t, []string{alice.ID}, svc.Snapshot(ctx).GameGroups[0].Members)
}

func TestListGroupsAndReport(t *testing.T) {
	svc, _ := newTestService(t, store.NewMemoryStore())
	ctx := context.Background()
	alice := login(t, svc, "alice")
	bob := login(t, svc, "bob")
	carol := login(t, svc, "carol")

	_, err := svc.CreatePlan(ctx, alice.ID, PlanInput{GameID: "game-1", StartTime: at(10), EndTime: at(11), WillingToJoinOthers: true})
	require.NoError(t, err)
	_, err = svc.CreatePlan(ctx, bob.ID, PlanInput{GameID: "game-2", StartTime: at(19), EndTime: at(21)})
	require.NoError(t, err)
	_, err = svc.CreatePlan(ctx, carol.ID, PlanInput{GameID: "game-3", StartTime: at(9), EndTime: at(11), WillingToJoinOthers: true})
	require.NoError(t, err)

	assert.Len(t, svc.ListGroups(ctx, saturday, models.SlotMorning), 2)
	assert.Len(t, svc.ListGroups(ctx, saturday, models.SlotAfternoon), 0)
	assert.Len(t, svc.ListGroups(ctx, saturday, ""), 3)
	assert.Empty(t, svc.ListGroups(ctx, saturday.AddDate(0, 0, 1), ""))

	report := svc.GroupReport(ctx, saturday)
	require.Len(t, report, 3)
	assert.Equal(t, models.SlotMorning, report[0].Slot)
	assert.Len(t, report[0].Groups, 2)
	assert.Len(t, report[0].Recruiting, 2)
	assert.Len(t, report[0].AvailableUsers, 2)
	assert.Empty(t, report[1].Groups)
	assert.Empty(t, report[1].AvailableUsers)
	assert.Len(t, report[2].Groups, 1)
	assert.Empty(t, report[2].AvailableUsers)
}

func TestReconcileCommand(t *testing.T) {
	st := store.NewMemoryStore()
	svc, _ := newTestService(t, st)
	ctx := context.Background()

	// plans written without groups, as an import would
	snap := models.DefaultSnapshot(clock)
	snap.Users = []models.User{{ID: "u1", Name: "alice"}, {ID: "u2", Name: "bob"}}
	snap.WeekendPlans = []models.GamePlan{
		{ID: "p1", UserID: "u1", TargetGameID: "game-1", Date: saturday, StartTime: at(10), EndTime: at(11)},
		{ID: "p2", UserID: "u2", TargetGameID: "game-1", Date: saturday, StartTime: at(10), EndTime: at(11)},
	}
	require.NoError(t, svc.ReplaceSnapshot(ctx, snap))

	count, overflow, err := svc.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, 0, overflow)

	count, _, err = svc.Reconcile(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestReplaceSnapshot(t *testing.T) {
	st := store.NewMemoryStore()
	svc, notifier := newTestService(t, st)
	ctx := context.Background()
	login(t, svc, "alice")

	// no version: written over whatever is stored
	blind := models.DefaultSnapshot(clock)
	require.NoError(t, svc.ReplaceSnapshot(ctx, blind))
	assert.Empty(t, svc.Snapshot(ctx).Users)
	assert.Len(t, notifier.calls, 1)

	stale := models.DefaultSnapshot(clock)
	stale.Version = 1
	assert.ErrorIs(t, svc.ReplaceSnapshot(ctx, stale), utils.ErrConflict)
}

func TestDailyReport(t *testing.T) {
	svc, _ := newTestService(t, store.NewMemoryStore())
	ctx := context.Background()
	alice := login(t, svc, "alice")

	_, err := svc.AddSignups(ctx, alice.ID, saturday, []SignupInput{{GameID: "game-1", Preference: 4}, {GameID: "game-2", Preference: 2}})
	require.NoError(t, err)

	daily := svc.DailyReport(ctx, saturday)
	assert.Equal(t, 2, daily.TotalSignups)
	assert.Equal(t, 1, daily.DistinctUsers)
	assert.InDelta(t, 3.0, daily.AvgPreference, 0.001)
}
