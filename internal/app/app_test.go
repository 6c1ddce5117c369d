package app

import (
	"context"
	"testing"
	"time"

	"github.com/anuraag/pipkin/internal/challenges"
	"github.com/anuraag/pipkin/internal/store"
)

// mockEventRepo discards events; the component-level tests cover event
// contents.
type mockEventRepo struct{}

func (mockEventRepo) AppendAchievementEvent(context.Context, store.AchievementEventData) error {
	return nil
}
func (mockEventRepo) QueryAchievementEvents(context.Context, store.QueryOpts) ([]store.AchievementEventRecord, error) {
	return nil, nil
}
func (mockEventRepo) AppendStreakEvent(context.Context, store.StreakEventData) error { return nil }
func (mockEventRepo) QueryStreakEvents(context.Context, store.QueryOpts) ([]store.StreakEventRecord, error) {
	return nil, nil
}
func (mockEventRepo) AppendChallengeEvent(context.Context, store.ChallengeEventData) error {
	return nil
}
func (mockEventRepo) QueryChallengeEvents(context.Context, store.QueryOpts) ([]store.ChallengeEventRecord, error) {
	return nil, nil
}
func (mockEventRepo) AppendCosmeticEvent(context.Context, store.CosmeticEventData) error { return nil }
func (mockEventRepo) QueryCosmeticEvents(context.Context, store.QueryOpts) ([]store.CosmeticEventRecord, error) {
	return nil, nil
}
func (mockEventRepo) UnlockCounts(context.Context) (map[string]int, int, error) {
	return nil, 0, nil
}

// mockSnapshotRepo keeps the latest snapshot in memory.
type mockSnapshotRepo struct {
	saved []*store.Snapshot
}

func (m *mockSnapshotRepo) Save(_ context.Context, snap *store.Snapshot) error {
	m.saved = append(m.saved, snap)
	return nil
}

func (m *mockSnapshotRepo) Latest(context.Context) (*store.Snapshot, error) {
	if len(m.saved) == 0 {
		return nil, nil
	}
	return m.saved[len(m.saved)-1], nil
}

func (m *mockSnapshotRepo) Prune(context.Context, int) error { return nil }

func newTestApp() (*App, *mockSnapshotRepo) {
	snapshots := &mockSnapshotRepo{}
	return NewWith(mockEventRepo{}, snapshots, nil, Options{}), snapshots
}

var tuesday = time.Date(2026, 8, 25, 9, 30, 0, 0, time.UTC)

func TestRecordDailyProgress_FirstDay(t *testing.T) {
	a, snapshots := newTestApp()
	ctx := context.Background()

	res := a.RecordDailyProgress(ctx, DailyInput{Date: tuesday, Steps: 10_500})

	if !res.CriteriaMet {
		t.Error("10500 steps should meet the default daily goal")
	}
	if res.Streak.NewStreak != 1 {
		t.Errorf("streak = %d, want 1", res.Streak.NewStreak)
	}
	if !res.WeekRolledOver {
		t.Error("first recording should install a challenge week")
	}
	if len(a.Challenges.Active()) == 0 {
		t.Error("no active challenges after rollover")
	}

	unlocked := map[string]bool{}
	for _, u := range res.Unlocked {
		unlocked[u.Achievement.ID] = true
	}
	for _, want := range []string{"first_day", "steps_5000", "steps_10000"} {
		if !unlocked[want] {
			t.Errorf("missing unlock %s, got %v", want, unlocked)
		}
	}
	if !a.Inventory.Owns("hat_cap") || !a.Inventory.Owns("hat_crown") {
		t.Error("unlock rewards should land in the inventory")
	}

	if len(snapshots.saved) == 0 {
		t.Fatal("recording must save a snapshot")
	}
	data := snapshots.saved[len(snapshots.saved)-1].Data
	if data.Totals == nil || data.Totals.TotalSteps != 10_500 || data.Totals.DaysRecorded != 1 {
		t.Errorf("snapshot totals = %+v", data.Totals)
	}
}

func TestRecordDailyProgress_RepeatDayDoesNotDoubleCount(t *testing.T) {
	a, _ := newTestApp()
	ctx := context.Background()

	a.RecordDailyProgress(ctx, DailyInput{Date: tuesday, Steps: 8000})
	res := a.RecordDailyProgress(ctx, DailyInput{Date: tuesday, Steps: 8000})

	if res.Streak.NewStreak != 1 {
		t.Errorf("streak = %d, want still 1", res.Streak.NewStreak)
	}
	totals := a.Totals()
	if totals.TotalSteps != 8000 || totals.DaysRecorded != 1 {
		t.Errorf("totals = %+v, want single-count", totals)
	}
	if len(res.Unlocked) != 0 {
		t.Errorf("repeat recording re-unlocked %v", res.Unlocked)
	}
}

func TestRecordDailyProgress_ChallengeRewardForwarding(t *testing.T) {
	a, _ := newTestApp()
	ctx := context.Background()

	cosmetic := "theme_neon"
	achievement := "first_challenge"
	ws := WeekStart(tuesday)
	a.Challenges.SetWeek([]challenges.Challenge{{
		ID:        "test_walk",
		Title:     "Tiny Walk",
		Objective: challenges.Objective{Metric: "weekly_steps", Target: 5000, Unit: "steps"},
		Reward: challenges.Reward{
			BonusPoints:   50,
			AchievementID: &achievement,
			CosmeticID:    &cosmetic,
		},
		StartDate: ws,
		EndDate:   ws.AddDate(0, 0, 6),
	}}, ws)

	res := a.RecordDailyProgress(ctx, DailyInput{Date: tuesday, Steps: 9000})

	if len(res.Completed) != 1 || res.Completed[0].ID != "test_walk" {
		t.Fatalf("completed = %+v, want test_walk", res.Completed)
	}
	if res.BonusPoints != 50 {
		t.Errorf("bonus = %d, want 50", res.BonusPoints)
	}
	if v, ok := a.Engine.Get(achievement); !ok || !v.Earned() {
		t.Error("reward achievement should be unlocked")
	}
	if !a.Inventory.Owns(cosmetic) {
		t.Error("reward cosmetic should be owned")
	}
	totals := a.Totals()
	if totals.ChallengesDone != 1 || totals.BonusPoints != 50 {
		t.Errorf("totals = %+v", totals)
	}
	// Single challenge completed means the week is swept.
	if totals.WeeklySweeps != 1 {
		t.Errorf("sweeps = %d, want 1", totals.WeeklySweeps)
	}
}

func TestRecordDailyProgress_SweepCountedOncePerWeek(t *testing.T) {
	a, _ := newTestApp()
	ctx := context.Background()

	ws := WeekStart(tuesday)
	a.Challenges.SetWeek([]challenges.Challenge{{
		ID:        "quick",
		Title:     "Quick One",
		Objective: challenges.Objective{Metric: "active_days", Target: 1, Unit: "days"},
		StartDate: ws,
		EndDate:   ws.AddDate(0, 0, 6),
	}}, ws)

	a.RecordDailyProgress(ctx, DailyInput{Date: tuesday, Steps: 8000})
	a.RecordDailyProgress(ctx, DailyInput{Date: tuesday.AddDate(0, 0, 1), Steps: 8000})

	if got := a.Totals().WeeklySweeps; got != 1 {
		t.Errorf("sweeps = %d, want counted once", got)
	}
}

func TestRecordDailyProgress_ActiveMinutesDriveChallenge(t *testing.T) {
	a, _ := newTestApp()
	ctx := context.Background()

	ws := WeekStart(tuesday)
	a.Challenges.SetWeek([]challenges.Challenge{{
		ID:        "move",
		Title:     "Keep Moving",
		Objective: challenges.Objective{Metric: "active_minutes", Target: 60, Unit: "min"},
		Reward:    challenges.Reward{BonusPoints: 25},
		StartDate: ws,
		EndDate:   ws.AddDate(0, 0, 6),
	}}, ws)

	a.RecordDailyProgress(ctx, DailyInput{Date: tuesday, Steps: 1000, ActiveMinutes: 40})
	c, _ := a.Challenges.Get("move")
	if c.Progress != 40 || c.Completed {
		t.Fatalf("challenge = %+v, want 40 minutes logged", c)
	}

	res := a.RecordDailyProgress(ctx, DailyInput{Date: tuesday.AddDate(0, 0, 1), Steps: 1000, ActiveMinutes: 30})
	if len(res.Completed) != 1 || res.Completed[0].ID != "move" {
		t.Fatalf("completed = %+v, want move", res.Completed)
	}
	if res.BonusPoints != 25 {
		t.Errorf("bonus = %d, want 25", res.BonusPoints)
	}

	// A day with no reported minutes leaves the objective alone.
	before, _ := a.Challenges.Get("move")
	a.RecordDailyProgress(ctx, DailyInput{Date: tuesday.AddDate(0, 0, 2), Steps: 1000})
	after, _ := a.Challenges.Get("move")
	if before.Progress != after.Progress {
		t.Errorf("progress moved from %d to %d without active minutes", before.Progress, after.Progress)
	}
}

func TestRecordDailyProgress_MissedGoal(t *testing.T) {
	a, _ := newTestApp()
	ctx := context.Background()

	a.RecordDailyProgress(ctx, DailyInput{Date: tuesday, Steps: 9000})
	res := a.RecordDailyProgress(ctx, DailyInput{Date: tuesday.AddDate(0, 0, 1), Steps: 2000})

	if res.CriteriaMet {
		t.Error("2000 steps should not meet the goal")
	}
	if res.Streak.NewStreak != 0 || !res.Streak.WasReset {
		t.Errorf("streak = %+v, want reset", res.Streak)
	}
	// The day still counts toward lifetime totals.
	totals := a.Totals()
	if totals.DaysRecorded != 2 || totals.TotalSteps != 11_000 {
		t.Errorf("totals = %+v", totals)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	a, snapshots := newTestApp()
	ctx := context.Background()

	a.RecordDailyProgress(ctx, DailyInput{Date: tuesday, Steps: 10_500})
	a.RecordDailyProgress(ctx, DailyInput{Date: tuesday.AddDate(0, 0, 1), Steps: 7500})
	a.Inventory.Equip(ctx, "hat_crown")
	if err := a.SaveSnapshot(ctx); err != nil {
		t.Fatal(err)
	}

	restored := NewWith(mockEventRepo{}, snapshots, nil, Options{})
	if err := restored.LoadLatest(ctx); err != nil {
		t.Fatal(err)
	}

	if restored.Tracker.Current() != 2 {
		t.Errorf("restored streak = %d, want 2", restored.Tracker.Current())
	}
	if !restored.Inventory.Owns("hat_crown") {
		t.Error("restored inventory lost hat_crown")
	}
	if got := restored.Inventory.Equipped(); got["hat"] != "hat_crown" {
		t.Errorf("restored equipped = %v", got)
	}
	if v, ok := restored.Engine.Get("steps_10000"); !ok || !v.Earned() {
		t.Error("restored engine lost steps_10000")
	}
	if restored.Totals().TotalSteps != 18_000 {
		t.Errorf("restored totals = %+v", restored.Totals())
	}
	if restored.Challenges.WeekStart() != a.Challenges.WeekStart() {
		t.Error("restored challenges lost the week boundary")
	}

	// A recording after restore continues seamlessly.
	res := restored.RecordDailyProgress(ctx, DailyInput{Date: tuesday.AddDate(0, 0, 2), Steps: 8000})
	if res.Streak.NewStreak != 3 {
		t.Errorf("post-restore streak = %d, want 3", res.Streak.NewStreak)
	}
}

func TestLoadLatest_FreshInstall(t *testing.T) {
	a, _ := newTestApp()
	if err := a.LoadLatest(context.Background()); err != nil {
		t.Fatal(err)
	}
	if a.Tracker.Current() != 0 || a.Totals().DaysRecorded != 0 {
		t.Error("fresh install should start empty")
	}
}

func TestReset(t *testing.T) {
	a, _ := newTestApp()
	ctx := context.Background()

	a.RecordDailyProgress(ctx, DailyInput{Date: tuesday, Steps: 10_500})
	a.Reset()

	if a.Tracker.Current() != 0 || len(a.Inventory.Owned()) != 0 {
		t.Error("reset should clear all services")
	}
	if a.Totals() != (store.TotalsState{}) {
		t.Errorf("totals = %+v, want zero", a.Totals())
	}
	if stats := a.Engine.Statistics(); stats.TotalEarned != 0 {
		t.Errorf("earned = %d, want 0", stats.TotalEarned)
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{"2026-08-24", "2026-08-24"}, // Monday maps to itself
		{"2026-08-25", "2026-08-24"},
		{"2026-08-30", "2026-08-24"}, // Sunday belongs to the preceding Monday
		{"2026-08-31", "2026-08-31"},
	}
	for _, tt := range tests {
		d, err := time.Parse(time.DateOnly, tt.date)
		if err != nil {
			t.Fatal(err)
		}
		if got := WeekStart(d).Format(time.DateOnly); got != tt.want {
			t.Errorf("WeekStart(%s) = %s, want %s", tt.date, got, tt.want)
		}
	}
}
