package streak

import (
	"context"
	"testing"
	"time"

	"github.com/anuraag/pipkin/internal/achievements"
	"github.com/anuraag/pipkin/internal/notify"
	"github.com/anuraag/pipkin/internal/store"
)

// mockUnlocker records unlock calls.
type mockUnlocker struct {
	unlocked []string
}

func (m *mockUnlocker) Unlock(_ context.Context, id, _ string) achievements.UnlockResult {
	m.unlocked = append(m.unlocked, id)
	return achievements.UnlockResult{IsNewUnlock: true}
}

// mockEventRepo implements store.EventRepo for tracker tests.
type mockEventRepo struct {
	streakEvents []store.StreakEventData
}

func (m *mockEventRepo) AppendAchievementEvent(_ context.Context, _ store.AchievementEventData) error {
	return nil
}
func (m *mockEventRepo) QueryAchievementEvents(_ context.Context, _ store.QueryOpts) ([]store.AchievementEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendStreakEvent(_ context.Context, data store.StreakEventData) error {
	m.streakEvents = append(m.streakEvents, data)
	return nil
}
func (m *mockEventRepo) QueryStreakEvents(_ context.Context, _ store.QueryOpts) ([]store.StreakEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendChallengeEvent(_ context.Context, _ store.ChallengeEventData) error {
	return nil
}
func (m *mockEventRepo) QueryChallengeEvents(_ context.Context, _ store.QueryOpts) ([]store.ChallengeEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendCosmeticEvent(_ context.Context, _ store.CosmeticEventData) error {
	return nil
}
func (m *mockEventRepo) QueryCosmeticEvents(_ context.Context, _ store.QueryOpts) ([]store.CosmeticEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) UnlockCounts(_ context.Context) (map[string]int, int, error) {
	return nil, 0, nil
}

// recordingNotifier collects enqueued notifications.
type recordingNotifier struct {
	sent []notify.Notification
}

func (r *recordingNotifier) Enqueue(n notify.Notification) {
	r.sent = append(r.sent, n)
}

func day(s string) time.Time {
	d, err := ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newTestTracker() (*Tracker, *mockUnlocker, *mockEventRepo, *recordingNotifier) {
	unlocker := &mockUnlocker{}
	repo := &mockEventRepo{}
	notifier := &recordingNotifier{}
	return NewTracker(repo, unlocker, notifier), unlocker, repo, notifier
}

func TestRecordDaily_ConsecutiveIncrement(t *testing.T) {
	tr, _, _, _ := newTestTracker()
	ctx := context.Background()

	r := tr.RecordDaily(ctx, day("2026-08-01"), true)
	if r.PreviousStreak != 0 || r.NewStreak != 1 || r.WasReset {
		t.Fatalf("first day = %+v, want 0→1", r)
	}

	r = tr.RecordDaily(ctx, day("2026-08-02"), true)
	if r.PreviousStreak != 1 || r.NewStreak != 2 {
		t.Fatalf("second day = %+v, want 1→2", r)
	}
	if tr.Longest() != 2 {
		t.Errorf("Longest = %d, want 2", tr.Longest())
	}
}

func TestRecordDaily_SameDayIsNoOp(t *testing.T) {
	tr, _, _, _ := newTestTracker()
	ctx := context.Background()

	tr.RecordDaily(ctx, day("2026-08-01"), true)
	r := tr.RecordDaily(ctx, day("2026-08-01"), true)
	if r.PreviousStreak != 1 || r.NewStreak != 1 {
		t.Errorf("same-day repeat = %+v, want counter unchanged at 1", r)
	}

	// Same-day guard also wins over a reported miss.
	r = tr.RecordDaily(ctx, day("2026-08-01"), false)
	if r.NewStreak != 1 || r.WasReset {
		t.Errorf("same-day miss = %+v, want counter unchanged", r)
	}
}

func TestRecordDaily_MissResets(t *testing.T) {
	tr, _, _, _ := newTestTracker()
	ctx := context.Background()

	tr.RecordDaily(ctx, day("2026-08-01"), true)
	tr.RecordDaily(ctx, day("2026-08-02"), true)

	r := tr.RecordDaily(ctx, day("2026-08-03"), false)
	if r.NewStreak != 0 || !r.WasReset {
		t.Fatalf("miss = %+v, want reset to 0 with WasReset", r)
	}
	if tr.Longest() != 2 {
		t.Errorf("Longest = %d, want 2 (never decreases)", tr.Longest())
	}

	// A miss with no streak to lose reports WasReset=false.
	r = tr.RecordDaily(ctx, day("2026-08-04"), false)
	if r.WasReset {
		t.Error("miss at zero streak should not report WasReset")
	}
}

func TestRecordDaily_GapIsImplicitMiss(t *testing.T) {
	tr, _, _, _ := newTestTracker()
	ctx := context.Background()

	tr.RecordDaily(ctx, day("2026-08-01"), true)
	tr.RecordDaily(ctx, day("2026-08-02"), true)

	// Two skipped days, then a successful one: old run closes, new run
	// starts at 1.
	r := tr.RecordDaily(ctx, day("2026-08-05"), true)
	if r.NewStreak != 1 || !r.WasReset {
		t.Fatalf("gap day = %+v, want restart at 1 with WasReset", r)
	}

	st := tr.Snapshot()
	if len(st.History) != 1 || st.History[0].Length != 2 {
		t.Fatalf("history = %+v, want one closed segment of length 2", st.History)
	}
	if !st.History[0].Start.Equal(day("2026-08-01")) || !st.History[0].End.Equal(day("2026-08-02")) {
		t.Errorf("segment bounds = %v..%v, want 2026-08-01..2026-08-02", st.History[0].Start, st.History[0].End)
	}
}

func TestRecordDaily_MilestonesFireOnceEachInOrder(t *testing.T) {
	tr, unlocker, _, _ := newTestTracker()
	ctx := context.Background()

	var milestones []int
	d := day("2026-01-01")
	for i := 0; i < 90; i++ {
		r := tr.RecordDaily(ctx, d.AddDate(0, 0, i), true)
		if r.Milestone != nil {
			milestones = append(milestones, r.Milestone.Days)
		}
	}

	want := []int{7, 14, 30, 60, 90}
	if len(milestones) != len(want) {
		t.Fatalf("milestones = %v, want %v", milestones, want)
	}
	for i := range want {
		if milestones[i] != want[i] {
			t.Fatalf("milestones = %v, want %v", milestones, want)
		}
	}

	wantIDs := []string{"streak_7", "streak_14", "streak_30", "streak_60", "streak_90"}
	if len(unlocker.unlocked) != len(wantIDs) {
		t.Fatalf("unlocked = %v, want %v", unlocker.unlocked, wantIDs)
	}
	for i := range wantIDs {
		if unlocker.unlocked[i] != wantIDs[i] {
			t.Fatalf("unlocked = %v, want %v", unlocker.unlocked, wantIDs)
		}
	}
}

func TestRecordDaily_SeventhDayScenario(t *testing.T) {
	tr, unlocker, _, notifier := newTestTracker()
	ctx := context.Background()

	tr.Load(&store.StreakState{Current: 6, Longest: 6, LastRecorded: "2026-08-06"})

	r := tr.RecordDaily(ctx, day("2026-08-07"), true)
	if r.NewStreak != 7 {
		t.Fatalf("NewStreak = %d, want 7", r.NewStreak)
	}
	if r.Milestone == nil || r.Milestone.Days != 7 || r.Milestone.AchievementID != "streak_7" {
		t.Fatalf("Milestone = %+v, want {7 streak_7}", r.Milestone)
	}
	if len(unlocker.unlocked) != 1 || unlocker.unlocked[0] != "streak_7" {
		t.Errorf("unlocked = %v, want [streak_7]", unlocker.unlocked)
	}
	if len(notifier.sent) != 1 || notifier.sent[0].Type != notify.TypeStreakMilestone {
		t.Errorf("notifications = %+v, want one streak-milestone", notifier.sent)
	}
}

func TestMilestoneReached_PureRead(t *testing.T) {
	tr, unlocker, _, _ := newTestTracker()

	tr.Load(&store.StreakState{Current: 14, Longest: 14, LastRecorded: "2026-08-14"})

	m := tr.MilestoneReached()
	if m == nil || m.Days != 14 || m.AchievementID != "streak_14" {
		t.Fatalf("MilestoneReached = %+v, want {14 streak_14}", m)
	}
	if len(unlocker.unlocked) != 0 {
		t.Error("pure read must not unlock anything")
	}

	tr.Load(&store.StreakState{Current: 15, Longest: 15, LastRecorded: "2026-08-15"})
	if tr.MilestoneReached() != nil {
		t.Error("15 is not a milestone")
	}
}

func TestRecordDaily_PersistsEvents(t *testing.T) {
	tr, _, repo, _ := newTestTracker()
	ctx := context.Background()

	tr.Load(&store.StreakState{Current: 6, Longest: 6, LastRecorded: "2026-08-06"})
	tr.RecordDaily(ctx, day("2026-08-07"), true)

	if len(repo.streakEvents) != 1 {
		t.Fatalf("persisted %d events, want 1", len(repo.streakEvents))
	}
	ev := repo.streakEvents[0]
	if ev.Date != "2026-08-07" || !ev.CriteriaMet || ev.NewStreak != 7 {
		t.Errorf("event = %+v", ev)
	}
	if ev.Milestone == nil || *ev.Milestone != 7 {
		t.Error("event missing milestone")
	}
}

func TestStateRoundTrip(t *testing.T) {
	tr, _, _, _ := newTestTracker()
	ctx := context.Background()

	tr.RecordDaily(ctx, day("2026-08-01"), true)
	tr.RecordDaily(ctx, day("2026-08-02"), true)
	tr.RecordDaily(ctx, day("2026-08-03"), false)
	tr.RecordDaily(ctx, day("2026-08-04"), true)

	state := tr.State()

	restored := NewTracker(nil, nil, nil)
	restored.Load(state)

	if restored.Current() != 1 || restored.Longest() != 2 {
		t.Errorf("restored current/longest = %d/%d, want 1/2", restored.Current(), restored.Longest())
	}
	st := restored.Snapshot()
	if len(st.History) != 1 || st.History[0].Length != 2 {
		t.Errorf("restored history = %+v, want one segment of length 2", st.History)
	}
	if !st.LastRecorded.Equal(day("2026-08-04")) {
		t.Errorf("restored LastRecorded = %v, want 2026-08-04", st.LastRecorded)
	}

	// Restoring continues the streak seamlessly.
	r := restored.RecordDaily(ctx, day("2026-08-05"), true)
	if r.NewStreak != 2 {
		t.Errorf("post-restore day = %+v, want streak 2", r)
	}
}

func TestLoad_LongestNeverBelowCurrent(t *testing.T) {
	tr := NewTracker(nil, nil, nil)
	tr.Load(&store.StreakState{Current: 9, Longest: 3})
	if tr.Longest() != 9 {
		t.Errorf("Longest = %d, want clamped to 9", tr.Longest())
	}
}

func TestNilCollaborators(t *testing.T) {
	tr := NewTracker(nil, nil, nil)
	ctx := context.Background()

	tr.Load(&store.StreakState{Current: 6, Longest: 6, LastRecorded: "2026-08-06"})
	r := tr.RecordDaily(ctx, day("2026-08-07"), true)
	if r.Milestone == nil {
		t.Error("milestone should be reported even with nil collaborators")
	}
}
