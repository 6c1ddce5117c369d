package challenges

import (
	"context"
	"testing"
	"time"

	"github.com/anuraag/pipkin/internal/notify"
	"github.com/anuraag/pipkin/internal/store"
)

// mockEventRepo implements store.EventRepo for manager tests.
type mockEventRepo struct {
	challengeEvents []store.ChallengeEventData
}

func (m *mockEventRepo) AppendAchievementEvent(_ context.Context, _ store.AchievementEventData) error {
	return nil
}
func (m *mockEventRepo) QueryAchievementEvents(_ context.Context, _ store.QueryOpts) ([]store.AchievementEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendStreakEvent(_ context.Context, _ store.StreakEventData) error {
	return nil
}
func (m *mockEventRepo) QueryStreakEvents(_ context.Context, _ store.QueryOpts) ([]store.StreakEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendChallengeEvent(_ context.Context, data store.ChallengeEventData) error {
	m.challengeEvents = append(m.challengeEvents, data)
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

var monday = time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

func testWeek() []Challenge {
	cosmetic := "accessory_medal"
	return []Challenge{
		{
			ID:        "w1_steps",
			Title:     "Step It Up",
			Objective: Objective{Metric: "weekly_steps", Target: 70_000, Unit: "steps"},
			Reward:    Reward{BonusPoints: 100},
			StartDate: monday,
			EndDate:   monday.AddDate(0, 0, 6),
		},
		{
			ID:        "w1_days",
			Title:     "Five Active Days",
			Objective: Objective{Metric: "active_days", Target: 5, Unit: "days"},
			Reward:    Reward{BonusPoints: 150, CosmeticID: &cosmetic},
			StartDate: monday,
			EndDate:   monday.AddDate(0, 0, 6),
		},
	}
}

func newTestManager() (*Manager, *mockEventRepo, *recordingNotifier) {
	repo := &mockEventRepo{}
	notifier := &recordingNotifier{}
	m := NewManager(repo, notifier)
	m.SetWeek(testWeek(), monday)
	return m, repo, notifier
}

func TestUpdateProgress_ClampsToTarget(t *testing.T) {
	m, _, _ := newTestManager()
	ctx := context.Background()

	if reward := m.UpdateProgress(ctx, "w1_steps", 30_000); reward != nil {
		t.Fatal("partial progress must not return a reward")
	}
	c, _ := m.Get("w1_steps")
	if c.Progress != 30_000 || c.Completed {
		t.Fatalf("challenge = %+v, want progress 30000 not completed", c)
	}

	// Overshoot clamps to the target and completes in the same call.
	reward := m.UpdateProgress(ctx, "w1_steps", 95_000)
	if reward == nil || reward.BonusPoints != 100 {
		t.Fatalf("reward = %+v, want bonus 100", reward)
	}
	c, _ = m.Get("w1_steps")
	if c.Progress != 70_000 || !c.Completed {
		t.Fatalf("challenge = %+v, want clamped at target and completed", c)
	}
}

func TestUpdateProgress_NegativeValueClampsToZero(t *testing.T) {
	m, _, _ := newTestManager()
	ctx := context.Background()

	m.UpdateProgress(ctx, "w1_steps", 30_000)
	if reward := m.UpdateProgress(ctx, "w1_steps", -500); reward != nil {
		t.Fatal("negative progress must not reward")
	}
	c, _ := m.Get("w1_steps")
	if c.Progress != 0 || c.Completed {
		t.Fatalf("challenge = %+v, want progress clamped to 0", c)
	}
}

func TestUpdateProgress_FrozenAfterCompletion(t *testing.T) {
	m, repo, _ := newTestManager()
	ctx := context.Background()

	m.UpdateProgress(ctx, "w1_days", 5)

	if reward := m.UpdateProgress(ctx, "w1_days", 2); reward != nil {
		t.Fatal("completed challenge must not reward again")
	}
	c, _ := m.Get("w1_days")
	if c.Progress != 5 || !c.Completed {
		t.Fatalf("challenge = %+v, want progress frozen at 5", c)
	}
	if len(repo.challengeEvents) != 1 {
		t.Errorf("persisted %d events, want exactly 1", len(repo.challengeEvents))
	}
}

func TestUpdateProgress_UnknownIDIsNoOp(t *testing.T) {
	m, repo, notifier := newTestManager()

	if reward := m.UpdateProgress(context.Background(), "nope", 10); reward != nil {
		t.Fatal("unknown id must not reward")
	}
	if len(repo.challengeEvents) != 0 || len(notifier.sent) != 0 {
		t.Error("unknown id must not persist or notify")
	}
}

func TestComplete_ForcesCompletion(t *testing.T) {
	m, _, _ := newTestManager()
	ctx := context.Background()

	reward := m.Complete(ctx, "w1_days")
	if reward == nil || reward.BonusPoints != 150 {
		t.Fatalf("reward = %+v, want bonus 150", reward)
	}
	if reward.CosmeticID == nil || *reward.CosmeticID != "accessory_medal" {
		t.Errorf("reward cosmetic = %v, want accessory_medal", reward.CosmeticID)
	}
	c, _ := m.Get("w1_days")
	if c.Progress != 5 || !c.Completed {
		t.Fatalf("challenge = %+v, want progress at target", c)
	}

	if m.Complete(ctx, "w1_days") != nil {
		t.Error("second Complete must be a no-op")
	}
}

func TestAllCompleted(t *testing.T) {
	m, _, _ := newTestManager()
	ctx := context.Background()

	if m.AllCompleted() {
		t.Fatal("fresh week should not report all completed")
	}
	m.Complete(ctx, "w1_steps")
	if m.AllCompleted() {
		t.Fatal("one of two completed should not report all completed")
	}
	m.Complete(ctx, "w1_days")
	if !m.AllCompleted() {
		t.Fatal("want all completed")
	}

	ids := m.CompletedIDs()
	if len(ids) != 2 || ids[0] != "w1_steps" || ids[1] != "w1_days" {
		t.Errorf("CompletedIDs = %v, want completion order", ids)
	}

	empty := NewManager(nil, nil)
	if empty.AllCompleted() {
		t.Error("empty week must not report all completed")
	}
}

func TestCompletion_PersistsAndNotifies(t *testing.T) {
	m, repo, notifier := newTestManager()

	m.UpdateProgress(context.Background(), "w1_steps", 70_000)

	if len(repo.challengeEvents) != 1 {
		t.Fatalf("persisted %d events, want 1", len(repo.challengeEvents))
	}
	ev := repo.challengeEvents[0]
	if ev.ChallengeID != "w1_steps" || ev.Target != 70_000 || ev.WeekStart != "2026-08-24" {
		t.Errorf("event = %+v", ev)
	}
	if len(notifier.sent) != 1 || notifier.sent[0].Type != notify.TypeChallengeComplete {
		t.Fatalf("notifications = %+v, want one challenge-complete", notifier.sent)
	}
}

func TestWeekExpired(t *testing.T) {
	m, _, _ := newTestManager()

	tests := []struct {
		name  string
		today time.Time
		want  bool
	}{
		{"same day", monday, false},
		{"last day of week", monday.AddDate(0, 0, 6), false},
		{"first day after", monday.AddDate(0, 0, 7), true},
		{"well after", monday.AddDate(0, 0, 20), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.WeekExpired(tt.today); got != tt.want {
				t.Errorf("WeekExpired(%v) = %v, want %v", tt.today, got, tt.want)
			}
		})
	}

	if !NewManager(nil, nil).WeekExpired(monday) {
		t.Error("manager with no week installed should always report expired")
	}
}

func TestSetWeek_ReplacesPreviousWeek(t *testing.T) {
	m, _, _ := newTestManager()
	ctx := context.Background()
	m.Complete(ctx, "w1_steps")

	next := monday.AddDate(0, 0, 7)
	m.SetWeek(DefaultWeek(next), next)

	if len(m.CompletedIDs()) != 0 {
		t.Error("new week must start with no completions")
	}
	if m.WeekExpired(next) {
		t.Error("fresh week should not be expired")
	}
	if _, ok := m.Get("w1_steps"); ok {
		t.Error("previous week's challenges must be gone")
	}
}

func TestStateRoundTrip(t *testing.T) {
	m, _, _ := newTestManager()
	ctx := context.Background()

	m.UpdateProgress(ctx, "w1_steps", 12_345)
	m.Complete(ctx, "w1_days")

	restored := NewManager(nil, nil)
	restored.Load(m.State())

	if restored.WeekStart() != m.WeekStart() {
		t.Errorf("week start = %v, want %v", restored.WeekStart(), m.WeekStart())
	}
	ids := restored.CompletedIDs()
	if len(ids) != 1 || ids[0] != "w1_days" {
		t.Errorf("CompletedIDs = %v, want [w1_days]", ids)
	}

	c, ok := restored.Get("w1_steps")
	if !ok || c.Progress != 12_345 || c.Completed {
		t.Fatalf("restored challenge = %+v", c)
	}
	orig, _ := m.Get("w1_steps")
	if c.Title != orig.Title || c.Objective != orig.Objective ||
		!c.StartDate.Equal(orig.StartDate) || !c.EndDate.Equal(orig.EndDate) {
		t.Errorf("restored = %+v, want %+v", c, orig)
	}

	done, _ := restored.Get("w1_days")
	if !done.Completed || done.Reward.CosmeticID == nil || *done.Reward.CosmeticID != "accessory_medal" {
		t.Errorf("restored completed challenge = %+v", done)
	}

	// Optional reward fields stay absent through the round trip.
	if c.Reward.AchievementID != nil || c.Reward.CosmeticID != nil {
		t.Error("absent reward fields must stay absent")
	}
}

func TestLoad_Nil(t *testing.T) {
	m, _, _ := newTestManager()
	m.Load(nil)
	if len(m.Active()) != 0 || !m.WeekStart().IsZero() {
		t.Error("Load(nil) must clear all state")
	}
}

func TestDefaultWeek(t *testing.T) {
	week := DefaultWeek(monday)
	if len(week) != 4 {
		t.Fatalf("got %d challenges, want 4", len(week))
	}
	seen := map[string]bool{}
	for _, c := range week {
		if seen[c.ID] {
			t.Errorf("duplicate id %q", c.ID)
		}
		seen[c.ID] = true
		if !c.StartDate.Equal(monday) || !c.EndDate.Equal(monday.AddDate(0, 0, 6)) {
			t.Errorf("%s dates = %v..%v, want full week", c.ID, c.StartDate, c.EndDate)
		}
		if c.Objective.Target <= 0 || c.Progress != 0 || c.Completed {
			t.Errorf("%s not a fresh challenge: %+v", c.ID, c)
		}
	}

	// Ids are scoped to the week.
	next := DefaultWeek(monday.AddDate(0, 0, 7))
	if week[0].ID == next[0].ID {
		t.Error("consecutive weeks must not share ids")
	}
}

func TestProgressPercentage(t *testing.T) {
	tests := []struct {
		progress, target int
		want             int
	}{
		{0, 100, 0},
		{1, 200, 1},
		{50, 100, 50},
		{100, 100, 100},
		{150, 100, 100},
		{5, 0, 0},
	}
	for _, tt := range tests {
		c := Challenge{Progress: tt.progress, Objective: Objective{Target: tt.target}}
		if got := c.ProgressPercentage(); got != tt.want {
			t.Errorf("ProgressPercentage(%d/%d) = %d, want %d", tt.progress, tt.target, got, tt.want)
		}
	}
}
