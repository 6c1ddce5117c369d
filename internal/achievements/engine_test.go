package achievements

import (
	"context"
	"testing"
	"time"

	"github.com/anuraag/pipkin/internal/cosmetics"
	"github.com/anuraag/pipkin/internal/notify"
	"github.com/anuraag/pipkin/internal/rarity"
	"github.com/anuraag/pipkin/internal/store"
)

// mockEventRepo implements store.EventRepo for engine tests.
type mockEventRepo struct {
	unlockEvents []store.AchievementEventData
}

func (m *mockEventRepo) AppendAchievementEvent(_ context.Context, data store.AchievementEventData) error {
	m.unlockEvents = append(m.unlockEvents, data)
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

func newTestEngine() (*Engine, *cosmetics.Inventory, *mockEventRepo, *recordingNotifier) {
	repo := &mockEventRepo{}
	notifier := &recordingNotifier{}
	inv := cosmetics.NewInventory(nil, nil)
	return NewEngine(repo, inv, notifier), inv, repo, notifier
}

func TestCheckMilestone_ThresholdBoundary(t *testing.T) {
	eng, _, _, _ := newTestEngine()
	ctx := context.Background()

	// One below the threshold never unlocks.
	results := eng.CheckMilestone(ctx, map[string]int{MetricSteps: 9999})
	for _, r := range results {
		if r.Achievement.ID == "steps_10000" {
			t.Fatal("steps_10000 unlocked below threshold")
		}
	}
	v, _ := eng.Get("steps_10000")
	if v.Earned() {
		t.Fatal("steps_10000 earned below threshold")
	}
	if v.Progress == nil || v.Progress.Current != 9999 {
		t.Errorf("expected partial progress recorded, got %+v", v.Progress)
	}

	// Exactly the threshold unlocks.
	results = eng.CheckMilestone(ctx, map[string]int{MetricSteps: 10000})
	found := false
	for _, r := range results {
		if r.Achievement.ID == "steps_10000" && r.IsNewUnlock {
			found = true
		}
	}
	if !found {
		t.Fatal("steps_10000 not unlocked at threshold")
	}

	// Re-supplying the same metrics never unlocks twice.
	results = eng.CheckMilestone(ctx, map[string]int{MetricSteps: 10000})
	for _, r := range results {
		if r.Achievement.ID == "steps_10000" {
			t.Fatal("steps_10000 unlocked twice")
		}
	}
}

func TestCheckMilestone_UntrackedMetricsIgnored(t *testing.T) {
	eng, _, _, _ := newTestEngine()

	results := eng.CheckMilestone(context.Background(), map[string]int{"heart_rate": 180})
	if len(results) != 0 {
		t.Errorf("unlocked %d achievements for an untracked metric", len(results))
	}
}

func TestUnlock_GrantsCosmetics(t *testing.T) {
	eng, inv, repo, notifier := newTestEngine()
	ctx := context.Background()

	result := eng.Unlock(ctx, "steps_10000", "manual")
	if !result.IsNewUnlock {
		t.Fatal("expected new unlock")
	}
	if len(result.CosmeticsUnlocked) != 1 || result.CosmeticsUnlocked[0] != "hat_crown" {
		t.Fatalf("CosmeticsUnlocked = %v, want [hat_crown]", result.CosmeticsUnlocked)
	}
	if !inv.Owns("hat_crown") {
		t.Error("hat_crown not in inventory")
	}
	if len(repo.unlockEvents) != 1 || repo.unlockEvents[0].AchievementID != "steps_10000" {
		t.Errorf("persisted events = %+v, want one steps_10000 unlock", repo.unlockEvents)
	}
	if len(notifier.sent) != 1 || notifier.sent[0].Type != notify.TypeAchievement {
		t.Errorf("notifications = %+v, want one achievement notification", notifier.sent)
	}
	if notifier.sent[0].Priority != notify.PriorityHigh {
		t.Errorf("priority = %q, want high", notifier.sent[0].Priority)
	}
}

func TestUnlock_RepeatIsNoOp(t *testing.T) {
	eng, _, repo, notifier := newTestEngine()
	ctx := context.Background()

	first := eng.Unlock(ctx, "steps_10000", "manual")
	v, _ := eng.Get("steps_10000")
	firstUnlockAt := *v.UnlockedAt

	second := eng.Unlock(ctx, "steps_10000", "manual")
	if second.IsNewUnlock {
		t.Error("re-unlock reported as new")
	}
	if len(second.CosmeticsUnlocked) != 0 {
		t.Errorf("re-unlock re-granted cosmetics: %v", second.CosmeticsUnlocked)
	}
	if second.Achievement == nil || second.Achievement.ID != first.Achievement.ID {
		t.Error("re-unlock should still return the achievement")
	}

	v, _ = eng.Get("steps_10000")
	if !v.UnlockedAt.Equal(firstUnlockAt) {
		t.Error("unlock timestamp must be immutable")
	}
	if len(repo.unlockEvents) != 1 || len(notifier.sent) != 1 {
		t.Error("re-unlock should not persist or notify again")
	}
}

func TestUnlock_UnknownIDIsNoOp(t *testing.T) {
	eng, _, repo, _ := newTestEngine()

	result := eng.Unlock(context.Background(), "nope", "manual")
	if result.Achievement != nil || result.IsNewUnlock {
		t.Errorf("unknown id should be a silent no-op, got %+v", result)
	}
	if len(repo.unlockEvents) != 0 {
		t.Error("no event expected for unknown id")
	}
}

func TestUpdateProgress_Math(t *testing.T) {
	eng, _, _, _ := newTestEngine()
	ctx := context.Background()

	// steps_10000 has target 10000.
	tests := []struct {
		current int
		wantPct int
	}{
		{0, 0},
		{1, 0},
		{50, 1}, // 0.5% rounds up to 1
		{2500, 25},
		{9999, 100},
		{10000, 100},
		{15000, 100},
	}

	for _, tt := range tests {
		p := eng.UpdateProgress(ctx, "steps_10000", tt.current)
		if p == nil {
			t.Fatalf("UpdateProgress(%d) = nil", tt.current)
		}
		if p.Percentage != tt.wantPct {
			t.Errorf("UpdateProgress(%d).Percentage = %d, want %d", tt.current, p.Percentage, tt.wantPct)
		}
		if p.Target != 10000 {
			t.Errorf("Target = %d, want 10000", p.Target)
		}
	}

	p := eng.UpdateProgress(ctx, "steps_10000", 4000)
	if p.Remaining() != 6000 {
		t.Errorf("Remaining = %d, want 6000", p.Remaining())
	}
}

func TestUpdateProgress_PinnedAfterUnlock(t *testing.T) {
	eng, _, _, _ := newTestEngine()
	ctx := context.Background()

	eng.Unlock(ctx, "steps_10000", "manual")
	p := eng.UpdateProgress(ctx, "steps_10000", 3)
	if p == nil || p.Percentage != 100 || p.Current != 10000 {
		t.Errorf("progress after unlock = %+v, want pinned at 100%%/10000", p)
	}
}

func TestUpdateProgress_UnknownIDIsNoOp(t *testing.T) {
	eng, _, _, _ := newTestEngine()
	if p := eng.UpdateProgress(context.Background(), "nope", 5); p != nil {
		t.Errorf("expected nil for unknown id, got %+v", p)
	}
}

func TestStatistics(t *testing.T) {
	eng, _, _, _ := newTestEngine()
	ctx := context.Background()

	stats := eng.Statistics()
	if stats.TotalEarned != 0 || stats.TotalAvailable != CatalogSize() {
		t.Fatalf("fresh stats = %+v", stats)
	}
	if stats.RarestBadge != nil {
		t.Error("fresh engine should have no rarest badge")
	}

	eng.Unlock(ctx, "first_day", "manual")    // common
	eng.Unlock(ctx, "steps_10000", "manual")  // rare
	eng.Unlock(ctx, "steps_5000", "manual")   // common

	stats = eng.Statistics()
	if stats.TotalEarned != 3 {
		t.Errorf("TotalEarned = %d, want 3", stats.TotalEarned)
	}
	wantPct := int(float64(3)/float64(CatalogSize())*100 + 0.5)
	if stats.CompletionPercentage != wantPct {
		t.Errorf("CompletionPercentage = %d, want %d", stats.CompletionPercentage, wantPct)
	}
	if stats.RarestBadge == nil || stats.RarestBadge.ID != "steps_10000" {
		t.Errorf("RarestBadge = %+v, want steps_10000", stats.RarestBadge)
	}
	if len(stats.RecentUnlocks) != 3 {
		t.Errorf("RecentUnlocks = %d, want 3", len(stats.RecentUnlocks))
	}
}

func TestStatistics_RarestTieBreaksEarliest(t *testing.T) {
	eng, _, _, _ := newTestEngine()

	// Two rare achievements with controlled unlock times.
	eng.Load(&store.AchievementsState{
		Unlocked: map[string]string{
			"steps_10000": "2026-03-02T10:00:00Z",
			"streak_14":   "2026-03-01T10:00:00Z",
			"first_day":   "2026-03-03T10:00:00Z",
		},
	})

	stats := eng.Statistics()
	if stats.RarestBadge == nil {
		t.Fatal("expected rarest badge")
	}
	if stats.RarestBadge.Rarity != rarity.Rare {
		t.Fatalf("rarest rarity = %q, want rare", stats.RarestBadge.Rarity)
	}
	if stats.RarestBadge.ID != "streak_14" {
		t.Errorf("RarestBadge = %s, want streak_14 (earliest of equal rarity)", stats.RarestBadge.ID)
	}
}

func TestStatistics_RarestSurvivesRecencySort(t *testing.T) {
	eng, _, _, _ := newTestEngine()

	// The rarest badge is also the most recent unlock, so the recency
	// sort for RecentUnlocks moves it away from its catalog-order slot.
	eng.Load(&store.AchievementsState{
		Unlocked: map[string]string{
			"steps_5000":     "2026-03-01T10:00:00Z", // common
			"steps_total_1m": "2026-03-02T10:00:00Z", // legendary
		},
	})

	stats := eng.Statistics()
	if stats.RarestBadge == nil {
		t.Fatal("expected rarest badge")
	}
	if stats.RarestBadge.ID != "steps_total_1m" {
		t.Fatalf("RarestBadge = %s (%s), want steps_total_1m (legendary)",
			stats.RarestBadge.ID, stats.RarestBadge.Rarity)
	}
	if stats.RecentUnlocks[0].ID != "steps_total_1m" {
		t.Errorf("RecentUnlocks[0] = %s, want most recent first", stats.RecentUnlocks[0].ID)
	}
}

func TestFilter(t *testing.T) {
	eng, _, _, _ := newTestEngine()
	ctx := context.Background()
	eng.Unlock(ctx, "streak_7", "streak")

	if got := len(eng.Filter(FilterOpts{})); got != CatalogSize() {
		t.Errorf("empty filter returned %d, want full catalog %d", got, CatalogSize())
	}

	earned := eng.Filter(FilterOpts{Status: StatusEarned})
	if len(earned) != 1 || earned[0].ID != "streak_7" {
		t.Errorf("earned = %+v, want [streak_7]", earned)
	}

	locked := eng.Filter(FilterOpts{Status: StatusLocked})
	if len(locked) != CatalogSize()-1 {
		t.Errorf("locked = %d, want %d", len(locked), CatalogSize()-1)
	}

	streaks := eng.Filter(FilterOpts{Category: CategoryStreakReward})
	for _, v := range streaks {
		if v.Category != CategoryStreakReward {
			t.Errorf("category filter leaked %q", v.Category)
		}
	}

	combined := eng.Filter(FilterOpts{Category: CategoryStreakReward, Status: StatusEarned, Rarity: "common"})
	if len(combined) != 1 || combined[0].ID != "streak_7" {
		t.Errorf("combined filter = %+v, want [streak_7]", combined)
	}
}

func TestStateRoundTrip(t *testing.T) {
	eng, _, _, _ := newTestEngine()
	ctx := context.Background()

	eng.Unlock(ctx, "steps_10000", "manual")
	eng.UpdateProgress(ctx, "steps_total_100k", 40_000)

	state := eng.State()

	restored := NewEngine(nil, nil, nil)
	restored.Load(state)

	v, _ := restored.Get("steps_10000")
	if !v.Earned() {
		t.Fatal("unlock not restored")
	}
	if v.Progress == nil || v.Progress.Percentage != 100 {
		t.Error("unlocked achievement should restore with full progress")
	}

	v, _ = restored.Get("steps_total_100k")
	if v.Earned() {
		t.Error("partial progress restored as earned")
	}
	if v.Progress == nil || v.Progress.Current != 40_000 || v.Progress.Percentage != 40 {
		t.Errorf("progress not restored: %+v", v.Progress)
	}

	stats := restored.Statistics()
	if stats.TotalEarned != 1 {
		t.Errorf("TotalEarned after restore = %d, want 1", stats.TotalEarned)
	}
}

func TestLoad_DropsUnknownIDs(t *testing.T) {
	eng, _, _, _ := newTestEngine()
	eng.Load(&store.AchievementsState{
		Unlocked: map[string]string{"retired_badge": time.Now().UTC().Format(time.RFC3339)},
	})
	if eng.Statistics().TotalEarned != 0 {
		t.Error("unknown catalog id should be dropped on load")
	}
}

func TestStreakCatalogCoversAllMilestones(t *testing.T) {
	for _, days := range StreakMilestones {
		id := StreakAchievementID(days)
		a, ok := Lookup(id)
		if !ok {
			t.Errorf("catalog missing %s", id)
			continue
		}
		if a.Condition.Operator != OpConsecutiveDays || a.Condition.Threshold != days {
			t.Errorf("%s condition = %+v, want consecutive-days %d", id, a.Condition, days)
		}
	}
}

func TestCatalogRewardsResolveInCosmeticCatalog(t *testing.T) {
	for _, a := range Catalog() {
		for _, rewardID := range a.CosmeticRewards {
			if _, ok := cosmetics.Lookup(rewardID); !ok {
				t.Errorf("%s rewards unknown cosmetic %q", a.ID, rewardID)
			}
		}
	}
}
