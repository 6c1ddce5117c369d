package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceOrdering_AcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendStreakEvent(ctx, StreakEventData{
		Date: "2026-08-29", CriteriaMet: true, PreviousStreak: 6, NewStreak: 7,
	}); err != nil {
		t.Fatalf("append streak event: %v", err)
	}
	if err := repo.AppendAchievementEvent(ctx, AchievementEventData{
		AchievementID: "streak_7", Category: "streak-reward", Rarity: "rare", Source: "streak",
	}); err != nil {
		t.Fatalf("append achievement event: %v", err)
	}
	if err := repo.AppendCosmeticEvent(ctx, CosmeticEventData{
		CosmeticID: "accessory_scarf", Action: "add", Category: "accessory", Rarity: "rare",
	}); err != nil {
		t.Fatalf("append cosmetic event: %v", err)
	}

	streaks, err := repo.QueryStreakEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query streak events: %v", err)
	}
	unlocks, err := repo.QueryAchievementEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query achievement events: %v", err)
	}
	cosmetics, err := repo.QueryCosmeticEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query cosmetic events: %v", err)
	}

	if len(streaks) != 1 || len(unlocks) != 1 || len(cosmetics) != 1 {
		t.Fatalf("got %d/%d/%d events, want 1 of each", len(streaks), len(unlocks), len(cosmetics))
	}
	if !(streaks[0].Sequence < unlocks[0].Sequence && unlocks[0].Sequence < cosmetics[0].Sequence) {
		t.Errorf("sequences not increasing across types: %d, %d, %d",
			streaks[0].Sequence, unlocks[0].Sequence, cosmetics[0].Sequence)
	}
}

func TestAchievementEvent_OptionalFields(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAchievementEvent(ctx, AchievementEventData{
		AchievementID:    "steps_10000",
		Category:         "health-milestone",
		Rarity:           "rare",
		Source:           "metric",
		CosmeticsGranted: []string{"hat_crown"},
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	records, err := repo.QueryAchievementEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if len(records[0].CosmeticsGranted) != 1 || records[0].CosmeticsGranted[0] != "hat_crown" {
		t.Errorf("CosmeticsGranted = %v, want [hat_crown]", records[0].CosmeticsGranted)
	}
}

func TestUnlockCounts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, cat := range []string{"streak-reward", "streak-reward", "health-milestone"} {
		err := repo.AppendAchievementEvent(ctx, AchievementEventData{
			AchievementID: "a", Category: cat, Rarity: "common", Source: "manual",
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byCategory, total, err := repo.UnlockCounts(ctx)
	if err != nil {
		t.Fatalf("unlock counts: %v", err)
	}
	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if byCategory["streak-reward"] != 2 {
		t.Errorf("streak-reward count = %d, want 2", byCategory["streak-reward"])
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	source := "steps_10000"
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Achievements: &AchievementsState{
				Unlocked: map[string]string{"steps_10000": now.Format(time.RFC3339)},
				Progress: map[string]*ProgressData{"steps_50000": {Current: 12000, Target: 50000}},
			},
			Streak: &StreakState{
				Current:      7,
				Longest:      12,
				LastRecorded: "2026-08-29",
				History:      []StreakSegmentData{{Start: "2026-08-01", End: "2026-08-12", Length: 12}},
			},
			Cosmetics: &CosmeticInventoryState{
				Owned:    []OwnedCosmeticData{{ID: "hat_crown", SourceAchievement: &source}},
				Equipped: map[string]string{"hat": "hat_crown"},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("Sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Streak == nil || snap.Data.Streak.Current != 7 {
		t.Errorf("Streak.Current not round-tripped: %+v", snap.Data.Streak)
	}
	if snap.Data.Achievements == nil || snap.Data.Achievements.Progress["steps_50000"].Current != 12000 {
		t.Errorf("Achievements.Progress not round-tripped: %+v", snap.Data.Achievements)
	}
	if snap.Data.Cosmetics == nil || snap.Data.Cosmetics.Owned[0].SourceAchievement == nil ||
		*snap.Data.Cosmetics.Owned[0].SourceAchievement != "steps_10000" {
		t.Errorf("Cosmetics.Owned not round-tripped: %+v", snap.Data.Cosmetics)
	}
	if snap.Data.Challenges != nil {
		t.Errorf("absent Challenges sub-record should stay nil, got %+v", snap.Data.Challenges)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 2); err != nil {
		t.Fatalf("prune: %v", err)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil || snap.Sequence != 4 {
		t.Fatalf("latest after prune = %+v, want sequence 4", snap)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("snapshot count after prune = %d, want 2", count)
	}
}

func TestWipe(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendStreakEvent(ctx, StreakEventData{Date: "2026-08-29", CriteriaMet: true}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.SnapshotRepo().Save(ctx, &Snapshot{Sequence: 1, Timestamp: time.Now(), Data: SnapshotData{Version: 1}}); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	if err := s.Wipe(ctx); err != nil {
		t.Fatalf("wipe: %v", err)
	}

	events, err := repo.QueryStreakEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("streak events after wipe = %d, want 0", len(events))
	}
	snap, err := s.SnapshotRepo().Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap != nil {
		t.Error("expected no snapshot after wipe")
	}
}
