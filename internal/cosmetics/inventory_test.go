package cosmetics

import (
	"context"
	"testing"

	"github.com/anuraag/pipkin/internal/notify"
	"github.com/anuraag/pipkin/internal/store"
)

// mockEventRepo implements store.EventRepo for inventory tests.
type mockEventRepo struct {
	cosmeticEvents []store.CosmeticEventData
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
func (m *mockEventRepo) AppendChallengeEvent(_ context.Context, _ store.ChallengeEventData) error {
	return nil
}
func (m *mockEventRepo) QueryChallengeEvents(_ context.Context, _ store.QueryOpts) ([]store.ChallengeEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendCosmeticEvent(_ context.Context, data store.CosmeticEventData) error {
	m.cosmeticEvents = append(m.cosmeticEvents, data)
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

func newTestInventory() (*Inventory, *mockEventRepo, *recordingNotifier) {
	repo := &mockEventRepo{}
	notifier := &recordingNotifier{}
	return NewInventory(repo, notifier), repo, notifier
}

func TestAdd(t *testing.T) {
	inv, repo, notifier := newTestInventory()
	ctx := context.Background()

	src := "steps_10000"
	owned, isNew := inv.Add(ctx, "hat_crown", &src)
	if !isNew {
		t.Fatal("expected new grant")
	}
	if owned.Name != "Golden Crown" {
		t.Errorf("Name = %q, want %q", owned.Name, "Golden Crown")
	}
	if owned.UnlockedAt.IsZero() {
		t.Error("expected UnlockedAt to be set")
	}
	if !inv.Owns("hat_crown") {
		t.Error("expected hat_crown to be owned")
	}
	if len(repo.cosmeticEvents) != 1 || repo.cosmeticEvents[0].Action != "add" {
		t.Errorf("persisted events = %+v, want one add", repo.cosmeticEvents)
	}
	if repo.cosmeticEvents[0].SourceAchievement == nil || *repo.cosmeticEvents[0].SourceAchievement != "steps_10000" {
		t.Error("persisted event missing source achievement")
	}
	if len(notifier.sent) != 1 || notifier.sent[0].Type != notify.TypeCosmeticUnlock {
		t.Errorf("notifications = %+v, want one cosmetic-unlock", notifier.sent)
	}
}

func TestAdd_DuplicateIsNoOp(t *testing.T) {
	inv, repo, notifier := newTestInventory()
	ctx := context.Background()

	inv.Add(ctx, "hat_crown", nil)
	_, isNew := inv.Add(ctx, "hat_crown", nil)
	if isNew {
		t.Error("duplicate grant reported as new")
	}
	if got := len(inv.Owned()); got != 1 {
		t.Errorf("owned count = %d, want 1", got)
	}
	if len(repo.cosmeticEvents) != 1 {
		t.Errorf("persisted %d events, want 1", len(repo.cosmeticEvents))
	}
	if len(notifier.sent) != 1 {
		t.Errorf("sent %d notifications, want 1", len(notifier.sent))
	}
}

func TestAdd_UnknownIDIsNoOp(t *testing.T) {
	inv, repo, notifier := newTestInventory()

	owned, isNew := inv.Add(context.Background(), "hat_nonexistent", nil)
	if owned != nil || isNew {
		t.Error("unknown id should be a silent no-op")
	}
	if len(repo.cosmeticEvents) != 0 || len(notifier.sent) != 0 {
		t.Error("no events or notifications expected for unknown id")
	}
}

func TestEquip_RequiresOwnership(t *testing.T) {
	inv, _, _ := newTestInventory()
	ctx := context.Background()

	if inv.Equip(ctx, "hat_crown") {
		t.Error("equip of unowned item should fail")
	}
	if len(inv.Layers()) != 0 {
		t.Error("nothing should be equipped")
	}

	inv.Add(ctx, "hat_crown", nil)
	if !inv.Equip(ctx, "hat_crown") {
		t.Error("equip of owned item should succeed")
	}
	if inv.Equipped()[CategoryHat] != "hat_crown" {
		t.Errorf("equipped hat = %q, want hat_crown", inv.Equipped()[CategoryHat])
	}
}

func TestEquip_Idempotent(t *testing.T) {
	inv, repo, _ := newTestInventory()
	ctx := context.Background()

	inv.Add(ctx, "hat_crown", nil)
	inv.Equip(ctx, "hat_crown")
	events := len(repo.cosmeticEvents)

	if !inv.Equip(ctx, "hat_crown") {
		t.Error("re-equip should report success")
	}
	if len(repo.cosmeticEvents) != events {
		t.Error("re-equip should not persist another event")
	}
}

func TestEquip_ReplacesCategorySlot(t *testing.T) {
	inv, _, _ := newTestInventory()
	ctx := context.Background()

	inv.Add(ctx, "hat_crown", nil)
	inv.Add(ctx, "hat_cap", nil)
	inv.Equip(ctx, "hat_crown")
	inv.Equip(ctx, "hat_cap")

	if got := inv.Equipped()[CategoryHat]; got != "hat_cap" {
		t.Errorf("equipped hat = %q, want hat_cap", got)
	}
	if len(inv.Layers()) != 1 {
		t.Errorf("layers = %d, want 1 (one slot per category)", len(inv.Layers()))
	}
}

func TestUnequip(t *testing.T) {
	inv, _, _ := newTestInventory()
	ctx := context.Background()

	inv.Add(ctx, "hat_crown", nil)
	inv.Equip(ctx, "hat_crown")
	inv.Unequip(ctx, CategoryHat)

	if _, ok := inv.Equipped()[CategoryHat]; ok {
		t.Error("hat slot should be cleared")
	}

	// Clearing an empty slot is a no-op.
	inv.Unequip(ctx, CategoryHat)
}

func TestLayers_SortedByCategoryIndex(t *testing.T) {
	inv, _, _ := newTestInventory()
	ctx := context.Background()

	// Equip in an order unrelated to layer order.
	for _, id := range []string{"theme_neon", "hat_crown", "background_meadow", "accessory_scarf", "color_ocean"} {
		inv.Add(ctx, id, nil)
		inv.Equip(ctx, id)
	}

	layers := inv.Layers()
	if len(layers) != 5 {
		t.Fatalf("layers = %d, want 5", len(layers))
	}
	for i, want := range []Category{CategoryBackground, CategoryColor, CategoryAccessory, CategoryHat, CategoryTheme} {
		if layers[i].Category != want {
			t.Errorf("layer %d = %q, want %q", i, layers[i].Category, want)
		}
		if layers[i].Render.Layer != want.LayerIndex() {
			t.Errorf("layer %d render index = %d, want %d", i, layers[i].Render.Layer, want.LayerIndex())
		}
	}
}

func TestStateRoundTrip(t *testing.T) {
	inv, _, _ := newTestInventory()
	ctx := context.Background()

	src := "streak_7"
	inv.Add(ctx, "accessory_scarf", &src)
	inv.Add(ctx, "hat_cap", nil)
	inv.Equip(ctx, "accessory_scarf")

	state := inv.State()

	restored := NewInventory(nil, nil)
	restored.Load(state)

	if !restored.Owns("accessory_scarf") || !restored.Owns("hat_cap") {
		t.Fatal("ownership not restored")
	}
	owned := restored.Owned()
	for _, oc := range owned {
		switch oc.ID {
		case "accessory_scarf":
			if oc.SourceAchievement == nil || *oc.SourceAchievement != "streak_7" {
				t.Error("source achievement not restored")
			}
			if oc.UnlockedAt.IsZero() {
				t.Error("unlock time not restored")
			}
		case "hat_cap":
			if oc.SourceAchievement != nil {
				t.Error("absent source achievement should stay nil")
			}
		}
	}
	if restored.Equipped()[CategoryAccessory] != "accessory_scarf" {
		t.Error("equipped mapping not restored")
	}
	if _, ok := restored.Equipped()[CategoryHat]; ok {
		t.Error("empty hat slot should stay empty")
	}
}

func TestLoad_NilState(t *testing.T) {
	inv := NewInventory(nil, nil)
	inv.Load(nil)
	if len(inv.Owned()) != 0 {
		t.Error("expected empty inventory from nil state")
	}
}

func TestLoad_DropsUnknownAndUnownedEquips(t *testing.T) {
	inv := NewInventory(nil, nil)
	inv.Load(&store.CosmeticInventoryState{
		Owned: []store.OwnedCosmeticData{
			{ID: "hat_crown"},
			{ID: "hat_retired"}, // no longer in the catalog
		},
		Equipped: map[string]string{
			"hat":       "hat_crown",
			"accessory": "accessory_scarf", // equipped but not owned
		},
	})

	if !inv.Owns("hat_crown") {
		t.Error("hat_crown should be owned")
	}
	if inv.Owns("hat_retired") {
		t.Error("unknown catalog id should be dropped")
	}
	if _, ok := inv.Equipped()[CategoryAccessory]; ok {
		t.Error("equip of unowned item should be cleared on load")
	}
}

func TestReset(t *testing.T) {
	inv, _, _ := newTestInventory()
	ctx := context.Background()

	inv.Add(ctx, "hat_crown", nil)
	inv.Equip(ctx, "hat_crown")
	inv.Reset()

	if len(inv.Owned()) != 0 || len(inv.Equipped()) != 0 {
		t.Error("reset should clear all state")
	}
}

func TestCatalog_LayerFixedByCategory(t *testing.T) {
	for _, c := range Catalog() {
		if c.Render.Layer != c.Category.LayerIndex() {
			t.Errorf("%s: render layer %d != category index %d", c.ID, c.Render.Layer, c.Category.LayerIndex())
		}
	}
}
