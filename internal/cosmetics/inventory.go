package cosmetics

import (
	"context"
	"sort"
	"time"

	"github.com/anuraag/pipkin/internal/notify"
	"github.com/anuraag/pipkin/internal/store"
)

// Notifier is the narrow notification surface the inventory needs.
// *notify.Queue satisfies it.
type Notifier interface {
	Enqueue(notify.Notification)
}

// Inventory owns the player's cosmetic collection and equipped slots.
// The catalog stays immutable; only ownership state mutates here.
// Persistence is fire-and-forget: in-memory state is authoritative for
// the rest of the session even if a write fails.
type Inventory struct {
	owned    map[string]*Owned
	equipped map[Category]string // at most one item per category

	events   store.EventRepo
	notifier Notifier
}

// NewInventory creates an empty inventory.
func NewInventory(events store.EventRepo, notifier Notifier) *Inventory {
	return &Inventory{
		owned:    make(map[string]*Owned),
		equipped: make(map[Category]string),
		events:   events,
		notifier: notifier,
	}
}

// Load restores inventory state from a persisted record. Items whose id
// no longer resolves in the catalog are dropped; equipped slots pointing
// at unowned items are cleared.
func (inv *Inventory) Load(state *store.CosmeticInventoryState) {
	inv.owned = make(map[string]*Owned)
	inv.equipped = make(map[Category]string)
	if state == nil {
		return
	}

	for _, oc := range state.Owned {
		def, ok := Lookup(oc.ID)
		if !ok {
			continue
		}
		owned := &Owned{Cosmetic: def, SourceAchievement: oc.SourceAchievement}
		if oc.UnlockedAt != "" {
			if t, err := time.Parse(time.RFC3339, oc.UnlockedAt); err == nil {
				owned.UnlockedAt = t
			}
		}
		inv.owned[oc.ID] = owned
	}

	for cat, id := range state.Equipped {
		if _, ok := inv.owned[id]; !ok {
			continue
		}
		inv.equipped[Category(cat)] = id
	}
}

// State builds the persisted record for snapshotting. The record
// round-trips back through Load to an equivalent inventory.
func (inv *Inventory) State() *store.CosmeticInventoryState {
	state := &store.CosmeticInventoryState{
		Owned:       make([]store.OwnedCosmeticData, 0, len(inv.owned)),
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	}
	for _, oc := range inv.owned {
		data := store.OwnedCosmeticData{ID: oc.ID, SourceAchievement: oc.SourceAchievement}
		if !oc.UnlockedAt.IsZero() {
			data.UnlockedAt = oc.UnlockedAt.UTC().Format(time.RFC3339)
		}
		state.Owned = append(state.Owned, data)
	}
	sort.Slice(state.Owned, func(i, j int) bool { return state.Owned[i].ID < state.Owned[j].ID })

	if len(inv.equipped) > 0 {
		state.Equipped = make(map[string]string, len(inv.equipped))
		for cat, id := range inv.equipped {
			state.Equipped[string(cat)] = id
		}
	}
	return state
}

// Add grants the catalog cosmetic with the given id. Duplicate grants
// and unknown ids are silent no-ops. Returns the owned record and
// whether it was newly added.
func (inv *Inventory) Add(ctx context.Context, id string, sourceAchievement *string) (*Owned, bool) {
	def, ok := Lookup(id)
	if !ok {
		return nil, false
	}
	if existing, already := inv.owned[id]; already {
		return existing, false
	}

	owned := &Owned{
		Cosmetic:          def,
		UnlockedAt:        time.Now(),
		SourceAchievement: sourceAchievement,
	}
	inv.owned[id] = owned

	inv.persist(ctx, store.CosmeticEventData{
		CosmeticID:        id,
		Action:            "add",
		Category:          string(def.Category),
		Rarity:            string(def.Rarity),
		SourceAchievement: sourceAchievement,
	})
	if inv.notifier != nil {
		inv.notifier.Enqueue(notify.Notification{
			Type:     notify.TypeCosmeticUnlock,
			Title:    "New cosmetic!",
			Message:  def.Name + " added to your wardrobe",
			Priority: notify.PriorityNormal,
			Payload:  owned,
		})
	}
	return owned, true
}

// Equip puts the owned cosmetic into its category slot, replacing any
// previous occupant. Equipping an unowned or unknown id is a no-op.
// Re-equipping the same item is idempotent.
func (inv *Inventory) Equip(ctx context.Context, id string) bool {
	oc, ok := inv.owned[id]
	if !ok {
		return false
	}
	if inv.equipped[oc.Category] == id {
		return true
	}
	inv.equipped[oc.Category] = id

	inv.persist(ctx, store.CosmeticEventData{
		CosmeticID: id,
		Action:     "equip",
		Category:   string(oc.Category),
		Rarity:     string(oc.Rarity),
	})
	return true
}

// Unequip clears the category slot. Clearing an empty slot is a no-op.
func (inv *Inventory) Unequip(ctx context.Context, cat Category) {
	id, ok := inv.equipped[cat]
	if !ok {
		return
	}
	delete(inv.equipped, cat)

	rar := ""
	if oc, owned := inv.owned[id]; owned {
		rar = string(oc.Rarity)
	}
	inv.persist(ctx, store.CosmeticEventData{
		CosmeticID: id,
		Action:     "unequip",
		Category:   string(cat),
		Rarity:     rar,
	})
}

// Owns reports whether the cosmetic with the given id is owned.
func (inv *Inventory) Owns(id string) bool {
	_, ok := inv.owned[id]
	return ok
}

// Owned returns all owned cosmetics sorted by id.
func (inv *Inventory) Owned() []Owned {
	out := make([]Owned, 0, len(inv.owned))
	for _, oc := range inv.owned {
		out = append(out, *oc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Equipped returns a copy of the equipped slot mapping.
func (inv *Inventory) Equipped() map[Category]string {
	out := make(map[Category]string, len(inv.equipped))
	for cat, id := range inv.equipped {
		out[cat] = id
	}
	return out
}

// Layers returns the currently equipped cosmetics sorted ascending by
// category layer index, giving a deterministic back-to-front render
// order regardless of equip order.
func (inv *Inventory) Layers() []Cosmetic {
	out := make([]Cosmetic, 0, len(inv.equipped))
	for _, id := range inv.equipped {
		if oc, ok := inv.owned[id]; ok {
			out = append(out, oc.Cosmetic)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Category.LayerIndex() < out[j].Category.LayerIndex()
	})
	return out
}

// Reset clears all ownership and equipped state.
func (inv *Inventory) Reset() {
	inv.owned = make(map[string]*Owned)
	inv.equipped = make(map[Category]string)
}

func (inv *Inventory) persist(ctx context.Context, data store.CosmeticEventData) {
	if inv.events == nil {
		return
	}
	_ = inv.events.AppendCosmeticEvent(ctx, data)
}
