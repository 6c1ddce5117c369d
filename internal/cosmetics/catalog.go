package cosmetics

import (
	"fmt"
	"sort"

	"github.com/anuraag/pipkin/internal/rarity"
)

// catalog is the immutable id → definition index, built once at init.
// Unlock and ownership state never touches these entries.
var catalog = buildCatalog(catalogDefs())

func buildCatalog(defs []Cosmetic) map[string]Cosmetic {
	m := make(map[string]Cosmetic, len(defs))
	for _, c := range defs {
		if _, dup := m[c.ID]; dup {
			panic(fmt.Sprintf("cosmetics: duplicate catalog id %q", c.ID))
		}
		c.Render.Layer = c.Category.LayerIndex()
		m[c.ID] = c
	}
	return m
}

// Lookup returns the catalog definition for id.
func Lookup(id string) (Cosmetic, bool) {
	c, ok := catalog[id]
	return c, ok
}

// Catalog returns all catalog cosmetics sorted by id.
func Catalog() []Cosmetic {
	out := make([]Cosmetic, 0, len(catalog))
	for _, c := range catalog {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CatalogSize returns the number of catalog cosmetics.
func CatalogSize() int {
	return len(catalog)
}

func catalogDefs() []Cosmetic {
	return []Cosmetic{
		{
			ID:         "hat_crown",
			Name:       "Golden Crown",
			Category:   CategoryHat,
			Rarity:     rarity.Rare,
			Preview:    "👑",
			Render:     RenderData{OffsetY: -6},
			UnlockHint: "Walk 10,000 steps in a single day",
		},
		{
			ID:         "hat_cap",
			Name:       "Walking Cap",
			Category:   CategoryHat,
			Rarity:     rarity.Common,
			Preview:    "🧢",
			Render:     RenderData{OffsetY: -5},
			UnlockHint: "Record your first day of activity",
		},
		{
			ID:         "hat_wizard",
			Name:       "Wizard Hat",
			Category:   CategoryHat,
			Rarity:     rarity.Legendary,
			Preview:    "🧙",
			Render:     RenderData{OffsetY: -7},
			UnlockHint: "Keep a 90-day streak alive",
		},
		{
			ID:         "accessory_scarf",
			Name:       "Cozy Scarf",
			Category:   CategoryAccessory,
			Rarity:     rarity.Common,
			Preview:    "🧣",
			Render:     RenderData{OffsetY: 2},
			UnlockHint: "Keep a 7-day streak alive",
		},
		{
			ID:         "accessory_glasses",
			Name:       "Round Glasses",
			Category:   CategoryAccessory,
			Rarity:     rarity.Rare,
			Preview:    "👓",
			Render:     RenderData{OffsetY: -2},
			UnlockHint: "Keep a 30-day streak alive",
		},
		{
			ID:         "accessory_medal",
			Name:       "Marathon Medal",
			Category:   CategoryAccessory,
			Rarity:     rarity.Epic,
			Preview:    "🏅",
			Render:     RenderData{OffsetY: 3},
			UnlockHint: "Walk 100,000 lifetime steps",
		},
		{
			ID:         "color_sunset",
			Name:       "Sunset Coat",
			Category:   CategoryColor,
			Rarity:     rarity.Rare,
			Preview:    "🌅",
			Render:     RenderData{ColorOverride: "#ff8c5a"},
			UnlockHint: "Complete every challenge in a week",
		},
		{
			ID:         "color_ocean",
			Name:       "Ocean Coat",
			Category:   CategoryColor,
			Rarity:     rarity.Common,
			Preview:    "🌊",
			Render:     RenderData{ColorOverride: "#4aa8d8"},
			UnlockHint: "Complete your first weekly challenge",
		},
		{
			ID:         "color_midnight",
			Name:       "Midnight Coat",
			Category:   CategoryColor,
			Rarity:     rarity.Epic,
			Preview:    "🌌",
			Render:     RenderData{ColorOverride: "#2b2d5e"},
			UnlockHint: "Keep a 60-day streak alive",
		},
		{
			ID:         "background_meadow",
			Name:       "Spring Meadow",
			Category:   CategoryBackground,
			Rarity:     rarity.Common,
			Preview:    "🌼",
			Render:     RenderData{},
			UnlockHint: "Walk 5,000 steps in a single day",
		},
		{
			ID:         "background_night",
			Name:       "Starry Night",
			Category:   CategoryBackground,
			Rarity:     rarity.Rare,
			Preview:    "🌙",
			Render:     RenderData{},
			UnlockHint: "Keep a 14-day streak alive",
		},
		{
			ID:         "background_summit",
			Name:       "Mountain Summit",
			Category:   CategoryBackground,
			Rarity:     rarity.Legendary,
			Preview:    "🏔️",
			Render:     RenderData{},
			UnlockHint: "Walk 1,000,000 lifetime steps",
		},
		{
			ID:         "theme_neon",
			Name:       "Neon Glow",
			Category:   CategoryTheme,
			Rarity:     rarity.Epic,
			Preview:    "💡",
			Render:     RenderData{},
			UnlockHint: "Walk 250,000 lifetime steps",
		},
		{
			ID:         "theme_forest",
			Name:       "Forest Spirit",
			Category:   CategoryTheme,
			Rarity:     rarity.Rare,
			Preview:    "🌲",
			Render:     RenderData{},
			UnlockHint: "Complete ten weekly challenges",
		},
	}
}
