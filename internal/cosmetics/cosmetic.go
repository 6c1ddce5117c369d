package cosmetics

import (
	"time"

	"github.com/anuraag/pipkin/internal/rarity"
)

// Category identifies the slot a cosmetic occupies on the companion.
// At most one item per category can be equipped at a time.
type Category string

const (
	CategoryBackground Category = "background"
	CategoryColor      Category = "color"
	CategoryAccessory  Category = "accessory"
	CategoryHat        Category = "hat"
	CategoryTheme      Category = "theme"
)

// AllCategories returns all categories in render-layer order.
func AllCategories() []Category {
	return []Category{
		CategoryBackground,
		CategoryColor,
		CategoryAccessory,
		CategoryHat,
		CategoryTheme,
	}
}

// LayerIndex returns the fixed back-to-front render layer for the
// category: background(0) < color(1) < accessory(2) < hat(3) < theme(4).
// Unknown categories render behind everything.
func (c Category) LayerIndex() int {
	switch c {
	case CategoryBackground:
		return 0
	case CategoryColor:
		return 1
	case CategoryAccessory:
		return 2
	case CategoryHat:
		return 3
	case CategoryTheme:
		return 4
	default:
		return -1
	}
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryBackground:
		return "Background"
	case CategoryColor:
		return "Color"
	case CategoryAccessory:
		return "Accessory"
	case CategoryHat:
		return "Hat"
	case CategoryTheme:
		return "Theme"
	default:
		return string(c)
	}
}

// RenderData carries what the presentation layer needs to draw an item.
type RenderData struct {
	Layer         int      // fixed by category
	Pixels        []string // optional pixel/shape rows
	OffsetX       int
	OffsetY       int
	ColorOverride string // optional
}

// Cosmetic is a catalog-defined visual item. Catalog entries are
// immutable; ownership and unlock state live in the Inventory.
type Cosmetic struct {
	ID         string
	Name       string
	Category   Category
	Rarity     rarity.Rarity
	Preview    string
	Render     RenderData
	UnlockHint string // human-readable unlock condition
}

// Owned pairs a catalog cosmetic with its ownership record.
type Owned struct {
	Cosmetic
	UnlockedAt        time.Time
	SourceAchievement *string // achievement that granted the item, if any
}
