package rarity

// Rarity represents the scarcity tier of an achievement or cosmetic.
type Rarity string

const (
	Common    Rarity = "common"
	Rare      Rarity = "rare"
	Epic      Rarity = "epic"
	Legendary Rarity = "legendary"
)

// All returns all rarities in order from lowest to highest.
func All() []Rarity {
	return []Rarity{Common, Rare, Epic, Legendary}
}

// Rank returns the ordinal position of the rarity, common(1) through
// legendary(4). Unknown rarities rank 0 so they never win a comparison.
func (r Rarity) Rank() int {
	switch r {
	case Common:
		return 1
	case Rare:
		return 2
	case Epic:
		return 3
	case Legendary:
		return 4
	default:
		return 0
	}
}

// DisplayName returns a human-readable label for the rarity.
func (r Rarity) DisplayName() string {
	switch r {
	case Common:
		return "Common"
	case Rare:
		return "Rare"
	case Epic:
		return "Epic"
	case Legendary:
		return "Legendary"
	default:
		return string(r)
	}
}
