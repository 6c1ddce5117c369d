package rarity

import "testing"

func TestRank(t *testing.T) {
	tests := []struct {
		rarity Rarity
		want   int
	}{
		{Common, 1},
		{Rare, 2},
		{Epic, 3},
		{Legendary, 4},
		{"mythic", 0},
	}

	for _, tt := range tests {
		got := tt.rarity.Rank()
		if got != tt.want {
			t.Errorf("Rarity(%q).Rank() = %d, want %d", tt.rarity, got, tt.want)
		}
	}
}

func TestAll(t *testing.T) {
	all := All()
	if len(all) != 4 {
		t.Fatalf("expected 4 rarities, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Rank() <= all[i-1].Rank() {
			t.Errorf("rarities out of order: %q before %q", all[i-1], all[i])
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		rarity Rarity
		want   string
	}{
		{Common, "Common"},
		{Rare, "Rare"},
		{Epic, "Epic"},
		{Legendary, "Legendary"},
		{"mythic", "mythic"},
	}

	for _, tt := range tests {
		got := tt.rarity.DisplayName()
		if got != tt.want {
			t.Errorf("Rarity(%q).DisplayName() = %q, want %q", tt.rarity, got, tt.want)
		}
	}
}
