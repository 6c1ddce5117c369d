package achievements

import (
	"fmt"
	"sort"

	"github.com/anuraag/pipkin/internal/rarity"
)

// StreakMilestones are the day counts that earn streak achievements,
// in increasing order. Streak achievement ids follow the convention
// streak_{N}.
var StreakMilestones = []int{7, 14, 30, 60, 90}

// Metric names shared with the health-data aggregator and the other
// engine components.
const (
	MetricSteps               = "steps"            // daily step total
	MetricTotalSteps          = "total_steps"      // lifetime step total
	MetricStreakDays          = "streak_days"      // current consecutive-day streak
	MetricDaysRecorded        = "days_recorded"    // lifetime days with any recording
	MetricChallengesCompleted = "challenges_done"  // lifetime completed challenges
	MetricWeeklySweeps        = "weekly_sweeps"    // weeks with every challenge completed
)

// catalog is the immutable id → template index, built once at init.
var catalog = buildCatalog(catalogDefs())

func buildCatalog(defs []Achievement) map[string]Achievement {
	m := make(map[string]Achievement, len(defs))
	for _, a := range defs {
		if _, dup := m[a.ID]; dup {
			panic(fmt.Sprintf("achievements: duplicate catalog id %q", a.ID))
		}
		m[a.ID] = a
	}
	return m
}

// Lookup returns the catalog template for id.
func Lookup(id string) (Achievement, bool) {
	a, ok := catalog[id]
	return a, ok
}

// Catalog returns all catalog achievements sorted by id.
func Catalog() []Achievement {
	out := make([]Achievement, 0, len(catalog))
	for _, a := range catalog {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// CatalogSize returns the number of catalog achievements.
func CatalogSize() int {
	return len(catalog)
}

// StreakAchievementID returns the conventional id for a streak milestone.
func StreakAchievementID(days int) string {
	return fmt.Sprintf("streak_%d", days)
}

func catalogDefs() []Achievement {
	return []Achievement{
		// Daily step milestones.
		{
			ID:              "steps_5000",
			Name:            "Warm-Up Walk",
			Description:     "Walk 5,000 steps in a single day",
			Category:        CategoryHealthMilestone,
			Rarity:          rarity.Common,
			Icon:            "👟",
			Condition:       Condition{Metric: MetricSteps, Threshold: 5000, Operator: OpGreaterOrEqual},
			CosmeticRewards: []string{"background_meadow"},
		},
		{
			ID:              "steps_10000",
			Name:            "Daily Ten",
			Description:     "Walk 10,000 steps in a single day",
			Category:        CategoryHealthMilestone,
			Rarity:          rarity.Rare,
			Icon:            "🏃",
			Condition:       Condition{Metric: MetricSteps, Threshold: 10000, Operator: OpGreaterOrEqual},
			CosmeticRewards: []string{"hat_crown"},
		},
		{
			ID:          "steps_20000",
			Name:        "Distance Demon",
			Description: "Walk 20,000 steps in a single day",
			Category:    CategoryHealthMilestone,
			Rarity:      rarity.Epic,
			Icon:        "⚡",
			Condition:   Condition{Metric: MetricSteps, Threshold: 20000, Operator: OpGreaterOrEqual},
		},
		// Lifetime step milestones.
		{
			ID:              "steps_total_100k",
			Name:            "Hundred-K Club",
			Description:     "Walk 100,000 lifetime steps",
			Category:        CategoryHealthMilestone,
			Rarity:          rarity.Epic,
			Icon:            "🏅",
			Condition:       Condition{Metric: MetricTotalSteps, Threshold: 100_000, Operator: OpGreaterOrEqual},
			CosmeticRewards: []string{"accessory_medal"},
		},
		{
			ID:              "steps_total_250k",
			Name:            "Quarter Million",
			Description:     "Walk 250,000 lifetime steps",
			Category:        CategoryHealthMilestone,
			Rarity:          rarity.Epic,
			Icon:            "💡",
			Condition:       Condition{Metric: MetricTotalSteps, Threshold: 250_000, Operator: OpGreaterOrEqual},
			CosmeticRewards: []string{"theme_neon"},
		},
		{
			ID:              "steps_total_1m",
			Name:            "Million Stepper",
			Description:     "Walk 1,000,000 lifetime steps",
			Category:        CategoryHealthMilestone,
			Rarity:          rarity.Legendary,
			Icon:            "🏔️",
			Condition:       Condition{Metric: MetricTotalSteps, Threshold: 1_000_000, Operator: OpGreaterOrEqual},
			CosmeticRewards: []string{"background_summit"},
		},
		// Streak rewards, unlocked by the Streak Tracker via streak_{N}.
		{
			ID:              "streak_7",
			Name:            "One Week Strong",
			Description:     "Meet your daily goal 7 days in a row",
			Category:        CategoryStreakReward,
			Rarity:          rarity.Common,
			Icon:            "🔥",
			Condition:       Condition{Metric: MetricStreakDays, Threshold: 7, Operator: OpConsecutiveDays},
			CosmeticRewards: []string{"accessory_scarf"},
		},
		{
			ID:              "streak_14",
			Name:            "Fortnight Flame",
			Description:     "Meet your daily goal 14 days in a row",
			Category:        CategoryStreakReward,
			Rarity:          rarity.Rare,
			Icon:            "🔥",
			Condition:       Condition{Metric: MetricStreakDays, Threshold: 14, Operator: OpConsecutiveDays},
			CosmeticRewards: []string{"background_night"},
		},
		{
			ID:              "streak_30",
			Name:            "Monthly Devotion",
			Description:     "Meet your daily goal 30 days in a row",
			Category:        CategoryStreakReward,
			Rarity:          rarity.Rare,
			Icon:            "🔥",
			Condition:       Condition{Metric: MetricStreakDays, Threshold: 30, Operator: OpConsecutiveDays},
			CosmeticRewards: []string{"accessory_glasses"},
		},
		{
			ID:              "streak_60",
			Name:            "Two-Month Titan",
			Description:     "Meet your daily goal 60 days in a row",
			Category:        CategoryStreakReward,
			Rarity:          rarity.Epic,
			Icon:            "🔥",
			Condition:       Condition{Metric: MetricStreakDays, Threshold: 60, Operator: OpConsecutiveDays},
			CosmeticRewards: []string{"color_midnight"},
		},
		{
			ID:              "streak_90",
			Name:            "Quarter-Year Legend",
			Description:     "Meet your daily goal 90 days in a row",
			Category:        CategoryStreakReward,
			Rarity:          rarity.Legendary,
			Icon:            "🔥",
			Condition:       Condition{Metric: MetricStreakDays, Threshold: 90, Operator: OpConsecutiveDays},
			CosmeticRewards: []string{"hat_wizard"},
		},
		// Challenge completion.
		{
			ID:              "first_challenge",
			Name:            "Challenger",
			Description:     "Complete your first weekly challenge",
			Category:        CategoryChallengeCompletion,
			Rarity:          rarity.Common,
			Icon:            "🎯",
			Condition:       Condition{Metric: MetricChallengesCompleted, Threshold: 1, Operator: OpGreaterOrEqual},
			CosmeticRewards: []string{"color_ocean"},
		},
		{
			ID:              "challenge_ten",
			Name:            "Seasoned Challenger",
			Description:     "Complete ten weekly challenges",
			Category:        CategoryChallengeCompletion,
			Rarity:          rarity.Rare,
			Icon:            "🎯",
			Condition:       Condition{Metric: MetricChallengesCompleted, Threshold: 10, Operator: OpGreaterOrEqual},
			CosmeticRewards: []string{"theme_forest"},
		},
		{
			ID:              "week_sweep",
			Name:            "Clean Sweep",
			Description:     "Complete every challenge in a single week",
			Category:        CategoryChallengeCompletion,
			Rarity:          rarity.Rare,
			Icon:            "🧹",
			Condition:       Condition{Metric: MetricWeeklySweeps, Threshold: 1, Operator: OpGreaterOrEqual},
			CosmeticRewards: []string{"color_sunset"},
		},
		// Exploration.
		{
			ID:              "first_day",
			Name:            "Hello, World",
			Description:     "Record your first day of activity",
			Category:        CategoryExploration,
			Rarity:          rarity.Common,
			Icon:            "🐣",
			Condition:       Condition{Metric: MetricDaysRecorded, Threshold: 1, Operator: OpGreaterOrEqual},
			CosmeticRewards: []string{"hat_cap"},
		},
		// Special events.
		{
			ID:          "anniversary",
			Name:        "One Year Together",
			Description: "Record activity on 365 different days",
			Category:    CategorySpecialEvent,
			Rarity:      rarity.Legendary,
			Icon:        "🎂",
			Condition:   Condition{Metric: MetricDaysRecorded, Threshold: 365, Operator: OpGreaterOrEqual},
		},
	}
}
