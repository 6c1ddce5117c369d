package achievements

import (
	"time"

	"github.com/anuraag/pipkin/internal/rarity"
)

// Category groups achievements by what earns them.
type Category string

const (
	CategoryHealthMilestone     Category = "health-milestone"
	CategoryStreakReward        Category = "streak-reward"
	CategoryChallengeCompletion Category = "challenge-completion"
	CategoryExploration         Category = "exploration"
	CategorySpecialEvent        Category = "special-event"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryHealthMilestone,
		CategoryStreakReward,
		CategoryChallengeCompletion,
		CategoryExploration,
		CategorySpecialEvent,
	}
}

// DisplayName returns a human-readable label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryHealthMilestone:
		return "Health Milestone"
	case CategoryStreakReward:
		return "Streak Reward"
	case CategoryChallengeCompletion:
		return "Challenge Completion"
	case CategoryExploration:
		return "Exploration"
	case CategorySpecialEvent:
		return "Special Event"
	default:
		return string(c)
	}
}

// Operator compares a tracked metric against a condition threshold.
type Operator string

const (
	OpGreaterOrEqual  Operator = "greater-or-equal"
	OpEqual           Operator = "equal"
	OpConsecutiveDays Operator = "consecutive-days"
)

// Matches reports whether value satisfies the operator against threshold.
// Consecutive-days conditions match on the exact day count so each
// milestone fires once.
func (op Operator) Matches(value, threshold int) bool {
	switch op {
	case OpGreaterOrEqual:
		return value >= threshold
	case OpEqual, OpConsecutiveDays:
		return value == threshold
	default:
		return false
	}
}

// Condition is an achievement's unlock rule.
type Condition struct {
	Metric    string
	Threshold int
	Operator  Operator
}

// Achievement is a catalog-defined milestone template. Templates are
// immutable; unlock state lives in the Engine.
type Achievement struct {
	ID              string
	Name            string
	Description     string
	Category        Category
	Rarity          rarity.Rarity
	Icon            string
	Condition       Condition
	CosmeticRewards []string // cosmetic ids granted on unlock
}

// Progress is a snapshot of partial progress toward an achievement.
type Progress struct {
	Current    int
	Target     int
	Percentage int // min(100, round(100·current/target))
}

// Remaining returns how far the current value is from the target. Only
// meaningful while Current < Target.
func (p Progress) Remaining() int {
	return p.Target - p.Current
}

// View pairs a catalog template with its mutable unlock state.
type View struct {
	Achievement
	UnlockedAt *time.Time
	Progress   *Progress
}

// Earned reports whether the achievement has been unlocked.
func (v View) Earned() bool {
	return v.UnlockedAt != nil
}

// UnlockResult reports the outcome of an unlock call.
type UnlockResult struct {
	Achievement       *Achievement
	IsNewUnlock       bool
	CosmeticsUnlocked []string
}

// Statistics is derived from the earned set on every call, so it is
// always consistent with the underlying state.
type Statistics struct {
	TotalEarned          int
	TotalAvailable       int
	CompletionPercentage int
	RarestBadge          *View // highest rarity earned; earliest unlock wins ties
	RecentUnlocks        []View
}
