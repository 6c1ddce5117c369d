// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AchievementEvent is the predicate function for achievementevent builders.
type AchievementEvent func(*sql.Selector)

// ChallengeEvent is the predicate function for challengeevent builders.
type ChallengeEvent func(*sql.Selector)

// CosmeticEvent is the predicate function for cosmeticevent builders.
type CosmeticEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)

// StreakEvent is the predicate function for streakevent builders.
type StreakEvent func(*sql.Selector)
