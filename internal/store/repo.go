package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures the full companion progression state at a point
// in time. Each component contributes its own sub-record; nil means the
// component has never persisted (fresh install).
type SnapshotData struct {
	Version      int                     `json:"version"`
	Achievements *AchievementsState      `json:"achievements,omitempty"`
	Streak       *StreakState            `json:"streak,omitempty"`
	Challenges   *ChallengesState        `json:"challenges,omitempty"`
	Cosmetics    *CosmeticInventoryState `json:"cosmetics,omitempty"`
	Totals       *TotalsState            `json:"totals,omitempty"`
}

// TotalsState carries the lifetime counters that feed milestone checks.
// They live outside any single component: the composition layer owns
// them.
type TotalsState struct {
	TotalSteps     int    `json:"total_steps"`
	DaysRecorded   int    `json:"days_recorded"`
	ChallengesDone int    `json:"challenges_done"`
	WeeklySweeps   int    `json:"weekly_sweeps"`
	BonusPoints    int    `json:"bonus_points,omitempty"`
	SweepWeek      string `json:"sweep_week,omitempty"` // week already counted as a sweep, YYYY-MM-DD
	LastUpdated    string `json:"last_updated,omitempty"`
}

// AchievementsState is the persisted record of the Achievement Engine:
// the unlocked subset of the catalog plus partial progress. The catalog
// itself is compiled in and never stored.
type AchievementsState struct {
	Unlocked    map[string]string        `json:"unlocked"` // id → RFC3339 unlock time
	Progress    map[string]*ProgressData `json:"progress,omitempty"`
	LastUpdated string                   `json:"last_updated,omitempty"`
}

// ProgressData is a persisted progress snapshot toward one achievement.
type ProgressData struct {
	Current int `json:"current"`
	Target  int `json:"target"`
}

// StreakState is the persisted record of the Streak Tracker.
type StreakState struct {
	Current      int                 `json:"current"`
	Longest      int                 `json:"longest"`
	LastRecorded string              `json:"last_recorded,omitempty"` // YYYY-MM-DD
	History      []StreakSegmentData `json:"history,omitempty"`
	LastUpdated  string              `json:"last_updated,omitempty"`
}

// StreakSegmentData is one closed run of consecutive successful days.
type StreakSegmentData struct {
	Start  string `json:"start"` // YYYY-MM-DD
	End    string `json:"end"`   // YYYY-MM-DD
	Length int    `json:"length"`
}

// ChallengesState is the persisted record of the Challenge Manager for
// the current week.
type ChallengesState struct {
	Active      []ChallengeData `json:"active"`
	Completed   []string        `json:"completed,omitempty"`
	WeekStart   string          `json:"week_start,omitempty"` // YYYY-MM-DD
	LastUpdated string          `json:"last_updated,omitempty"`
}

// ChallengeData is the serialized form of a weekly challenge.
type ChallengeData struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description,omitempty"`
	Metric        string  `json:"metric"`
	Target        int     `json:"target"`
	Unit          string  `json:"unit,omitempty"`
	BonusPoints   int     `json:"bonus_points,omitempty"`
	AchievementID *string `json:"achievement_id,omitempty"`
	CosmeticID    *string `json:"cosmetic_id,omitempty"`
	StartDate     string  `json:"start_date"` // YYYY-MM-DD
	EndDate       string  `json:"end_date"`   // YYYY-MM-DD
	Progress      int     `json:"progress"`
	Completed     bool    `json:"completed"`
}

// CosmeticInventoryState is the persisted record of the Cosmetic
// Inventory Manager: owned items (by id) and the equipped slot mapping.
type CosmeticInventoryState struct {
	Owned       []OwnedCosmeticData `json:"owned"`
	Equipped    map[string]string   `json:"equipped,omitempty"` // category → cosmetic id
	LastUpdated string              `json:"last_updated,omitempty"`
}

// OwnedCosmeticData records ownership of one catalog cosmetic.
type OwnedCosmeticData struct {
	ID                string  `json:"id"`
	UnlockedAt        string  `json:"unlocked_at,omitempty"` // RFC3339
	SourceAchievement *string `json:"source_achievement,omitempty"`
}

// Snapshot represents a point-in-time capture of progression state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages progression state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AchievementEventData captures one achievement unlock for the event log.
type AchievementEventData struct {
	AchievementID    string
	Category         string
	Rarity           string
	Source           string // metric, streak, challenge or manual
	CosmeticsGranted []string
}

// AchievementEventRecord is a queried achievement event.
type AchievementEventRecord struct {
	AchievementID    string
	Category         string
	Rarity           string
	Source           string
	CosmeticsGranted []string
	Sequence         int64
	Timestamp        time.Time
}

// StreakEventData captures one daily streak update for the event log.
type StreakEventData struct {
	Date           string // YYYY-MM-DD
	CriteriaMet    bool
	PreviousStreak int
	NewStreak      int
	WasReset       bool
	Milestone      *int
}

// StreakEventRecord is a queried streak event.
type StreakEventRecord struct {
	Date           string
	CriteriaMet    bool
	PreviousStreak int
	NewStreak      int
	WasReset       bool
	Milestone      *int
	Sequence       int64
	Timestamp      time.Time
}

// ChallengeEventData captures one challenge completion for the event log.
type ChallengeEventData struct {
	ChallengeID   string
	Title         string
	Target        int
	WeekStart     string // YYYY-MM-DD
	BonusPoints   int
	AchievementID *string
}

// ChallengeEventRecord is a queried challenge event.
type ChallengeEventRecord struct {
	ChallengeID   string
	Title         string
	Target        int
	WeekStart     string
	BonusPoints   int
	AchievementID *string
	Sequence      int64
	Timestamp     time.Time
}

// CosmeticEventData captures one inventory mutation for the event log.
type CosmeticEventData struct {
	CosmeticID        string
	Action            string // add, equip or unequip
	Category          string
	Rarity            string
	SourceAchievement *string
}

// CosmeticEventRecord is a queried cosmetic event.
type CosmeticEventRecord struct {
	CosmeticID        string
	Action            string
	Category          string
	Rarity            string
	SourceAchievement *string
	Sequence          int64
	Timestamp         time.Time
}

// EventRepo provides append and query access to progression events.
type EventRepo interface {
	// AppendAchievementEvent records an achievement unlock.
	AppendAchievementEvent(ctx context.Context, data AchievementEventData) error

	// QueryAchievementEvents returns unlock events, newest first.
	QueryAchievementEvents(ctx context.Context, opts QueryOpts) ([]AchievementEventRecord, error)

	// AppendStreakEvent records a daily streak update.
	AppendStreakEvent(ctx context.Context, data StreakEventData) error

	// QueryStreakEvents returns streak events, newest first.
	QueryStreakEvents(ctx context.Context, opts QueryOpts) ([]StreakEventRecord, error)

	// AppendChallengeEvent records a challenge completion.
	AppendChallengeEvent(ctx context.Context, data ChallengeEventData) error

	// QueryChallengeEvents returns challenge events, newest first.
	QueryChallengeEvents(ctx context.Context, opts QueryOpts) ([]ChallengeEventRecord, error)

	// AppendCosmeticEvent records an inventory mutation.
	AppendCosmeticEvent(ctx context.Context, data CosmeticEventData) error

	// QueryCosmeticEvents returns cosmetic events, newest first.
	QueryCosmeticEvents(ctx context.Context, opts QueryOpts) ([]CosmeticEventRecord, error)

	// UnlockCounts returns unlock totals grouped by achievement category
	// and the overall total.
	UnlockCounts(ctx context.Context) (map[string]int, int, error)
}
