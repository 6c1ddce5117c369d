package notify

import "time"

// Type identifies what kind of state change a notification announces.
type Type string

const (
	TypeAchievement       Type = "achievement"
	TypeStreakMilestone   Type = "streak-milestone"
	TypeChallengeComplete Type = "challenge-complete"
	TypeCosmeticUnlock    Type = "cosmetic-unlock"
)

// Priority controls tie-breaking between notifications sharing a timestamp.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// rank returns the ordinal position of the priority, low(1) through
// high(3). Unknown priorities rank 0.
func (p Priority) rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityNormal:
		return 2
	case PriorityHigh:
		return 3
	default:
		return 0
	}
}

// Notification is a transient, display-once message describing a
// progression state change. It is held in the Queue until delivered to a
// listener, then discarded.
type Notification struct {
	ID        string
	Type      Type
	Title     string
	Message   string
	Priority  Priority
	Timestamp time.Time
	Payload   any // e.g. the unlocked achievement
}
