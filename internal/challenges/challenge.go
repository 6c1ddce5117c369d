// Package challenges maintains the weekly challenge set: time-boxed
// objectives with clamped progress and a one-shot completion reward.
// Week rollover (generating the next week's set) belongs to an external
// scheduler; this package only tracks progress inside the week boundary
// it was given.
package challenges

import (
	"math"
	"time"
)

// Objective is what a challenge measures.
type Objective struct {
	Metric string
	Target int
	Unit   string
}

// Reward describes what completing a challenge earns. All fields are
// optional; the caller forwards non-nil ids to the Achievement Engine
// and Cosmetic Inventory Manager.
type Reward struct {
	BonusPoints   int
	AchievementID *string
	CosmeticID    *string
}

// Challenge is one weekly objective. Once Completed is true, Progress
// is frozen.
type Challenge struct {
	ID          string
	Title       string
	Description string
	Objective   Objective
	Reward      Reward
	StartDate   time.Time
	EndDate     time.Time
	Progress    int
	Completed   bool
}

// ProgressPercentage returns clamped progress toward the objective as a
// whole percentage.
func (c Challenge) ProgressPercentage() int {
	if c.Objective.Target <= 0 {
		return 0
	}
	pct := int(math.Round(float64(c.Progress) / float64(c.Objective.Target) * 100))
	if pct > 100 {
		pct = 100
	}
	return pct
}

func formatDay(t time.Time) string {
	return t.Format(time.DateOnly)
}

func parseDay(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}
