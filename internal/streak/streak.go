package streak

import "time"

// Segment is one closed run of consecutive successful days.
type Segment struct {
	Start  time.Time
	End    time.Time
	Length int
}

// State is the tracker's day-over-day continuity record. Longest never
// drops below Current.
type State struct {
	Current      int
	Longest      int
	LastRecorded time.Time // zero if nothing recorded yet
	History      []Segment // past runs, oldest first
}

// Milestone identifies a streak day-count that earns an achievement.
type Milestone struct {
	Days          int
	AchievementID string
}

// Result reports the outcome of recording one day.
type Result struct {
	PreviousStreak int
	NewStreak      int
	WasReset       bool
	Milestone      *Milestone // nil unless the new streak exactly hits a milestone
}

// Day normalizes a timestamp to its calendar day (midnight UTC). All
// tracker arithmetic works on whole days.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD calendar date.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}

// FormatDay renders a calendar date as YYYY-MM-DD.
func FormatDay(t time.Time) string {
	return t.Format(time.DateOnly)
}
