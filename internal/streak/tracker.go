package streak

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/anuraag/pipkin/internal/achievements"
	"github.com/anuraag/pipkin/internal/notify"
	"github.com/anuraag/pipkin/internal/store"
)

// Unlocker is the narrow achievement surface the tracker needs.
// *achievements.Engine satisfies it.
type Unlocker interface {
	Unlock(ctx context.Context, id, source string) achievements.UnlockResult
}

// Notifier is the narrow notification surface the tracker needs.
// *notify.Queue satisfies it.
type Notifier interface {
	Enqueue(notify.Notification)
}

// Tracker owns the day-streak state machine. Callers record each
// calendar day once; milestone day-counts fan out synchronously into
// the Achievement Engine. Persistence is fire-and-forget: in-memory
// state is authoritative for the rest of the session.
type Tracker struct {
	state State

	unlocker Unlocker
	notifier Notifier
	events   store.EventRepo
}

// NewTracker creates a tracker with no streak history.
func NewTracker(events store.EventRepo, unlocker Unlocker, notifier Notifier) *Tracker {
	return &Tracker{events: events, unlocker: unlocker, notifier: notifier}
}

// RecordDaily applies one calendar day to the streak counter.
//
//   - Recording the same day twice is a no-op on the counter.
//   - The day after the last recorded day with the criteria met
//     increments the streak.
//   - A missed day (criteria not met) resets the streak to zero;
//     WasReset is reported only if there was a streak to lose.
//   - A gap of more than one calendar day counts as an implicit miss:
//     the old streak is closed out and, if today's criteria are met,
//     a fresh streak starts at one.
//
// When the updated streak lands exactly on a milestone day-count, the
// matching streak achievement is unlocked before this call returns.
func (t *Tracker) RecordDaily(ctx context.Context, date time.Time, criteriaMet bool) Result {
	date = Day(date)
	prev := t.state.Current
	result := Result{PreviousStreak: prev, NewStreak: prev}

	sameDay := !t.state.LastRecorded.IsZero() && date.Equal(t.state.LastRecorded)
	switch {
	case sameDay:
		// Repeat-recording guard: counter untouched.

	case !criteriaMet:
		t.closeSegment()
		result.WasReset = prev > 0
		t.state.Current = 0
		t.state.LastRecorded = date

	default:
		if t.isNextDay(date) {
			t.state.Current++
		} else {
			// First recording ever, or a gap of skipped days.
			t.closeSegment()
			result.WasReset = prev > 0
			t.state.Current = 1
		}
		if t.state.Current > t.state.Longest {
			t.state.Longest = t.state.Current
		}
		t.state.LastRecorded = date
		result.Milestone = t.hitMilestone(ctx)
	}

	result.NewStreak = t.state.Current
	t.persist(ctx, date, criteriaMet, result)
	return result
}

// MilestoneReached reports whether the current streak value sits exactly
// on a milestone, without recording anything. Used to re-display the
// badge after a reload.
func (t *Tracker) MilestoneReached() *Milestone {
	if slices.Contains(achievements.StreakMilestones, t.state.Current) {
		return &Milestone{
			Days:          t.state.Current,
			AchievementID: achievements.StreakAchievementID(t.state.Current),
		}
	}
	return nil
}

// Current returns the current streak length.
func (t *Tracker) Current() int {
	return t.state.Current
}

// Longest returns the longest streak ever observed.
func (t *Tracker) Longest() int {
	return t.state.Longest
}

// Snapshot returns a copy of the full streak state.
func (t *Tracker) Snapshot() State {
	st := t.state
	st.History = slices.Clone(t.state.History)
	return st
}

// Load restores tracker state from a persisted record.
func (t *Tracker) Load(state *store.StreakState) {
	t.state = State{}
	if state == nil {
		return
	}
	t.state.Current = state.Current
	t.state.Longest = max(state.Longest, state.Current)
	if state.LastRecorded != "" {
		if d, err := ParseDay(state.LastRecorded); err == nil {
			t.state.LastRecorded = d
		}
	}
	for _, seg := range state.History {
		start, err1 := ParseDay(seg.Start)
		end, err2 := ParseDay(seg.End)
		if err1 != nil || err2 != nil {
			continue
		}
		t.state.History = append(t.state.History, Segment{Start: start, End: end, Length: seg.Length})
	}
}

// State builds the persisted record for snapshotting.
func (t *Tracker) State() *store.StreakState {
	state := &store.StreakState{
		Current:     t.state.Current,
		Longest:     t.state.Longest,
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	}
	if !t.state.LastRecorded.IsZero() {
		state.LastRecorded = FormatDay(t.state.LastRecorded)
	}
	for _, seg := range t.state.History {
		state.History = append(state.History, store.StreakSegmentData{
			Start:  FormatDay(seg.Start),
			End:    FormatDay(seg.End),
			Length: seg.Length,
		})
	}
	return state
}

// Reset clears all streak state.
func (t *Tracker) Reset() {
	t.state = State{}
}

// isNextDay reports whether date is exactly the calendar day after the
// last recorded day.
func (t *Tracker) isNextDay(date time.Time) bool {
	if t.state.LastRecorded.IsZero() {
		return false
	}
	return date.Equal(t.state.LastRecorded.AddDate(0, 0, 1))
}

// closeSegment moves the current run, if any, into history.
func (t *Tracker) closeSegment() {
	if t.state.Current <= 0 || t.state.LastRecorded.IsZero() {
		return
	}
	start := t.state.LastRecorded.AddDate(0, 0, -(t.state.Current - 1))
	t.state.History = append(t.state.History, Segment{
		Start:  start,
		End:    t.state.LastRecorded,
		Length: t.state.Current,
	})
}

// hitMilestone fires the streak achievement if the current streak value
// lands exactly on a milestone day-count.
func (t *Tracker) hitMilestone(ctx context.Context) *Milestone {
	days := t.state.Current
	if !slices.Contains(achievements.StreakMilestones, days) {
		return nil
	}
	m := &Milestone{Days: days, AchievementID: achievements.StreakAchievementID(days)}
	if t.unlocker != nil {
		t.unlocker.Unlock(ctx, m.AchievementID, "streak")
	}
	if t.notifier != nil {
		t.notifier.Enqueue(notify.Notification{
			Type:     notify.TypeStreakMilestone,
			Title:    fmt.Sprintf("%d-day streak!", days),
			Message:  fmt.Sprintf("You've met your goal %d days in a row", days),
			Priority: notify.PriorityHigh,
			Payload:  m,
		})
	}
	return m
}

func (t *Tracker) persist(ctx context.Context, date time.Time, criteriaMet bool, r Result) {
	if t.events == nil {
		return
	}
	data := store.StreakEventData{
		Date:           FormatDay(date),
		CriteriaMet:    criteriaMet,
		PreviousStreak: r.PreviousStreak,
		NewStreak:      r.NewStreak,
		WasReset:       r.WasReset,
	}
	if r.Milestone != nil {
		days := r.Milestone.Days
		data.Milestone = &days
	}
	_ = t.events.AppendStreakEvent(ctx, data)
}
