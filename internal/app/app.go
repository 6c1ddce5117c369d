// Package app wires the progression services together and drives the
// daily recording transaction. Each service gets only the narrow
// interfaces it needs; nothing in here is a global.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/anuraag/pipkin/internal/achievements"
	"github.com/anuraag/pipkin/internal/challenges"
	"github.com/anuraag/pipkin/internal/cosmetics"
	"github.com/anuraag/pipkin/internal/notify"
	"github.com/anuraag/pipkin/internal/store"
	"github.com/anuraag/pipkin/internal/streak"
)

const (
	// DefaultDailyGoal is the step count that marks a day as meeting
	// the streak criteria.
	DefaultDailyGoal = 7000

	// stepsPerKM approximates walking distance from a step count.
	stepsPerKM = 1300

	snapshotVersion = 1
	snapshotsToKeep = 10
)

// Options configures an App.
type Options struct {
	// DailyGoalSteps overrides DefaultDailyGoal when positive.
	DailyGoalSteps int
}

// Sequencer hands out global sequence numbers for snapshots.
// *store.Store satisfies it.
type Sequencer interface {
	NextSequence(ctx context.Context) (int64, error)
}

// App is the composition root: one long-lived instance of each
// progression service, sharing a store and a notification queue.
type App struct {
	Queue      *notify.Queue
	Inventory  *cosmetics.Inventory
	Engine     *achievements.Engine
	Tracker    *streak.Tracker
	Challenges *challenges.Manager

	snapshots store.SnapshotRepo
	seq       Sequencer
	dailyGoal int
	totals    store.TotalsState
}

// New builds an App on top of an open store.
func New(st *store.Store, opts Options) *App {
	return NewWith(st.EventRepo(), st.SnapshotRepo(), st, opts)
}

// NewWith builds an App from explicit repositories. Tests use it to
// substitute mocks; nil repositories disable persistence.
func NewWith(events store.EventRepo, snapshots store.SnapshotRepo, seq Sequencer, opts Options) *App {
	queue := notify.NewQueue(notify.DefaultInterval)
	inventory := cosmetics.NewInventory(events, queue)
	engine := achievements.NewEngine(events, inventory, queue)
	tracker := streak.NewTracker(events, engine, queue)
	manager := challenges.NewManager(events, queue)

	goal := opts.DailyGoalSteps
	if goal <= 0 {
		goal = DefaultDailyGoal
	}

	return &App{
		Queue:      queue,
		Inventory:  inventory,
		Engine:     engine,
		Tracker:    tracker,
		Challenges: manager,
		snapshots:  snapshots,
		seq:        seq,
		dailyGoal:  goal,
	}
}

// DailyInput is one day's activity as reported by the health-data
// aggregator (or the record command standing in for it).
type DailyInput struct {
	Date          time.Time
	Steps         int
	ActiveMinutes int
}

// RecordResult reports everything one daily recording changed.
type RecordResult struct {
	TransactionID  string
	Date           time.Time
	CriteriaMet    bool
	Streak         streak.Result
	Unlocked       []achievements.UnlockResult
	Completed      []challenges.Challenge
	BonusPoints    int // earned by this recording
	WeekRolledOver bool
}

// RecordDailyProgress runs the single daily transaction: week rollover
// if due, streak recording, challenge progress, lifetime totals and the
// milestone scan. A repeat recording for an already-recorded day leaves
// counters untouched but still re-runs the milestone scan, which is
// idempotent. The snapshot is saved before returning.
func (a *App) RecordDailyProgress(ctx context.Context, in DailyInput) RecordResult {
	date := streak.Day(in.Date)
	result := RecordResult{
		TransactionID: uuid.NewString(),
		Date:          date,
		CriteriaMet:   in.Steps >= a.dailyGoal,
	}

	if a.Challenges.WeekExpired(date) {
		ws := WeekStart(date)
		a.Challenges.SetWeek(challenges.DefaultWeek(ws), ws)
		result.WeekRolledOver = true
	}

	newDay := !date.Equal(a.Tracker.Snapshot().LastRecorded)
	result.Streak = a.Tracker.RecordDaily(ctx, date, result.CriteriaMet)

	if newDay {
		a.totals.DaysRecorded++
		a.totals.TotalSteps += in.Steps
		a.advanceChallenges(ctx, in, result.CriteriaMet, &result)
	}

	if a.Challenges.AllCompleted() {
		week := a.Challenges.WeekStart().Format(time.DateOnly)
		if a.totals.SweepWeek != week {
			a.totals.SweepWeek = week
			a.totals.WeeklySweeps++
		}
	}

	metrics := map[string]int{
		achievements.MetricSteps:               in.Steps,
		achievements.MetricTotalSteps:          a.totals.TotalSteps,
		achievements.MetricStreakDays:          result.Streak.NewStreak,
		achievements.MetricDaysRecorded:        a.totals.DaysRecorded,
		achievements.MetricChallengesCompleted: a.totals.ChallengesDone,
		achievements.MetricWeeklySweeps:        a.totals.WeeklySweeps,
	}
	result.Unlocked = append(result.Unlocked, a.Engine.CheckMilestone(ctx, metrics)...)

	_ = a.SaveSnapshot(ctx)
	return result
}

// advanceChallenges feeds the day's activity into every active
// challenge that tracks a metric this input can move.
func (a *App) advanceChallenges(ctx context.Context, in DailyInput, criteriaMet bool, result *RecordResult) {
	for _, c := range a.Challenges.Active() {
		var value int
		switch c.Objective.Metric {
		case "weekly_steps":
			value = c.Progress + in.Steps
		case "active_days":
			if !criteriaMet {
				continue
			}
			value = c.Progress + 1
		case "distance_km":
			value = c.Progress + in.Steps/stepsPerKM
		case "active_minutes":
			if in.ActiveMinutes <= 0 {
				continue
			}
			value = c.Progress + in.ActiveMinutes
		default:
			continue
		}

		reward := a.Challenges.UpdateProgress(ctx, c.ID, value)
		if reward == nil {
			continue
		}
		done, _ := a.Challenges.Get(c.ID)
		result.Completed = append(result.Completed, done)
		a.applyReward(ctx, *reward, result)
	}
}

// applyReward forwards a challenge reward descriptor to the services
// it names and bumps the lifetime counters.
func (a *App) applyReward(ctx context.Context, reward challenges.Reward, result *RecordResult) {
	a.totals.ChallengesDone++
	a.totals.BonusPoints += reward.BonusPoints
	result.BonusPoints += reward.BonusPoints

	if reward.AchievementID != nil {
		if r := a.Engine.Unlock(ctx, *reward.AchievementID, "challenge"); r.IsNewUnlock {
			result.Unlocked = append(result.Unlocked, r)
		}
	}
	if reward.CosmeticID != nil {
		a.Inventory.Add(ctx, *reward.CosmeticID, nil)
	}
}

// Totals returns a copy of the lifetime counters.
func (a *App) Totals() store.TotalsState {
	return a.totals
}

// LoadLatest restores all services from the most recent snapshot.
// A missing snapshot (fresh install) leaves everything empty.
func (a *App) LoadLatest(ctx context.Context) error {
	if a.snapshots == nil {
		return nil
	}
	snap, err := a.snapshots.Latest(ctx)
	if err != nil {
		return fmt.Errorf("load latest snapshot: %w", err)
	}
	if snap == nil {
		return nil
	}

	a.Inventory.Load(snap.Data.Cosmetics)
	a.Engine.Load(snap.Data.Achievements)
	a.Tracker.Load(snap.Data.Streak)
	a.Challenges.Load(snap.Data.Challenges)
	a.totals = store.TotalsState{}
	if snap.Data.Totals != nil {
		a.totals = *snap.Data.Totals
	}
	return nil
}

// SaveSnapshot persists the full progression state of every service.
func (a *App) SaveSnapshot(ctx context.Context) error {
	if a.snapshots == nil {
		return nil
	}

	var seq int64
	if a.seq != nil {
		n, err := a.seq.NextSequence(ctx)
		if err != nil {
			return fmt.Errorf("snapshot sequence: %w", err)
		}
		seq = n
	}

	totals := a.totals
	totals.LastUpdated = time.Now().UTC().Format(time.RFC3339)
	snap := &store.Snapshot{
		Sequence:  seq,
		Timestamp: time.Now().UTC(),
		Data: store.SnapshotData{
			Version:      snapshotVersion,
			Achievements: a.Engine.State(),
			Streak:       a.Tracker.State(),
			Challenges:   a.Challenges.State(),
			Cosmetics:    a.Inventory.State(),
			Totals:       &totals,
		},
	}
	if err := a.snapshots.Save(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	_ = a.snapshots.Prune(ctx, snapshotsToKeep)
	return nil
}

// Reset clears the in-memory state of every service.
func (a *App) Reset() {
	a.Engine.Reset()
	a.Tracker.Reset()
	a.Challenges.Reset()
	a.Inventory.Reset()
	a.totals = store.TotalsState{}
}

// WeekStart returns the Monday on or before date.
func WeekStart(date time.Time) time.Time {
	date = streak.Day(date)
	offset := (int(date.Weekday()) + 6) % 7
	return date.AddDate(0, 0, -offset)
}
