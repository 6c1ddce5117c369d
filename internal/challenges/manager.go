package challenges

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/anuraag/pipkin/internal/notify"
	"github.com/anuraag/pipkin/internal/store"
)

// weekLength is the fixed span of one challenge week.
const weekLength = 7 * 24 * time.Hour

// Notifier is the narrow notification surface the manager needs.
// *notify.Queue satisfies it.
type Notifier interface {
	Enqueue(notify.Notification)
}

// Manager owns the active challenge set for the current week. It tracks
// progress and completion only; generating each week's set is the
// caller's job via SetWeek. Persistence is fire-and-forget: in-memory
// state is authoritative for the rest of the session.
type Manager struct {
	active    []Challenge
	completed []string // completion order within the week
	weekStart time.Time

	events   store.EventRepo
	notifier Notifier
}

// NewManager creates a manager with no active week.
func NewManager(events store.EventRepo, notifier Notifier) *Manager {
	return &Manager{events: events, notifier: notifier}
}

// SetWeek installs a new week's challenge set, replacing the previous
// week entirely. Progress and completion flags carried on the supplied
// challenges are kept, so a snapshot reload can reuse this path.
func (m *Manager) SetWeek(challenges []Challenge, weekStart time.Time) {
	m.active = slices.Clone(challenges)
	m.completed = nil
	for _, c := range m.active {
		if c.Completed {
			m.completed = append(m.completed, c.ID)
		}
	}
	m.weekStart = midnight(weekStart)
}

// WeekExpired reports whether today falls outside the installed week,
// meaning the external scheduler owes a rollover. With no week installed
// it always reports true.
func (m *Manager) WeekExpired(today time.Time) bool {
	if m.weekStart.IsZero() {
		return true
	}
	return !midnight(today).Before(m.weekStart.Add(weekLength))
}

// UpdateProgress sets a challenge's progress to value clamped into
// [0, target]. A challenge that already completed is frozen and the
// call is a no-op, as is an unknown id. When the clamped value reaches
// the target the challenge completes in the same call and its reward
// is returned; otherwise the return is nil.
func (m *Manager) UpdateProgress(ctx context.Context, id string, value int) *Reward {
	c := m.find(id)
	if c == nil || c.Completed {
		return nil
	}
	c.Progress = max(0, min(value, c.Objective.Target))
	if c.Progress < c.Objective.Target {
		return nil
	}
	return m.complete(ctx, c)
}

// Complete forces completion of a challenge regardless of progress and
// returns its reward. Progress jumps to the target. Already-completed
// and unknown ids return nil.
func (m *Manager) Complete(ctx context.Context, id string) *Reward {
	c := m.find(id)
	if c == nil || c.Completed {
		return nil
	}
	c.Progress = c.Objective.Target
	return m.complete(ctx, c)
}

// AllCompleted reports whether every active challenge this week has
// completed. An empty week reports false.
func (m *Manager) AllCompleted() bool {
	if len(m.active) == 0 {
		return false
	}
	for _, c := range m.active {
		if !c.Completed {
			return false
		}
	}
	return true
}

// Active returns a copy of the current week's challenge set.
func (m *Manager) Active() []Challenge {
	return slices.Clone(m.active)
}

// Get returns the challenge with the given id.
func (m *Manager) Get(id string) (Challenge, bool) {
	if c := m.find(id); c != nil {
		return *c, true
	}
	return Challenge{}, false
}

// CompletedIDs returns the ids completed this week, in completion order.
func (m *Manager) CompletedIDs() []string {
	return slices.Clone(m.completed)
}

// WeekStart returns the installed week's start date, zero if none.
func (m *Manager) WeekStart() time.Time {
	return m.weekStart
}

// Load restores manager state from a persisted record.
func (m *Manager) Load(state *store.ChallengesState) {
	m.active = nil
	m.completed = nil
	m.weekStart = time.Time{}
	if state == nil {
		return
	}
	for _, cd := range state.Active {
		c := Challenge{
			ID:          cd.ID,
			Title:       cd.Title,
			Description: cd.Description,
			Objective:   Objective{Metric: cd.Metric, Target: cd.Target, Unit: cd.Unit},
			Reward: Reward{
				BonusPoints:   cd.BonusPoints,
				AchievementID: cd.AchievementID,
				CosmeticID:    cd.CosmeticID,
			},
			Progress:  cd.Progress,
			Completed: cd.Completed,
		}
		if d, err := parseDay(cd.StartDate); err == nil {
			c.StartDate = d
		}
		if d, err := parseDay(cd.EndDate); err == nil {
			c.EndDate = d
		}
		m.active = append(m.active, c)
	}
	m.completed = slices.Clone(state.Completed)
	if state.WeekStart != "" {
		if d, err := parseDay(state.WeekStart); err == nil {
			m.weekStart = d
		}
	}
}

// State builds the persisted record for snapshotting.
func (m *Manager) State() *store.ChallengesState {
	state := &store.ChallengesState{
		Completed:   slices.Clone(m.completed),
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	}
	if !m.weekStart.IsZero() {
		state.WeekStart = formatDay(m.weekStart)
	}
	for _, c := range m.active {
		state.Active = append(state.Active, store.ChallengeData{
			ID:            c.ID,
			Title:         c.Title,
			Description:   c.Description,
			Metric:        c.Objective.Metric,
			Target:        c.Objective.Target,
			Unit:          c.Objective.Unit,
			BonusPoints:   c.Reward.BonusPoints,
			AchievementID: c.Reward.AchievementID,
			CosmeticID:    c.Reward.CosmeticID,
			StartDate:     formatDay(c.StartDate),
			EndDate:       formatDay(c.EndDate),
			Progress:      c.Progress,
			Completed:     c.Completed,
		})
	}
	return state
}

// Reset clears all challenge state.
func (m *Manager) Reset() {
	m.active = nil
	m.completed = nil
	m.weekStart = time.Time{}
}

func (m *Manager) find(id string) *Challenge {
	for i := range m.active {
		if m.active[i].ID == id {
			return &m.active[i]
		}
	}
	return nil
}

// complete marks c completed, persists the event and announces it. The
// returned reward is a copy the caller may forward to the Achievement
// Engine and the Cosmetic Inventory Manager.
func (m *Manager) complete(ctx context.Context, c *Challenge) *Reward {
	c.Completed = true
	m.completed = append(m.completed, c.ID)

	if m.events != nil {
		data := store.ChallengeEventData{
			ChallengeID:   c.ID,
			Title:         c.Title,
			Target:        c.Objective.Target,
			BonusPoints:   c.Reward.BonusPoints,
			AchievementID: c.Reward.AchievementID,
		}
		if !m.weekStart.IsZero() {
			data.WeekStart = formatDay(m.weekStart)
		}
		_ = m.events.AppendChallengeEvent(ctx, data)
	}
	if m.notifier != nil {
		m.notifier.Enqueue(notify.Notification{
			Type:     notify.TypeChallengeComplete,
			Title:    "Challenge complete!",
			Message:  fmt.Sprintf("%s (%d %s)", c.Title, c.Objective.Target, c.Objective.Unit),
			Priority: notify.PriorityNormal,
			Payload:  *c,
		})
	}
	reward := c.Reward
	return &reward
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
