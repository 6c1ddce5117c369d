package achievements

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/anuraag/pipkin/internal/cosmetics"
	"github.com/anuraag/pipkin/internal/notify"
	"github.com/anuraag/pipkin/internal/store"
)

// recentUnlockLimit caps the recent-unlocks list in Statistics.
const recentUnlockLimit = 5

// CosmeticGranter is the narrow inventory surface the engine needs to
// hand out rewards. *cosmetics.Inventory satisfies it.
type CosmeticGranter interface {
	Add(ctx context.Context, id string, sourceAchievement *string) (*cosmetics.Owned, bool)
}

// Notifier is the narrow notification surface the engine needs.
// *notify.Queue satisfies it.
type Notifier interface {
	Enqueue(notify.Notification)
}

// Engine owns unlock and progress state for the achievement catalog.
// The catalog itself is immutable; the engine mutates only the earned
// set and per-achievement progress. Persistence is fire-and-forget:
// in-memory state is authoritative for the rest of the session.
type Engine struct {
	unlocked map[string]time.Time
	progress map[string]*Progress

	events   store.EventRepo
	granter  CosmeticGranter
	notifier Notifier
}

// NewEngine creates an engine with nothing earned.
func NewEngine(events store.EventRepo, granter CosmeticGranter, notifier Notifier) *Engine {
	return &Engine{
		unlocked: make(map[string]time.Time),
		progress: make(map[string]*Progress),
		events:   events,
		granter:  granter,
		notifier: notifier,
	}
}

// Load restores unlock and progress state from a persisted record.
// Ids that no longer resolve in the catalog are dropped.
func (e *Engine) Load(state *store.AchievementsState) {
	e.unlocked = make(map[string]time.Time)
	e.progress = make(map[string]*Progress)
	if state == nil {
		return
	}

	for id, ts := range state.Unlocked {
		if _, ok := Lookup(id); !ok {
			continue
		}
		t, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			continue
		}
		e.unlocked[id] = t
	}
	for id, pd := range state.Progress {
		a, ok := Lookup(id)
		if !ok || pd == nil {
			continue
		}
		e.progress[id] = newProgress(pd.Current, a.Condition.Threshold)
	}
	// Unlocked achievements always show full progress.
	for id := range e.unlocked {
		e.forceFullProgress(id)
	}
}

// State builds the persisted record for snapshotting.
func (e *Engine) State() *store.AchievementsState {
	state := &store.AchievementsState{
		Unlocked:    make(map[string]string, len(e.unlocked)),
		LastUpdated: time.Now().UTC().Format(time.RFC3339),
	}
	for id, t := range e.unlocked {
		state.Unlocked[id] = t.UTC().Format(time.RFC3339)
	}
	if len(e.progress) > 0 {
		state.Progress = make(map[string]*store.ProgressData, len(e.progress))
		for id, p := range e.progress {
			state.Progress[id] = &store.ProgressData{Current: p.Current, Target: p.Target}
		}
	}
	return state
}

// CheckMilestone scans the catalog against the supplied metric snapshot
// and unlocks every matching achievement not already unlocked. Calling
// twice with identical metrics never unlocks twice. Partial values for
// threshold conditions are recorded as progress.
func (e *Engine) CheckMilestone(ctx context.Context, metrics map[string]int) []UnlockResult {
	var newlyUnlocked []UnlockResult
	for _, a := range Catalog() {
		value, tracked := metrics[a.Condition.Metric]
		if !tracked {
			continue
		}
		if _, done := e.unlocked[a.ID]; done {
			continue
		}
		if a.Condition.Operator.Matches(value, a.Condition.Threshold) {
			newlyUnlocked = append(newlyUnlocked, e.unlock(ctx, a, "metric"))
			continue
		}
		if a.Condition.Operator == OpGreaterOrEqual {
			e.progress[a.ID] = newProgress(value, a.Condition.Threshold)
		}
	}
	return newlyUnlocked
}

// Unlock unconditionally unlocks the achievement with the given id.
// Source labels what triggered it (metric, streak, challenge, manual)
// for the event log. Unknown ids are a silent no-op; re-unlocking an
// earned achievement reports IsNewUnlock=false and re-grants nothing.
func (e *Engine) Unlock(ctx context.Context, id, source string) UnlockResult {
	a, ok := Lookup(id)
	if !ok {
		return UnlockResult{}
	}
	if _, done := e.unlocked[id]; done {
		return UnlockResult{Achievement: &a}
	}
	return e.unlock(ctx, a, source)
}

// unlock applies a new unlock: stamps the time, forces progress to the
// target, grants cosmetic rewards, persists and notifies. The unlock
// timestamp is immutable from here on.
func (e *Engine) unlock(ctx context.Context, a Achievement, source string) UnlockResult {
	e.unlocked[a.ID] = time.Now()
	e.forceFullProgress(a.ID)

	result := UnlockResult{Achievement: &a, IsNewUnlock: true}
	if e.granter != nil {
		for _, rewardID := range a.CosmeticRewards {
			achievementID := a.ID
			if _, isNew := e.granter.Add(ctx, rewardID, &achievementID); isNew {
				result.CosmeticsUnlocked = append(result.CosmeticsUnlocked, rewardID)
			}
		}
	}

	e.persist(ctx, store.AchievementEventData{
		AchievementID:    a.ID,
		Category:         string(a.Category),
		Rarity:           string(a.Rarity),
		Source:           source,
		CosmeticsGranted: result.CosmeticsUnlocked,
	})
	if e.notifier != nil {
		e.notifier.Enqueue(notify.Notification{
			Type:     notify.TypeAchievement,
			Title:    "Achievement unlocked!",
			Message:  a.Icon + " " + a.Name,
			Priority: notify.PriorityHigh,
			Payload:  e.view(a),
		})
	}
	return result
}

// UpdateProgress records partial progress toward an achievement's
// target. Unknown ids are a silent no-op. Progress of an unlocked
// achievement stays pinned at 100%.
func (e *Engine) UpdateProgress(ctx context.Context, id string, current int) *Progress {
	a, ok := Lookup(id)
	if !ok {
		return nil
	}
	if _, done := e.unlocked[id]; done {
		return e.progress[id]
	}
	p := newProgress(current, a.Condition.Threshold)
	e.progress[id] = p
	return p
}

// Get returns the achievement view for id.
func (e *Engine) Get(id string) (View, bool) {
	a, ok := Lookup(id)
	if !ok {
		return View{}, false
	}
	return e.view(a), true
}

// All returns views for the full catalog, sorted by id.
func (e *Engine) All() []View {
	templates := Catalog()
	out := make([]View, len(templates))
	for i, a := range templates {
		out[i] = e.view(a)
	}
	return out
}

// Status selects achievements by earned state in Filter.
type Status string

const (
	StatusAll    Status = "all"
	StatusEarned Status = "earned"
	StatusLocked Status = "locked"
)

// FilterOpts narrows Filter results. Zero-valued fields are wildcards.
type FilterOpts struct {
	Category Category
	Rarity   string
	Status   Status
}

// Filter returns achievements matching all supplied criteria.
// Filter(FilterOpts{}) returns the full catalog.
func (e *Engine) Filter(opts FilterOpts) []View {
	var out []View
	for _, v := range e.All() {
		if opts.Category != "" && v.Category != opts.Category {
			continue
		}
		if opts.Rarity != "" && string(v.Rarity) != opts.Rarity {
			continue
		}
		switch opts.Status {
		case StatusEarned:
			if !v.Earned() {
				continue
			}
		case StatusLocked:
			if v.Earned() {
				continue
			}
		}
		out = append(out, v)
	}
	return out
}

// Statistics derives earned totals from scratch on every call.
func (e *Engine) Statistics() Statistics {
	stats := Statistics{
		TotalEarned:    len(e.unlocked),
		TotalAvailable: CatalogSize(),
	}
	if stats.TotalAvailable > 0 {
		ratio := float64(stats.TotalEarned) / float64(stats.TotalAvailable)
		stats.CompletionPercentage = int(math.Round(ratio * 100))
	}

	earned := e.Filter(FilterOpts{Status: StatusEarned})

	// Rarest badge: highest rarity wins; among equals, earliest unlock.
	// Copied out of the slice, which the recency sort below reorders.
	for _, v := range earned {
		best := stats.RarestBadge
		if best == nil ||
			v.Rarity.Rank() > best.Rarity.Rank() ||
			(v.Rarity.Rank() == best.Rarity.Rank() && v.UnlockedAt.Before(*best.UnlockedAt)) {
			rarest := v
			stats.RarestBadge = &rarest
		}
	}

	sort.Slice(earned, func(i, j int) bool {
		return earned[i].UnlockedAt.After(*earned[j].UnlockedAt)
	})
	if len(earned) > recentUnlockLimit {
		earned = earned[:recentUnlockLimit]
	}
	stats.RecentUnlocks = earned
	return stats
}

// Reset clears all unlock and progress state.
func (e *Engine) Reset() {
	e.unlocked = make(map[string]time.Time)
	e.progress = make(map[string]*Progress)
}

func (e *Engine) view(a Achievement) View {
	v := View{Achievement: a}
	if t, ok := e.unlocked[a.ID]; ok {
		unlockedAt := t
		v.UnlockedAt = &unlockedAt
	}
	if p, ok := e.progress[a.ID]; ok {
		progress := *p
		v.Progress = &progress
	}
	return v
}

func (e *Engine) forceFullProgress(id string) {
	a, ok := Lookup(id)
	if !ok {
		return
	}
	t := a.Condition.Threshold
	e.progress[id] = &Progress{Current: t, Target: t, Percentage: 100}
}

func (e *Engine) persist(ctx context.Context, data store.AchievementEventData) {
	if e.events == nil {
		return
	}
	_ = e.events.AppendAchievementEvent(ctx, data)
}

// newProgress clamps and rounds a progress snapshot. Percentage is
// min(100, round(100·current/target)), exactly 0 when current is 0.
func newProgress(current, target int) *Progress {
	p := &Progress{Current: current, Target: target}
	if target > 0 {
		pct := int(math.Round(float64(current) / float64(target) * 100))
		if pct > 100 {
			pct = 100
		}
		p.Percentage = pct
	}
	return p
}
