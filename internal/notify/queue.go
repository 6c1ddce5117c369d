package notify

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultInterval is the on-screen display duration separating deliveries.
const DefaultInterval = 3 * time.Second

// Listener receives delivered notifications, one at a time.
type Listener func(Notification)

// Queue is a priority-ordered delivery buffer. Producers enqueue from the
// main call path; a ticker-driven loop delivers at most one notification
// per interval, earliest timestamp first, ties broken high-priority-first.
type Queue struct {
	mu        sync.Mutex
	buf       []Notification
	listeners []Listener
	enabled   bool
	interval  time.Duration
	cancel    context.CancelFunc
}

// NewQueue creates a Queue delivering one notification per interval.
// A non-positive interval falls back to DefaultInterval.
func NewQueue(interval time.Duration) *Queue {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Queue{enabled: true, interval: interval}
}

// Enqueue inserts a notification into the buffer, keeping it sorted by
// timestamp ascending and, for equal timestamps, priority descending.
// A missing ID or timestamp is filled in.
func (q *Queue) Enqueue(n Notification) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Timestamp.IsZero() {
		n.Timestamp = time.Now()
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.buf = append(q.buf, n)
	sort.SliceStable(q.buf, func(i, j int) bool {
		if !q.buf[i].Timestamp.Equal(q.buf[j].Timestamp) {
			return q.buf[i].Timestamp.Before(q.buf[j].Timestamp)
		}
		return q.buf[i].Priority.rank() > q.buf[j].Priority.rank()
	})
}

// AddListener registers a callback invoked once per delivered notification.
func (q *Queue) AddListener(fn Listener) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.listeners = append(q.listeners, fn)
}

// SetEnabled toggles delivery. While disabled, queued notifications are
// consumed without reaching listeners; re-enabling does not replay them.
// Producers are never blocked either way.
func (q *Queue) SetEnabled(enabled bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.enabled = enabled
}

// Enabled reports whether deliveries reach listeners.
func (q *Queue) Enabled() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.enabled
}

// Len returns the number of notifications waiting in the buffer.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.buf)
}

// Pending returns a copy of the buffered notifications in delivery order.
func (q *Queue) Pending() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Notification, len(q.buf))
	copy(out, q.buf)
	return out
}

// Start launches the delivery loop. Stopping the context or calling Stop
// halts further deliveries; already-delivered notifications are not
// rolled back.
func (q *Queue) Start(ctx context.Context) {
	q.mu.Lock()
	if q.cancel != nil {
		q.mu.Unlock()
		return // already running
	}
	ctx, q.cancel = context.WithCancel(ctx)
	q.mu.Unlock()

	go func() {
		ticker := time.NewTicker(q.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				q.deliverNext()
			}
		}
	}()
}

// Stop halts the delivery loop. The buffer is left intact.
func (q *Queue) Stop() {
	q.mu.Lock()
	cancel := q.cancel
	q.cancel = nil
	q.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// deliverNext pops the head of the buffer and hands it to every listener.
// While the queue is disabled the head is consumed silently, so disabled
// periods are never replayed later.
func (q *Queue) deliverNext() {
	q.mu.Lock()
	if len(q.buf) == 0 {
		q.mu.Unlock()
		return
	}
	n := q.buf[0]
	q.buf = q.buf[1:]
	enabled := q.enabled
	listeners := make([]Listener, len(q.listeners))
	copy(listeners, q.listeners)
	q.mu.Unlock()

	if !enabled {
		return
	}
	for _, fn := range listeners {
		fn(n)
	}
}
