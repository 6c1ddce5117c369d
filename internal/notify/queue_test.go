package notify

import (
	"testing"
	"time"
)

func TestEnqueue_FillsDefaults(t *testing.T) {
	q := NewQueue(0)
	q.Enqueue(Notification{Type: TypeAchievement, Title: "t", Priority: PriorityNormal})

	pending := q.Pending()
	if len(pending) != 1 {
		t.Fatalf("Len = %d, want 1", len(pending))
	}
	if pending[0].ID == "" {
		t.Error("expected generated ID")
	}
	if pending[0].Timestamp.IsZero() {
		t.Error("expected generated timestamp")
	}
}

func TestDelivery_TimestampOrder(t *testing.T) {
	q := NewQueue(time.Second)
	base := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	// Enqueue out of order.
	q.Enqueue(Notification{ID: "c", Timestamp: base.Add(2 * time.Second), Priority: PriorityHigh})
	q.Enqueue(Notification{ID: "a", Timestamp: base, Priority: PriorityLow})
	q.Enqueue(Notification{ID: "b", Timestamp: base.Add(time.Second), Priority: PriorityNormal})

	var got []string
	q.AddListener(func(n Notification) { got = append(got, n.ID) })
	for i := 0; i < 3; i++ {
		q.deliverNext()
	}

	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("delivery order = %v, want %v", got, want)
		}
	}
}

func TestDelivery_PriorityTieBreak(t *testing.T) {
	q := NewQueue(time.Second)
	ts := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	q.Enqueue(Notification{ID: "low", Timestamp: ts, Priority: PriorityLow})
	q.Enqueue(Notification{ID: "high", Timestamp: ts, Priority: PriorityHigh})
	q.Enqueue(Notification{ID: "normal", Timestamp: ts, Priority: PriorityNormal})

	var got []string
	q.AddListener(func(n Notification) { got = append(got, n.ID) })
	for i := 0; i < 3; i++ {
		q.deliverNext()
	}

	want := []string{"high", "normal", "low"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("delivery order = %v, want %v", got, want)
		}
	}
}

func TestDelivery_OnePerTick(t *testing.T) {
	q := NewQueue(time.Second)
	q.Enqueue(Notification{ID: "1"})
	q.Enqueue(Notification{ID: "2"})

	delivered := 0
	q.AddListener(func(Notification) { delivered++ })

	q.deliverNext()
	if delivered != 1 {
		t.Fatalf("delivered = %d after one tick, want 1", delivered)
	}
	if q.Len() != 1 {
		t.Fatalf("Len = %d after one tick, want 1", q.Len())
	}
}

func TestSuppression(t *testing.T) {
	q := NewQueue(time.Second)
	delivered := 0
	q.AddListener(func(Notification) { delivered++ })

	q.SetEnabled(false)
	for i := 0; i < 5; i++ {
		q.Enqueue(Notification{})
	}
	if q.Len() != 5 {
		t.Fatalf("Len = %d, want 5 (production is not blocked by disable)", q.Len())
	}

	// Ticks while disabled consume silently.
	for i := 0; i < 5; i++ {
		q.deliverNext()
	}
	if delivered != 0 {
		t.Fatalf("delivered = %d while disabled, want 0", delivered)
	}

	// Re-enabling does not replay what was consumed.
	q.SetEnabled(true)
	q.deliverNext()
	if delivered != 0 {
		t.Errorf("delivered = %d after re-enable, want 0", delivered)
	}
}

func TestDeliverNext_EmptyBuffer(t *testing.T) {
	q := NewQueue(time.Second)
	q.AddListener(func(Notification) { t.Error("unexpected delivery") })
	q.deliverNext()
}

func TestStartStop(t *testing.T) {
	q := NewQueue(10 * time.Millisecond)
	q.Enqueue(Notification{ID: "1"})

	ch := make(chan string, 1)
	q.AddListener(func(n Notification) { ch <- n.ID })

	q.Start(t.Context())
	defer q.Stop()

	select {
	case id := <-ch:
		if id != "1" {
			t.Errorf("delivered %q, want %q", id, "1")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for delivery")
	}

	q.Stop()
	q.Enqueue(Notification{ID: "2"})
	select {
	case id := <-ch:
		t.Errorf("unexpected delivery %q after Stop", id)
	case <-time.After(50 * time.Millisecond):
	}
}
