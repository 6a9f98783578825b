package ecs

import "testing"

type testEvent struct{}

func (testEvent) Kind() EventKind { return EventDPRChanged }

func TestEmitRegistrationOrder(t *testing.T) {
	em := NewEventManager()

	var order []int
	for i := 1; i <= 3; i++ {
		n := i
		em.Subscribe(EventDPRChanged, func(Event) { order = append(order, n) })
	}

	em.Emit(testEvent{})

	want := []int{1, 2, 3}
	if len(order) != len(want) {
		t.Fatalf("got %d calls, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %d, want %d", i, order[i], want[i])
		}
	}
}

func TestUnsubscribe(t *testing.T) {
	tests := []struct {
		name      string
		remove    int
		wantCalls []string
	}{
		{name: "first", remove: 0, wantCalls: []string{"b", "c"}},
		{name: "middle", remove: 1, wantCalls: []string{"a", "c"}},
		{name: "last", remove: 2, wantCalls: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := NewEventManager()
			var calls []string
			var ids []SubscriptionID
			for _, name := range []string{"a", "b", "c"} {
				label := name
				ids = append(ids, em.Subscribe(EventDPRChanged, func(Event) { calls = append(calls, label) }))
			}

			if !em.Unsubscribe(ids[tt.remove]) {
				t.Fatal("Unsubscribe() = false, want true")
			}
			em.Emit(testEvent{})

			if len(calls) != len(tt.wantCalls) {
				t.Fatalf("calls = %v, want %v", calls, tt.wantCalls)
			}
			for i := range calls {
				if calls[i] != tt.wantCalls[i] {
					t.Errorf("calls = %v, want %v", calls, tt.wantCalls)
					break
				}
			}
		})
	}
}

func TestUnsubscribeUnknown(t *testing.T) {
	em := NewEventManager()
	if em.Unsubscribe(42) {
		t.Error("Unsubscribe() of unknown id should return false")
	}
}

func TestUnsubscribeLastRemovesKind(t *testing.T) {
	em := NewEventManager()
	id := em.Subscribe(EventDPRChanged, func(Event) {})
	em.Unsubscribe(id)

	if got := em.Count(EventDPRChanged); got != 0 {
		t.Errorf("Count() = %d, want 0", got)
	}
	// Emitting with no subscribers must be harmless
	em.Emit(testEvent{})
}

func TestUnsubscribeDuringEmit(t *testing.T) {
	em := NewEventManager()
	calls := 0
	var second SubscriptionID
	em.Subscribe(EventDPRChanged, func(Event) {
		calls++
		em.Unsubscribe(second)
	})
	second = em.Subscribe(EventDPRChanged, func(Event) { calls++ })

	em.Emit(testEvent{})
	if calls != 2 {
		t.Errorf("first emit calls = %d, want 2", calls)
	}

	em.Emit(testEvent{})
	if calls != 3 {
		t.Errorf("second emit calls = %d, want 3", calls)
	}
}

func TestEventKindString(t *testing.T) {
	if got := EventDPRChanged.String(); got != "dpr changed" {
		t.Errorf("String() = %q", got)
	}
	if got := EventKind(99).String(); got != "unknown" {
		t.Errorf("String() = %q", got)
	}
}
