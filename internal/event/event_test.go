// internal/event/event_test.go
package event

import "testing"

// recorder запоминает полученные события; do позволяет вмешаться в
// диспетчер прямо из обработчика.
type recorder struct {
	got []Event
	do  func(e Event)
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
	if r.do != nil {
		r.do(e)
	}
}

func TestDispatchKeepsSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var order []int
	a := &recorder{do: func(Event) { order = append(order, 1) }}
	b := &recorder{do: func(Event) { order = append(order, 2) }}
	d.Subscribe(EnemyKilled, a)
	d.Subscribe(EnemyKilled, b)

	d.Dispatch(Event{Type: EnemyKilled})

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("delivery order = %v, want [1 2]", order)
	}
}

func TestDispatchOnlyReachesMatchingType(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(PlayerHit, r)

	d.Dispatch(Event{Type: EnemyHit})
	if len(r.got) != 0 {
		t.Fatal("listener received an event of another type")
	}
}

func TestUnsubscribeDuringDispatchFinishesCurrentRound(t *testing.T) {
	d := NewDispatcher()
	late := &recorder{}
	first := &recorder{}
	first.do = func(Event) { d.Unsubscribe(EnemyKilled, late) }
	d.Subscribe(EnemyKilled, first)
	d.Subscribe(EnemyKilled, late)

	// Отписка из обработчика: текущее событие еще доходит до всех,
	// следующее — уже нет.
	d.Dispatch(Event{Type: EnemyKilled})
	if len(late.got) != 1 {
		t.Fatalf("late listener got %d events during the round, want 1", len(late.got))
	}
	d.Dispatch(Event{Type: EnemyKilled})
	if len(late.got) != 1 {
		t.Fatal("unsubscribed listener kept receiving events")
	}
}

func TestNestedDispatchDeliversChainedEvent(t *testing.T) {
	d := NewDispatcher()
	hit := &recorder{}
	kill := &recorder{do: func(Event) {
		d.Dispatch(Event{Type: PlayerHit, Data: HitData{Damage: 30}})
	}}
	d.Subscribe(EnemyKilled, kill)
	d.Subscribe(PlayerHit, hit)

	d.Dispatch(Event{Type: EnemyKilled})

	if len(hit.got) != 1 {
		t.Fatalf("chained event delivered %d times, want 1", len(hit.got))
	}
	if data, ok := hit.got[0].Data.(HitData); !ok || data.Damage != 30 {
		t.Fatalf("chained payload = %#v, want HitData{Damage: 30}", hit.got[0].Data)
	}
}

func TestUnsubscribeUnknownListenerIsNoop(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Unsubscribe(EnemyKilled, r) // никогда не подписывался

	d.Subscribe(EnemyKilled, r)
	d.Dispatch(Event{Type: EnemyKilled})
	if len(r.got) != 1 {
		t.Fatal("subscription lost after unrelated unsubscribe")
	}
}
