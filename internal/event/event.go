// internal/event/event.go
package event

// EventType — тип игрового события.
type EventType string

// Event — одно событие симуляции. Data несет типизированную полезную
// нагрузку из types.go (KillData, HitData и т.д.) либо nil.
type Event struct {
	Type EventType
	Data interface{}
}

// Listener получает события, на которые подписан.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher — синхронная шина событий симуляции. Подписчики одного типа
// вызываются в порядке подписки. Обработчик может диспатчить новые события
// прямо из OnEvent: смерть взрывающегося врага порождает цепочку
// Explosion → PlayerHit → PlayerDied внутри одного Dispatch.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe добавляет подписчика на тип события.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe убирает подписчика. Отсутствующая подписка — no-op.
// Список копируется, а не сдвигается на месте: идущий прямо сейчас
// Dispatch держит старый срез и не должен увидеть сдвиг элементов.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			updated := make([]Listener, 0, len(listeners)-1)
			updated = append(updated, listeners[:i]...)
			updated = append(updated, listeners[i+1:]...)
			d.listeners[eventType] = updated
			return
		}
	}
}

// Dispatch рассылает событие всем подписчикам его типа. Обход идет по
// срезу, снятому до первого вызова: Subscribe/Unsubscribe из обработчика
// действуют со следующего события, а не ломают текущий обход.
func (d *Dispatcher) Dispatch(event Event) {
	current := d.listeners[event.Type]
	for _, listener := range current {
		listener.OnEvent(event)
	}
}
