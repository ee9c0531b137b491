package event

import (
	"sync"

	"github.com/lixenwraith/glyph-rain/parameter"
)

// EventQueue is a fixed-capacity ring of simulation events
// Systems push during World.Update; the host loop drains after each tick
// When full the oldest entry is overwritten and counted in Dropped
type EventQueue struct {
	mu      sync.Mutex
	ring    [parameter.EventQueueSize]GameEvent
	head    uint64 // next read
	tail    uint64 // next write
	dropped uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends ev, evicting the oldest unread event on overflow
func (q *EventQueue) Push(ev GameEvent) {
	q.mu.Lock()
	q.ring[q.tail&parameter.EventBufferMask] = ev
	q.tail++
	if q.tail-q.head > parameter.EventQueueSize {
		q.head = q.tail - parameter.EventQueueSize
		q.dropped++
	}
	q.mu.Unlock()
}

// Consume returns pending events oldest first, nil when empty
func (q *EventQueue) Consume() []GameEvent {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := q.tail - q.head
	if n == 0 {
		return nil
	}
	out := make([]GameEvent, n)
	for i := range out {
		idx := (q.head + uint64(i)) & parameter.EventBufferMask
		out[i] = q.ring[idx]
		q.ring[idx] = GameEvent{}
	}
	q.head = q.tail
	return out
}

func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return int(q.tail - q.head)
}

// Dropped reports events lost to overflow since creation
func (q *EventQueue) Dropped() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}
