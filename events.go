package boxworld

import (
	"github.com/akmonengine/boxworld/actor"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	MOVE_COMMITTED EventType = iota
	MOVE_BLOCKED
	PENETRATION_RESOLVED
)

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// MoveCommittedEvent is raised when TryMove applied the requested delta
type MoveCommittedEvent struct {
	Mover actor.Collider
	From  mgl64.Vec3
	To    mgl64.Vec3
}

func (e MoveCommittedEvent) Type() EventType { return MOVE_COMMITTED }

// MoveBlockedEvent is raised when the proposed position overlaps Obstacle
type MoveBlockedEvent struct {
	Mover    actor.Collider
	Obstacle actor.Collider
	Delta    mgl64.Vec3
}

func (e MoveBlockedEvent) Type() EventType { return MOVE_BLOCKED }

// PenetrationResolvedEvent is raised when Mover was found inside Other and pushed out
type PenetrationResolvedEvent struct {
	Mover actor.Collider
	Other actor.Collider
	Push  mgl64.Vec3
}

func (e PenetrationResolvedEvent) Type() EventType { return PENETRATION_RESOLVED }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event
}

func NewEvents() Events {
	return Events{
		listeners: make(map[EventType][]EventListener),
		buffer:    make([]Event, 0, 16),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	if e.listeners == nil {
		e.listeners = make(map[EventType][]EventListener)
	}
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

func (e *Events) emit(event Event) {
	e.buffer = append(e.buffer, event)
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	e.buffer = e.buffer[:0]
}
