package glib

// EngineEventType identifies a kind of engine lifecycle event.
type EngineEventType uint8

const (
	EventBurst   EngineEventType = iota // a generation burst added particles
	EventExpired                        // dead particles were returned to the pool
	EventCleared                        // Clear released every active particle
)

func (t EngineEventType) String() string {
	switch t {
	case EventBurst:
		return "burst"
	case EventExpired:
		return "expired"
	case EventCleared:
		return "cleared"
	}
	return "unknown"
}

// EngineEvent describes one lifecycle change of an Engine.
type EngineEvent struct {
	Type   EngineEventType
	Engine string // Engine.Name
	Frame  int
	Count  int  // particles affected
	Active int  // active particles after the change
	At     Vec2 // generation position, for EventBurst
}

// EventSink receives engine events. See the ecs package for a Donburi-backed
// implementation.
type EventSink interface {
	EmitEvent(event EngineEvent)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(EngineEvent)

// EmitEvent implements EventSink.
func (f EventSinkFunc) EmitEvent(event EngineEvent) {
	f(event)
}
