package game

type EventType int

const (
	EventStateChanged EventType = iota
	EventGameStarted
	EventDotEaten
	EventRoundOver
)

func (t EventType) String() string {
	switch t {
	case EventStateChanged:
		return "state"
	case EventGameStarted:
		return "start"
	case EventDotEaten:
		return "eat"
	case EventRoundOver:
		return "round-over"
	}
	return "unknown"
}

// Eater identifies who ate a dot.
type Eater int

const (
	EaterPlayer Eater = iota
	EaterBot
)

func (e Eater) String() string {
	if e == EaterBot {
		return "bot"
	}
	return "player"
}

type Event struct {
	Type  EventType
	X, Y  float64
	State GameState // new state for EventStateChanged / EventRoundOver
	Eater Eater     // EventDotEaten only
	Score int       // eater's score after the event
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	for _, t := range []EventType{EventStateChanged, EventGameStarted, EventDotEaten, EventRoundOver} {
		eb.Subscribe(t, fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
