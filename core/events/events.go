package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is implemented by every event published on the bus.
type Event interface {
	EventID() string
}

// Publisher accepts events. eventbus.TypedBus[Event] implements it.
type Publisher interface {
	Publish(Event)
}

// Publish forwards ev to p when p is not nil.
func Publish(p Publisher, ev Event) {
	if p != nil {
		p.Publish(ev)
	}
}

// NewID returns a fresh event identifier.
func NewID() string { return uuid.NewString() }

// Selection is emitted each time a selector resolves a key.
// Variant is empty when the key was rejected, in which case Err is set.
type Selection struct {
	ID       string
	Selector string
	Key      string
	Variant  string
	Fallback bool
	Err      error
	Time     time.Time
}

func (e Selection) EventID() string { return e.ID }

// Invocation is emitted each time the strategy holder is invoked.
// Err is set when no strategy was active; Condition when the strategy
// reported a domain condition instead of a value.
type Invocation struct {
	ID        string
	Strategy  string
	A, B      float64
	Value     float64
	Defined   bool
	Condition error
	Err       error
	Time      time.Time
}

func (e Invocation) EventID() string { return e.ID }

// Outcome labels the invocation for metrics: "unset", "condition" or "ok".
func (e Invocation) Outcome() string {
	switch {
	case e.Err != nil:
		return "unset"
	case e.Condition != nil:
		return "condition"
	default:
		return "ok"
	}
}
