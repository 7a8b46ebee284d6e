package strategy

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/kilianp07/patterns/core/events"
	"github.com/kilianp07/patterns/core/logger"
)

// HolderOption configures a Holder.
type HolderOption func(*Holder)

// WithLogger sets the holder logger.
func WithLogger(l logger.Logger) HolderOption {
	return func(h *Holder) { h.log = logger.OrNop(l) }
}

// WithPublisher sets where invocation events are published.
func WithPublisher(p events.Publisher) HolderOption {
	return func(h *Holder) { h.pub = p }
}

// Holder keeps a reference to the active strategy and forwards calls to it
// without knowing which one it is. A new Holder has no active strategy.
type Holder struct {
	mu     sync.RWMutex
	active Strategy
	out    io.Writer
	log    logger.Logger
	pub    events.Publisher
}

// NewHolder returns an empty holder writing outcome messages to out.
// A nil out discards them.
func NewHolder(out io.Writer, opts ...HolderOption) *Holder {
	if out == nil {
		out = io.Discard
	}
	h := &Holder{out: out, log: logger.Nop{}}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// SetActive replaces the active strategy. Passing nil clears it.
func (h *Holder) SetActive(s Strategy) {
	h.mu.Lock()
	h.active = s
	h.mu.Unlock()
	if s != nil {
		h.log.Debugf("active strategy set to %s", s.Name())
	}
}

// Active returns the active strategy, if any.
func (h *Holder) Active() (Strategy, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.active, h.active != nil
}

// Invoke runs the active strategy on a and b and writes its message to the
// output. It fails with ErrStrategyNotSet when no strategy is active. A domain
// condition such as a zero divisor is not an error: it is written like any
// other message and reported in Outcome.Condition.
func (h *Holder) Invoke(a, b float64) (Outcome, error) {
	s, ok := h.Active()
	if !ok {
		h.log.Warnf("invoke(%v, %v): %v", a, b, ErrStrategyNotSet)
		h.publish("", a, b, Outcome{}, ErrStrategyNotSet)
		return Outcome{}, ErrStrategyNotSet
	}
	res := s.Execute(a, b)
	if res.Condition != nil {
		h.log.Warnf("%s(%v, %v): %v", s.Name(), a, b, res.Condition)
	}
	h.publish(s.Name(), a, b, res, nil)
	if _, err := fmt.Fprintln(h.out, res.Message); err != nil {
		return res, fmt.Errorf("write outcome: %w", err)
	}
	return res, nil
}

func (h *Holder) publish(name string, a, b float64, res Outcome, err error) {
	events.Publish(h.pub, events.Invocation{
		ID:        events.NewID(),
		Strategy:  name,
		A:         a,
		B:         b,
		Value:     res.Value,
		Defined:   res.Defined,
		Condition: res.Condition,
		Err:       err,
		Time:      time.Now(),
	})
}
