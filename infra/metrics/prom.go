package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kilianp07/patterns/core/events"
)

// PromSink records selections and invocations in Prometheus metrics.
type PromSink struct {
	selections      *prometheus.CounterVec
	selectionErrors *prometheus.CounterVec
	invocations     *prometheus.CounterVec
}

// NewPromSink registers the metrics on the default Prometheus registerer.
// The /metrics endpoint is served separately by StartPromServer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer. Collectors
// already registered by an earlier sink are reused.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	selections, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pattern_selections_total",
		Help: "Total number of keys resolved by a selector",
	}, []string{"selector", "key", "variant", "fallback"}))
	if err != nil {
		return nil, err
	}
	selectionErrors, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pattern_selection_errors_total",
		Help: "Total number of keys rejected by a selector",
	}, []string{"selector"}))
	if err != nil {
		return nil, err
	}
	invocations, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "strategy_invocations_total",
		Help: "Total number of strategy holder invocations by outcome",
	}, []string{"strategy", "outcome"}))
	if err != nil {
		return nil, err
	}
	return &PromSink{selections: selections, selectionErrors: selectionErrors, invocations: invocations}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordSelection increments the selection or rejection counter.
func (s *PromSink) RecordSelection(ev events.Selection) error {
	if ev.Err != nil {
		s.selectionErrors.WithLabelValues(ev.Selector).Inc()
		return nil
	}
	s.selections.WithLabelValues(ev.Selector, ev.Key, ev.Variant, strconv.FormatBool(ev.Fallback)).Inc()
	return nil
}

// RecordInvocation increments the invocation counter for the outcome.
func (s *PromSink) RecordInvocation(ev events.Invocation) error {
	s.invocations.WithLabelValues(ev.Strategy, ev.Outcome()).Inc()
	return nil
}
