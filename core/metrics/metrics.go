package metrics

import (
	"errors"

	"github.com/kilianp07/patterns/core/events"
)

// Sink records selector and holder activity for observability purposes.
type Sink interface {
	RecordSelection(ev events.Selection) error
	RecordInvocation(ev events.Invocation) error
}

// Closer is implemented by sinks holding resources such as network clients.
type Closer interface {
	Close() error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordSelection(events.Selection) error   { return nil }
func (NopSink) RecordInvocation(events.Invocation) error { return nil }

// MultiSink fans out records to multiple sinks.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordSelection forwards the selection to every sink, returning the first
// error encountered.
func (m *MultiSink) RecordSelection(ev events.Selection) error {
	for _, s := range m.Sinks {
		if err := s.RecordSelection(ev); err != nil {
			return err
		}
	}
	return nil
}

// RecordInvocation forwards the invocation to every sink.
func (m *MultiSink) RecordInvocation(ev events.Invocation) error {
	for _, s := range m.Sinks {
		if err := s.RecordInvocation(ev); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every sink implementing Closer and joins their errors.
func (m *MultiSink) Close() error {
	var errs []error
	for _, s := range m.Sinks {
		if c, ok := s.(Closer); ok {
			errs = append(errs, c.Close())
		}
	}
	return errors.Join(errs...)
}
