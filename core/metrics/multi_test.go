package metrics

import (
	"errors"
	"testing"

	"github.com/kilianp07/patterns/core/events"
)

type recordSink struct {
	count  int
	fail   bool
	closed bool
}

func (r *recordSink) RecordSelection(events.Selection) error {
	r.count++
	if r.fail {
		return errors.New("fail")
	}
	return nil
}

func (r *recordSink) RecordInvocation(events.Invocation) error {
	r.count++
	return nil
}

func (r *recordSink) Close() error {
	r.closed = true
	return nil
}

func TestMultiSink(t *testing.T) {
	s1 := &recordSink{}
	s2 := &recordSink{}
	m := NewMultiSink(s1, s2)
	if err := m.RecordSelection(events.Selection{}); err != nil {
		t.Fatalf("record selection: %v", err)
	}
	if err := m.RecordInvocation(events.Invocation{}); err != nil {
		t.Fatalf("record invocation: %v", err)
	}
	if s1.count != 2 || s2.count != 2 {
		t.Fatalf("records not forwarded")
	}
	if err := m.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if !s1.closed || !s2.closed {
		t.Fatalf("sinks not closed")
	}
}

func TestMultiSinkStopsOnError(t *testing.T) {
	s1 := &recordSink{fail: true}
	s2 := &recordSink{}
	m := NewMultiSink(s1, NopSink{}, s2)
	if err := m.RecordSelection(events.Selection{}); err == nil {
		t.Fatal("expected error")
	}
	if s2.count != 0 {
		t.Fatalf("expected later sinks skipped")
	}
}
