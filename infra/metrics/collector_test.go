package metrics

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/patterns/core/events"
	"github.com/kilianp07/patterns/internal/eventbus"
)

type countingSink struct {
	mu          sync.Mutex
	selections  int
	invocations int
}

func (c *countingSink) RecordSelection(events.Selection) error {
	c.mu.Lock()
	c.selections++
	c.mu.Unlock()
	return nil
}

func (c *countingSink) RecordInvocation(events.Invocation) error {
	c.mu.Lock()
	c.invocations++
	c.mu.Unlock()
	return nil
}

func TestEventCollectorDrainsOnClose(t *testing.T) {
	bus := eventbus.NewTypedWithBuffer[events.Event](16)
	sink := &countingSink{}
	done := StartEventCollector(context.Background(), bus, sink, nil)

	bus.Publish(events.Selection{Selector: "gui", Key: "linux", Variant: "linux"})
	bus.Publish(events.Selection{Selector: "furniture", Key: "lamp", Variant: "none", Fallback: true})
	bus.Publish(events.Invocation{Strategy: "sub", Defined: true, Value: 8})
	bus.Close()
	<-done

	sink.mu.Lock()
	defer sink.mu.Unlock()
	assert.Equal(t, 2, sink.selections)
	assert.Equal(t, 1, sink.invocations)
}

func TestEventCollectorStopsOnCancel(t *testing.T) {
	bus := eventbus.NewTyped[events.Event]()
	ctx, cancel := context.WithCancel(context.Background())
	done := StartEventCollector(ctx, bus, &countingSink{}, nil)
	cancel()
	<-done
	bus.Close()
}

func TestEventCollectorNilInputs(t *testing.T) {
	done := StartEventCollector(context.Background(), nil, nil, nil)
	_, open := <-done
	require.False(t, open)
}
