package metrics

import (
	"context"

	"github.com/kilianp07/patterns/core/events"
	coremetrics "github.com/kilianp07/patterns/core/metrics"
	"github.com/kilianp07/patterns/infra/logger"
	"github.com/kilianp07/patterns/internal/eventbus"
)

// StartEventCollector subscribes to the event bus and records every event on
// sink. It stops when the context is canceled or the bus is closed, draining
// events already buffered in the latter case. The returned channel is closed
// once the collector has stopped.
func StartEventCollector(ctx context.Context, bus *eventbus.TypedBus[events.Event], sink coremetrics.Sink, log logger.Logger) <-chan struct{} {
	done := make(chan struct{})
	if bus == nil || sink == nil {
		close(done)
		return done
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	sub := bus.Subscribe()
	go func() {
		defer close(done)
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				if err := record(sink, ev); err != nil {
					log.Errorf("record %T: %v", ev, err)
				}
			}
		}
	}()
	return done
}

func record(sink coremetrics.Sink, ev events.Event) error {
	switch e := ev.(type) {
	case events.Selection:
		return sink.RecordSelection(e)
	case events.Invocation:
		return sink.RecordInvocation(e)
	}
	return nil
}
