// Package app wires the selectors, the strategy holder and the ambient stack
// (logging, events, metrics) into one service used by the CLI.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/kilianp07/patterns/config"
	"github.com/kilianp07/patterns/core/events"
	"github.com/kilianp07/patterns/core/furniture"
	"github.com/kilianp07/patterns/core/gui"
	coremetrics "github.com/kilianp07/patterns/core/metrics"
	"github.com/kilianp07/patterns/core/product"
	"github.com/kilianp07/patterns/core/selector"
	"github.com/kilianp07/patterns/core/strategy"
	"github.com/kilianp07/patterns/infra/logger"
	"github.com/kilianp07/patterns/infra/metrics"
	"github.com/kilianp07/patterns/internal/eventbus"
)

// Service owns one selector per pattern and a single strategy holder. Output
// of every operation is written to the writer given to New.
type Service struct {
	furniture  *selector.Selector[furniture.Furniture]
	gui        *selector.Selector[gui.Factory]
	products   *selector.Selector[product.Creator]
	strategies *selector.Selector[strategy.Strategy]
	holder     *strategy.Holder

	out       io.Writer
	log       logger.Logger
	bus       *eventbus.TypedBus[events.Event]
	sink      coremetrics.Sink
	cancel    context.CancelFunc
	collected <-chan struct{}
}

// New creates a Service from the configuration. A nil out writes to stdout.
func New(cfg *config.Config, out io.Writer) (*Service, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if out == nil {
		out = os.Stdout
	}
	sink, err := coremetrics.NewSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	bus := eventbus.NewTypedWithBuffer[events.Event](cfg.Events.Buffer)
	svc := &Service{
		out:  out,
		log:  logger.New("service"),
		bus:  bus,
		sink: sink,
	}
	opts := func(component string) []selector.Option {
		return []selector.Option{
			selector.WithLogger(logger.New(component)),
			selector.WithPublisher(bus),
		}
	}
	if svc.furniture, err = furniture.NewSelector(opts("furniture")...); err != nil {
		return nil, err
	}
	if svc.gui, err = gui.NewSelector(opts("gui")...); err != nil {
		return nil, err
	}
	if svc.products, err = product.NewSelector(opts("product")...); err != nil {
		return nil, err
	}
	if svc.strategies, err = strategy.NewSelector(opts("strategy")...); err != nil {
		return nil, err
	}
	svc.holder = strategy.NewHolder(out,
		strategy.WithLogger(logger.New("strategy-holder")),
		strategy.WithPublisher(bus),
	)

	ctx, cancel := context.WithCancel(context.Background())
	svc.cancel = cancel
	svc.collected = metrics.StartEventCollector(ctx, bus, sink, logger.New("metrics-collector"))
	return svc, nil
}

// Furniture writes the name of the furniture selected for kind. Unknown kinds
// print "none".
func (s *Service) Furniture(kind string) error {
	f, err := s.furniture.Select(kind)
	if err != nil {
		return err
	}
	return s.println(f.ShowName())
}

// GUI builds the widget family for platform, pushes its button and checks
// its checkbox.
func (s *Service) GUI(platform string) error {
	f, err := s.gui.Select(platform)
	if err != nil {
		return err
	}
	for _, msg := range gui.Interact(f) {
		if err := s.println(msg); err != nil {
			return err
		}
	}
	return nil
}

// Product writes the description produced by the creator for kind.
func (s *Service) Product(kind string) error {
	c, err := s.products.Select(kind)
	if err != nil {
		return err
	}
	return s.println(product.Describe(c))
}

// Use makes the strategy registered under key the active one.
func (s *Service) Use(key string) error {
	st, err := s.strategies.Select(key)
	if err != nil {
		return err
	}
	s.holder.SetActive(st)
	return nil
}

// Calc invokes the active strategy. It fails with strategy.ErrStrategyNotSet
// before any successful Use.
func (s *Service) Calc(a, b float64) (strategy.Outcome, error) {
	return s.holder.Invoke(a, b)
}

// Keys lists the accepted keys of every selector, by selector name.
func (s *Service) Keys() map[string][]string {
	return map[string][]string{
		s.furniture.Name():  s.furniture.Keys(),
		s.gui.Name():        s.gui.Keys(),
		s.products.Name():   s.products.Keys(),
		s.strategies.Name(): s.strategies.Keys(),
	}
}

// PrintKeys writes one line per selector with its keys and fallback.
func (s *Service) PrintKeys() error {
	keys := s.Keys()
	names := make([]string, 0, len(keys))
	for n := range keys {
		names = append(names, n)
	}
	sort.Strings(names)
	fallbacks := map[string]string{}
	if fb, ok := s.furniture.Fallback(); ok {
		fallbacks[s.furniture.Name()] = fb
	}
	for _, n := range names {
		line := fmt.Sprintf("%s: %v", n, keys[n])
		if fb, ok := fallbacks[n]; ok {
			line += " (unknown -> " + fb + ")"
		}
		if err := s.println(line); err != nil {
			return err
		}
	}
	return nil
}

// Close stops event collection after recording pending events and releases
// the metrics sink.
func (s *Service) Close() error {
	s.bus.Close()
	<-s.collected
	s.cancel()
	if c, ok := s.sink.(coremetrics.Closer); ok {
		return c.Close()
	}
	return nil
}

func (s *Service) println(msg string) error {
	if _, err := fmt.Fprintln(s.out, msg); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// IsUserError reports whether err comes from bad input rather than from the
// environment, so an interactive session can report it and continue.
func IsUserError(err error) bool {
	return errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		isPatternError(err)
}
