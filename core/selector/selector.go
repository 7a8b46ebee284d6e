// Package selector maps a discrete key to one of the variants held in a
// factory registry, applying an explicit policy to keys the registry does not
// know.
package selector

import (
	"fmt"
	"time"

	"github.com/kilianp07/patterns/core/events"
	"github.com/kilianp07/patterns/core/factory"
	"github.com/kilianp07/patterns/core/logger"
	"github.com/kilianp07/patterns/core/pluggable"
)

// Option configures a Selector.
type Option func(*options)

type options struct {
	fallback string
	log      logger.Logger
	pub      events.Publisher
	now      func() time.Time
}

// WithFallback routes unknown keys to the variant registered under key
// instead of failing.
func WithFallback(key string) Option {
	return func(o *options) { o.fallback = key }
}

// WithLogger sets the logger used for selection diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithPublisher sets where selection events are published.
func WithPublisher(p events.Publisher) Option {
	return func(o *options) { o.pub = p }
}

// WithClock overrides the time source used to stamp events.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// Selector resolves keys against a registry. It holds no per-call state and
// is safe for concurrent use.
type Selector[T any] struct {
	name     string
	reg      *factory.Registry[T]
	fallback string
	log      logger.Logger
	pub      events.Publisher
	now      func() time.Time
}

// New builds a selector named name over reg. Without WithFallback, unknown
// keys fail with an error matching pluggable.ErrUnknownKey. A fallback key
// that is not registered is rejected here.
func New[T any](name string, reg *factory.Registry[T], opts ...Option) (*Selector[T], error) {
	if reg == nil {
		return nil, fmt.Errorf("selector %s: nil registry", name)
	}
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.fallback != "" && !reg.Has(o.fallback) {
		return nil, fmt.Errorf("selector %s: fallback %q is not registered", name, o.fallback)
	}
	return &Selector[T]{
		name:     name,
		reg:      reg,
		fallback: o.fallback,
		log:      logger.OrNop(o.log),
		pub:      o.pub,
		now:      o.now,
	}, nil
}

// Name returns the selector name.
func (s *Selector[T]) Name() string { return s.name }

// Keys returns the accepted keys in lexical order. The fallback key is
// included since it may also be selected directly.
func (s *Selector[T]) Keys() []string { return s.reg.Names() }

// Fallback returns the null-object key and whether the selector uses one.
func (s *Selector[T]) Fallback() (string, bool) { return s.fallback, s.fallback != "" }

// Select returns a fresh variant for key.
func (s *Selector[T]) Select(key string) (T, error) {
	variant, fellBack := key, false
	if !s.reg.Has(key) {
		if s.fallback == "" {
			err := &pluggable.UnknownKeyError{Selector: s.name, Key: key, Known: s.reg.Names()}
			s.log.Warnf("%v", err)
			s.publish(key, "", false, err)
			var zero T
			return zero, err
		}
		variant, fellBack = s.fallback, true
		s.log.Debugf("selector %s: unknown key %q, using %q", s.name, key, s.fallback)
	}
	v, err := s.reg.Create(factory.ModuleConfig{Type: variant})
	if err != nil {
		err = fmt.Errorf("selector %s: create %s: %w", s.name, variant, err)
		s.log.Errorf("%v", err)
		s.publish(key, "", false, err)
		var zero T
		return zero, err
	}
	s.publish(key, variant, fellBack, nil)
	return v, nil
}

func (s *Selector[T]) publish(key, variant string, fallback bool, err error) {
	events.Publish(s.pub, events.Selection{
		ID:       events.NewID(),
		Selector: s.name,
		Key:      key,
		Variant:  variant,
		Fallback: fallback,
		Err:      err,
		Time:     s.now(),
	})
}
