// Package furniture is the simplified factory: a single selector turns an
// order kind into a piece of furniture.
//
// Unknown kinds are not an error. They resolve to None, whose name is "none".
package furniture

import (
	"github.com/kilianp07/patterns/core/factory"
	"github.com/kilianp07/patterns/core/selector"
)

// Order kinds understood by the selector.
const (
	KindSofa     = "sofa"
	KindTabouret = "tabouret"
	KindNone     = "none"
)

// Furniture can report its name.
type Furniture interface {
	ShowName() string
}

type Sofa struct{}

func (Sofa) ShowName() string { return KindSofa }

type Tabouret struct{}

func (Tabouret) ShowName() string { return KindTabouret }

// None is the null object returned for unknown kinds.
type None struct{}

func (None) ShowName() string { return KindNone }

var registry = factory.NewRegistry[Furniture]()

func init() {
	registry.MustRegister(KindSofa, func(map[string]any) (Furniture, error) { return Sofa{}, nil })
	registry.MustRegister(KindTabouret, func(map[string]any) (Furniture, error) { return Tabouret{}, nil })
	registry.MustRegister(KindNone, func(map[string]any) (Furniture, error) { return None{}, nil })
}

// NewSelector returns the furniture selector. It always falls back to None.
func NewSelector(opts ...selector.Option) (*selector.Selector[Furniture], error) {
	opts = append(opts, selector.WithFallback(KindNone))
	return selector.New("furniture", registry, opts...)
}
