// Package product is the factory method: each Creator decides which Product
// it builds, and Describe is the fixed operation run on top of it.
package product

import (
	"github.com/kilianp07/patterns/core/factory"
	"github.com/kilianp07/patterns/core/selector"
)

const (
	KindChair = "chair"
	KindTable = "table"
)

// Product can report its name.
type Product interface {
	Name() string
}

// Creator is the single variation point of the factory method.
type Creator interface {
	CreateProduct() Product
}

// Describe creates a product with c and reports its name.
func Describe(c Creator) string {
	return "Product is " + c.CreateProduct().Name()
}

type Chair struct{}

func (Chair) Name() string { return KindChair }

type Table struct{}

func (Table) Name() string { return KindTable }

type ChairCreator struct{}

func (ChairCreator) CreateProduct() Product { return Chair{} }

type TableCreator struct{}

func (TableCreator) CreateProduct() Product { return Table{} }

var registry = factory.NewRegistry[Creator]()

func init() {
	registry.MustRegister(KindChair, func(map[string]any) (Creator, error) { return ChairCreator{}, nil })
	registry.MustRegister(KindTable, func(map[string]any) (Creator, error) { return TableCreator{}, nil })
}

// NewSelector returns the creator selector. Unknown kinds fail with an error
// matching pluggable.ErrUnknownKey.
func NewSelector(opts ...selector.Option) (*selector.Selector[Creator], error) {
	return selector.New("product", registry, opts...)
}
