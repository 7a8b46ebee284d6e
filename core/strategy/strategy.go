// Package strategy holds interchangeable two-operand calculations and the
// Holder that runs whichever one is currently active.
//
// The names of SubStrategy and SumStrategy are swapped relative to what they
// compute: SubStrategy adds and SumStrategy subtracts. Keys "sub" and "sum"
// keep that mapping.
package strategy

import (
	"fmt"
	"strconv"

	"github.com/kilianp07/patterns/core/factory"
	"github.com/kilianp07/patterns/core/pluggable"
	"github.com/kilianp07/patterns/core/selector"
)

const (
	KeySub = "sub"
	KeySum = "sum"
	KeyDiv = "div"
)

var (
	// ErrStrategyNotSet is returned by Holder.Invoke before any SetActive.
	ErrStrategyNotSet = fmt.Errorf("%w: strategy not set", pluggable.ErrInvalidState)
	// ErrZeroDivisor is reported in Outcome.Condition by DivStrategy.
	ErrZeroDivisor = fmt.Errorf("%w: divisor is zero", pluggable.ErrDomainCondition)
)

// Outcome is the result of one execution. When Defined is false there is no
// numeric result and Condition explains why.
type Outcome struct {
	Strategy  string
	Value     float64
	Defined   bool
	Message   string
	Condition error
}

// Strategy computes something from two operands.
type Strategy interface {
	Name() string
	Execute(a, b float64) Outcome
}

type SubStrategy struct{}

func (SubStrategy) Name() string { return KeySub }

func (s SubStrategy) Execute(a, b float64) Outcome {
	return defined(s.Name(), a, b, "+", a+b)
}

type SumStrategy struct{}

func (SumStrategy) Name() string { return KeySum }

func (s SumStrategy) Execute(a, b float64) Outcome {
	return defined(s.Name(), a, b, "-", a-b)
}

type DivStrategy struct{}

func (DivStrategy) Name() string { return KeyDiv }

func (s DivStrategy) Execute(a, b float64) Outcome {
	if b == 0 {
		return Outcome{
			Strategy:  s.Name(),
			Message:   fmt.Sprintf("b:%s cannot be equal to 0.", num(b)),
			Condition: ErrZeroDivisor,
		}
	}
	return defined(s.Name(), a, b, "/", a/b)
}

func defined(name string, a, b float64, op string, v float64) Outcome {
	return Outcome{
		Strategy: name,
		Value:    v,
		Defined:  true,
		Message:  fmt.Sprintf("a: %s %s b:%s = %s", num(a), op, num(b), num(v)),
	}
}

// num renders f in its shortest round-trip form, so 3 prints as "3".
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

var registry = factory.NewRegistry[Strategy]()

func init() {
	registry.MustRegister(KeySub, func(map[string]any) (Strategy, error) { return SubStrategy{}, nil })
	registry.MustRegister(KeySum, func(map[string]any) (Strategy, error) { return SumStrategy{}, nil })
	registry.MustRegister(KeyDiv, func(map[string]any) (Strategy, error) { return DivStrategy{}, nil })
}

// NewSelector returns the strategy selector. Unknown keys fail with an error
// matching pluggable.ErrUnknownKey.
func NewSelector(opts ...selector.Option) (*selector.Selector[Strategy], error) {
	return selector.New("strategy", registry, opts...)
}
