// Package pluggable defines the error kinds shared by every selector and
// holder in the module.
//
// Two policies exist for keys a selector does not know: fail with an error
// matching ErrUnknownKey, or route to a designated null-object variant. Each
// selector picks one and documents it.
package pluggable

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidState reports an operation invoked before its required setup.
	ErrInvalidState = errors.New("invalid state")
	// ErrUnknownKey reports a key rejected by a selector using the fail policy.
	ErrUnknownKey = errors.New("unknown key")
	// ErrDomainCondition marks an input a variant cannot handle. It is
	// reported alongside a result and never returned as a call error.
	ErrDomainCondition = errors.New("domain condition")
)

// UnknownKeyError carries the rejected key and the keys the selector accepts.
type UnknownKeyError struct {
	Selector string
	Key      string
	Known    []string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("%s: unknown key %q (known: %s)", e.Selector, e.Key, strings.Join(e.Known, ", "))
}

// Is makes errors.Is(err, ErrUnknownKey) match.
func (e *UnknownKeyError) Is(target error) bool { return target == ErrUnknownKey }
