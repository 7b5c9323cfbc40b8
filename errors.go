package forms

import (
	"errors"
	"fmt"
)

// ErrNoSuchEntity reports that an entity handle does not name a live entity
// of the expected kind.
var ErrNoSuchEntity = errors.New("no such entity")

// InvariantError signals a violated wiring invariant: generated or
// hand-built form wiring asked for something the builder guarantees to
// exist, and it was missing. This is a programmer error, not a recoverable
// condition, and is deliberately distinct from validation errors.
type InvariantError struct {
	Op  string // operation that tripped the invariant, e.g. "field value"
	Key string // handle or logical name that failed to resolve
}

// Error implements the error interface.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated: %s: %q not found", e.Op, e.Key)
}

// Is makes InvariantError match ErrNoSuchEntity in errors.Is chains.
func (e *InvariantError) Is(target error) bool {
	return target == ErrNoSuchEntity
}
