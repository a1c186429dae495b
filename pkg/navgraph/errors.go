package navgraph

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrNodeCapacity  = errors.New("node capacity reached")
	ErrLinkCapacity  = errors.New("link capacity reached")
	ErrSelfLink      = errors.New("link endpoints must differ")
	ErrUnknownNode   = errors.New("unknown node")
	ErrUnknownLink   = errors.New("unknown link")
	ErrDuplicateLink = errors.New("link already exists")
	ErrInvalidHull   = errors.New("invalid hull")
)

// NavError provides structured error information for network construction.
type NavError struct {
	Op     string // Operation that failed (e.g., "AddNode", "CreateLink")
	Entity string // Entity type ("node", "link")
	ID     int    // Entity ID, -1 if not applicable
	Cause  error  // Underlying error
}

// Error implements the error interface.
func (e *NavError) Error() string {
	if e.Entity == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Cause)
	}
	if e.ID >= 0 {
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Entity, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *NavError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error's cause.
func (e *NavError) Is(target error) bool {
	if target == nil {
		return false
	}
	return errors.Is(e.Cause, target)
}

// errorBuilder builds NavErrors fluently.
type errorBuilder struct {
	err NavError
}

func newError(op string) *errorBuilder {
	return &errorBuilder{err: NavError{Op: op, ID: -1}}
}

func (b *errorBuilder) node(id NodeID) *errorBuilder {
	b.err.Entity = "node"
	b.err.ID = int(id)
	return b
}

func (b *errorBuilder) link(id LinkID) *errorBuilder {
	b.err.Entity = "link"
	b.err.ID = int(id)
	return b
}

func (b *errorBuilder) cause(err error) *errorBuilder {
	b.err.Cause = err
	return b
}

func (b *errorBuilder) build() error {
	e := b.err
	return &e
}

// IsCapacity reports whether err is a node or link capacity error.
func IsCapacity(err error) bool {
	return errors.Is(err, ErrNodeCapacity) || errors.Is(err, ErrLinkCapacity)
}

// IsUnknown reports whether err refers to a node or link that does not exist.
func IsUnknown(err error) bool {
	return errors.Is(err, ErrUnknownNode) || errors.Is(err, ErrUnknownLink)
}

// rejectionReason maps a construction error to a metrics label.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrNodeCapacity):
		return "node_capacity"
	case errors.Is(err, ErrLinkCapacity):
		return "link_capacity"
	case errors.Is(err, ErrSelfLink):
		return "self_link"
	case errors.Is(err, ErrDuplicateLink):
		return "duplicate_link"
	case errors.Is(err, ErrUnknownNode), errors.Is(err, ErrUnknownLink):
		return "unknown_id"
	case errors.Is(err, ErrInvalidHull):
		return "invalid_hull"
	default:
		return "other"
	}
}
