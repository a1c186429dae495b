package navgraph

import (
	"time"

	"github.com/dd0wney/cluso-navgraph/pkg/geom"
)

// LineTracer reports whether the segment from..to is obstructed
type LineTracer func(from, to geom.Vec3) bool

// Clock returns the current time
type Clock func() time.Time

// BoxFilter selects and ranks candidates of a box query
type BoxFilter interface {
	IsValid(node *Node) bool
	DistanceSq(node *Node) float64
}

// AcceptanceFilter is consulted for each candidate of a nearest-node scan.
// When IsValid rejects a node, ShouldContinue decides whether the scan moves on
// to the next candidate or stops with no result.
type AcceptanceFilter interface {
	IsValid(node *Node) bool
	ShouldContinue() bool
}

// Validator accepts or rejects an in-band node during FindNodeInBand
type Validator interface {
	Validate(node *Node) bool
}

// ValidatorFunc adapts a function to Validator
type ValidatorFunc func(node *Node) bool

func (f ValidatorFunc) Validate(node *Node) bool { return f(node) }

// Agent describes the querying actor
type Agent interface {
	Hull() Hull
	Capabilities() Capability
	// CanFitAt reports whether the agent physically fits at the node
	CanFitAt(node *Node) bool
	// IsUnusable reports whether the agent has been told to avoid the node
	IsUnusable(id NodeID) bool
}

type acceptAll struct{}

func (acceptAll) IsValid(*Node) bool   { return true }
func (acceptAll) ShouldContinue() bool { return true }

// AcceptAll accepts every node
var AcceptAll AcceptanceFilter = acceptAll{}

// AcceptFunc is an AcceptanceFilter that keeps scanning after each rejection
type AcceptFunc func(node *Node) bool

func (f AcceptFunc) IsValid(node *Node) bool { return f(node) }
func (f AcceptFunc) ShouldContinue() bool    { return true }

// FirstOnly wraps an AcceptanceFilter so the scan stops at the first rejection
func FirstOnly(f func(node *Node) bool) AcceptanceFilter {
	return firstOnly(f)
}

type firstOnly func(node *Node) bool

func (f firstOnly) IsValid(node *Node) bool { return f(node) }
func (f firstOnly) ShouldContinue() bool    { return false }

// DistanceFilter ranks nodes by squared distance from a point. A nil Accept admits every node.
type DistanceFilter struct {
	Point  geom.Vec3
	Accept func(node *Node) bool
}

func (f DistanceFilter) IsValid(node *Node) bool {
	return f.Accept == nil || f.Accept(node)
}

func (f DistanceFilter) DistanceSq(node *Node) float64 {
	return geom.DistSq(node.Origin(), f.Point)
}

// BasicAgent is a plain Agent value for callers that only need hull and capabilities
type BasicAgent struct {
	AgentHull Hull
	Caps      Capability
	Unusable  map[NodeID]bool
}

func (a BasicAgent) Hull() Hull                { return a.AgentHull }
func (a BasicAgent) Capabilities() Capability  { return a.Caps }
func (a BasicAgent) CanFitAt(*Node) bool       { return true }
func (a BasicAgent) IsUnusable(id NodeID) bool { return a.Unusable[id] }
