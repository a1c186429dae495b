package navgraph

import "time"

// Link joins two nodes. It is stored once in the Network and referenced by id
// from both endpoints' link sets.
type Link struct {
	id       LinkID
	src, dst NodeID
	accepted [NumHulls]Capability
	flags    LinkFlags

	staleUntil  time.Time
	dangerCount int
}

func newLink(id LinkID, src, dst NodeID) Link {
	l := Link{id: id, src: src, dst: dst}
	for h := range l.accepted {
		l.accepted[h] = CapMoveAll
	}
	return l
}

func (l *Link) ID() LinkID       { return l.id }
func (l *Link) Source() NodeID   { return l.src }
func (l *Link) Dest() NodeID     { return l.dst }
func (l *Link) Flags() LinkFlags { return l.flags }
func (l *Link) DangerCount() int { return l.dangerCount }

// HasFlag reports whether any bit of f is set
func (l *Link) HasFlag(f LinkFlags) bool {
	return l.flags&f != 0
}

// Other returns the endpoint opposite from, or NoNode if from is not an endpoint
func (l *Link) Other(from NodeID) NodeID {
	switch from {
	case l.src:
		return l.dst
	case l.dst:
		return l.src
	default:
		return NoNode
	}
}

// Accepted returns the movement types allowed for hull h
func (l *Link) Accepted(h Hull) Capability {
	if !h.Valid() {
		return 0
	}
	return l.accepted[h]
}

// Accepts reports whether an agent of hull h moving with caps may use the link
func (l *Link) Accepts(h Hull, caps Capability) bool {
	if l.flags&LinkOff != 0 {
		return false
	}
	return l.Accepted(h).Intersects(caps)
}

// IsStale reports whether the stale-suggested flag is set and not yet forgiven at now
func (l *Link) IsStale(now time.Time) bool {
	return l.flags&LinkStaleSuggested != 0 && now.Before(l.staleUntil)
}
