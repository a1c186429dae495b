package navgraph

import "strings"

// NodeID indexes Network.nodes. Ids are assigned in creation order and never reused.
type NodeID int32

// NoNode is returned by every query that finds nothing
const NoNode NodeID = -1

// LinkID indexes Network.links
type LinkID int32

// NoLink marks the absence of a link
const NoLink LinkID = -1

// Hull is an agent collision-size class. Each hull has its own node positions
// and its own per-link movement permissions.
type Hull uint8

const (
	HullHuman Hull = iota
	HullSmallCentered
	HullWideHuman
	HullTiny
	HullWideShort
	HullMedium
	HullTinyCentered
	HullLarge
	HullLargeCentered
	HullMediumTall
	NumHulls
)

var hullNames = [NumHulls]string{
	"human",
	"small_centered",
	"wide_human",
	"tiny",
	"wide_short",
	"medium",
	"tiny_centered",
	"large",
	"large_centered",
	"medium_tall",
}

func (h Hull) String() string {
	if h < NumHulls {
		return hullNames[h]
	}
	return "unknown"
}

// Valid reports whether h is one of the defined hulls
func (h Hull) Valid() bool {
	return h < NumHulls
}

// ParseHull returns the hull with the given name
func ParseHull(name string) (Hull, bool) {
	for i, n := range hullNames {
		if n == name {
			return Hull(i), true
		}
	}
	return HullHuman, false
}

// Capability is a bitmask of movement types an agent can perform or a link allows
type Capability uint8

const (
	CapMoveGround Capability = 1 << iota
	CapMoveJump
	CapMoveFly
	CapMoveClimb
	CapMoveSwim
	CapMoveCrawl

	CapMoveAll = CapMoveGround | CapMoveJump | CapMoveFly | CapMoveClimb | CapMoveSwim | CapMoveCrawl
)

var capNames = []struct {
	bit  Capability
	name string
}{
	{CapMoveGround, "ground"},
	{CapMoveJump, "jump"},
	{CapMoveFly, "fly"},
	{CapMoveClimb, "climb"},
	{CapMoveSwim, "swim"},
	{CapMoveCrawl, "crawl"},
}

// Has reports whether every bit of other is set in c
func (c Capability) Has(other Capability) bool {
	return c&other == other
}

// Intersects reports whether c and other share any bit
func (c Capability) Intersects(other Capability) bool {
	return c&other != 0
}

func (c Capability) String() string {
	if c == 0 {
		return "none"
	}
	var parts []string
	for _, cn := range capNames {
		if c&cn.bit != 0 {
			parts = append(parts, cn.name)
		}
	}
	return strings.Join(parts, "|")
}

// NodeType is the traversal medium a node represents
type NodeType uint8

const (
	NodeGround NodeType = iota
	NodeAir
	NodeClimb
	NodeWater
)

// RequiredCapability is the movement capability an agent needs to stand at a node of this type
func (t NodeType) RequiredCapability() Capability {
	switch t {
	case NodeAir:
		return CapMoveFly
	case NodeClimb:
		return CapMoveClimb
	case NodeWater:
		return CapMoveSwim
	default:
		return CapMoveGround
	}
}

func (t NodeType) String() string {
	switch t {
	case NodeGround:
		return "ground"
	case NodeAir:
		return "air"
	case NodeClimb:
		return "climb"
	case NodeWater:
		return "water"
	default:
		return "unknown"
	}
}

// Zone identifies a connected island of the graph
type Zone int32

const (
	// ZoneUnknown means zones have not been computed for the node
	ZoneUnknown Zone = 0
	// ZoneSolo nodes never connect to anything
	ZoneSolo Zone = 1
	// ZoneUniversal nodes connect to everything (editor and debug nodes)
	ZoneUniversal Zone = 3
	// ZoneFirst is the first id handed out by RebuildZones
	ZoneFirst Zone = 4
)

// LinkFlags holds link status bits
type LinkFlags uint8

const (
	// LinkStaleSuggested is set when an agent found the link blocked
	LinkStaleSuggested LinkFlags = 1 << iota
	// LinkOff administratively disables the link
	LinkOff
	LinkPreciseMovement
	LinkPreferAvoid
	LinkBreakableBlocked
)
