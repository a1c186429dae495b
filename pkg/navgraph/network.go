package navgraph

import (
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-navgraph/pkg/geom"
	"github.com/dd0wney/cluso-navgraph/pkg/logging"
	"github.com/dd0wney/cluso-navgraph/pkg/metrics"
)

// Network is the movement graph of one level. It owns every node and link, the
// spatial index used by box queries and the nearest-node cache.
//
// Construction and queries are expected from a single owner. NearestNode may be
// called concurrently once the graph is no longer being mutated.
type Network struct {
	config Config

	// Arena storage; NodeID and LinkID index these slices
	nodes []Node
	links []Link

	index *spatialIndex
	cache *nearestCache

	tracer LineTracer
	clock  Clock

	instanceID      string
	logger          logging.Logger
	metricsRegistry *metrics.Registry

	stats counters
}

// NewNetwork creates a network with the default configuration
func NewNetwork() *Network {
	return newNetwork(DefaultConfig())
}

// NewNetworkWithConfig creates a network with custom tunables. Zero fields
// take their defaults.
func NewNetworkWithConfig(config Config) (*Network, error) {
	config = config.WithDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return newNetwork(config), nil
}

func newNetwork(config Config) *Network {
	id := uuid.NewString()
	return &Network{
		config:     config,
		nodes:      make([]Node, 0, config.MaxNodes),
		links:      make([]Link, 0, config.MaxNodes),
		index:      newSpatialIndex(),
		cache:      newNearestCache(config.CacheSize, config.CacheLife, config.CacheTolerance),
		clock:      time.Now,
		instanceID: id,
		logger:     logging.NewNopLogger(),
	}
}

// SetLogger installs a logger. Every entry carries the network instance id.
func (n *Network) SetLogger(logger logging.Logger) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	n.logger = logger.With(logging.Component("navgraph"), logging.Network(n.instanceID))
}

// SetMetrics sets the metrics registry for this network
func (n *Network) SetMetrics(registry *metrics.Registry) {
	n.metricsRegistry = registry
	n.updateGraphMetrics()
}

// SetTracer installs the visibility trace. A nil tracer never reports an obstruction.
func (n *Network) SetTracer(tracer LineTracer) {
	n.tracer = tracer
}

// SetClock replaces the time source used for cache, stale and lock expiry
func (n *Network) SetClock(clock Clock) {
	if clock == nil {
		clock = time.Now
	}
	n.clock = clock
}

// Config returns the effective configuration
func (n *Network) Config() Config {
	return n.config
}

// InstanceID returns the unique id of this network instance
func (n *Network) InstanceID() string {
	return n.instanceID
}

// NodeCount returns the number of nodes
func (n *Network) NodeCount() int {
	return len(n.nodes)
}

// LinkCount returns the number of links
func (n *Network) LinkCount() int {
	return len(n.links)
}

// Node returns the node with the given id, or nil
func (n *Network) Node(id NodeID) *Node {
	if !n.validNode(id) {
		return nil
	}
	return &n.nodes[id]
}

// Link returns the link with the given id, or nil
func (n *Network) Link(id LinkID) *Link {
	if !n.validLink(id) {
		return nil
	}
	return &n.links[id]
}

// LinkBetween returns the link joining a and b in either direction, or NoLink
func (n *Network) LinkBetween(a, b NodeID) LinkID {
	if !n.validNode(a) || !n.validNode(b) {
		return NoLink
	}
	for _, lid := range n.nodes[a].links {
		if n.links[lid].Other(a) == b {
			return lid
		}
	}
	return NoLink
}

// AddNode appends a node at the next id. When the arena is full the node is
// dropped and ErrNodeCapacity returned.
func (n *Network) AddNode(origin geom.Vec3, yaw float64) (NodeID, error) {
	if len(n.nodes) >= n.config.MaxNodes {
		err := newError("AddNode").node(NodeID(len(n.nodes))).cause(ErrNodeCapacity).build()
		n.reject(err, logging.Point("origin", origin), logging.Int("max_nodes", n.config.MaxNodes))
		return NoNode, err
	}

	id := NodeID(len(n.nodes))
	n.nodes = append(n.nodes, newNode(id, origin, yaw, n.config.MaxLinksPerNode))
	n.index.insert(id, origin)
	n.updateGraphMetrics()

	n.logger.Debug("node added", logging.NodeID(int(id)), logging.Point("origin", origin))
	return id, nil
}

// CreateLink joins src and dst. Self links, unknown ids, an existing link
// between the pair and full link sets are rejected without changing state.
func (n *Network) CreateLink(src, dst NodeID) (LinkID, error) {
	if err := n.checkLink(src, dst); err != nil {
		n.reject(err, logging.Int("src", int(src)), logging.Int("dst", int(dst)))
		return NoLink, err
	}

	id := LinkID(len(n.links))
	n.links = append(n.links, newLink(id, src, dst))
	n.nodes[src].links = append(n.nodes[src].links, id)
	n.nodes[dst].links = append(n.nodes[dst].links, id)
	n.updateGraphMetrics()

	n.logger.Debug("link created", logging.LinkID(int(id)), logging.Int("src", int(src)), logging.Int("dst", int(dst)))
	return id, nil
}

func (n *Network) checkLink(src, dst NodeID) error {
	if src == dst {
		return newError("CreateLink").node(src).cause(ErrSelfLink).build()
	}
	if !n.validNode(src) {
		return newError("CreateLink").node(src).cause(ErrUnknownNode).build()
	}
	if !n.validNode(dst) {
		return newError("CreateLink").node(dst).cause(ErrUnknownNode).build()
	}
	if existing := n.LinkBetween(src, dst); existing != NoLink {
		return newError("CreateLink").link(existing).cause(ErrDuplicateLink).build()
	}
	for _, id := range [2]NodeID{src, dst} {
		if !n.nodes[id].hasLinkCapacity(n.config.MaxLinksPerNode) {
			return newError("CreateLink").node(id).cause(ErrLinkCapacity).build()
		}
	}
	return nil
}

// reject logs and counts a refused construction call
func (n *Network) reject(err error, fields ...logging.Field) {
	n.stats.rejections.Add(1)
	if n.metricsRegistry != nil {
		n.metricsRegistry.RecordRejection(rejectionReason(err))
	}
	n.logger.Warn("construction rejected", append(fields, logging.Error(err))...)
}

func (n *Network) validNode(id NodeID) bool {
	return id >= 0 && int(id) < len(n.nodes)
}

func (n *Network) validLink(id LinkID) bool {
	return id >= 0 && int(id) < len(n.links)
}

// trace runs the visibility trace and reports an obstruction
func (n *Network) trace(from, to geom.Vec3) bool {
	if n.tracer == nil {
		return false
	}
	n.stats.traces.Add(1)
	obstructed := n.tracer(from, to)
	if n.metricsRegistry != nil {
		n.metricsRegistry.RecordTrace(obstructed)
	}
	return obstructed
}
