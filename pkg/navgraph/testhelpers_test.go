package navgraph

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/dd0wney/cluso-navgraph/pkg/geom"
)

// fakeClock is a manually advanced time source
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// countingTracer records trace calls and obstructs segments ending at blocked points
type countingTracer struct {
	calls   int
	blocked map[geom.Vec3]bool
}

func (c *countingTracer) trace(from, to geom.Vec3) bool {
	c.calls++
	return c.blocked[to]
}

// fitAgent is an Agent whose fit test is a function
type fitAgent struct {
	BasicAgent
	fits func(node *Node) bool
}

func (a fitAgent) CanFitAt(node *Node) bool { return a.fits(node) }

func newTestNetwork(t *testing.T) (*Network, *fakeClock) {
	t.Helper()
	n := NewNetwork()
	clock := newFakeClock()
	n.SetClock(clock.Now)
	return n, clock
}

func mustAddNode(t *testing.T, n *Network, x, y, z float64) NodeID {
	t.Helper()
	id, err := n.AddNode(geom.V(x, y, z), 0)
	if err != nil {
		t.Fatalf("AddNode(%v, %v, %v) failed: %v", x, y, z, err)
	}
	return id
}

func mustLink(t *testing.T, n *Network, a, b NodeID) LinkID {
	t.Helper()
	id, err := n.CreateLink(a, b)
	if err != nil {
		t.Fatalf("CreateLink(%d, %d) failed: %v", a, b, err)
	}
	return id
}

// buildABC returns the three node line A(0,0,0) B(100,0,0) C(300,0,0) linked A-B and B-C
func buildABC(t *testing.T) (*Network, NodeID, NodeID, NodeID) {
	t.Helper()
	n, _ := newTestNetwork(t)
	a := mustAddNode(t, n, 0, 0, 0)
	b := mustAddNode(t, n, 100, 0, 0)
	c := mustAddNode(t, n, 300, 0, 0)
	mustLink(t, n, a, b)
	mustLink(t, n, b, c)
	n.RebuildZones()
	return n, a, b, c
}

// randomNetwork builds count nodes on an integer grid with random links.
// Used by property tests; errors from duplicate or full links are expected.
func randomNetwork(seed int64, count int) *Network {
	r := rand.New(rand.NewPCG(uint64(seed), 0))
	n := NewNetwork()
	for i := 0; i < count; i++ {
		n.AddNode(geom.V(float64(r.IntN(40)*25), float64(r.IntN(40)*25), float64(r.IntN(4)*25)), 0)
	}
	for i := 0; i < count*2; i++ {
		n.CreateLink(NodeID(r.IntN(count)), NodeID(r.IntN(count)))
	}
	return n
}
