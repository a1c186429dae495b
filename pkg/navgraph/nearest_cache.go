package navgraph

import (
	"sync"
	"time"

	"github.com/dd0wney/cluso-navgraph/pkg/geom"
)

// queryKey is the part of a nearest-node query, besides the point, that can
// change its answer. Only slots written under an equal key are served.
type queryKey struct {
	hull       Hull
	caps       Capability
	restricted bool // false for a nil agent
	visible    bool
}

func newQueryKey(agent Agent, checkVisibility bool) queryKey {
	if agent == nil {
		return queryKey{hull: HullHuman, visible: checkVisibility}
	}
	return queryKey{
		hull:       agent.Hull(),
		caps:       agent.Capabilities(),
		restricted: true,
		visible:    checkVisibility,
	}
}

// cacheSlot remembers the answer to one nearest-node query. node is NoNode for
// a cached failure.
type cacheSlot struct {
	point   geom.Vec3
	key     queryKey
	node    NodeID
	expires time.Time
	used    bool
}

// nearestCache is a fixed ring of recent nearest-node answers. New entries are
// written at the cursor, which then steps backward, so scanning forward from
// cursor+1 visits entries newest first.
type nearestCache struct {
	mu          sync.Mutex
	slots       []cacheSlot
	cursor      int
	life        time.Duration
	toleranceSq float64
}

func newNearestCache(size int, life time.Duration, tolerance float64) *nearestCache {
	return &nearestCache{
		slots:       make([]cacheSlot, size),
		life:        life,
		toleranceSq: tolerance * tolerance,
	}
}

// lookup finds the newest live slot for key within tolerance of point.
// It returns the slot index and its node, which may be NoNode.
func (c *nearestCache) lookup(point geom.Vec3, key queryKey, now time.Time) (int, NodeID, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	size := len(c.slots)
	for i := 1; i <= size; i++ {
		idx := (c.cursor + i) % size
		s := &c.slots[idx]
		if !s.used || s.key != key || !now.Before(s.expires) {
			continue
		}
		if geom.DistSq(s.point, point) <= c.toleranceSq {
			return idx, s.node, true
		}
	}
	return -1, NoNode, false
}

// refresh extends a slot's life if it still holds the given answer
func (c *nearestCache) refresh(idx int, key queryKey, node NodeID, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if idx < 0 || idx >= len(c.slots) {
		return
	}
	s := &c.slots[idx]
	if s.used && s.key == key && s.node == node {
		s.expires = now.Add(c.life)
	}
}

func (c *nearestCache) store(point geom.Vec3, key queryKey, node NodeID, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.slots[c.cursor] = cacheSlot{
		point:   point,
		key:     key,
		node:    node,
		expires: now.Add(c.life),
		used:    true,
	}
	c.cursor--
	if c.cursor < 0 {
		c.cursor = len(c.slots) - 1
	}
}

func (c *nearestCache) flush() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.slots)
	c.cursor = 0
}

// live counts unexpired slots
func (c *nearestCache) live(now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for i := range c.slots {
		if c.slots[i].used && now.Before(c.slots[i].expires) {
			count++
		}
	}
	return count
}
