package navgraph

import (
	"time"

	"github.com/dd0wney/cluso-navgraph/pkg/validation"
)

// Default tunables
const (
	DefaultMaxNodes           = 4096
	DefaultMaxLinksPerNode    = 30
	DefaultCacheSize          = 32
	DefaultCacheLife          = 10 * time.Second
	DefaultCacheTolerance     = 24.0
	DefaultMaxLinkDistance    = 720.0
	DefaultMaxAirLinkDistance = 1440.0
	DefaultMaxNearNodes       = 10
)

// Config holds the tunables of a Network
type Config struct {
	// MaxNodes caps the node arena
	MaxNodes int `yaml:"max_nodes" validate:"gt=0"`
	// MaxLinksPerNode caps each node's link set
	MaxLinksPerNode int `yaml:"max_links_per_node" validate:"gt=0"`
	// CacheSize is the number of nearest-node cache slots
	CacheSize int `yaml:"cache_size" validate:"gt=0"`
	// CacheLife is how long a cache slot stays valid after it is written or refreshed
	CacheLife time.Duration `yaml:"cache_life" validate:"gt=0"`
	// CacheTolerance is the radius within which a cached query point matches a new one
	CacheTolerance float64 `yaml:"cache_tolerance" validate:"gte=0"`
	// MaxLinkDistance is the half-extent of the nearest-node search box
	MaxLinkDistance float64 `yaml:"max_link_distance" validate:"gt=0"`
	// MaxAirLinkDistance replaces MaxLinkDistance for agents that can fly
	MaxAirLinkDistance float64 `yaml:"max_air_link_distance" validate:"gt=0"`
	// MaxNearNodes bounds the candidates considered by a nearest-node query
	MaxNearNodes int `yaml:"max_near_nodes" validate:"gt=0"`
}

// DefaultConfig returns the default network configuration
func DefaultConfig() Config {
	return Config{
		MaxNodes:           DefaultMaxNodes,
		MaxLinksPerNode:    DefaultMaxLinksPerNode,
		CacheSize:          DefaultCacheSize,
		CacheLife:          DefaultCacheLife,
		CacheTolerance:     DefaultCacheTolerance,
		MaxLinkDistance:    DefaultMaxLinkDistance,
		MaxAirLinkDistance: DefaultMaxAirLinkDistance,
		MaxNearNodes:       DefaultMaxNearNodes,
	}
}

// WithDefaults fills every zero field from DefaultConfig
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	c.MaxNodes = validation.DefaultOr(c.MaxNodes, d.MaxNodes)
	c.MaxLinksPerNode = validation.DefaultOr(c.MaxLinksPerNode, d.MaxLinksPerNode)
	c.CacheSize = validation.DefaultOr(c.CacheSize, d.CacheSize)
	c.CacheLife = validation.DefaultOr(c.CacheLife, d.CacheLife)
	c.CacheTolerance = validation.DefaultOr(c.CacheTolerance, d.CacheTolerance)
	c.MaxLinkDistance = validation.DefaultOr(c.MaxLinkDistance, d.MaxLinkDistance)
	c.MaxAirLinkDistance = validation.DefaultOr(c.MaxAirLinkDistance, d.MaxAirLinkDistance)
	c.MaxNearNodes = validation.DefaultOr(c.MaxNearNodes, d.MaxNearNodes)
	return c
}

// Validate checks field ranges and the rule that the air search box is never
// smaller than the ground one.
func (c Config) Validate() error {
	return validation.NewConfigValidator("network").
		Struct(c).
		AtLeastFloat("max_air_link_distance", c.MaxAirLinkDistance, "max_link_distance", c.MaxLinkDistance).
		Validate()
}
