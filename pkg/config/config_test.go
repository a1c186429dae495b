package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-navgraph/pkg/geom"
	"github.com/dd0wney/cluso-navgraph/pkg/logging"
	"github.com/dd0wney/cluso-navgraph/pkg/navgraph"
)

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	t.Setenv(logging.LevelEnv, "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, navgraph.DefaultConfig(), cfg.Network)
}

func TestParseKeepsDefaultsForMissingFields(t *testing.T) {
	t.Setenv(logging.LevelEnv, "")

	cfg, err := Parse([]byte(`
network:
  max_nodes: 128
  cache_life: 2s
log:
  format: text
`))
	require.NoError(t, err)

	assert.Equal(t, 128, cfg.Network.MaxNodes)
	assert.Equal(t, 2*time.Second, cfg.Network.CacheLife)
	assert.Equal(t, navgraph.DefaultMaxLinksPerNode, cfg.Network.MaxLinksPerNode)
	assert.Equal(t, navgraph.DefaultCacheTolerance, cfg.Network.CacheTolerance)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestParseRejectsInvalidConfig(t *testing.T) {
	t.Setenv(logging.LevelEnv, "")

	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"malformed yaml", "network: [", "failed to parse config"},
		{"unknown level", "log:\n  level: loud\n", "Level"},
		{"unknown format", "log:\n  format: xml\n", "Format"},
		{"negative capacity", "network:\n  max_nodes: -4\n", "MaxNodes"},
		{"air box smaller than ground", "network:\n  max_link_distance: 900\n  max_air_link_distance: 300\n", "max_air_link_distance"},
		{"metrics without namespace", "metrics:\n  enabled: true\n  namespace: \"\"\n", "metrics.namespace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEnvironmentOverridesLogLevel(t *testing.T) {
	t.Setenv(logging.LevelEnv, "DEBUG")

	cfg, err := Parse([]byte("log:\n  level: error\n"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, logging.DebugLevel, cfg.NewLogger(&bytes.Buffer{}).GetLevel())
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv(logging.LevelEnv, "")

	dir := t.TempDir()
	path := filepath.Join(dir, "navgraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte("network:\n  max_near_nodes: 4\nmetrics:\n  enabled: false\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Network.MaxNearNodes)
	assert.Nil(t, cfg.NewRegistry())

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestMarshalReadsBack(t *testing.T) {
	t.Setenv(logging.LevelEnv, "")

	cfg := Default()
	cfg.Network.CacheLife = 3 * time.Second
	cfg.Log.Level = "warn"

	data, err := cfg.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "cache_life: 3s")

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestNewNetworkWiresLoggerAndMetrics(t *testing.T) {
	t.Setenv(logging.LevelEnv, "")

	cfg, err := Parse([]byte("network:\n  max_nodes: 1\nmetrics:\n  namespace: navtest\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	registry := cfg.NewRegistry()
	require.NotNil(t, registry)
	assert.Equal(t, "navtest", registry.Namespace())

	n, err := cfg.NewNetwork(cfg.NewLogger(&buf), registry)
	require.NoError(t, err)
	assert.Equal(t, 1, n.Config().MaxNodes)

	_, err = n.AddNode(geom.V(0, 0, 0), 0)
	require.NoError(t, err)
	_, err = n.AddNode(geom.V(0, 0, 0), 0)
	require.ErrorIs(t, err, navgraph.ErrNodeCapacity)
	assert.Contains(t, buf.String(), "construction rejected")

	families, err := registry.GetPrometheusRegistry().Gather()
	require.NoError(t, err)
	var names []string
	for _, mf := range families {
		names = append(names, mf.GetName())
	}
	assert.Contains(t, names, "navtest_nodes_total")
}
