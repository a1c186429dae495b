package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-navgraph/pkg/config"
)

func smallBench() benchOptions {
	return benchOptions{
		Cols:    8,
		Rows:    6,
		Spacing: 100,
		Workers: 3,
		Queries: 50,
		Seed:    7,
	}
}

func TestRunBench(t *testing.T) {
	var out bytes.Buffer
	cfg := config.Default()
	cfg.Metrics.Namespace = "benchtest"

	res, err := runBench(context.Background(), cfg, smallBench(), &out, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, uint64(150), res.Nearest)
	assert.LessOrEqual(t, res.Band, res.Resolved)
	assert.Equal(t, res.Resolved, res.Band)
	assert.Equal(t, 48, res.Stats.NodeCount)
	assert.Equal(t, res.Nearest, res.Stats.NearestQueries)
	assert.Contains(t, out.String(), "Benchmark complete")
	assert.Contains(t, out.String(), "benchtest_nearest_queries_total")
}

func TestRunBenchAirLayerGrowsArena(t *testing.T) {
	opts := smallBench()
	opts.AirHeight = 300
	cfg := config.Default()
	cfg.Network.MaxNodes = 10
	cfg.Metrics.Enabled = false

	var out bytes.Buffer
	res, err := runBench(context.Background(), cfg, opts, &out, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 96, res.Stats.NodeCount)
	assert.NotNil(t, res.Layout.Air)
	assert.False(t, strings.Contains(out.String(), "Metrics ("))
}

func TestRunBenchInvalidOptions(t *testing.T) {
	opts := smallBench()
	opts.Workers = 0
	_, err := runBench(context.Background(), config.Default(), opts, io.Discard, io.Discard)
	assert.Error(t, err)
}

func TestRunBenchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := runBench(ctx, config.Default(), smallBench(), io.Discard, io.Discard)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBenchWalls(t *testing.T) {
	opts := smallBench()
	opts.Walls = 1
	walls := benchWalls(opts)
	require.Len(t, walls, 1)
	assert.InDelta(t, 350.0, walls[0].X, 1e-9)
	// the top row stays open
	assert.Less(t, walls[0].MaxY, float64(opts.Rows-1)*opts.Spacing)
}

func TestConfigCommandPrintsYAML(t *testing.T) {
	var out bytes.Buffer
	configCmd.SetOut(&out)
	configPath = ""
	require.NoError(t, configCmd.RunE(configCmd, nil))
	assert.Contains(t, out.String(), "max_nodes: 4096")
	assert.Contains(t, out.String(), "cache_life: 10s")
}
