package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dd0wney/cluso-navgraph/pkg/config"
	"github.com/dd0wney/cluso-navgraph/pkg/geom"
	"github.com/dd0wney/cluso-navgraph/pkg/logging"
	"github.com/dd0wney/cluso-navgraph/pkg/metrics"
	"github.com/dd0wney/cluso-navgraph/pkg/navgraph"
	"github.com/dd0wney/cluso-navgraph/pkg/scenario"
)

// Report styles
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF"))

	resultsBoxStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#00FF00")).
				Padding(0, 2)
)

type benchOptions struct {
	Cols       int
	Rows       int
	Spacing    float64
	AirHeight  float64
	Walls      int
	Workers    int
	Queries    int
	Visibility bool
	Seed       uint64
}

var benchOpts = benchOptions{
	Cols:    64,
	Rows:    64,
	Spacing: 100,
	Workers: 4,
	Queries: 10000,
	Seed:    1,
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark nearest-node and band queries on a synthetic level",
	Long: `Build a grid level (optionally with an air layer and walls) and run
nearest-node and band searches from concurrent workers.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		_, err = runBench(cmd.Context(), cfg, benchOpts, cmd.OutOrStdout(), os.Stderr)
		return err
	},
}

func init() {
	f := benchCmd.Flags()
	f.IntVar(&benchOpts.Cols, "cols", benchOpts.Cols, "Grid columns")
	f.IntVar(&benchOpts.Rows, "rows", benchOpts.Rows, "Grid rows")
	f.Float64Var(&benchOpts.Spacing, "spacing", benchOpts.Spacing, "Distance between neighbouring nodes")
	f.Float64Var(&benchOpts.AirHeight, "air-height", benchOpts.AirHeight, "Height of the air layer (0 disables it)")
	f.IntVar(&benchOpts.Walls, "walls", benchOpts.Walls, "Number of walls, each leaving a doorway on the top row")
	f.IntVar(&benchOpts.Workers, "workers", benchOpts.Workers, "Concurrent query workers")
	f.IntVar(&benchOpts.Queries, "queries", benchOpts.Queries, "Queries per worker")
	f.BoolVar(&benchOpts.Visibility, "visibility", false, "Require line of sight for nearest-node queries")
	f.Uint64Var(&benchOpts.Seed, "seed", benchOpts.Seed, "Random seed for query points")
}

type benchResult struct {
	Layout   *scenario.Layout
	Nearest  uint64
	Resolved uint64
	Band     uint64
	Found    uint64
	Elapsed  time.Duration
	Stats    navgraph.Statistics
}

// benchWalls spreads count walls evenly across the grid, each stopping one row short
// of the top edge so the level stays connected.
func benchWalls(opts benchOptions) []scenario.Wall {
	walls := make([]scenario.Wall, 0, opts.Walls)
	for i := 1; i <= opts.Walls; i++ {
		col := float64(opts.Cols*i) / float64(opts.Walls+1)
		walls = append(walls, scenario.Wall{
			X:    (col - 0.5) * opts.Spacing,
			MinY: -opts.Spacing,
			MaxY: float64(opts.Rows-2)*opts.Spacing + opts.Spacing/2,
		})
	}
	return walls
}

func runBench(ctx context.Context, cfg config.File, opts benchOptions, out, logOut io.Writer) (*benchResult, error) {
	if opts.Workers <= 0 || opts.Queries <= 0 {
		return nil, fmt.Errorf("workers and queries must be positive")
	}

	// grow the arena to fit the requested level
	needed := opts.Cols * opts.Rows
	if opts.AirHeight > 0 {
		needed *= 2
	}
	cfg.Network.MaxNodes = max(cfg.Network.MaxNodes, needed)

	logger := cfg.NewLogger(logOut)
	registry := cfg.NewRegistry()
	n, err := cfg.NewNetwork(logger, registry)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(out, "🧭 Navigation Graph - Query Benchmark\n")
	fmt.Fprintf(out, "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")

	fmt.Fprintf(out, "📊 Building %dx%d level", opts.Cols, opts.Rows)
	if opts.AirHeight > 0 {
		fmt.Fprintf(out, " with air layer at %.0f", opts.AirHeight)
	}
	fmt.Fprintf(out, "...\n")

	timer := logging.StartTimer(logger, "level built")
	layout, err := scenario.Build(n, scenario.Level{
		Cols:      opts.Cols,
		Rows:      opts.Rows,
		Spacing:   opts.Spacing,
		AirHeight: opts.AirHeight,
		Walls:     benchWalls(opts),
	})
	if err != nil {
		timer.EndError(err)
		return nil, fmt.Errorf("failed to build level: %w", err)
	}
	buildTime := timer.End(logging.Count(n.NodeCount()))
	n.SetTracer(layout.Tracer.Trace)

	fmt.Fprintf(out, "   Nodes: %d, Links: %d\n", n.NodeCount(), n.LinkCount())
	fmt.Fprintf(out, "   Build time: %v\n\n", buildTime)

	result := &benchResult{Layout: layout}
	var nearest, resolved, band, found atomic.Uint64

	// query points range slightly beyond the level so some resolve to nothing
	bounds := layout.Bounds
	margin := geom.V(opts.Spacing, opts.Spacing, 0)
	queryBox := geom.NewBox(bounds.Mins.Sub(margin), bounds.Maxs.Add(margin))

	fmt.Fprintf(out, "📊 Running %d workers x %d queries...\n", opts.Workers, opts.Queries)
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < opts.Workers; w++ {
		r := rand.New(rand.NewPCG(opts.Seed, uint64(w)))
		points := scenario.RandomPoints(r, queryBox, opts.Queries)
		agent := navgraph.BasicAgent{AgentHull: navgraph.HullHuman, Caps: navgraph.CapMoveGround}
		if opts.AirHeight > 0 && w%2 == 1 {
			agent.Caps |= navgraph.CapMoveFly
		}

		g.Go(func() error {
			for i, p := range points {
				if i%256 == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}

				id := n.NearestNode(agent, p, opts.Visibility, nil)
				nearest.Add(1)
				if id == navgraph.NoNode {
					continue
				}
				resolved.Add(1)

				// look for a node two to four cells away from the query point
				lo, hi := 2*opts.Spacing, 4*opts.Spacing
				got := n.FindNodeInBand(id, p, lo*lo, hi*hi, agent.AgentHull, agent.Caps, nil)
				band.Add(1)
				if got != navgraph.NoNode {
					found.Add(1)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.Elapsed = time.Since(start)
	result.Nearest = nearest.Load()
	result.Resolved = resolved.Load()
	result.Band = band.Load()
	result.Found = found.Load()
	result.Stats = n.Stats()

	printBenchResult(out, result)
	if registry != nil {
		if err := printMetrics(out, registry); err != nil {
			return nil, err
		}
	}

	fmt.Fprintf(out, "\n✅ Benchmark complete!\n")
	return result, nil
}

func printBenchResult(out io.Writer, r *benchResult) {
	total := r.Nearest + r.Band
	qps := float64(total) / r.Elapsed.Seconds()
	s := r.Stats

	fmt.Fprintf(out, "   Duration: %v\n", r.Elapsed)
	fmt.Fprintf(out, "   Throughput: %.0f queries/sec\n\n", qps)

	var b strings.Builder
	fmt.Fprintf(&b, "Nearest queries:    %d (%d resolved)\n", r.Nearest, r.Resolved)
	fmt.Fprintf(&b, "Band searches:      %d (%d found)\n", r.Band, r.Found)
	fmt.Fprintf(&b, "Cache hits:         %d (%d negative)\n", s.CacheHits, s.NegativeHits)
	fmt.Fprintf(&b, "Cache misses:       %d\n", s.CacheMisses)
	fmt.Fprintf(&b, "Cached entries:     %d\n", s.CachedEntries)
	fmt.Fprintf(&b, "Box queries:        %d\n", s.BoxQueries)
	fmt.Fprintf(&b, "Line traces:        %d\n", s.Traces)
	fmt.Fprintf(&b, "Band visits:        %d\n", s.BandVisits)
	fmt.Fprintf(&b, "Avg nearest time:   %.4f ms", s.AvgNearestTimeMs)

	fmt.Fprintln(out, headerStyle.Render("📈 Results"))
	fmt.Fprintln(out, resultsBoxStyle.Render(b.String()))
}

func printMetrics(out io.Writer, registry *metrics.Registry) error {
	families, err := registry.GetPrometheusRegistry().Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("📊 Metrics (%s)", registry.Namespace())))
	for _, mf := range families {
		fmt.Fprintf(out, "   %-45s %d series\n", mf.GetName(), len(mf.GetMetric()))
	}
	return nil
}
