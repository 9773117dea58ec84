package cli

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gopherforge/chromabench/config"
	"github.com/gopherforge/chromabench/core"
	"github.com/gopherforge/chromabench/dimacs"
	"github.com/gopherforge/chromabench/dispatch"
	"github.com/gopherforge/chromabench/metrics"
	"github.com/gopherforge/chromabench/snapshot"
)

// runOpts holds the flags documented as the dispatcher host's CLI surface.
type runOpts struct {
	algorithm     string
	input         string
	output        string
	results       string
	graphName     string
	knownOptimal  string
	saveSnapshots string
	configPath    string
	seed          int64
}

// runCommand builds the root-level colouring command: load a DIMACS graph,
// dispatch it to the named strategy, and optionally write the colouring,
// a snapshot trace, and a metrics CSV row.
func (c *CLI) runCommand() *cobra.Command {
	var opts runOpts

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Colour a DIMACS graph with a named strategy",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed, err := nondeterministicSeed()
				if err != nil {
					return fmt.Errorf("generate seed: %w", err)
				}
				opts.seed = seed
			}
			return c.runColour(&opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.algorithm, "algorithm", "", fmt.Sprintf("strategy name, one of: %s", strings.Join(dispatch.Names, ", ")))
	flags.StringVar(&opts.input, "input", "", "path to a DIMACS .col graph file")
	flags.StringVar(&opts.output, "output", "", "path to write the produced colouring (DIMACS format); empty skips")
	flags.StringVar(&opts.results, "results", "", "path to append a metrics CSV row; empty skips")
	flags.StringVar(&opts.graphName, "graph-name", "", "graph name recorded in the metrics row; defaults to the input file's basename without its extension")
	flags.StringVar(&opts.knownOptimal, "known-optimal", "", "known chromatic number recorded in the metrics row, if any")
	flags.StringVar(&opts.saveSnapshots, "save-snapshots", "", "path to write the per-step snapshot trace; empty skips recording")
	flags.StringVar(&opts.configPath, "config", "", "path to a TOML file overriding strategy defaults")
	flags.Int64Var(&opts.seed, "seed", 0, "RNG seed for the randomised strategies (tabu_search, simulated_annealing, genetic); defaults to a nondeterministic seed drawn fresh each run")
	_ = cmd.MarkFlagRequired("algorithm")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// nondeterministicSeed draws a random int64 from a cryptographic source,
// used when the caller never passed --seed: every such invocation of
// tabu_search, simulated_annealing, or genetic should vary run to run,
// while an explicit --seed (including --seed 0) stays reproducible.
func nondeterministicSeed() (int64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

func (c *CLI) runColour(opts *runOpts) error {
	runID := uuid.New().String()
	logger := c.Logger.With("run", runID)

	known := false
	for _, name := range dispatch.Names {
		if name == opts.algorithm {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: %q", dispatch.ErrUnknownAlgorithm, opts.algorithm)
	}

	in, err := os.Open(opts.input)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	g, err := dimacs.ParseGraph(in)
	if err != nil {
		return fmt.Errorf("parse input: %w", err)
	}
	logger.Infof("loaded graph: %d vertices, %d edges", g.N(), g.M())

	cfg := config.Default()
	if opts.configPath != "" {
		cfg, err = config.LoadFile(opts.configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}
	cfg, err = config.LoadEnv(cfg)
	if err != nil {
		return err
	}

	var sink snapshot.Sink
	var buffered *snapshot.BufferedSink
	var snapFile *os.File
	if opts.saveSnapshots != "" {
		snapFile, err = os.Create(opts.saveSnapshots)
		if err != nil {
			return fmt.Errorf("create snapshot file: %w", err)
		}
		defer snapFile.Close()
		buffered = snapshot.NewBufferedSink(snapFile)
		sink = buffered
	}

	result, err := dispatch.Run(dispatch.Config{
		Algorithm:        opts.algorithm,
		Graph:            g,
		Seed:             opts.seed,
		Snapshot:         sink,
		GeneticOptions:   cfg.GeneticOptions(),
		TabuOptions:      cfg.TabuOptions(),
		AnnealingOptions: cfg.AnnealingOptions(),
		ProgressInterval: cfg.ExactProgressInterval(),
		Logger:           logger,
	})
	if err != nil {
		return err
	}
	if buffered != nil {
		if err := buffered.Flush(); err != nil {
			return fmt.Errorf("flush snapshot file: %w", err)
		}
	}

	logger.Infof("%s finished: %d colours, %s", result.Algorithm, result.Coloring.NumColors(), result.Runtime)

	if opts.output != "" {
		if err := writeColouring(opts.output, opts.algorithm, g, result.Coloring); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	if opts.results != "" {
		if err := appendMetrics(opts, g, result); err != nil {
			return fmt.Errorf("append metrics: %w", err)
		}
	}

	return nil
}

func writeColouring(path, algorithm string, g *core.Graph, coloring core.Coloring) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return dimacs.WriteColouring(out, algorithm, g, coloring)
}

func appendMetrics(opts *runOpts, g *core.Graph, result dispatch.Result) error {
	graphName := opts.graphName
	if graphName == "" {
		graphName = strings.TrimSuffix(filepath.Base(opts.input), filepath.Ext(opts.input))
	}

	var knownOptimal *int
	if opts.knownOptimal != "" {
		n, err := strconv.Atoi(opts.knownOptimal)
		if err != nil {
			return fmt.Errorf("%w: --known-optimal %q: %v", config.ErrInvalidConfiguration, opts.knownOptimal, err)
		}
		knownOptimal = &n
	}

	return metrics.AppendCSV(opts.results, metrics.Record{
		Algorithm:    result.Algorithm,
		GraphName:    graphName,
		Vertices:     g.N(),
		Edges:        g.M(),
		ColorsUsed:   result.Coloring.NumColors(),
		KnownOptimal: knownOptimal,
		RuntimeMS:    float64(result.Runtime) / float64(time.Millisecond),
	})
}
