// SPDX-License-Identifier: MIT

// Command tabula generates one degree-constrained connected graph, tests it
// for planarity and prints its faces when it is planar.
//
// Usage:
//
//	tabula [--config run.yaml] [--seed N] [--attempts N]
//	       [--labels decimal|symbol|alnum|hex|excel|prefixed]
//	       [--log-level debug|info|warn|error] [--log-format text|json] [--metrics]
//
// Flags override the matching config keys. --labels only changes how vertex
// indices are printed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/katalvlaran/tabula/bfs"
	"github.com/katalvlaran/tabula/builder"
	"github.com/katalvlaran/tabula/config"
	"github.com/katalvlaran/tabula/core"
	"github.com/katalvlaran/tabula/metrics"
	"github.com/katalvlaran/tabula/planarity"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "tabula:", err)
		os.Exit(1)
	}
}

// run is main without the process exit, so tests can drive it.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("tabula", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		cfgPath   = fs.String("config", "", "YAML run configuration (defaults apply when empty)")
		seed      = fs.Int64("seed", 0, "random seed; overrides the config when set")
		attempts  = fs.Int("attempts", 0, "generation attempts; overrides the config when set")
		labels    = fs.String("labels", "decimal", "vertex label scheme: decimal, symbol, alnum, hex, excel, prefixed")
		logLevel  = fs.String("log-level", "info", "log level: debug, info, warn, error")
		logFormat = fs.String("log-format", "text", "log format: text or json")
		dump      = fs.Bool("metrics", false, "print collected metrics before exiting")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = *seed
		case "attempts":
			cfg.Attempts = *attempts
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}
	label, err := labelScheme(*labels)
	if err != nil {
		return err
	}

	logger := newLogger(*logLevel, *logFormat, stderr)
	reg := metrics.NewRegistry()

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	g, err := builder.GenerateWithRetry[string](ctx, cfg.Graph, cfg.Attempts,
		builder.WithSeed(cfg.Seed),
		builder.WithLogger(logger),
		builder.WithMetrics(reg))
	if err != nil {
		return err
	}
	logger.Info("graph ready",
		slog.Int("vertices", g.VertexCount()),
		slog.Int("edges", g.EdgeCount()),
		slog.String("fingerprint", g.Fingerprint().String()))

	printGraph(stdout, g, label)
	if err = printFarthest(ctx, stdout, g, label); err != nil {
		return err
	}

	faces, err := planarity.Faces[*core.Vertex[string]](g, planarity.WithMetrics(reg))
	switch {
	case errors.Is(err, planarity.ErrNotPlanar):
		fmt.Fprintln(stdout, "planar: false")
	case err != nil:
		return err
	default:
		fmt.Fprintln(stdout, "planar: true")
		for i, f := range faces {
			fmt.Fprintf(stdout, "face %d: %s\n", i, joinLabels(f, label))
		}
	}

	if *dump {
		return printMetrics(stdout, reg)
	}

	return nil
}

// newLogger builds a logger writing to w; unknown levels fall back to info
// and unknown formats to text.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// labelScheme maps a --labels value to a builder label function.
func labelScheme(name string) (func(int) string, error) {
	switch name {
	case "decimal":
		return builder.DecimalLabel, nil
	case "symbol":
		return builder.SymbolLabel, nil
	case "alnum":
		return builder.AlphanumericLabel, nil
	case "hex":
		return builder.HexLabel, nil
	case "excel":
		return builder.ExcelColumnLabel, nil
	case "prefixed":
		return builder.PrefixedLabel("v"), nil
	default:
		return nil, fmt.Errorf("unknown label scheme %q", name)
	}
}

func printGraph(w io.Writer, g *core.Graph[string], label func(int) string) {
	fmt.Fprintf(w, "vertices: %d\nedges: %d\n", g.VertexCount(), g.EdgeCount())
	fmt.Fprintf(w, "degrees: %v\n", g.DegreeSequence())
	if rep := g.Repaired(); len(rep) > 0 {
		fmt.Fprintf(w, "repaired: %s\n", joinLabels(rep, label))
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(w, "edge: %s-%s\n", label(e.From.ID()), label(e.To.ID()))
	}
}

// printFarthest walks the graph breadth-first from its first vertex and
// prints the first vertex found at the greatest depth with its path.
func printFarthest(ctx context.Context, w io.Writer, g *core.Graph[string], label func(int) string) error {
	vs := g.Vertices()
	if len(vs) == 0 {
		return nil
	}
	far, depth := vs[0], 0
	res, err := bfs.BFS[*core.Vertex[string]](g, vs[0],
		bfs.WithContext[*core.Vertex[string]](ctx),
		bfs.WithOnVisit(func(v *core.Vertex[string], d int) error {
			if d > depth {
				far, depth = v, d
			}
			return nil
		}))
	if err != nil {
		return err
	}
	path, err := res.PathTo(far)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "farthest from %s: %s at depth %d via %s\n",
		label(vs[0].ID()), label(far.ID()), depth, joinLabels(path, label))

	return nil
}

func joinLabels(vs []*core.Vertex[string], label func(int) string) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = label(v.ID())
	}
	return strings.Join(parts, " ")
}

// printMetrics writes one "name{labels} value" line per counter sample and
// one "name_count/name_sum" pair per histogram.
func printMetrics(w io.Writer, reg *metrics.Registry) error {
	families, err := reg.Prometheus().Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			sort.Strings(labels)
			name := mf.GetName()
			if len(labels) > 0 {
				name += "{" + strings.Join(labels, ",") + "}"
			}
			switch {
			case m.GetCounter() != nil:
				fmt.Fprintf(w, "%s %g\n", name, m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				fmt.Fprintf(w, "%s_count %d\n", name, m.GetHistogram().GetSampleCount())
				fmt.Fprintf(w, "%s_sum %g\n", name, m.GetHistogram().GetSampleSum())
			}
		}
	}

	return nil
}
