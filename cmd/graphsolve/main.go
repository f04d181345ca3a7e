// SPDX-License-Identifier: MIT
//
// graphsolve solves one or more constraint-graph scenarios and prints
// (or renders) the result. Usage:
//
//	graphsolve -scenario cube
//	graphsolve -config scenarios.yaml
//	graphsolve -all -out ./out
//	graphsolve -scenario cube -tui
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphsolve/analysis"
	"github.com/katalvlaran/graphsolve/config"
	"github.com/katalvlaran/graphsolve/fixtures"
	"github.com/katalvlaran/graphsolve/puzzle"
	"github.com/katalvlaran/graphsolve/render"
	"github.com/katalvlaran/graphsolve/tui"
)

func main() {
	scenario := flag.String("scenario", "", "scenario name to solve (see -list)")
	configPath := flag.String("config", "", "YAML config file listing scenarios to solve")
	all := flag.Bool("all", false, "solve every known scenario concurrently")
	list := flag.Bool("list", false, "print known scenario names and exit")
	outDir := flag.String("out", "", "directory to write dot/svg renders into (empty: stdout matrix only)")
	debug := flag.Bool("debug", false, "enable stderr trace of every assignment")
	useTUI := flag.Bool("tui", false, "drive a single scenario through the debug visualizer")
	flag.Parse()

	if *list {
		for _, name := range fixtures.Names {
			fmt.Println(name)
		}
		return
	}

	if *useTUI {
		if *scenario == "" {
			fmt.Fprintln(os.Stderr, "graphsolve: -tui requires -scenario")
			os.Exit(1)
		}
		runTUI(*scenario)
		return
	}

	cfg := resolveConfig(*configPath, *scenario, *debug, *outDir)

	if *all {
		if err := solveAllConcurrently(cfg); err != nil {
			fmt.Fprintln(os.Stderr, "graphsolve:", err)
			os.Exit(1)
		}
		return
	}

	for _, s := range cfg.Scenarios {
		if err := solveOne(cfg, s); err != nil {
			fmt.Fprintln(os.Stderr, "graphsolve:", err)
			os.Exit(1)
		}
	}
}

func resolveConfig(configPath, scenario string, debug bool, outDir string) config.Config {
	var cfg config.Config
	var err error
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "graphsolve:", err)
			os.Exit(1)
		}
	} else {
		cfg = config.Default()
	}
	if scenario != "" {
		cfg.Scenarios = []config.Scenario{{Name: scenario}}
	}
	cfg.Debug = cfg.Debug || debug
	if outDir != "" {
		cfg.OutputDir = outDir
	}
	return cfg
}

func solveAllConcurrently(cfg config.Config) error {
	var g errgroup.Group
	for _, name := range fixtures.Names {
		name := name
		g.Go(func() error {
			return solveOne(cfg, config.Scenario{Name: name})
		})
	}
	return g.Wait()
}

func solveOne(cfg config.Config, s config.Scenario) error {
	graph, err := fixtures.Build(s.Name)
	if err != nil {
		return fmt.Errorf("scenario %q: %w", s.Name, err)
	}

	settings := puzzle.NewSettings().WithDebug(cfg.Debug).WithSleepMS(cfg.EffectiveSleepMS(s))
	solved, ok := puzzle.Solve(graph, settings)
	if !ok {
		return fmt.Errorf("scenario %q: %w", s.Name, puzzle.ErrNoSolution)
	}

	report := analysis.Analyze(solved)
	fmt.Printf("%s: solved, %d nodes, %d edges, %d component(s)\n",
		s.Name, report.NodeCount, report.ConcreteEdges, report.ComponentCount)

	if cfg.OutputDir == "" || cfg.OutputDir == "." {
		return render.Print(os.Stdout, solved)
	}
	return writeRenders(cfg.OutputDir, s.Name, solved)
}

func writeRenders(dir, name string, solved *puzzle.Graph) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	dotPath := filepath.Join(dir, name+".dot")
	if err := os.WriteFile(dotPath, []byte(render.DOT(solved, "neato", nil, nil)), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dotPath, err)
	}

	svgPath := filepath.Join(dir, name+".svg")
	f, err := os.Create(svgPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", svgPath, err)
	}
	defer f.Close()
	render.SVG(f, solved, nil, nil)
	return nil
}

func runTUI(name string) {
	graph, err := fixtures.Build(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, "graphsolve:", err)
		os.Exit(1)
	}
	ok, err := tui.Run(graph, puzzle.NewSettings())
	if err != nil {
		fmt.Fprintln(os.Stderr, "graphsolve:", err)
		os.Exit(1)
	}
	if !ok {
		fmt.Fprintln(os.Stderr, "graphsolve:", puzzle.ErrNoSolution)
		os.Exit(1)
	}
}
