package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"season-sim/internal/analysis"
	"season-sim/internal/config"
	"season-sim/internal/logger"
	"season-sim/internal/model"
	"season-sim/internal/random"
	"season-sim/internal/roster"
	"season-sim/internal/season"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "season":
		err = cmdSeason(os.Args[2:])
	case "montecarlo":
		err = cmdMonteCarlo(os.Args[2:])
	case "rank":
		err = cmdRank(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli season --roster players.csv [--config examples/config.yaml] [--seed 42] [--concurrent] [--out results/weeks.csv] [--quiet]")
	fmt.Println("  cli montecarlo --roster players.csv --n 1000 [--seed 42]")
	fmt.Println("  cli rank --roster players.csv [--seed 42]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - roster files are CSV (Name,Position,SeasonProjection,InjuryProb,StdDev) or YAML presets")
	fmt.Println("  - season output CSV has one row per starter per week")
	fmt.Println("  - without --seed a time-based seed is used and printed")
}

// common flags shared by every subcommand
type common struct {
	fs         *flag.FlagSet
	roster     *string
	cfgPath    *string
	seed       *int64
	concurrent *bool
	logLevel   *string
}

func commonFlags(fs *flag.FlagSet) common {
	return common{
		fs:         fs,
		roster:     fs.String("roster", "", "Path to roster CSV or YAML (overrides roster_file in config)"),
		cfgPath:    fs.String("config", "", "Path to YAML run config (optional)"),
		seed:       fs.Int64("seed", 0, "Random seed (default: config seed, else time-based)"),
		concurrent: fs.Bool("concurrent", false, "Sample players concurrently within each week"),
		logLevel:   fs.String("log-level", "", "Log level (debug, info, warn, error)"),
	}
}

// resolve loads config, roster and engine for a subcommand.
func (c common) resolve() (*config.Config, []*model.Player, *season.Engine, int64, error) {
	cfg := config.Default()
	if *c.cfgPath != "" {
		loaded, err := config.Load(*c.cfgPath)
		if err != nil {
			return nil, nil, nil, 0, err
		}
		cfg = loaded
	}
	if *c.roster != "" {
		cfg.RosterFile = *c.roster
	}
	if *c.concurrent {
		cfg.Sampling = string(season.SamplingConcurrent)
	}
	if *c.logLevel != "" {
		cfg.Log.Level = *c.logLevel
	}
	if cfg.RosterFile == "" {
		return nil, nil, nil, 0, fmt.Errorf("--roster is required (or roster_file in --config)")
	}

	players, err := roster.Load(cfg.RosterFile)
	if err != nil {
		return nil, nil, nil, 0, fmt.Errorf("load roster: %w", err)
	}

	engine, err := cfg.Engine()
	if err != nil {
		return nil, nil, nil, 0, err
	}
	engine.Log = logger.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	seed := pickSeed(*c.seed, flagPassed(c.fs, "seed"), cfg.Seed, time.Now)
	return cfg, players, engine, seed, nil
}

func flagPassed(fs *flag.FlagSet, name string) bool {
	passed := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			passed = true
		}
	})
	return passed
}

// pickSeed prefers an explicit --seed (0 included), then a non-zero config
// seed, then the clock.
func pickSeed(flagSeed int64, flagSet bool, cfgSeed int64, now func() time.Time) int64 {
	if flagSet {
		return flagSeed
	}
	if cfgSeed != 0 {
		return cfgSeed
	}
	return now().UnixNano()
}

func cmdSeason(args []string) error {
	fs := flag.NewFlagSet("season", flag.ExitOnError)
	c := commonFlags(fs)
	outPath := fs.String("out", "", "Optional output CSV path")
	quiet := fs.Bool("quiet", false, "Only print the final per-week totals")
	_ = fs.Parse(args)

	cfg, players, engine, seed, err := c.resolve()
	if err != nil {
		return err
	}
	if *outPath != "" {
		cfg.Output.CSV = *outPath
	}
	if *quiet {
		cfg.Output.Quiet = true
	}

	sinks := season.MultiSink{}
	if cfg.Output.Quiet {
		sinks = append(sinks, season.SummarySink{W: os.Stdout})
	} else {
		sinks = append(sinks, season.TextSink{W: os.Stdout})
	}
	if cfg.Output.CSV != "" {
		// ensure output dir exists
		if err := os.MkdirAll(filepath.Dir(cfg.Output.CSV), 0o755); err != nil {
			return err
		}
		f, err := os.Create(cfg.Output.CSV)
		if err != nil {
			return err
		}
		defer f.Close()
		sinks = append(sinks, season.NewCSVSink(f))
	}
	engine.Sink = sinks

	team, err := season.NewTeam(players)
	if err != nil {
		return err
	}
	res, err := engine.Run(context.Background(), team, random.NewSeeded(seed))
	if err != nil {
		return err
	}

	fmt.Printf("Seed=%d Season Total=%.2f\n", seed, res.SeasonTotal)
	if cfg.Output.CSV != "" {
		fmt.Printf("Wrote %d weeks to %s\n", len(res.Weeks), cfg.Output.CSV)
	}
	return nil
}

func cmdMonteCarlo(args []string) error {
	fs := flag.NewFlagSet("montecarlo", flag.ExitOnError)
	c := commonFlags(fs)
	n := fs.Int("n", 0, "Number of seasons (0 = config montecarlo.iterations)")
	_ = fs.Parse(args)

	cfg, players, engine, seed, err := c.resolve()
	if err != nil {
		return err
	}
	iterations := *n
	if iterations == 0 {
		iterations = cfg.MonteCarlo.Iterations
	}

	mc, err := analysis.MonteCarlo(context.Background(), engine, players, iterations, seed)
	if err != nil {
		return err
	}
	printMonteCarlo(os.Stdout, mc)
	return nil
}

func cmdRank(args []string) error {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	c := commonFlags(fs)
	_ = fs.Parse(args)

	_, players, engine, seed, err := c.resolve()
	if err != nil {
		return err
	}
	team, err := season.NewTeam(players)
	if err != nil {
		return err
	}
	res, err := engine.Run(context.Background(), team, random.NewSeeded(seed))
	if err != nil {
		return err
	}

	ranked := analysis.RankStarters(res.Weeks)
	fmt.Printf("%-4s %-24s %-4s %-7s %-6s %-10s\n", "rank", "name", "pos", "starts", "flex", "points")
	for i, r := range ranked {
		fmt.Printf("%-4d %-24s %-4s %-7d %-6d %-10.2f\n", i+1, r.Name, r.Position, r.Starts, r.FlexStarts, r.Points)
	}
	fmt.Printf("Seed=%d Season Total=%.2f\n", seed, res.SeasonTotal)
	return nil
}

func printMonteCarlo(w io.Writer, mc *analysis.MonteCarloResult) {
	d := mc.Season
	fmt.Fprintf(w, "Seasons=%d Seed=%d\n", mc.Iterations, mc.Seed)
	fmt.Fprintf(w, "Season total: mean=%.2f sd=%.2f min=%.2f p05=%.2f p50=%.2f p95=%.2f max=%.2f\n",
		d.Mean, d.StdDev, d.Min, d.P05, d.P50, d.P95, d.Max)
	fmt.Fprintln(w, "Mean weekly totals:")
	for i, m := range mc.WeekMeans {
		fmt.Fprintf(w, "  Week %d: %.2f\n", i+1, m)
	}
	fmt.Fprintln(w, "Most productive starters:")
	for i, r := range mc.Starters {
		if i == 10 {
			break
		}
		fmt.Fprintf(w, "  %-24s %-4s starts/season=%.2f points/season=%.2f\n",
			r.Name, r.Position, float64(r.Starts)/float64(mc.Iterations), r.Points/float64(mc.Iterations))
	}
}
