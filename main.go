package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
	"github.com/sheikhrachel/go-life/window"
)

const usage = `Usage: life <command> [flags]

Commands:
  run     run the simulation
  help    show this message

Run "life run -h" for the run flags.
`

// runOptions are the run flags that are not part of utils.Config
type runOptions struct {
	configPath string
	useWindow  bool
}

// parseRunFlags loads the optional config file, then applies only the flags
// given on the command line on top of it
func parseRunFlags(args []string, stderr io.Writer) (utils.Config, runOptions, error) {
	var (
		opts     runOptions
		defaults = utils.DefaultConfig()
		fs       = flag.NewFlagSet("run", flag.ContinueOnError)

		pattern     = fs.String("pattern", defaults.Pattern, "initial pattern: random, glider or infinite")
		seed        = fs.Int64("seed", defaults.Seed, "seed for the random pattern (0 = time-based)")
		generations = fs.Int("generations", defaults.MaxGenerations, "stop after N generations (0 = until quit)")
		frame       = fs.Duration("frame", time.Duration(defaults.FrameRate), "delay between frames")
		parallel    = fs.Bool("parallel", defaults.UseParallel, "advance rows in parallel")
		stats       = fs.String("stats", defaults.StatsFile, "write per-generation stats CSV to this path")
		stopOnCycle = fs.Bool("stop-on-cycle", defaults.StopOnCycle, "stop once the grid dies out or repeats")
		logFormat   = fs.String("log-format", defaults.LogFormat, "log format: text or json")
		logLevel    = fs.String("log-level", defaults.LogLevel, "log level: debug, info, warn or error")
	)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "path to a JSON or YAML config file")
	fs.BoolVar(&opts.useWindow, "window", false, "draw in a window (requires the ebiten build tag)")

	if err := fs.Parse(args); err != nil {
		return defaults, opts, err
	}
	if fs.NArg() > 0 {
		return defaults, opts, errors.Errorf("[parseRunFlags] unexpected arguments: %v", fs.Args())
	}

	config := defaults
	if opts.configPath != "" {
		loaded, err := utils.LoadConfig(opts.configPath)
		if err != nil {
			return defaults, opts, err
		}
		config = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "pattern":
			config.Pattern = *pattern
		case "seed":
			config.Seed = *seed
		case "generations":
			config.MaxGenerations = *generations
		case "frame":
			config.FrameRate = utils.Duration(*frame)
		case "parallel":
			config.UseParallel = *parallel
		case "stats":
			config.StatsFile = *stats
		case "stop-on-cycle":
			config.StopOnCycle = *stopOnCycle
		case "log-format":
			config.LogFormat = *logFormat
		case "log-level":
			config.LogLevel = *logLevel
		}
	})

	return config, opts, config.Validate()
}

// runCommand executes "life run" and returns the process exit code
func runCommand(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	config, opts, err := parseRunFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	logger := newLogger(stderr, config.LogFormat, config.LogLevel)
	logger.Info("starting",
		"pattern", config.Pattern,
		"grid", config.GridSize(),
		"frame", time.Duration(config.FrameRate),
		"parallel", config.UseParallel,
		"window", opts.useWindow,
	)

	var renderer model.Renderer = model.NewTerminalRenderer(stdout, config.TerminalScale)
	sim, grid, err := newSimulation(config, renderer, logger)
	if err != nil {
		logger.Error("failed to initialize", "error", err)
		return 1
	}
	defer sim.close()

	if opts.useWindow {
		err = window.Run(ctx, sim.engine, grid, window.Options{
			Title:          "life",
			Scale:          config.CellSize,
			TPS:            ticksPerSecond(time.Duration(config.FrameRate)),
			MaxGenerations: config.MaxGenerations,
			OnFrame: func(generation int, g *model.Grid) {
				if err := sim.observe(generation, g, 0); err != nil {
					logger.Error("failed to record stats", "error", err)
				}
			},
		})
		if errors.Is(err, window.ErrUnavailable) {
			logger.Error("window mode unavailable, rebuild with -tags ebiten")
			return 1
		}
	} else {
		_, err = sim.run(ctx, grid)
	}
	if err != nil {
		logger.Error("simulation failed", "error", err)
		return 1
	}

	logger.Info("finished",
		"generations", sim.stats.TotalGenerations,
		"runtime", sim.stats.Runtime().Round(time.Millisecond),
		"avg_population", sim.stats.AveragePopulation,
	)
	return 0
}

// ticksPerSecond converts a frame delay into an ebiten tick rate
func ticksPerSecond(frame time.Duration) int {
	if frame <= 0 {
		return 60
	}
	return max(int(time.Second/frame), 1)
}

// dispatch routes the subcommand and returns the process exit code
func dispatch(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}
	switch args[0] {
	case "run":
		return runCommand(ctx, args[1:], stdout, stderr)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
		return 2
	}
}

func main() {
	// Ctrl+C stops the loop after the current frame
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := dispatch(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
