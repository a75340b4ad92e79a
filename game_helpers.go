package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// simulation is the host loop: render, advance, swap, sleep
type simulation struct {
	config   utils.Config
	engine   *model.Engine
	renderer model.Renderer
	stats    *utils.Stats
	statsOut *utils.StatsWriter
	cycles   *model.CycleDetector
	logger   *slog.Logger
	sleep    func(context.Context, time.Duration)

	// last describes the most recently observed generation
	last frameInfo
}

type frameInfo struct {
	generation  int
	livingCells int
	density     float64
	period      int
}

// newLogger builds the process logger from the configured format and level
func newLogger(w io.Writer, format, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// initializeGame builds the engine and the first generation from config
func initializeGame(config utils.Config) (*model.Engine, *model.Grid, error) {
	engine := &model.Engine{
		Parallel: config.UseParallel,
		Workers:  config.Workers,
	}
	if config.UseMemoryPool {
		engine.Pool = model.NewGridPool()
	}

	policy, err := model.ParsePolicy(config.Pattern)
	if err != nil {
		return nil, nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	grid, err := model.MakeInitialGrid(policy, config.GridSize(), model.NewRNG(seed))
	if err != nil {
		return nil, nil, errors.Wrap(err, "[initializeGame] failed to build initial grid")
	}
	return engine, grid, nil
}

// sleepFrame waits d or until ctx is done
func sleepFrame(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// statusLine summarizes the displayed generation above the terminal frame
func (s *simulation) statusLine() string {
	f := s.last
	status := "Active"
	switch {
	case f.livingCells == 0:
		status = "Extinct"
	case f.period == 1:
		status = "Still"
	case f.period > 1:
		status = fmt.Sprintf("Oscillating (period %d)", f.period)
	}
	return fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s | %.1f gen/sec",
		f.generation, f.livingCells, f.density, status, s.stats.GenerationsPerSecond)
}

// observe records stats for the displayed generation
func (s *simulation) observe(generation int, grid *model.Grid, stepTime time.Duration) error {
	livingCells := grid.CountLivingCells()
	size := grid.Size()

	s.stats.Update(generation, livingCells, stepTime)
	s.last = frameInfo{
		generation:  generation,
		livingCells: livingCells,
		density:     float64(livingCells) / float64(size*size) * 100,
		period:      s.cycles.Observe(grid),
	}

	return s.statsOut.Write(utils.GenerationRecord{
		Generation: generation,
		Population: livingCells,
		Density:    s.last.density,
		Period:     s.last.period,
		StepMicros: stepTime.Microseconds(),
	})
}

// run displays and advances generations until ctx is done, the generation
// limit is hit, or a cycle is detected with StopOnCycle set. It returns the
// number of the last displayed generation.
func (s *simulation) run(ctx context.Context, grid *model.Grid) (int, error) {
	var (
		generation int
		stepTime   time.Duration
	)
	defer func() { s.engine.Release(grid) }()

	for {
		if ctx.Err() != nil {
			s.logger.Info("shutting down", "generation", generation)
			return generation, nil
		}

		if err := s.observe(generation, grid, stepTime); err != nil {
			return generation, err
		}
		if err := s.renderer.Render(grid); err != nil {
			return generation, errors.Wrap(err, "[run] failed to render generation")
		}

		if s.config.MaxGenerations > 0 && generation >= s.config.MaxGenerations {
			s.logger.Info("reached maximum generations", "limit", s.config.MaxGenerations)
			return generation, nil
		}
		if s.config.StopOnCycle && (s.last.period > 0 || s.last.livingCells == 0) {
			s.logger.Info("simulation settled", "generation", generation, "period", s.last.period, "population", s.last.livingCells)
			return generation, nil
		}

		start := time.Now()
		next, err := s.engine.Step(ctx, grid)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}
			return generation, err
		}
		stepTime = time.Since(start)
		s.logger.Debug("advanced", "generation", generation+1, "step", stepTime)

		s.engine.Release(grid)
		grid = next
		generation++

		s.sleep(ctx, time.Duration(s.config.FrameRate))
	}
}

// newSimulation wires the host loop around a renderer
func newSimulation(config utils.Config, renderer model.Renderer, logger *slog.Logger) (*simulation, *model.Grid, error) {
	engine, grid, err := initializeGame(config)
	if err != nil {
		return nil, nil, err
	}
	statsOut, err := utils.CreateStatsFile(config.StatsFile)
	if err != nil {
		return nil, nil, err
	}
	s := &simulation{
		config:   config,
		engine:   engine,
		renderer: renderer,
		stats:    utils.NewStats(),
		statsOut: statsOut,
		cycles:   model.NewCycleDetector(0),
		logger:   logger,
		sleep:    sleepFrame,
	}
	if tr, ok := renderer.(*model.TerminalRenderer); ok && tr.Header == nil {
		tr.Header = s.statusLine
	}
	return s, grid, nil
}

// close flushes and closes the stats output
func (s *simulation) close() {
	if err := s.statsOut.Close(); err != nil {
		s.logger.Error("failed to close stats file", "error", err)
	}
}
