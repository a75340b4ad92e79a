package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func TestDispatch(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{"no command", nil, 2},
		{"help", []string{"help"}, 0},
		{"unknown", []string{"walk"}, 2},
		{"bad flag", []string{"run", "-nope"}, 2},
		{"invalid pattern", []string{"run", "-pattern", "gosper"}, 2},
		{"stray argument", []string{"run", "extra"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if got := dispatch(context.Background(), tt.args, &stdout, &stderr); got != tt.wantCode {
				t.Fatalf("exit code = %d, want %d (stderr: %s)", got, tt.wantCode, stderr.String())
			}
		})
	}
}

func TestParseRunFlagsLayersFileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	content := "pattern: glider\nseed: 5\nframe_rate: 10ms\nmax_generations: 30\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	config, opts, err := parseRunFlags([]string{"-config", path, "-seed", "8", "-parallel"}, io.Discard)
	if err != nil {
		t.Fatalf("parseRunFlags: %v", err)
	}
	if opts.configPath != path || opts.useWindow {
		t.Errorf("unexpected options %+v", opts)
	}
	if config.Pattern != "glider" || config.MaxGenerations != 30 {
		t.Errorf("file values lost: %+v", config)
	}
	if time.Duration(config.FrameRate) != 10*time.Millisecond {
		t.Errorf("FrameRate = %s, want 10ms", time.Duration(config.FrameRate))
	}
	if config.Seed != 8 || !config.UseParallel {
		t.Errorf("flags not applied: seed=%d parallel=%v", config.Seed, config.UseParallel)
	}
}

func TestRunCommandWritesFramesAndStats(t *testing.T) {
	statsPath := filepath.Join(t.TempDir(), "stats.csv")
	args := []string{"run",
		"-pattern", "glider",
		"-generations", "8",
		"-frame", "0s",
		"-stats", statsPath,
		"-log-level", "error",
	}

	var stdout, stderr bytes.Buffer
	if code := dispatch(context.Background(), args, &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Gen: 8 | Living: 5") {
		t.Fatalf("last frame header missing from output")
	}

	f, err := os.Open(statsPath)
	if err != nil {
		t.Fatalf("open stats: %v", err)
	}
	defer f.Close()
	records, err := utils.ReadStats(f)
	if err != nil {
		t.Fatalf("ReadStats: %v", err)
	}
	if len(records) != 9 {
		t.Fatalf("got %d records, want 9", len(records))
	}
	for i, rec := range records {
		if rec.Generation != i || rec.Population != 5 {
			t.Errorf("record %d = %+v", i, rec)
		}
	}
}

func newTestSimulation(t *testing.T, config utils.Config) (*simulation, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	renderer := &model.TerminalRenderer{Out: &out, Scale: 1}
	sim, _, err := newSimulation(config, renderer, newLogger(io.Discard, "text", "error"))
	if err != nil {
		t.Fatalf("newSimulation: %v", err)
	}
	sim.sleep = func(context.Context, time.Duration) {}
	t.Cleanup(sim.close)
	return sim, &out
}

func TestRunStopsOnCycle(t *testing.T) {
	config := utils.DefaultConfig()
	config.StopOnCycle = true
	sim, out := newTestSimulation(t, config)

	block, err := model.NewGrid(config.GridSize())
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}} {
		block.Set(c[0], c[1], true)
	}

	last, err := sim.run(context.Background(), block)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if last != 1 {
		t.Fatalf("stopped at generation %d, want 1", last)
	}
	if !strings.Contains(out.String(), "Status: Still") {
		t.Fatal("still life status missing from output")
	}
}

func TestRunStopsOnCanceledContext(t *testing.T) {
	sim, out := newTestSimulation(t, utils.DefaultConfig())
	grid, err := model.Glider(40)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	last, err := sim.run(ctx, grid)
	if err != nil || last != 0 {
		t.Fatalf("run = %d, %v; want 0, nil", last, err)
	}
	if out.Len() != 0 {
		t.Fatal("rendered a frame after cancellation")
	}
}

func TestTicksPerSecond(t *testing.T) {
	tests := map[time.Duration]int{
		0:                      60,
		50 * time.Millisecond:  20,
		2 * time.Second:        1,
		100 * time.Millisecond: 10,
	}
	for frame, want := range tests {
		if got := ticksPerSecond(frame); got != want {
			t.Errorf("ticksPerSecond(%s) = %d, want %d", frame, got, want)
		}
	}
}
