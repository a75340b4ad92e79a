package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid config")

// Duration is a time.Duration that reads "50ms"-style strings or nanosecond numbers
type Duration time.Duration

func (d *Duration) set(v any) error {
	switch val := v.(type) {
	case string:
		parsed, err := time.ParseDuration(val)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
	case float64:
		*d = Duration(int64(val))
	case int:
		*d = Duration(val)
	default:
		return errors.Errorf("unsupported duration value %v", v)
	}
	return nil
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	return d.set(v)
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}
	return d.set(v)
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Config holds the configuration for the game
type Config struct {
	DisplaySize    int      `json:"display_size" yaml:"display_size"`
	CellSize       int      `json:"cell_size" yaml:"cell_size"`
	FrameRate      Duration `json:"frame_rate" yaml:"frame_rate"`
	Pattern        string   `json:"pattern" yaml:"pattern"`
	Seed           int64    `json:"seed" yaml:"seed"`
	MaxGenerations int      `json:"max_generations" yaml:"max_generations"`
	UseParallel    bool     `json:"use_parallel" yaml:"use_parallel"`
	Workers        int      `json:"workers" yaml:"workers"`
	UseMemoryPool  bool     `json:"use_memory_pool" yaml:"use_memory_pool"`
	StopOnCycle    bool     `json:"stop_on_cycle" yaml:"stop_on_cycle"`
	TerminalScale  int      `json:"terminal_scale" yaml:"terminal_scale"`
	StatsFile      string   `json:"stats_file" yaml:"stats_file"`
	LogFormat      string   `json:"log_format" yaml:"log_format"`
	LogLevel       string   `json:"log_level" yaml:"log_level"`
}

// DefaultConfig returns the classic 200px display with 5px cells (a 40x40 grid)
func DefaultConfig() Config {
	return Config{
		DisplaySize:    200,
		CellSize:       5,
		FrameRate:      Duration(50 * time.Millisecond),
		Pattern:        "infinite",
		Seed:           0,
		MaxGenerations: 0,
		UseParallel:    false,
		UseMemoryPool:  true,
		StopOnCycle:    false,
		TerminalScale:  2,
		LogFormat:      "text",
		LogLevel:       "info",
	}
}

// GridSize returns the side length of the grid in cells
func (c Config) GridSize() int {
	if c.CellSize <= 0 {
		return 0
	}
	return c.DisplaySize / c.CellSize
}

// Validate reports the first setting that cannot run
func (c Config) Validate() error {
	switch {
	case c.CellSize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] cell_size must be positive, got %d", c.CellSize)
	case c.DisplaySize < c.CellSize:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] display_size %d smaller than cell_size %d", c.DisplaySize, c.CellSize)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame_rate must not be negative, got %s", time.Duration(c.FrameRate))
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] workers must not be negative, got %d", c.Workers)
	}
	switch strings.ToLower(c.Pattern) {
	case "random", "glider", "infinite":
	default:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown pattern %q", c.Pattern)
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown log_format %q", c.LogFormat)
	}
	return nil
}

// LoadConfig loads configuration from a JSON or YAML file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}
