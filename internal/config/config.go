package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"season-sim/internal/lineup"
	"season-sim/internal/season"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk run configuration (YAML).
type Config struct {
	// RosterFile is a .csv or .yaml roster. Relative paths are resolved against
	// the config file's directory first, then the working directory.
	RosterFile string           `yaml:"roster_file"`
	Seed       int64            `yaml:"seed"`
	Sampling   string           `yaml:"sampling"`
	Selector   string           `yaml:"selector"`
	Output     OutputConfig     `yaml:"output"`
	MonteCarlo MonteCarloConfig `yaml:"montecarlo"`
	Log        LogConfig        `yaml:"log"`
}

type OutputConfig struct {
	CSV   string `yaml:"csv"`
	Quiet bool   `yaml:"quiet"`
}

type MonteCarloConfig struct {
	Iterations int `yaml:"iterations"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

const DefaultIterations = 1000

// Default is the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads the file and resolves the roster path, but does not
// apply defaults or validate.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if c.RosterFile != "" && !filepath.IsAbs(c.RosterFile) {
		cand := filepath.Join(filepath.Dir(path), c.RosterFile)
		if _, err := os.Stat(cand); err == nil {
			c.RosterFile = cand
		}
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Sampling == "" {
		c.Sampling = string(season.SamplingSequential)
	}
	if c.Selector == "" {
		c.Selector = "greedy"
	}
	if c.MonteCarlo.Iterations == 0 {
		c.MonteCarlo.Iterations = DefaultIterations
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if _, err := season.ParseSamplingMode(c.Sampling); err != nil {
		return fmt.Errorf("sampling: %w", err)
	}
	if _, ok := lineup.New(c.Selector); !ok {
		return fmt.Errorf("selector: unsupported selector %q", c.Selector)
	}
	if c.MonteCarlo.Iterations < 0 {
		return errors.New("montecarlo.iterations must be >= 0")
	}
	return nil
}

// Engine builds a season engine from the config. Sink and logger are left to the caller.
func (c *Config) Engine() (*season.Engine, error) {
	mode, err := season.ParseSamplingMode(c.Sampling)
	if err != nil {
		return nil, err
	}
	sel, ok := lineup.New(c.Selector)
	if !ok {
		return nil, fmt.Errorf("unsupported selector %q", c.Selector)
	}
	e := season.New()
	e.Sampling = mode
	e.Selector = sel
	return e, nil
}
