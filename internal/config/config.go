// Package config loads warforbots settings from an HCL file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is the config file read when none is given
const DefaultFile = "warforbots.hcl"

// Config represents the complete configuration
type Config struct {
	Log      *LogSettings      `hcl:"log,block"`
	Play     *PlaySettings     `hcl:"play,block"`
	Simulate *SimulateSettings `hcl:"simulate,block"`
	History  *HistorySettings  `hcl:"history,block"`
}

// LogSettings controls logging
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"` // Where the TUI sends its logs
}

// PlaySettings controls the interactive game
type PlaySettings struct {
	IntervalMS int `hcl:"interval_ms,optional"` // Auto-play delay between rounds
	Batch      int `hcl:"batch,optional"`       // Rounds played by the fast-forward key
}

// SimulateSettings controls batch simulation
type SimulateSettings struct {
	Games      int `hcl:"games,optional"`
	Workers    int `hcl:"workers,optional"`
	RoundLimit int `hcl:"round_limit,optional"`
	TimeoutMS  int `hcl:"timeout_ms,optional"`
}

// HistorySettings controls transcript export
type HistorySettings struct {
	Dir string `hcl:"dir,optional"` // Empty disables transcripts
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Log: &LogSettings{
			Level: "info",
			File:  "warforbots.log",
		},
		Play: &PlaySettings{
			IntervalMS: 250,
			Batch:      100,
		},
		Simulate: &SimulateSettings{
			Games:      1000,
			Workers:    0,
			RoundLimit: 10000,
			TimeoutMS:  5000,
		},
		History: &HistorySettings{},
	}
}

// Load reads configuration from filename. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	def := Default()

	if c.Log == nil {
		c.Log = def.Log
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.File == "" {
		c.Log.File = def.Log.File
	}

	if c.Play == nil {
		c.Play = def.Play
	}
	if c.Play.IntervalMS == 0 {
		c.Play.IntervalMS = def.Play.IntervalMS
	}
	if c.Play.Batch == 0 {
		c.Play.Batch = def.Play.Batch
	}

	if c.Simulate == nil {
		c.Simulate = def.Simulate
	}
	if c.Simulate.Games == 0 {
		c.Simulate.Games = def.Simulate.Games
	}
	if c.Simulate.RoundLimit == 0 {
		c.Simulate.RoundLimit = def.Simulate.RoundLimit
	}
	if c.Simulate.TimeoutMS == 0 {
		c.Simulate.TimeoutMS = def.Simulate.TimeoutMS
	}

	if c.History == nil {
		c.History = def.History
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	if c.Play.IntervalMS <= 0 {
		return fmt.Errorf("play: interval_ms must be positive, got %d", c.Play.IntervalMS)
	}
	if c.Play.Batch <= 0 {
		return fmt.Errorf("play: batch must be positive, got %d", c.Play.Batch)
	}
	if c.Simulate.Games <= 0 {
		return fmt.Errorf("simulate: games must be positive, got %d", c.Simulate.Games)
	}
	if c.Simulate.Workers < 0 {
		return fmt.Errorf("simulate: workers cannot be negative, got %d", c.Simulate.Workers)
	}
	if c.Simulate.RoundLimit < 0 {
		return fmt.Errorf("simulate: round_limit cannot be negative, got %d", c.Simulate.RoundLimit)
	}
	if c.Simulate.TimeoutMS < 0 {
		return fmt.Errorf("simulate: timeout_ms cannot be negative, got %d", c.Simulate.TimeoutMS)
	}
	return nil
}

// Level returns the parsed log level
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Interval returns the auto-play delay
func (c *Config) Interval() time.Duration {
	return time.Duration(c.Play.IntervalMS) * time.Millisecond
}

// Timeout returns the per-game simulation timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Simulate.TimeoutMS) * time.Millisecond
}
