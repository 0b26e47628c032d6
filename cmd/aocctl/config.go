package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/aocctl/internal/inputs"
	"github.com/danmuck/aocctl/internal/logging"
	"github.com/danmuck/aocctl/internal/puzzles/builtin"
	"github.com/danmuck/aocctl/internal/puzzles/day02"
	"github.com/rs/zerolog"
)

// cliConfig is the resolved aocctl configuration.
type cliConfig struct {
	Year          int
	InputDir      string
	SessionFile   string
	Concurrency   int
	LogLevel      zerolog.Level
	Bag           day02.Cubes
	Expansion     int
	FetchTimeout  time.Duration
	RetryAttempts int
}

type fileConfig struct {
	Year          int         `toml:"year"`
	InputDir      string      `toml:"input_dir"`
	SessionFile   string      `toml:"session_file"`
	Concurrency   int         `toml:"concurrency"`
	LogLevel      string      `toml:"log_level"`
	FetchTimeout  string      `toml:"fetch_timeout"`
	RetryAttempts int         `toml:"retry_attempts"`
	Expansion     int         `toml:"expansion"`
	Bag           day02.Cubes `toml:"bag"`
}

func defaultCLIConfig() cliConfig {
	opts := builtin.DefaultOptions()
	return cliConfig{
		Year:          inputs.DefaultYear,
		InputDir:      inputs.DefaultRoot,
		SessionFile:   "local/session",
		LogLevel:      zerolog.InfoLevel,
		Bag:           opts.Bag,
		Expansion:     opts.Expansion,
		FetchTimeout:  15 * time.Second,
		RetryAttempts: 3,
	}
}

func loadCLIConfig(path string) (cliConfig, error) {
	cfg := defaultCLIConfig()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return cliConfig{}, fmt.Errorf("load aocctl config: %w", err)
	}

	if meta.IsDefined("year") {
		if raw.Year < 2015 {
			return cliConfig{}, fmt.Errorf("year %d predates advent of code", raw.Year)
		}
		cfg.Year = raw.Year
	}

	if meta.IsDefined("input_dir") {
		if dir := strings.TrimSpace(raw.InputDir); dir != "" {
			cfg.InputDir = dir
		}
	}

	if meta.IsDefined("session_file") {
		cfg.SessionFile = strings.TrimSpace(raw.SessionFile)
	}

	if meta.IsDefined("concurrency") {
		if raw.Concurrency < 0 {
			return cliConfig{}, fmt.Errorf("concurrency must be >= 0")
		}
		cfg.Concurrency = raw.Concurrency
	}

	if meta.IsDefined("log_level") {
		lvl, ok := logging.ParseLevel(raw.LogLevel)
		if !ok {
			return cliConfig{}, fmt.Errorf("unknown log_level %q", raw.LogLevel)
		}
		cfg.LogLevel = lvl
	}

	if meta.IsDefined("fetch_timeout") {
		d, err := time.ParseDuration(strings.TrimSpace(raw.FetchTimeout))
		if err != nil {
			return cliConfig{}, fmt.Errorf("parse fetch_timeout: %w", err)
		}
		cfg.FetchTimeout = d
	}

	if meta.IsDefined("retry_attempts") {
		if raw.RetryAttempts < 1 {
			return cliConfig{}, fmt.Errorf("retry_attempts must be >= 1")
		}
		cfg.RetryAttempts = raw.RetryAttempts
	}

	if meta.IsDefined("expansion") {
		if raw.Expansion < 1 {
			return cliConfig{}, fmt.Errorf("expansion must be >= 1")
		}
		cfg.Expansion = raw.Expansion
	}

	// bag colours overlay one at a time so a partial table keeps the defaults
	if meta.IsDefined("bag", "red") {
		cfg.Bag.Red = raw.Bag.Red
	}
	if meta.IsDefined("bag", "green") {
		cfg.Bag.Green = raw.Bag.Green
	}
	if meta.IsDefined("bag", "blue") {
		cfg.Bag.Blue = raw.Bag.Blue
	}

	return cfg, nil
}

func (c cliConfig) builtinOptions() builtin.Options {
	return builtin.Options{Bag: c.Bag, Expansion: c.Expansion}
}
