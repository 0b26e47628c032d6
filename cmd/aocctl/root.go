package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/danmuck/aocctl/internal/inputs"
	"github.com/danmuck/aocctl/internal/logging"
	"github.com/danmuck/aocctl/internal/puzzles"
	"github.com/danmuck/aocctl/internal/puzzles/builtin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app holds state shared by every subcommand after the root pre-run.
type app struct {
	configPath string
	logLevel   string
	session    string

	cfg    cliConfig
	runner *puzzles.Runner
	store  *inputs.Store
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "aocctl",
		Short:         "Solve Advent of Code 2023 puzzles",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to an aocctl TOML config")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override the configured log level")
	root.PersistentFlags().StringVar(&a.session, "session", "", "adventofcode.com session token (default $AOC_SESSION or session_file)")

	root.AddCommand(
		newListCmd(a),
		newSolveCmd(a),
		newCheckCmd(a),
		newAllCmd(a),
		newFetchCmd(a),
		newConfigCmd(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	a.cfg = defaultCLIConfig()
	if strings.TrimSpace(a.configPath) != "" {
		cfg, err := loadCLIConfig(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if a.logLevel != "" {
		lvl, ok := logging.ParseLevel(a.logLevel)
		if !ok {
			return fmt.Errorf("unknown log level %q", a.logLevel)
		}
		a.cfg.LogLevel = lvl
	}

	lc := logging.DefaultConfig(logging.ProfileRuntime)
	lc.Out = cmd.ErrOrStderr()
	lc.Timestamp = false
	lc.Level = a.cfg.LogLevel
	if lvl, ok := logging.ParseLevel(os.Getenv(logging.EnvLogLevel)); ok && a.logLevel == "" {
		lc.Level = lvl
	}
	logging.Apply(lc)

	registry, err := builtin.NewRegistry(a.cfg.builtinOptions())
	if err != nil {
		return err
	}
	a.runner = puzzles.NewRunner(registry, puzzles.RunnerConfig{Concurrency: a.cfg.Concurrency})

	session, err := inputs.ResolveSession(a.session, a.cfg.SessionFile)
	if err != nil {
		return err
	}
	a.store = inputs.NewStore(inputs.Config{
		Root:     a.cfg.InputDir,
		Year:     a.cfg.Year,
		Session:  session,
		Timeout:  a.cfg.FetchTimeout,
		Attempts: a.cfg.RetryAttempts,
	})
	log.Debug().
		Str("config", a.configPath).
		Str("input_dir", a.cfg.InputDir).
		Int("year", a.cfg.Year).
		Bool("session", session != "").
		Msg("aocctl ready")
	return nil
}

// lookup resolves a loose day argument with a hint on failure.
func (a *app) lookup(raw string) (puzzles.Solver, error) {
	solver, err := a.runner.Registry().Lookup(raw)
	if errors.Is(err, puzzles.ErrPuzzleNotFound) {
		return nil, fmt.Errorf("%w (see `aocctl list`)", err)
	}
	return solver, err
}
