package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/danmuck/aocctl/internal/config"
	"github.com/danmuck/aocctl/internal/inputs"
	"github.com/danmuck/aocctl/internal/puzzles"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tINPUT")
			for _, meta := range a.runner.Registry().ListMetadata() {
				cached := "-"
				if a.store.Cached(meta.Day) {
					cached = "cached"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", meta.ID, meta.Title, cached)
			}
			return w.Flush()
		},
	}
}

func newSolveCmd(a *app) *cobra.Command {
	var (
		partFlag  string
		inputPath string
		example   bool
	)
	cmd := &cobra.Command{
		Use:   "solve <day>",
		Short: "Solve one day against its input, a file, stdin or the example",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			solver, err := a.lookup(args[0])
			if err != nil {
				return err
			}
			parts := []puzzles.Part{puzzles.PartOne, puzzles.PartTwo}
			if partFlag != "" {
				part, err := puzzles.ParsePart(partFlag)
				if err != nil {
					return err
				}
				parts = []puzzles.Part{part}
			}
			if example && inputPath != "" {
				return errors.New("--example and --input are mutually exclusive")
			}

			id := solver.Metadata().ID
			var shared string
			if !example {
				if shared, err = a.readInput(cmd, solver.Metadata().Day, inputPath); err != nil {
					return err
				}
			}
			for _, part := range parts {
				input := shared
				if example {
					ex, err := a.runner.Example(id, part)
					if err != nil {
						return err
					}
					input = ex.Input
				}
				res, err := a.runner.Run(cmd.Context(), id, part, input)
				if err != nil {
					return err
				}
				printResult(cmd.OutOrStdout(), res)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&partFlag, "part", "p", "", "part to solve (1 or 2); both when empty")
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "input file, or - for stdin")
	cmd.Flags().BoolVarP(&example, "example", "e", false, "solve the embedded example")
	return cmd
}

// readInput loads a file, stdin when path is "-", or the store's input for day.
func (a *app) readInput(cmd *cobra.Command, day int, path string) (string, error) {
	switch path {
	case "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	case "":
		return a.store.Load(cmd.Context(), day)
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	}
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [day]",
		Short: "Verify solvers against their published examples",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ids []string
			if len(args) == 1 {
				solver, err := a.lookup(args[0])
				if err != nil {
					return err
				}
				ids = []string{solver.Metadata().ID}
			} else {
				for _, meta := range a.runner.Registry().ListMetadata() {
					ids = append(ids, meta.ID)
				}
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, id := range ids {
				reports, err := a.runner.CheckExamples(cmd.Context(), id)
				if err != nil && !errors.Is(err, puzzles.ErrExampleMismatch) {
					return err
				}
				for _, r := range reports {
					if r.Passed() {
						fmt.Fprintf(out, "PASS %s %s %s = %d\n", r.ID, r.Part, r.Example, r.Got)
						continue
					}
					failed++
					if r.Err != "" {
						fmt.Fprintf(out, "FAIL %s %s %s: %s\n", r.ID, r.Part, r.Example, r.Err)
					} else {
						fmt.Fprintf(out, "FAIL %s %s %s: got %d want %d\n", r.ID, r.Part, r.Example, r.Got, r.Want)
					}
				}
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d failing example(s)", puzzles.ErrExampleMismatch, failed)
			}
			return nil
		},
	}
}

func newAllCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Solve every registered day against its cached or fetched input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			results, err := a.runner.RunAll(cmd.Context(), a.store)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tPART\tANSWER\tELAPSED")
			for _, res := range results {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", res.ID, res.Part, res.Answer, res.Elapsed.Round(time.Microsecond))
			}
			fmt.Fprintf(w, "\t\t\t%s total\n", time.Since(start).Round(time.Microsecond))
			return w.Flush()
		},
	}
}

func newFetchCmd(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "fetch <day>",
		Short: "Download and cache the personal input for a day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := puzzles.ParseDay(args[0])
			if err != nil {
				return err
			}
			id := puzzles.FormatID(day)
			if a.store.Cached(day) && !force {
				fmt.Fprintf(cmd.OutOrStdout(), "%s already cached at %s\n", id, a.store.Path(day))
				return nil
			}
			input, err := a.store.Fetch(cmd.Context(), day)
			if err != nil {
				if errors.Is(err, inputs.ErrNoSession) {
					return fmt.Errorf("%w: set --session, %s or session_file", err, inputs.SessionEnv)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s cached at %s (%d bytes)\n", id, a.store.Path(day), len(input))
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "re-download even when cached")
	return cmd
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write or validate config files",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init <cli|server> <path>",
		Short: "Write a starter config",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteTemplate(args[1], args[0], force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s config to %s\n", args[0], args[1])
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	validateCmd := &cobra.Command{
		Use:   "validate <cli|server> <path>",
		Short: "Load a config file and report problems",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			switch args[0] {
			case "cli", "aocctl":
				_, err = loadCLIConfig(args[1])
			case "server", "aocd":
				_, err = config.LoadServerConfig(args[1])
			default:
				err = fmt.Errorf("unknown config kind: %s", args[0])
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "validated %s config at %s\n", args[0], args[1])
			return nil
		},
	}

	cmd.AddCommand(initCmd, validateCmd)
	return cmd
}

func printResult(w io.Writer, res puzzles.Result) {
	fmt.Fprintf(w, "%s %s: %d (%s)\n", res.ID, res.Part, res.Answer, res.Elapsed.Round(time.Microsecond))
}
