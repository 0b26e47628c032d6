package puzzles

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/danmuck/aocctl/internal/observability"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Result is one solved puzzle half.
type Result struct {
	ID      string        `json:"id"`
	Day     int           `json:"day"`
	Part    Part          `json:"part"`
	Answer  int           `json:"answer"`
	Elapsed time.Duration `json:"elapsed"`
}

// ExampleReport is the outcome of running one part against its example.
type ExampleReport struct {
	ID      string `json:"id"`
	Part    Part   `json:"part"`
	Example string `json:"example"`
	Want    int    `json:"want"`
	Got     int    `json:"got"`
	Err     string `json:"error,omitempty"`
}

// Passed reports whether the example produced its published answer.
func (r ExampleReport) Passed() bool {
	return r.Err == "" && r.Got == r.Want
}

// RunnerConfig tunes batch execution.
type RunnerConfig struct {
	// Concurrency bounds RunAll; values <= 0 use GOMAXPROCS.
	Concurrency int
	Logger      *zerolog.Logger
}

// Runner executes registered solvers with timing, logging and metrics.
type Runner struct {
	registry    *Registry
	concurrency int
	logger      zerolog.Logger
}

// NewRunner binds a runner to a registry.
func NewRunner(registry *Registry, cfg RunnerConfig) *Runner {
	if registry == nil {
		registry = NewRegistry()
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}
	logger := log.Logger
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}
	return &Runner{
		registry:    registry,
		concurrency: concurrency,
		logger:      logger.With().Str("component", "runner").Logger(),
	}
}

// Registry returns the registry the runner resolves against.
func (r *Runner) Registry() *Registry {
	return r.registry
}

// Run solves one part of one puzzle.
func (r *Runner) Run(ctx context.Context, id string, part Part, input string) (Result, error) {
	solver, ok := r.registry.Resolve(id)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrPuzzleNotFound, id)
	}
	return r.run(ctx, solver, part, input)
}

func (r *Runner) run(ctx context.Context, solver Solver, part Part, input string) (Result, error) {
	meta := solver.Metadata()
	if !part.Valid() {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidPart, int(part))
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	start := time.Now()
	answer, err := solver.Solve(ctx, part, input)
	elapsed := time.Since(start)

	if err != nil {
		observability.RecordSolve(meta.ID, part.String(), "error", elapsed)
		r.logger.Warn().Err(err).Str("puzzle", meta.ID).Stringer("part", part).Msg("solve failed")
		return Result{}, fmt.Errorf("%s %s: %w", meta.ID, part, err)
	}
	observability.RecordSolve(meta.ID, part.String(), "ok", elapsed)
	r.logger.Debug().
		Str("puzzle", meta.ID).
		Stringer("part", part).
		Int("answer", answer).
		Dur("elapsed", elapsed).
		Msg("solved")

	return Result{
		ID:      meta.ID,
		Day:     meta.Day,
		Part:    part,
		Answer:  answer,
		Elapsed: elapsed,
	}, nil
}

// RunAll solves both parts of every registered puzzle, loading inputs from src.
// Results are ordered by day then part. The first failure cancels the rest.
func (r *Runner) RunAll(ctx context.Context, src InputSource) ([]Result, error) {
	metas := r.registry.ListMetadata()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	var mu sync.Mutex
	results := make([]Result, 0, len(metas)*2)

	for _, meta := range metas {
		meta := meta
		solver, _ := r.registry.Resolve(meta.ID)
		g.Go(func() error {
			input, err := src.Load(gctx, meta.Day)
			if err != nil {
				return fmt.Errorf("load input %s: %w", meta.ID, err)
			}
			for _, spec := range solver.Parts() {
				res, err := r.run(gctx, solver, spec.Part, input)
				if err != nil {
					return err
				}
				mu.Lock()
				results = append(results, res)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Day != results[j].Day {
			return results[i].Day < results[j].Day
		}
		return results[i].Part < results[j].Part
	})
	return results, nil
}

// Example returns the embedded example for one part.
func (r *Runner) Example(id string, part Part) (Example, error) {
	solver, ok := r.registry.Resolve(id)
	if !ok {
		return Example{}, fmt.Errorf("%w: %s", ErrPuzzleNotFound, id)
	}
	for _, spec := range solver.Parts() {
		if spec.Part == part && spec.Example != nil {
			return *spec.Example, nil
		}
	}
	return Example{}, fmt.Errorf("%w: %s %s", ErrNoExample, id, part)
}

// CheckExamples runs every part of a puzzle against its published example.
// A mismatch or solver failure yields ErrExampleMismatch alongside the reports.
func (r *Runner) CheckExamples(ctx context.Context, id string) ([]ExampleReport, error) {
	solver, ok := r.registry.Resolve(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPuzzleNotFound, id)
	}

	var reports []ExampleReport
	failed := 0
	for _, spec := range solver.Parts() {
		if spec.Example == nil {
			continue
		}
		report := ExampleReport{
			ID:      id,
			Part:    spec.Part,
			Example: spec.Example.Name,
			Want:    spec.Example.Want,
		}
		res, err := r.run(ctx, solver, spec.Part, spec.Example.Input)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return reports, err
			}
			report.Err = err.Error()
		} else {
			report.Got = res.Answer
		}
		if !report.Passed() {
			failed++
		}
		reports = append(reports, report)
	}
	if failed > 0 {
		return reports, fmt.Errorf("%w: %s has %d failing example(s)", ErrExampleMismatch, id, failed)
	}
	return reports, nil
}
