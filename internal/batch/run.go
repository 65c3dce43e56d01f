package batch

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fulgidus/basiccalc/pkg/calc"
)

// Result is the outcome of one input of one job.
type Result struct {
	Operation Operation `yaml:"operation" json:"operation"`
	Input     uint32    `yaml:"input" json:"input"`
	Output    uint32    `yaml:"output" json:"output"`
	Wrapped   bool      `yaml:"wrapped,omitempty" json:"wrapped,omitempty"`
}

// Evaluate applies op to n.
func Evaluate(op Operation, n uint32) (Result, error) {
	r := Result{Operation: op, Input: n}
	switch op {
	case OpClassify:
		r.Output = calc.ClassifyNumber(n)
	case OpFactorial:
		r.Output = calc.Factorial(n)
		r.Wrapped = calc.FactorialOverflows(n)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
	return r, nil
}

// Runner evaluates jobs with a bounded number of goroutines.
type Runner struct {
	workers int
	logger  *zap.Logger
}

// NewRunner creates a Runner. workers < 1 is treated as 1; a nil logger is replaced with a no-op logger.
func NewRunner(workers int, logger *zap.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{workers: workers, logger: logger}
}

// Run evaluates every input of every job. Results follow job order, then
// input order. It stops scheduling work once ctx is done.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	total := 0
	for _, j := range jobs {
		total += len(j.Inputs)
	}
	results := make([]Result, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	idx := 0
	for _, j := range jobs {
		for _, n := range j.Inputs {
			if gctx.Err() != nil {
				break
			}
			slot, op, n := idx, j.Operation, n
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				res, err := Evaluate(op, n)
				if err != nil {
					return err
				}
				results[slot] = res
				r.logger.Debug("evaluated",
					zap.String("operation", string(op)),
					zap.Uint32("input", n),
					zap.Uint32("output", res.Output),
					zap.Bool("wrapped", res.Wrapped),
				)
				return nil
			})
			idx++
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.logger.Info("batch complete",
		zap.Int("jobs", len(jobs)),
		zap.Int("results", len(results)),
		zap.Int("workers", r.workers),
	)
	return results, nil
}
