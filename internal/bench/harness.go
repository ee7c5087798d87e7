package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"knapsack/internal/domain"
	"knapsack/internal/logger"
)

// DefaultRepetitions is how many times each solver runs per benchmark.
const DefaultRepetitions = 3

// Config controls a benchmark run.
type Config struct {
	Repetitions int
	// Timeout bounds a single repetition of a single solver. Zero disables it.
	Timeout time.Duration
	// MaxItems maps a solver name to the largest item count it is run on.
	// Solvers without an entry, or with a non-positive one, always run.
	MaxItems map[string]int
}

// DefaultGuards returns the item limits for the two exponential solvers.
func DefaultGuards() map[string]int {
	return map[string]int{"exhaustive": 22, "recursive": 27}
}

// Harness runs a fixed list of solvers against a problem and times them.
type Harness struct {
	solvers []domain.Solver
	cfg     Config
	now     func() time.Time
	newID   func() string
}

var _ domain.BenchService = (*Harness)(nil)

// NewHarness creates a harness for the given solvers, run in order.
func NewHarness(solvers []domain.Solver, cfg Config) *Harness {
	if cfg.Repetitions <= 0 {
		cfg.Repetitions = DefaultRepetitions
	}
	if cfg.MaxItems == nil {
		cfg.MaxItems = DefaultGuards()
	}
	return &Harness{solvers: solvers, cfg: cfg, now: time.Now, newID: uuid.NewString}
}

// Run benchmarks every solver. A solver that is guarded out, times out or fails
// gets a non-ok row and the run continues; only invalid input or cancellation
// of ctx fails the whole run.
func (h *Harness) Run(ctx context.Context, capacity int, items domain.ItemSet) (domain.Report, error) {
	if err := domain.ValidateCapacity(capacity); err != nil {
		return domain.Report{}, err
	}
	report := domain.Report{
		ID:          h.newID(),
		Capacity:    capacity,
		ItemCount:   len(items),
		Repetitions: h.cfg.Repetitions,
		StartedAt:   h.now(),
		Results:     make([]domain.Measurement, 0, len(h.solvers)),
	}
	logger.RunStarted(report.ID, capacity, len(items), h.cfg.Repetitions)
	for _, s := range h.solvers {
		m := h.runOne(ctx, s, capacity, items)
		if err := ctx.Err(); err != nil {
			return domain.Report{}, err
		}
		report.Results = append(report.Results, m)
	}
	return report, nil
}

func (h *Harness) runOne(ctx context.Context, s domain.Solver, capacity int, items domain.ItemSet) domain.Measurement {
	name := s.Name()
	m := domain.Measurement{Solver: name}
	if limit := h.cfg.MaxItems[name]; limit > 0 && len(items) > limit {
		m.Status = domain.StatusSkipped
		m.Reason = fmt.Sprintf("%d items exceeds limit %d", len(items), limit)
		logger.Skipped(name, m.Reason)
		return m
	}

	var sol domain.Solution
	timing, err := measure(h.cfg.Repetitions, h.now, func() error {
		runCtx, cancel := h.runContext(ctx)
		defer cancel()
		var err error
		sol, err = s.Solve(runCtx, capacity, items)
		return err
	})
	for i, d := range timing.Runs {
		logger.Repetition(name, i+1, h.cfg.Repetitions, d)
	}
	switch {
	case errors.Is(err, domain.ErrTooManyItems), errors.Is(err, domain.ErrTableTooLarge):
		m.Status = domain.StatusSkipped
		m.Reason = err.Error()
		logger.Skipped(name, m.Reason)
		return m
	case errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
		m.Status = domain.StatusTimeout
		m.Timing = &timing
		m.Reason = fmt.Sprintf("exceeded %s", h.cfg.Timeout)
		logger.TimedOut(name, h.cfg.Timeout)
		return m
	case err != nil:
		m.Status = domain.StatusFailed
		m.Reason = err.Error()
		logger.Failed(name, err)
		return m
	}
	if err := sol.Validate(capacity, items); err != nil {
		m.Status = domain.StatusFailed
		m.Reason = err.Error()
		logger.Failed(name, fmt.Errorf("invalid solution: %w", err))
		return m
	}

	m.Status = domain.StatusOK
	m.Solution = &sol
	m.Timing = &timing
	logger.Finished(name, sol.Value, timing.Median)
	return m
}

func (h *Harness) runContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.cfg.Timeout > 0 {
		return context.WithTimeout(ctx, h.cfg.Timeout)
	}
	return context.WithCancel(ctx)
}
