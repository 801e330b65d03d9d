package breakeven

import (
	"context"

	"github.com/reisim/property-calculator/internal/calculation"
	"github.com/reisim/property-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Solver runs bisection searches over a single configuration input. The
// objective - cumulative post-tax cash flow over the projection horizon - is
// monotone in every supported dimension, so bisection always converges when
// the target is bracketed.
type Solver struct {
	engine  *calculation.CalculationEngine
	options SolverOptions
}

// NewSolver creates a solver with default options.
func NewSolver() *Solver {
	return &Solver{
		engine:  calculation.NewCalculationEngine(),
		options: DefaultSolverOptions(),
	}
}

// WithOptions replaces the solver options.
func (s *Solver) WithOptions(opts SolverOptions) *Solver {
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultSolverOptions().MaxIterations
	}
	if opts.Tolerance.LessThanOrEqual(decimal.Zero) {
		opts.Tolerance = DefaultSolverOptions().Tolerance
	}
	s.options = opts
	return s
}

// Solve runs the search for one request. The context cancels long searches.
func (s *Solver) Solve(ctx context.Context, req Request) (*Result, error) {
	if req.Config == nil {
		return nil, &BreakEvenError{Dimension: req.Dimension, Reason: "no configuration"}
	}
	if !req.Dimension.Valid() {
		return nil, &BreakEvenError{Dimension: req.Dimension, Reason: "unknown dimension"}
	}
	if req.Config.Empty() {
		return nil, &BreakEvenError{Dimension: req.Dimension, Reason: "configuration has no price or rent"}
	}

	lo, hi, err := s.bracket(req)
	if err != nil {
		return nil, err
	}

	// Objective rises with occupancy and rent, falls with price. Normalize
	// the search so f(lo) <= target <= f(hi).
	increasing := req.Dimension != DimensionPrice

	fLo := s.evaluate(req, lo)
	fHi := s.evaluate(req, hi)
	if !increasing {
		lo, hi = hi, lo
		fLo, fHi = fHi, fLo
	}
	if fHi.LessThan(req.TargetCumulative) {
		return nil, &BreakEvenError{Dimension: req.Dimension, Reason: "target not attainable within search range"}
	}
	if fLo.GreaterThanOrEqual(req.TargetCumulative) {
		// Every value in the bracket attains the target; the worst-case
		// edge is the degenerate break-even.
		return &Result{
			Dimension:          req.Dimension,
			Value:              lo,
			AchievedCumulative: fLo,
			Converged:          true,
		}, nil
	}

	var mid, fMid decimal.Decimal
	result := &Result{Dimension: req.Dimension}
	two := decimal.NewFromInt(2)
	for i := 0; i < s.options.MaxIterations; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result.Iterations = i + 1

		mid = lo.Add(hi).Div(two)
		fMid = s.evaluate(req, mid)

		if fMid.Sub(req.TargetCumulative).Abs().LessThanOrEqual(s.options.Tolerance) {
			result.Value = mid
			result.AchievedCumulative = fMid
			result.Converged = true
			return result, nil
		}
		if fMid.LessThan(req.TargetCumulative) {
			lo = mid
		} else {
			hi = mid
		}
	}

	result.Value = mid
	result.AchievedCumulative = fMid
	return result, nil
}

// bracket returns the initial search interval for a dimension, in the
// dimension's natural orientation (lo < hi numerically).
func (s *Solver) bracket(req Request) (lo, hi decimal.Decimal, err error) {
	switch req.Dimension {
	case DimensionOccupancy:
		return decimal.Zero, decimal.NewFromInt(100), nil
	case DimensionRent:
		base := req.Config.Income.MonthlyRent
		return decimal.Zero, base.Mul(decimal.NewFromInt(10)), nil
	case DimensionPrice:
		base := req.Config.Property.Price
		return decimal.Zero, base.Mul(decimal.NewFromInt(10)), nil
	}
	return decimal.Zero, decimal.Zero, &BreakEvenError{Dimension: req.Dimension, Reason: "unknown dimension"}
}

// evaluate runs the baseline projection with the dimension set to value and
// returns cumulative post-tax cash flow. Stress and exit are stripped so the
// objective reflects the holding period alone.
func (s *Solver) evaluate(req Request, value decimal.Decimal) decimal.Decimal {
	cfg := req.Config.DeepCopy()
	cfg.Stress.Enabled = false
	cfg.Exit.Enabled = false

	switch req.Dimension {
	case DimensionOccupancy:
		cfg.Income.Occupancy.Detail = false
		cfg.Income.Occupancy.FlatPercent = value
	case DimensionRent:
		cfg.Income.MonthlyRent = value
	case DimensionPrice:
		// Keep leverage constant: the loan principal tracks the price at the
		// configured equity share.
		if cfg.Property.Price.GreaterThan(decimal.Zero) {
			ratio := cfg.Loan.Principal.Div(cfg.Property.Price)
			cfg.Loan.Principal = value.Mul(ratio)
		}
		cfg.Property.Price = value
	}

	res := s.engine.Simulate(cfg)
	return domain.CumulativeCashFlow(res.Baseline)
}
