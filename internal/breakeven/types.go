package breakeven

import (
	"fmt"

	"github.com/reisim/property-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Dimension names the input the solver varies while holding everything else
// in the configuration fixed.
type Dimension string

const (
	// DimensionOccupancy finds the minimum flat occupancy percentage.
	DimensionOccupancy Dimension = "occupancy"
	// DimensionRent finds the minimum monthly rent.
	DimensionRent Dimension = "rent"
	// DimensionPrice finds the maximum purchase price.
	DimensionPrice Dimension = "price"
)

// Valid reports whether the dimension is one the solver knows.
func (d Dimension) Valid() bool {
	switch d {
	case DimensionOccupancy, DimensionRent, DimensionPrice:
		return true
	}
	return false
}

// Request describes one break-even search: vary Dimension until cumulative
// post-tax cash flow over the projection horizon reaches TargetCumulative.
type Request struct {
	Config    *domain.Configuration
	Dimension Dimension

	// TargetCumulative is the cumulative post-tax cash flow to break even
	// against. Zero means "cash flow neutral over the horizon".
	TargetCumulative decimal.Decimal
}

// Result is the solver's answer for one dimension.
type Result struct {
	Dimension Dimension `json:"dimension"`

	// Value is the break-even input: occupancy percent, monthly rent in yen,
	// or purchase price in yen depending on the dimension.
	Value decimal.Decimal `json:"value"`

	// AchievedCumulative is the cumulative post-tax cash flow the solution
	// actually produces; it sits within tolerance of the target.
	AchievedCumulative decimal.Decimal `json:"achievedCumulative"`

	Iterations int  `json:"iterations"`
	Converged  bool `json:"converged"`
}

// SolverOptions tunes the binary search.
type SolverOptions struct {
	// Tolerance is the acceptable distance from the target, in yen.
	Tolerance decimal.Decimal
	// MaxIterations caps the bisection steps.
	MaxIterations int
}

// DefaultSolverOptions bisects to within one thousand yen.
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     decimal.NewFromInt(1000),
		MaxIterations: 60,
	}
}

// BreakEvenError reports why a search could not run or converge.
type BreakEvenError struct {
	Dimension Dimension
	Reason    string
}

func (e *BreakEvenError) Error() string {
	return fmt.Sprintf("break-even search on %s failed: %s", e.Dimension, e.Reason)
}
