package compare

import (
	"github.com/reisim/property-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// MetricsCalculator turns a simulation result into a comparison report.
type MetricsCalculator struct{}

// NewMetricsCalculator creates a metrics calculator.
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// Compare builds the baseline-versus-stressed report. When the result has no
// stressed series the report carries the baseline summary alone.
func (mc *MetricsCalculator) Compare(res *domain.SimulationResult) *Comparison {
	c := &Comparison{
		Baseline: summarize("baseline", res.Baseline, res.DeadCrossYear, res.Exit),
	}
	if len(res.Stressed) == 0 {
		return c
	}

	stressed := summarize("stressed", res.Stressed, res.StressedDeadCrossYear, res.StressedExit)
	c.Stressed = &stressed
	c.CumulativeDelta = stressed.CumulativeCashFlow.Sub(c.Baseline.CumulativeCashFlow)
	c.DeadCrossShift = deadCrossShift(res.DeadCrossYear, res.StressedDeadCrossYear)
	c.YearlyDeltas = yearlyDeltas(res.Baseline, res.Stressed)
	return c
}

// deadCrossShift returns how many years earlier the stressed dead cross
// arrives. A series that never crosses counts as crossing past the horizon.
func deadCrossShift(baseline, stressed int) int {
	if stressed == 0 {
		return 0
	}
	if baseline == 0 {
		return stressed
	}
	return baseline - stressed
}

func yearlyDeltas(baseline, stressed []domain.YearlyResult) []YearDelta {
	n := len(baseline)
	if len(stressed) < n {
		n = len(stressed)
	}
	deltas := make([]YearDelta, n)
	for i := 0; i < n; i++ {
		b, s := baseline[i], stressed[i]
		d := YearDelta{
			Year:       b.Year,
			BaselineCF: b.CashFlowPostTax,
			StressedCF: s.CashFlowPostTax,
			Delta:      s.CashFlowPostTax.Sub(b.CashFlowPostTax),
		}
		if b.GrossPotentialRent.GreaterThan(decimal.Zero) {
			d.DeltaPctGPR = d.Delta.Div(b.GrossPotentialRent).Mul(decimal.NewFromInt(100))
		}
		deltas[i] = d
	}
	return deltas
}
