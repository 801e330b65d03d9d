package compare

import (
	"github.com/reisim/property-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ScenarioSummary condenses one yearly series into the headline numbers a
// side-by-side view needs.
type ScenarioSummary struct {
	Name string `json:"name"`

	CumulativeCashFlow decimal.Decimal `json:"cumulativeCashFlow"`
	FinalYearCashFlow  decimal.Decimal `json:"finalYearCashFlow"`
	AverageCashFlow    decimal.Decimal `json:"averageCashFlow"`

	// FirstNegativeYear is the first year post-tax cash flow is non-positive,
	// or 0 when it never happens.
	FirstNegativeYear int `json:"firstNegativeYear,omitempty"`
	DeadCrossYear     int `json:"deadCrossYear,omitempty"`

	HasExit bool            `json:"hasExit"`
	ExitNPV decimal.Decimal `json:"exitNpv"`
}

// YearDelta pairs baseline and stressed post-tax cash flow for one year.
type YearDelta struct {
	Year        int             `json:"year"`
	BaselineCF  decimal.Decimal `json:"baselineCashFlow"`
	StressedCF  decimal.Decimal `json:"stressedCashFlow"`
	Delta       decimal.Decimal `json:"delta"`
	DeltaPctGPR decimal.Decimal `json:"deltaPercentOfGpr"`
}

// Comparison is the full baseline-versus-stressed report. Stressed fields
// are zero-valued when the run had no stress scenario.
type Comparison struct {
	Baseline ScenarioSummary  `json:"baseline"`
	Stressed *ScenarioSummary `json:"stressed,omitempty"`

	// CumulativeDelta is stressed minus baseline cumulative cash flow;
	// negative means the stress costs money, which is the normal case.
	CumulativeDelta decimal.Decimal `json:"cumulativeDelta"`

	// DeadCrossShift is how many years earlier the dead cross arrives under
	// stress. Zero when neither series crosses or both cross the same year.
	DeadCrossShift int `json:"deadCrossShift"`

	YearlyDeltas []YearDelta `json:"yearlyDeltas,omitempty"`
}

// summarize folds a series into its headline metrics.
func summarize(name string, series []domain.YearlyResult, deadCross int, exit *domain.ExitSummary) ScenarioSummary {
	s := ScenarioSummary{
		Name:               name,
		CumulativeCashFlow: domain.CumulativeCashFlow(series),
		DeadCrossYear:      deadCross,
	}
	if n := len(series); n > 0 {
		s.FinalYearCashFlow = series[n-1].CashFlowPostTax
		s.AverageCashFlow = s.CumulativeCashFlow.Div(decimal.NewFromInt(int64(n)))
	}
	for _, y := range series {
		if y.CashFlowPostTax.LessThanOrEqual(decimal.Zero) {
			s.FirstNegativeYear = y.Year
			break
		}
	}
	if exit != nil {
		s.HasExit = true
		s.ExitNPV = exit.NPV
	}
	return s
}
