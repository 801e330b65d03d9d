package domain

import (
	"github.com/shopspring/decimal"
)

// YearlyResult is the complete financial outcome of a single projection
// year. Results are created once by the engine and never mutated; a
// configuration change replaces the whole sequence.
type YearlyResult struct {
	Year int `json:"year"`

	GrossPotentialRent decimal.Decimal `json:"grossPotentialRent"`
	EffectiveIncome    decimal.Decimal `json:"effectiveIncome"`
	OccupancyPercent   decimal.Decimal `json:"occupancyPercent"`

	OperatingExpenses  decimal.Decimal `json:"operatingExpenses"`
	RepairCosts        decimal.Decimal `json:"repairCosts"`
	NetOperatingIncome decimal.Decimal `json:"netOperatingIncome"`

	Interest    decimal.Decimal `json:"interest"`
	Principal   decimal.Decimal `json:"principal"`
	LoanBalance decimal.Decimal `json:"loanBalance"`

	PropertyTax    decimal.Decimal `json:"propertyTax"`
	AcquisitionTax decimal.Decimal `json:"acquisitionTax"`
	Depreciation   decimal.Decimal `json:"depreciation"`

	TaxableIncome decimal.Decimal `json:"taxableIncome"`
	IncomeTax     decimal.Decimal `json:"incomeTax"`

	CashFlowPreTax  decimal.Decimal `json:"cashFlowPreTax"`
	CashFlowPostTax decimal.Decimal `json:"cashFlowPostTax"`
}

// DebtService returns interest plus principal for the year.
func (y YearlyResult) DebtService() decimal.Decimal {
	return y.Interest.Add(y.Principal)
}

// ExitSummary captures the sale economics when an exit plan is enabled.
type ExitSummary struct {
	ExitYear         int             `json:"exitYear"`
	SalePrice        decimal.Decimal `json:"salePrice"`
	TransactionCosts decimal.Decimal `json:"transactionCosts"`
	BookValue        decimal.Decimal `json:"bookValue"`
	CapitalGain      decimal.Decimal `json:"capitalGain"`
	CapitalGainsTax  decimal.Decimal `json:"capitalGainsTax"`
	LoanPayoff       decimal.Decimal `json:"loanPayoff"`
	NetProceeds      decimal.Decimal `json:"netProceeds"`
	NPV              decimal.Decimal `json:"npv"`
}

// SimulationResult bundles everything one engine invocation produces. The
// stressed series and exit summary are present only when the corresponding
// toggles are enabled; DeadCrossYear is zero when post-tax cash flow never
// turns non-positive after being positive.
type SimulationResult struct {
	Baseline []YearlyResult `json:"baseline"`
	Stressed []YearlyResult `json:"stressed,omitempty"`

	Exit         *ExitSummary `json:"exit,omitempty"`
	StressedExit *ExitSummary `json:"stressedExit,omitempty"`

	DeadCrossYear         int `json:"deadCrossYear,omitempty"`
	StressedDeadCrossYear int `json:"stressedDeadCrossYear,omitempty"`

	// InitialCosts is the one-time acquisition outlay: closing costs plus
	// the acquisition tax, reported alongside (not inside) the yearly
	// series. The acquisition tax's booked year only controls when it is
	// deducted from taxable income.
	InitialCosts decimal.Decimal `json:"initialCosts"`
}

// CumulativeCashFlow sums post-tax cash flow over a series.
func CumulativeCashFlow(series []YearlyResult) decimal.Decimal {
	total := decimal.Zero
	for _, y := range series {
		total = total.Add(y.CashFlowPostTax)
	}
	return total
}

// FindDeadCross returns the first year post-tax cash flow transitions from
// positive to non-positive, or 0 when no such transition occurs.
func FindDeadCross(series []YearlyResult) int {
	seenPositive := false
	for _, y := range series {
		if y.CashFlowPostTax.GreaterThan(decimal.Zero) {
			seenPositive = true
			continue
		}
		if seenPositive {
			return y.Year
		}
	}
	return 0
}
