package calculation

import (
	"github.com/reisim/property-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// shortTermHoldingYears is the boundary at or below which the short-term
// capital gains rate applies.
const shortTermHoldingYears = 5

// ExitValuationEngine values a sale at the configured exit year: cap-rate
// sale price, transaction costs, capital gains tax and the NPV of the whole
// holding period.
type ExitValuationEngine struct {
	plan             domain.ExitPlan
	acquisitionPrice decimal.Decimal
}

// NewExitValuationEngine builds an engine from the configuration.
func NewExitValuationEngine(cfg *domain.Configuration) *ExitValuationEngine {
	return &ExitValuationEngine{
		plan:             cfg.Exit,
		acquisitionPrice: cfg.Property.Price,
	}
}

// Evaluate computes the exit summary from the projected series and the
// cumulative depreciation through the exit year. Returns nil when the plan
// is disabled or the exit year falls outside the series.
func (ee *ExitValuationEngine) Evaluate(series []domain.YearlyResult, cumulativeDepreciation decimal.Decimal) *domain.ExitSummary {
	if !ee.plan.Enabled || ee.plan.ExitYear < 1 || ee.plan.ExitYear > len(series) {
		return nil
	}
	year := series[ee.plan.ExitYear-1]

	capRate := pct(clampPercent(ee.plan.CapRatePercent))
	if capRate.LessThanOrEqual(decimal.Zero) {
		return nil
	}
	salePrice := year.NetOperatingIncome.Div(capRate)

	costs := salePrice.Mul(pct(clampPercent(ee.plan.BrokeragePercent))).
		Add(ee.plan.BrokerageFixed).
		Add(salePrice.Mul(pct(clampPercent(ee.plan.OtherCostPercent))))

	bookValue := ee.acquisitionPrice.Sub(cumulativeDepreciation)
	gain := salePrice.Sub(costs).Sub(bookValue)

	rate := ee.plan.LongTermGainsPercent
	if ee.plan.ExitYear <= shortTermHoldingYears {
		rate = ee.plan.ShortTermGainsPercent
	}
	gainsTax := decimal.Zero
	if gain.GreaterThan(decimal.Zero) {
		gainsTax = gain.Mul(pct(clampPercent(rate)))
	}

	netProceeds := salePrice.Sub(costs).Sub(gainsTax).Sub(year.LoanBalance)

	return &domain.ExitSummary{
		ExitYear:         ee.plan.ExitYear,
		SalePrice:        salePrice,
		TransactionCosts: costs,
		BookValue:        bookValue,
		CapitalGain:      gain,
		CapitalGainsTax:  gainsTax,
		LoanPayoff:       year.LoanBalance,
		NetProceeds:      netProceeds,
		NPV:              ee.npv(series, netProceeds),
	}
}

// npv discounts each year's post-tax cash flow through the exit year plus
// the terminal net proceeds at the configured discount rate.
func (ee *ExitValuationEngine) npv(series []domain.YearlyResult, netProceeds decimal.Decimal) decimal.Decimal {
	discount := pct(ee.plan.DiscountRatePercent)
	total := decimal.Zero
	for y := 1; y <= ee.plan.ExitYear; y++ {
		factor := one.Add(discount).Pow(decimal.NewFromInt(int64(y)))
		total = total.Add(series[y-1].CashFlowPostTax.Div(factor))
	}
	terminalFactor := one.Add(discount).Pow(decimal.NewFromInt(int64(ee.plan.ExitYear)))
	return total.Add(netProceeds.Div(terminalFactor))
}
