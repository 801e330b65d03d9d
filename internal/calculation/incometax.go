package calculation

import (
	"github.com/reisim/property-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// TaxBracket is one rung of the progressive national income tax table.
type TaxBracket struct {
	Min  decimal.Decimal
	Max  decimal.Decimal
	Rate decimal.Decimal
}

// nationalBrackets2025 is the progressive table applied to individual
// taxable income, held constant across projection years.
var nationalBrackets2025 = []TaxBracket{
	{decimal.Zero, decimal.NewFromInt(1950000), decimal.NewFromFloat(0.05)},
	{decimal.NewFromInt(1950000), decimal.NewFromInt(3300000), decimal.NewFromFloat(0.10)},
	{decimal.NewFromInt(3300000), decimal.NewFromInt(6950000), decimal.NewFromFloat(0.20)},
	{decimal.NewFromInt(6950000), decimal.NewFromInt(9000000), decimal.NewFromFloat(0.23)},
	{decimal.NewFromInt(9000000), decimal.NewFromInt(18000000), decimal.NewFromFloat(0.33)},
	{decimal.NewFromInt(18000000), decimal.NewFromInt(40000000), decimal.NewFromFloat(0.40)},
	{decimal.NewFromInt(40000000), decimal.NewFromInt(999999999999), decimal.NewFromFloat(0.45)},
}

// IncomeTaxCalculator resolves the yearly income tax attributable to the
// property under the configured regime.
type IncomeTaxCalculator struct {
	regime domain.TaxRegime
}

// NewIncomeTaxCalculator builds a calculator from the configuration.
func NewIncomeTaxCalculator(cfg *domain.Configuration) *IncomeTaxCalculator {
	return &IncomeTaxCalculator{regime: cfg.Tax}
}

// progressiveTax applies the bracket table to a taxable base. Negative
// bases yield zero, never a refund.
func progressiveTax(taxable decimal.Decimal, brackets []TaxBracket) decimal.Decimal {
	if taxable.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, b := range brackets {
		if taxable.LessThanOrEqual(b.Min) {
			break
		}
		inBracket := decimal.Min(taxable, b.Max).Sub(b.Min)
		if inBracket.GreaterThan(decimal.Zero) {
			total = total.Add(inBracket.Mul(b.Rate))
		}
	}
	return total
}

// individualTaxOn is national progressive tax plus flat resident tax on a
// combined taxable base, floored at zero.
func individualTaxOn(taxable decimal.Decimal, residentPercent decimal.Decimal) decimal.Decimal {
	if taxable.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	national := progressiveTax(taxable, nationalBrackets2025)
	resident := taxable.Mul(pct(clampPercent(residentPercent)))
	return national.Add(resident)
}

// TaxForYear returns the tax attributable to the property for one year's
// rental taxable income.
//
// Individual regime: the marginal difference between tax on combined income
// and tax on other income alone. Each base is taxed no lower than zero, so
// the difference can be negative (rental losses offsetting other income)
// but never refunds more than was owed without the property.
//
// Corporate regime: a flat rate on positive taxable income plus the fixed
// minimum charged every year.
func (tc *IncomeTaxCalculator) TaxForYear(rentalTaxable decimal.Decimal) decimal.Decimal {
	switch tc.regime.Mode {
	case domain.TaxCorporate:
		if c := tc.regime.Corporate; c != nil {
			tax := c.MinimumTax
			if rentalTaxable.GreaterThan(decimal.Zero) {
				tax = tax.Add(rentalTaxable.Mul(pct(clampPercent(c.RatePercent))))
			}
			return tax
		}
	case domain.TaxIndividual:
		if ind := tc.regime.Individual; ind != nil {
			combined := individualTaxOn(ind.OtherIncome.Add(rentalTaxable), ind.ResidentTaxPercent)
			withoutProperty := individualTaxOn(ind.OtherIncome, ind.ResidentTaxPercent)
			return combined.Sub(withoutProperty)
		}
	}
	return decimal.Zero
}
