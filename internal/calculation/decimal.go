package calculation

import "github.com/shopspring/decimal"

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
	one     = decimal.NewFromInt(1)
)

// pct converts a 0-100 scale percentage to a fraction.
func pct(p decimal.Decimal) decimal.Decimal {
	return p.Div(hundred)
}

// clampPercent bounds a percentage to the 0-100 range.
func clampPercent(p decimal.Decimal) decimal.Decimal {
	if p.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if p.GreaterThan(hundred) {
		return hundred
	}
	return p
}
