package calculation

import (
	"github.com/reisim/property-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// oerBreakpoints are the simple-mode operating expense ratios (% of GPR)
// per property type at the NEW (age 0), MID (age 10) and OLD (age 20)
// anchors. Rates between anchors are linearly interpolated so the suggested
// ratio drifts with age instead of jumping at band boundaries.
var oerBreakpoints = map[domain.PropertyType][3]decimal.Decimal{
	domain.PropertyWoodApartment: {decimal.NewFromInt(18), decimal.NewFromInt(21), decimal.NewFromInt(25)},
	domain.PropertyRCMansion:     {decimal.NewFromInt(15), decimal.NewFromInt(19), decimal.NewFromInt(23)},
	domain.PropertyOffice:        {decimal.NewFromInt(17), decimal.NewFromInt(20), decimal.NewFromInt(24)},
	domain.PropertyCommercial:    {decimal.NewFromInt(16), decimal.NewFromInt(19), decimal.NewFromInt(23)},
}

// SuggestSimpleRate returns the template operating expense ratio (% of GPR)
// for a property type and building age.
func SuggestSimpleRate(propertyType domain.PropertyType, ageYears int) decimal.Decimal {
	bp, ok := oerBreakpoints[propertyType]
	if !ok {
		bp = oerBreakpoints[domain.PropertyRCMansion]
	}
	newRate, midRate, oldRate := bp[0], bp[1], bp[2]

	age := decimal.NewFromInt(int64(ageYears))
	ten := decimal.NewFromInt(10)
	switch {
	case ageYears <= 0:
		return newRate
	case ageYears < 10:
		return newRate.Add(midRate.Sub(newRate).Mul(age).Div(ten))
	case ageYears < 20:
		return midRate.Add(oldRate.Sub(midRate).Mul(age.Sub(ten)).Div(ten))
	default:
		return oldRate
	}
}

// cleaningVisitsPerMonth looks up the auto-maintained cleaning frequency for
// mid-size properties. Outside the 9-16 unit range no line is generated.
func cleaningVisitsPerMonth(units int) int {
	switch {
	case units >= 9 && units <= 12:
		return 2
	case units >= 13 && units <= 16:
		return 4
	default:
		return 0
	}
}

// cleaningVisitCost is the per-visit cost of the auto cleaning line.
var cleaningVisitCost = decimal.NewFromInt(8000)

// CleaningFixedItem returns the auto cleaning line for a unit count, or nil
// when the property size does not call for one.
func CleaningFixedItem(units int) *domain.FixedItem {
	visits := cleaningVisitsPerMonth(units)
	if visits == 0 {
		return nil
	}
	annual := cleaningVisitCost.Mul(decimal.NewFromInt(int64(visits))).Mul(twelve)
	return &domain.FixedItem{Label: "cleaning", AnnualAmount: annual, Enabled: true}
}

// DefaultLeasing is the turnover-cost preset: one marketing month against a
// four-year average tenancy.
func DefaultLeasing() domain.LeasingCost {
	return domain.LeasingCost{
		MarketingMonths:     decimal.NewFromInt(1),
		AverageTenancyYears: decimal.NewFromInt(4),
	}
}

// DefaultDetailedExpense generates a detailed-mode preset whose total rate
// matches the simple-mode suggestion for the same property type and age:
// the leasing line consumes its share and the rate items carry the rest.
func DefaultDetailedExpense(propertyType domain.PropertyType, ageYears, units int) *domain.DetailedExpense {
	total := SuggestSimpleRate(propertyType, ageYears)
	leasing := DefaultLeasing()
	leasingRate := leasing.MarketingMonths.
		Div(leasing.AverageTenancyYears.Mul(twelve)).
		Mul(hundred)

	remainder := total.Sub(leasingRate)
	if remainder.LessThan(decimal.Zero) {
		remainder = decimal.Zero
	}
	management := decimal.NewFromInt(5)
	utilities := decimal.NewFromInt(3)
	if management.Add(utilities).GreaterThan(remainder) {
		management = remainder
		utilities = decimal.Zero
	}
	maintenance := remainder.Sub(management).Sub(utilities)

	detailed := &domain.DetailedExpense{
		RateItems: []domain.RateItem{
			{Label: "management", RatePercent: management, Base: domain.RateBaseGPR, Enabled: true},
			{Label: "utilities", RatePercent: utilities, Base: domain.RateBaseGPR, Enabled: true},
			{Label: "maintenance", RatePercent: maintenance, Base: domain.RateBaseGPR, Enabled: true},
		},
		Leasing: leasing,
	}
	if item := CleaningFixedItem(units); item != nil {
		detailed.FixedItems = append(detailed.FixedItems, *item)
	}
	return detailed
}

// OperatingExpenseEngine computes annual operating expenses under either
// the simple percentage model or the itemized model.
type OperatingExpenseEngine struct {
	policy domain.ExpensePolicy
}

// NewOperatingExpenseEngine builds an engine from the configuration.
func NewOperatingExpenseEngine(cfg *domain.Configuration) *OperatingExpenseEngine {
	return &OperatingExpenseEngine{policy: cfg.Expenses}
}

// Annual returns the operating expense total for a year given that year's
// gross potential rent and effective gross income.
func (oe *OperatingExpenseEngine) Annual(year int, gpr, egi decimal.Decimal) decimal.Decimal {
	switch oe.policy.Mode {
	case domain.ExpenseDetailed:
		if oe.policy.Detailed != nil {
			return oe.detailed(year, gpr, egi)
		}
	case domain.ExpenseSimple:
		if oe.policy.Simple != nil {
			return gpr.Mul(pct(clampPercent(oe.policy.Simple.RatePercent)))
		}
	}
	return decimal.Zero
}

func (oe *OperatingExpenseEngine) detailed(year int, gpr, egi decimal.Decimal) decimal.Decimal {
	d := oe.policy.Detailed
	total := decimal.Zero

	for _, item := range d.RateItems {
		if !item.Enabled {
			continue
		}
		base := gpr
		if item.Base == domain.RateBaseEGI {
			base = egi
		}
		total = total.Add(base.Mul(pct(clampPercent(item.RatePercent))))
	}

	for _, item := range d.FixedItems {
		if item.Enabled {
			total = total.Add(item.AnnualAmount)
		}
	}

	for _, item := range d.EventItems {
		if !item.Enabled || item.IntervalYears <= 0 {
			continue
		}
		switch item.Booking {
		case domain.EventReserve:
			total = total.Add(item.Amount.Div(decimal.NewFromInt(int64(item.IntervalYears))))
		case domain.EventCash:
			if year%item.IntervalYears == 0 {
				total = total.Add(item.Amount)
			}
		}
	}

	total = total.Add(oe.leasingCost(gpr))
	return total
}

// leasingCost books tenant turnover as
// (marketing months / (tenancy years x 12)) x GPR.
func (oe *OperatingExpenseEngine) leasingCost(gpr decimal.Decimal) decimal.Decimal {
	l := oe.policy.Detailed.Leasing
	months := l.AverageTenancyYears.Mul(twelve)
	if months.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return l.MarketingMonths.Div(months).Mul(gpr)
}
