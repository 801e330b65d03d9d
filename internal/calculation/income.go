package calculation

import (
	"github.com/reisim/property-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// IncomeProjector derives gross potential rent and effective gross income
// per projection year. It is a pure function of (configuration, year).
type IncomeProjector struct {
	income   domain.IncomeAssumptions
	ageAtAcq int
}

// NewIncomeProjector builds a projector from the configuration.
func NewIncomeProjector(cfg *domain.Configuration) *IncomeProjector {
	return &IncomeProjector{
		income:   cfg.Income,
		ageAtAcq: cfg.Property.AgeYears,
	}
}

// GrossPotentialRent returns the full-occupancy annual rent for a year.
// Rent compounds downward every second year; when a two-phase curve is
// configured the late rate takes over at the switch year.
func (ip *IncomeProjector) GrossPotentialRent(year int) decimal.Decimal {
	gpr := ip.income.MonthlyRent.Mul(twelve)
	for y := 3; y <= year; y += 2 {
		rate := ip.income.RentDeclinePercent
		if ip.income.RentSwitchYear > 0 && y >= ip.income.RentSwitchYear {
			rate = ip.income.RentDeclineLatePercent
		}
		gpr = gpr.Mul(one.Sub(pct(clampPercent(rate))))
	}
	if gpr.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return gpr
}

// Occupancy resolves the effective occupancy percentage for a year, after
// the vacancy model and any stress decline are applied. Always within 0-100.
func (ip *IncomeProjector) Occupancy(year int) decimal.Decimal {
	occ := ip.baseOccupancy(year)

	switch ip.income.Vacancy.Mode {
	case domain.VacancyCyclic:
		if c := ip.income.Vacancy.Cyclic; c != nil && c.CycleYears > 0 && year%c.CycleYears == 0 {
			lost := decimal.NewFromInt(int64(c.VacancyMonths)).Div(twelve).Mul(hundred)
			occ = occ.Sub(lost)
		}
	case domain.VacancyProbabilistic:
		if p := ip.income.Vacancy.Probabilistic; p != nil {
			// Deterministic expectation: probability x months lost.
			expected := pct(clampPercent(p.ProbabilityPercent)).
				Mul(decimal.NewFromInt(int64(p.VacancyMonths))).
				Div(twelve).Mul(hundred)
			occ = occ.Sub(expected)
		}
	}

	if ip.income.Occupancy.DeclineStartYear > 0 && year >= ip.income.Occupancy.DeclineStartYear {
		occ = occ.Sub(ip.income.Occupancy.DeclinePoints)
	}

	return clampPercent(occ)
}

// baseOccupancy applies the flat or age-banded occupancy policy.
func (ip *IncomeProjector) baseOccupancy(year int) decimal.Decimal {
	pol := ip.income.Occupancy
	if !pol.Detail || pol.Banded == nil {
		return clampPercent(pol.FlatPercent)
	}
	age := ip.ageAtAcq + year - 1
	return clampPercent(pol.Banded.ForAge(age))
}

// EffectiveGrossIncome returns GPR scaled by resolved occupancy. Never
// exceeds GPR.
func (ip *IncomeProjector) EffectiveGrossIncome(year int) decimal.Decimal {
	return ip.GrossPotentialRent(year).Mul(pct(ip.Occupancy(year)))
}
