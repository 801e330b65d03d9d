package config

import (
	"github.com/reisim/property-calculator/internal/calculation"
	"github.com/reisim/property-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Estimation heuristics. Every rule fires only when the field is unset, so
// applying the defaults to their own output changes nothing.

// defaultBuildingRatioPercent estimates the building share of the price by
// structure type.
func defaultBuildingRatioPercent(s domain.StructureType) decimal.Decimal {
	switch s {
	case domain.StructureRC, domain.StructureSRC:
		return decimal.NewFromInt(60)
	case domain.StructureHeavySteel:
		return decimal.NewFromInt(50)
	case domain.StructureLightSteel:
		return decimal.NewFromInt(45)
	default:
		return decimal.NewFromInt(40)
	}
}

// defaultOccupancyBands is the age-banded occupancy template.
func defaultOccupancyBands() *domain.AgeBandedOccupancy {
	return &domain.AgeBandedOccupancy{
		Age1to2Percent:   decimal.NewFromInt(96),
		Age3to10Percent:  decimal.NewFromInt(94),
		Age11to20Percent: decimal.NewFromInt(91),
		Age21to30Percent: decimal.NewFromInt(87),
		Age31to40Percent: decimal.NewFromInt(82),
	}
}

// ApplyEstimatedDefaults fills every missing configuration field with a
// structure/age-derived heuristic and returns the fully-populated copy.
// The input is not modified. Idempotent: applying it to its own output is
// the identity.
func ApplyEstimatedDefaults(in *domain.Configuration) *domain.Configuration {
	cfg := in.DeepCopy()

	if !cfg.Property.Structure.Valid() {
		cfg.Property.Structure = domain.StructureWood
	}
	if !cfg.Property.PropertyType.Valid() {
		cfg.Property.PropertyType = domain.DefaultPropertyType(cfg.Property.Structure)
	}
	if cfg.Property.BuildingRatioPercent.IsZero() {
		cfg.Property.BuildingRatioPercent = defaultBuildingRatioPercent(cfg.Property.Structure)
	}

	applyLoanDefaults(cfg)
	applyIncomeDefaults(cfg)
	applyExpenseDefaults(cfg)
	applyAcquisitionDefaults(cfg)
	applyPropertyTaxDefaults(cfg)
	applyDepreciationDefaults(cfg)
	applyTaxRegimeDefaults(cfg)
	applyStressDefaults(cfg)
	applyExitDefaults(cfg)

	if cfg.ProjectionYears == 0 {
		cfg.ProjectionYears = 35
		if cfg.Loan.DurationYears > cfg.ProjectionYears {
			cfg.ProjectionYears = cfg.Loan.DurationYears
		}
	}
	if cfg.ProjectionYears > 50 {
		cfg.ProjectionYears = 50
	}

	return cfg
}

func applyLoanDefaults(cfg *domain.Configuration) {
	if cfg.Loan.EquityPercent.IsZero() && cfg.Loan.Principal.IsZero() {
		cfg.Loan.EquityPercent = decimal.NewFromInt(10)
	}
	if cfg.Loan.Principal.IsZero() && !cfg.Property.Price.IsZero() {
		cfg.Loan.Principal = cfg.Property.Price.
			Mul(decimal.NewFromInt(100).Sub(cfg.Loan.EquityPercent)).
			Div(decimal.NewFromInt(100))
	}
	if cfg.Loan.InterestPercent.IsZero() {
		cfg.Loan.InterestPercent = decimal.NewFromFloat(2.0)
	}
	if cfg.Loan.DurationYears == 0 {
		life := cfg.Property.Structure.LegalUsefulLifeYears() - cfg.Property.AgeYears
		switch {
		case life > 35:
			cfg.Loan.DurationYears = 35
		case life < 10:
			cfg.Loan.DurationYears = 10
		default:
			cfg.Loan.DurationYears = life
		}
	}
}

func applyIncomeDefaults(cfg *domain.Configuration) {
	if cfg.Income.RentDeclinePercent.IsZero() {
		cfg.Income.RentDeclinePercent = decimal.NewFromFloat(1.0)
	}
	if cfg.Income.Occupancy.FlatPercent.IsZero() {
		cfg.Income.Occupancy.FlatPercent = decimal.NewFromInt(95)
	}
	if cfg.Income.Occupancy.Detail && cfg.Income.Occupancy.Banded == nil {
		cfg.Income.Occupancy.Banded = defaultOccupancyBands()
	}
	switch cfg.Income.Vacancy.Mode {
	case domain.VacancyFixed, domain.VacancyCyclic, domain.VacancyProbabilistic:
	default:
		cfg.Income.Vacancy.Mode = domain.VacancyFixed
	}
	if cfg.Income.Vacancy.Mode == domain.VacancyCyclic && cfg.Income.Vacancy.Cyclic == nil {
		cfg.Income.Vacancy.Cyclic = &domain.CyclicVacancy{CycleYears: 4, VacancyMonths: 2}
	}
	if cfg.Income.Vacancy.Mode == domain.VacancyProbabilistic && cfg.Income.Vacancy.Probabilistic == nil {
		cfg.Income.Vacancy.Probabilistic = &domain.ProbabilisticVacancy{
			ProbabilityPercent: decimal.NewFromInt(25),
			VacancyMonths:      2,
		}
	}
}

func applyExpenseDefaults(cfg *domain.Configuration) {
	switch cfg.Expenses.Mode {
	case domain.ExpenseSimple, domain.ExpenseDetailed:
	default:
		cfg.Expenses.Mode = domain.ExpenseSimple
	}
	if cfg.Expenses.Mode == domain.ExpenseSimple {
		if cfg.Expenses.Simple == nil {
			cfg.Expenses.Simple = &domain.SimpleExpense{}
		}
		if cfg.Expenses.Simple.RatePercent.IsZero() {
			cfg.Expenses.Simple.RatePercent = calculation.SuggestSimpleRate(
				cfg.Property.PropertyType, cfg.Property.AgeYears)
		}
	}
	if cfg.Expenses.Mode == domain.ExpenseDetailed && cfg.Expenses.Detailed == nil {
		cfg.Expenses.Detailed = calculation.DefaultDetailedExpense(
			cfg.Property.PropertyType, cfg.Property.AgeYears, cfg.Property.Units)
	}
}

func applyAcquisitionDefaults(cfg *domain.Configuration) {
	a := &cfg.Acquisition
	if a.RegistrationPercent.IsZero() {
		a.RegistrationPercent = decimal.NewFromFloat(2.0)
	}
	if a.LoanFeePercent.IsZero() {
		a.LoanFeePercent = decimal.NewFromFloat(2.0)
	}
	if a.InsurancePercent.IsZero() {
		a.InsurancePercent = decimal.NewFromFloat(0.5)
	}
	if a.WaterPercent.IsZero() {
		a.WaterPercent = decimal.NewFromFloat(0.5)
	}
	if a.MiscPercent.IsZero() {
		a.MiscPercent = decimal.NewFromFloat(2.0)
	}
}

func applyPropertyTaxDefaults(cfg *domain.Configuration) {
	p := &cfg.PropertyTax
	if p.LandEvaluationPercent.IsZero() {
		p.LandEvaluationPercent = decimal.NewFromInt(70)
	}
	if p.BuildingEvaluationPercent.IsZero() {
		p.BuildingEvaluationPercent = decimal.NewFromInt(60)
	}
	if p.LandReductionPercent.IsZero() {
		// One-sixth residential-land relief.
		p.LandReductionPercent = decimal.NewFromFloat(16.67)
	}
	if p.NewBuildReductionYears == 0 {
		p.NewBuildReductionYears = 3
	}
	if p.NewBuildReductionPercent.IsZero() {
		p.NewBuildReductionPercent = decimal.NewFromInt(50)
	}
	if p.EffectiveTaxPercent.IsZero() {
		p.EffectiveTaxPercent = decimal.NewFromFloat(1.7)
	}
	if p.AcquisitionTaxPercent.IsZero() {
		p.AcquisitionTaxPercent = decimal.NewFromFloat(3.0)
	}
	if p.AcquisitionLandPercent.IsZero() {
		p.AcquisitionLandPercent = decimal.NewFromInt(50)
	}
	if p.AcquisitionTaxYear == 0 {
		p.AcquisitionTaxYear = 1
	}
	if p.AgingWritedownPercent.IsZero() {
		p.AgingWritedownPercent = decimal.NewFromFloat(2.5)
	}
	if p.AgingFloorPercent.IsZero() {
		p.AgingFloorPercent = decimal.NewFromInt(20)
	}
}

func applyDepreciationDefaults(cfg *domain.Configuration) {
	if !cfg.Depreciation.EquipmentSplit {
		return
	}
	if cfg.Depreciation.EquipmentRatioPercent.IsZero() {
		cfg.Depreciation.EquipmentRatioPercent = decimal.NewFromInt(20)
	}
	if cfg.Depreciation.EquipmentLifeYears == 0 {
		cfg.Depreciation.EquipmentLifeYears = 15
	}
}

func applyTaxRegimeDefaults(cfg *domain.Configuration) {
	switch cfg.Tax.Mode {
	case domain.TaxIndividual, domain.TaxCorporate:
	default:
		cfg.Tax.Mode = domain.TaxIndividual
	}
	if cfg.Tax.Mode == domain.TaxIndividual {
		if cfg.Tax.Individual == nil {
			cfg.Tax.Individual = &domain.IndividualTax{}
		}
		if cfg.Tax.Individual.ResidentTaxPercent.IsZero() {
			cfg.Tax.Individual.ResidentTaxPercent = decimal.NewFromInt(10)
		}
	}
	if cfg.Tax.Mode == domain.TaxCorporate {
		if cfg.Tax.Corporate == nil {
			cfg.Tax.Corporate = &domain.CorporateTax{}
		}
		if cfg.Tax.Corporate.RatePercent.IsZero() {
			cfg.Tax.Corporate.RatePercent = decimal.NewFromFloat(23.2)
		}
		if cfg.Tax.Corporate.MinimumTax.IsZero() {
			cfg.Tax.Corporate.MinimumTax = decimal.NewFromInt(70000)
		}
	}
}

func applyStressDefaults(cfg *domain.Configuration) {
	if !cfg.Stress.Enabled {
		return
	}
	s := &cfg.Stress
	if s.RateShockYear == 0 {
		s.RateShockYear = 11
	}
	if s.RateShockDeltaPercent.IsZero() {
		s.RateShockDeltaPercent = decimal.NewFromFloat(1.0)
	}
	if s.RentCurveOverride {
		if s.RentEarlyPercent.IsZero() {
			s.RentEarlyPercent = cfg.Income.RentDeclinePercent
		}
		if s.RentLatePercent.IsZero() {
			s.RentLatePercent = s.RentEarlyPercent.Mul(decimal.NewFromInt(2))
		}
		if s.RentSwitchYear == 0 {
			s.RentSwitchYear = 15
		}
	}
	if s.OccupancyDecline {
		if s.OccupancyDeclinePoints.IsZero() {
			s.OccupancyDeclinePoints = decimal.NewFromInt(5)
		}
		if s.OccupancyDeclineStartYear == 0 {
			s.OccupancyDeclineStartYear = 11
		}
	}
}

func applyExitDefaults(cfg *domain.Configuration) {
	if !cfg.Exit.Enabled {
		return
	}
	e := &cfg.Exit
	if e.ExitYear == 0 {
		e.ExitYear = 10
	}
	if e.CapRatePercent.IsZero() {
		e.CapRatePercent = decimal.NewFromFloat(7.0)
	}
	if e.BrokeragePercent.IsZero() {
		e.BrokeragePercent = decimal.NewFromFloat(3.0)
	}
	if e.BrokerageFixed.IsZero() {
		e.BrokerageFixed = decimal.NewFromInt(60000)
	}
	if e.OtherCostPercent.IsZero() {
		e.OtherCostPercent = decimal.NewFromFloat(1.0)
	}
	if e.ShortTermGainsPercent.IsZero() {
		e.ShortTermGainsPercent = decimal.NewFromFloat(39.63)
	}
	if e.LongTermGainsPercent.IsZero() {
		e.LongTermGainsPercent = decimal.NewFromFloat(20.315)
	}
	if e.DiscountRatePercent.IsZero() {
		e.DiscountRatePercent = decimal.NewFromFloat(3.0)
	}
}
