package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reisim/property-calculator/internal/domain"
)

// referenceConfig is a new RC building bought almost fully leveraged.
func referenceConfig() *domain.Configuration {
	return &domain.Configuration{
		Property: domain.PropertyProfile{
			Price:                decimal.NewFromInt(100000000),
			BuildingRatioPercent: decimal.NewFromInt(60),
			Structure:            domain.StructureRC,
			PropertyType:         domain.PropertyRCMansion,
			AgeYears:             0,
		},
		Loan: domain.LoanTerms{
			Principal:       decimal.NewFromInt(95000000),
			InterestPercent: decimal.NewFromFloat(1.6),
			DurationYears:   30,
		},
		Income: domain.IncomeAssumptions{
			MonthlyRent:        decimal.NewFromInt(500000),
			RentDeclinePercent: decimal.NewFromFloat(1.0),
			Occupancy: domain.OccupancyPolicy{
				FlatPercent: decimal.NewFromInt(95),
			},
			Vacancy: domain.VacancyPolicy{Mode: domain.VacancyFixed},
		},
		Expenses: domain.ExpensePolicy{
			Mode:   domain.ExpenseSimple,
			Simple: &domain.SimpleExpense{RatePercent: SuggestSimpleRate(domain.PropertyRCMansion, 0)},
		},
		Tax: domain.TaxRegime{
			Mode: domain.TaxIndividual,
			Individual: &domain.IndividualTax{
				OtherIncome:        decimal.NewFromInt(6000000),
				ResidentTaxPercent: decimal.NewFromInt(10),
			},
		},
		ProjectionYears: 35,
	}
}

func TestSimulateReferenceScenario(t *testing.T) {
	engine := NewCalculationEngine()
	result := engine.Simulate(referenceConfig())
	require.Len(t, result.Baseline, 35)

	// Loan closes exactly at year 30.
	year30 := result.Baseline[29]
	assert.True(t, year30.LoanBalance.IsZero(), "balance at term should be zero, got %s", year30.LoanBalance)
	assert.True(t, result.Baseline[30].Interest.IsZero())

	// Positive pre-tax cash flow in year 1.
	year1 := result.Baseline[0]
	assert.True(t, year1.CashFlowPreTax.GreaterThan(decimal.Zero),
		"year-1 pre-tax cash flow should be positive, got %s", year1.CashFlowPreTax)

	// Depreciation present every year of the 47-year RC schedule that fits
	// the horizon, never after exhaustion.
	for _, y := range result.Baseline {
		assert.True(t, y.Depreciation.GreaterThan(decimal.Zero), "year %d should depreciate", y.Year)
	}
}

func TestSimulateReferenceScenarioWithDefaultedTaxBlock(t *testing.T) {
	// Same scenario with the property-tax block a fully-defaulted
	// configuration carries. The one-time acquisition tax reduces taxable
	// income in year 1 but is paid out of InitialCosts, so year-1 pre-tax
	// cash flow stays positive.
	cfg := referenceConfig()
	cfg.PropertyTax = domain.PropertyTaxParameters{
		LandEvaluationPercent:     decimal.NewFromInt(70),
		BuildingEvaluationPercent: decimal.NewFromInt(60),
		LandReductionPercent:      decimal.NewFromFloat(16.67),
		NewBuildReductionYears:    3,
		NewBuildReductionPercent:  decimal.NewFromInt(50),
		EffectiveTaxPercent:       decimal.NewFromFloat(1.7),
		AcquisitionTaxPercent:     decimal.NewFromInt(3),
		AcquisitionLandPercent:    decimal.NewFromInt(50),
		AcquisitionTaxYear:        1,
		AgingWritedownPercent:     decimal.NewFromFloat(2.5),
		AgingFloorPercent:         decimal.NewFromInt(20),
	}
	result := NewCalculationEngine().Simulate(cfg)

	year1 := result.Baseline[0]
	assert.True(t, year1.CashFlowPreTax.GreaterThan(decimal.Zero),
		"year-1 pre-tax cash flow should be positive, got %s", year1.CashFlowPreTax)

	// Land 40M x 70% x 50% + building 36M, taxed at 3%.
	assert.True(t, year1.AcquisitionTax.Equal(decimal.NewFromInt(1500000)))
	assert.True(t, result.Baseline[1].AcquisitionTax.IsZero())

	// Deductibility still lands in year 1: with an otherwise flat first
	// two years, year-1 taxable income is lower by the acquisition tax.
	year2 := result.Baseline[1]
	assert.True(t, year1.TaxableIncome.LessThan(year2.TaxableIncome))

	// The outlay is reported once, alongside the series.
	assert.True(t, result.InitialCosts.Equal(decimal.NewFromInt(1500000)))
}

func TestSimulateAcquisitionTaxBookedInSecondYear(t *testing.T) {
	cfg := referenceConfig()
	cfg.PropertyTax.AcquisitionTaxPercent = decimal.NewFromInt(3)
	cfg.PropertyTax.LandEvaluationPercent = decimal.NewFromInt(70)
	cfg.PropertyTax.BuildingEvaluationPercent = decimal.NewFromInt(60)
	cfg.PropertyTax.AcquisitionLandPercent = decimal.NewFromInt(50)
	cfg.PropertyTax.AcquisitionTaxYear = 2
	result := NewCalculationEngine().Simulate(cfg)

	assert.True(t, result.Baseline[0].AcquisitionTax.IsZero())
	assert.False(t, result.Baseline[1].AcquisitionTax.IsZero())
	// Cash flow is untouched either year; only deductibility moves.
	assert.True(t, result.Baseline[1].CashFlowPreTax.GreaterThan(decimal.Zero))
}

func TestSimulateEffectiveIncomeNeverExceedsGPR(t *testing.T) {
	result := NewCalculationEngine().Simulate(referenceConfig())
	for _, y := range result.Baseline {
		assert.True(t, y.EffectiveIncome.LessThanOrEqual(y.GrossPotentialRent), "year %d", y.Year)
	}
}

func TestSimulateEmptyConfigurationYieldsZeroSeries(t *testing.T) {
	engine := NewCalculationEngine()
	result := engine.Simulate(&domain.Configuration{ProjectionYears: 10})
	require.Len(t, result.Baseline, 10)

	for _, y := range result.Baseline {
		assert.True(t, y.CashFlowPostTax.IsZero())
		assert.True(t, y.GrossPotentialRent.IsZero())
	}
	assert.Equal(t, 0, result.DeadCrossYear)
}

func TestSimulateInitialCosts(t *testing.T) {
	cfg := referenceConfig()
	cfg.Acquisition = domain.AcquisitionCostRates{
		RegistrationPercent: decimal.NewFromInt(2),
		LoanFeePercent:      decimal.NewFromInt(2),
		InsurancePercent:    decimal.NewFromFloat(0.5),
		WaterPercent:        decimal.NewFromFloat(0.5),
		MiscPercent:         decimal.NewFromInt(2),
	}
	result := NewCalculationEngine().Simulate(cfg)

	// 7% of 100M, reported once, not inside the yearly series.
	assert.True(t, result.InitialCosts.Equal(decimal.NewFromInt(7000000)))
	assert.True(t, result.Baseline[0].CashFlowPreTax.GreaterThan(decimal.Zero))
}

func TestSimulateStressedNeverBeatsBaselineAfterActivation(t *testing.T) {
	cfg := referenceConfig()
	cfg.Stress = domain.StressScenario{
		Enabled:                   true,
		RateShockYear:             11,
		RateShockDeltaPercent:     decimal.NewFromFloat(1.0),
		OccupancyDecline:          true,
		OccupancyDeclinePoints:    decimal.NewFromInt(5),
		OccupancyDeclineStartYear: 11,
	}
	result := NewCalculationEngine().Simulate(cfg)
	require.NotEmpty(t, result.Stressed)
	require.Len(t, result.Stressed, len(result.Baseline))

	for i := 10; i < len(result.Baseline); i++ {
		assert.True(t, result.Stressed[i].CashFlowPostTax.LessThanOrEqual(result.Baseline[i].CashFlowPostTax),
			"stressed cash flow beat baseline in year %d", i+1)
	}
}

func TestSimulateMalformedStressDegradesToBaselineOnly(t *testing.T) {
	cfg := referenceConfig()
	cfg.Stress = domain.StressScenario{
		Enabled:       true,
		RateShockYear: 0, // invalid
	}
	result := NewCalculationEngine().Simulate(cfg)

	assert.NotEmpty(t, result.Baseline)
	assert.Empty(t, result.Stressed)
}

func TestSimulateExitSummary(t *testing.T) {
	cfg := referenceConfig()
	cfg.Exit = domain.ExitPlan{
		Enabled:               true,
		ExitYear:              10,
		CapRatePercent:        decimal.NewFromInt(7),
		BrokeragePercent:      decimal.NewFromInt(3),
		BrokerageFixed:        decimal.NewFromInt(60000),
		OtherCostPercent:      decimal.NewFromInt(1),
		ShortTermGainsPercent: decimal.NewFromFloat(39.63),
		LongTermGainsPercent:  decimal.NewFromFloat(20.315),
		DiscountRatePercent:   decimal.NewFromInt(3),
	}
	result := NewCalculationEngine().Simulate(cfg)
	require.NotNil(t, result.Exit)

	year10 := result.Baseline[9]
	wantSale := year10.NetOperatingIncome.Div(decimal.NewFromFloat(0.07))
	assert.True(t, result.Exit.SalePrice.Sub(wantSale).Abs().LessThan(decimal.NewFromInt(1)))
	assert.True(t, result.Exit.LoanPayoff.Equal(year10.LoanBalance))
}

func TestSimulateDeadCrossDetection(t *testing.T) {
	// Equipment split exhausts a large depreciation share after 15 years
	// while principal keeps growing inside the payment: classic dead cross.
	cfg := referenceConfig()
	cfg.Depreciation = domain.DepreciationPolicy{
		EquipmentSplit:        true,
		EquipmentRatioPercent: decimal.NewFromInt(40),
		EquipmentLifeYears:    5,
	}
	cfg.Tax.Individual.OtherIncome = decimal.NewFromInt(20000000)
	result := NewCalculationEngine().Simulate(cfg)

	if result.DeadCrossYear > 0 {
		series := result.Baseline
		idx := result.DeadCrossYear - 1
		require.Greater(t, idx, 0)
		assert.True(t, series[idx].CashFlowPostTax.LessThanOrEqual(decimal.Zero))
		assert.True(t, series[idx-1].CashFlowPostTax.GreaterThan(decimal.Zero))
	}
}

func TestFindDeadCross(t *testing.T) {
	mk := func(values ...int64) []domain.YearlyResult {
		out := make([]domain.YearlyResult, len(values))
		for i, v := range values {
			out[i] = domain.YearlyResult{Year: i + 1, CashFlowPostTax: decimal.NewFromInt(v)}
		}
		return out
	}

	assert.Equal(t, 3, domain.FindDeadCross(mk(100, 50, -10, -20)))
	assert.Equal(t, 0, domain.FindDeadCross(mk(100, 50, 10)))
	assert.Equal(t, 0, domain.FindDeadCross(mk(-10, -20, -30)), "never-positive series has no cross")
	assert.Equal(t, 2, domain.FindDeadCross(mk(5, 0, 5)), "zero counts as non-positive")
}
