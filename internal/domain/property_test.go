package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildingAndLandPricePartitionThePrice(t *testing.T) {
	p := PropertyProfile{
		Price:                decimal.NewFromInt(100000000),
		BuildingRatioPercent: decimal.NewFromInt(60),
	}

	assert.True(t, p.BuildingPrice().Equal(decimal.NewFromInt(60000000)))
	assert.True(t, p.LandPrice().Equal(decimal.NewFromInt(40000000)))
	assert.True(t, p.BuildingPrice().Add(p.LandPrice()).Equal(p.Price))
}

func TestLegalUsefulLife(t *testing.T) {
	assert.Equal(t, 47, StructureRC.LegalUsefulLifeYears())
	assert.Equal(t, 39, StructureSRC.LegalUsefulLifeYears())
	assert.Equal(t, 34, StructureHeavySteel.LegalUsefulLifeYears())
	assert.Equal(t, 19, StructureLightSteel.LegalUsefulLifeYears())
	assert.Equal(t, 22, StructureWood.LegalUsefulLifeYears())
	assert.Equal(t, 22, StructureType("igloo").LegalUsefulLifeYears())
}

func TestAcquisitionCostTotal(t *testing.T) {
	a := AcquisitionCostRates{
		RegistrationPercent: decimal.NewFromInt(2),
		LoanFeePercent:      decimal.NewFromInt(2),
		InsurancePercent:    decimal.NewFromFloat(0.5),
		WaterPercent:        decimal.NewFromFloat(0.5),
		MiscPercent:         decimal.NewFromInt(2),
	}
	assert.True(t, a.TotalPercent().Equal(decimal.NewFromInt(7)))
}

func TestEmptyConfiguration(t *testing.T) {
	var cfg Configuration
	assert.True(t, cfg.Empty())

	cfg.Property.Price = decimal.NewFromInt(100000000)
	assert.True(t, cfg.Empty(), "still empty without rent")

	cfg.Income.MonthlyRent = decimal.NewFromInt(500000)
	assert.False(t, cfg.Empty())
}

func TestDeepCopyDoesNotAlias(t *testing.T) {
	cfg := &Configuration{
		Income: IncomeAssumptions{
			Occupancy: OccupancyPolicy{
				Detail: true,
				Banded: &AgeBandedOccupancy{Age1to2Percent: decimal.NewFromInt(96)},
			},
			Vacancy: VacancyPolicy{
				Mode:   VacancyCyclic,
				Cyclic: &CyclicVacancy{CycleYears: 4, VacancyMonths: 2},
			},
		},
		Expenses: ExpensePolicy{
			Mode: ExpenseDetailed,
			Detailed: &DetailedExpense{
				RateItems: []RateItem{{Label: "management", RatePercent: decimal.NewFromInt(5)}},
			},
		},
		Repairs: []RepairEvent{{Year: 10, Amount: decimal.NewFromInt(3000000)}},
		Tax: TaxRegime{
			Mode:       TaxIndividual,
			Individual: &IndividualTax{OtherIncome: decimal.NewFromInt(6000000)},
		},
	}

	cp := cfg.DeepCopy()
	require.NotSame(t, cfg, cp)

	cp.Income.Occupancy.Banded.Age1to2Percent = decimal.NewFromInt(50)
	cp.Income.Vacancy.Cyclic.CycleYears = 99
	cp.Expenses.Detailed.RateItems[0].RatePercent = decimal.NewFromInt(50)
	cp.Repairs[0].Year = 1
	cp.Tax.Individual.OtherIncome = decimal.Zero

	assert.True(t, cfg.Income.Occupancy.Banded.Age1to2Percent.Equal(decimal.NewFromInt(96)))
	assert.Equal(t, 4, cfg.Income.Vacancy.Cyclic.CycleYears)
	assert.True(t, cfg.Expenses.Detailed.RateItems[0].RatePercent.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, 10, cfg.Repairs[0].Year)
	assert.True(t, cfg.Tax.Individual.OtherIncome.Equal(decimal.NewFromInt(6000000)))
}

func TestAgeBandedOccupancyForAge(t *testing.T) {
	b := AgeBandedOccupancy{
		Age1to2Percent:   decimal.NewFromInt(96),
		Age3to10Percent:  decimal.NewFromInt(94),
		Age11to20Percent: decimal.NewFromInt(91),
		Age21to30Percent: decimal.NewFromInt(87),
		Age31to40Percent: decimal.NewFromInt(82),
	}

	assert.True(t, b.ForAge(1).Equal(decimal.NewFromInt(96)))
	assert.True(t, b.ForAge(2).Equal(decimal.NewFromInt(96)))
	assert.True(t, b.ForAge(3).Equal(decimal.NewFromInt(94)))
	assert.True(t, b.ForAge(10).Equal(decimal.NewFromInt(94)))
	assert.True(t, b.ForAge(20).Equal(decimal.NewFromInt(91)))
	assert.True(t, b.ForAge(30).Equal(decimal.NewFromInt(87)))
	assert.True(t, b.ForAge(45).Equal(decimal.NewFromInt(82)), "ages past the last band use it")
}

func TestCumulativeCashFlow(t *testing.T) {
	series := []YearlyResult{
		{Year: 1, CashFlowPostTax: decimal.NewFromInt(1000)},
		{Year: 2, CashFlowPostTax: decimal.NewFromInt(-400)},
		{Year: 3, CashFlowPostTax: decimal.NewFromInt(200)},
	}
	assert.True(t, CumulativeCashFlow(series).Equal(decimal.NewFromInt(800)))
	assert.True(t, CumulativeCashFlow(nil).IsZero())
}
