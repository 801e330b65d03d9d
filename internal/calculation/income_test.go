package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/reisim/property-calculator/internal/domain"
)

func incomeConfig() *domain.Configuration {
	return &domain.Configuration{
		Property: domain.PropertyProfile{
			Price:     decimal.NewFromInt(100000000),
			Structure: domain.StructureRC,
			AgeYears:  0,
		},
		Income: domain.IncomeAssumptions{
			MonthlyRent:        decimal.NewFromInt(700000),
			RentDeclinePercent: decimal.NewFromFloat(1.0),
			Occupancy: domain.OccupancyPolicy{
				FlatPercent: decimal.NewFromInt(95),
			},
			Vacancy: domain.VacancyPolicy{Mode: domain.VacancyFixed},
		},
	}
}

func TestGrossPotentialRentDeclinesEverySecondYear(t *testing.T) {
	ip := NewIncomeProjector(incomeConfig())

	year1 := ip.GrossPotentialRent(1)
	year2 := ip.GrossPotentialRent(2)
	year3 := ip.GrossPotentialRent(3)
	year4 := ip.GrossPotentialRent(4)
	year5 := ip.GrossPotentialRent(5)

	assert.True(t, year1.Equal(decimal.NewFromInt(8400000)))
	assert.True(t, year2.Equal(year1), "no decline before year 3")
	assert.True(t, year3.LessThan(year2), "first decline at year 3")
	assert.True(t, year4.Equal(year3), "flat between decline years")
	assert.True(t, year5.LessThan(year4), "second decline at year 5")
}

func TestGrossPotentialRentNeverNegative(t *testing.T) {
	cfg := incomeConfig()
	cfg.Income.RentDeclinePercent = decimal.NewFromInt(100)
	ip := NewIncomeProjector(cfg)

	assert.True(t, ip.GrossPotentialRent(50).GreaterThanOrEqual(decimal.Zero))
}

func TestTwoPhaseRentCurveSwitches(t *testing.T) {
	cfg := incomeConfig()
	cfg.Income.RentDeclineLatePercent = decimal.NewFromFloat(3.0)
	cfg.Income.RentSwitchYear = 15
	single := NewIncomeProjector(incomeConfig())
	twoPhase := NewIncomeProjector(cfg)

	// Identical before the switch year.
	assert.True(t, twoPhase.GrossPotentialRent(14).Equal(single.GrossPotentialRent(14)))
	// Steeper afterwards.
	assert.True(t, twoPhase.GrossPotentialRent(20).LessThan(single.GrossPotentialRent(20)))
}

func TestEffectiveIncomeNeverExceedsGPR(t *testing.T) {
	ip := NewIncomeProjector(incomeConfig())
	for year := 1; year <= 35; year++ {
		assert.True(t, ip.EffectiveGrossIncome(year).LessThanOrEqual(ip.GrossPotentialRent(year)),
			"EGI above GPR in year %d", year)
	}
}

func TestBandedOccupancyFollowsBuildingAge(t *testing.T) {
	cfg := incomeConfig()
	cfg.Property.AgeYears = 8
	cfg.Income.Occupancy = domain.OccupancyPolicy{
		Detail: true,
		Banded: &domain.AgeBandedOccupancy{
			Age1to2Percent:   decimal.NewFromInt(96),
			Age3to10Percent:  decimal.NewFromInt(94),
			Age11to20Percent: decimal.NewFromInt(91),
			Age21to30Percent: decimal.NewFromInt(87),
			Age31to40Percent: decimal.NewFromInt(82),
		},
	}
	ip := NewIncomeProjector(cfg)

	// Year 1: age 8, second band. Year 4: age 11, third band.
	assert.True(t, ip.Occupancy(1).Equal(decimal.NewFromInt(94)))
	assert.True(t, ip.Occupancy(4).Equal(decimal.NewFromInt(91)))
}

func TestCyclicVacancyHitsCycleYears(t *testing.T) {
	cfg := incomeConfig()
	cfg.Income.Vacancy = domain.VacancyPolicy{
		Mode:   domain.VacancyCyclic,
		Cyclic: &domain.CyclicVacancy{CycleYears: 4, VacancyMonths: 3},
	}
	ip := NewIncomeProjector(cfg)

	// Off-cycle years keep the base occupancy; cycle years lose 3/12 = 25pts.
	assert.True(t, ip.Occupancy(3).Equal(decimal.NewFromInt(95)))
	assert.True(t, ip.Occupancy(4).Equal(decimal.NewFromInt(70)))
	assert.True(t, ip.Occupancy(8).Equal(decimal.NewFromInt(70)))
}

func TestProbabilisticVacancyIsDeterministicExpectation(t *testing.T) {
	cfg := incomeConfig()
	cfg.Income.Vacancy = domain.VacancyPolicy{
		Mode: domain.VacancyProbabilistic,
		Probabilistic: &domain.ProbabilisticVacancy{
			ProbabilityPercent: decimal.NewFromInt(50),
			VacancyMonths:      2,
		},
	}
	ip := NewIncomeProjector(cfg)

	// 95 - 0.5 * 2 / 12 * 100 for every year, in the projector's own
	// operation order so division precision matches.
	lost := decimal.NewFromFloat(0.5).
		Mul(decimal.NewFromInt(2)).
		Div(decimal.NewFromInt(12)).
		Mul(decimal.NewFromInt(100))
	want := decimal.NewFromInt(95).Sub(lost)
	for year := 1; year <= 10; year++ {
		assert.True(t, ip.Occupancy(year).Equal(want), "year %d occupancy %s", year, ip.Occupancy(year))
	}
}

func TestStressOccupancyDecline(t *testing.T) {
	cfg := incomeConfig()
	cfg.Income.Occupancy.DeclinePoints = decimal.NewFromInt(5)
	cfg.Income.Occupancy.DeclineStartYear = 11
	ip := NewIncomeProjector(cfg)

	assert.True(t, ip.Occupancy(10).Equal(decimal.NewFromInt(95)))
	assert.True(t, ip.Occupancy(11).Equal(decimal.NewFromInt(90)))
	assert.True(t, ip.Occupancy(30).Equal(decimal.NewFromInt(90)))
}

func TestOccupancyClampedToValidRange(t *testing.T) {
	cfg := incomeConfig()
	cfg.Income.Occupancy.FlatPercent = decimal.NewFromInt(10)
	cfg.Income.Occupancy.DeclinePoints = decimal.NewFromInt(50)
	cfg.Income.Occupancy.DeclineStartYear = 1
	ip := NewIncomeProjector(cfg)

	assert.True(t, ip.Occupancy(1).IsZero(), "occupancy should clamp at zero")
}
