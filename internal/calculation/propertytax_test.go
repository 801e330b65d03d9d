package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/reisim/property-calculator/internal/domain"
)

func propertyTaxConfig(age int) *domain.Configuration {
	return &domain.Configuration{
		Property: domain.PropertyProfile{
			Price:                decimal.NewFromInt(100000000),
			BuildingRatioPercent: decimal.NewFromInt(60),
			Structure:            domain.StructureRC,
			AgeYears:             age,
		},
		PropertyTax: domain.PropertyTaxParameters{
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
		},
	}
}

func TestNewBuildReliefLowersTax(t *testing.T) {
	pa := NewPropertyTaxAssessor(propertyTaxConfig(0))

	// Years 1-3 are inside the relief window (ages 0-2); year 4 is not.
	inWindow := pa.AnnualTax(3)
	outOfWindow := pa.AnnualTax(4)
	assert.True(t, inWindow.LessThan(outOfWindow),
		"relief year %s should tax less than first full year %s", inWindow, outOfWindow)
}

func TestNoReliefForUsedBuilding(t *testing.T) {
	pa := NewPropertyTaxAssessor(propertyTaxConfig(10))

	// Aging write-down is the only year-over-year movement: tax declines.
	assert.True(t, pa.AnnualTax(2).LessThan(pa.AnnualTax(1)))
}

func TestBuildingEvaluationFloorsAtAgingLimit(t *testing.T) {
	pa := NewPropertyTaxAssessor(propertyTaxConfig(0))

	base := decimal.NewFromInt(36000000) // 60M building x 60% evaluation
	floor := base.Mul(decimal.NewFromFloat(0.2))

	// At 2.5%/year the write-down would pass the 20% floor after year 32.
	assert.True(t, pa.BuildingEvaluation(40).Equal(floor))
	assert.True(t, pa.BuildingEvaluation(50).Equal(floor))
}

func TestAnnualTaxAlwaysPositive(t *testing.T) {
	pa := NewPropertyTaxAssessor(propertyTaxConfig(20))
	for year := 1; year <= 50; year++ {
		assert.True(t, pa.AnnualTax(year).GreaterThan(decimal.Zero), "year %d", year)
	}
}

func TestAcquisitionTax(t *testing.T) {
	pa := NewPropertyTaxAssessor(propertyTaxConfig(0))

	// Land: 40M x 70% x 50% = 14M. Building at year 1: 36M x aging factor
	// (age 0, factor 1) = 36M. Tax: 50M x 3% = 1.5M.
	assert.True(t, pa.AcquisitionTax().Equal(decimal.NewFromInt(1500000)))
}

func TestAcquisitionTaxYearClampsToFirstYear(t *testing.T) {
	cfg := propertyTaxConfig(0)
	cfg.PropertyTax.AcquisitionTaxYear = 2
	assert.Equal(t, 2, NewPropertyTaxAssessor(cfg).AcquisitionTaxYear())

	cfg.PropertyTax.AcquisitionTaxYear = 7
	assert.Equal(t, 1, NewPropertyTaxAssessor(cfg).AcquisitionTaxYear())

	cfg.PropertyTax.AcquisitionTaxYear = 0
	assert.Equal(t, 1, NewPropertyTaxAssessor(cfg).AcquisitionTaxYear())
}
