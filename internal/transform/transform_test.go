package transform

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reisim/property-calculator/internal/domain"
)

func baseConfig() *domain.Configuration {
	return &domain.Configuration{
		Property: domain.PropertyProfile{
			Price:     decimal.NewFromInt(100000000),
			Structure: domain.StructureRC,
		},
		Loan: domain.LoanTerms{
			Principal:       decimal.NewFromInt(90000000),
			InterestPercent: decimal.NewFromFloat(2.0),
			DurationYears:   30,
		},
		Income: domain.IncomeAssumptions{
			MonthlyRent:        decimal.NewFromInt(600000),
			RentDeclinePercent: decimal.NewFromFloat(1.0),
			Occupancy:          domain.OccupancyPolicy{FlatPercent: decimal.NewFromInt(95)},
		},
	}
}

func TestRaiseInterestRateWritesShockFields(t *testing.T) {
	base := baseConfig()
	tr := &RaiseInterestRate{Year: 11, DeltaPercent: decimal.NewFromFloat(1.0)}

	out, err := tr.Apply(base)
	require.NoError(t, err)

	assert.Equal(t, 11, out.Loan.ShockYear)
	assert.True(t, out.Loan.ShockDeltaPercent.Equal(decimal.NewFromFloat(1.0)))
	// Base is untouched.
	assert.Equal(t, 0, base.Loan.ShockYear)
}

func TestRaiseInterestRateValidation(t *testing.T) {
	tr := &RaiseInterestRate{Year: 0}
	err := tr.Validate(baseConfig())
	require.Error(t, err)

	var te *TransformError
	assert.ErrorAs(t, err, &te)
}

func TestOverrideRentCurve(t *testing.T) {
	base := baseConfig()
	tr := &OverrideRentCurve{
		EarlyPercent: decimal.NewFromFloat(1.0),
		LatePercent:  decimal.NewFromFloat(2.5),
		SwitchYear:   15,
	}

	out, err := tr.Apply(base)
	require.NoError(t, err)

	assert.True(t, out.Income.RentDeclineLatePercent.Equal(decimal.NewFromFloat(2.5)))
	assert.Equal(t, 15, out.Income.RentSwitchYear)
	assert.Equal(t, 0, base.Income.RentSwitchYear)
}

func TestReduceOccupancyRejectsNegativePoints(t *testing.T) {
	tr := &ReduceOccupancy{Points: decimal.NewFromInt(-5), StartYear: 11}
	assert.Error(t, tr.Validate(baseConfig()))
}

func TestApplyTransformsChainsInOrder(t *testing.T) {
	out, err := ApplyTransforms(baseConfig(), []ConfigTransform{
		&RaiseInterestRate{Year: 11, DeltaPercent: decimal.NewFromFloat(1.0)},
		&ReduceOccupancy{Points: decimal.NewFromInt(5), StartYear: 11},
	})
	require.NoError(t, err)

	assert.Equal(t, 11, out.Loan.ShockYear)
	assert.True(t, out.Income.Occupancy.DeclinePoints.Equal(decimal.NewFromInt(5)))
}

func TestApplyTransformsNilBase(t *testing.T) {
	_, err := ApplyTransforms(nil, nil)
	assert.Error(t, err)
}

func TestApplyTransformsEmptyListCopies(t *testing.T) {
	base := baseConfig()
	out, err := ApplyTransforms(base, nil)
	require.NoError(t, err)
	require.NotSame(t, base, out)
	assert.True(t, out.Property.Price.Equal(base.Property.Price))
}

func TestComposeStressBuildsDerivedConfig(t *testing.T) {
	base := baseConfig()
	base.Stress = domain.StressScenario{
		Enabled:                   true,
		RateShockYear:             11,
		RateShockDeltaPercent:     decimal.NewFromFloat(1.0),
		RentCurveOverride:         true,
		RentEarlyPercent:          decimal.NewFromFloat(1.0),
		RentLatePercent:           decimal.NewFromFloat(2.0),
		RentSwitchYear:            15,
		OccupancyDecline:          true,
		OccupancyDeclinePoints:    decimal.NewFromInt(5),
		OccupancyDeclineStartYear: 11,
	}

	out, err := ComposeStress(base)
	require.NoError(t, err)

	assert.Equal(t, 11, out.Loan.ShockYear)
	assert.Equal(t, 15, out.Income.RentSwitchYear)
	assert.True(t, out.Income.Occupancy.DeclinePoints.Equal(decimal.NewFromInt(5)))
	// The derived config cannot recurse into another stressed run.
	assert.False(t, out.Stress.Enabled)
	// The base still carries its stress block untouched.
	assert.True(t, base.Stress.Enabled)
	assert.Equal(t, 0, base.Loan.ShockYear)
}

func TestComposeStressInvalidShockYear(t *testing.T) {
	base := baseConfig()
	base.Stress = domain.StressScenario{Enabled: true, RateShockYear: 0}

	_, err := ComposeStress(base)
	assert.Error(t, err)
}
