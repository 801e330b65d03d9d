package calculation

import (
	"github.com/reisim/property-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// PropertyTaxAssessor computes the annual property tax and the one-time
// acquisition tax from assessed (not market) values.
type PropertyTaxAssessor struct {
	params        domain.PropertyTaxParameters
	landPrice     decimal.Decimal
	buildingPrice decimal.Decimal
	ageAtAcq      int
}

// NewPropertyTaxAssessor builds an assessor from the configuration.
func NewPropertyTaxAssessor(cfg *domain.Configuration) *PropertyTaxAssessor {
	return &PropertyTaxAssessor{
		params:        cfg.PropertyTax,
		landPrice:     cfg.Property.LandPrice(),
		buildingPrice: cfg.Property.BuildingPrice(),
		ageAtAcq:      cfg.Property.AgeYears,
	}
}

// LandEvaluation is the assessed land value, constant across years.
func (pa *PropertyTaxAssessor) LandEvaluation() decimal.Decimal {
	return pa.landPrice.Mul(pct(clampPercent(pa.params.LandEvaluationPercent)))
}

// BuildingEvaluation is the assessed building value for a projection year,
// written down annually with age to a floor.
func (pa *PropertyTaxAssessor) BuildingEvaluation(year int) decimal.Decimal {
	base := pa.buildingPrice.Mul(pct(clampPercent(pa.params.BuildingEvaluationPercent)))
	age := pa.ageAtAcq + year - 1

	factor := one.Sub(pct(clampPercent(pa.params.AgingWritedownPercent)).Mul(decimal.NewFromInt(int64(age))))
	floor := pct(clampPercent(pa.params.AgingFloorPercent))
	if factor.LessThan(floor) {
		factor = floor
	}
	return base.Mul(factor)
}

// AnnualTax returns the property tax for a projection year. During the
// new-build relief window the building's taxable base is reduced; the land
// special reduction applies every year.
func (pa *PropertyTaxAssessor) AnnualTax(year int) decimal.Decimal {
	taxableLand := pa.LandEvaluation().Mul(pct(clampPercent(pa.params.LandReductionPercent)))

	buildingEval := pa.BuildingEvaluation(year)
	taxableBuilding := buildingEval
	if pa.inReliefWindow(year) {
		taxableBuilding = buildingEval.Mul(one.Sub(pct(clampPercent(pa.params.NewBuildReductionPercent))))
	}

	return taxableLand.Add(taxableBuilding).Mul(pct(clampPercent(pa.params.EffectiveTaxPercent)))
}

// inReliefWindow reports whether the building is still inside the new-build
// reduction period, counted from construction.
func (pa *PropertyTaxAssessor) inReliefWindow(year int) bool {
	if pa.params.NewBuildReductionYears <= 0 {
		return false
	}
	age := pa.ageAtAcq + year - 1
	return age < pa.params.NewBuildReductionYears
}

// AcquisitionTax is the one-time tax booked in the configured year:
// (land evaluation x land reduction + building evaluation) x rate.
func (pa *PropertyTaxAssessor) AcquisitionTax() decimal.Decimal {
	landBase := pa.LandEvaluation().Mul(pct(clampPercent(pa.params.AcquisitionLandPercent)))
	base := landBase.Add(pa.BuildingEvaluation(1))
	return base.Mul(pct(clampPercent(pa.params.AcquisitionTaxPercent)))
}

// AcquisitionTaxYear returns the projection year the acquisition tax is
// booked in. Values outside {1, 2} clamp to 1.
func (pa *PropertyTaxAssessor) AcquisitionTaxYear() int {
	if pa.params.AcquisitionTaxYear == 2 {
		return 2
	}
	return 1
}
