package calculation

import (
	"github.com/reisim/property-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// minRemainingLife floors the remaining-life convention: a building older
// than its statutory period still depreciates over a short positive life.
const minRemainingLife = 2

// DepreciationScheduler produces straight-line depreciation for the
// building body and, when the equipment split is enabled, a separate
// shorter schedule for equipment. Cumulative depreciation never exceeds the
// depreciable base.
type DepreciationScheduler struct {
	buildingBase decimal.Decimal
	buildingLife int

	equipmentBase decimal.Decimal
	equipmentLife int
}

// NewDepreciationScheduler splits the building price per the configuration
// and fixes both schedules.
func NewDepreciationScheduler(cfg *domain.Configuration) *DepreciationScheduler {
	buildingPrice := cfg.Property.BuildingPrice()

	life := cfg.Property.Structure.LegalUsefulLifeYears() - cfg.Property.AgeYears
	if life < minRemainingLife {
		life = minRemainingLife
	}

	ds := &DepreciationScheduler{
		buildingBase: buildingPrice,
		buildingLife: life,
	}

	if cfg.Depreciation.EquipmentSplit && cfg.Depreciation.EquipmentLifeYears > 0 {
		ds.equipmentBase = buildingPrice.Mul(pct(clampPercent(cfg.Depreciation.EquipmentRatioPercent)))
		ds.equipmentLife = cfg.Depreciation.EquipmentLifeYears
		ds.buildingBase = buildingPrice.Sub(ds.equipmentBase)
	}

	return ds
}

// straightLine returns the charge for one year of a straight-line schedule,
// zero once exhausted. The final year takes the remainder so the cumulative
// total lands exactly on the base.
func straightLine(base decimal.Decimal, life, year int) decimal.Decimal {
	if life <= 0 || year > life || base.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	annual := base.Div(decimal.NewFromInt(int64(life)))
	if year == life {
		return base.Sub(annual.Mul(decimal.NewFromInt(int64(life - 1))))
	}
	return annual
}

// Annual returns the total depreciation charge for a projection year.
func (ds *DepreciationScheduler) Annual(year int) decimal.Decimal {
	return straightLine(ds.buildingBase, ds.buildingLife, year).
		Add(straightLine(ds.equipmentBase, ds.equipmentLife, year))
}

// CumulativeThrough returns total depreciation booked in years 1..year.
func (ds *DepreciationScheduler) CumulativeThrough(year int) decimal.Decimal {
	total := decimal.Zero
	for y := 1; y <= year; y++ {
		total = total.Add(ds.Annual(y))
	}
	return total
}

// DepreciableBase returns the combined building and equipment base.
func (ds *DepreciationScheduler) DepreciableBase() decimal.Decimal {
	return ds.buildingBase.Add(ds.equipmentBase)
}
