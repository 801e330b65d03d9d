package domain

// StructureType identifies the building construction class. The statutory
// depreciation period and several estimation heuristics key off it.
type StructureType string

const (
	StructureRC         StructureType = "rc"          // reinforced concrete
	StructureSRC        StructureType = "src"         // steel-reinforced concrete
	StructureHeavySteel StructureType = "heavy_steel" // frame thickness > 4mm
	StructureLightSteel StructureType = "light_steel" // frame thickness <= 3mm
	StructureWood       StructureType = "wood"
)

// LegalUsefulLifeYears returns the statutory depreciation period for the
// structure type. Unknown types fall back to wood, the shortest schedule.
func (s StructureType) LegalUsefulLifeYears() int {
	switch s {
	case StructureRC:
		return 47
	case StructureSRC:
		return 39
	case StructureHeavySteel:
		return 34
	case StructureLightSteel:
		return 19
	case StructureWood:
		return 22
	default:
		return 22
	}
}

// Valid reports whether the structure type is one of the known classes.
func (s StructureType) Valid() bool {
	switch s {
	case StructureRC, StructureSRC, StructureHeavySteel, StructureLightSteel, StructureWood:
		return true
	}
	return false
}

// PropertyType classifies the building use for expense-ratio templates.
type PropertyType string

const (
	PropertyWoodApartment PropertyType = "wood_apartment"
	PropertyRCMansion     PropertyType = "rc_mansion"
	PropertyOffice        PropertyType = "office"
	PropertyCommercial    PropertyType = "commercial"
)

// Valid reports whether the property type is one of the known classes.
func (p PropertyType) Valid() bool {
	switch p {
	case PropertyWoodApartment, PropertyRCMansion, PropertyOffice, PropertyCommercial:
		return true
	}
	return false
}

// DefaultPropertyType maps a structure type to the expense-template class
// used when the configuration does not name one.
func DefaultPropertyType(s StructureType) PropertyType {
	switch s {
	case StructureRC, StructureSRC:
		return PropertyRCMansion
	case StructureWood:
		return PropertyWoodApartment
	default:
		return PropertyOffice
	}
}
