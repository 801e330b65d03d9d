package output

import (
	"strings"

	"github.com/reisim/property-calculator/internal/domain"
)

// Formatter renders a simulation result for one output medium.
type Formatter interface {
	// Format renders the result to a string.
	Format(result *domain.SimulationResult) (string, error)
	// Name returns the registry key of the formatter.
	Name() string
}

// GetFormatterByName returns the formatter for a name, defaulting to the
// console table for anything unrecognized.
func GetFormatterByName(name string) Formatter {
	switch strings.ToLower(name) {
	case "csv":
		return &CSVFormatter{}
	case "json":
		return &JSONFormatter{}
	case "console", "table", "":
		return &ConsoleFormatter{}
	default:
		return &ConsoleFormatter{}
	}
}
