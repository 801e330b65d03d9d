package output

import (
	"encoding/json"

	"github.com/reisim/property-calculator/internal/domain"
)

// JSONFormatter emits the whole simulation result as indented JSON.
type JSONFormatter struct{}

// Name implements Formatter.
func (jf *JSONFormatter) Name() string { return "json" }

// Format implements Formatter.
func (jf *JSONFormatter) Format(result *domain.SimulationResult) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
