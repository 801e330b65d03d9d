package tui

import (
	"github.com/reisim/property-calculator/internal/domain"
)

// ConfigLoadedMsg carries the parsed configuration after the initial load.
type ConfigLoadedMsg struct {
	Config *domain.Configuration
}

// SimulationCompleteMsg carries a finished simulation run.
type SimulationCompleteMsg struct {
	Result *domain.SimulationResult
}

// ErrorMsg carries a load or parse failure into the update loop.
type ErrorMsg struct {
	Err error
}
