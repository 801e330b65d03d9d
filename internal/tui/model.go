package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/reisim/property-calculator/internal/calculation"
	"github.com/reisim/property-calculator/internal/config"
	"github.com/reisim/property-calculator/internal/domain"
)

// scenarioView selects which series the table shows.
type scenarioView int

const (
	viewBaseline scenarioView = iota
	viewStressed
)

// keyMap holds the application key bindings.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Switch   key.Binding
	Exit     key.Binding
	Reload   key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "f"), key.WithHelp("pgdn", "page down")),
		Switch:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "baseline/stressed")),
		Exit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "exit panel")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload config")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is the whole application state: the loaded configuration, the latest
// simulation result and the table viewport over it.
type Model struct {
	configPath string
	config     *domain.Configuration
	engine     *calculation.CalculationEngine
	result     *domain.SimulationResult

	view      scenarioView
	showExit  bool
	rowOffset int

	width  int
	height int

	keys    keyMap
	loading bool
	err     error
}

// NewModel creates the application model for a configuration file path.
func NewModel(configPath string) Model {
	return Model{
		configPath: configPath,
		engine:     calculation.NewCalculationEngine(),
		keys:       defaultKeyMap(),
		loading:    true,
		width:      100,
		height:     30,
	}
}

// Init kicks off the configuration load.
func (m Model) Init() tea.Cmd {
	return loadConfigCmd(m.configPath)
}

func loadConfigCmd(path string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ConfigLoadedMsg{Config: cfg}
	}
}

func simulateCmd(engine *calculation.CalculationEngine, cfg *domain.Configuration) tea.Cmd {
	return func() tea.Msg {
		return SimulationCompleteMsg{Result: engine.Simulate(cfg)}
	}
}

// series returns the yearly rows for the selected view.
func (m Model) series() []domain.YearlyResult {
	if m.result == nil {
		return nil
	}
	if m.view == viewStressed && len(m.result.Stressed) > 0 {
		return m.result.Stressed
	}
	return m.result.Baseline
}

// exitSummary returns the exit block for the selected view, if any.
func (m Model) exitSummary() *domain.ExitSummary {
	if m.result == nil {
		return nil
	}
	if m.view == viewStressed && m.result.StressedExit != nil {
		return m.result.StressedExit
	}
	return m.result.Exit
}
