// Package tui renders a demonstration run as a live bubbletea view.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/fstour/internal/demo"
	"github.com/joe/fstour/internal/tui/shared"
	pkgerrors "github.com/joe/fstour/pkg/errors"
)

// StepState is the display state of one step.
type StepState int

// StepState values.
const (
	StatePending StepState = iota
	StateRunning
	StateSucceeded
	StateFailed
	StateSkipped
)

// StepRow is one line of the step list.
type StepRow struct {
	Name        string
	Description string
	State       StepState
	// Detail is the summary, failure or skip reason once the step settled.
	Detail     string
	Suggestion string
	Duration   time.Duration
}

// Model represents the TUI state
type Model struct {
	title    string
	root     string
	bridge   *shared.EventBridge
	cancel   context.CancelFunc
	enricher pkgerrors.Enricher

	rows    []StepRow
	output  []string
	spinner spinner.Model
	width   int

	result    *demo.RunResult
	canceling bool
	quitting  bool
}

// NewModel creates a model for steps, fed by bridge. cancel stops the run
// when the user interrupts it; it may be nil.
func NewModel(root string, steps []demo.Step, bridge *shared.EventBridge, cancel context.CancelFunc) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = shared.SpinnerStyle()

	rows := make([]StepRow, len(steps))
	for i, step := range steps {
		rows[i] = StepRow{Name: step.Name, Description: step.Description}
	}

	if cancel == nil {
		cancel = func() {}
	}

	return Model{
		title:    "fstour",
		root:     root,
		bridge:   bridge,
		cancel:   cancel,
		enricher: pkgerrors.NewEnricher(),
		rows:     rows,
		spinner:  s,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.bridge.ListenCmd())
}

// Rows returns the current step list.
func (m Model) Rows() []StepRow {
	return m.rows
}

// Output returns the step output collected so far.
func (m Model) Output() []string {
	return m.output
}

// Result returns the run result once the run completed, else nil.
func (m Model) Result() *demo.RunResult {
	return m.result
}

// Canceling reports whether the user asked to stop the run.
func (m Model) Canceling() bool {
	return m.canceling
}
