package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/fstour/internal/demo"
	"github.com/joe/fstour/internal/tui/shared"
	pkgerrors "github.com/joe/fstour/pkg/errors"
)

// maxOutputLines bounds the retained step output.
const maxOutputLines = 200

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width

		return m, nil

	case spinner.TickMsg:
		if m.result != nil {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case shared.OutputLineMsg:
		m.appendOutput(msg.Text)

		return m, m.bridge.ListenCmd()

	case shared.RunnerEventMsg:
		m.applyEvent(msg.Event)

		if m.result != nil {
			m.quitting = true
			return m, tea.Quit
		}

		return m, m.bridge.ListenCmd()

	case shared.BridgeClosedMsg:
		m.quitting = true

		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case shared.KeyCtrlC, "q", "esc":
	default:
		return m, nil
	}

	if m.result != nil || m.canceling {
		m.quitting = true
		return m, tea.Quit
	}

	// The runner skips what is left and completes.
	m.canceling = true
	m.cancel()

	return m, nil
}

func (m *Model) applyEvent(event demo.Event) {
	switch e := event.(type) {
	case demo.StepStarted:
		if row := m.row(e.Index); row != nil {
			row.State = StateRunning
		}

	case demo.StepSucceeded:
		if row := m.row(e.Index); row != nil {
			row.State = StateSucceeded
			row.Detail = e.Summary
			row.Duration = e.Duration
		}

	case demo.StepFailed:
		if row := m.row(e.Index); row != nil {
			row.State = StateFailed
			row.Detail = e.Err.Error() + " (" + e.Kind.String() + ")"
			row.Suggestion = m.firstSuggestion(e.Err)
			row.Duration = e.Duration
		}

	case demo.StepSkipped:
		if row := m.row(e.Index); row != nil {
			row.State = StateSkipped
			row.Detail = e.Reason
		}

	case demo.RunComplete:
		m.result = e.Result
	}
}

func (m *Model) row(index int) *StepRow {
	if index < 0 || index >= len(m.rows) {
		return nil
	}

	return &m.rows[index]
}

func (m *Model) appendOutput(line string) {
	m.output = append(m.output, line)
	if len(m.output) > maxOutputLines {
		m.output = m.output[len(m.output)-maxOutputLines:]
	}
}

func (m Model) firstSuggestion(err error) string {
	actionable, ok := m.enricher.Enrich(err, "").(pkgerrors.ActionableError)
	if !ok || len(actionable.Suggestions()) == 0 {
		return ""
	}

	return actionable.Suggestions()[0]
}
