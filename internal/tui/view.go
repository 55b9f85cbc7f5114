package tui

import (
	"fmt"
	"strings"

	"github.com/joe/fstour/internal/tui/shared"
)

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(shared.RenderTitle(m.title + " " + shared.RenderDim(m.root)))
	b.WriteString("\n")

	for _, row := range m.rows {
		b.WriteString(m.renderRow(row))
		b.WriteString("\n")
	}

	if len(m.output) > 0 {
		b.WriteString("\n")
		b.WriteString(shared.RenderActivityLog("Output", m.output, shared.ActivityLogEntries, m.lineWidth()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderRow(row StepRow) string {
	var icon, detail string

	switch row.State {
	case StatePending:
		icon = shared.RenderDim(shared.IconPending)
		detail = shared.RenderDim(row.Description)
	case StateRunning:
		icon = m.spinner.View()
		detail = row.Description
	case StateSucceeded:
		icon = shared.RenderSuccess(shared.IconSuccess)
		detail = row.Detail + shared.RenderDim(" "+shared.FormatDuration(row.Duration))
	case StateFailed:
		icon = shared.RenderError(shared.IconFailure)
		detail = shared.RenderError(row.Detail)

		if row.Suggestion != "" {
			detail += "\n      " + shared.RenderDim("→ "+row.Suggestion)
		}
	case StateSkipped:
		icon = shared.RenderWarning(shared.IconSkipped)
		detail = shared.RenderDim("skipped: " + row.Detail)
	}

	return fmt.Sprintf("  %s %-10s %s", icon, row.Name, detail)
}

func (m Model) renderFooter() string {
	if m.result == nil {
		if m.canceling {
			return shared.RenderWarning("canceling... (press q again to quit now)")
		}

		return shared.RenderDim("q: cancel")
	}

	if m.result.PrepareErr != nil {
		return shared.RenderBox(shared.RenderError("could not prepare the workspace: " + m.result.PrepareErr.Error()))
	}

	summary := fmt.Sprintf("%d succeeded, %d failed, %d skipped in %s",
		m.result.Succeeded, m.result.Failed, m.result.Skipped, shared.FormatDuration(m.result.Duration))

	if m.result.Failed > 0 {
		return shared.RenderBox(shared.RenderError(summary))
	}

	return shared.RenderBox(shared.RenderSuccess(summary))
}

// lineWidth is the room left for an output line after its indent.
func (m Model) lineWidth() int {
	const indent = 2
	if m.width <= indent {
		return 0
	}

	return m.width - indent
}
