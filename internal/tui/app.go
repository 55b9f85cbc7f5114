package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/fstour/internal/demo"
	"github.com/joe/fstour/internal/logger"
	"github.com/joe/fstour/internal/tui/shared"
)

// RunFunc starts a run that reports to emitter and writes step output to
// out. It is called on its own goroutine and must return when ctx is done.
type RunFunc func(ctx context.Context, emitter demo.EventEmitter, out logger.Logger) *demo.RunResult

// Options configures Run.
type Options struct {
	// Root is shown in the title.
	Root  string
	Steps []demo.Step
	// Input and Output default to the terminal.
	Input  io.Reader
	Output io.Writer
}

// Run shows the live view while start executes the steps, and returns the
// run's result once both the view and the run have finished.
func Run(ctx context.Context, opts Options, start RunFunc) (*demo.RunResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bridge := shared.NewEventBridge()
	results := make(chan *demo.RunResult, 1)

	go func() {
		defer bridge.Close()

		results <- start(ctx, bridge, NewOutputLogger(bridge))
	}()

	var programOpts []tea.ProgramOption
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}

	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}

	program := tea.NewProgram(NewModel(opts.Root, opts.Steps, bridge, cancel), programOpts...)

	_, err := program.Run()

	// Nobody listens any more; let the runner drain and finish.
	bridge.Detach()
	cancel()

	result := <-results
	if err != nil {
		return result, fmt.Errorf("failed to run terminal UI: %w", err)
	}

	return result, nil
}
