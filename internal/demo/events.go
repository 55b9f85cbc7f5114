package demo

import (
	"errors"
	"time"

	pkgerrors "github.com/joe/fstour/pkg/errors"
)

// Event is the interface implemented by all runner events.
type Event interface {
	isEvent()
}

// EventEmitter is the interface for emitting events.
type EventEmitter interface {
	Emit(event Event)
}

// StepStarted is emitted before a step runs.
type StepStarted struct {
	Index       int // zero-based position in the run
	Total       int
	Name        string
	Description string
}

func (StepStarted) isEvent() {}

// StepSucceeded is emitted when a step returns without error.
type StepSucceeded struct {
	Index    int
	Name     string
	Summary  string
	Duration time.Duration
}

func (StepSucceeded) isEvent() {}

// StepFailed is emitted when a step returns an error.
type StepFailed struct {
	Index    int
	Name     string
	Err      error
	Kind     pkgerrors.Kind
	Duration time.Duration
}

func (StepFailed) isEvent() {}

// StepSkipped is emitted for a step that did not run, or that hit a
// capability the backend lacks.
type StepSkipped struct {
	Index  int
	Name   string
	Reason string
}

func (StepSkipped) isEvent() {}

// RunComplete is emitted once, after the last step.
type RunComplete struct {
	Result *RunResult
}

func (RunComplete) isEvent() {}

// RunResult summarizes a run.
type RunResult struct {
	Succeeded int
	Failed    int
	Skipped   int
	// Aborted is set when a failure stopped the remaining steps.
	Aborted bool
	// PrepareErr is set when the workspace could not be prepared; no step ran.
	PrepareErr error
	Errors     []error
	Duration   time.Duration
}

// Err returns every failure of the run joined, or nil.
func (r *RunResult) Err() error {
	if r.PrepareErr != nil {
		return r.PrepareErr
	}

	return errors.Join(r.Errors...)
}

// emitterFunc adapts a function to EventEmitter.
type emitterFunc func(Event)

func (f emitterFunc) Emit(event Event) { f(event) }

// MultiEmitter fans events out to several emitters in order.
type MultiEmitter []EventEmitter

// Emit implements EventEmitter.
func (m MultiEmitter) Emit(event Event) {
	for _, e := range m {
		e.Emit(event)
	}
}

// EmitterFunc returns an EventEmitter that calls fn.
func EmitterFunc(fn func(Event)) EventEmitter {
	return emitterFunc(fn)
}
