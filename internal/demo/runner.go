package demo

import (
	"context"
	"time"

	pkgerrors "github.com/joe/fstour/pkg/errors"
)

// Runner executes steps in order against an Env and emits an event for
// every transition. By default it stops at the first failure; the remaining
// steps are reported as skipped.
type Runner struct {
	env       *Env
	steps     []Step
	emitter   EventEmitter
	keepGoing bool
	clean     bool
	now       func() time.Time
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithEmitter sets the event emitter.
func WithEmitter(emitter EventEmitter) RunnerOption {
	return func(r *Runner) {
		r.emitter = emitter
	}
}

// WithKeepGoing makes the runner continue after a failed step.
func WithKeepGoing(keepGoing bool) RunnerOption {
	return func(r *Runner) {
		r.keepGoing = keepGoing
	}
}

// WithClean empties the workspace before the first step.
func WithClean(clean bool) RunnerOption {
	return func(r *Runner) {
		r.clean = clean
	}
}

// NewRunner creates a runner for steps.
func NewRunner(env *Env, steps []Step, opts ...RunnerOption) *Runner {
	runner := &Runner{
		env:     env,
		steps:   steps,
		emitter: EmitterFunc(func(Event) {}),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(runner)
	}

	return runner
}

// Run prepares the workspace and executes every step.
// A step failing with KindUnsupported is a capability gap of the backend:
// it is reported as skipped and does not stop the run.
func (r *Runner) Run(ctx context.Context) *RunResult {
	start := r.now()
	result := &RunResult{}

	defer func() {
		result.Duration = r.now().Sub(start)
		r.emitter.Emit(RunComplete{Result: result})
	}()

	if err := r.prepare(); err != nil {
		result.PrepareErr = err
		return result
	}

	for i, step := range r.steps {
		if reason := r.skipReason(ctx, result); reason != "" {
			result.Skipped++
			r.emitter.Emit(StepSkipped{Index: i, Name: step.Name, Reason: reason})

			continue
		}

		r.runStep(ctx, i, step, result)
	}

	return result
}

func (r *Runner) runStep(ctx context.Context, index int, step Step, result *RunResult) {
	r.emitter.Emit(StepStarted{
		Index:       index,
		Total:       len(r.steps),
		Name:        step.Name,
		Description: step.Description,
	})

	stepStart := r.now()
	summary, err := step.Run(ctx, r.env)
	elapsed := r.now().Sub(stepStart)

	switch {
	case err == nil:
		result.Succeeded++
		r.emitter.Emit(StepSucceeded{Index: index, Name: step.Name, Summary: summary, Duration: elapsed})
	case pkgerrors.Is(err, pkgerrors.KindUnsupported):
		result.Skipped++
		r.emitter.Emit(StepSkipped{Index: index, Name: step.Name, Reason: err.Error()})
	default:
		result.Failed++
		result.Errors = append(result.Errors, err)
		r.emitter.Emit(StepFailed{
			Index:    index,
			Name:     step.Name,
			Err:      err,
			Kind:     pkgerrors.KindOf(err),
			Duration: elapsed,
		})

		if !r.keepGoing {
			result.Aborted = true
		}
	}
}

func (r *Runner) skipReason(ctx context.Context, result *RunResult) string {
	switch {
	case result.Aborted:
		return "an earlier step failed"
	case ctx.Err() != nil:
		return "canceled: " + ctx.Err().Error()
	default:
		return ""
	}
}

func (r *Runner) prepare() error {
	if r.clean {
		if err := Clean(r.env.Ops, r.env.Root); err != nil {
			return err
		}
	}

	return r.env.Ops.CreateDirAll(r.env.Root)
}
