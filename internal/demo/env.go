// Package demo runs the filesystem helpers as an ordered demonstration,
// reporting each step through events.
package demo

import (
	"errors"

	"github.com/joe/fstour/internal/logger"
	"github.com/joe/fstour/pkg/fileops"
	"github.com/joe/fstour/pkg/pathutil"
)

// Exported variables.
var (
	ErrUnknownStep = errors.New("unknown step")
)

// Env is what every step runs against.
type Env struct {
	Ops  *fileops.FileOps
	Root pathutil.Path
	// Out receives the detailed output of each step.
	Out logger.Logger
}

// NewEnv creates an environment. A nil out discards step output; an empty
// root is the working directory.
func NewEnv(ops *fileops.FileOps, root pathutil.Path, out logger.Logger) *Env {
	if out == nil {
		out = logger.NewNoOpLogger()
	}

	if root.IsEmpty() {
		root = pathutil.New(".")
	}

	return &Env{Ops: ops, Root: root, Out: out}
}

// Path returns the workspace path for the given segments.
func (e *Env) Path(segments ...string) pathutil.Path {
	return e.Root.JoinAll(segments...)
}
