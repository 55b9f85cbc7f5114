package errors

import (
	"errors"
	"io/fs"
	"os"
)

// PathError records a failed operation on a path together with its kind.
// It unwraps to the underlying cause, so errors.Is(err, fs.ErrNotExist)
// keeps working on values returned by the helper layer.
type PathError struct {
	Op   string
	Path string
	Kind Kind
	Err  error
}

// New wraps err as a *PathError, classifying it with KindOf.
// It returns nil when err is nil.
func New(op, path string, err error) error {
	if err == nil {
		return nil
	}

	return &PathError{Op: op, Path: path, Kind: KindOf(err), Err: err}
}

// WithKind wraps err as a *PathError with an explicit kind.
// A nil err is replaced by a plain error naming the kind.
func WithKind(op, path string, kind Kind, err error) error {
	if err == nil {
		err = errors.New(kind.String())
	}

	return &PathError{Op: op, Path: path, Kind: kind, Err: err}
}

// Error implements the error interface. When the cause already names a
// path (an *fs.PathError or *os.LinkError somewhere in its chain), only its
// innermost reason is printed so the path is not repeated.
func (e *PathError) Error() string {
	if e.Path == "" {
		return e.Op + ": " + reason(e.Err)
	}

	return e.Op + " " + e.Path + ": " + reason(e.Err)
}

// Unwrap returns the underlying cause.
func (e *PathError) Unwrap() error {
	return e.Err
}

func reason(err error) string {
	var fsErr *fs.PathError
	if errors.As(err, &fsErr) && fsErr.Err != nil {
		return fsErr.Err.Error()
	}

	var linkErr *os.LinkError
	if errors.As(err, &linkErr) && linkErr.Err != nil {
		return linkErr.Err.Error()
	}

	return err.Error()
}
