// Package errors classifies filesystem failures into a small set of kinds and
// enriches them with actionable suggestions.
//
// Every helper in pkg/fileops returns a *PathError carrying the operation,
// the affected path and a Kind. Callers inspect the kind with KindOf and
// decide whether to log, retry at a higher layer, or escalate:
//
//	err := ops.RemoveDir(dir)
//	switch errors.KindOf(err) {
//	case errors.KindNotFound:
//	    // already gone
//	case errors.KindDirectoryNotEmpty:
//	    // remove the contents first
//	}
//
// For console output the Enricher turns any error into an ActionableError:
//
//	enricher := errors.NewEnricher()
//	actionable := enricher.Enrich(err, "")
//	fmt.Println(actionable.Error())
//	fmt.Println(errors.FormatSuggestions(actionable))
package errors

import "strings"

// ActionableError represents an error with actionable suggestions for the user.
type ActionableError interface {
	error
	OriginalError() string
	Kind() Kind
	Suggestions() []string
	AffectedPath() string
}

// NewActionableError creates a new ActionableError with the given details.
func NewActionableError(
	originalError string,
	kind Kind,
	suggestions []string,
	affectedPath string,
) ActionableError {
	return &actionableError{
		originalError: originalError,
		kind:          kind,
		suggestions:   suggestions,
		affectedPath:  affectedPath,
	}
}

// FormatSuggestions formats the suggestions from an ActionableError as a bulleted list
// for console display. Returns empty string if the error is nil or has no suggestions.
func FormatSuggestions(err error) string {
	if err == nil {
		return ""
	}

	actionable, ok := err.(ActionableError)
	if !ok {
		return ""
	}

	suggestions := actionable.Suggestions()
	if len(suggestions) == 0 {
		return ""
	}

	var builder strings.Builder
	for i, suggestion := range suggestions {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString("  • ")
		builder.WriteString(suggestion)
	}

	return builder.String()
}

// actionableError is the concrete implementation of ActionableError.
type actionableError struct {
	originalError string
	kind          Kind
	suggestions   []string
	affectedPath  string
}

// AffectedPath returns the file path affected by this error.
func (e *actionableError) AffectedPath() string {
	return e.affectedPath
}

// Kind returns the error kind.
func (e *actionableError) Kind() Kind {
	return e.kind
}

// Error implements the error interface.
func (e *actionableError) Error() string {
	return e.originalError
}

// OriginalError returns the original error message.
func (e *actionableError) OriginalError() string {
	return e.originalError
}

// Suggestions returns the list of actionable suggestions.
func (e *actionableError) Suggestions() []string {
	return e.suggestions
}
