package errors

import (
	"errors"
	"regexp"
	"strings"
)

// Enricher enriches standard errors with actionable suggestions.
type Enricher interface {
	Enrich(err error, affectedPath string) error
}

// NewEnricher creates a new Enricher with the default suggestion generator.
func NewEnricher() Enricher {
	return &enricher{
		generator: NewSuggestionGenerator(),
	}
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Compiled regexes shared across all enricher instances
	pathExtractionPatterns = []*regexp.Regexp{
		// Unix/Linux paths (absolute and relative)
		regexp.MustCompile(`\b\w+\s+([./][^\s:]+):`),
		// Windows paths with backslashes
		regexp.MustCompile(`\b\w+\s+([A-Za-z]:\\[^\s:]+):`),
		// Windows paths with forward slashes
		regexp.MustCompile(`\b\w+\s+([A-Za-z]:/[^\s:]+):`),
	}
)

// enricher is the concrete implementation of Enricher.
type enricher struct {
	generator SuggestionGenerator
}

// Enrich takes an error and returns an ActionableError carrying its kind and
// suggestions. An ActionableError is returned unchanged; nil stays nil.
// When affectedPath is empty it is taken from a *PathError, or failing that
// extracted from the message.
func (e *enricher) Enrich(err error, affectedPath string) error {
	if err == nil {
		return nil
	}

	var actionableErr ActionableError
	if errors.As(err, &actionableErr) {
		return actionableErr
	}

	errMsg := err.Error()

	if affectedPath == "" {
		var pathErr *PathError
		if errors.As(err, &pathErr) {
			affectedPath = pathErr.Path
		} else {
			affectedPath = extractPath(errMsg)
		}
	}

	kind := KindOf(err)

	return NewActionableError(
		errMsg,
		kind,
		e.generator.Generate(kind, affectedPath),
		affectedPath,
	)
}

// extractPath attempts to extract a file path from common Go error message formats,
// such as "open /path/to/file: permission denied" or
// "remove C:\Windows\temp\data: directory not empty".
// Returns empty string if no path is found.
func extractPath(errorMsg string) string {
	for _, pattern := range pathExtractionPatterns {
		if matches := pattern.FindStringSubmatch(errorMsg); len(matches) > 1 {
			path := strings.TrimSpace(matches[1])
			if path != "" {
				return path
			}
		}
	}

	return ""
}
