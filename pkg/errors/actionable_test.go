package errors_test

import (
	"testing"

	"github.com/joe/fstour/pkg/errors"
)

func TestActionableError_FormatSuggestionsWithEmptySuggestions(t *testing.T) {
	t.Parallel()

	err := errors.NewActionableError(
		"unknown error",
		errors.KindOther,
		[]string{},
		"/path",
	)

	formatted := errors.FormatSuggestions(err)

	if formatted != "" {
		t.Errorf("expected empty string for no suggestions, got %q", formatted)
	}
}

func TestActionableError_FormatSuggestionsWithMultipleSuggestions(t *testing.T) {
	t.Parallel()

	err := errors.NewActionableError(
		"permission denied",
		errors.KindPermissionDenied,
		[]string{
			"Check permissions with 'ls -la'",
			"Ensure you have read/write access",
			"Try running with sudo",
		},
		"/path/to/file",
	)

	formatted := errors.FormatSuggestions(err)

	expected := "  • Check permissions with 'ls -la'\n  • Ensure you have read/write access\n  • Try running with sudo"
	if formatted != expected {
		t.Errorf("expected:\n%q\ngot:\n%q", expected, formatted)
	}
}

func TestActionableError_FormatSuggestionsWithNilError(t *testing.T) {
	t.Parallel()

	if formatted := errors.FormatSuggestions(nil); formatted != "" {
		t.Errorf("expected empty string for nil error, got %q", formatted)
	}
}

func TestActionableError_ProvidesDetails(t *testing.T) {
	t.Parallel()

	path := "/tmp/test/file.txt"
	err := errors.NewActionableError(
		"file not found",
		errors.KindNotFound,
		[]string{"Check if path exists"},
		path,
	)

	var _ error = err

	if err.AffectedPath() != path {
		t.Errorf("expected path %q, got %q", path, err.AffectedPath())
	}

	if err.Kind() != errors.KindNotFound {
		t.Errorf("expected kind %q, got %q", errors.KindNotFound, err.Kind())
	}

	if err.OriginalError() != "file not found" || err.Error() != "file not found" {
		t.Errorf("expected original message preserved, got %q / %q", err.OriginalError(), err.Error())
	}
}
