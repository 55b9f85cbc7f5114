package errors_test

import (
	"strings"
	"testing"

	"github.com/joe/fstour/pkg/errors"
)

func TestSuggestionGenerator_EveryKindHasSuggestions(t *testing.T) {
	t.Parallel()

	kinds := []errors.Kind{
		errors.KindAlreadyExists,
		errors.KindDirectoryNotEmpty,
		errors.KindDiskSpace,
		errors.KindInvalidData,
		errors.KindIsDirectory,
		errors.KindNotDirectory,
		errors.KindNotFound,
		errors.KindOther,
		errors.KindPermissionDenied,
		errors.KindUnsupported,
		errors.Kind("made_up"),
	}

	gen := errors.NewSuggestionGenerator()

	for _, kind := range kinds {
		if suggestions := gen.Generate(kind, "/some/path"); len(suggestions) == 0 {
			t.Errorf("expected suggestions for kind %q, got none", kind)
		}
	}
}

func TestSuggestionGenerator_NotEmptyMentionsPath(t *testing.T) {
	t.Parallel()

	suggestions := errors.NewSuggestionGenerator().Generate(errors.KindDirectoryNotEmpty, "/path/to/directory")

	found := false
	for _, suggestion := range suggestions {
		if strings.Contains(suggestion, "/path/to/directory") {
			found = true

			break
		}
	}

	if !found {
		t.Errorf("expected a suggestion naming the directory, got: %v", suggestions)
	}
}

func TestSuggestionGenerator_NotFoundWithoutPath(t *testing.T) {
	t.Parallel()

	suggestions := errors.NewSuggestionGenerator().Generate(errors.KindNotFound, "")

	for _, suggestion := range suggestions {
		if strings.Contains(suggestion, ": ") {
			t.Errorf("expected no path placeholder without a path, got %q", suggestion)
		}
	}
}
