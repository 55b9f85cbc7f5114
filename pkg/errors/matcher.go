package errors

import "strings"

// PatternMatcher matches error messages to kinds using string patterns.
type PatternMatcher interface {
	// Match returns the kind for errorMsg, or "" when nothing matches.
	Match(errorMsg string) Kind
}

// NewPatternMatcher creates a new PatternMatcher with predefined patterns.
func NewPatternMatcher() PatternMatcher {
	return &patternMatcher{
		// Order matters: "directory not empty" must win over the generic
		// "file exists" family some platforms report for ENOTEMPTY.
		patterns: []kindPatterns{
			{KindDirectoryNotEmpty, []string{
				"directory not empty",
				"directory is not empty",
			}},
			{KindDiskSpace, []string{
				"no space left on device",
				"disk full",
				"quota exceeded",
			}},
			{KindPermissionDenied, []string{
				"permission denied",
				"access denied",
				"access is denied",
				"operation not permitted",
			}},
			{KindNotFound, []string{
				"no such file or directory",
				"file does not exist",
				"file not found",
				"path does not exist",
				"cannot find the",
			}},
			{KindAlreadyExists, []string{
				"file exists",
				"already exists",
			}},
			{KindIsDirectory, []string{
				"is a directory",
			}},
			{KindNotDirectory, []string{
				"not a directory",
			}},
			{KindInvalidData, []string{
				"invalid utf-8",
				"valid utf-8",
			}},
			{KindUnsupported, []string{
				"not supported",
				"unsupported operation",
				"not implemented",
			}},
		},
	}
}

type kindPatterns struct {
	kind     Kind
	patterns []string
}

// patternMatcher is the concrete implementation of PatternMatcher.
type patternMatcher struct {
	patterns []kindPatterns
}

// Match returns the error kind based on pattern matching.
func (m *patternMatcher) Match(errorMsg string) Kind {
	lowerMsg := strings.ToLower(errorMsg)

	for _, entry := range m.patterns {
		for _, pattern := range entry.patterns {
			if strings.Contains(lowerMsg, pattern) {
				return entry.kind
			}
		}
	}

	return ""
}
