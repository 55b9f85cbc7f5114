package errors

import "fmt"

// SuggestionGenerator generates actionable suggestions based on error kind.
type SuggestionGenerator interface {
	Generate(kind Kind, affectedPath string) []string
}

// NewSuggestionGenerator creates a new SuggestionGenerator.
func NewSuggestionGenerator() SuggestionGenerator {
	return &suggestionGenerator{}
}

// suggestionGenerator is the concrete implementation of SuggestionGenerator.
type suggestionGenerator struct{}

// Generate returns actionable suggestions based on the error kind and affected path.
//
//nolint:cyclop // One branch per kind
func (g *suggestionGenerator) Generate(kind Kind, affectedPath string) []string {
	switch kind {
	case KindPermissionDenied:
		return g.generatePermissionSuggestions(affectedPath)
	case KindDiskSpace:
		return g.generateDiskSpaceSuggestions(affectedPath)
	case KindNotFound:
		return g.generateNotFoundSuggestions(affectedPath)
	case KindAlreadyExists:
		return g.generateAlreadyExistsSuggestions(affectedPath)
	case KindDirectoryNotEmpty:
		return g.generateNotEmptySuggestions(affectedPath)
	case KindIsDirectory, KindNotDirectory:
		return g.generateWrongTypeSuggestions(kind, affectedPath)
	case KindInvalidData:
		return g.generateInvalidDataSuggestions(affectedPath)
	case KindUnsupported:
		return g.generateUnsupportedSuggestions()
	case KindOther:
		return g.generateOtherSuggestions(affectedPath)
	default:
		return g.generateOtherSuggestions(affectedPath)
	}
}

func (g *suggestionGenerator) generateAlreadyExistsSuggestions(path string) []string {
	suggestions := []string{
		"Pick a different name or remove the existing entry first",
	}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("Inspect the existing entry with 'ls -la %s'", path))
	}

	suggestions = append(suggestions, "Use the create-all variant if an existing directory is acceptable")

	return suggestions
}

func (g *suggestionGenerator) generateDiskSpaceSuggestions(path string) []string {
	suggestions := []string{
		"Free up space on the destination device",
		"Check available space with 'df -h'",
	}

	if path != "" {
		suggestions = append(suggestions, "Verify disk usage for the filesystem containing "+path)
	}

	return suggestions
}

func (g *suggestionGenerator) generateInvalidDataSuggestions(path string) []string {
	suggestions := []string{
		"The content is not valid UTF-8 text; read it as bytes instead",
	}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("Check the encoding with 'file %s'", path))
	}

	return suggestions
}

func (g *suggestionGenerator) generateNotEmptySuggestions(path string) []string {
	suggestions := []string{
		"Ensure the directory is empty before attempting to remove it",
	}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("List contents with 'ls -la %s'", path))
	}

	suggestions = append(suggestions, "Remove contents first or use a recursive delete if appropriate")

	return suggestions
}

func (g *suggestionGenerator) generateNotFoundSuggestions(path string) []string {
	suggestions := []string{
		"Verify the path exists and is spelled correctly",
	}

	if path != "" {
		suggestions = append(suggestions, "Check if the path exists: "+path)
		suggestions = append(suggestions, "Ensure all parent directories exist for "+path)
	} else {
		suggestions = append(suggestions, "Ensure all parent directories exist")
	}

	return suggestions
}

func (g *suggestionGenerator) generateOtherSuggestions(path string) []string {
	suggestions := []string{
		"Check the error message for more details",
		"Verify file and directory permissions",
	}

	if path != "" {
		suggestions = append(suggestions, "Verify the path is accessible: "+path)
	}

	return suggestions
}

func (g *suggestionGenerator) generatePermissionSuggestions(path string) []string {
	suggestions := []string{
		"Ensure you have read/write permissions for the files and directories",
	}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("Check permissions with 'ls -la %s'", path))
	} else {
		suggestions = append(suggestions, "Check permissions with 'ls -la' on the affected path")
	}

	return suggestions
}

func (g *suggestionGenerator) generateUnsupportedSuggestions() []string {
	return []string{
		"This backend or platform does not provide the operation",
		"Run against the local backend on a platform with symbolic link support",
	}
}

func (g *suggestionGenerator) generateWrongTypeSuggestions(kind Kind, path string) []string {
	var suggestions []string
	if kind == KindIsDirectory {
		suggestions = append(suggestions, "The target is a directory; use the directory removal operation")
	} else {
		suggestions = append(suggestions, "The target is not a directory; use the file removal operation")
	}

	if path != "" {
		suggestions = append(suggestions, fmt.Sprintf("Inspect the entry with 'ls -ld %s'", path))
	}

	return suggestions
}
