// Package pathutil builds platform-native filesystem paths from text segments.
//
// A Path holds raw bytes in the platform form. It is not guaranteed to be
// valid UTF-8, so converting it to text can fail; Display always succeeds
// by substituting invalid bytes.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Path is an immutable, platform-native filesystem path.
// The zero value is the empty path.
type Path struct {
	raw string
}

// New returns the Path for the given text. It never fails and does not
// check whether anything exists at that location.
func New(text string) Path {
	return Path{raw: text}
}

// FromBytes returns the Path for raw platform bytes, which need not be UTF-8.
func FromBytes(b []byte) Path {
	return Path{raw: string(b)}
}

// Join appends segment using the platform separator and returns a new Path.
// The receiver is left unchanged. An absolute segment replaces the base.
// The base is not cleaned, so New(".").Join("a") renders as "./a".
func (p Path) Join(segment string) Path {
	switch {
	case segment == "":
		return p
	case p.raw == "", filepath.IsAbs(segment):
		return Path{raw: segment}
	case os.IsPathSeparator(p.raw[len(p.raw)-1]):
		return Path{raw: p.raw + segment}
	default:
		return Path{raw: p.raw + string(filepath.Separator) + segment}
	}
}

// JoinAll appends each segment in order.
func (p Path) JoinAll(segments ...string) Path {
	for _, s := range segments {
		p = p.Join(s)
	}

	return p
}

// Text returns the text form of the path, or false when the underlying
// bytes are not valid UTF-8.
func (p Path) Text() (string, bool) {
	if !utf8.ValidString(p.raw) {
		return "", false
	}

	return p.raw, true
}

// Display returns a human-presentable rendering. Invalid UTF-8 sequences
// are replaced with U+FFFD.
func (p Path) Display() string {
	return strings.ToValidUTF8(p.raw, string(utf8.RuneError))
}

// String implements fmt.Stringer using Display.
func (p Path) String() string {
	return p.Display()
}

// Native returns the path in the form the operating system expects.
// It is the value to hand to os and filesystem backends.
func (p Path) Native() string {
	return p.raw
}

// Bytes returns a copy of the raw path bytes.
func (p Path) Bytes() []byte {
	return []byte(p.raw)
}

// IsEmpty reports whether the path has no bytes at all.
func (p Path) IsEmpty() bool { return p.raw == "" }

// IsAbs reports whether the path is absolute on this platform.
func (p Path) IsAbs() bool { return filepath.IsAbs(p.raw) }

// Base returns the last element of the path.
func (p Path) Base() string {
	return filepath.Base(p.raw)
}

// Dir returns all but the last element of the path.
func (p Path) Dir() Path {
	return Path{raw: filepath.Dir(p.raw)}
}

// Clean returns the shortest equivalent path, per filepath.Clean.
func (p Path) Clean() Path {
	return Path{raw: filepath.Clean(p.raw)}
}
