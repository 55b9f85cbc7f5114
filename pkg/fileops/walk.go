package fileops

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	pkgerrors "github.com/joe/fstour/pkg/errors"
	"github.com/joe/fstour/pkg/pathutil"
)

// WalkEntry is one entry below a walked root.
type WalkEntry struct {
	Path pathutil.Path
	// RelativePath is slash-separated and relative to the walk root.
	RelativePath string
	Depth        int
	Size         int64
	IsDir        bool
	IsSymlink    bool
}

// Walk lists everything below root, parents before children. The root
// itself is not included. Symbolic links are reported, not followed.
func (fo *FileOps) Walk(root pathutil.Path) ([]WalkEntry, error) {
	scanner := fo.FS.Scan(root.Native())

	var entries []WalkEntry

	for {
		info, ok := scanner.Next()
		if !ok {
			break
		}

		rel := filepath.ToSlash(info.RelativePath)
		segments := strings.Split(rel, "/")

		entries = append(entries, WalkEntry{
			Path:         root.JoinAll(segments...),
			RelativePath: rel,
			Depth:        len(segments),
			Size:         info.Size,
			IsDir:        info.IsDir,
			IsSymlink:    info.IsSymlink,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, pkgerrors.New("walk", root.Display(), err)
	}

	return entries, nil
}

// Find walks root and returns the entries whose relative path matches the
// doublestar pattern, e.g. "**/*.txt".
func (fo *FileOps) Find(root pathutil.Path, pattern string) ([]WalkEntry, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, pkgerrors.WithKind("find", root.Display(), pkgerrors.KindOther,
			fmt.Errorf("%w: %q", doublestar.ErrBadPattern, pattern))
	}

	entries, err := fo.Walk(root)
	if err != nil {
		return nil, err
	}

	var matched []WalkEntry

	for _, entry := range entries {
		if doublestar.MatchUnvalidated(pattern, entry.RelativePath) {
			matched = append(matched, entry)
		}
	}

	return matched, nil
}
